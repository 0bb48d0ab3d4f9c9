package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/domain/shared"
)

// IncompatibilityService maintains the undirected incompatibility graph
// between zone configurations. Edges are validated on creation and pruned
// whenever an endpoint mutates in a way that breaks an invariant.
type IncompatibilityService struct {
	txScope   TransactionScope
	publisher shared.EventPublisher
}

// NewIncompatibilityService creates a new IncompatibilityService. The
// publisher may be nil when no event bus is wired.
func NewIncompatibilityService(txScope TransactionScope, publisher shared.EventPublisher) *IncompatibilityService {
	return &IncompatibilityService{
		txScope:   txScope,
		publisher: publisher,
	}
}

// UpsertEdge declares two configurations incompatible. The operation is
// idempotent: declaring an existing edge, in either ID order, returns the
// stored edge unchanged.
func (s *IncompatibilityService) UpsertEdge(ctx context.Context, a, b uuid.UUID) (*IncompatibilityResponse, error) {
	var response *IncompatibilityResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		left, err := endpointFor(ctx, repos, a)
		if err != nil {
			return err
		}
		right, err := endpointFor(ctx, repos, b)
		if err != nil {
			return err
		}

		edge, err := catalog.NewIncompatibility(left, right)
		if err != nil {
			return err
		}

		existing, err := repos.IncompatibilityRepo().FindByPair(ctx, a, b)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		if existing != nil {
			response = ToIncompatibilityResponse(existing)
			return nil
		}

		if err := repos.IncompatibilityRepo().Save(ctx, edge); err != nil {
			return err
		}
		response = ToIncompatibilityResponse(edge)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// DeleteEdge removes the edge between two configurations, if present
func (s *IncompatibilityService) DeleteEdge(ctx context.Context, a, b uuid.UUID) error {
	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		edge, err := repos.IncompatibilityRepo().FindByPair(ctx, a, b)
		if err != nil {
			return err
		}
		return repos.IncompatibilityRepo().Delete(ctx, edge.ID)
	})
}

// ListForConfig returns every edge incident to a configuration
func (s *IncompatibilityService) ListForConfig(ctx context.Context, configID uuid.UUID) ([]IncompatibilityResponse, error) {
	var responses []IncompatibilityResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		edges, err := repos.IncompatibilityRepo().FindByNode(ctx, configID)
		if err != nil {
			return err
		}
		responses = make([]IncompatibilityResponse, len(edges))
		for i := range edges {
			responses[i] = *ToIncompatibilityResponse(&edges[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// Candidates lists the configurations a given config could legally be
// incompatible with, plus the ones it already is, ordered by zone name
// and then treatment title.
func (s *IncompatibilityService) Candidates(ctx context.Context, configID uuid.UUID) ([]CandidateResponse, error) {
	var candidates []CandidateResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		subject, err := endpointFor(ctx, repos, configID)
		if err != nil {
			return err
		}

		edges, err := repos.IncompatibilityRepo().FindByNode(ctx, configID)
		if err != nil {
			return err
		}
		linked := make(map[uuid.UUID]bool, len(edges))
		for i := range edges {
			linked[edges[i].Other(configID)] = true
		}

		configs, err := repos.ZoneConfigRepo().FindByCategory(ctx, subject.CategoryID)
		if err != nil {
			return err
		}

		treatments := make(map[uuid.UUID]*catalog.Treatment)
		zones := make(map[uuid.UUID]*catalog.Zone)
		for i := range configs {
			config := &configs[i]
			if err := catalog.ValidateEdge(subject, catalog.EdgeEndpoint{
				ConfigID:   config.ID,
				ZoneID:     config.ZoneID,
				CategoryID: subject.CategoryID,
				Position:   config.BodyPosition,
			}); err != nil {
				continue
			}

			treatment, ok := treatments[config.TreatmentID]
			if !ok {
				treatment, err = repos.TreatmentRepo().FindByID(ctx, config.TreatmentID)
				if err != nil {
					return err
				}
				treatments[config.TreatmentID] = treatment
			}
			zone, ok := zones[config.ZoneID]
			if !ok {
				zone, err = repos.ZoneRepo().FindByID(ctx, config.ZoneID)
				if err != nil {
					return err
				}
				zones[config.ZoneID] = zone
			}

			candidates = append(candidates, CandidateResponse{
				ConfigID:       config.ID,
				TreatmentTitle: treatment.Title,
				ZoneName:       zone.Name,
				BodyPosition:   string(config.BodyPosition),
				Incompatible:   linked[config.ID],
			})
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			zi, zj := strings.ToLower(candidates[i].ZoneName), strings.ToLower(candidates[j].ZoneName)
			if zi != zj {
				return zi < zj
			}
			return strings.ToLower(candidates[i].TreatmentTitle) < strings.ToLower(candidates[j].TreatmentTitle)
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

// PruneNode re-validates every edge incident to a configuration and
// deletes the ones whose invariants no longer hold. Runs in its own
// transaction; zone configuration mutations that already hold one call
// pruneInvalidEdges directly instead.
func (s *IncompatibilityService) PruneNode(ctx context.Context, configID uuid.UUID) (int, error) {
	var removed int
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		removed, err = pruneInvalidEdges(ctx, repos, configID)
		return err
	})
	if err != nil {
		return 0, err
	}

	if removed > 0 && s.publisher != nil {
		_ = s.publisher.Publish(ctx, catalog.NewEdgesPrunedEvent(configID, removed))
	}
	return removed, nil
}

// pruneInvalidEdges drops every edge of the node that no longer satisfies
// the graph invariants. An edge whose opposite endpoint has vanished is
// dropped too. Returns the number of deleted edges.
func pruneInvalidEdges(ctx context.Context, repos TransactionalRepositories, configID uuid.UUID) (int, error) {
	subject, err := endpointFor(ctx, repos, configID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			// Node itself is gone: drop all of its edges.
			edges, findErr := repos.IncompatibilityRepo().FindByNode(ctx, configID)
			if findErr != nil {
				return 0, findErr
			}
			if len(edges) == 0 {
				return 0, nil
			}
			return len(edges), repos.IncompatibilityRepo().DeleteByNode(ctx, configID)
		}
		return 0, err
	}

	edges, err := repos.IncompatibilityRepo().FindByNode(ctx, configID)
	if err != nil {
		return 0, err
	}

	var toDelete []uuid.UUID
	for i := range edges {
		otherID := edges[i].Other(configID)
		other, err := endpointFor(ctx, repos, otherID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				toDelete = append(toDelete, edges[i].ID)
				continue
			}
			return 0, err
		}
		if err := catalog.ValidateEdge(subject, other); err != nil {
			toDelete = append(toDelete, edges[i].ID)
		}
	}

	if len(toDelete) == 0 {
		return 0, nil
	}
	if err := repos.IncompatibilityRepo().DeleteBatch(ctx, toDelete); err != nil {
		return 0, err
	}
	return len(toDelete), nil
}

// endpointFor loads the invariant-relevant slice of a zone configuration
func endpointFor(ctx context.Context, repos TransactionalRepositories, configID uuid.UUID) (catalog.EdgeEndpoint, error) {
	config, err := repos.ZoneConfigRepo().FindByID(ctx, configID)
	if err != nil {
		return catalog.EdgeEndpoint{}, err
	}
	treatment, err := repos.TreatmentRepo().FindByID(ctx, config.TreatmentID)
	if err != nil {
		return catalog.EdgeEndpoint{}, err
	}
	return catalog.EdgeEndpoint{
		ConfigID:   config.ID,
		ZoneID:     config.ZoneID,
		CategoryID: treatment.CategoryID,
		Position:   config.BodyPosition,
	}, nil
}
