package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/domain/shared"
)

// FilterService manages the browse filter taxonomies: treatment types,
// objectives, intensity levels, duration buckets and free-form tags.
// Attributes are assigned to treatments through TreatmentService.
type FilterService struct {
	txScope TransactionScope
}

// NewFilterService creates a new FilterService
func NewFilterService(txScope TransactionScope) *FilterService {
	return &FilterService{txScope: txScope}
}

// ListByKind returns one taxonomy's attributes ordered by name
func (s *FilterService) ListByKind(ctx context.Context, kind catalog.FilterKind) ([]FilterAttributeResponse, error) {
	var responses []FilterAttributeResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		attributes, err := repos.FilterRepo().FindByKind(ctx, kind)
		if err != nil {
			return err
		}
		responses = make([]FilterAttributeResponse, len(attributes))
		for i := range attributes {
			responses[i] = *ToFilterAttributeResponse(&attributes[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// Create creates an attribute in one taxonomy. Names are unique per
// kind, compared case-insensitively.
func (s *FilterService) Create(ctx context.Context, kind catalog.FilterKind, req CreateFilterAttributeRequest) (*FilterAttributeResponse, error) {
	var response *FilterAttributeResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := checkFilterNameFree(ctx, repos, kind, req.Name, uuid.Nil); err != nil {
			return err
		}

		attribute, err := catalog.NewFilterAttribute(kind, req.Name, req.ImageURL, req.Minutes)
		if err != nil {
			return err
		}

		if err := repos.FilterRepo().Save(ctx, attribute); err != nil {
			return err
		}
		response = ToFilterAttributeResponse(attribute)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// Update changes an attribute's label and kind-specific extras
func (s *FilterService) Update(ctx context.Context, kind catalog.FilterKind, id uuid.UUID, req UpdateFilterAttributeRequest) (*FilterAttributeResponse, error) {
	var response *FilterAttributeResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		attribute, err := repos.FilterRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if attribute.Kind != kind {
			return shared.ErrNotFound
		}
		if err := checkFilterNameFree(ctx, repos, kind, req.Name, id); err != nil {
			return err
		}

		if err := attribute.Update(req.Name, req.ImageURL, req.Minutes); err != nil {
			return err
		}

		if err := repos.FilterRepo().Save(ctx, attribute); err != nil {
			return err
		}
		response = ToFilterAttributeResponse(attribute)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// Delete deletes an attribute. Treatment assignments go with it.
func (s *FilterService) Delete(ctx context.Context, kind catalog.FilterKind, id uuid.UUID) error {
	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		attribute, err := repos.FilterRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if attribute.Kind != kind {
			return shared.ErrNotFound
		}
		return repos.FilterRepo().Delete(ctx, id)
	})
}

func checkFilterNameFree(ctx context.Context, repos TransactionalRepositories, kind catalog.FilterKind, name string, selfID uuid.UUID) error {
	attributes, err := repos.FilterRepo().FindByKind(ctx, kind)
	if err != nil {
		return err
	}
	for i := range attributes {
		if attributes[i].ID != selfID && strings.EqualFold(attributes[i].Name, name) {
			return shared.NewDomainError("ALREADY_EXISTS", "Filter attribute with this name already exists in the taxonomy")
		}
	}
	return nil
}
