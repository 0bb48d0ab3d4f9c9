package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// TreatmentService handles treatment and zone configuration operations.
// Mutations that move or delete a configuration prune broken
// incompatibility edges inside the same transaction.
type TreatmentService struct {
	txScope   TransactionScope
	storage   ImageStorage
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewTreatmentService creates a new TreatmentService
func NewTreatmentService(txScope TransactionScope, storage ImageStorage, publisher shared.EventPublisher, logger *zap.Logger) *TreatmentService {
	return &TreatmentService{
		txScope:   txScope,
		storage:   storage,
		publisher: publisher,
		logger:    logger,
	}
}

// Create creates a new treatment
func (s *TreatmentService) Create(ctx context.Context, req CreateTreatmentRequest) (*TreatmentResponse, error) {
	var response *TreatmentResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.CategoryRepo().FindByID(ctx, req.CategoryID); err != nil {
			return err
		}
		if err := checkTreatmentSlugFree(ctx, repos, req.Slug); err != nil {
			return err
		}

		treatment, err := catalog.NewTreatment(req.Title, req.Slug, req.CategoryID)
		if err != nil {
			return err
		}

		if err := repos.TreatmentRepo().Save(ctx, treatment); err != nil {
			return err
		}
		if len(req.FilterIDs) > 0 {
			if err := assignTreatmentFilters(ctx, repos, treatment.ID, req.FilterIDs); err != nil {
				return err
			}
		}

		s.publishEvents(ctx, treatment.GetDomainEvents())
		response = ToTreatmentResponse(treatment, nil)
		response.Filters, err = loadTreatmentFilters(ctx, repos, treatment.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// GetByID retrieves a treatment with its zone configurations
func (s *TreatmentService) GetByID(ctx context.Context, id uuid.UUID) (*TreatmentResponse, error) {
	var response *TreatmentResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		treatment, err := repos.TreatmentRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		configs, err := repos.ZoneConfigRepo().FindByTreatment(ctx, id)
		if err != nil {
			return err
		}
		response = ToTreatmentResponse(treatment, configs)
		response.Filters, err = loadTreatmentFilters(ctx, repos, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// Update updates a treatment's presentation, journey assignment and
// filter assignments
func (s *TreatmentService) Update(ctx context.Context, id uuid.UUID, req UpdateTreatmentRequest) (*TreatmentResponse, error) {
	var response *TreatmentResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		treatment, err := repos.TreatmentRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := treatment.Update(req.Title, req.Description, req.ImageURL); err != nil {
			return err
		}

		journeyChanged := !journeyIDEqual(treatment.JourneyID, req.JourneyID)
		if journeyChanged {
			if req.JourneyID != nil {
				journey, err := repos.JourneyRepo().FindByID(ctx, *req.JourneyID)
				if err != nil {
					return err
				}
				if journey.CategoryID != treatment.CategoryID {
					return catalog.NewInvalidContainmentError(treatment.Ref(), catalog.ContextKindJourney)
				}
			}
			treatment.AssignJourney(req.JourneyID)
			// Leaving a journey invalidates its ordering entry for this item.
			if err := repos.ItemOrderRepo().DeleteByItem(ctx, treatment.Ref()); err != nil {
				return err
			}
		}

		if req.IsActive != nil {
			treatment.SetActive(*req.IsActive)
		}
		if req.IsFeatured != nil {
			treatment.SetFeatured(*req.IsFeatured)
		}

		if err := repos.TreatmentRepo().Save(ctx, treatment); err != nil {
			return err
		}

		// nil leaves the assignments untouched, an empty list clears them
		if req.FilterIDs != nil {
			if err := assignTreatmentFilters(ctx, repos, id, *req.FilterIDs); err != nil {
				return err
			}
		}

		configs, err := repos.ZoneConfigRepo().FindByTreatment(ctx, id)
		if err != nil {
			return err
		}
		response = ToTreatmentResponse(treatment, configs)
		response.Filters, err = loadTreatmentFilters(ctx, repos, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// Delete deletes a treatment together with its configurations, their
// incompatibility edges, its ordering entries, its filter assignments
// and its gallery rows. Gallery blobs are dropped from storage once the
// row deletions commit.
func (s *TreatmentService) Delete(ctx context.Context, id uuid.UUID) error {
	var blobKeys []string
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		treatment, err := repos.TreatmentRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		configs, err := repos.ZoneConfigRepo().FindByTreatment(ctx, id)
		if err != nil {
			return err
		}
		for i := range configs {
			if err := repos.IncompatibilityRepo().DeleteByNode(ctx, configs[i].ID); err != nil {
				return err
			}
			if err := repos.ZoneConfigRepo().Delete(ctx, configs[i].ID); err != nil {
				return err
			}
		}

		ref := treatment.Ref()
		if err := repos.ItemOrderRepo().DeleteByItem(ctx, ref); err != nil {
			return err
		}
		if err := repos.PlacementRepo().DeleteItemsByItem(ctx, ref); err != nil {
			return err
		}
		if err := repos.FilterRepo().DeleteForTreatment(ctx, id); err != nil {
			return err
		}
		keys, err := purgeOwnerGallery(ctx, repos, ref)
		if err != nil {
			return err
		}
		blobKeys = keys

		return repos.TreatmentRepo().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	deleteGalleryBlobs(ctx, s.storage, s.logger, blobKeys)
	return nil
}

// AddZoneConfig configures a treatment for a zone
func (s *TreatmentService) AddZoneConfig(ctx context.Context, treatmentID uuid.UUID, req CreateZoneConfigRequest) (*ZoneConfigResponse, error) {
	var response *ZoneConfigResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		treatment, err := repos.TreatmentRepo().FindByID(ctx, treatmentID)
		if err != nil {
			return err
		}
		zone, err := repos.ZoneRepo().FindByID(ctx, req.ZoneID)
		if err != nil {
			return err
		}
		if zone.CategoryID != treatment.CategoryID {
			return shared.NewDomainError("CATEGORY_MISMATCH", "Zone belongs to a different category than the treatment")
		}

		existing, err := repos.ZoneConfigRepo().FindByTreatment(ctx, treatmentID)
		if err != nil {
			return err
		}
		for i := range existing {
			if existing[i].ZoneID == req.ZoneID {
				return shared.NewDomainError("ALREADY_EXISTS", "Treatment is already configured for this zone")
			}
		}

		config, err := catalog.NewZoneConfig(treatmentID, req.ZoneID, req.DurationMinutes, req.Price, req.PromotionalPrice, catalog.BodyPosition(req.BodyPosition))
		if err != nil {
			return err
		}

		if err := repos.ZoneConfigRepo().Save(ctx, config); err != nil {
			return err
		}
		response = ToZoneConfigResponse(config)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// UpdateZoneConfig updates a configuration and prunes any incompatibility
// edges the change invalidated, atomically.
func (s *TreatmentService) UpdateZoneConfig(ctx context.Context, configID uuid.UUID, req UpdateZoneConfigRequest) (*ZoneConfigResponse, error) {
	var response *ZoneConfigResponse
	var pruned int
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		config, err := repos.ZoneConfigRepo().FindByIDForUpdate(ctx, configID)
		if err != nil {
			return err
		}
		treatment, err := repos.TreatmentRepo().FindByID(ctx, config.TreatmentID)
		if err != nil {
			return err
		}

		if req.ZoneID != config.ZoneID {
			zone, err := repos.ZoneRepo().FindByID(ctx, req.ZoneID)
			if err != nil {
				return err
			}
			if zone.CategoryID != treatment.CategoryID {
				return shared.NewDomainError("CATEGORY_MISMATCH", "Zone belongs to a different category than the treatment")
			}
		}

		if err := config.UpdatePricing(req.Price, req.PromotionalPrice); err != nil {
			return err
		}
		if err := config.Relocate(req.ZoneID, req.DurationMinutes, catalog.BodyPosition(req.BodyPosition)); err != nil {
			return err
		}

		if err := repos.ZoneConfigRepo().Save(ctx, config); err != nil {
			return err
		}

		pruned, err = pruneInvalidEdges(ctx, repos, configID)
		if err != nil {
			return err
		}

		response = ToZoneConfigResponse(config)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if pruned > 0 {
		s.logger.Info("pruned incompatibility edges after config update",
			zap.String("config_id", configID.String()),
			zap.Int("removed", pruned))
		if s.publisher != nil {
			_ = s.publisher.Publish(ctx, catalog.NewEdgesPrunedEvent(configID, pruned))
		}
	}
	return response, nil
}

// DeleteZoneConfig deletes a configuration and every edge incident to it
func (s *TreatmentService) DeleteZoneConfig(ctx context.Context, configID uuid.UUID) error {
	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.ZoneConfigRepo().FindByID(ctx, configID); err != nil {
			return err
		}
		if err := repos.IncompatibilityRepo().DeleteByNode(ctx, configID); err != nil {
			return err
		}
		return repos.ZoneConfigRepo().Delete(ctx, configID)
	})
}

func (s *TreatmentService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.publisher == nil || len(events) == 0 {
		return
	}
	_ = s.publisher.Publish(ctx, events...)
}

func checkTreatmentSlugFree(ctx context.Context, repos TransactionalRepositories, slug string) error {
	_, err := repos.TreatmentRepo().FindBySlug(ctx, slug)
	if err == nil {
		return shared.NewDomainError("ALREADY_EXISTS", "Treatment with this slug already exists")
	}
	if errors.Is(err, shared.ErrNotFound) {
		return nil
	}
	return err
}

func journeyIDEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// assignTreatmentFilters replaces a treatment's filter assignments after
// checking every referenced attribute exists. Duplicates in the request
// collapse to one assignment.
func assignTreatmentFilters(ctx context.Context, repos TransactionalRepositories, treatmentID uuid.UUID, filterIDs []uuid.UUID) error {
	attributes, err := repos.FilterRepo().FindByIDs(ctx, filterIDs)
	if err != nil {
		return err
	}
	found := make(map[uuid.UUID]bool, len(attributes))
	for i := range attributes {
		found[attributes[i].ID] = true
	}

	unique := make([]uuid.UUID, 0, len(filterIDs))
	seen := make(map[uuid.UUID]bool, len(filterIDs))
	for _, id := range filterIDs {
		if !found[id] {
			return shared.ErrNotFound
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	return repos.FilterRepo().ReplaceForTreatment(ctx, treatmentID, unique)
}

func loadTreatmentFilters(ctx context.Context, repos TransactionalRepositories, treatmentID uuid.UUID) ([]FilterAttributeResponse, error) {
	ids, err := repos.FilterRepo().FindIDsByTreatment(ctx, treatmentID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	attributes, err := repos.FilterRepo().FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	responses := make([]FilterAttributeResponse, len(attributes))
	for i := range attributes {
		responses[i] = *ToFilterAttributeResponse(&attributes[i])
	}
	return responses, nil
}
