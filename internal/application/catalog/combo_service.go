package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ComboService handles combo-related business operations
type ComboService struct {
	txScope   TransactionScope
	storage   ImageStorage
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewComboService creates a new ComboService
func NewComboService(txScope TransactionScope, storage ImageStorage, publisher shared.EventPublisher, logger *zap.Logger) *ComboService {
	return &ComboService{
		txScope:   txScope,
		storage:   storage,
		publisher: publisher,
		logger:    logger,
	}
}

// Create creates a new combo
func (s *ComboService) Create(ctx context.Context, req CreateComboRequest) (*ComboResponse, error) {
	var response *ComboResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.CategoryRepo().FindByID(ctx, req.CategoryID); err != nil {
			return err
		}
		if _, err := repos.ComboRepo().FindBySlug(ctx, req.Slug); err == nil {
			return shared.NewDomainError("ALREADY_EXISTS", "Combo with this slug already exists")
		} else if !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		combo, err := catalog.NewCombo(req.Title, req.Slug, req.CategoryID, req.Price, req.PromotionalPrice, req.Sessions)
		if err != nil {
			return err
		}

		if err := repos.ComboRepo().Save(ctx, combo); err != nil {
			return err
		}

		if s.publisher != nil {
			_ = s.publisher.Publish(ctx, combo.GetDomainEvents()...)
		}
		response = ToComboResponse(combo)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// GetByID retrieves a combo by ID
func (s *ComboService) GetByID(ctx context.Context, id uuid.UUID) (*ComboResponse, error) {
	var response *ComboResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		combo, err := repos.ComboRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		response = ToComboResponse(combo)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// Update updates a combo's presentation, pricing and journey assignment
func (s *ComboService) Update(ctx context.Context, id uuid.UUID, req UpdateComboRequest) (*ComboResponse, error) {
	var response *ComboResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		combo, err := repos.ComboRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := combo.Update(req.Title, req.Description, req.ImageURL); err != nil {
			return err
		}
		if err := combo.UpdatePricing(req.Price, req.PromotionalPrice); err != nil {
			return err
		}

		if !journeyIDEqual(combo.JourneyID, req.JourneyID) {
			if req.JourneyID != nil {
				journey, err := repos.JourneyRepo().FindByID(ctx, *req.JourneyID)
				if err != nil {
					return err
				}
				if journey.CategoryID != combo.CategoryID {
					return catalog.NewInvalidContainmentError(combo.Ref(), catalog.ContextKindJourney)
				}
			}
			combo.AssignJourney(req.JourneyID)
			if err := repos.ItemOrderRepo().DeleteByItem(ctx, combo.Ref()); err != nil {
				return err
			}
		}

		if req.IsActive != nil {
			combo.SetActive(*req.IsActive)
		}

		if err := repos.ComboRepo().Save(ctx, combo); err != nil {
			return err
		}
		response = ToComboResponse(combo)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// Delete deletes a combo along with its ordering entries, placement
// entries and gallery rows. Gallery blobs are dropped from storage once
// the row deletions commit.
func (s *ComboService) Delete(ctx context.Context, id uuid.UUID) error {
	var blobKeys []string
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		combo, err := repos.ComboRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		ref := combo.Ref()
		if err := repos.ItemOrderRepo().DeleteByItem(ctx, ref); err != nil {
			return err
		}
		if err := repos.PlacementRepo().DeleteItemsByItem(ctx, ref); err != nil {
			return err
		}
		keys, err := purgeOwnerGallery(ctx, repos, ref)
		if err != nil {
			return err
		}
		blobKeys = keys

		return repos.ComboRepo().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	deleteGalleryBlobs(ctx, s.storage, s.logger, blobKeys)
	return nil
}
