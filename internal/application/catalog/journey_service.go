package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// JourneyService handles journey-related business operations
type JourneyService struct {
	txScope  TransactionScope
	resolver *ItemResolver
	storage  ImageStorage
	logger   *zap.Logger
}

// NewJourneyService creates a new JourneyService
func NewJourneyService(txScope TransactionScope, resolver *ItemResolver, storage ImageStorage, logger *zap.Logger) *JourneyService {
	return &JourneyService{
		txScope:  txScope,
		resolver: resolver,
		storage:  storage,
		logger:   logger,
	}
}

// Create creates a new journey
func (s *JourneyService) Create(ctx context.Context, req CreateJourneyRequest) (*JourneyResponse, error) {
	var response *JourneyResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.CategoryRepo().FindByID(ctx, req.CategoryID); err != nil {
			return err
		}
		if _, err := repos.JourneyRepo().FindBySlug(ctx, req.Slug); err == nil {
			return shared.NewDomainError("ALREADY_EXISTS", "Journey with this slug already exists")
		} else if !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		journey, err := catalog.NewJourney(req.Title, req.Slug, req.CategoryID)
		if err != nil {
			return err
		}

		if err := repos.JourneyRepo().Save(ctx, journey); err != nil {
			return err
		}
		response = ToJourneyResponse(journey)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// GetByID retrieves a journey with its derived effective price
func (s *JourneyService) GetByID(ctx context.Context, id uuid.UUID) (*JourneyResponse, error) {
	var journey *catalog.Journey
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		journey, err = repos.JourneyRepo().FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	response := ToJourneyResponse(journey)

	members, err := s.resolver.ResolveJourneyMembers(ctx, journey.ID)
	if err != nil {
		return nil, err
	}
	memberPrices := make([]*decimal.Decimal, len(members))
	for i, member := range members {
		memberPrices[i] = member.Price
	}
	if price, ok := catalog.JourneyEffectivePrice(memberPrices); ok {
		response.EffectivePrice = &price
	}

	return response, nil
}

// Update updates a journey's presentation fields
func (s *JourneyService) Update(ctx context.Context, id uuid.UUID, req UpdateJourneyRequest) (*JourneyResponse, error) {
	var response *JourneyResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		journey, err := repos.JourneyRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := journey.Update(req.Title, req.Description, req.ImageURL); err != nil {
			return err
		}

		if err := repos.JourneyRepo().Save(ctx, journey); err != nil {
			return err
		}
		response = ToJourneyResponse(journey)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// Delete deletes a journey. Members are detached, not deleted, and the
// journey's ordering context, its gallery rows and any references to the
// journey itself disappear with it. Gallery blobs are dropped from
// storage once the row deletions commit.
func (s *JourneyService) Delete(ctx context.Context, id uuid.UUID) error {
	var blobKeys []string
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		journey, err := repos.JourneyRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		treatments, err := repos.TreatmentRepo().FindByJourney(ctx, id)
		if err != nil {
			return err
		}
		for i := range treatments {
			treatments[i].AssignJourney(nil)
			if err := repos.TreatmentRepo().Save(ctx, &treatments[i]); err != nil {
				return err
			}
		}

		combos, err := repos.ComboRepo().FindByJourney(ctx, id)
		if err != nil {
			return err
		}
		for i := range combos {
			combos[i].AssignJourney(nil)
			if err := repos.ComboRepo().Save(ctx, &combos[i]); err != nil {
				return err
			}
		}

		// The journey's own ordering context.
		entries, err := repos.ItemOrderRepo().FindByContext(ctx, catalog.ContextKindJourney, id)
		if err != nil {
			return err
		}
		if len(entries) > 0 {
			ids := make([]uuid.UUID, len(entries))
			for i := range entries {
				ids[i] = entries[i].ID
			}
			if err := repos.ItemOrderRepo().DeleteBatch(ctx, ids); err != nil {
				return err
			}
		}

		// References to the journey inside category listings and placements.
		ref := journey.Ref()
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

		return repos.JourneyRepo().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	deleteGalleryBlobs(ctx, s.storage, s.logger, blobKeys)
	return nil
}
