package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/domain/shared"
)

// ZoneService handles zone-related business operations
type ZoneService struct {
	zoneRepo     catalog.ZoneRepository
	categoryRepo catalog.CategoryRepository
	txScope      TransactionScope
}

// NewZoneService creates a new ZoneService
func NewZoneService(zoneRepo catalog.ZoneRepository, categoryRepo catalog.CategoryRepository, txScope TransactionScope) *ZoneService {
	return &ZoneService{
		zoneRepo:     zoneRepo,
		categoryRepo: categoryRepo,
		txScope:      txScope,
	}
}

// Create creates a new zone inside a category. Zone names are unique per
// category, compared case-insensitively.
func (s *ZoneService) Create(ctx context.Context, req CreateZoneRequest) (*ZoneResponse, error) {
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		return nil, err
	}
	if err := s.checkNameFree(ctx, req.CategoryID, req.Name, uuid.Nil); err != nil {
		return nil, err
	}

	zone, err := catalog.NewZone(req.Name, req.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := s.zoneRepo.Save(ctx, zone); err != nil {
		return nil, err
	}
	return ToZoneResponse(zone), nil
}

// ListByCategory returns a category's zones ordered by name
func (s *ZoneService) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]ZoneResponse, error) {
	zones, err := s.zoneRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	responses := make([]ZoneResponse, len(zones))
	for i := range zones {
		responses[i] = *ToZoneResponse(&zones[i])
	}
	return responses, nil
}

// Rename changes a zone's name
func (s *ZoneService) Rename(ctx context.Context, id uuid.UUID, name string) (*ZoneResponse, error) {
	zone, err := s.zoneRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkNameFree(ctx, zone.CategoryID, name, zone.ID); err != nil {
		return nil, err
	}

	if err := zone.Rename(name); err != nil {
		return nil, err
	}

	if err := s.zoneRepo.Save(ctx, zone); err != nil {
		return nil, err
	}
	return ToZoneResponse(zone), nil
}

// Delete deletes a zone. Configurations in the zone, and any edges
// incident to them, go with it in a single transaction.
func (s *ZoneService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		zone, err := repos.ZoneRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		configs, err := repos.ZoneConfigRepo().FindByCategory(ctx, zone.CategoryID)
		if err != nil {
			return err
		}
		for i := range configs {
			if configs[i].ZoneID != id {
				continue
			}
			if err := repos.IncompatibilityRepo().DeleteByNode(ctx, configs[i].ID); err != nil {
				return err
			}
			if err := repos.ZoneConfigRepo().Delete(ctx, configs[i].ID); err != nil {
				return err
			}
		}

		return repos.ZoneRepo().Delete(ctx, id)
	})
}

func (s *ZoneService) checkNameFree(ctx context.Context, categoryID uuid.UUID, name string, selfID uuid.UUID) error {
	zones, err := s.zoneRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return err
	}
	for i := range zones {
		if zones[i].ID != selfID && strings.EqualFold(zones[i].Name, name) {
			return shared.NewDomainError("ALREADY_EXISTS", "Zone with this name already exists in the category")
		}
	}
	return nil
}
