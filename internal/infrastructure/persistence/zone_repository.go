package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/domain/shared"
	"github.com/spacatalog/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormZoneRepository implements ZoneRepository using GORM
type GormZoneRepository struct {
	db *gorm.DB
}

// NewGormZoneRepository creates a new GormZoneRepository
func NewGormZoneRepository(db *gorm.DB) *GormZoneRepository {
	return &GormZoneRepository{db: db}
}

// FindByID finds a zone by its ID
func (r *GormZoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Zone, error) {
	var model models.ZoneModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCategory finds all zones in a category ordered by name
func (r *GormZoneRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.Zone, error) {
	var zoneModels []models.ZoneModel
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&zoneModels).Error; err != nil {
		return nil, err
	}

	zones := make([]catalog.Zone, len(zoneModels))
	for i, model := range zoneModels {
		zones[i] = *model.ToDomain()
	}
	return zones, nil
}

// Save creates or updates a zone
func (r *GormZoneRepository) Save(ctx context.Context, zone *catalog.Zone) error {
	model := models.ZoneModelFromDomain(zone)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a zone
func (r *GormZoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ZoneModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormZoneRepository implements ZoneRepository
var _ catalog.ZoneRepository = (*GormZoneRepository)(nil)
