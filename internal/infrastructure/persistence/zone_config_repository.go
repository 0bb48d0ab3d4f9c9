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

// GormZoneConfigRepository implements ZoneConfigRepository using GORM
type GormZoneConfigRepository struct {
	db *gorm.DB
}

// NewGormZoneConfigRepository creates a new GormZoneConfigRepository
func NewGormZoneConfigRepository(db *gorm.DB) *GormZoneConfigRepository {
	return &GormZoneConfigRepository{db: db}
}

// FindByID finds a zone configuration by its ID
func (r *GormZoneConfigRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ZoneConfig, error) {
	var model models.ZoneConfigModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForUpdate finds a zone configuration and locks its row
func (r *GormZoneConfigRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.ZoneConfig, error) {
	var model models.ZoneConfigModel
	if err := lockForUpdate(r.db.WithContext(ctx)).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTreatment finds all configurations of a treatment
func (r *GormZoneConfigRepository) FindByTreatment(ctx context.Context, treatmentID uuid.UUID) ([]catalog.ZoneConfig, error) {
	var configModels []models.ZoneConfigModel
	if err := r.db.WithContext(ctx).
		Where("treatment_id = ?", treatmentID).
		Find(&configModels).Error; err != nil {
		return nil, err
	}
	return toZoneConfigs(configModels), nil
}

// FindByTreatments finds all configurations of multiple treatments
func (r *GormZoneConfigRepository) FindByTreatments(ctx context.Context, treatmentIDs []uuid.UUID) ([]catalog.ZoneConfig, error) {
	if len(treatmentIDs) == 0 {
		return nil, nil
	}

	var configModels []models.ZoneConfigModel
	if err := r.db.WithContext(ctx).
		Where("treatment_id IN ?", treatmentIDs).
		Find(&configModels).Error; err != nil {
		return nil, err
	}
	return toZoneConfigs(configModels), nil
}

// FindByCategory finds all configurations whose treatment lives in the category
func (r *GormZoneConfigRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.ZoneConfig, error) {
	var configModels []models.ZoneConfigModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN treatments ON treatments.id = zone_configs.treatment_id").
		Where("treatments.category_id = ?", categoryID).
		Find(&configModels).Error; err != nil {
		return nil, err
	}
	return toZoneConfigs(configModels), nil
}

// Save creates or updates a zone configuration
func (r *GormZoneConfigRepository) Save(ctx context.Context, config *catalog.ZoneConfig) error {
	model := models.ZoneConfigModelFromDomain(config)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a zone configuration
func (r *GormZoneConfigRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ZoneConfigModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toZoneConfigs(configModels []models.ZoneConfigModel) []catalog.ZoneConfig {
	configs := make([]catalog.ZoneConfig, len(configModels))
	for i, model := range configModels {
		configs[i] = *model.ToDomain()
	}
	return configs
}

// Ensure GormZoneConfigRepository implements ZoneConfigRepository
var _ catalog.ZoneConfigRepository = (*GormZoneConfigRepository)(nil)
