package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/domain/shared"
	"github.com/spacatalog/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTreatmentRepository implements TreatmentRepository using GORM
type GormTreatmentRepository struct {
	db *gorm.DB
}

// NewGormTreatmentRepository creates a new GormTreatmentRepository
func NewGormTreatmentRepository(db *gorm.DB) *GormTreatmentRepository {
	return &GormTreatmentRepository{db: db}
}

// FindByID finds a treatment by its ID
func (r *GormTreatmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Treatment, error) {
	var model models.TreatmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySlug finds a treatment by its slug
func (r *GormTreatmentRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Treatment, error) {
	var model models.TreatmentModel
	if err := r.db.WithContext(ctx).
		Where("slug = ?", strings.ToLower(slug)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs finds multiple treatments by their IDs
func (r *GormTreatmentRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Treatment, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var treatmentModels []models.TreatmentModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&treatmentModels).Error; err != nil {
		return nil, err
	}
	return toTreatments(treatmentModels), nil
}

// FindByCategory finds all treatments in a category
func (r *GormTreatmentRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.Treatment, error) {
	var treatmentModels []models.TreatmentModel
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("title ASC").
		Find(&treatmentModels).Error; err != nil {
		return nil, err
	}
	return toTreatments(treatmentModels), nil
}

// FindByJourney finds all treatments assigned to a journey
func (r *GormTreatmentRepository) FindByJourney(ctx context.Context, journeyID uuid.UUID) ([]catalog.Treatment, error) {
	var treatmentModels []models.TreatmentModel
	if err := r.db.WithContext(ctx).
		Where("journey_id = ?", journeyID).
		Order("title ASC").
		Find(&treatmentModels).Error; err != nil {
		return nil, err
	}
	return toTreatments(treatmentModels), nil
}

// Save creates or updates a treatment
func (r *GormTreatmentRepository) Save(ctx context.Context, treatment *catalog.Treatment) error {
	model := models.TreatmentModelFromDomain(treatment)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a treatment
func (r *GormTreatmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TreatmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toTreatments(treatmentModels []models.TreatmentModel) []catalog.Treatment {
	treatments := make([]catalog.Treatment, len(treatmentModels))
	for i, model := range treatmentModels {
		treatments[i] = *model.ToDomain()
	}
	return treatments
}

// Ensure GormTreatmentRepository implements TreatmentRepository
var _ catalog.TreatmentRepository = (*GormTreatmentRepository)(nil)
