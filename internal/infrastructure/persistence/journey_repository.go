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

// GormJourneyRepository implements JourneyRepository using GORM
type GormJourneyRepository struct {
	db *gorm.DB
}

// NewGormJourneyRepository creates a new GormJourneyRepository
func NewGormJourneyRepository(db *gorm.DB) *GormJourneyRepository {
	return &GormJourneyRepository{db: db}
}

// FindByID finds a journey by its ID
func (r *GormJourneyRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Journey, error) {
	var model models.JourneyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySlug finds a journey by its slug
func (r *GormJourneyRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Journey, error) {
	var model models.JourneyModel
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

// FindByIDs finds multiple journeys by their IDs
func (r *GormJourneyRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Journey, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var journeyModels []models.JourneyModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&journeyModels).Error; err != nil {
		return nil, err
	}
	return toJourneys(journeyModels), nil
}

// FindByCategory finds all journeys in a category
func (r *GormJourneyRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.Journey, error) {
	var journeyModels []models.JourneyModel
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("title ASC").
		Find(&journeyModels).Error; err != nil {
		return nil, err
	}
	return toJourneys(journeyModels), nil
}

// Save creates or updates a journey
func (r *GormJourneyRepository) Save(ctx context.Context, journey *catalog.Journey) error {
	model := models.JourneyModelFromDomain(journey)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a journey
func (r *GormJourneyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.JourneyModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toJourneys(journeyModels []models.JourneyModel) []catalog.Journey {
	journeys := make([]catalog.Journey, len(journeyModels))
	for i, model := range journeyModels {
		journeys[i] = *model.ToDomain()
	}
	return journeys
}

// Ensure GormJourneyRepository implements JourneyRepository
var _ catalog.JourneyRepository = (*GormJourneyRepository)(nil)
