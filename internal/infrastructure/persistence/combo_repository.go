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

// GormComboRepository implements ComboRepository using GORM
type GormComboRepository struct {
	db *gorm.DB
}

// NewGormComboRepository creates a new GormComboRepository
func NewGormComboRepository(db *gorm.DB) *GormComboRepository {
	return &GormComboRepository{db: db}
}

// FindByID finds a combo by its ID
func (r *GormComboRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Combo, error) {
	var model models.ComboModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySlug finds a combo by its slug
func (r *GormComboRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Combo, error) {
	var model models.ComboModel
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

// FindByIDs finds multiple combos by their IDs
func (r *GormComboRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Combo, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var comboModels []models.ComboModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&comboModels).Error; err != nil {
		return nil, err
	}
	return toCombos(comboModels), nil
}

// FindByCategory finds all combos in a category
func (r *GormComboRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]catalog.Combo, error) {
	var comboModels []models.ComboModel
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("title ASC").
		Find(&comboModels).Error; err != nil {
		return nil, err
	}
	return toCombos(comboModels), nil
}

// FindByJourney finds all combos assigned to a journey
func (r *GormComboRepository) FindByJourney(ctx context.Context, journeyID uuid.UUID) ([]catalog.Combo, error) {
	var comboModels []models.ComboModel
	if err := r.db.WithContext(ctx).
		Where("journey_id = ?", journeyID).
		Order("title ASC").
		Find(&comboModels).Error; err != nil {
		return nil, err
	}
	return toCombos(comboModels), nil
}

// Save creates or updates a combo
func (r *GormComboRepository) Save(ctx context.Context, combo *catalog.Combo) error {
	model := models.ComboModelFromDomain(combo)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a combo
func (r *GormComboRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ComboModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func toCombos(comboModels []models.ComboModel) []catalog.Combo {
	combos := make([]catalog.Combo, len(comboModels))
	for i, model := range comboModels {
		combos[i] = *model.ToDomain()
	}
	return combos
}

// Ensure GormComboRepository implements ComboRepository
var _ catalog.ComboRepository = (*GormComboRepository)(nil)
