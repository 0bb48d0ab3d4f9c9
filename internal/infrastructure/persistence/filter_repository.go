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

// GormFilterRepository implements FilterRepository using GORM
type GormFilterRepository struct {
	db *gorm.DB
}

// NewGormFilterRepository creates a new GormFilterRepository
func NewGormFilterRepository(db *gorm.DB) *GormFilterRepository {
	return &GormFilterRepository{db: db}
}

// FindByID finds a filter attribute by its ID
func (r *GormFilterRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.FilterAttribute, error) {
	var model models.FilterAttributeModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs finds multiple filter attributes by their IDs
func (r *GormFilterRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.FilterAttribute, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var attributeModels []models.FilterAttributeModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&attributeModels).Error; err != nil {
		return nil, err
	}
	return toFilterAttributes(attributeModels), nil
}

// FindByKind finds all attributes of one taxonomy ordered by name
func (r *GormFilterRepository) FindByKind(ctx context.Context, kind catalog.FilterKind) ([]catalog.FilterAttribute, error) {
	var attributeModels []models.FilterAttributeModel
	if err := r.db.WithContext(ctx).
		Where("kind = ?", string(kind)).
		Order("name ASC").
		Find(&attributeModels).Error; err != nil {
		return nil, err
	}
	return toFilterAttributes(attributeModels), nil
}

// Save creates or updates a filter attribute
func (r *GormFilterRepository) Save(ctx context.Context, attribute *catalog.FilterAttribute) error {
	model := models.FilterAttributeModelFromDomain(attribute)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a filter attribute and its treatment assignments
func (r *GormFilterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Delete(&models.TreatmentFilterModel{}, "filter_id = ?", id).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&models.FilterAttributeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindIDsByTreatment finds the attribute IDs assigned to a treatment
func (r *GormFilterRepository) FindIDsByTreatment(ctx context.Context, treatmentID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.TreatmentFilterModel{}).
		Where("treatment_id = ?", treatmentID).
		Pluck("filter_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// ReplaceForTreatment replaces a treatment's assignments with the given set
func (r *GormFilterRepository) ReplaceForTreatment(ctx context.Context, treatmentID uuid.UUID, filterIDs []uuid.UUID) error {
	if err := r.DeleteForTreatment(ctx, treatmentID); err != nil {
		return err
	}
	if len(filterIDs) == 0 {
		return nil
	}

	links := make([]models.TreatmentFilterModel, len(filterIDs))
	for i, filterID := range filterIDs {
		links[i] = models.TreatmentFilterModel{TreatmentID: treatmentID, FilterID: filterID}
	}
	return r.db.WithContext(ctx).Create(&links).Error
}

// DeleteForTreatment deletes every assignment of a treatment
func (r *GormFilterRepository) DeleteForTreatment(ctx context.Context, treatmentID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.TreatmentFilterModel{}, "treatment_id = ?", treatmentID).Error
}

func toFilterAttributes(attributeModels []models.FilterAttributeModel) []catalog.FilterAttribute {
	attributes := make([]catalog.FilterAttribute, len(attributeModels))
	for i, model := range attributeModels {
		attributes[i] = *model.ToDomain()
	}
	return attributes
}

// Ensure GormFilterRepository implements FilterRepository
var _ catalog.FilterRepository = (*GormFilterRepository)(nil)
