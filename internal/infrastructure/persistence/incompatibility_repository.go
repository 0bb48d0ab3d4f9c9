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

// GormIncompatibilityRepository implements IncompatibilityRepository using GORM
type GormIncompatibilityRepository struct {
	db *gorm.DB
}

// NewGormIncompatibilityRepository creates a new GormIncompatibilityRepository
func NewGormIncompatibilityRepository(db *gorm.DB) *GormIncompatibilityRepository {
	return &GormIncompatibilityRepository{db: db}
}

// FindByPair finds the edge between two configs, if any. IDs may be
// passed in either order.
func (r *GormIncompatibilityRepository) FindByPair(ctx context.Context, a, b uuid.UUID) (*catalog.Incompatibility, error) {
	left, right := catalog.CanonicalPair(a, b)

	var model models.IncompatibilityModel
	if err := r.db.WithContext(ctx).
		Where("left_id = ? AND right_id = ?", left, right).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNode finds all edges incident to a config
func (r *GormIncompatibilityRepository) FindByNode(ctx context.Context, configID uuid.UUID) ([]catalog.Incompatibility, error) {
	var edgeModels []models.IncompatibilityModel
	if err := r.db.WithContext(ctx).
		Where("left_id = ? OR right_id = ?", configID, configID).
		Find(&edgeModels).Error; err != nil {
		return nil, err
	}

	edges := make([]catalog.Incompatibility, len(edgeModels))
	for i, model := range edgeModels {
		edges[i] = *model.ToDomain()
	}
	return edges, nil
}

// Save creates an edge
func (r *GormIncompatibilityRepository) Save(ctx context.Context, edge *catalog.Incompatibility) error {
	model := models.IncompatibilityModelFromDomain(edge)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an edge
func (r *GormIncompatibilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.IncompatibilityModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteBatch deletes edges by their IDs
func (r *GormIncompatibilityRepository) DeleteBatch(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&models.IncompatibilityModel{}, "id IN ?", ids).Error
}

// DeleteByNode deletes every edge incident to a config
func (r *GormIncompatibilityRepository) DeleteByNode(ctx context.Context, configID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.IncompatibilityModel{}, "left_id = ? OR right_id = ?", configID, configID).Error
}

// Ensure GormIncompatibilityRepository implements IncompatibilityRepository
var _ catalog.IncompatibilityRepository = (*GormIncompatibilityRepository)(nil)
