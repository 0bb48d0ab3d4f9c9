package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormItemOrderRepository implements ItemOrderRepository using GORM
type GormItemOrderRepository struct {
	db *gorm.DB
}

// NewGormItemOrderRepository creates a new GormItemOrderRepository
func NewGormItemOrderRepository(db *gorm.DB) *GormItemOrderRepository {
	return &GormItemOrderRepository{db: db}
}

// FindByContext finds all entries of a context ordered by position
func (r *GormItemOrderRepository) FindByContext(ctx context.Context, contextKind catalog.ContextKind, contextID uuid.UUID) ([]catalog.ItemOrder, error) {
	return r.findByContext(r.db.WithContext(ctx), contextKind, contextID)
}

// FindByContextForUpdate finds a context's entries and locks their rows
func (r *GormItemOrderRepository) FindByContextForUpdate(ctx context.Context, contextKind catalog.ContextKind, contextID uuid.UUID) ([]catalog.ItemOrder, error) {
	return r.findByContext(lockForUpdate(r.db.WithContext(ctx)), contextKind, contextID)
}

func (r *GormItemOrderRepository) findByContext(query *gorm.DB, contextKind catalog.ContextKind, contextID uuid.UUID) ([]catalog.ItemOrder, error) {
	var orderModels []models.ItemOrderModel
	if err := query.
		Where("context_kind = ? AND context_id = ?", string(contextKind), contextID).
		Order("sort_order ASC").
		Find(&orderModels).Error; err != nil {
		return nil, err
	}

	entries := make([]catalog.ItemOrder, len(orderModels))
	for i, model := range orderModels {
		entries[i] = *model.ToDomain()
	}
	return entries, nil
}

// SaveBatch creates or updates multiple entries
func (r *GormItemOrderRepository) SaveBatch(ctx context.Context, entries []*catalog.ItemOrder) error {
	if len(entries) == 0 {
		return nil
	}

	orderModels := make([]*models.ItemOrderModel, len(entries))
	for i, entry := range entries {
		orderModels[i] = models.ItemOrderModelFromDomain(entry)
	}
	return r.db.WithContext(ctx).Save(orderModels).Error
}

// DeleteBatch deletes entries by their IDs
func (r *GormItemOrderRepository) DeleteBatch(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&models.ItemOrderModel{}, "id IN ?", ids).Error
}

// DeleteByItem deletes every entry referencing an item, in any context
func (r *GormItemOrderRepository) DeleteByItem(ctx context.Context, item catalog.ItemRef) error {
	return r.db.WithContext(ctx).
		Delete(&models.ItemOrderModel{}, "item_kind = ? AND item_id = ?", string(item.Kind), item.ID).Error
}

// Ensure GormItemOrderRepository implements ItemOrderRepository
var _ catalog.ItemOrderRepository = (*GormItemOrderRepository)(nil)
