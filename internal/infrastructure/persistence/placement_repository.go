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

// GormPlacementRepository implements PlacementRepository using GORM
type GormPlacementRepository struct {
	db *gorm.DB
}

// NewGormPlacementRepository creates a new GormPlacementRepository
func NewGormPlacementRepository(db *gorm.DB) *GormPlacementRepository {
	return &GormPlacementRepository{db: db}
}

// FindByID finds a placement by its ID
func (r *GormPlacementRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Placement, error) {
	var model models.PlacementModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySlug finds a placement by its slug
func (r *GormPlacementRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Placement, error) {
	var model models.PlacementModel
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

// FindByIDForUpdate finds a placement and locks its row
func (r *GormPlacementRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Placement, error) {
	var model models.PlacementModel
	if err := lockForUpdate(r.db.WithContext(ctx)).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all placements matching the filter
func (r *GormPlacementRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Placement, error) {
	query := r.db.WithContext(ctx).Model(&models.PlacementModel{})

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR slug LIKE ?", searchPattern, searchPattern)
	}

	orderBy := ValidateSortField(filter.OrderBy, PlacementSortFields, "slug")
	orderDir := ValidateSortOrder(filter.OrderDir)
	query = query.Order(orderBy + " " + orderDir)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var placementModels []models.PlacementModel
	if err := query.Find(&placementModels).Error; err != nil {
		return nil, err
	}

	placements := make([]catalog.Placement, len(placementModels))
	for i, model := range placementModels {
		placements[i] = *model.ToDomain()
	}
	return placements, nil
}

// FindItems finds a placement's entries ordered by position
func (r *GormPlacementRepository) FindItems(ctx context.Context, placementID uuid.UUID) ([]catalog.PlacementItem, error) {
	var itemModels []models.PlacementItemModel
	if err := r.db.WithContext(ctx).
		Where("placement_id = ?", placementID).
		Order("sort_order ASC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]catalog.PlacementItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = *model.ToDomain()
	}
	return items, nil
}

// Save creates or updates a placement
func (r *GormPlacementRepository) Save(ctx context.Context, placement *catalog.Placement) error {
	model := models.PlacementModelFromDomain(placement)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveItems creates or updates multiple placement entries
func (r *GormPlacementRepository) SaveItems(ctx context.Context, items []*catalog.PlacementItem) error {
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*models.PlacementItemModel, len(items))
	for i, item := range items {
		itemModels[i] = models.PlacementItemModelFromDomain(item)
	}
	return r.db.WithContext(ctx).Save(itemModels).Error
}

// DeleteItems deletes placement entries by their IDs
func (r *GormPlacementRepository) DeleteItems(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&models.PlacementItemModel{}, "id IN ?", ids).Error
}

// DeleteItemsByItem deletes every placement entry referencing an item
func (r *GormPlacementRepository) DeleteItemsByItem(ctx context.Context, item catalog.ItemRef) error {
	return r.db.WithContext(ctx).
		Delete(&models.PlacementItemModel{}, "item_kind = ? AND item_id = ?", string(item.Kind), item.ID).Error
}

// Delete deletes a placement and its entries
func (r *GormPlacementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PlacementModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return r.db.WithContext(ctx).Delete(&models.PlacementItemModel{}, "placement_id = ?", id).Error
}

// Ensure GormPlacementRepository implements PlacementRepository
var _ catalog.PlacementRepository = (*GormPlacementRepository)(nil)
