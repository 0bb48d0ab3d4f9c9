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

// GormGalleryRepository implements GalleryRepository using GORM
type GormGalleryRepository struct {
	db *gorm.DB
}

// NewGormGalleryRepository creates a new GormGalleryRepository
func NewGormGalleryRepository(db *gorm.DB) *GormGalleryRepository {
	return &GormGalleryRepository{db: db}
}

// FindByID finds a gallery image by its ID
func (r *GormGalleryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.GalleryImage, error) {
	var model models.GalleryImageModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOwner finds an owner's images ordered by position
func (r *GormGalleryRepository) FindByOwner(ctx context.Context, owner catalog.ItemRef) ([]catalog.GalleryImage, error) {
	return r.findByOwner(r.db.WithContext(ctx), owner)
}

// FindByOwnerForUpdate finds an owner's images and locks their rows
func (r *GormGalleryRepository) FindByOwnerForUpdate(ctx context.Context, owner catalog.ItemRef) ([]catalog.GalleryImage, error) {
	return r.findByOwner(lockForUpdate(r.db.WithContext(ctx)), owner)
}

func (r *GormGalleryRepository) findByOwner(query *gorm.DB, owner catalog.ItemRef) ([]catalog.GalleryImage, error) {
	var imageModels []models.GalleryImageModel
	if err := query.
		Where("owner_kind = ? AND owner_id = ?", string(owner.Kind), owner.ID).
		Order("sort_order ASC").
		Find(&imageModels).Error; err != nil {
		return nil, err
	}

	images := make([]catalog.GalleryImage, len(imageModels))
	for i, model := range imageModels {
		images[i] = *model.ToDomain()
	}
	return images, nil
}

// Save creates or updates a gallery image
func (r *GormGalleryRepository) Save(ctx context.Context, image *catalog.GalleryImage) error {
	model := models.GalleryImageModelFromDomain(image)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveBatch creates or updates multiple gallery images
func (r *GormGalleryRepository) SaveBatch(ctx context.Context, images []*catalog.GalleryImage) error {
	if len(images) == 0 {
		return nil
	}

	imageModels := make([]*models.GalleryImageModel, len(images))
	for i, image := range images {
		imageModels[i] = models.GalleryImageModelFromDomain(image)
	}
	return r.db.WithContext(ctx).Save(imageModels).Error
}

// Delete deletes a gallery image
func (r *GormGalleryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.GalleryImageModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormGalleryRepository implements GalleryRepository
var _ catalog.GalleryRepository = (*GormGalleryRepository)(nil)
