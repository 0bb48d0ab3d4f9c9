package catalog

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// DownloadURLExpiry bounds how long generated gallery URLs stay valid.
const DownloadURLExpiry = 15 * time.Minute

// UploadedBlob is an already-stored blob waiting to be attached to a
// gallery slot. The handler streams request files into storage and hands
// the resulting keys to the service.
type UploadedBlob struct {
	StorageKey string
	AltText    string
}

// GalleryService reconciles an item's ordered image gallery against
// client-submitted target orders mixing existing images and upload
// placeholders.
type GalleryService struct {
	txScope   TransactionScope
	storage   ImageStorage
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewGalleryService creates a new GalleryService
func NewGalleryService(txScope TransactionScope, storage ImageStorage, publisher shared.EventPublisher, logger *zap.Logger) *GalleryService {
	return &GalleryService{
		txScope:   txScope,
		storage:   storage,
		publisher: publisher,
		logger:    logger,
	}
}

// List returns an owner's gallery ordered by position, with download URLs
func (s *GalleryService) List(ctx context.Context, owner catalog.ItemRef) ([]GalleryImageResponse, error) {
	var responses []GalleryImageResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		images, err := repos.GalleryRepo().FindByOwner(ctx, owner)
		if err != nil {
			return err
		}
		responses = make([]GalleryImageResponse, 0, len(images))
		for i := range images {
			url, err := s.storage.GenerateDownloadURL(ctx, images[i].StorageKey, DownloadURLExpiry)
			if err != nil {
				return err
			}
			responses = append(responses, *ToGalleryImageResponse(&images[i], url))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return responses, nil
}

// ApplyOrder reconciles the gallery against a target order. Each entry
// either names an existing image by ID or consumes an uploaded blob:
// first the one stored under the entry's key, then, when the key has no
// blob, the next unclaimed blob from pool in arrival order. An entry
// fails only once both sources are exhausted. Mentioned images take
// their slot position, a second mention of the same image is skipped,
// and images the target omits keep their prior relative order after the
// mentioned ones. Positions are then renumbered from zero, writing only
// rows whose position changed.
func (s *GalleryService) ApplyOrder(ctx context.Context, owner catalog.ItemRef, entries []GalleryOrderEntryDTO, uploads map[string]UploadedBlob, pool []UploadedBlob) ([]GalleryImageResponse, error) {
	var final []*catalog.GalleryImage
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		existing, err := repos.GalleryRepo().FindByOwnerForUpdate(ctx, owner)
		if err != nil {
			return err
		}
		byID := make(map[uuid.UUID]*catalog.GalleryImage, len(existing))
		for i := range existing {
			byID[existing[i].ID] = &existing[i]
		}

		mentioned := make(map[uuid.UUID]bool, len(entries))
		var target []*catalog.GalleryImage
		var created []*catalog.GalleryImage

		for _, entry := range entries {
			switch {
			case entry.ExistingID != nil:
				image, ok := byID[*entry.ExistingID]
				if !ok {
					return catalog.NewForeignGalleryEntryError(*entry.ExistingID)
				}
				if mentioned[image.ID] {
					continue
				}
				mentioned[image.ID] = true
				if entry.AltText != "" && entry.AltText != image.AltText {
					image.SetAltText(entry.AltText)
				}
				target = append(target, image)

			case entry.UploadKey != "":
				blob, ok := uploads[entry.UploadKey]
				if !ok {
					if len(pool) == 0 {
						return catalog.NewMissingUploadForKeyError(entry.UploadKey)
					}
					blob, pool = pool[0], pool[1:]
				}
				altText := blob.AltText
				if entry.AltText != "" {
					altText = entry.AltText
				}
				image, err := catalog.NewGalleryImage(owner.Kind, owner.ID, blob.StorageKey, altText, len(target))
				if err != nil {
					return err
				}
				created = append(created, image)
				target = append(target, image)

			default:
				return shared.NewDomainError("INVALID_GALLERY_ENTRY", "Entry must name an existing image or an upload key")
			}
		}

		// Omitted images keep their prior relative order after the target.
		for i := range existing {
			if !mentioned[existing[i].ID] {
				target = append(target, &existing[i])
			}
		}

		var toSave []*catalog.GalleryImage
		toSave = append(toSave, created...)
		for index, image := range target {
			if image.Order != index {
				image.SetOrder(index)
				if !contains(created, image) {
					toSave = append(toSave, image)
				}
			}
		}

		if len(toSave) > 0 {
			if err := repos.GalleryRepo().SaveBatch(ctx, toSave); err != nil {
				return err
			}
		}

		final = target
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(ctx, catalog.NewGalleryReorderedEvent(owner, len(final)))
	}

	responses := make([]GalleryImageResponse, 0, len(final))
	for _, image := range final {
		url, err := s.storage.GenerateDownloadURL(ctx, image.StorageKey, DownloadURLExpiry)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *ToGalleryImageResponse(image, url))
	}
	return responses, nil
}

// Remove deletes a batch of images, closes the position gaps they leave
// with a single renumber pass, and removes the blobs from storage after
// the row deletions commit. Every ID must name an image of this owner.
// It returns the surviving gallery in its new order.
func (s *GalleryService) Remove(ctx context.Context, owner catalog.ItemRef, imageIDs []uuid.UUID) ([]GalleryImageResponse, error) {
	var storageKeys []string
	var remaining []catalog.GalleryImage
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		images, err := repos.GalleryRepo().FindByOwnerForUpdate(ctx, owner)
		if err != nil {
			return err
		}
		owned := make(map[uuid.UUID]*catalog.GalleryImage, len(images))
		for i := range images {
			owned[images[i].ID] = &images[i]
		}

		removed := make(map[uuid.UUID]bool, len(imageIDs))
		storageKeys = make([]string, 0, len(imageIDs))
		for _, id := range imageIDs {
			image, ok := owned[id]
			if !ok {
				if _, err := repos.GalleryRepo().FindByID(ctx, id); err != nil {
					return err
				}
				return catalog.NewForeignGalleryEntryError(id)
			}
			if removed[id] {
				continue
			}
			removed[id] = true
			storageKeys = append(storageKeys, image.StorageKey)
			if err := repos.GalleryRepo().Delete(ctx, id); err != nil {
				return err
			}
		}

		var changed []*catalog.GalleryImage
		remaining = make([]catalog.GalleryImage, 0, len(images)-len(storageKeys))
		index := 0
		for i := range images {
			if removed[images[i].ID] {
				continue
			}
			if images[i].Order != index {
				images[i].SetOrder(index)
				changed = append(changed, &images[i])
			}
			remaining = append(remaining, images[i])
			index++
		}
		if len(changed) > 0 {
			return repos.GalleryRepo().SaveBatch(ctx, changed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	deleteGalleryBlobs(ctx, s.storage, s.logger, storageKeys)

	if s.publisher != nil && len(storageKeys) > 0 {
		_ = s.publisher.Publish(ctx, catalog.NewGalleryImageRemovedEvent(owner, len(storageKeys)))
	}

	responses := make([]GalleryImageResponse, 0, len(remaining))
	for i := range remaining {
		url, err := s.storage.GenerateDownloadURL(ctx, remaining[i].StorageKey, DownloadURLExpiry)
		if err != nil {
			return nil, err
		}
		responses = append(responses, *ToGalleryImageResponse(&remaining[i], url))
	}
	return responses, nil
}

// purgeOwnerGallery deletes every gallery row of an owner inside the
// current transaction and returns the storage keys of the detached
// blobs. Item deletion flows call it so a removed treatment, combo or
// journey does not leave orphaned gallery rows behind.
func purgeOwnerGallery(ctx context.Context, repos TransactionalRepositories, owner catalog.ItemRef) ([]string, error) {
	images, err := repos.GalleryRepo().FindByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(images))
	for i := range images {
		if err := repos.GalleryRepo().Delete(ctx, images[i].ID); err != nil {
			return nil, err
		}
		keys = append(keys, images[i].StorageKey)
	}
	return keys, nil
}

// deleteGalleryBlobs removes blobs whose rows are already gone. Failures
// are logged, not returned; the row deletions have already committed.
func deleteGalleryBlobs(ctx context.Context, storage ImageStorage, logger *zap.Logger, keys []string) {
	for _, key := range keys {
		if err := storage.DeleteObject(ctx, key); err != nil {
			logger.Warn("failed to delete gallery blob",
				zap.String("storage_key", key),
				zap.Error(err))
		}
	}
}

// StoreUpload streams one request file into storage and returns the blob
// handle for ApplyOrder.
func (s *GalleryService) StoreUpload(ctx context.Context, owner catalog.ItemRef, contentType, altText string, body io.Reader) (UploadedBlob, error) {
	key := fmt.Sprintf("gallery/%s/%s/%s", owner.Kind, owner.ID, uuid.New())
	if err := s.storage.PutObject(ctx, key, contentType, body); err != nil {
		return UploadedBlob{}, err
	}
	return UploadedBlob{StorageKey: key, AltText: altText}, nil
}

func contains(images []*catalog.GalleryImage, image *catalog.GalleryImage) bool {
	for _, candidate := range images {
		if candidate == image {
			return true
		}
	}
	return false
}
