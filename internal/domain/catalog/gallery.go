package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/shared"
)

// GalleryImage is one image in an item's ordered gallery. The blob lives
// in object storage under StorageKey; the row only carries presentation
// metadata and position.
type GalleryImage struct {
	shared.BaseEntity
	OwnerKind  ItemKind
	OwnerID    uuid.UUID
	StorageKey string
	AltText    string
	Order      int
}

// NewGalleryImage creates a gallery image for an owner item
func NewGalleryImage(ownerKind ItemKind, ownerID uuid.UUID, storageKey, altText string, order int) (*GalleryImage, error) {
	if !ownerKind.IsValid() {
		return nil, shared.NewDomainError("INVALID_ITEM_KIND", "Unknown item kind "+string(ownerKind))
	}
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER_ID", "Owner ID cannot be empty")
	}
	if strings.TrimSpace(storageKey) == "" {
		return nil, shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key cannot be empty")
	}
	if order < 0 {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order cannot be negative")
	}

	return &GalleryImage{
		BaseEntity: shared.NewBaseEntity(),
		OwnerKind:  ownerKind,
		OwnerID:    ownerID,
		StorageKey: storageKey,
		AltText:    altText,
		Order:      order,
	}, nil
}

// Owner returns the owning item's polymorphic reference
func (g *GalleryImage) Owner() ItemRef {
	return NewItemRef(g.OwnerKind, g.OwnerID)
}

// SetOrder moves the image to a new position
func (g *GalleryImage) SetOrder(order int) {
	g.Order = order
	g.UpdatedAt = time.Now()
}

// SetAltText replaces the alternative text
func (g *GalleryImage) SetAltText(altText string) {
	g.AltText = altText
	g.UpdatedAt = time.Now()
}
