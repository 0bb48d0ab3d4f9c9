package catalog

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/shared"
)

// Error codes for ordering, graph and gallery invariant violations
const (
	ErrCodeInvalidContainment  = "INVALID_CONTAINMENT"
	ErrCodeDuplicateItem       = "DUPLICATE_ITEM"
	ErrCodeInvalidItemKind     = "INVALID_ITEM_KIND"
	ErrCodeCapacityExceeded    = "CAPACITY_EXCEEDED"
	ErrCodeSelfIncompatibility = "SELF_INCOMPATIBILITY"
	ErrCodeZoneCollision       = "ZONE_COLLISION"
	ErrCodeCategoryMismatch    = "CATEGORY_MISMATCH"
	ErrCodePositionDisjoint    = "POSITION_DISJOINT"
	ErrCodeForeignGalleryEntry = "FOREIGN_GALLERY_ENTRY"
	ErrCodeMissingUploadForKey = "MISSING_UPLOAD_FOR_KEY"
	ErrCodeUnsupportedSort     = "UNSUPPORTED_SORT"
)

// ErrUnsupportedSort is returned for sort keys that are recognized but not
// implemented. Unrecognized keys fall back to price_asc instead.
var ErrUnsupportedSort = shared.NewDomainError(ErrCodeUnsupportedSort, "Sorting by most_sold is not available yet")

// NewInvalidContainmentError reports an item that does not belong to the
// ordering context it was submitted for.
func NewInvalidContainmentError(item ItemRef, contextKind ContextKind) *shared.DomainError {
	return shared.NewDomainError(ErrCodeInvalidContainment,
		fmt.Sprintf("Item %s does not belong to the %s", item, contextKind))
}

// NewDuplicateItemError reports a reference submitted more than once
func NewDuplicateItemError(item ItemRef) *shared.DomainError {
	return shared.NewDomainError(ErrCodeDuplicateItem,
		fmt.Sprintf("Duplicate item %s in target order", item))
}

// NewInvalidItemKindError reports a kind that is not a valid member of the
// context (journeys cannot be ordered inside a journey).
func NewInvalidItemKindError(item ItemRef, contextKind ContextKind) *shared.DomainError {
	return shared.NewDomainError(ErrCodeInvalidItemKind,
		fmt.Sprintf("Items of kind %s are not valid in a %s", item.Kind, contextKind))
}

// NewCapacityExceededError reports a target list longer than the placement allows
func NewCapacityExceededError(slug string, maxItems, requested int) *shared.DomainError {
	return shared.NewDomainError(ErrCodeCapacityExceeded,
		fmt.Sprintf("Placement %q holds at most %d items, %d requested", slug, maxItems, requested))
}

// NewSelfIncompatibilityError reports an edge from a config to itself
func NewSelfIncompatibilityError(configID uuid.UUID) *shared.DomainError {
	return shared.NewDomainError(ErrCodeSelfIncompatibility,
		fmt.Sprintf("Configuration %s cannot be incompatible with itself", configID))
}

// NewZoneCollisionError reports an edge between configs in the same zone
func NewZoneCollisionError(leftID, rightID uuid.UUID) *shared.DomainError {
	return shared.NewDomainError(ErrCodeZoneCollision,
		fmt.Sprintf("Configurations %s and %s share a zone", leftID, rightID))
}

// NewCategoryMismatchError reports an edge crossing category boundaries
func NewCategoryMismatchError(leftID, rightID uuid.UUID) *shared.DomainError {
	return shared.NewDomainError(ErrCodeCategoryMismatch,
		fmt.Sprintf("Configurations %s and %s belong to different categories", leftID, rightID))
}

// NewPositionDisjointError reports an edge between non-overlapping body positions
func NewPositionDisjointError(leftID, rightID uuid.UUID) *shared.DomainError {
	return shared.NewDomainError(ErrCodePositionDisjoint,
		fmt.Sprintf("Configurations %s and %s have disjoint body positions", leftID, rightID))
}

// NewForeignGalleryEntryError reports a gallery entry id that is not owned
// by the gallery being reordered.
func NewForeignGalleryEntryError(id uuid.UUID) *shared.DomainError {
	return shared.NewDomainError(ErrCodeForeignGalleryEntry,
		fmt.Sprintf("Gallery entry %s does not belong to this gallery", id))
}

// NewMissingUploadForKeyError reports an upload placeholder with no blob to consume
func NewMissingUploadForKeyError(key string) *shared.DomainError {
	return shared.NewDomainError(ErrCodeMissingUploadForKey,
		fmt.Sprintf("No uploaded file found for key %q", key))
}
