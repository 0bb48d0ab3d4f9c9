package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/shared"
)

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	// FindByID finds a category by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// FindBySlug finds a category by its slug
	FindBySlug(ctx context.Context, slug string) (*Category, error)

	// FindAll finds all categories matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Category, error)

	// Save creates or updates a category
	Save(ctx context.Context, category *Category) error

	// Delete deletes a category
	Delete(ctx context.Context, id uuid.UUID) error
}

// ZoneRepository defines the interface for zone persistence
type ZoneRepository interface {
	// FindByID finds a zone by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Zone, error)

	// FindByCategory finds all zones in a category ordered by name
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]Zone, error)

	// Save creates or updates a zone
	Save(ctx context.Context, zone *Zone) error

	// Delete deletes a zone
	Delete(ctx context.Context, id uuid.UUID) error
}

// TreatmentRepository defines the interface for treatment persistence
type TreatmentRepository interface {
	// FindByID finds a treatment by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Treatment, error)

	// FindBySlug finds a treatment by its slug
	FindBySlug(ctx context.Context, slug string) (*Treatment, error)

	// FindByIDs finds multiple treatments by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Treatment, error)

	// FindByCategory finds all treatments in a category
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]Treatment, error)

	// FindByJourney finds all treatments assigned to a journey
	FindByJourney(ctx context.Context, journeyID uuid.UUID) ([]Treatment, error)

	// Save creates or updates a treatment
	Save(ctx context.Context, treatment *Treatment) error

	// Delete deletes a treatment
	Delete(ctx context.Context, id uuid.UUID) error
}

// ZoneConfigRepository defines the interface for zone configuration persistence
type ZoneConfigRepository interface {
	// FindByID finds a zone configuration by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*ZoneConfig, error)

	// FindByIDForUpdate finds a zone configuration and locks its row
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*ZoneConfig, error)

	// FindByTreatment finds all configurations of a treatment
	FindByTreatment(ctx context.Context, treatmentID uuid.UUID) ([]ZoneConfig, error)

	// FindByTreatments finds all configurations of multiple treatments
	FindByTreatments(ctx context.Context, treatmentIDs []uuid.UUID) ([]ZoneConfig, error)

	// FindByCategory finds all configurations whose treatment lives in the category
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]ZoneConfig, error)

	// Save creates or updates a zone configuration
	Save(ctx context.Context, config *ZoneConfig) error

	// Delete deletes a zone configuration
	Delete(ctx context.Context, id uuid.UUID) error
}

// ComboRepository defines the interface for combo persistence
type ComboRepository interface {
	// FindByID finds a combo by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Combo, error)

	// FindBySlug finds a combo by its slug
	FindBySlug(ctx context.Context, slug string) (*Combo, error)

	// FindByIDs finds multiple combos by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Combo, error)

	// FindByCategory finds all combos in a category
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]Combo, error)

	// FindByJourney finds all combos assigned to a journey
	FindByJourney(ctx context.Context, journeyID uuid.UUID) ([]Combo, error)

	// Save creates or updates a combo
	Save(ctx context.Context, combo *Combo) error

	// Delete deletes a combo
	Delete(ctx context.Context, id uuid.UUID) error
}

// JourneyRepository defines the interface for journey persistence
type JourneyRepository interface {
	// FindByID finds a journey by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Journey, error)

	// FindBySlug finds a journey by its slug
	FindBySlug(ctx context.Context, slug string) (*Journey, error)

	// FindByIDs finds multiple journeys by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Journey, error)

	// FindByCategory finds all journeys in a category
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]Journey, error)

	// Save creates or updates a journey
	Save(ctx context.Context, journey *Journey) error

	// Delete deletes a journey
	Delete(ctx context.Context, id uuid.UUID) error
}

// ItemOrderRepository defines the interface for ordering entry persistence
type ItemOrderRepository interface {
	// FindByContext finds all entries of a context ordered by position
	FindByContext(ctx context.Context, contextKind ContextKind, contextID uuid.UUID) ([]ItemOrder, error)

	// FindByContextForUpdate finds a context's entries and locks their rows
	FindByContextForUpdate(ctx context.Context, contextKind ContextKind, contextID uuid.UUID) ([]ItemOrder, error)

	// SaveBatch creates or updates multiple entries
	SaveBatch(ctx context.Context, entries []*ItemOrder) error

	// DeleteBatch deletes entries by their IDs
	DeleteBatch(ctx context.Context, ids []uuid.UUID) error

	// DeleteByItem deletes every entry referencing an item, in any context
	DeleteByItem(ctx context.Context, item ItemRef) error
}

// PlacementRepository defines the interface for placement persistence
type PlacementRepository interface {
	// FindByID finds a placement by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Placement, error)

	// FindBySlug finds a placement by its slug
	FindBySlug(ctx context.Context, slug string) (*Placement, error)

	// FindByIDForUpdate finds a placement and locks its row
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Placement, error)

	// FindAll finds all placements matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Placement, error)

	// FindItems finds a placement's entries ordered by position
	FindItems(ctx context.Context, placementID uuid.UUID) ([]PlacementItem, error)

	// Save creates or updates a placement
	Save(ctx context.Context, placement *Placement) error

	// SaveItems creates or updates multiple placement entries
	SaveItems(ctx context.Context, items []*PlacementItem) error

	// DeleteItems deletes placement entries by their IDs
	DeleteItems(ctx context.Context, ids []uuid.UUID) error

	// DeleteItemsByItem deletes every placement entry referencing an item
	DeleteItemsByItem(ctx context.Context, item ItemRef) error

	// Delete deletes a placement and its entries
	Delete(ctx context.Context, id uuid.UUID) error
}

// IncompatibilityRepository defines the interface for edge persistence
type IncompatibilityRepository interface {
	// FindByPair finds the edge between two configs, if any. IDs may be
	// passed in either order.
	FindByPair(ctx context.Context, a, b uuid.UUID) (*Incompatibility, error)

	// FindByNode finds all edges incident to a config
	FindByNode(ctx context.Context, configID uuid.UUID) ([]Incompatibility, error)

	// Save creates an edge
	Save(ctx context.Context, edge *Incompatibility) error

	// Delete deletes an edge
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteBatch deletes edges by their IDs
	DeleteBatch(ctx context.Context, ids []uuid.UUID) error

	// DeleteByNode deletes every edge incident to a config
	DeleteByNode(ctx context.Context, configID uuid.UUID) error
}

// FilterRepository defines the interface for filter attribute persistence
// and for the treatment assignments of the attributes.
type FilterRepository interface {
	// FindByID finds a filter attribute by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*FilterAttribute, error)

	// FindByIDs finds multiple filter attributes by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]FilterAttribute, error)

	// FindByKind finds all attributes of one taxonomy ordered by name
	FindByKind(ctx context.Context, kind FilterKind) ([]FilterAttribute, error)

	// Save creates or updates a filter attribute
	Save(ctx context.Context, attribute *FilterAttribute) error

	// Delete deletes a filter attribute and its treatment assignments
	Delete(ctx context.Context, id uuid.UUID) error

	// FindIDsByTreatment finds the attribute IDs assigned to a treatment
	FindIDsByTreatment(ctx context.Context, treatmentID uuid.UUID) ([]uuid.UUID, error)

	// ReplaceForTreatment replaces a treatment's assignments with the given set
	ReplaceForTreatment(ctx context.Context, treatmentID uuid.UUID, filterIDs []uuid.UUID) error

	// DeleteForTreatment deletes every assignment of a treatment
	DeleteForTreatment(ctx context.Context, treatmentID uuid.UUID) error
}

// GalleryRepository defines the interface for gallery image persistence
type GalleryRepository interface {
	// FindByID finds a gallery image by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*GalleryImage, error)

	// FindByOwner finds an owner's images ordered by position
	FindByOwner(ctx context.Context, owner ItemRef) ([]GalleryImage, error)

	// FindByOwnerForUpdate finds an owner's images and locks their rows
	FindByOwnerForUpdate(ctx context.Context, owner ItemRef) ([]GalleryImage, error)

	// Save creates or updates a gallery image
	Save(ctx context.Context, image *GalleryImage) error

	// SaveBatch creates or updates multiple gallery images
	SaveBatch(ctx context.Context, images []*GalleryImage) error

	// Delete deletes a gallery image
	Delete(ctx context.Context, id uuid.UUID) error
}
