package catalog

import (
	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/shared"
)

// Domain event types
const (
	EventTypeCategoryCreated     = "catalog.category.created"
	EventTypeCategoryUpdated     = "catalog.category.updated"
	EventTypeItemCreated         = "catalog.item.created"
	EventTypeContextReordered    = "catalog.context.reordered"
	EventTypePlacementReordered  = "catalog.placement.reordered"
	EventTypeIncompatibilitySet  = "catalog.incompatibility.set"
	EventTypeEdgesPruned         = "catalog.incompatibility.pruned"
	EventTypeGalleryReordered    = "catalog.gallery.reordered"
	EventTypeGalleryImageRemoved = "catalog.gallery.image_removed"
)

// CategoryCreatedEvent is published when a category is created
type CategoryCreatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// NewCategoryCreatedEvent creates a category created event
func NewCategoryCreatedEvent(category *Category) *CategoryCreatedEvent {
	return &CategoryCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCategoryCreated, "Category", category.ID),
		Name:            category.Name,
		Slug:            category.Slug,
	}
}

// CategoryUpdatedEvent is published when a category changes
type CategoryUpdatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewCategoryUpdatedEvent creates a category updated event
func NewCategoryUpdatedEvent(category *Category) *CategoryUpdatedEvent {
	return &CategoryUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCategoryUpdated, "Category", category.ID),
		Name:            category.Name,
	}
}

// ItemCreatedEvent is published when a treatment, combo or journey is created
type ItemCreatedEvent struct {
	shared.BaseDomainEvent
	Kind       ItemKind  `json:"kind"`
	CategoryID uuid.UUID `json:"category_id"`
}

// NewItemCreatedEvent creates an item created event
func NewItemCreatedEvent(ref ItemRef, categoryID uuid.UUID) *ItemCreatedEvent {
	return &ItemCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemCreated, string(ref.Kind), ref.ID),
		Kind:            ref.Kind,
		CategoryID:      categoryID,
	}
}

// ContextReorderedEvent is published after a category or journey context
// is reconciled against a target order.
type ContextReorderedEvent struct {
	shared.BaseDomainEvent
	ContextKind ContextKind `json:"context_kind"`
	Created     int         `json:"created"`
	Updated     int         `json:"updated"`
	Deleted     int         `json:"deleted"`
}

// NewContextReorderedEvent creates a context reordered event
func NewContextReorderedEvent(contextKind ContextKind, contextID uuid.UUID, created, updated, deleted int) *ContextReorderedEvent {
	return &ContextReorderedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeContextReordered, string(contextKind), contextID),
		ContextKind:     contextKind,
		Created:         created,
		Updated:         updated,
		Deleted:         deleted,
	}
}

// PlacementReorderedEvent is published after a placement is reconciled
type PlacementReorderedEvent struct {
	shared.BaseDomainEvent
	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
}

// NewPlacementReorderedEvent creates a placement reordered event
func NewPlacementReorderedEvent(placementID uuid.UUID, created, updated, deleted int) *PlacementReorderedEvent {
	return &PlacementReorderedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePlacementReordered, "Placement", placementID),
		Created:         created,
		Updated:         updated,
		Deleted:         deleted,
	}
}

// EdgesPrunedEvent is published when invalid incompatibility edges are
// removed after a configuration mutation.
type EdgesPrunedEvent struct {
	shared.BaseDomainEvent
	Removed int `json:"removed"`
}

// NewEdgesPrunedEvent creates an edges pruned event for a mutated config
func NewEdgesPrunedEvent(configID uuid.UUID, removed int) *EdgesPrunedEvent {
	return &EdgesPrunedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEdgesPruned, "ZoneConfig", configID),
		Removed:         removed,
	}
}

// GalleryReorderedEvent is published after a gallery order is applied
type GalleryReorderedEvent struct {
	shared.BaseDomainEvent
	OwnerKind ItemKind `json:"owner_kind"`
	Images    int      `json:"images"`
}

// NewGalleryReorderedEvent creates a gallery reordered event
func NewGalleryReorderedEvent(owner ItemRef, images int) *GalleryReorderedEvent {
	return &GalleryReorderedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeGalleryReordered, string(owner.Kind), owner.ID),
		OwnerKind:       owner.Kind,
		Images:          images,
	}
}

// GalleryImageRemovedEvent is published after gallery entries are removed
type GalleryImageRemovedEvent struct {
	shared.BaseDomainEvent
	OwnerKind ItemKind `json:"owner_kind"`
	Removed   int      `json:"removed"`
}

// NewGalleryImageRemovedEvent creates a gallery image removed event
func NewGalleryImageRemovedEvent(owner ItemRef, removed int) *GalleryImageRemovedEvent {
	return &GalleryImageRemovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeGalleryImageRemoved, string(owner.Kind), owner.ID),
		OwnerKind:       owner.Kind,
		Removed:         removed,
	}
}
