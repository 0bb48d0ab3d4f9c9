package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/shared"
)

// DefaultPlacementCapacity is the item cap for new placements.
const DefaultPlacementCapacity = 40

// Placement is a capacity-bounded curated slot, such as a homepage
// carousel. Unlike category and journey contexts it accepts items from
// anywhere in the catalog but never more than MaxItems of them.
type Placement struct {
	shared.BaseAggregateRoot
	Slug     string
	Title    string
	MaxItems int
	IsActive bool
}

// NewPlacement creates a placement with the default capacity
func NewPlacement(title, slug string) (*Placement, error) {
	if err := validateTitle(title, 200); err != nil {
		return nil, err
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}

	return &Placement{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Slug:              strings.ToLower(slug),
		Title:             title,
		MaxItems:          DefaultPlacementCapacity,
		IsActive:          true,
	}, nil
}

// Update updates title and capacity
func (p *Placement) Update(title string, maxItems int) error {
	if err := validateTitle(title, 200); err != nil {
		return err
	}
	if maxItems < 1 {
		return shared.NewDomainError("INVALID_MAX_ITEMS", "Max items must be at least 1")
	}

	p.Title = title
	p.MaxItems = maxItems
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetActive toggles whether the placement is served
func (p *Placement) SetActive(active bool) {
	p.IsActive = active
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// CheckCapacity rejects a target list longer than the placement allows.
// The check runs against the full target length before any write happens.
func (p *Placement) CheckCapacity(requested int) error {
	if requested > p.MaxItems {
		return NewCapacityExceededError(p.Slug, p.MaxItems, requested)
	}
	return nil
}

// PlacementItem pins one item to a position inside a placement.
type PlacementItem struct {
	shared.BaseEntity
	PlacementID uuid.UUID
	Item        ItemRef
	Order       int
}

// NewPlacementItem creates a placement entry for an item
func NewPlacementItem(placementID uuid.UUID, item ItemRef, order int) (*PlacementItem, error) {
	if placementID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PLACEMENT_ID", "Placement ID cannot be empty")
	}
	if !item.Kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_ITEM_KIND", "Unknown item kind "+string(item.Kind))
	}
	if order < 0 {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order cannot be negative")
	}

	return &PlacementItem{
		BaseEntity:  shared.NewBaseEntity(),
		PlacementID: placementID,
		Item:        item,
		Order:       order,
	}, nil
}

// SetOrder moves the entry to a new position
func (i *PlacementItem) SetOrder(order int) {
	i.Order = order
	i.UpdatedAt = time.Now()
}
