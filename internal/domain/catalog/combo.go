package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spacatalog/backend/internal/domain/shared"
)

// Combo bundles several treatment sessions under a single mandatory price.
type Combo struct {
	shared.BaseAggregateRoot
	Slug             string
	Title            string
	Description      string
	ImageURL         string
	CategoryID       uuid.UUID
	JourneyID        *uuid.UUID
	IsActive         bool
	IsFeatured       bool
	Price            decimal.Decimal
	PromotionalPrice *decimal.Decimal
	Sessions         int
	// MinSessionIntervalDays is the minimum gap between two sessions
	MinSessionIntervalDays int
}

// NewCombo creates a new combo in a category
func NewCombo(title, slug string, categoryID uuid.UUID, price decimal.Decimal, promotionalPrice *decimal.Decimal, sessions int) (*Combo, error) {
	if err := validateTitle(title, 200); err != nil {
		return nil, err
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY_ID", "Category ID cannot be empty")
	}
	if err := validatePricing(price, promotionalPrice); err != nil {
		return nil, err
	}
	if sessions < 1 {
		return nil, shared.NewDomainError("INVALID_SESSIONS", "A combo needs at least one session")
	}

	combo := &Combo{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Slug:              strings.ToLower(slug),
		Title:             title,
		CategoryID:        categoryID,
		IsActive:          true,
		Price:             price,
		PromotionalPrice:  promotionalPrice,
		Sessions:          sessions,
	}

	combo.AddDomainEvent(NewItemCreatedEvent(combo.Ref(), categoryID))

	return combo, nil
}

// Ref returns the polymorphic reference for this combo
func (c *Combo) Ref() ItemRef {
	return NewItemRef(ItemKindCombo, c.ID)
}

// EffectivePrice is the promotional price when set, the base price
// otherwise. A combo always has a defined effective price.
func (c *Combo) EffectivePrice() decimal.Decimal {
	if c.PromotionalPrice != nil {
		return *c.PromotionalPrice
	}
	return c.Price
}

// Update updates the combo's presentation fields
func (c *Combo) Update(title, description, imageURL string) error {
	if err := validateTitle(title, 200); err != nil {
		return err
	}

	c.Title = title
	c.Description = description
	c.ImageURL = imageURL
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// UpdatePricing replaces the price pair
func (c *Combo) UpdatePricing(price decimal.Decimal, promotionalPrice *decimal.Decimal) error {
	if err := validatePricing(price, promotionalPrice); err != nil {
		return err
	}

	c.Price = price
	c.PromotionalPrice = promotionalPrice
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// AssignJourney attaches the combo to a journey, or detaches it when nil
func (c *Combo) AssignJourney(journeyID *uuid.UUID) {
	c.JourneyID = journeyID
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// SetActive toggles visibility in listings
func (c *Combo) SetActive(active bool) {
	c.IsActive = active
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
