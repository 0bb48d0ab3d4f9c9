package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spacatalog/backend/internal/domain/shared"
)

// BodyPosition is the position a client lies in during a zone treatment.
// "any" overlaps every position; the two concrete positions overlap only
// with themselves.
type BodyPosition string

const (
	BodyPositionUp   BodyPosition = "up"
	BodyPositionDown BodyPosition = "down"
	BodyPositionAny  BodyPosition = "any"
)

// IsValid checks if the body position is valid
func (p BodyPosition) IsValid() bool {
	switch p {
	case BodyPositionUp, BodyPositionDown, BodyPositionAny:
		return true
	default:
		return false
	}
}

// Treatment is a single sellable treatment. Its price lives on its zone
// configurations, not on the treatment itself.
type Treatment struct {
	shared.BaseAggregateRoot
	Slug        string
	Title       string
	Description string
	ImageURL    string
	CategoryID  uuid.UUID
	JourneyID   *uuid.UUID
	IsActive    bool
	IsFeatured  bool
	// RequiresZones marks treatments that cannot be booked without
	// selecting at least one zone configuration.
	RequiresZones bool
}

// NewTreatment creates a new treatment in a category
func NewTreatment(title, slug string, categoryID uuid.UUID) (*Treatment, error) {
	if err := validateTitle(title, 200); err != nil {
		return nil, err
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY_ID", "Category ID cannot be empty")
	}

	treatment := &Treatment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Slug:              strings.ToLower(slug),
		Title:             title,
		CategoryID:        categoryID,
		IsActive:          true,
		RequiresZones:     true,
	}

	treatment.AddDomainEvent(NewItemCreatedEvent(treatment.Ref(), categoryID))

	return treatment, nil
}

// Ref returns the polymorphic reference for this treatment
func (t *Treatment) Ref() ItemRef {
	return NewItemRef(ItemKindTreatment, t.ID)
}

// Update updates the treatment's presentation fields
func (t *Treatment) Update(title, description, imageURL string) error {
	if err := validateTitle(title, 200); err != nil {
		return err
	}

	t.Title = title
	t.Description = description
	t.ImageURL = imageURL
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// AssignJourney attaches the treatment to a journey, or detaches it when nil
func (t *Treatment) AssignJourney(journeyID *uuid.UUID) {
	t.JourneyID = journeyID
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

// SetActive toggles visibility in listings
func (t *Treatment) SetActive(active bool) {
	t.IsActive = active
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

// SetFeatured toggles the editorial featured flag
func (t *Treatment) SetFeatured(featured bool) {
	t.IsFeatured = featured
	t.UpdatedAt = time.Now()
	t.IncrementVersion()
}

// ZoneConfig prices a treatment for one body zone. It is the node type of
// the incompatibility graph.
type ZoneConfig struct {
	shared.BaseAggregateRoot
	TreatmentID     uuid.UUID
	ZoneID          uuid.UUID
	DurationMinutes int
	Price           decimal.Decimal
	// PromotionalPrice, when set, must be positive and below Price
	PromotionalPrice *decimal.Decimal
	BodyPosition     BodyPosition
}

// NewZoneConfig creates a zone configuration for a treatment
func NewZoneConfig(treatmentID, zoneID uuid.UUID, durationMinutes int, price decimal.Decimal, promotionalPrice *decimal.Decimal, position BodyPosition) (*ZoneConfig, error) {
	if treatmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TREATMENT_ID", "Treatment ID cannot be empty")
	}
	if zoneID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ZONE_ID", "Zone ID cannot be empty")
	}
	if durationMinutes <= 0 {
		return nil, shared.NewDomainError("INVALID_DURATION", "Duration must be greater than 0")
	}
	if err := validatePricing(price, promotionalPrice); err != nil {
		return nil, err
	}
	if position == "" {
		position = BodyPositionAny
	}
	if !position.IsValid() {
		return nil, shared.NewDomainError("INVALID_BODY_POSITION", "Body position must be up, down or any")
	}

	return &ZoneConfig{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		TreatmentID:       treatmentID,
		ZoneID:            zoneID,
		DurationMinutes:   durationMinutes,
		Price:             price,
		PromotionalPrice:  promotionalPrice,
		BodyPosition:      position,
	}, nil
}

// CurrentPrice returns the promotional price when set, the base price otherwise
func (c *ZoneConfig) CurrentPrice() decimal.Decimal {
	if c.PromotionalPrice != nil {
		return *c.PromotionalPrice
	}
	return c.Price
}

// UpdatePricing replaces the price pair
func (c *ZoneConfig) UpdatePricing(price decimal.Decimal, promotionalPrice *decimal.Decimal) error {
	if err := validatePricing(price, promotionalPrice); err != nil {
		return err
	}

	c.Price = price
	c.PromotionalPrice = promotionalPrice
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Relocate moves the configuration to another zone and/or body position.
// Callers must re-validate incompatibility edges afterwards, inside the
// same transaction.
func (c *ZoneConfig) Relocate(zoneID uuid.UUID, durationMinutes int, position BodyPosition) error {
	if zoneID == uuid.Nil {
		return shared.NewDomainError("INVALID_ZONE_ID", "Zone ID cannot be empty")
	}
	if durationMinutes <= 0 {
		return shared.NewDomainError("INVALID_DURATION", "Duration must be greater than 0")
	}
	if !position.IsValid() {
		return shared.NewDomainError("INVALID_BODY_POSITION", "Body position must be up, down or any")
	}

	c.ZoneID = zoneID
	c.DurationMinutes = durationMinutes
	c.BodyPosition = position
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// validatePricing enforces price > 0 and promo in (0, price)
func validatePricing(price decimal.Decimal, promotionalPrice *decimal.Decimal) error {
	if !price.IsPositive() {
		return shared.NewDomainError("INVALID_PRICE", "Price must be greater than 0")
	}
	if promotionalPrice != nil {
		if !promotionalPrice.IsPositive() {
			return shared.NewDomainError("INVALID_PROMOTIONAL_PRICE", "Promotional price must be greater than 0")
		}
		if promotionalPrice.GreaterThanOrEqual(price) {
			return shared.NewDomainError("INVALID_PROMOTIONAL_PRICE", "Promotional price must be lower than the price")
		}
	}
	return nil
}
