package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/shared"
)

// Journey is a curated multi-item program inside a category. Treatments
// and combos reference the journey they belong to; journeys never nest.
type Journey struct {
	shared.BaseAggregateRoot
	Slug        string
	Title       string
	Description string
	ImageURL    string
	CategoryID  uuid.UUID
}

// NewJourney creates a new journey in a category
func NewJourney(title, slug string, categoryID uuid.UUID) (*Journey, error) {
	if err := validateTitle(title, 200); err != nil {
		return nil, err
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY_ID", "Category ID cannot be empty")
	}

	journey := &Journey{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Slug:              strings.ToLower(slug),
		Title:             title,
		CategoryID:        categoryID,
	}

	journey.AddDomainEvent(NewItemCreatedEvent(journey.Ref(), categoryID))

	return journey, nil
}

// Ref returns the polymorphic reference for this journey
func (j *Journey) Ref() ItemRef {
	return NewItemRef(ItemKindJourney, j.ID)
}

// Update updates the journey's presentation fields
func (j *Journey) Update(title, description, imageURL string) error {
	if err := validateTitle(title, 200); err != nil {
		return err
	}

	j.Title = title
	j.Description = description
	j.ImageURL = imageURL
	j.UpdatedAt = time.Now()
	j.IncrementVersion()

	return nil
}
