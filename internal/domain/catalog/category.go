package catalog

import (
	"strings"
	"time"

	"github.com/spacatalog/backend/internal/domain/shared"
)

// JourneyPosition controls where a category splices its journeys relative
// to the treatment/combo list.
type JourneyPosition string

const (
	JourneyPositionFirst JourneyPosition = "FIRST"
	JourneyPositionLast  JourneyPosition = "LAST"
)

// IsValid checks if the journey position is valid
func (p JourneyPosition) IsValid() bool {
	return p == JourneyPositionFirst || p == JourneyPositionLast
}

// Category groups treatments, combos and journeys and owns the manual
// ordering context for its listing.
type Category struct {
	shared.BaseAggregateRoot
	Name            string
	Slug            string
	ImageURL        string
	IncludeJourneys bool
	JourneyPosition JourneyPosition
	DefaultSort     SortKey
	SEOTitle        string
	SEODescription  string
}

// NewCategory creates a new category
func NewCategory(name, slug string) (*Category, error) {
	if err := validateTitle(name, 100); err != nil {
		return nil, err
	}
	if err := validateSlug(slug); err != nil {
		return nil, err
	}

	category := &Category{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              strings.ToLower(slug),
		IncludeJourneys:   true,
		JourneyPosition:   JourneyPositionLast,
		DefaultSort:       SortPriceAsc,
	}

	category.AddDomainEvent(NewCategoryCreatedEvent(category))

	return category, nil
}

// Update updates the category's basic information
func (c *Category) Update(name, imageURL, seoTitle, seoDescription string) error {
	if err := validateTitle(name, 100); err != nil {
		return err
	}
	if len(seoTitle) > 70 {
		return shared.NewDomainError("INVALID_SEO_TITLE", "SEO title cannot exceed 70 characters")
	}
	if len(seoDescription) > 160 {
		return shared.NewDomainError("INVALID_SEO_DESCRIPTION", "SEO description cannot exceed 160 characters")
	}

	c.Name = name
	c.ImageURL = imageURL
	c.SEOTitle = seoTitle
	c.SEODescription = seoDescription
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCategoryUpdatedEvent(c))

	return nil
}

// SetJourneyPlacement configures whether and where journeys appear in the listing
func (c *Category) SetJourneyPlacement(include bool, position JourneyPosition) error {
	if !position.IsValid() {
		return shared.NewDomainError("INVALID_JOURNEY_POSITION", "Journey position must be FIRST or LAST")
	}

	c.IncludeJourneys = include
	c.JourneyPosition = position
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetDefaultSort sets the sort applied when a listing request names none
func (c *Category) SetDefaultSort(key SortKey) error {
	if !key.IsImplemented() {
		return shared.NewDomainError("INVALID_DEFAULT_SORT", "Default sort must be an implemented sort key")
	}

	c.DefaultSort = key
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// validateTitle validates a human-readable name up to maxLen characters
func validateTitle(title string, maxLen int) error {
	if strings.TrimSpace(title) == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(title) > maxLen {
		return shared.NewDomainError("INVALID_NAME", "Name is too long")
	}
	return nil
}

// validateSlug validates a URL slug
func validateSlug(slug string) error {
	if slug == "" {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot be empty")
	}
	if len(slug) > 120 {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot exceed 120 characters")
	}
	for _, r := range strings.ToLower(slug) {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return shared.NewDomainError("INVALID_SLUG", "Slug can only contain letters, numbers and hyphens")
		}
	}
	return nil
}
