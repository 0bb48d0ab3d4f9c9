package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/shared"
)

// Zone is a body zone treatments can be configured for. Zone names are
// unique per category (case-insensitive, enforced by the store).
type Zone struct {
	shared.BaseAggregateRoot
	Name       string
	CategoryID uuid.UUID
}

// NewZone creates a new zone inside a category
func NewZone(name string, categoryID uuid.UUID) (*Zone, error) {
	if err := validateTitle(name, 100); err != nil {
		return nil, err
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY_ID", "Category ID cannot be empty")
	}

	return &Zone{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		CategoryID:        categoryID,
	}, nil
}

// Rename changes the zone name
func (z *Zone) Rename(name string) error {
	if err := validateTitle(name, 100); err != nil {
		return err
	}

	z.Name = name
	z.UpdatedAt = time.Now()
	z.IncrementVersion()

	return nil
}
