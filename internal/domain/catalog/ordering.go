package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/shared"
)

// ItemOrder pins one item to a position inside an ordering context. A
// context is either a category listing or a journey's member list; each
// item appears at most once per context.
type ItemOrder struct {
	shared.BaseEntity
	ContextKind ContextKind
	ContextID   uuid.UUID
	Item        ItemRef
	Order       int
}

// NewItemOrder creates an ordering entry for an item in a context
func NewItemOrder(contextKind ContextKind, contextID uuid.UUID, item ItemRef, order int) (*ItemOrder, error) {
	if !contextKind.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONTEXT_KIND", "Context kind must be category or journey")
	}
	if contextID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CONTEXT_ID", "Context ID cannot be empty")
	}
	if !item.Kind.IsValid() {
		return nil, NewInvalidItemKindError(item, contextKind)
	}
	if order < 0 {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order cannot be negative")
	}

	return &ItemOrder{
		BaseEntity:  shared.NewBaseEntity(),
		ContextKind: contextKind,
		ContextID:   contextID,
		Item:        item,
		Order:       order,
	}, nil
}

// SetOrder moves the entry to a new position
func (o *ItemOrder) SetOrder(order int) {
	o.Order = order
	o.UpdatedAt = time.Now()
}

// ValidateContextItem checks whether an item may be ordered inside the
// given context. Journeys cannot contain journeys, and an item must
// belong to the context it is ordered in: category contexts require a
// matching category, journey contexts a matching journey assignment.
func ValidateContextItem(contextKind ContextKind, contextID uuid.UUID, item ResolvedItem) error {
	switch contextKind {
	case ContextKindCategory:
		if item.CategoryID != contextID {
			return NewInvalidContainmentError(item.Ref, contextKind)
		}
	case ContextKindJourney:
		if item.Ref.Kind == ItemKindJourney {
			return NewInvalidItemKindError(item.Ref, contextKind)
		}
		if item.JourneyID == nil || *item.JourneyID != contextID {
			return NewInvalidContainmentError(item.Ref, contextKind)
		}
	default:
		return shared.NewDomainError("INVALID_CONTEXT_KIND", "Context kind must be category or journey")
	}
	return nil
}
