package catalog

import (
	"fmt"

	"github.com/google/uuid"
)

// ItemKind discriminates the three sellable item types. Items carry no
// shared base table; an (kind, id) pair is the only cross-kind handle.
type ItemKind string

const (
	ItemKindTreatment ItemKind = "treatment"
	ItemKindCombo     ItemKind = "combo"
	ItemKindJourney   ItemKind = "journey"
)

// IsValid checks if the item kind is valid
func (k ItemKind) IsValid() bool {
	switch k {
	case ItemKindTreatment, ItemKindCombo, ItemKindJourney:
		return true
	default:
		return false
	}
}

// ItemRef is a value reference to a catalog item. It is comparable and
// used as a map key throughout ordering and sorting.
type ItemRef struct {
	Kind ItemKind
	ID   uuid.UUID
}

// NewItemRef creates an item reference
func NewItemRef(kind ItemKind, id uuid.UUID) ItemRef {
	return ItemRef{Kind: kind, ID: id}
}

// String returns a stable "kind:id" form, used in error messages
func (r ItemRef) String() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.ID)
}

// ContextKind discriminates the two scopes a manual ordering can live in
type ContextKind string

const (
	ContextKindCategory ContextKind = "category"
	ContextKindJourney  ContextKind = "journey"
)

// IsValid checks if the context kind is valid
func (k ContextKind) IsValid() bool {
	return k == ContextKindCategory || k == ContextKindJourney
}
