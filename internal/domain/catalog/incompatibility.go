package catalog

import (
	"bytes"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/shared"
)

// PositionsOverlap reports whether two body positions can collide on a
// client. "any" overlaps everything; concrete positions only themselves.
func PositionsOverlap(a, b BodyPosition) bool {
	if a == BodyPositionAny || b == BodyPositionAny {
		return true
	}
	return a == b
}

// CanonicalPair orders two config IDs so each undirected edge has exactly
// one stored representation.
func CanonicalPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(a[:], b[:]) > 0 {
		return b, a
	}
	return a, b
}

// EdgeEndpoint is the slice of a zone configuration the edge invariants
// look at.
type EdgeEndpoint struct {
	ConfigID   uuid.UUID
	ZoneID     uuid.UUID
	CategoryID uuid.UUID
	Position   BodyPosition
}

// ValidateEdge checks the invariants an incompatibility edge must hold:
// no self-edges, endpoints in different zones of the same category, and
// overlapping body positions. Checks run in that order so callers get
// the most specific violation.
func ValidateEdge(left, right EdgeEndpoint) error {
	if left.ConfigID == right.ConfigID {
		return NewSelfIncompatibilityError(left.ConfigID)
	}
	if left.ZoneID == right.ZoneID {
		return NewZoneCollisionError(left.ConfigID, right.ConfigID)
	}
	if left.CategoryID != right.CategoryID {
		return NewCategoryMismatchError(left.ConfigID, right.ConfigID)
	}
	if !PositionsOverlap(left.Position, right.Position) {
		return NewPositionDisjointError(left.ConfigID, right.ConfigID)
	}
	return nil
}

// Incompatibility is an undirected edge between two zone configurations
// that must not be booked together. LeftID < RightID always holds.
type Incompatibility struct {
	shared.BaseEntity
	LeftID  uuid.UUID
	RightID uuid.UUID
}

// NewIncompatibility creates a canonical edge between two validated endpoints
func NewIncompatibility(left, right EdgeEndpoint) (*Incompatibility, error) {
	if err := ValidateEdge(left, right); err != nil {
		return nil, err
	}

	leftID, rightID := CanonicalPair(left.ConfigID, right.ConfigID)
	return &Incompatibility{
		BaseEntity: shared.NewBaseEntity(),
		LeftID:     leftID,
		RightID:    rightID,
	}, nil
}

// Other returns the edge endpoint opposite the given config ID
func (e *Incompatibility) Other(configID uuid.UUID) uuid.UUID {
	if e.LeftID == configID {
		return e.RightID
	}
	return e.LeftID
}

// Touches reports whether the edge is incident to the given config ID
func (e *Incompatibility) Touches(configID uuid.UUID) bool {
	return e.LeftID == configID || e.RightID == configID
}
