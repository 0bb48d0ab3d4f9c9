package catalog

import (
	"time"

	"github.com/spacatalog/backend/internal/domain/shared"
)

// FilterKind names one of the browse filter taxonomies items can be
// tagged with.
type FilterKind string

const (
	FilterKindTreatmentType FilterKind = "treatment-type"
	FilterKindObjective     FilterKind = "objective"
	FilterKindIntensity     FilterKind = "intensity"
	FilterKindDuration      FilterKind = "duration"
	FilterKindTag           FilterKind = "tag"
)

// IsValid checks if the filter kind is valid
func (k FilterKind) IsValid() bool {
	switch k {
	case FilterKindTreatmentType, FilterKindObjective, FilterKindIntensity,
		FilterKindDuration, FilterKindTag:
		return true
	default:
		return false
	}
}

// FilterAttribute is one value of a browse filter taxonomy. Names are
// unique per kind. Duration buckets carry their upper bound in minutes;
// objectives may carry an illustration. Other kinds are plain labels.
type FilterAttribute struct {
	shared.BaseAggregateRoot
	Kind     FilterKind
	Name     string
	ImageURL string
	Minutes  int
}

// NewFilterAttribute creates a filter attribute of the given kind
func NewFilterAttribute(kind FilterKind, name, imageURL string, minutes int) (*FilterAttribute, error) {
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_FILTER_KIND", "Unknown filter kind")
	}
	if err := validateTitle(name, 100); err != nil {
		return nil, err
	}
	if kind == FilterKindDuration && minutes <= 0 {
		return nil, shared.NewDomainError("INVALID_DURATION", "Duration bucket must be greater than 0 minutes")
	}
	if kind != FilterKindDuration {
		minutes = 0
	}
	if kind != FilterKindObjective {
		imageURL = ""
	}

	return &FilterAttribute{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Kind:              kind,
		Name:              name,
		ImageURL:          imageURL,
		Minutes:           minutes,
	}, nil
}

// Update changes the attribute's label and kind-specific extras. The
// kind itself is fixed at creation.
func (f *FilterAttribute) Update(name, imageURL string, minutes int) error {
	if err := validateTitle(name, 100); err != nil {
		return err
	}
	if f.Kind == FilterKindDuration && minutes <= 0 {
		return shared.NewDomainError("INVALID_DURATION", "Duration bucket must be greater than 0 minutes")
	}

	f.Name = name
	if f.Kind == FilterKindObjective {
		f.ImageURL = imageURL
	}
	if f.Kind == FilterKindDuration {
		f.Minutes = minutes
	}
	f.UpdatedAt = time.Now()
	f.IncrementVersion()

	return nil
}
