package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/domain/shared"
)

// PlacementService handles placement CRUD. Reconciling a placement's
// items is the OrderingService's job.
type PlacementService struct {
	placementRepo catalog.PlacementRepository
}

// NewPlacementService creates a new PlacementService
func NewPlacementService(placementRepo catalog.PlacementRepository) *PlacementService {
	return &PlacementService{placementRepo: placementRepo}
}

// Create creates a new placement
func (s *PlacementService) Create(ctx context.Context, req CreatePlacementRequest) (*PlacementResponse, error) {
	if _, err := s.placementRepo.FindBySlug(ctx, req.Slug); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Placement with this slug already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	placement, err := catalog.NewPlacement(req.Title, req.Slug)
	if err != nil {
		return nil, err
	}

	if err := s.placementRepo.Save(ctx, placement); err != nil {
		return nil, err
	}
	return ToPlacementResponse(placement), nil
}

// GetByID retrieves a placement by ID
func (s *PlacementService) GetByID(ctx context.Context, id uuid.UUID) (*PlacementResponse, error) {
	placement, err := s.placementRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPlacementResponse(placement), nil
}

// List retrieves all placements
func (s *PlacementService) List(ctx context.Context, filter shared.Filter) ([]PlacementResponse, error) {
	placements, err := s.placementRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]PlacementResponse, len(placements))
	for i := range placements {
		responses[i] = *ToPlacementResponse(&placements[i])
	}
	return responses, nil
}

// Update updates a placement's title, capacity and active flag. Shrinking
// the capacity below the current item count is allowed; existing items
// stay until the next reconcile submits an oversized target.
func (s *PlacementService) Update(ctx context.Context, id uuid.UUID, req UpdatePlacementRequest) (*PlacementResponse, error) {
	placement, err := s.placementRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := placement.Update(req.Title, req.MaxItems); err != nil {
		return nil, err
	}
	if req.IsActive != nil {
		placement.SetActive(*req.IsActive)
	}

	if err := s.placementRepo.Save(ctx, placement); err != nil {
		return nil, err
	}
	return ToPlacementResponse(placement), nil
}

// Delete deletes a placement and its entries
func (s *PlacementService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.placementRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.placementRepo.Delete(ctx, id)
}
