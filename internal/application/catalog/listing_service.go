package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spacatalog/backend/internal/domain/catalog"
)

// ListingService assembles sorted category and journey listings. Listings
// are read-only: dangling references in the ordering state are simply not
// shown rather than rejected.
type ListingService struct {
	categoryRepo  catalog.CategoryRepository
	journeyRepo   catalog.JourneyRepository
	itemOrderRepo catalog.ItemOrderRepository
	resolver      *ItemResolver
}

// NewListingService creates a new ListingService
func NewListingService(
	categoryRepo catalog.CategoryRepository,
	journeyRepo catalog.JourneyRepository,
	itemOrderRepo catalog.ItemOrderRepository,
	resolver *ItemResolver,
) *ListingService {
	return &ListingService{
		categoryRepo:  categoryRepo,
		journeyRepo:   journeyRepo,
		itemOrderRepo: itemOrderRepo,
		resolver:      resolver,
	}
}

// ListCategory returns a category's listing sorted by the requested key,
// falling back to the category default. Journeys are sorted as a separate
// block and spliced before or after the treatment/combo list according to
// the category's journey placement.
func (s *ListingService) ListCategory(ctx context.Context, slug, requestedSort string) (*CategoryListingResponse, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	key, err := catalog.NormalizeSortKey(requestedSort, category.DefaultSort)
	if err != nil {
		return nil, err
	}

	items, journeys, err := s.resolver.ResolveCategoryItems(ctx, category.ID)
	if err != nil {
		return nil, err
	}

	var orderMap map[catalog.ItemRef]int
	if key == catalog.SortManual {
		orderMap, err = s.contextOrderMap(ctx, catalog.ContextKindCategory, category.ID)
		if err != nil {
			return nil, err
		}
	}

	sortedItems, err := catalog.SortItems(items, key, orderMap)
	if err != nil {
		return nil, err
	}

	var listing []catalog.ResolvedItem
	if category.IncludeJourneys && len(journeys) > 0 {
		sortedJourneys, err := catalog.SortItems(journeys, key, orderMap)
		if err != nil {
			return nil, err
		}
		if category.JourneyPosition == catalog.JourneyPositionFirst {
			listing = append(sortedJourneys, sortedItems...)
		} else {
			listing = append(sortedItems, sortedJourneys...)
		}
	} else {
		listing = sortedItems
	}

	return &CategoryListingResponse{
		Category:    ToCategoryResponse(category),
		AppliedSort: string(key),
		Items:       toListingItems(listing),
	}, nil
}

// ListJourney returns a journey's member listing. Members default to
// manual order; any implemented sort key can be requested instead.
func (s *ListingService) ListJourney(ctx context.Context, journeyID uuid.UUID, requestedSort string) (*JourneyListingResponse, error) {
	journey, err := s.journeyRepo.FindByID(ctx, journeyID)
	if err != nil {
		return nil, err
	}

	key, err := catalog.NormalizeSortKey(requestedSort, catalog.SortManual)
	if err != nil {
		return nil, err
	}

	members, err := s.resolver.ResolveJourneyMembers(ctx, journey.ID)
	if err != nil {
		return nil, err
	}

	var orderMap map[catalog.ItemRef]int
	if key == catalog.SortManual {
		orderMap, err = s.contextOrderMap(ctx, catalog.ContextKindJourney, journey.ID)
		if err != nil {
			return nil, err
		}
	}

	sorted, err := catalog.SortItems(members, key, orderMap)
	if err != nil {
		return nil, err
	}

	journeyResp := ToJourneyResponse(journey)
	memberPrices := make([]*decimal.Decimal, len(members))
	for i, member := range members {
		memberPrices[i] = member.Price
	}
	if price, ok := catalog.JourneyEffectivePrice(memberPrices); ok {
		journeyResp.EffectivePrice = &price
	}

	return &JourneyListingResponse{
		Journey:     journeyResp,
		AppliedSort: string(key),
		Items:       toListingItems(sorted),
	}, nil
}

// contextOrderMap loads the manual positions of a context keyed by item ref
func (s *ListingService) contextOrderMap(ctx context.Context, contextKind catalog.ContextKind, contextID uuid.UUID) (map[catalog.ItemRef]int, error) {
	entries, err := s.itemOrderRepo.FindByContext(ctx, contextKind, contextID)
	if err != nil {
		return nil, err
	}
	orderMap := make(map[catalog.ItemRef]int, len(entries))
	for _, entry := range entries {
		orderMap[entry.Item] = entry.Order
	}
	return orderMap, nil
}
