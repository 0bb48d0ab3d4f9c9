package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/domain/shared"
)

// ItemResolver flattens heterogeneous catalog items into ResolvedItem
// rows with their kind-specific effective prices computed. Treatments
// price from their cheapest zone configuration, combos from their own
// price pair, journeys from their cheapest priced member.
type ItemResolver struct {
	treatmentRepo  catalog.TreatmentRepository
	comboRepo      catalog.ComboRepository
	journeyRepo    catalog.JourneyRepository
	zoneConfigRepo catalog.ZoneConfigRepository
}

// NewItemResolver creates a new ItemResolver
func NewItemResolver(
	treatmentRepo catalog.TreatmentRepository,
	comboRepo catalog.ComboRepository,
	journeyRepo catalog.JourneyRepository,
	zoneConfigRepo catalog.ZoneConfigRepository,
) *ItemResolver {
	return &ItemResolver{
		treatmentRepo:  treatmentRepo,
		comboRepo:      comboRepo,
		journeyRepo:    journeyRepo,
		zoneConfigRepo: zoneConfigRepo,
	}
}

// ResolveRefs resolves each reference strictly. A reference to a missing
// item fails the whole call; reconciliation must never write orders for
// items that do not exist.
func (r *ItemResolver) ResolveRefs(ctx context.Context, refs []catalog.ItemRef) (map[catalog.ItemRef]catalog.ResolvedItem, error) {
	var treatmentIDs, comboIDs, journeyIDs []uuid.UUID
	for _, ref := range refs {
		switch ref.Kind {
		case catalog.ItemKindTreatment:
			treatmentIDs = append(treatmentIDs, ref.ID)
		case catalog.ItemKindCombo:
			comboIDs = append(comboIDs, ref.ID)
		case catalog.ItemKindJourney:
			journeyIDs = append(journeyIDs, ref.ID)
		default:
			return nil, shared.NewDomainError("INVALID_ITEM_KIND", fmt.Sprintf("Unknown item kind %q", ref.Kind))
		}
	}

	resolved := make(map[catalog.ItemRef]catalog.ResolvedItem, len(refs))

	if len(treatmentIDs) > 0 {
		treatments, err := r.treatmentRepo.FindByIDs(ctx, treatmentIDs)
		if err != nil {
			return nil, err
		}
		rows, err := r.resolveTreatments(ctx, treatments)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			resolved[row.Ref] = row
		}
	}

	if len(comboIDs) > 0 {
		combos, err := r.comboRepo.FindByIDs(ctx, comboIDs)
		if err != nil {
			return nil, err
		}
		for _, combo := range combos {
			resolved[combo.Ref()] = resolveCombo(&combo)
		}
	}

	if len(journeyIDs) > 0 {
		journeys, err := r.journeyRepo.FindByIDs(ctx, journeyIDs)
		if err != nil {
			return nil, err
		}
		for i := range journeys {
			row, err := r.resolveJourney(ctx, &journeys[i])
			if err != nil {
				return nil, err
			}
			resolved[row.Ref] = row
		}
	}

	for _, ref := range refs {
		if _, ok := resolved[ref]; !ok {
			return nil, fmt.Errorf("resolving %s: %w", ref, shared.ErrNotFound)
		}
	}

	return resolved, nil
}

// ResolveCategoryItems resolves a category's active treatments and combos
// plus its journeys as two separate lists. Journeys are spliced into the
// listing by the caller according to the category's journey placement.
func (r *ItemResolver) ResolveCategoryItems(ctx context.Context, categoryID uuid.UUID) (items, journeys []catalog.ResolvedItem, err error) {
	treatments, err := r.treatmentRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}
	active := treatments[:0]
	for _, treatment := range treatments {
		if treatment.IsActive {
			active = append(active, treatment)
		}
	}
	items, err = r.resolveTreatments(ctx, active)
	if err != nil {
		return nil, nil, err
	}

	combos, err := r.comboRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}
	for i := range combos {
		if !combos[i].IsActive {
			continue
		}
		items = append(items, resolveCombo(&combos[i]))
	}

	journeyList, err := r.journeyRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, nil, err
	}
	for i := range journeyList {
		row, err := r.resolveJourney(ctx, &journeyList[i])
		if err != nil {
			return nil, nil, err
		}
		journeys = append(journeys, row)
	}

	return items, journeys, nil
}

// ResolveJourneyMembers resolves the treatments and combos assigned to a journey
func (r *ItemResolver) ResolveJourneyMembers(ctx context.Context, journeyID uuid.UUID) ([]catalog.ResolvedItem, error) {
	treatments, err := r.treatmentRepo.FindByJourney(ctx, journeyID)
	if err != nil {
		return nil, err
	}
	members, err := r.resolveTreatments(ctx, treatments)
	if err != nil {
		return nil, err
	}

	combos, err := r.comboRepo.FindByJourney(ctx, journeyID)
	if err != nil {
		return nil, err
	}
	for i := range combos {
		members = append(members, resolveCombo(&combos[i]))
	}

	return members, nil
}

// resolveTreatments batches the zone configuration lookup for a set of
// treatments and computes each effective price.
func (r *ItemResolver) resolveTreatments(ctx context.Context, treatments []catalog.Treatment) ([]catalog.ResolvedItem, error) {
	if len(treatments) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, len(treatments))
	for i, treatment := range treatments {
		ids[i] = treatment.ID
	}

	configs, err := r.zoneConfigRepo.FindByTreatments(ctx, ids)
	if err != nil {
		return nil, err
	}
	byTreatment := make(map[uuid.UUID][]*catalog.ZoneConfig, len(treatments))
	for i := range configs {
		byTreatment[configs[i].TreatmentID] = append(byTreatment[configs[i].TreatmentID], &configs[i])
	}

	rows := make([]catalog.ResolvedItem, 0, len(treatments))
	for i := range treatments {
		treatment := &treatments[i]
		row := catalog.ResolvedItem{
			Ref:        treatment.Ref(),
			Slug:       treatment.Slug,
			Title:      treatment.Title,
			CreatedAt:  treatment.CreatedAt,
			CategoryID: treatment.CategoryID,
			JourneyID:  treatment.JourneyID,
		}
		if price, ok := catalog.TreatmentEffectivePrice(byTreatment[treatment.ID]); ok {
			row.Price = &price
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// resolveJourney computes a journey's price from its members' effective prices
func (r *ItemResolver) resolveJourney(ctx context.Context, journey *catalog.Journey) (catalog.ResolvedItem, error) {
	members, err := r.ResolveJourneyMembers(ctx, journey.ID)
	if err != nil {
		return catalog.ResolvedItem{}, err
	}

	memberPrices := make([]*decimal.Decimal, len(members))
	for i, member := range members {
		memberPrices[i] = member.Price
	}

	row := catalog.ResolvedItem{
		Ref:        journey.Ref(),
		Slug:       journey.Slug,
		Title:      journey.Title,
		CreatedAt:  journey.CreatedAt,
		CategoryID: journey.CategoryID,
	}
	if price, ok := catalog.JourneyEffectivePrice(memberPrices); ok {
		row.Price = &price
	}
	return row, nil
}

func resolveCombo(combo *catalog.Combo) catalog.ResolvedItem {
	price := combo.EffectivePrice()
	return catalog.ResolvedItem{
		Ref:        combo.Ref(),
		Slug:       combo.Slug,
		Title:      combo.Title,
		CreatedAt:  combo.CreatedAt,
		Price:      &price,
		CategoryID: combo.CategoryID,
		JourneyID:  combo.JourneyID,
	}
}

// IsNotFound reports whether the error chain ends in the shared not-found sentinel
func IsNotFound(err error) bool {
	return errors.Is(err, shared.ErrNotFound)
}
