package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/domain/shared"
)

// ReconcileEntry is one row of the applied target order
type ReconcileEntry struct {
	Item  catalog.ItemRef `json:"item"`
	Order int             `json:"order"`
}

// ReconcileResult reports what a reconciliation changed. Replaying the
// same target yields zero counts, which is how idempotency is observed.
type ReconcileResult struct {
	Entries []ReconcileEntry `json:"entries"`
	Created int              `json:"created"`
	Updated int              `json:"updated"`
	Deleted int              `json:"deleted"`
}

// OrderingService reconciles persisted ordering state against
// client-submitted target orders. The target is authoritative: entries
// are created, repositioned or deleted until the stored state matches
// it, all inside a single transaction.
type OrderingService struct {
	txScope   TransactionScope
	publisher shared.EventPublisher
}

// NewOrderingService creates a new OrderingService. The publisher may be
// nil when no event bus is wired.
func NewOrderingService(txScope TransactionScope, publisher shared.EventPublisher) *OrderingService {
	return &OrderingService{
		txScope:   txScope,
		publisher: publisher,
	}
}

// ReconcileContext applies a target order to a category or journey
// context. Every referenced item must exist and belong to the context;
// duplicates are rejected before any write.
func (s *OrderingService) ReconcileContext(ctx context.Context, contextKind catalog.ContextKind, contextID uuid.UUID, target []catalog.ItemRef) (*ReconcileResult, error) {
	if !contextKind.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONTEXT_KIND", "Context kind must be category or journey")
	}
	if err := rejectDuplicates(target); err != nil {
		return nil, err
	}

	var result *ReconcileResult
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := s.checkContextExists(ctx, repos, contextKind, contextID); err != nil {
			return err
		}

		resolver := NewItemResolver(repos.TreatmentRepo(), repos.ComboRepo(), repos.JourneyRepo(), repos.ZoneConfigRepo())
		resolved, err := resolver.ResolveRefs(ctx, target)
		if err != nil {
			return err
		}
		for _, ref := range target {
			if err := catalog.ValidateContextItem(contextKind, contextID, resolved[ref]); err != nil {
				return err
			}
		}

		existing, err := repos.ItemOrderRepo().FindByContextForUpdate(ctx, contextKind, contextID)
		if err != nil {
			return err
		}
		byItem := make(map[catalog.ItemRef]*catalog.ItemOrder, len(existing))
		for i := range existing {
			byItem[existing[i].Item] = &existing[i]
		}

		var toSave []*catalog.ItemOrder
		created, updated := 0, 0
		for index, ref := range target {
			if entry, ok := byItem[ref]; ok {
				delete(byItem, ref)
				if entry.Order != index {
					entry.SetOrder(index)
					toSave = append(toSave, entry)
					updated++
				}
				continue
			}

			entry, err := catalog.NewItemOrder(contextKind, contextID, ref, index)
			if err != nil {
				return err
			}
			toSave = append(toSave, entry)
			created++
		}

		var toDelete []uuid.UUID
		for _, entry := range byItem {
			toDelete = append(toDelete, entry.ID)
		}

		if len(toSave) > 0 {
			if err := repos.ItemOrderRepo().SaveBatch(ctx, toSave); err != nil {
				return err
			}
		}
		if len(toDelete) > 0 {
			if err := repos.ItemOrderRepo().DeleteBatch(ctx, toDelete); err != nil {
				return err
			}
		}

		result = buildResult(target, created, updated, len(toDelete))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, catalog.NewContextReorderedEvent(contextKind, contextID, result.Created, result.Updated, result.Deleted))

	return result, nil
}

// ReconcilePlacement applies a target order to a capacity-bounded
// placement. The capacity check runs against the full target length
// before any write, so an oversized target leaves the placement
// untouched.
func (s *OrderingService) ReconcilePlacement(ctx context.Context, placementID uuid.UUID, target []catalog.ItemRef) (*ReconcileResult, error) {
	if err := rejectDuplicates(target); err != nil {
		return nil, err
	}

	var result *ReconcileResult
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		placement, err := repos.PlacementRepo().FindByIDForUpdate(ctx, placementID)
		if err != nil {
			return err
		}
		if err := placement.CheckCapacity(len(target)); err != nil {
			return err
		}

		resolver := NewItemResolver(repos.TreatmentRepo(), repos.ComboRepo(), repos.JourneyRepo(), repos.ZoneConfigRepo())
		if _, err := resolver.ResolveRefs(ctx, target); err != nil {
			return err
		}

		existing, err := repos.PlacementRepo().FindItems(ctx, placementID)
		if err != nil {
			return err
		}
		byItem := make(map[catalog.ItemRef]*catalog.PlacementItem, len(existing))
		for i := range existing {
			byItem[existing[i].Item] = &existing[i]
		}

		var toSave []*catalog.PlacementItem
		created, updated := 0, 0
		for index, ref := range target {
			if entry, ok := byItem[ref]; ok {
				delete(byItem, ref)
				if entry.Order != index {
					entry.SetOrder(index)
					toSave = append(toSave, entry)
					updated++
				}
				continue
			}

			entry, err := catalog.NewPlacementItem(placementID, ref, index)
			if err != nil {
				return err
			}
			toSave = append(toSave, entry)
			created++
		}

		var toDelete []uuid.UUID
		for _, entry := range byItem {
			toDelete = append(toDelete, entry.ID)
		}

		if len(toSave) > 0 {
			if err := repos.PlacementRepo().SaveItems(ctx, toSave); err != nil {
				return err
			}
		}
		if len(toDelete) > 0 {
			if err := repos.PlacementRepo().DeleteItems(ctx, toDelete); err != nil {
				return err
			}
		}

		result = buildResult(target, created, updated, len(toDelete))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, catalog.NewPlacementReorderedEvent(placementID, result.Created, result.Updated, result.Deleted))

	return result, nil
}

// GetContextOrder returns a context's current entries ordered by position
func (s *OrderingService) GetContextOrder(ctx context.Context, contextKind catalog.ContextKind, contextID uuid.UUID) ([]ReconcileEntry, error) {
	if !contextKind.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONTEXT_KIND", "Context kind must be category or journey")
	}

	var entries []ReconcileEntry
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		existing, err := repos.ItemOrderRepo().FindByContext(ctx, contextKind, contextID)
		if err != nil {
			return err
		}
		entries = make([]ReconcileEntry, len(existing))
		for i, entry := range existing {
			entries[i] = ReconcileEntry{Item: entry.Item, Order: entry.Order}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// RemoveItem drops every ordering and placement entry referencing an
// item. Called when the item itself is deleted.
func (s *OrderingService) RemoveItem(ctx context.Context, item catalog.ItemRef) error {
	return s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.ItemOrderRepo().DeleteByItem(ctx, item); err != nil {
			return err
		}
		return repos.PlacementRepo().DeleteItemsByItem(ctx, item)
	})
}

func (s *OrderingService) checkContextExists(ctx context.Context, repos TransactionalRepositories, contextKind catalog.ContextKind, contextID uuid.UUID) error {
	var err error
	switch contextKind {
	case catalog.ContextKindCategory:
		_, err = repos.CategoryRepo().FindByID(ctx, contextID)
	case catalog.ContextKindJourney:
		_, err = repos.JourneyRepo().FindByID(ctx, contextID)
	}
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return fmt.Errorf("%s %s: %w", contextKind, contextID, shared.ErrNotFound)
		}
		return err
	}
	return nil
}

func (s *OrderingService) publish(ctx context.Context, event shared.DomainEvent) {
	if s.publisher == nil {
		return
	}
	// Reordering succeeded; a failed notification must not fail the request.
	_ = s.publisher.Publish(ctx, event)
}

func rejectDuplicates(target []catalog.ItemRef) error {
	seen := make(map[catalog.ItemRef]struct{}, len(target))
	for _, ref := range target {
		if _, ok := seen[ref]; ok {
			return catalog.NewDuplicateItemError(ref)
		}
		seen[ref] = struct{}{}
	}
	return nil
}

func buildResult(target []catalog.ItemRef, created, updated, deleted int) *ReconcileResult {
	entries := make([]ReconcileEntry, len(target))
	for i, ref := range target {
		entries[i] = ReconcileEntry{Item: ref, Order: i}
	}
	return &ReconcileResult{
		Entries: entries,
		Created: created,
		Updated: updated,
		Deleted: deleted,
	}
}
