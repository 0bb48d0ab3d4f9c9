package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func mustPlacement(t *testing.T, db *gorm.DB, title, slug string) *catalog.Placement {
	t.Helper()

	placement, err := catalog.NewPlacement(title, slug)
	require.NoError(t, err)
	require.NoError(t, NewGormPlacementRepository(db).Save(context.Background(), placement))
	return placement
}

func mustPlacementItem(t *testing.T, placementID uuid.UUID, item catalog.ItemRef, order int) *catalog.PlacementItem {
	t.Helper()

	entry, err := catalog.NewPlacementItem(placementID, item, order)
	require.NoError(t, err)
	return entry
}

func TestPlacementRepository_Save(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormPlacementRepository(db)
	ctx := context.Background()

	t.Run("saves with default capacity", func(t *testing.T) {
		placement := mustPlacement(t, db, "Homepage Highlights", "homepage-highlights")

		found, err := repo.FindByID(ctx, placement.ID)
		require.NoError(t, err)
		assert.Equal(t, catalog.DefaultPlacementCapacity, found.MaxItems)
		assert.True(t, found.IsActive)
	})

	t.Run("finds by slug", func(t *testing.T) {
		mustPlacement(t, db, "Seasonal Picks", "seasonal-picks")

		found, err := repo.FindBySlug(ctx, "seasonal-picks")
		require.NoError(t, err)
		assert.Equal(t, "Seasonal Picks", found.Title)
	})

	t.Run("locked lookup returns not found for unknown id", func(t *testing.T) {
		_, err := repo.FindByIDForUpdate(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestPlacementRepository_FindAll(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormPlacementRepository(db)
	ctx := context.Background()

	mustPlacement(t, db, "Homepage", "homepage")
	mustPlacement(t, db, "Checkout Upsell", "checkout-upsell")

	t.Run("orders by slug by default", func(t *testing.T) {
		placements, err := repo.FindAll(ctx, shared.Filter{})
		require.NoError(t, err)
		require.Len(t, placements, 2)
		assert.Equal(t, "checkout-upsell", placements[0].Slug)
		assert.Equal(t, "homepage", placements[1].Slug)
	})

	t.Run("filters by search term", func(t *testing.T) {
		placements, err := repo.FindAll(ctx, shared.Filter{Search: "upsell"})
		require.NoError(t, err)
		require.Len(t, placements, 1)
		assert.Equal(t, "checkout-upsell", placements[0].Slug)
	})
}

func TestPlacementRepository_Items(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormPlacementRepository(db)
	ctx := context.Background()

	placement := mustPlacement(t, db, "Homepage", "homepage")
	first := catalog.NewItemRef(catalog.ItemKindTreatment, uuid.New())
	second := catalog.NewItemRef(catalog.ItemKindJourney, uuid.New())

	entries := []*catalog.PlacementItem{
		mustPlacementItem(t, placement.ID, second, 1),
		mustPlacementItem(t, placement.ID, first, 0),
	}
	require.NoError(t, repo.SaveItems(ctx, entries))

	t.Run("returns entries ordered by position", func(t *testing.T) {
		items, err := repo.FindItems(ctx, placement.ID)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, first, items[0].Item)
		assert.Equal(t, second, items[1].Item)
	})

	t.Run("deletes entries by id", func(t *testing.T) {
		require.NoError(t, repo.DeleteItems(ctx, []uuid.UUID{entries[0].ID}))

		items, err := repo.FindItems(ctx, placement.ID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, first, items[0].Item)
	})

	t.Run("deletes entries by item reference", func(t *testing.T) {
		require.NoError(t, repo.DeleteItemsByItem(ctx, first))

		items, err := repo.FindItems(ctx, placement.ID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("empty batches are no-ops", func(t *testing.T) {
		assert.NoError(t, repo.SaveItems(ctx, nil))
		assert.NoError(t, repo.DeleteItems(ctx, nil))
	})
}

func TestPlacementRepository_Delete(t *testing.T) {
	db := setupCatalogTestDB(t)
	repo := NewGormPlacementRepository(db)
	ctx := context.Background()

	t.Run("deletes placement and its entries", func(t *testing.T) {
		placement := mustPlacement(t, db, "Homepage", "homepage")
		entry := mustPlacementItem(t, placement.ID, catalog.NewItemRef(catalog.ItemKindTreatment, uuid.New()), 0)
		require.NoError(t, repo.SaveItems(ctx, []*catalog.PlacementItem{entry}))

		require.NoError(t, repo.Delete(ctx, placement.ID))

		_, err := repo.FindByID(ctx, placement.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)

		items, err := repo.FindItems(ctx, placement.ID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		err := repo.Delete(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
