package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTreatmentService(f *fixture, storage *fakeImageStorage) *TreatmentService {
	return NewTreatmentService(f.scope, storage, nil, zap.NewNop())
}

func seedFilterAttribute(t *testing.T, f *fixture, kind catalog.FilterKind, name string) *catalog.FilterAttribute {
	t.Helper()
	minutes := 0
	if kind == catalog.FilterKindDuration {
		minutes = 30
	}
	attribute, err := catalog.NewFilterAttribute(kind, name, "", minutes)
	require.NoError(t, err)
	require.NoError(t, f.filters.Save(context.Background(), attribute))
	return attribute
}

func TestTreatmentServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("purges gallery rows and blobs with the treatment", func(t *testing.T) {
		f := newFixture()
		storage := newFakeImageStorage()
		category := seedCategory(t, f, "massages")
		treatment := seedTreatment(t, f, category, "deep-tissue")
		owner := treatment.Ref()
		seedGalleryImage(t, f, owner, "k-a", 0)
		seedGalleryImage(t, f, owner, "k-b", 1)
		service := newTreatmentService(f, storage)

		require.NoError(t, service.Delete(ctx, treatment.ID))

		_, err := f.treatments.FindByID(ctx, treatment.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		images, err := f.gallery.FindByOwner(ctx, owner)
		require.NoError(t, err)
		assert.Empty(t, images)
		assert.ElementsMatch(t, []string{"k-a", "k-b"}, storage.deleted)
	})

	t.Run("drops filter assignments with the treatment", func(t *testing.T) {
		f := newFixture()
		category := seedCategory(t, f, "massages")
		treatment := seedTreatment(t, f, category, "deep-tissue")
		attribute := seedFilterAttribute(t, f, catalog.FilterKindTag, "relaxing")
		require.NoError(t, f.filters.ReplaceForTreatment(ctx, treatment.ID, []uuid.UUID{attribute.ID}))
		service := newTreatmentService(f, newFakeImageStorage())

		require.NoError(t, service.Delete(ctx, treatment.ID))

		ids, err := f.filters.FindIDsByTreatment(ctx, treatment.ID)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestTreatmentServiceFilterAssignments(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns filters on create and echoes them back", func(t *testing.T) {
		f := newFixture()
		category := seedCategory(t, f, "massages")
		tag := seedFilterAttribute(t, f, catalog.FilterKindTag, "relaxing")
		objective := seedFilterAttribute(t, f, catalog.FilterKindObjective, "recovery")
		service := newTreatmentService(f, newFakeImageStorage())

		response, err := service.Create(ctx, CreateTreatmentRequest{
			Title:      "Deep Tissue",
			Slug:       "deep-tissue",
			CategoryID: category.ID,
			FilterIDs:  []uuid.UUID{tag.ID, objective.ID, tag.ID},
		})

		require.NoError(t, err)
		require.Len(t, response.Filters, 2)
		ids, err := f.filters.FindIDsByTreatment(ctx, response.ID)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{tag.ID, objective.ID}, ids)
	})

	t.Run("rejects an unknown filter id", func(t *testing.T) {
		f := newFixture()
		category := seedCategory(t, f, "massages")
		service := newTreatmentService(f, newFakeImageStorage())

		_, err := service.Create(ctx, CreateTreatmentRequest{
			Title:      "Deep Tissue",
			Slug:       "deep-tissue",
			CategoryID: category.ID,
			FilterIDs:  []uuid.UUID{uuid.New()},
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("nil leaves assignments alone, empty list clears them", func(t *testing.T) {
		f := newFixture()
		category := seedCategory(t, f, "massages")
		treatment := seedTreatment(t, f, category, "deep-tissue")
		tag := seedFilterAttribute(t, f, catalog.FilterKindTag, "relaxing")
		require.NoError(t, f.filters.ReplaceForTreatment(ctx, treatment.ID, []uuid.UUID{tag.ID}))
		service := newTreatmentService(f, newFakeImageStorage())

		response, err := service.Update(ctx, treatment.ID, UpdateTreatmentRequest{
			Title: "Deep Tissue",
		})
		require.NoError(t, err)
		require.Len(t, response.Filters, 1)

		empty := []uuid.UUID{}
		response, err = service.Update(ctx, treatment.ID, UpdateTreatmentRequest{
			Title:     "Deep Tissue",
			FilterIDs: &empty,
		})
		require.NoError(t, err)
		assert.Empty(t, response.Filters)
	})
}
