package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an attribute in its taxonomy", func(t *testing.T) {
		f := newFixture()
		service := NewFilterService(f.scope)

		response, err := service.Create(ctx, catalog.FilterKindTag, CreateFilterAttributeRequest{Name: "Relaxing"})

		require.NoError(t, err)
		assert.Equal(t, "tag", response.Kind)
		assert.Equal(t, "Relaxing", response.Name)
	})

	t.Run("rejects a duplicate name regardless of case", func(t *testing.T) {
		f := newFixture()
		service := NewFilterService(f.scope)
		_, err := service.Create(ctx, catalog.FilterKindTag, CreateFilterAttributeRequest{Name: "Relaxing"})
		require.NoError(t, err)

		_, err = service.Create(ctx, catalog.FilterKindTag, CreateFilterAttributeRequest{Name: "relaxing"})

		assert.Equal(t, "ALREADY_EXISTS", domainErrCode(t, err))
	})

	t.Run("allows the same name in a different taxonomy", func(t *testing.T) {
		f := newFixture()
		service := NewFilterService(f.scope)
		_, err := service.Create(ctx, catalog.FilterKindTag, CreateFilterAttributeRequest{Name: "Firming"})
		require.NoError(t, err)

		_, err = service.Create(ctx, catalog.FilterKindObjective, CreateFilterAttributeRequest{Name: "Firming"})

		assert.NoError(t, err)
	})

	t.Run("requires positive minutes for a duration bucket", func(t *testing.T) {
		f := newFixture()
		service := NewFilterService(f.scope)

		_, err := service.Create(ctx, catalog.FilterKindDuration, CreateFilterAttributeRequest{Name: "Quick"})

		assert.Equal(t, "INVALID_DURATION", domainErrCode(t, err))
	})

	t.Run("keeps the image only for objectives", func(t *testing.T) {
		f := newFixture()
		service := NewFilterService(f.scope)

		objective, err := service.Create(ctx, catalog.FilterKindObjective, CreateFilterAttributeRequest{
			Name:     "Recovery",
			ImageURL: "https://cdn.test/recovery.jpg",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.test/recovery.jpg", objective.ImageURL)

		tag, err := service.Create(ctx, catalog.FilterKindTag, CreateFilterAttributeRequest{
			Name:     "Firming",
			ImageURL: "https://cdn.test/firming.jpg",
		})
		require.NoError(t, err)
		assert.Empty(t, tag.ImageURL)
	})
}

func TestFilterServiceListByKind(t *testing.T) {
	ctx := context.Background()

	t.Run("lists one taxonomy ordered by name", func(t *testing.T) {
		f := newFixture()
		seedFilterAttribute(t, f, catalog.FilterKindTag, "soothing")
		seedFilterAttribute(t, f, catalog.FilterKindTag, "Firming")
		seedFilterAttribute(t, f, catalog.FilterKindObjective, "recovery")
		service := NewFilterService(f.scope)

		attributes, err := service.ListByKind(ctx, catalog.FilterKindTag)

		require.NoError(t, err)
		require.Len(t, attributes, 2)
		assert.Equal(t, "Firming", attributes[0].Name)
		assert.Equal(t, "soothing", attributes[1].Name)
	})
}

func TestFilterServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("renames an attribute", func(t *testing.T) {
		f := newFixture()
		attribute := seedFilterAttribute(t, f, catalog.FilterKindTag, "relaxing")
		service := NewFilterService(f.scope)

		response, err := service.Update(ctx, catalog.FilterKindTag, attribute.ID, UpdateFilterAttributeRequest{Name: "Deeply Relaxing"})

		require.NoError(t, err)
		assert.Equal(t, "Deeply Relaxing", response.Name)
	})

	t.Run("treats a kind mismatch as not found", func(t *testing.T) {
		f := newFixture()
		attribute := seedFilterAttribute(t, f, catalog.FilterKindTag, "relaxing")
		service := NewFilterService(f.scope)

		_, err := service.Update(ctx, catalog.FilterKindObjective, attribute.ID, UpdateFilterAttributeRequest{Name: "Recovery"})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("rejects renaming onto a sibling", func(t *testing.T) {
		f := newFixture()
		seedFilterAttribute(t, f, catalog.FilterKindTag, "firming")
		attribute := seedFilterAttribute(t, f, catalog.FilterKindTag, "relaxing")
		service := NewFilterService(f.scope)

		_, err := service.Update(ctx, catalog.FilterKindTag, attribute.ID, UpdateFilterAttributeRequest{Name: "Firming"})

		assert.Equal(t, "ALREADY_EXISTS", domainErrCode(t, err))
	})
}

func TestFilterServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the attribute and its assignments", func(t *testing.T) {
		f := newFixture()
		category := seedCategory(t, f, "massages")
		treatment := seedTreatment(t, f, category, "deep-tissue")
		attribute := seedFilterAttribute(t, f, catalog.FilterKindTag, "relaxing")
		require.NoError(t, f.filters.ReplaceForTreatment(ctx, treatment.ID, []uuid.UUID{attribute.ID}))
		service := NewFilterService(f.scope)

		require.NoError(t, service.Delete(ctx, catalog.FilterKindTag, attribute.ID))

		_, err := f.filters.FindByID(ctx, attribute.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		ids, err := f.filters.FindIDsByTreatment(ctx, treatment.ID)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("treats a kind mismatch as not found", func(t *testing.T) {
		f := newFixture()
		attribute := seedFilterAttribute(t, f, catalog.FilterKindDuration, "Quick")
		service := NewFilterService(f.scope)

		err := service.Delete(ctx, catalog.FilterKindTag, attribute.ID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
