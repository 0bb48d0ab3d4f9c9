package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedZone(t *testing.T, f *fixture, category *catalog.Category, name string) *catalog.Zone {
	t.Helper()
	zone, err := catalog.NewZone(name, category.ID)
	require.NoError(t, err)
	require.NoError(t, f.zones.Save(context.Background(), zone))
	return zone
}

func seedConfig(t *testing.T, f *fixture, treatment *catalog.Treatment, zone *catalog.Zone, position catalog.BodyPosition) *catalog.ZoneConfig {
	t.Helper()
	config, err := catalog.NewZoneConfig(treatment.ID, zone.ID, 30, decimal.RequireFromString("50"), nil, position)
	require.NoError(t, err)
	require.NoError(t, f.configs.Save(context.Background(), config))
	return config
}

func TestIncompatibilityServiceUpsertEdge(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a canonical edge", func(t *testing.T) {
		f := newFixture()
		category := seedCategory(t, f, "massages")
		zoneA := seedZone(t, f, category, "Back")
		zoneB := seedZone(t, f, category, "Neck")
		treatment := seedTreatment(t, f, category, "deep")
		configA := seedConfig(t, f, treatment, zoneA, catalog.BodyPositionAny)
		configB := seedConfig(t, f, treatment, zoneB, catalog.BodyPositionUp)
		service := NewIncompatibilityService(f.scope, nil)

		edge, err := service.UpsertEdge(ctx, configA.ID, configB.ID)

		require.NoError(t, err)
		left, right := catalog.CanonicalPair(configA.ID, configB.ID)
		assert.Equal(t, left, edge.LeftID)
		assert.Equal(t, right, edge.RightID)
	})

	t.Run("is idempotent in either ID order", func(t *testing.T) {
		f := newFixture()
		category := seedCategory(t, f, "massages")
		zoneA := seedZone(t, f, category, "Back")
		zoneB := seedZone(t, f, category, "Neck")
		treatment := seedTreatment(t, f, category, "deep")
		configA := seedConfig(t, f, treatment, zoneA, catalog.BodyPositionAny)
		configB := seedConfig(t, f, treatment, zoneB, catalog.BodyPositionUp)
		service := NewIncompatibilityService(f.scope, nil)

		first, err := service.UpsertEdge(ctx, configA.ID, configB.ID)
		require.NoError(t, err)
		second, err := service.UpsertEdge(ctx, configB.ID, configA.ID)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		edges, _ := f.edges.FindByNode(ctx, configA.ID)
		assert.Len(t, edges, 1)
	})

	t.Run("rejects an edge within one zone", func(t *testing.T) {
		f := newFixture()
		category := seedCategory(t, f, "massages")
		zone := seedZone(t, f, category, "Back")
		treatmentA := seedTreatment(t, f, category, "deep")
		treatmentB := seedTreatment(t, f, category, "soft")
		configA := seedConfig(t, f, treatmentA, zone, catalog.BodyPositionAny)
		configB := seedConfig(t, f, treatmentB, zone, catalog.BodyPositionAny)
		service := NewIncompatibilityService(f.scope, nil)

		_, err := service.UpsertEdge(ctx, configA.ID, configB.ID)

		assert.Equal(t, catalog.ErrCodeZoneCollision, domainErrCode(t, err))
	})

	t.Run("rejects an edge across categories", func(t *testing.T) {
		f := newFixture()
		catA := seedCategory(t, f, "massages")
		catB := seedCategory(t, f, "facials")
		configA := seedConfig(t, f, seedTreatment(t, f, catA, "deep"), seedZone(t, f, catA, "Back"), catalog.BodyPositionAny)
		configB := seedConfig(t, f, seedTreatment(t, f, catB, "peel"), seedZone(t, f, catB, "Face"), catalog.BodyPositionAny)
		service := NewIncompatibilityService(f.scope, nil)

		_, err := service.UpsertEdge(ctx, configA.ID, configB.ID)

		assert.Equal(t, catalog.ErrCodeCategoryMismatch, domainErrCode(t, err))
	})

	t.Run("rejects disjoint body positions", func(t *testing.T) {
		f := newFixture()
		category := seedCategory(t, f, "massages")
		configA := seedConfig(t, f, seedTreatment(t, f, category, "deep"), seedZone(t, f, category, "Back"), catalog.BodyPositionUp)
		configB := seedConfig(t, f, seedTreatment(t, f, category, "soft"), seedZone(t, f, category, "Neck"), catalog.BodyPositionDown)
		service := NewIncompatibilityService(f.scope, nil)

		_, err := service.UpsertEdge(ctx, configA.ID, configB.ID)

		assert.Equal(t, catalog.ErrCodePositionDisjoint, domainErrCode(t, err))
	})
}

func TestIncompatibilityServicePruneNode(t *testing.T) {
	ctx := context.Background()

	t.Run("drops edges broken by a position change and keeps the rest", func(t *testing.T) {
		f := newFixture()
		category := seedCategory(t, f, "massages")
		zoneA := seedZone(t, f, category, "Back")
		zoneB := seedZone(t, f, category, "Neck")
		zoneC := seedZone(t, f, category, "Legs")
		treatment := seedTreatment(t, f, category, "deep")
		subject := seedConfig(t, f, treatment, zoneA, catalog.BodyPositionAny)
		up := seedConfig(t, f, treatment, zoneB, catalog.BodyPositionUp)
		down := seedConfig(t, f, treatment, zoneC, catalog.BodyPositionDown)
		service := NewIncompatibilityService(f.scope, nil)

		_, err := service.UpsertEdge(ctx, subject.ID, up.ID)
		require.NoError(t, err)
		_, err = service.UpsertEdge(ctx, subject.ID, down.ID)
		require.NoError(t, err)

		// Pinning the subject to "up" breaks the edge towards "down".
		require.NoError(t, subject.Relocate(subject.ZoneID, subject.DurationMinutes, catalog.BodyPositionUp))
		require.NoError(t, f.configs.Save(ctx, subject))

		removed, err := service.PruneNode(ctx, subject.ID)

		require.NoError(t, err)
		assert.Equal(t, 1, removed)

		remaining, _ := f.edges.FindByNode(ctx, subject.ID)
		require.Len(t, remaining, 1)
		assert.Equal(t, up.ID, remaining[0].Other(subject.ID))
	})

	t.Run("drops edges whose opposite endpoint vanished", func(t *testing.T) {
		f := newFixture()
		category := seedCategory(t, f, "massages")
		treatment := seedTreatment(t, f, category, "deep")
		subject := seedConfig(t, f, treatment, seedZone(t, f, category, "Back"), catalog.BodyPositionAny)
		other := seedConfig(t, f, treatment, seedZone(t, f, category, "Neck"), catalog.BodyPositionAny)
		service := NewIncompatibilityService(f.scope, nil)

		_, err := service.UpsertEdge(ctx, subject.ID, other.ID)
		require.NoError(t, err)

		require.NoError(t, f.configs.Delete(ctx, other.ID))

		removed, err := service.PruneNode(ctx, subject.ID)

		require.NoError(t, err)
		assert.Equal(t, 1, removed)
		remaining, _ := f.edges.FindByNode(ctx, subject.ID)
		assert.Empty(t, remaining)
	})

	t.Run("no-op when all edges still hold", func(t *testing.T) {
		f := newFixture()
		category := seedCategory(t, f, "massages")
		treatment := seedTreatment(t, f, category, "deep")
		subject := seedConfig(t, f, treatment, seedZone(t, f, category, "Back"), catalog.BodyPositionAny)
		other := seedConfig(t, f, treatment, seedZone(t, f, category, "Neck"), catalog.BodyPositionAny)
		service := NewIncompatibilityService(f.scope, nil)

		_, err := service.UpsertEdge(ctx, subject.ID, other.ID)
		require.NoError(t, err)

		removed, err := service.PruneNode(ctx, subject.ID)

		require.NoError(t, err)
		assert.Zero(t, removed)
	})
}

func TestIncompatibilityServiceCandidates(t *testing.T) {
	ctx := context.Background()

	t.Run("orders by zone name then treatment title and marks linked configs", func(t *testing.T) {
		f := newFixture()
		category := seedCategory(t, f, "massages")
		zoneBack := seedZone(t, f, category, "Back")
		zoneNeck := seedZone(t, f, category, "Neck")
		zoneArms := seedZone(t, f, category, "Arms")
		treatment := seedTreatment(t, f, category, "deep")
		subject := seedConfig(t, f, treatment, zoneBack, catalog.BodyPositionAny)
		neck := seedConfig(t, f, treatment, zoneNeck, catalog.BodyPositionAny)
		arms := seedConfig(t, f, treatment, zoneArms, catalog.BodyPositionAny)
		// Same zone as the subject: never a candidate.
		sibling := seedTreatment(t, f, category, "soft")
		seedConfig(t, f, sibling, zoneBack, catalog.BodyPositionAny)
		service := NewIncompatibilityService(f.scope, nil)

		_, err := service.UpsertEdge(ctx, subject.ID, neck.ID)
		require.NoError(t, err)

		candidates, err := service.Candidates(ctx, subject.ID)

		require.NoError(t, err)
		require.Len(t, candidates, 2)
		assert.Equal(t, arms.ID, candidates[0].ConfigID)
		assert.False(t, candidates[0].Incompatible)
		assert.Equal(t, neck.ID, candidates[1].ConfigID)
		assert.True(t, candidates[1].Incompatible)
	})
}
