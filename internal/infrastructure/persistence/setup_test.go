package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(models.AllModels()...)
	require.NoError(t, err)

	return db
}

func mustCategory(t *testing.T, db *gorm.DB, name, slug string) *catalog.Category {
	t.Helper()

	category, err := catalog.NewCategory(name, slug)
	require.NoError(t, err)
	require.NoError(t, NewGormCategoryRepository(db).Save(context.Background(), category))
	return category
}

func mustTreatment(t *testing.T, db *gorm.DB, title, slug string, categoryID uuid.UUID) *catalog.Treatment {
	t.Helper()

	treatment, err := catalog.NewTreatment(title, slug, categoryID)
	require.NoError(t, err)
	require.NoError(t, NewGormTreatmentRepository(db).Save(context.Background(), treatment))
	return treatment
}

func mustZone(t *testing.T, db *gorm.DB, name string, categoryID uuid.UUID) *catalog.Zone {
	t.Helper()

	zone, err := catalog.NewZone(name, categoryID)
	require.NoError(t, err)
	require.NoError(t, NewGormZoneRepository(db).Save(context.Background(), zone))
	return zone
}

func mustZoneConfig(t *testing.T, db *gorm.DB, treatmentID, zoneID uuid.UUID, price string) *catalog.ZoneConfig {
	t.Helper()

	config, err := catalog.NewZoneConfig(treatmentID, zoneID, 30, decimal.RequireFromString(price), nil, catalog.BodyPositionAny)
	require.NoError(t, err)
	require.NoError(t, NewGormZoneConfigRepository(db).Save(context.Background(), config))
	return config
}
