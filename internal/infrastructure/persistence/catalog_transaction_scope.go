package persistence

import (
	"context"

	catalogapp "github.com/spacatalog/backend/internal/application/catalog"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of multiple repository operations.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos catalogapp.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// CategoryRepo returns the category repository scoped to the current transaction.
func (r *gormTransactionalRepositories) CategoryRepo() catalog.CategoryRepository {
	return NewGormCategoryRepository(r.tx)
}

// ZoneRepo returns the zone repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ZoneRepo() catalog.ZoneRepository {
	return NewGormZoneRepository(r.tx)
}

// TreatmentRepo returns the treatment repository scoped to the current transaction.
func (r *gormTransactionalRepositories) TreatmentRepo() catalog.TreatmentRepository {
	return NewGormTreatmentRepository(r.tx)
}

// ZoneConfigRepo returns the zone configuration repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ZoneConfigRepo() catalog.ZoneConfigRepository {
	return NewGormZoneConfigRepository(r.tx)
}

// ComboRepo returns the combo repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ComboRepo() catalog.ComboRepository {
	return NewGormComboRepository(r.tx)
}

// JourneyRepo returns the journey repository scoped to the current transaction.
func (r *gormTransactionalRepositories) JourneyRepo() catalog.JourneyRepository {
	return NewGormJourneyRepository(r.tx)
}

// ItemOrderRepo returns the ordering entry repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ItemOrderRepo() catalog.ItemOrderRepository {
	return NewGormItemOrderRepository(r.tx)
}

// PlacementRepo returns the placement repository scoped to the current transaction.
func (r *gormTransactionalRepositories) PlacementRepo() catalog.PlacementRepository {
	return NewGormPlacementRepository(r.tx)
}

// IncompatibilityRepo returns the edge repository scoped to the current transaction.
func (r *gormTransactionalRepositories) IncompatibilityRepo() catalog.IncompatibilityRepository {
	return NewGormIncompatibilityRepository(r.tx)
}

// GalleryRepo returns the gallery repository scoped to the current transaction.
func (r *gormTransactionalRepositories) GalleryRepo() catalog.GalleryRepository {
	return NewGormGalleryRepository(r.tx)
}

// FilterRepo returns the filter attribute repository scoped to the current transaction.
func (r *gormTransactionalRepositories) FilterRepo() catalog.FilterRepository {
	return NewGormFilterRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ catalogapp.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ catalogapp.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
