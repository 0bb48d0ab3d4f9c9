package catalog

import (
	"context"

	"github.com/spacatalog/backend/internal/domain/catalog"
)

// TransactionScope provides transactional access to catalog repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or roll
// back atomically. Reconciliation flows depend on this: the diff is
// computed and applied against one consistent snapshot.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all catalog repositories
// within a transaction. All repositories returned share the same
// underlying database transaction.
type TransactionalRepositories interface {
	// CategoryRepo returns the category repository scoped to the current transaction
	CategoryRepo() catalog.CategoryRepository
	// ZoneRepo returns the zone repository scoped to the current transaction
	ZoneRepo() catalog.ZoneRepository
	// TreatmentRepo returns the treatment repository scoped to the current transaction
	TreatmentRepo() catalog.TreatmentRepository
	// ZoneConfigRepo returns the zone configuration repository scoped to the current transaction
	ZoneConfigRepo() catalog.ZoneConfigRepository
	// ComboRepo returns the combo repository scoped to the current transaction
	ComboRepo() catalog.ComboRepository
	// JourneyRepo returns the journey repository scoped to the current transaction
	JourneyRepo() catalog.JourneyRepository
	// ItemOrderRepo returns the ordering entry repository scoped to the current transaction
	ItemOrderRepo() catalog.ItemOrderRepository
	// PlacementRepo returns the placement repository scoped to the current transaction
	PlacementRepo() catalog.PlacementRepository
	// IncompatibilityRepo returns the edge repository scoped to the current transaction
	IncompatibilityRepo() catalog.IncompatibilityRepository
	// GalleryRepo returns the gallery repository scoped to the current transaction
	GalleryRepo() catalog.GalleryRepository
	// FilterRepo returns the filter attribute repository scoped to the current transaction
	FilterRepo() catalog.FilterRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support is
// not required.
type NoOpTransactionScope struct {
	categoryRepo        catalog.CategoryRepository
	zoneRepo            catalog.ZoneRepository
	treatmentRepo       catalog.TreatmentRepository
	zoneConfigRepo      catalog.ZoneConfigRepository
	comboRepo           catalog.ComboRepository
	journeyRepo         catalog.JourneyRepository
	itemOrderRepo       catalog.ItemOrderRepository
	placementRepo       catalog.PlacementRepository
	incompatibilityRepo catalog.IncompatibilityRepository
	galleryRepo         catalog.GalleryRepository
	filterRepo          catalog.FilterRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	categoryRepo catalog.CategoryRepository,
	zoneRepo catalog.ZoneRepository,
	treatmentRepo catalog.TreatmentRepository,
	zoneConfigRepo catalog.ZoneConfigRepository,
	comboRepo catalog.ComboRepository,
	journeyRepo catalog.JourneyRepository,
	itemOrderRepo catalog.ItemOrderRepository,
	placementRepo catalog.PlacementRepository,
	incompatibilityRepo catalog.IncompatibilityRepository,
	galleryRepo catalog.GalleryRepository,
	filterRepo catalog.FilterRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		categoryRepo:        categoryRepo,
		zoneRepo:            zoneRepo,
		treatmentRepo:       treatmentRepo,
		zoneConfigRepo:      zoneConfigRepo,
		comboRepo:           comboRepo,
		journeyRepo:         journeyRepo,
		itemOrderRepo:       itemOrderRepo,
		placementRepo:       placementRepo,
		incompatibilityRepo: incompatibilityRepo,
		galleryRepo:         galleryRepo,
		filterRepo:          filterRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// CategoryRepo returns the category repository.
func (s *NoOpTransactionScope) CategoryRepo() catalog.CategoryRepository {
	return s.categoryRepo
}

// ZoneRepo returns the zone repository.
func (s *NoOpTransactionScope) ZoneRepo() catalog.ZoneRepository {
	return s.zoneRepo
}

// TreatmentRepo returns the treatment repository.
func (s *NoOpTransactionScope) TreatmentRepo() catalog.TreatmentRepository {
	return s.treatmentRepo
}

// ZoneConfigRepo returns the zone configuration repository.
func (s *NoOpTransactionScope) ZoneConfigRepo() catalog.ZoneConfigRepository {
	return s.zoneConfigRepo
}

// ComboRepo returns the combo repository.
func (s *NoOpTransactionScope) ComboRepo() catalog.ComboRepository {
	return s.comboRepo
}

// JourneyRepo returns the journey repository.
func (s *NoOpTransactionScope) JourneyRepo() catalog.JourneyRepository {
	return s.journeyRepo
}

// ItemOrderRepo returns the ordering entry repository.
func (s *NoOpTransactionScope) ItemOrderRepo() catalog.ItemOrderRepository {
	return s.itemOrderRepo
}

// PlacementRepo returns the placement repository.
func (s *NoOpTransactionScope) PlacementRepo() catalog.PlacementRepository {
	return s.placementRepo
}

// IncompatibilityRepo returns the edge repository.
func (s *NoOpTransactionScope) IncompatibilityRepo() catalog.IncompatibilityRepository {
	return s.incompatibilityRepo
}

// GalleryRepo returns the gallery repository.
func (s *NoOpTransactionScope) GalleryRepo() catalog.GalleryRepository {
	return s.galleryRepo
}

// FilterRepo returns the filter attribute repository.
func (s *NoOpTransactionScope) FilterRepo() catalog.FilterRepository {
	return s.filterRepo
}
