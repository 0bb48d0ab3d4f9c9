package catalog

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spacatalog/backend/internal/domain/catalog"
	"github.com/spacatalog/backend/internal/domain/shared"
)

// MockEventPublisher is a recording implementation of shared.EventPublisher
type MockEventPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{events: make([]shared.DomainEvent, 0)}
}

func (m *MockEventPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, events...)
	return nil
}

func (m *MockEventPublisher) GetEventsByType(eventType string) []shared.DomainEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]shared.DomainEvent, 0)
	for _, e := range m.events {
		if e.EventType() == eventType {
			result = append(result, e)
		}
	}
	return result
}

// In-memory repository fakes. Reconciliation tests need real read-back
// semantics (diff, idempotency), which expectation mocks cannot express.

type fakeCategoryRepo struct {
	categories map[uuid.UUID]catalog.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]catalog.Category)}
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Category, error) {
	if c, ok := r.categories[id]; ok {
		return &c, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCategoryRepo) FindBySlug(_ context.Context, slug string) (*catalog.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeCategoryRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Category, error) {
	out := make([]catalog.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Save(_ context.Context, category *catalog.Category) error {
	r.categories[category.ID] = *category
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

type fakeZoneRepo struct {
	zones map[uuid.UUID]catalog.Zone
}

func newFakeZoneRepo() *fakeZoneRepo {
	return &fakeZoneRepo{zones: make(map[uuid.UUID]catalog.Zone)}
}

func (r *fakeZoneRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Zone, error) {
	if z, ok := r.zones[id]; ok {
		return &z, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeZoneRepo) FindByCategory(_ context.Context, categoryID uuid.UUID) ([]catalog.Zone, error) {
	var out []catalog.Zone
	for _, z := range r.zones {
		if z.CategoryID == categoryID {
			out = append(out, z)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (r *fakeZoneRepo) Save(_ context.Context, zone *catalog.Zone) error {
	r.zones[zone.ID] = *zone
	return nil
}

func (r *fakeZoneRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.zones, id)
	return nil
}

type fakeTreatmentRepo struct {
	treatments map[uuid.UUID]catalog.Treatment
}

func newFakeTreatmentRepo() *fakeTreatmentRepo {
	return &fakeTreatmentRepo{treatments: make(map[uuid.UUID]catalog.Treatment)}
}

func (r *fakeTreatmentRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Treatment, error) {
	if t, ok := r.treatments[id]; ok {
		return &t, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeTreatmentRepo) FindBySlug(_ context.Context, slug string) (*catalog.Treatment, error) {
	for _, t := range r.treatments {
		if t.Slug == slug {
			return &t, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeTreatmentRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]catalog.Treatment, error) {
	var out []catalog.Treatment
	for _, id := range ids {
		if t, ok := r.treatments[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTreatmentRepo) FindByCategory(_ context.Context, categoryID uuid.UUID) ([]catalog.Treatment, error) {
	var out []catalog.Treatment
	for _, t := range r.treatments {
		if t.CategoryID == categoryID {
			out = append(out, t)
		}
	}
	sortByCreation(out, func(t catalog.Treatment) int64 { return t.CreatedAt.UnixNano() })
	return out, nil
}

func (r *fakeTreatmentRepo) FindByJourney(_ context.Context, journeyID uuid.UUID) ([]catalog.Treatment, error) {
	var out []catalog.Treatment
	for _, t := range r.treatments {
		if t.JourneyID != nil && *t.JourneyID == journeyID {
			out = append(out, t)
		}
	}
	sortByCreation(out, func(t catalog.Treatment) int64 { return t.CreatedAt.UnixNano() })
	return out, nil
}

func (r *fakeTreatmentRepo) Save(_ context.Context, treatment *catalog.Treatment) error {
	r.treatments[treatment.ID] = *treatment
	return nil
}

func (r *fakeTreatmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.treatments, id)
	return nil
}

type fakeZoneConfigRepo struct {
	configs    map[uuid.UUID]catalog.ZoneConfig
	treatments *fakeTreatmentRepo
}

func newFakeZoneConfigRepo(treatments *fakeTreatmentRepo) *fakeZoneConfigRepo {
	return &fakeZoneConfigRepo{
		configs:    make(map[uuid.UUID]catalog.ZoneConfig),
		treatments: treatments,
	}
}

func (r *fakeZoneConfigRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.ZoneConfig, error) {
	if c, ok := r.configs[id]; ok {
		return &c, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeZoneConfigRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.ZoneConfig, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeZoneConfigRepo) FindByTreatment(_ context.Context, treatmentID uuid.UUID) ([]catalog.ZoneConfig, error) {
	var out []catalog.ZoneConfig
	for _, c := range r.configs {
		if c.TreatmentID == treatmentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeZoneConfigRepo) FindByTreatments(ctx context.Context, treatmentIDs []uuid.UUID) ([]catalog.ZoneConfig, error) {
	var out []catalog.ZoneConfig
	for _, id := range treatmentIDs {
		configs, _ := r.FindByTreatment(ctx, id)
		out = append(out, configs...)
	}
	return out, nil
}

func (r *fakeZoneConfigRepo) FindByCategory(_ context.Context, categoryID uuid.UUID) ([]catalog.ZoneConfig, error) {
	var out []catalog.ZoneConfig
	for _, c := range r.configs {
		if t, ok := r.treatments.treatments[c.TreatmentID]; ok && t.CategoryID == categoryID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeZoneConfigRepo) Save(_ context.Context, config *catalog.ZoneConfig) error {
	r.configs[config.ID] = *config
	return nil
}

func (r *fakeZoneConfigRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.configs, id)
	return nil
}

type fakeComboRepo struct {
	combos map[uuid.UUID]catalog.Combo
}

func newFakeComboRepo() *fakeComboRepo {
	return &fakeComboRepo{combos: make(map[uuid.UUID]catalog.Combo)}
}

func (r *fakeComboRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Combo, error) {
	if c, ok := r.combos[id]; ok {
		return &c, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeComboRepo) FindBySlug(_ context.Context, slug string) (*catalog.Combo, error) {
	for _, c := range r.combos {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeComboRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]catalog.Combo, error) {
	var out []catalog.Combo
	for _, id := range ids {
		if c, ok := r.combos[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeComboRepo) FindByCategory(_ context.Context, categoryID uuid.UUID) ([]catalog.Combo, error) {
	var out []catalog.Combo
	for _, c := range r.combos {
		if c.CategoryID == categoryID {
			out = append(out, c)
		}
	}
	sortByCreation(out, func(c catalog.Combo) int64 { return c.CreatedAt.UnixNano() })
	return out, nil
}

func (r *fakeComboRepo) FindByJourney(_ context.Context, journeyID uuid.UUID) ([]catalog.Combo, error) {
	var out []catalog.Combo
	for _, c := range r.combos {
		if c.JourneyID != nil && *c.JourneyID == journeyID {
			out = append(out, c)
		}
	}
	sortByCreation(out, func(c catalog.Combo) int64 { return c.CreatedAt.UnixNano() })
	return out, nil
}

func (r *fakeComboRepo) Save(_ context.Context, combo *catalog.Combo) error {
	r.combos[combo.ID] = *combo
	return nil
}

func (r *fakeComboRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.combos, id)
	return nil
}

type fakeJourneyRepo struct {
	journeys map[uuid.UUID]catalog.Journey
}

func newFakeJourneyRepo() *fakeJourneyRepo {
	return &fakeJourneyRepo{journeys: make(map[uuid.UUID]catalog.Journey)}
}

func (r *fakeJourneyRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Journey, error) {
	if j, ok := r.journeys[id]; ok {
		return &j, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeJourneyRepo) FindBySlug(_ context.Context, slug string) (*catalog.Journey, error) {
	for _, j := range r.journeys {
		if j.Slug == slug {
			return &j, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeJourneyRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]catalog.Journey, error) {
	var out []catalog.Journey
	for _, id := range ids {
		if j, ok := r.journeys[id]; ok {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *fakeJourneyRepo) FindByCategory(_ context.Context, categoryID uuid.UUID) ([]catalog.Journey, error) {
	var out []catalog.Journey
	for _, j := range r.journeys {
		if j.CategoryID == categoryID {
			out = append(out, j)
		}
	}
	sortByCreation(out, func(j catalog.Journey) int64 { return j.CreatedAt.UnixNano() })
	return out, nil
}

func (r *fakeJourneyRepo) Save(_ context.Context, journey *catalog.Journey) error {
	r.journeys[journey.ID] = *journey
	return nil
}

func (r *fakeJourneyRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.journeys, id)
	return nil
}

type fakeItemOrderRepo struct {
	entries map[uuid.UUID]catalog.ItemOrder
}

func newFakeItemOrderRepo() *fakeItemOrderRepo {
	return &fakeItemOrderRepo{entries: make(map[uuid.UUID]catalog.ItemOrder)}
}

func (r *fakeItemOrderRepo) FindByContext(_ context.Context, contextKind catalog.ContextKind, contextID uuid.UUID) ([]catalog.ItemOrder, error) {
	var out []catalog.ItemOrder
	for _, e := range r.entries {
		if e.ContextKind == contextKind && e.ContextID == contextID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *fakeItemOrderRepo) FindByContextForUpdate(ctx context.Context, contextKind catalog.ContextKind, contextID uuid.UUID) ([]catalog.ItemOrder, error) {
	return r.FindByContext(ctx, contextKind, contextID)
}

func (r *fakeItemOrderRepo) SaveBatch(_ context.Context, entries []*catalog.ItemOrder) error {
	for _, e := range entries {
		r.entries[e.ID] = *e
	}
	return nil
}

func (r *fakeItemOrderRepo) DeleteBatch(_ context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		delete(r.entries, id)
	}
	return nil
}

func (r *fakeItemOrderRepo) DeleteByItem(_ context.Context, item catalog.ItemRef) error {
	for id, e := range r.entries {
		if e.Item == item {
			delete(r.entries, id)
		}
	}
	return nil
}

type fakePlacementRepo struct {
	placements map[uuid.UUID]catalog.Placement
	items      map[uuid.UUID]catalog.PlacementItem
}

func newFakePlacementRepo() *fakePlacementRepo {
	return &fakePlacementRepo{
		placements: make(map[uuid.UUID]catalog.Placement),
		items:      make(map[uuid.UUID]catalog.PlacementItem),
	}
}

func (r *fakePlacementRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.Placement, error) {
	if p, ok := r.placements[id]; ok {
		return &p, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakePlacementRepo) FindBySlug(_ context.Context, slug string) (*catalog.Placement, error) {
	for _, p := range r.placements {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakePlacementRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*catalog.Placement, error) {
	return r.FindByID(ctx, id)
}

func (r *fakePlacementRepo) FindAll(_ context.Context, _ shared.Filter) ([]catalog.Placement, error) {
	out := make([]catalog.Placement, 0, len(r.placements))
	for _, p := range r.placements {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePlacementRepo) FindItems(_ context.Context, placementID uuid.UUID) ([]catalog.PlacementItem, error) {
	var out []catalog.PlacementItem
	for _, item := range r.items {
		if item.PlacementID == placementID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *fakePlacementRepo) Save(_ context.Context, placement *catalog.Placement) error {
	r.placements[placement.ID] = *placement
	return nil
}

func (r *fakePlacementRepo) SaveItems(_ context.Context, items []*catalog.PlacementItem) error {
	for _, item := range items {
		r.items[item.ID] = *item
	}
	return nil
}

func (r *fakePlacementRepo) DeleteItems(_ context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		delete(r.items, id)
	}
	return nil
}

func (r *fakePlacementRepo) DeleteItemsByItem(_ context.Context, item catalog.ItemRef) error {
	for id, entry := range r.items {
		if entry.Item == item {
			delete(r.items, id)
		}
	}
	return nil
}

func (r *fakePlacementRepo) Delete(_ context.Context, id uuid.UUID) error {
	for itemID, item := range r.items {
		if item.PlacementID == id {
			delete(r.items, itemID)
		}
	}
	delete(r.placements, id)
	return nil
}

type fakeIncompatibilityRepo struct {
	edges map[uuid.UUID]catalog.Incompatibility
}

func newFakeIncompatibilityRepo() *fakeIncompatibilityRepo {
	return &fakeIncompatibilityRepo{edges: make(map[uuid.UUID]catalog.Incompatibility)}
}

func (r *fakeIncompatibilityRepo) FindByPair(_ context.Context, a, b uuid.UUID) (*catalog.Incompatibility, error) {
	left, right := catalog.CanonicalPair(a, b)
	for _, e := range r.edges {
		if e.LeftID == left && e.RightID == right {
			return &e, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (r *fakeIncompatibilityRepo) FindByNode(_ context.Context, configID uuid.UUID) ([]catalog.Incompatibility, error) {
	var out []catalog.Incompatibility
	for _, e := range r.edges {
		if e.Touches(configID) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeIncompatibilityRepo) Save(_ context.Context, edge *catalog.Incompatibility) error {
	r.edges[edge.ID] = *edge
	return nil
}

func (r *fakeIncompatibilityRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.edges, id)
	return nil
}

func (r *fakeIncompatibilityRepo) DeleteBatch(_ context.Context, ids []uuid.UUID) error {
	for _, id := range ids {
		delete(r.edges, id)
	}
	return nil
}

func (r *fakeIncompatibilityRepo) DeleteByNode(_ context.Context, configID uuid.UUID) error {
	for id, e := range r.edges {
		if e.Touches(configID) {
			delete(r.edges, id)
		}
	}
	return nil
}

type fakeGalleryRepo struct {
	images map[uuid.UUID]catalog.GalleryImage
}

func newFakeGalleryRepo() *fakeGalleryRepo {
	return &fakeGalleryRepo{images: make(map[uuid.UUID]catalog.GalleryImage)}
}

func (r *fakeGalleryRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.GalleryImage, error) {
	if img, ok := r.images[id]; ok {
		return &img, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeGalleryRepo) FindByOwner(_ context.Context, owner catalog.ItemRef) ([]catalog.GalleryImage, error) {
	var out []catalog.GalleryImage
	for _, img := range r.images {
		if img.Owner() == owner {
			out = append(out, img)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *fakeGalleryRepo) FindByOwnerForUpdate(ctx context.Context, owner catalog.ItemRef) ([]catalog.GalleryImage, error) {
	return r.FindByOwner(ctx, owner)
}

func (r *fakeGalleryRepo) Save(_ context.Context, image *catalog.GalleryImage) error {
	r.images[image.ID] = *image
	return nil
}

func (r *fakeGalleryRepo) SaveBatch(_ context.Context, images []*catalog.GalleryImage) error {
	for _, img := range images {
		r.images[img.ID] = *img
	}
	return nil
}

func (r *fakeGalleryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.images, id)
	return nil
}

type fakeFilterRepo struct {
	attributes map[uuid.UUID]catalog.FilterAttribute
	links      map[uuid.UUID][]uuid.UUID
}

func newFakeFilterRepo() *fakeFilterRepo {
	return &fakeFilterRepo{
		attributes: make(map[uuid.UUID]catalog.FilterAttribute),
		links:      make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *fakeFilterRepo) FindByID(_ context.Context, id uuid.UUID) (*catalog.FilterAttribute, error) {
	if a, ok := r.attributes[id]; ok {
		return &a, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeFilterRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]catalog.FilterAttribute, error) {
	var out []catalog.FilterAttribute
	for _, id := range ids {
		if a, ok := r.attributes[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeFilterRepo) FindByKind(_ context.Context, kind catalog.FilterKind) ([]catalog.FilterAttribute, error) {
	var out []catalog.FilterAttribute
	for _, a := range r.attributes {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (r *fakeFilterRepo) Save(_ context.Context, attribute *catalog.FilterAttribute) error {
	r.attributes[attribute.ID] = *attribute
	return nil
}

func (r *fakeFilterRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.attributes[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.attributes, id)
	for treatmentID, ids := range r.links {
		kept := ids[:0]
		for _, filterID := range ids {
			if filterID != id {
				kept = append(kept, filterID)
			}
		}
		r.links[treatmentID] = kept
	}
	return nil
}

func (r *fakeFilterRepo) FindIDsByTreatment(_ context.Context, treatmentID uuid.UUID) ([]uuid.UUID, error) {
	return append([]uuid.UUID(nil), r.links[treatmentID]...), nil
}

func (r *fakeFilterRepo) ReplaceForTreatment(_ context.Context, treatmentID uuid.UUID, filterIDs []uuid.UUID) error {
	r.links[treatmentID] = append([]uuid.UUID(nil), filterIDs...)
	return nil
}

func (r *fakeFilterRepo) DeleteForTreatment(_ context.Context, treatmentID uuid.UUID) error {
	delete(r.links, treatmentID)
	return nil
}

// fakeImageStorage records storage operations without talking to S3
type fakeImageStorage struct {
	objects map[string][]byte
	deleted []string
}

func newFakeImageStorage() *fakeImageStorage {
	return &fakeImageStorage{objects: make(map[string][]byte)}
}

func (s *fakeImageStorage) PutObject(_ context.Context, key, _ string, _ io.Reader) error {
	s.objects[key] = nil
	return nil
}

func (s *fakeImageStorage) GenerateDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://cdn.test/" + key, nil
}

func (s *fakeImageStorage) DeleteObject(_ context.Context, key string) error {
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

func sortByCreation[T any](items []T, key func(T) int64) {
	sort.SliceStable(items, func(i, j int) bool { return key(items[i]) < key(items[j]) })
}

// fixture bundles the fakes behind a NoOpTransactionScope
type fixture struct {
	categories *fakeCategoryRepo
	zones      *fakeZoneRepo
	treatments *fakeTreatmentRepo
	configs    *fakeZoneConfigRepo
	combos     *fakeComboRepo
	journeys   *fakeJourneyRepo
	orders     *fakeItemOrderRepo
	placements *fakePlacementRepo
	edges      *fakeIncompatibilityRepo
	gallery    *fakeGalleryRepo
	filters    *fakeFilterRepo
	scope      *NoOpTransactionScope
	resolver   *ItemResolver
}

func newFixture() *fixture {
	f := &fixture{
		categories: newFakeCategoryRepo(),
		zones:      newFakeZoneRepo(),
		combos:     newFakeComboRepo(),
		journeys:   newFakeJourneyRepo(),
		orders:     newFakeItemOrderRepo(),
		placements: newFakePlacementRepo(),
		edges:      newFakeIncompatibilityRepo(),
		gallery:    newFakeGalleryRepo(),
		filters:    newFakeFilterRepo(),
	}
	f.treatments = newFakeTreatmentRepo()
	f.configs = newFakeZoneConfigRepo(f.treatments)
	f.scope = NewNoOpTransactionScope(
		f.categories, f.zones, f.treatments, f.configs, f.combos,
		f.journeys, f.orders, f.placements, f.edges, f.gallery, f.filters,
	)
	f.resolver = NewItemResolver(f.treatments, f.combos, f.journeys, f.configs)
	return f
}
