package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spacatalog/backend/internal/domain/catalog"
)

// CategoryModel is the persistence model for the Category aggregate.
type CategoryModel struct {
	AggregateModel
	Name            string `gorm:"type:varchar(100);not null"`
	Slug            string `gorm:"type:varchar(120);not null;uniqueIndex"`
	ImageURL        string `gorm:"type:varchar(500)"`
	IncludeJourneys bool   `gorm:"not null;default:true"`
	JourneyPosition string `gorm:"type:varchar(10);not null;default:'LAST'"`
	DefaultSort     string `gorm:"type:varchar(20);not null;default:'price_asc'"`
	SEOTitle        string `gorm:"type:varchar(70)"`
	SEODescription  string `gorm:"type:varchar(160)"`
}

// TableName returns the table name for GORM
func (CategoryModel) TableName() string {
	return "categories"
}

// ToDomain converts the persistence model to a domain Category.
func (m *CategoryModel) ToDomain() *catalog.Category {
	return &catalog.Category{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Slug:              m.Slug,
		ImageURL:          m.ImageURL,
		IncludeJourneys:   m.IncludeJourneys,
		JourneyPosition:   catalog.JourneyPosition(m.JourneyPosition),
		DefaultSort:       catalog.SortKey(m.DefaultSort),
		SEOTitle:          m.SEOTitle,
		SEODescription:    m.SEODescription,
	}
}

// FromDomain populates the persistence model from a domain Category.
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.Slug = c.Slug
	m.ImageURL = c.ImageURL
	m.IncludeJourneys = c.IncludeJourneys
	m.JourneyPosition = string(c.JourneyPosition)
	m.DefaultSort = string(c.DefaultSort)
	m.SEOTitle = c.SEOTitle
	m.SEODescription = c.SEODescription
}

// CategoryModelFromDomain creates a new persistence model from a domain Category.
func CategoryModelFromDomain(c *catalog.Category) *CategoryModel {
	m := &CategoryModel{}
	m.FromDomain(c)
	return m
}

// ZoneModel is the persistence model for the Zone aggregate.
type ZoneModel struct {
	AggregateModel
	Name       string    `gorm:"type:varchar(100);not null"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (ZoneModel) TableName() string {
	return "zones"
}

// ToDomain converts the persistence model to a domain Zone.
func (m *ZoneModel) ToDomain() *catalog.Zone {
	return &catalog.Zone{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		CategoryID:        m.CategoryID,
	}
}

// FromDomain populates the persistence model from a domain Zone.
func (m *ZoneModel) FromDomain(z *catalog.Zone) {
	m.FromDomainAggregateRoot(z.BaseAggregateRoot)
	m.Name = z.Name
	m.CategoryID = z.CategoryID
}

// ZoneModelFromDomain creates a new persistence model from a domain Zone.
func ZoneModelFromDomain(z *catalog.Zone) *ZoneModel {
	m := &ZoneModel{}
	m.FromDomain(z)
	return m
}

// TreatmentModel is the persistence model for the Treatment aggregate.
type TreatmentModel struct {
	AggregateModel
	Slug          string     `gorm:"type:varchar(120);not null;uniqueIndex"`
	Title         string     `gorm:"type:varchar(200);not null"`
	Description   string     `gorm:"type:text"`
	ImageURL      string     `gorm:"type:varchar(500)"`
	CategoryID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	JourneyID     *uuid.UUID `gorm:"type:uuid;index"`
	IsActive      bool       `gorm:"not null;default:true"`
	IsFeatured    bool       `gorm:"not null;default:false"`
	RequiresZones bool       `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (TreatmentModel) TableName() string {
	return "treatments"
}

// ToDomain converts the persistence model to a domain Treatment.
func (m *TreatmentModel) ToDomain() *catalog.Treatment {
	return &catalog.Treatment{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Slug:              m.Slug,
		Title:             m.Title,
		Description:       m.Description,
		ImageURL:          m.ImageURL,
		CategoryID:        m.CategoryID,
		JourneyID:         m.JourneyID,
		IsActive:          m.IsActive,
		IsFeatured:        m.IsFeatured,
		RequiresZones:     m.RequiresZones,
	}
}

// FromDomain populates the persistence model from a domain Treatment.
func (m *TreatmentModel) FromDomain(t *catalog.Treatment) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.Slug = t.Slug
	m.Title = t.Title
	m.Description = t.Description
	m.ImageURL = t.ImageURL
	m.CategoryID = t.CategoryID
	m.JourneyID = t.JourneyID
	m.IsActive = t.IsActive
	m.IsFeatured = t.IsFeatured
	m.RequiresZones = t.RequiresZones
}

// TreatmentModelFromDomain creates a new persistence model from a domain Treatment.
func TreatmentModelFromDomain(t *catalog.Treatment) *TreatmentModel {
	m := &TreatmentModel{}
	m.FromDomain(t)
	return m
}

// ZoneConfigModel is the persistence model for the ZoneConfig aggregate.
// One treatment gets at most one configuration per zone.
type ZoneConfigModel struct {
	AggregateModel
	TreatmentID      uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:idx_zone_config_treatment_zone,priority:1"`
	ZoneID           uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:idx_zone_config_treatment_zone,priority:2"`
	DurationMinutes  int              `gorm:"not null"`
	Price            decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	PromotionalPrice *decimal.Decimal `gorm:"type:decimal(10,2)"`
	BodyPosition     string           `gorm:"type:varchar(10);not null;default:'any'"`
}

// TableName returns the table name for GORM
func (ZoneConfigModel) TableName() string {
	return "zone_configs"
}

// ToDomain converts the persistence model to a domain ZoneConfig.
func (m *ZoneConfigModel) ToDomain() *catalog.ZoneConfig {
	return &catalog.ZoneConfig{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		TreatmentID:       m.TreatmentID,
		ZoneID:            m.ZoneID,
		DurationMinutes:   m.DurationMinutes,
		Price:             m.Price,
		PromotionalPrice:  m.PromotionalPrice,
		BodyPosition:      catalog.BodyPosition(m.BodyPosition),
	}
}

// FromDomain populates the persistence model from a domain ZoneConfig.
func (m *ZoneConfigModel) FromDomain(c *catalog.ZoneConfig) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.TreatmentID = c.TreatmentID
	m.ZoneID = c.ZoneID
	m.DurationMinutes = c.DurationMinutes
	m.Price = c.Price
	m.PromotionalPrice = c.PromotionalPrice
	m.BodyPosition = string(c.BodyPosition)
}

// ZoneConfigModelFromDomain creates a new persistence model from a domain ZoneConfig.
func ZoneConfigModelFromDomain(c *catalog.ZoneConfig) *ZoneConfigModel {
	m := &ZoneConfigModel{}
	m.FromDomain(c)
	return m
}

// ComboModel is the persistence model for the Combo aggregate.
type ComboModel struct {
	AggregateModel
	Slug                   string           `gorm:"type:varchar(120);not null;uniqueIndex"`
	Title                  string           `gorm:"type:varchar(200);not null"`
	Description            string           `gorm:"type:text"`
	ImageURL               string           `gorm:"type:varchar(500)"`
	CategoryID             uuid.UUID        `gorm:"type:uuid;not null;index"`
	JourneyID              *uuid.UUID       `gorm:"type:uuid;index"`
	IsActive               bool             `gorm:"not null;default:true"`
	IsFeatured             bool             `gorm:"not null;default:false"`
	Price                  decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	PromotionalPrice       *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Sessions               int              `gorm:"not null;default:1"`
	MinSessionIntervalDays int              `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ComboModel) TableName() string {
	return "combos"
}

// ToDomain converts the persistence model to a domain Combo.
func (m *ComboModel) ToDomain() *catalog.Combo {
	return &catalog.Combo{
		BaseAggregateRoot:      m.ToDomainAggregateRoot(),
		Slug:                   m.Slug,
		Title:                  m.Title,
		Description:            m.Description,
		ImageURL:               m.ImageURL,
		CategoryID:             m.CategoryID,
		JourneyID:              m.JourneyID,
		IsActive:               m.IsActive,
		IsFeatured:             m.IsFeatured,
		Price:                  m.Price,
		PromotionalPrice:       m.PromotionalPrice,
		Sessions:               m.Sessions,
		MinSessionIntervalDays: m.MinSessionIntervalDays,
	}
}

// FromDomain populates the persistence model from a domain Combo.
func (m *ComboModel) FromDomain(c *catalog.Combo) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Slug = c.Slug
	m.Title = c.Title
	m.Description = c.Description
	m.ImageURL = c.ImageURL
	m.CategoryID = c.CategoryID
	m.JourneyID = c.JourneyID
	m.IsActive = c.IsActive
	m.IsFeatured = c.IsFeatured
	m.Price = c.Price
	m.PromotionalPrice = c.PromotionalPrice
	m.Sessions = c.Sessions
	m.MinSessionIntervalDays = c.MinSessionIntervalDays
}

// ComboModelFromDomain creates a new persistence model from a domain Combo.
func ComboModelFromDomain(c *catalog.Combo) *ComboModel {
	m := &ComboModel{}
	m.FromDomain(c)
	return m
}

// JourneyModel is the persistence model for the Journey aggregate.
type JourneyModel struct {
	AggregateModel
	Slug        string    `gorm:"type:varchar(120);not null;uniqueIndex"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:varchar(500)"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (JourneyModel) TableName() string {
	return "journeys"
}

// ToDomain converts the persistence model to a domain Journey.
func (m *JourneyModel) ToDomain() *catalog.Journey {
	return &catalog.Journey{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Slug:              m.Slug,
		Title:             m.Title,
		Description:       m.Description,
		ImageURL:          m.ImageURL,
		CategoryID:        m.CategoryID,
	}
}

// FromDomain populates the persistence model from a domain Journey.
func (m *JourneyModel) FromDomain(j *catalog.Journey) {
	m.FromDomainAggregateRoot(j.BaseAggregateRoot)
	m.Slug = j.Slug
	m.Title = j.Title
	m.Description = j.Description
	m.ImageURL = j.ImageURL
	m.CategoryID = j.CategoryID
}

// JourneyModelFromDomain creates a new persistence model from a domain Journey.
func JourneyModelFromDomain(j *catalog.Journey) *JourneyModel {
	m := &JourneyModel{}
	m.FromDomain(j)
	return m
}

// ItemOrderModel is the persistence model for ordering entries. The
// polymorphic item reference is flattened into kind and ID columns; an
// item appears at most once per context.
type ItemOrderModel struct {
	BaseModel
	ContextKind string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_item_order_context_item,priority:1;index:idx_item_order_context,priority:1"`
	ContextID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_item_order_context_item,priority:2;index:idx_item_order_context,priority:2"`
	ItemKind    string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_item_order_context_item,priority:3"`
	ItemID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_item_order_context_item,priority:4"`
	SortOrder   int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ItemOrderModel) TableName() string {
	return "item_orders"
}

// ToDomain converts the persistence model to a domain ItemOrder.
func (m *ItemOrderModel) ToDomain() *catalog.ItemOrder {
	return &catalog.ItemOrder{
		BaseEntity:  m.BaseModel.ToDomain(),
		ContextKind: catalog.ContextKind(m.ContextKind),
		ContextID:   m.ContextID,
		Item:        catalog.NewItemRef(catalog.ItemKind(m.ItemKind), m.ItemID),
		Order:       m.SortOrder,
	}
}

// FromDomain populates the persistence model from a domain ItemOrder.
func (m *ItemOrderModel) FromDomain(o *catalog.ItemOrder) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.ContextKind = string(o.ContextKind)
	m.ContextID = o.ContextID
	m.ItemKind = string(o.Item.Kind)
	m.ItemID = o.Item.ID
	m.SortOrder = o.Order
}

// ItemOrderModelFromDomain creates a new persistence model from a domain ItemOrder.
func ItemOrderModelFromDomain(o *catalog.ItemOrder) *ItemOrderModel {
	m := &ItemOrderModel{}
	m.FromDomain(o)
	return m
}

// PlacementModel is the persistence model for the Placement aggregate.
type PlacementModel struct {
	AggregateModel
	Slug     string `gorm:"type:varchar(120);not null;uniqueIndex"`
	Title    string `gorm:"type:varchar(200);not null"`
	MaxItems int    `gorm:"not null;default:40"`
	IsActive bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (PlacementModel) TableName() string {
	return "placements"
}

// ToDomain converts the persistence model to a domain Placement.
func (m *PlacementModel) ToDomain() *catalog.Placement {
	return &catalog.Placement{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Slug:              m.Slug,
		Title:             m.Title,
		MaxItems:          m.MaxItems,
		IsActive:          m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Placement.
func (m *PlacementModel) FromDomain(p *catalog.Placement) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Slug = p.Slug
	m.Title = p.Title
	m.MaxItems = p.MaxItems
	m.IsActive = p.IsActive
}

// PlacementModelFromDomain creates a new persistence model from a domain Placement.
func PlacementModelFromDomain(p *catalog.Placement) *PlacementModel {
	m := &PlacementModel{}
	m.FromDomain(p)
	return m
}

// PlacementItemModel is the persistence model for placement entries.
type PlacementItemModel struct {
	BaseModel
	PlacementID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_placement_item,priority:1"`
	ItemKind    string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_placement_item,priority:2"`
	ItemID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_placement_item,priority:3"`
	SortOrder   int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PlacementItemModel) TableName() string {
	return "placement_items"
}

// ToDomain converts the persistence model to a domain PlacementItem.
func (m *PlacementItemModel) ToDomain() *catalog.PlacementItem {
	return &catalog.PlacementItem{
		BaseEntity:  m.BaseModel.ToDomain(),
		PlacementID: m.PlacementID,
		Item:        catalog.NewItemRef(catalog.ItemKind(m.ItemKind), m.ItemID),
		Order:       m.SortOrder,
	}
}

// FromDomain populates the persistence model from a domain PlacementItem.
func (m *PlacementItemModel) FromDomain(i *catalog.PlacementItem) {
	m.FromDomainBaseEntity(i.BaseEntity)
	m.PlacementID = i.PlacementID
	m.ItemKind = string(i.Item.Kind)
	m.ItemID = i.Item.ID
	m.SortOrder = i.Order
}

// PlacementItemModelFromDomain creates a new persistence model from a domain PlacementItem.
func PlacementItemModelFromDomain(i *catalog.PlacementItem) *PlacementItemModel {
	m := &PlacementItemModel{}
	m.FromDomain(i)
	return m
}

// IncompatibilityModel is the persistence model for incompatibility edges.
// Rows always hold the canonical pair, so the unique index covers both
// directions of an edge.
type IncompatibilityModel struct {
	BaseModel
	LeftID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_incompatibility_pair,priority:1"`
	RightID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_incompatibility_pair,priority:2"`
}

// TableName returns the table name for GORM
func (IncompatibilityModel) TableName() string {
	return "incompatibilities"
}

// ToDomain converts the persistence model to a domain Incompatibility.
func (m *IncompatibilityModel) ToDomain() *catalog.Incompatibility {
	return &catalog.Incompatibility{
		BaseEntity: m.BaseModel.ToDomain(),
		LeftID:     m.LeftID,
		RightID:    m.RightID,
	}
}

// FromDomain populates the persistence model from a domain Incompatibility.
func (m *IncompatibilityModel) FromDomain(e *catalog.Incompatibility) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.LeftID = e.LeftID
	m.RightID = e.RightID
}

// IncompatibilityModelFromDomain creates a new persistence model from a domain Incompatibility.
func IncompatibilityModelFromDomain(e *catalog.Incompatibility) *IncompatibilityModel {
	m := &IncompatibilityModel{}
	m.FromDomain(e)
	return m
}

// GalleryImageModel is the persistence model for gallery images.
type GalleryImageModel struct {
	BaseModel
	OwnerKind  string    `gorm:"type:varchar(10);not null;index:idx_gallery_owner,priority:1"`
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;index:idx_gallery_owner,priority:2"`
	StorageKey string    `gorm:"type:varchar(500);not null"`
	AltText    string    `gorm:"type:varchar(300)"`
	SortOrder  int       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (GalleryImageModel) TableName() string {
	return "gallery_images"
}

// ToDomain converts the persistence model to a domain GalleryImage.
func (m *GalleryImageModel) ToDomain() *catalog.GalleryImage {
	return &catalog.GalleryImage{
		BaseEntity: m.BaseModel.ToDomain(),
		OwnerKind:  catalog.ItemKind(m.OwnerKind),
		OwnerID:    m.OwnerID,
		StorageKey: m.StorageKey,
		AltText:    m.AltText,
		Order:      m.SortOrder,
	}
}

// FromDomain populates the persistence model from a domain GalleryImage.
func (m *GalleryImageModel) FromDomain(g *catalog.GalleryImage) {
	m.FromDomainBaseEntity(g.BaseEntity)
	m.OwnerKind = string(g.OwnerKind)
	m.OwnerID = g.OwnerID
	m.StorageKey = g.StorageKey
	m.AltText = g.AltText
	m.SortOrder = g.Order
}

// GalleryImageModelFromDomain creates a new persistence model from a domain GalleryImage.
func GalleryImageModelFromDomain(g *catalog.GalleryImage) *GalleryImageModel {
	m := &GalleryImageModel{}
	m.FromDomain(g)
	return m
}

// FilterAttributeModel is the persistence model for browse filter
// attributes. Names are unique per taxonomy kind.
type FilterAttributeModel struct {
	AggregateModel
	Kind     string `gorm:"type:varchar(20);not null;uniqueIndex:idx_filter_kind_name,priority:1"`
	Name     string `gorm:"type:varchar(100);not null;uniqueIndex:idx_filter_kind_name,priority:2"`
	ImageURL string `gorm:"type:varchar(500)"`
	Minutes  int    `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (FilterAttributeModel) TableName() string {
	return "filter_attributes"
}

// ToDomain converts the persistence model to a domain FilterAttribute.
func (m *FilterAttributeModel) ToDomain() *catalog.FilterAttribute {
	return &catalog.FilterAttribute{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Kind:              catalog.FilterKind(m.Kind),
		Name:              m.Name,
		ImageURL:          m.ImageURL,
		Minutes:           m.Minutes,
	}
}

// FromDomain populates the persistence model from a domain FilterAttribute.
func (m *FilterAttributeModel) FromDomain(f *catalog.FilterAttribute) {
	m.FromDomainAggregateRoot(f.BaseAggregateRoot)
	m.Kind = string(f.Kind)
	m.Name = f.Name
	m.ImageURL = f.ImageURL
	m.Minutes = f.Minutes
}

// FilterAttributeModelFromDomain creates a new persistence model from a domain FilterAttribute.
func FilterAttributeModelFromDomain(f *catalog.FilterAttribute) *FilterAttributeModel {
	m := &FilterAttributeModel{}
	m.FromDomain(f)
	return m
}

// TreatmentFilterModel links a treatment to a filter attribute.
type TreatmentFilterModel struct {
	TreatmentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	FilterID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName returns the table name for GORM
func (TreatmentFilterModel) TableName() string {
	return "treatment_filters"
}

// AllModels lists every persistence model for auto-migration in tests.
func AllModels() []interface{} {
	return []interface{}{
		&CategoryModel{},
		&ZoneModel{},
		&TreatmentModel{},
		&ZoneConfigModel{},
		&ComboModel{},
		&JourneyModel{},
		&ItemOrderModel{},
		&PlacementModel{},
		&PlacementItemModel{},
		&IncompatibilityModel{},
		&GalleryImageModel{},
		&FilterAttributeModel{},
		&TreatmentFilterModel{},
	}
}
