package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spacatalog/backend/internal/domain/catalog"
)

// ItemRefDTO is the wire form of a polymorphic item reference
type ItemRefDTO struct {
	Kind string    `json:"kind" binding:"required"`
	ID   uuid.UUID `json:"id" binding:"required"`
}

// ToDomain converts the DTO into a domain reference
func (d ItemRefDTO) ToDomain() catalog.ItemRef {
	return catalog.NewItemRef(catalog.ItemKind(d.Kind), d.ID)
}

// ToItemRefs converts a slice of DTOs into domain references
func ToItemRefs(dtos []ItemRefDTO) []catalog.ItemRef {
	refs := make([]catalog.ItemRef, len(dtos))
	for i, dto := range dtos {
		refs[i] = dto.ToDomain()
	}
	return refs
}

// CreateCategoryRequest is the request to create a category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

// UpdateCategoryRequest is the request to update a category
type UpdateCategoryRequest struct {
	Name           string `json:"name" binding:"required"`
	ImageURL       string `json:"image_url"`
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
}

// JourneyPlacementRequest configures journey splicing for a category listing
type JourneyPlacementRequest struct {
	IncludeJourneys bool   `json:"include_journeys"`
	JourneyPosition string `json:"journey_position" binding:"required"`
}

// DefaultSortRequest sets a category's default sort key
type DefaultSortRequest struct {
	DefaultSort string `json:"default_sort" binding:"required"`
}

// CategoryResponse is the category representation returned to clients
type CategoryResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	ImageURL        string    `json:"image_url,omitempty"`
	IncludeJourneys bool      `json:"include_journeys"`
	JourneyPosition string    `json:"journey_position"`
	DefaultSort     string    `json:"default_sort"`
	SEOTitle        string    `json:"seo_title,omitempty"`
	SEODescription  string    `json:"seo_description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToCategoryResponse converts a category to its response form
func ToCategoryResponse(category *catalog.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:              category.ID,
		Name:            category.Name,
		Slug:            category.Slug,
		ImageURL:        category.ImageURL,
		IncludeJourneys: category.IncludeJourneys,
		JourneyPosition: string(category.JourneyPosition),
		DefaultSort:     string(category.DefaultSort),
		SEOTitle:        category.SEOTitle,
		SEODescription:  category.SEODescription,
		CreatedAt:       category.CreatedAt,
		UpdatedAt:       category.UpdatedAt,
	}
}

// CreateZoneRequest is the request to create a zone
type CreateZoneRequest struct {
	Name       string    `json:"name" binding:"required"`
	CategoryID uuid.UUID `json:"category_id" binding:"required"`
}

// ZoneResponse is the zone representation returned to clients
type ZoneResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	CategoryID uuid.UUID `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToZoneResponse converts a zone to its response form
func ToZoneResponse(zone *catalog.Zone) *ZoneResponse {
	return &ZoneResponse{
		ID:         zone.ID,
		Name:       zone.Name,
		CategoryID: zone.CategoryID,
		CreatedAt:  zone.CreatedAt,
	}
}

// CreateTreatmentRequest is the request to create a treatment
type CreateTreatmentRequest struct {
	Title      string      `json:"title" binding:"required"`
	Slug       string      `json:"slug" binding:"required"`
	CategoryID uuid.UUID   `json:"category_id" binding:"required"`
	FilterIDs  []uuid.UUID `json:"filter_ids"`
}

// UpdateTreatmentRequest is the request to update a treatment. A nil
// FilterIDs leaves the filter assignments untouched; an empty list
// clears them.
type UpdateTreatmentRequest struct {
	Title       string       `json:"title" binding:"required"`
	Description string       `json:"description"`
	ImageURL    string       `json:"image_url"`
	JourneyID   *uuid.UUID   `json:"journey_id"`
	IsActive    *bool        `json:"is_active"`
	IsFeatured  *bool        `json:"is_featured"`
	FilterIDs   *[]uuid.UUID `json:"filter_ids"`
}

// TreatmentResponse is the treatment representation returned to clients
type TreatmentResponse struct {
	ID             uuid.UUID                 `json:"id"`
	Slug           string                    `json:"slug"`
	Title          string                    `json:"title"`
	Description    string                    `json:"description,omitempty"`
	ImageURL       string                    `json:"image_url,omitempty"`
	CategoryID     uuid.UUID                 `json:"category_id"`
	JourneyID      *uuid.UUID                `json:"journey_id,omitempty"`
	IsActive       bool                      `json:"is_active"`
	IsFeatured     bool                      `json:"is_featured"`
	EffectivePrice *decimal.Decimal          `json:"effective_price,omitempty"`
	ZoneConfigs    []ZoneConfigResponse      `json:"zone_configs,omitempty"`
	Filters        []FilterAttributeResponse `json:"filters,omitempty"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}

// ToTreatmentResponse converts a treatment and its configurations to the response form
func ToTreatmentResponse(treatment *catalog.Treatment, configs []catalog.ZoneConfig) *TreatmentResponse {
	resp := &TreatmentResponse{
		ID:          treatment.ID,
		Slug:        treatment.Slug,
		Title:       treatment.Title,
		Description: treatment.Description,
		ImageURL:    treatment.ImageURL,
		CategoryID:  treatment.CategoryID,
		JourneyID:   treatment.JourneyID,
		IsActive:    treatment.IsActive,
		IsFeatured:  treatment.IsFeatured,
		CreatedAt:   treatment.CreatedAt,
		UpdatedAt:   treatment.UpdatedAt,
	}

	configPtrs := make([]*catalog.ZoneConfig, len(configs))
	for i := range configs {
		configPtrs[i] = &configs[i]
		resp.ZoneConfigs = append(resp.ZoneConfigs, *ToZoneConfigResponse(&configs[i]))
	}
	if price, ok := catalog.TreatmentEffectivePrice(configPtrs); ok {
		resp.EffectivePrice = &price
	}

	return resp
}

// CreateZoneConfigRequest is the request to configure a treatment for a zone
type CreateZoneConfigRequest struct {
	ZoneID           uuid.UUID        `json:"zone_id" binding:"required"`
	DurationMinutes  int              `json:"duration_minutes" binding:"required"`
	Price            decimal.Decimal  `json:"price" binding:"required"`
	PromotionalPrice *decimal.Decimal `json:"promotional_price"`
	BodyPosition     string           `json:"body_position"`
}

// UpdateZoneConfigRequest is the request to update a zone configuration
type UpdateZoneConfigRequest struct {
	ZoneID           uuid.UUID        `json:"zone_id" binding:"required"`
	DurationMinutes  int              `json:"duration_minutes" binding:"required"`
	Price            decimal.Decimal  `json:"price" binding:"required"`
	PromotionalPrice *decimal.Decimal `json:"promotional_price"`
	BodyPosition     string           `json:"body_position" binding:"required"`
}

// ZoneConfigResponse is the zone configuration representation returned to clients
type ZoneConfigResponse struct {
	ID               uuid.UUID        `json:"id"`
	TreatmentID      uuid.UUID        `json:"treatment_id"`
	ZoneID           uuid.UUID        `json:"zone_id"`
	DurationMinutes  int              `json:"duration_minutes"`
	Price            decimal.Decimal  `json:"price"`
	PromotionalPrice *decimal.Decimal `json:"promotional_price,omitempty"`
	CurrentPrice     decimal.Decimal  `json:"current_price"`
	BodyPosition     string           `json:"body_position"`
}

// ToZoneConfigResponse converts a zone configuration to its response form
func ToZoneConfigResponse(config *catalog.ZoneConfig) *ZoneConfigResponse {
	return &ZoneConfigResponse{
		ID:               config.ID,
		TreatmentID:      config.TreatmentID,
		ZoneID:           config.ZoneID,
		DurationMinutes:  config.DurationMinutes,
		Price:            config.Price,
		PromotionalPrice: config.PromotionalPrice,
		CurrentPrice:     config.CurrentPrice(),
		BodyPosition:     string(config.BodyPosition),
	}
}

// CreateComboRequest is the request to create a combo
type CreateComboRequest struct {
	Title            string           `json:"title" binding:"required"`
	Slug             string           `json:"slug" binding:"required"`
	CategoryID       uuid.UUID        `json:"category_id" binding:"required"`
	Price            decimal.Decimal  `json:"price" binding:"required"`
	PromotionalPrice *decimal.Decimal `json:"promotional_price"`
	Sessions         int              `json:"sessions" binding:"required"`
}

// UpdateComboRequest is the request to update a combo
type UpdateComboRequest struct {
	Title            string           `json:"title" binding:"required"`
	Description      string           `json:"description"`
	ImageURL         string           `json:"image_url"`
	Price            decimal.Decimal  `json:"price" binding:"required"`
	PromotionalPrice *decimal.Decimal `json:"promotional_price"`
	JourneyID        *uuid.UUID       `json:"journey_id"`
	IsActive         *bool            `json:"is_active"`
}

// ComboResponse is the combo representation returned to clients
type ComboResponse struct {
	ID               uuid.UUID        `json:"id"`
	Slug             string           `json:"slug"`
	Title            string           `json:"title"`
	Description      string           `json:"description,omitempty"`
	ImageURL         string           `json:"image_url,omitempty"`
	CategoryID       uuid.UUID        `json:"category_id"`
	JourneyID        *uuid.UUID       `json:"journey_id,omitempty"`
	IsActive         bool             `json:"is_active"`
	Price            decimal.Decimal  `json:"price"`
	PromotionalPrice *decimal.Decimal `json:"promotional_price,omitempty"`
	EffectivePrice   decimal.Decimal  `json:"effective_price"`
	Sessions         int              `json:"sessions"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// ToComboResponse converts a combo to its response form
func ToComboResponse(combo *catalog.Combo) *ComboResponse {
	return &ComboResponse{
		ID:               combo.ID,
		Slug:             combo.Slug,
		Title:            combo.Title,
		Description:      combo.Description,
		ImageURL:         combo.ImageURL,
		CategoryID:       combo.CategoryID,
		JourneyID:        combo.JourneyID,
		IsActive:         combo.IsActive,
		Price:            combo.Price,
		PromotionalPrice: combo.PromotionalPrice,
		EffectivePrice:   combo.EffectivePrice(),
		Sessions:         combo.Sessions,
		CreatedAt:        combo.CreatedAt,
		UpdatedAt:        combo.UpdatedAt,
	}
}

// CreateJourneyRequest is the request to create a journey
type CreateJourneyRequest struct {
	Title      string    `json:"title" binding:"required"`
	Slug       string    `json:"slug" binding:"required"`
	CategoryID uuid.UUID `json:"category_id" binding:"required"`
}

// UpdateJourneyRequest is the request to update a journey
type UpdateJourneyRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// JourneyResponse is the journey representation returned to clients
type JourneyResponse struct {
	ID             uuid.UUID        `json:"id"`
	Slug           string           `json:"slug"`
	Title          string           `json:"title"`
	Description    string           `json:"description,omitempty"`
	ImageURL       string           `json:"image_url,omitempty"`
	CategoryID     uuid.UUID        `json:"category_id"`
	EffectivePrice *decimal.Decimal `json:"effective_price,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ToJourneyResponse converts a journey to its response form
func ToJourneyResponse(journey *catalog.Journey) *JourneyResponse {
	return &JourneyResponse{
		ID:          journey.ID,
		Slug:        journey.Slug,
		Title:       journey.Title,
		Description: journey.Description,
		ImageURL:    journey.ImageURL,
		CategoryID:  journey.CategoryID,
		CreatedAt:   journey.CreatedAt,
		UpdatedAt:   journey.UpdatedAt,
	}
}

// CreatePlacementRequest is the request to create a placement
type CreatePlacementRequest struct {
	Title string `json:"title" binding:"required"`
	Slug  string `json:"slug" binding:"required"`
}

// UpdatePlacementRequest is the request to update a placement
type UpdatePlacementRequest struct {
	Title    string `json:"title" binding:"required"`
	MaxItems int    `json:"max_items" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

// PlacementResponse is the placement representation returned to clients
type PlacementResponse struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	MaxItems  int       `json:"max_items"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ToPlacementResponse converts a placement to its response form
func ToPlacementResponse(placement *catalog.Placement) *PlacementResponse {
	return &PlacementResponse{
		ID:        placement.ID,
		Slug:      placement.Slug,
		Title:     placement.Title,
		MaxItems:  placement.MaxItems,
		IsActive:  placement.IsActive,
		CreatedAt: placement.CreatedAt,
	}
}

// ReorderRequest submits a target order for a context or placement
type ReorderRequest struct {
	Items []ItemRefDTO `json:"items" binding:"required"`
}

// ListingItemResponse is one row of a sorted listing
type ListingItemResponse struct {
	Kind      string           `json:"kind"`
	ID        uuid.UUID        `json:"id"`
	Slug      string           `json:"slug"`
	Title     string           `json:"title"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// CategoryListingResponse is a category's assembled listing
type CategoryListingResponse struct {
	Category    *CategoryResponse     `json:"category"`
	AppliedSort string                `json:"applied_sort"`
	Items       []ListingItemResponse `json:"items"`
}

// JourneyListingResponse is a journey's assembled member listing
type JourneyListingResponse struct {
	Journey     *JourneyResponse      `json:"journey"`
	AppliedSort string                `json:"applied_sort"`
	Items       []ListingItemResponse `json:"items"`
}

func toListingItems(items []catalog.ResolvedItem) []ListingItemResponse {
	out := make([]ListingItemResponse, len(items))
	for i, item := range items {
		out[i] = ListingItemResponse{
			Kind:      string(item.Ref.Kind),
			ID:        item.Ref.ID,
			Slug:      item.Slug,
			Title:     item.Title,
			Price:     item.Price,
			CreatedAt: item.CreatedAt,
		}
	}
	return out
}

// UpsertIncompatibilityRequest declares two configurations incompatible
type UpsertIncompatibilityRequest struct {
	ConfigA uuid.UUID `json:"config_a" binding:"required"`
	ConfigB uuid.UUID `json:"config_b" binding:"required"`
}

// IncompatibilityResponse is an edge representation returned to clients
type IncompatibilityResponse struct {
	ID      uuid.UUID `json:"id"`
	LeftID  uuid.UUID `json:"left_id"`
	RightID uuid.UUID `json:"right_id"`
}

// ToIncompatibilityResponse converts an edge to its response form
func ToIncompatibilityResponse(edge *catalog.Incompatibility) *IncompatibilityResponse {
	return &IncompatibilityResponse{
		ID:      edge.ID,
		LeftID:  edge.LeftID,
		RightID: edge.RightID,
	}
}

// CandidateResponse is one configuration a given config could be made
// incompatible with, or already is.
type CandidateResponse struct {
	ConfigID       uuid.UUID `json:"config_id"`
	TreatmentTitle string    `json:"treatment_title"`
	ZoneName       string    `json:"zone_name"`
	BodyPosition   string    `json:"body_position"`
	Incompatible   bool      `json:"incompatible"`
}

// CreateFilterAttributeRequest is the request to create a filter
// attribute. Minutes is required for duration buckets, ImageURL only
// applies to objectives.
type CreateFilterAttributeRequest struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"image_url"`
	Minutes  int    `json:"minutes"`
}

// UpdateFilterAttributeRequest is the request to update a filter attribute
type UpdateFilterAttributeRequest struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"image_url"`
	Minutes  int    `json:"minutes"`
}

// FilterAttributeResponse is the filter attribute representation returned to clients
type FilterAttributeResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url,omitempty"`
	Minutes   int       `json:"minutes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToFilterAttributeResponse converts a filter attribute to its response form
func ToFilterAttributeResponse(attribute *catalog.FilterAttribute) *FilterAttributeResponse {
	return &FilterAttributeResponse{
		ID:        attribute.ID,
		Kind:      string(attribute.Kind),
		Name:      attribute.Name,
		ImageURL:  attribute.ImageURL,
		Minutes:   attribute.Minutes,
		CreatedAt: attribute.CreatedAt,
	}
}

// GalleryOrderEntryDTO is one slot of a target gallery order. Exactly one
// of ExistingID and UploadKey must be set.
type GalleryOrderEntryDTO struct {
	ExistingID *uuid.UUID `json:"existing_id"`
	UploadKey  string     `json:"upload_key"`
	AltText    string     `json:"alt_text"`
}

// GalleryOrderRequest submits a target gallery order
type GalleryOrderRequest struct {
	Entries []GalleryOrderEntryDTO `json:"entries" binding:"required"`
}

// GalleryImageResponse is the gallery image representation returned to clients
type GalleryImageResponse struct {
	ID         uuid.UUID `json:"id"`
	StorageKey string    `json:"storage_key"`
	URL        string    `json:"url,omitempty"`
	AltText    string    `json:"alt_text,omitempty"`
	Order      int       `json:"order"`
}

// ToGalleryImageResponse converts a gallery image to its response form
func ToGalleryImageResponse(image *catalog.GalleryImage, url string) *GalleryImageResponse {
	return &GalleryImageResponse{
		ID:         image.ID,
		StorageKey: image.StorageKey,
		URL:        url,
		AltText:    image.AltText,
		Order:      image.Order,
	}
}
