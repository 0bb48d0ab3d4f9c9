package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/spacatalog/backend/internal/application/catalog"
)

// ListingHandler serves the public storefront listings
type ListingHandler struct {
	BaseHandler
	listingService *catalogapp.ListingService
}

// NewListingHandler creates a new ListingHandler
func NewListingHandler(listingService *catalogapp.ListingService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

// ListCategory godoc
// @Summary      Get a category's storefront listing
// @Description  Return the category's items sorted by the requested key, falling back to the
// @Description  category default, with journeys spliced in per the category's configuration
// @Tags         catalog
// @Produce      json
// @Param        slug path string true "Category slug"
// @Param        sort query string false "Sort key" Enums(manual, price_asc, price_desc, az, za, newest, oldest)
// @Success      200 {object} dto.Response{data=catalogapp.CategoryListingResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/categories/{slug} [get]
func (h *ListingHandler) ListCategory(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		h.BadRequest(c, "Missing category slug")
		return
	}

	listing, err := h.listingService.ListCategory(c.Request.Context(), slug, c.Query("sort"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, listing)
}

// ListJourney godoc
// @Summary      Get a journey's member listing
// @Description  Return the journey's member treatments and combos in manual or requested order
// @Tags         catalog
// @Produce      json
// @Param        id path string true "Journey ID" format(uuid)
// @Param        sort query string false "Sort key" Enums(manual, price_asc, price_desc, az, za, newest, oldest)
// @Success      200 {object} dto.Response{data=catalogapp.JourneyListingResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/journeys/{id} [get]
func (h *ListingHandler) ListJourney(c *gin.Context) {
	journeyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid journey ID format")
		return
	}

	listing, err := h.listingService.ListJourney(c.Request.Context(), journeyID, c.Query("sort"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, listing)
}
