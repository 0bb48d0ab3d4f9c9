package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/spacatalog/backend/internal/application/catalog"
)

// PlacementHandler handles capacity-bounded placement endpoints
type PlacementHandler struct {
	BaseHandler
	placementService *catalogapp.PlacementService
	orderingService  *catalogapp.OrderingService
}

// NewPlacementHandler creates a new PlacementHandler
func NewPlacementHandler(placementService *catalogapp.PlacementService, orderingService *catalogapp.OrderingService) *PlacementHandler {
	return &PlacementHandler{
		placementService: placementService,
		orderingService:  orderingService,
	}
}

// Create godoc
// @Summary      Create a new placement
// @Description  Create a curated placement with the default item capacity
// @Tags         placements
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreatePlacementRequest true "Placement creation request"
// @Success      201 {object} dto.Response{data=catalogapp.PlacementResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/placements [post]
func (h *PlacementHandler) Create(c *gin.Context) {
	var req catalogapp.CreatePlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	placement, err := h.placementService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, placement)
}

// GetByID godoc
// @Summary      Get placement by ID
// @Tags         placements
// @Produce      json
// @Param        id path string true "Placement ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.PlacementResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/placements/{id} [get]
func (h *PlacementHandler) GetByID(c *gin.Context) {
	placementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid placement ID format")
		return
	}

	placement, err := h.placementService.GetByID(c.Request.Context(), placementID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, placement)
}

// List godoc
// @Summary      List placements
// @Tags         placements
// @Produce      json
// @Param        search query string false "Search keyword"
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Items per page" default(20)
// @Success      200 {object} dto.Response{data=[]catalogapp.PlacementResponse}
// @Security     BearerAuth
// @Router       /admin/placements [get]
func (h *PlacementHandler) List(c *gin.Context) {
	filter, err := bindFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	placements, err := h.placementService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, placements)
}

// Update godoc
// @Summary      Update a placement
// @Description  Update title, capacity or active flag; the capacity only constrains future reorders
// @Tags         placements
// @Accept       json
// @Produce      json
// @Param        id path string true "Placement ID" format(uuid)
// @Param        request body catalogapp.UpdatePlacementRequest true "Placement update request"
// @Success      200 {object} dto.Response{data=catalogapp.PlacementResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/placements/{id} [put]
func (h *PlacementHandler) Update(c *gin.Context) {
	placementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid placement ID format")
		return
	}

	var req catalogapp.UpdatePlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	placement, err := h.placementService.Update(c.Request.Context(), placementID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, placement)
}

// Delete godoc
// @Summary      Delete a placement
// @Description  Delete a placement and its member entries
// @Tags         placements
// @Param        id path string true "Placement ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/placements/{id} [delete]
func (h *PlacementHandler) Delete(c *gin.Context) {
	placementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid placement ID format")
		return
	}

	if err := h.placementService.Delete(c.Request.Context(), placementID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ReorderItems godoc
// @Summary      Replace a placement's member order
// @Description  Reconcile the placement's entries against the submitted order, enforcing capacity
// @Tags         placements
// @Accept       json
// @Produce      json
// @Param        id path string true "Placement ID" format(uuid)
// @Param        request body catalogapp.ReorderRequest true "Target order"
// @Success      200 {object} dto.Response{data=catalogapp.ReconcileResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/placements/{id}/items [put]
func (h *PlacementHandler) ReorderItems(c *gin.Context) {
	placementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid placement ID format")
		return
	}

	var req catalogapp.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.orderingService.ReconcilePlacement(c.Request.Context(), placementID, catalogapp.ToItemRefs(req.Items))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}
