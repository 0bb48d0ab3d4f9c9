package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/spacatalog/backend/internal/application/catalog"
)

// ZoneHandler handles body zone administration endpoints
type ZoneHandler struct {
	BaseHandler
	zoneService *catalogapp.ZoneService
}

// NewZoneHandler creates a new ZoneHandler
func NewZoneHandler(zoneService *catalogapp.ZoneService) *ZoneHandler {
	return &ZoneHandler{
		zoneService: zoneService,
	}
}

// RenameZoneRequest renames a zone
type RenameZoneRequest struct {
	Name string `json:"name" binding:"required"`
}

// Create godoc
// @Summary      Create a new zone
// @Description  Create a body zone scoped to a category
// @Tags         zones
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateZoneRequest true "Zone creation request"
// @Success      201 {object} dto.Response{data=catalogapp.ZoneResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/zones [post]
func (h *ZoneHandler) Create(c *gin.Context) {
	var req catalogapp.CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	zone, err := h.zoneService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, zone)
}

// ListByCategory godoc
// @Summary      List zones for a category
// @Tags         zones
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]catalogapp.ZoneResponse}
// @Security     BearerAuth
// @Router       /admin/categories/{id}/zones [get]
func (h *ZoneHandler) ListByCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	zones, err := h.zoneService.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, zones)
}

// Rename godoc
// @Summary      Rename a zone
// @Tags         zones
// @Accept       json
// @Produce      json
// @Param        id path string true "Zone ID" format(uuid)
// @Param        request body RenameZoneRequest true "Rename request"
// @Success      200 {object} dto.Response{data=catalogapp.ZoneResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/zones/{id} [patch]
func (h *ZoneHandler) Rename(c *gin.Context) {
	zoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid zone ID format")
		return
	}

	var req RenameZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	zone, err := h.zoneService.Rename(c.Request.Context(), zoneID, req.Name)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, zone)
}

// Delete godoc
// @Summary      Delete a zone
// @Description  Delete a zone along with its configurations and their incompatibility edges
// @Tags         zones
// @Param        id path string true "Zone ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/zones/{id} [delete]
func (h *ZoneHandler) Delete(c *gin.Context) {
	zoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid zone ID format")
		return
	}

	if err := h.zoneService.Delete(c.Request.Context(), zoneID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
