package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/spacatalog/backend/internal/application/catalog"
)

// IncompatibilityHandler handles zone configuration incompatibility endpoints
type IncompatibilityHandler struct {
	BaseHandler
	incompatibilityService *catalogapp.IncompatibilityService
}

// NewIncompatibilityHandler creates a new IncompatibilityHandler
func NewIncompatibilityHandler(incompatibilityService *catalogapp.IncompatibilityService) *IncompatibilityHandler {
	return &IncompatibilityHandler{
		incompatibilityService: incompatibilityService,
	}
}

// Upsert godoc
// @Summary      Declare two configurations incompatible
// @Description  Create the canonical edge between two zone configurations; repeating the call is a no-op
// @Tags         incompatibilities
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.UpsertIncompatibilityRequest true "Edge endpoints"
// @Success      200 {object} dto.Response{data=catalogapp.IncompatibilityResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/incompatibilities [put]
func (h *IncompatibilityHandler) Upsert(c *gin.Context) {
	var req catalogapp.UpsertIncompatibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	edge, err := h.incompatibilityService.UpsertEdge(c.Request.Context(), req.ConfigA, req.ConfigB)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, edge)
}

// Delete godoc
// @Summary      Remove an incompatibility edge
// @Tags         incompatibilities
// @Accept       json
// @Param        request body catalogapp.UpsertIncompatibilityRequest true "Edge endpoints"
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/incompatibilities [delete]
func (h *IncompatibilityHandler) Delete(c *gin.Context) {
	var req catalogapp.UpsertIncompatibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.incompatibilityService.DeleteEdge(c.Request.Context(), req.ConfigA, req.ConfigB); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ListForConfig godoc
// @Summary      List edges touching a configuration
// @Tags         incompatibilities
// @Produce      json
// @Param        id path string true "Zone configuration ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]catalogapp.IncompatibilityResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/zone-configs/{id}/incompatibilities [get]
func (h *IncompatibilityHandler) ListForConfig(c *gin.Context) {
	configID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid zone configuration ID format")
		return
	}

	edges, err := h.incompatibilityService.ListForConfig(c.Request.Context(), configID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, edges)
}

// Candidates godoc
// @Summary      List candidate partners for a configuration
// @Description  Return the sibling configurations an edge could be declared with, flagging existing edges
// @Tags         incompatibilities
// @Produce      json
// @Param        id path string true "Zone configuration ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]catalogapp.CandidateResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/zone-configs/{id}/incompatibility-candidates [get]
func (h *IncompatibilityHandler) Candidates(c *gin.Context) {
	configID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid zone configuration ID format")
		return
	}

	candidates, err := h.incompatibilityService.Candidates(c.Request.Context(), configID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, candidates)
}

// Prune godoc
// @Summary      Prune invalid edges for a configuration
// @Description  Re-validate every edge touching the configuration and drop the ones its current state no longer permits
// @Tags         incompatibilities
// @Produce      json
// @Param        id path string true "Zone configuration ID" format(uuid)
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/zone-configs/{id}/incompatibilities/prune [post]
func (h *IncompatibilityHandler) Prune(c *gin.Context) {
	configID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid zone configuration ID format")
		return
	}

	removed, err := h.incompatibilityService.PruneNode(c.Request.Context(), configID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"removed": removed})
}
