package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/spacatalog/backend/internal/application/catalog"
)

// FilterHandler handles browse filter taxonomy endpoints
type FilterHandler struct {
	BaseHandler
	filterService *catalogapp.FilterService
}

// NewFilterHandler creates a new FilterHandler
func NewFilterHandler(filterService *catalogapp.FilterService) *FilterHandler {
	return &FilterHandler{
		filterService: filterService,
	}
}

// List godoc
// @Summary      List one filter taxonomy
// @Description  Return a taxonomy's attributes ordered by name
// @Tags         filters
// @Produce      json
// @Param        kind path string true "Taxonomy kind" Enums(treatment-type, objective, intensity, duration, tag)
// @Success      200 {object} dto.Response{data=[]catalogapp.FilterAttributeResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/filters/{kind} [get]
func (h *FilterHandler) List(c *gin.Context) {
	kind, err := parseFilterKind(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	attributes, err := h.filterService.ListByKind(c.Request.Context(), kind)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, attributes)
}

// Create godoc
// @Summary      Create a filter attribute
// @Description  Create an attribute in one taxonomy. Names are unique per taxonomy.
// @Tags         filters
// @Accept       json
// @Produce      json
// @Param        kind path string true "Taxonomy kind" Enums(treatment-type, objective, intensity, duration, tag)
// @Param        request body catalogapp.CreateFilterAttributeRequest true "Attribute creation request"
// @Success      201 {object} dto.Response{data=catalogapp.FilterAttributeResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/filters/{kind} [post]
func (h *FilterHandler) Create(c *gin.Context) {
	kind, err := parseFilterKind(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var req catalogapp.CreateFilterAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	attribute, err := h.filterService.Create(c.Request.Context(), kind, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, attribute)
}

// Update godoc
// @Summary      Update a filter attribute
// @Tags         filters
// @Accept       json
// @Produce      json
// @Param        kind path string true "Taxonomy kind" Enums(treatment-type, objective, intensity, duration, tag)
// @Param        id path string true "Attribute ID" format(uuid)
// @Param        request body catalogapp.UpdateFilterAttributeRequest true "Attribute update request"
// @Success      200 {object} dto.Response{data=catalogapp.FilterAttributeResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/filters/{kind}/{id} [put]
func (h *FilterHandler) Update(c *gin.Context) {
	kind, err := parseFilterKind(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid attribute ID format")
		return
	}

	var req catalogapp.UpdateFilterAttributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	attribute, err := h.filterService.Update(c.Request.Context(), kind, id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, attribute)
}

// Delete godoc
// @Summary      Delete a filter attribute
// @Description  Delete an attribute along with its treatment assignments
// @Tags         filters
// @Param        kind path string true "Taxonomy kind" Enums(treatment-type, objective, intensity, duration, tag)
// @Param        id path string true "Attribute ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/filters/{kind}/{id} [delete]
func (h *FilterHandler) Delete(c *gin.Context) {
	kind, err := parseFilterKind(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid attribute ID format")
		return
	}

	if err := h.filterService.Delete(c.Request.Context(), kind, id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
