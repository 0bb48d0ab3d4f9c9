package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/spacatalog/backend/internal/application/catalog"
)

// ComboHandler handles session-pack combo endpoints
type ComboHandler struct {
	BaseHandler
	comboService *catalogapp.ComboService
}

// NewComboHandler creates a new ComboHandler
func NewComboHandler(comboService *catalogapp.ComboService) *ComboHandler {
	return &ComboHandler{
		comboService: comboService,
	}
}

// Create godoc
// @Summary      Create a new combo
// @Description  Create a session-pack combo with its own price
// @Tags         combos
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateComboRequest true "Combo creation request"
// @Success      201 {object} dto.Response{data=catalogapp.ComboResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/combos [post]
func (h *ComboHandler) Create(c *gin.Context) {
	var req catalogapp.CreateComboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	combo, err := h.comboService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, combo)
}

// GetByID godoc
// @Summary      Get combo by ID
// @Tags         combos
// @Produce      json
// @Param        id path string true "Combo ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.ComboResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/combos/{id} [get]
func (h *ComboHandler) GetByID(c *gin.Context) {
	comboID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid combo ID format")
		return
	}

	combo, err := h.comboService.GetByID(c.Request.Context(), comboID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, combo)
}

// Update godoc
// @Summary      Update a combo
// @Tags         combos
// @Accept       json
// @Produce      json
// @Param        id path string true "Combo ID" format(uuid)
// @Param        request body catalogapp.UpdateComboRequest true "Combo update request"
// @Success      200 {object} dto.Response{data=catalogapp.ComboResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/combos/{id} [put]
func (h *ComboHandler) Update(c *gin.Context) {
	comboID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid combo ID format")
		return
	}

	var req catalogapp.UpdateComboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	combo, err := h.comboService.Update(c.Request.Context(), comboID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, combo)
}

// Delete godoc
// @Summary      Delete a combo
// @Description  Delete a combo and scrub it from every ordering and placement
// @Tags         combos
// @Param        id path string true "Combo ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/combos/{id} [delete]
func (h *ComboHandler) Delete(c *gin.Context) {
	comboID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid combo ID format")
		return
	}

	if err := h.comboService.Delete(c.Request.Context(), comboID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
