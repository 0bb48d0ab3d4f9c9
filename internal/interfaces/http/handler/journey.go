package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/spacatalog/backend/internal/application/catalog"
)

// JourneyHandler handles multi-treatment journey endpoints
type JourneyHandler struct {
	BaseHandler
	journeyService *catalogapp.JourneyService
}

// NewJourneyHandler creates a new JourneyHandler
func NewJourneyHandler(journeyService *catalogapp.JourneyService) *JourneyHandler {
	return &JourneyHandler{
		journeyService: journeyService,
	}
}

// Create godoc
// @Summary      Create a new journey
// @Tags         journeys
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateJourneyRequest true "Journey creation request"
// @Success      201 {object} dto.Response{data=catalogapp.JourneyResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/journeys [post]
func (h *JourneyHandler) Create(c *gin.Context) {
	var req catalogapp.CreateJourneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	journey, err := h.journeyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, journey)
}

// GetByID godoc
// @Summary      Get journey by ID
// @Description  Retrieve a journey with its derived effective price
// @Tags         journeys
// @Produce      json
// @Param        id path string true "Journey ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.JourneyResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/journeys/{id} [get]
func (h *JourneyHandler) GetByID(c *gin.Context) {
	journeyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid journey ID format")
		return
	}

	journey, err := h.journeyService.GetByID(c.Request.Context(), journeyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, journey)
}

// Update godoc
// @Summary      Update a journey
// @Tags         journeys
// @Accept       json
// @Produce      json
// @Param        id path string true "Journey ID" format(uuid)
// @Param        request body catalogapp.UpdateJourneyRequest true "Journey update request"
// @Success      200 {object} dto.Response{data=catalogapp.JourneyResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/journeys/{id} [put]
func (h *JourneyHandler) Update(c *gin.Context) {
	journeyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid journey ID format")
		return
	}

	var req catalogapp.UpdateJourneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	journey, err := h.journeyService.Update(c.Request.Context(), journeyID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, journey)
}

// Delete godoc
// @Summary      Delete a journey
// @Description  Delete a journey, detach its members and drop its ordering context
// @Tags         journeys
// @Param        id path string true "Journey ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/journeys/{id} [delete]
func (h *JourneyHandler) Delete(c *gin.Context) {
	journeyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid journey ID format")
		return
	}

	if err := h.journeyService.Delete(c.Request.Context(), journeyID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
