package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/spacatalog/backend/internal/application/catalog"
)

// TreatmentHandler handles treatment and zone configuration endpoints
type TreatmentHandler struct {
	BaseHandler
	treatmentService *catalogapp.TreatmentService
}

// NewTreatmentHandler creates a new TreatmentHandler
func NewTreatmentHandler(treatmentService *catalogapp.TreatmentService) *TreatmentHandler {
	return &TreatmentHandler{
		treatmentService: treatmentService,
	}
}

// Create godoc
// @Summary      Create a new treatment
// @Tags         treatments
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateTreatmentRequest true "Treatment creation request"
// @Success      201 {object} dto.Response{data=catalogapp.TreatmentResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/treatments [post]
func (h *TreatmentHandler) Create(c *gin.Context) {
	var req catalogapp.CreateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	treatment, err := h.treatmentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, treatment)
}

// GetByID godoc
// @Summary      Get treatment by ID
// @Description  Retrieve a treatment with its zone configurations and effective price
// @Tags         treatments
// @Produce      json
// @Param        id path string true "Treatment ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.TreatmentResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/treatments/{id} [get]
func (h *TreatmentHandler) GetByID(c *gin.Context) {
	treatmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid treatment ID format")
		return
	}

	treatment, err := h.treatmentService.GetByID(c.Request.Context(), treatmentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, treatment)
}

// Update godoc
// @Summary      Update a treatment
// @Tags         treatments
// @Accept       json
// @Produce      json
// @Param        id path string true "Treatment ID" format(uuid)
// @Param        request body catalogapp.UpdateTreatmentRequest true "Treatment update request"
// @Success      200 {object} dto.Response{data=catalogapp.TreatmentResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/treatments/{id} [put]
func (h *TreatmentHandler) Update(c *gin.Context) {
	treatmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid treatment ID format")
		return
	}

	var req catalogapp.UpdateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	treatment, err := h.treatmentService.Update(c.Request.Context(), treatmentID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, treatment)
}

// Delete godoc
// @Summary      Delete a treatment
// @Description  Delete a treatment, its zone configurations, incompatibility edges and order entries
// @Tags         treatments
// @Param        id path string true "Treatment ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/treatments/{id} [delete]
func (h *TreatmentHandler) Delete(c *gin.Context) {
	treatmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid treatment ID format")
		return
	}

	if err := h.treatmentService.Delete(c.Request.Context(), treatmentID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// AddZoneConfig godoc
// @Summary      Add a zone configuration
// @Description  Configure a treatment for one body zone with duration, price and body position
// @Tags         treatments
// @Accept       json
// @Produce      json
// @Param        id path string true "Treatment ID" format(uuid)
// @Param        request body catalogapp.CreateZoneConfigRequest true "Zone configuration request"
// @Success      201 {object} dto.Response{data=catalogapp.ZoneConfigResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/treatments/{id}/zone-configs [post]
func (h *TreatmentHandler) AddZoneConfig(c *gin.Context) {
	treatmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid treatment ID format")
		return
	}

	var req catalogapp.CreateZoneConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	config, err := h.treatmentService.AddZoneConfig(c.Request.Context(), treatmentID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, config)
}

// UpdateZoneConfig godoc
// @Summary      Update a zone configuration
// @Description  Update a configuration; incompatibility edges invalidated by the change are pruned
// @Tags         treatments
// @Accept       json
// @Produce      json
// @Param        id path string true "Zone configuration ID" format(uuid)
// @Param        request body catalogapp.UpdateZoneConfigRequest true "Zone configuration update request"
// @Success      200 {object} dto.Response{data=catalogapp.ZoneConfigResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/zone-configs/{id} [put]
func (h *TreatmentHandler) UpdateZoneConfig(c *gin.Context) {
	configID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid zone configuration ID format")
		return
	}

	var req catalogapp.UpdateZoneConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	config, err := h.treatmentService.UpdateZoneConfig(c.Request.Context(), configID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, config)
}

// DeleteZoneConfig godoc
// @Summary      Delete a zone configuration
// @Description  Delete a configuration along with every incompatibility edge touching it
// @Tags         treatments
// @Param        id path string true "Zone configuration ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/zone-configs/{id} [delete]
func (h *TreatmentHandler) DeleteZoneConfig(c *gin.Context) {
	configID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid zone configuration ID format")
		return
	}

	if err := h.treatmentService.DeleteZoneConfig(c.Request.Context(), configID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
