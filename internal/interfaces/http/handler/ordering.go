package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/spacatalog/backend/internal/application/catalog"
)

// OrderingHandler handles manual ordering reconciliation endpoints
type OrderingHandler struct {
	BaseHandler
	orderingService *catalogapp.OrderingService
}

// NewOrderingHandler creates a new OrderingHandler
func NewOrderingHandler(orderingService *catalogapp.OrderingService) *OrderingHandler {
	return &OrderingHandler{
		orderingService: orderingService,
	}
}

// GetContextOrder godoc
// @Summary      Get a context's manual order
// @Description  Return the persisted manual ordering of a category or journey context
// @Tags         ordering
// @Produce      json
// @Param        kind path string true "Context kind" Enums(category, journey)
// @Param        id path string true "Context ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]catalogapp.ReconcileEntry}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/ordering/{kind}/{id} [get]
func (h *OrderingHandler) GetContextOrder(c *gin.Context) {
	kind, err := parseContextKind(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	contextID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid context ID format")
		return
	}

	entries, err := h.orderingService.GetContextOrder(c.Request.Context(), kind, contextID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, entries)
}

// ReconcileContext godoc
// @Summary      Replace a context's manual order
// @Description  Diff the submitted target order against stored entries and apply minimal writes
// @Tags         ordering
// @Accept       json
// @Produce      json
// @Param        kind path string true "Context kind" Enums(category, journey)
// @Param        id path string true "Context ID" format(uuid)
// @Param        request body catalogapp.ReorderRequest true "Target order"
// @Success      200 {object} dto.Response{data=catalogapp.ReconcileResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/ordering/{kind}/{id} [put]
func (h *OrderingHandler) ReconcileContext(c *gin.Context) {
	kind, err := parseContextKind(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	contextID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid context ID format")
		return
	}

	var req catalogapp.ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.orderingService.ReconcileContext(c.Request.Context(), kind, contextID, catalogapp.ToItemRefs(req.Items))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, result)
}
