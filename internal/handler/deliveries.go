package handler

import (
	"net/http"

	"github.com/amalfamous/QuickCRM/internal/middleware"
	"github.com/amalfamous/QuickCRM/internal/service"

	"github.com/gin-gonic/gin"
)

type DeliveryHandler struct{ svc service.OrderService }

func NewDeliveryHandler(svc service.OrderService) *DeliveryHandler {
	return &DeliveryHandler{svc: svc}
}

// List godoc
// @Summary      Lister les livraisons
// @Tags         livraisons
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.DeliveryResponse
// @Router       /v1/deliveries [get]
func (h *DeliveryHandler) List(c *gin.Context) {
	resp, err := h.svc.ListDeliveries(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Confirm godoc
// @Summary      Confirmer une livraison (livreur)
// @Tags         livraisons
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID livraison"
// @Success      200  {object} dto.DeliveryResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/deliveries/{id}/confirm [post]
func (h *DeliveryHandler) Confirm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ConfirmDelivery(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
