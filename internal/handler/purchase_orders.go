package handler

import (
	"net/http"

	"github.com/amalfamous/QuickCRM/internal/dto"
	"github.com/amalfamous/QuickCRM/internal/middleware"
	"github.com/amalfamous/QuickCRM/internal/service"

	"github.com/gin-gonic/gin"
)

type PurchaseOrderHandler struct{ svc service.OrderService }

func NewPurchaseOrderHandler(svc service.OrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{svc: svc}
}

// Create godoc
// @Summary      Émettre un bon de commande (client)
// @Description  Le devis doit être confirmé et appartenir au client. Un seul bon de commande par devis.
// @Tags         commandes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreatePurchaseOrderRequest true "Bon de commande"
// @Success      201  {object} dto.PurchaseOrderResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req dto.CreatePurchaseOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreatePurchaseOrder(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      Lister les bons de commande
// @Description  Un compte client ne voit que les siens.
// @Tags         commandes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.PurchaseOrderResponse
// @Router       /v1/purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	resp, err := h.svc.ListPurchaseOrders(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Receive godoc
// @Summary      Marquer un bon de commande comme reçu
// @Tags         commandes
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID bon de commande"
// @Success      200  {object} dto.PurchaseOrderResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/purchase-orders/{id}/receive [post]
func (h *PurchaseOrderHandler) Receive(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ReceivePurchaseOrder(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
