package handler

import (
	"net/http"

	"github.com/amalfamous/QuickCRM/internal/dto"
	"github.com/amalfamous/QuickCRM/internal/middleware"
	"github.com/amalfamous/QuickCRM/internal/service"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct{ svc service.OrderService }

func NewInvoiceHandler(svc service.OrderService) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

// Create godoc
// @Summary      Émettre une facture
// @Description  Le devis doit être confirmé et son bon de commande reçu. Une seule facture par devis.
// @Tags         factures
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateInvoiceRequest true "Facture"
// @Success      201  {object} dto.InvoiceResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/invoices [post]
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateInvoice(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      Lister les factures
// @Description  Un compte client ne voit que les siennes.
// @Tags         factures
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.InvoiceResponse
// @Router       /v1/invoices [get]
func (h *InvoiceHandler) List(c *gin.Context) {
	resp, err := h.svc.ListInvoices(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Pay godoc
// @Summary      Enregistrer le paiement d'une facture
// @Description  Passe la facture à payée et planifie la livraison dans la même transaction.
// @Tags         factures
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID facture"
// @Success      200  {object} dto.InvoiceResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/invoices/{id}/pay [post]
func (h *InvoiceHandler) Pay(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.PayInvoice(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Refuse godoc
// @Summary      Refuser une facture en attente de paiement
// @Tags         factures
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID facture"
// @Success      200  {object} dto.InvoiceResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/invoices/{id}/refuse [post]
func (h *InvoiceHandler) Refuse(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.RefuseInvoice(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EligibleForDelivery godoc
// @Summary      Factures payées dont la livraison n'est pas encore effectuée
// @Tags         factures
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.InvoiceResponse
// @Router       /v1/invoices/eligible-for-delivery [get]
func (h *InvoiceHandler) EligibleForDelivery(c *gin.Context) {
	resp, err := h.svc.InvoicesEligibleForDelivery(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
