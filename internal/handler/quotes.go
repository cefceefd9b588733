package handler

import (
	"net/http"

	"github.com/amalfamous/QuickCRM/internal/dto"
	"github.com/amalfamous/QuickCRM/internal/middleware"
	"github.com/amalfamous/QuickCRM/internal/service"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct{ svc service.OrderService }

func NewQuoteHandler(svc service.OrderService) *QuoteHandler { return &QuoteHandler{svc: svc} }

// Create godoc
// @Summary      Créer un devis
// @Tags         devis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateQuoteRequest true "Devis"
// @Success      201  {object} dto.QuoteResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var req dto.CreateQuoteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateQuote(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      Lister les devis
// @Description  Un compte client ne voit que ses propres devis.
// @Tags         devis
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.QuoteResponse
// @Router       /v1/quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	resp, err := h.svc.ListQuotes(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Détail d'un devis
// @Tags         devis
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID devis"
// @Success      200  {object} dto.QuoteResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetQuote(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Modifier un devis en attente
// @Tags         devis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID devis"
// @Param        body body dto.UpdateQuoteRequest true "Champs à modifier"
// @Success      200  {object} dto.QuoteResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/quotes/{id} [put]
func (h *QuoteHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateQuoteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateQuote(c.Request.Context(), middleware.ActorFrom(c), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary      Supprimer un devis
// @Description  Refusé (409) si un bon de commande référence déjà le devis.
// @Tags         devis
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID devis"
// @Success      204
// @Failure      409  {object} apierror.APIError
// @Router       /v1/quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteQuote(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Confirm godoc
// @Summary      Confirmer un devis (client)
// @Description  Seul un devis en attente peut être confirmé, et seulement par son client.
// @Tags         devis
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID devis"
// @Success      200  {object} dto.QuoteResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/quotes/{id}/confirm [post]
func (h *QuoteHandler) Confirm(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ConfirmQuote(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cancel godoc
// @Summary      Annuler un devis en attente
// @Tags         devis
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID devis"
// @Success      200  {object} dto.QuoteResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/quotes/{id}/cancel [post]
func (h *QuoteHandler) Cancel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.CancelQuote(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EligibleForOrder godoc
// @Summary      Devis confirmés sans bon de commande
// @Tags         devis
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.QuoteResponse
// @Router       /v1/quotes/eligible-for-order [get]
func (h *QuoteHandler) EligibleForOrder(c *gin.Context) {
	resp, err := h.svc.QuotesEligibleForOrder(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EligibleForInvoice godoc
// @Summary      Devis confirmés, commande reçue, pas encore facturés
// @Tags         devis
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.QuoteResponse
// @Router       /v1/quotes/eligible-for-invoice [get]
func (h *QuoteHandler) EligibleForInvoice(c *gin.Context) {
	resp, err := h.svc.QuotesEligibleForInvoice(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
