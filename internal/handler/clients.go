package handler

import (
	"net/http"

	"github.com/amalfamous/QuickCRM/internal/dto"
	"github.com/amalfamous/QuickCRM/internal/middleware"
	"github.com/amalfamous/QuickCRM/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct{ svc service.ClientService }

func NewClientHandler(svc service.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

// Create godoc
// @Summary      Créer une fiche client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateClientRequest true "Client"
// @Success      201  {object} dto.ClientResponse
// @Router       /v1/clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), middleware.ActorFrom(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary      Lister les clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.ClientResponse
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Détail d'un client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID client"
// @Success      200  {object} dto.ClientResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Modifier un client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID client"
// @Param        body body dto.UpdateClientRequest true "Champs à modifier"
// @Success      200  {object} dto.ClientResponse
// @Router       /v1/clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateClientRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), middleware.ActorFrom(c), id, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary      Supprimer un client
// @Description  Refusé (409) si le client est encore référencé par un devis.
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID client"
// @Success      204
// @Failure      409  {object} apierror.APIError
// @Router       /v1/clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), middleware.ActorFrom(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
