package handler

import (
	"net/http"

	"github.com/amalfamous/QuickCRM/internal/dto"
	"github.com/amalfamous/QuickCRM/internal/middleware"
	"github.com/amalfamous/QuickCRM/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct{ svc service.ProductService }

func NewProductHandler(svc service.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Create godoc
// @Summary      Créer un produit
// @Tags         produits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateProductRequest true "Produit"
// @Success      201  {object} dto.ProductResponse
// @Router       /v1/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
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
// @Summary      Lister les produits
// @Tags         produits
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.ProductResponse
// @Router       /v1/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Détail d'un produit
// @Tags         produits
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID produit"
// @Success      200  {object} dto.ProductResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
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
// @Summary      Modifier un produit
// @Tags         produits
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int true "ID produit"
// @Param        body body dto.UpdateProductRequest true "Champs à modifier"
// @Success      200  {object} dto.ProductResponse
// @Router       /v1/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
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
// @Summary      Supprimer un produit
// @Description  Refusé (409) si le produit est encore référencé par un devis.
// @Tags         produits
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID produit"
// @Success      204
// @Failure      409  {object} apierror.APIError
// @Router       /v1/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
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
