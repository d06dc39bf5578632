package handlers

import (
	"net/http"

	"weddingplanner/models"
	"weddingplanner/services/catalog"
	"weddingplanner/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes the services-package and wedding-shop endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// CreatePackage handles POST /servicesPackage.
func (h *CatalogHandler) CreatePackage(c *gin.Context) {
	var pkg models.ServicePackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid package payload", err.Error())
		return
	}
	res, err := h.Service.CreatePackage(c.Request.Context(), pkg)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ListPackages handles GET /servicesPackage.
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	pkgs, err := h.Service.ListPackages(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if pkgs == nil {
		pkgs = []models.ServicePackage{}
	}
	c.JSON(http.StatusOK, pkgs)
}

// GetPackage handles GET /servicesPackage/:id.
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	pkg, err := h.Service.GetPackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// UpdatePackage handles PUT /servicesPackage/:id.
func (h *CatalogHandler) UpdatePackage(c *gin.Context) {
	var upd models.ServicePackageUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid package payload", err.Error())
		return
	}
	res, err := h.Service.UpdatePackage(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DecrementStock handles PATCH /servicesPackage/:id, the purchase-time stock
// decrement.
func (h *CatalogHandler) DecrementStock(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid quantity payload", err.Error())
		return
	}
	res, err := h.Service.DecrementStock(c.Request.Context(), c.Param("id"), req.Quantity)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeletePackage handles DELETE /servicesPackage/:id.
func (h *CatalogHandler) DeletePackage(c *gin.Context) {
	res, err := h.Service.DeletePackage(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreateShopItem handles POST /weddingShop.
func (h *CatalogHandler) CreateShopItem(c *gin.Context) {
	var item models.ShopItem
	if err := c.ShouldBindJSON(&item); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid shop item payload", err.Error())
		return
	}
	res, err := h.Service.CreateShopItem(c.Request.Context(), item)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ListShopItems handles GET /weddingShop.
func (h *CatalogHandler) ListShopItems(c *gin.Context) {
	items, err := h.Service.ListShopItems(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if items == nil {
		items = []models.ShopItem{}
	}
	c.JSON(http.StatusOK, items)
}

// GetShopItem handles GET /weddingShop/:id.
func (h *CatalogHandler) GetShopItem(c *gin.Context) {
	item, err := h.Service.GetShopItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateShopItem handles PUT /weddingShop/:id.
func (h *CatalogHandler) UpdateShopItem(c *gin.Context) {
	var upd models.ShopItemUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid shop item payload", err.Error())
		return
	}
	res, err := h.Service.UpdateShopItem(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteShopItem handles DELETE /weddingShop/:id.
func (h *CatalogHandler) DeleteShopItem(c *gin.Context) {
	res, err := h.Service.DeleteShopItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
