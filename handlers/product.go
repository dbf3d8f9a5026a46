package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rightguydaniel/deluxconex-BE/models"
	"github.com/rightguydaniel/deluxconex-BE/services/catalog"
	"github.com/rightguydaniel/deluxconex-BE/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProductHandler exposes the catalog endpoints. Reads are public, writes
// admin only.
type ProductHandler struct {
	Service catalog.CatalogService
}

func NewProductHandler(svc catalog.CatalogService) *ProductHandler {
	return &ProductHandler{Service: svc}
}

// CreateProduct handles POST /admin/products. Multipart form with a
// "product" JSON field and optional "images" files.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := json.Unmarshal([]byte(c.PostForm("product")), &product); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid product payload", nil, err.Error())
		return
	}

	var imagePaths []string
	defer func() {
		for _, p := range imagePaths {
			os.Remove(p)
		}
	}()

	form, err := c.MultipartForm()
	if err == nil && form != nil {
		for _, file := range form.File["images"] {
			path := filepath.Join(os.TempDir(), utils.RandomString(8)+filepath.Ext(file.Filename))
			if err := c.SaveUploadedFile(file, path); err != nil {
				utils.Respond(c, http.StatusInternalServerError, "Failed to read product image", nil, err.Error())
				return
			}
			imagePaths = append(imagePaths, path)
		}
	}

	created, err := h.Service.CreateProduct(c.Request.Context(), &product, imagePaths)
	if err != nil {
		utils.GetLogger().Error("CreateProduct failed", zap.Error(err))
		utils.Respond(c, http.StatusBadRequest, err.Error(), nil, "")
		return
	}
	utils.Respond(c, http.StatusCreated, "Product created", created, "")
}

// UpdateProduct handles PUT /admin/products/:id.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.Respond(c, http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	product.ID = c.Param("id")

	updated, err := h.Service.UpdateProduct(&product)
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to update product", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Product updated", updated, "")
}

// DeleteProduct handles DELETE /admin/products/:id.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.Service.DeleteProduct(c.Param("id")); err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to delete product", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Product deleted", nil, "")
}

// GetProduct handles GET /products/:id.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.Service.GetProduct(c.Param("id"))
	if err != nil {
		utils.Respond(c, http.StatusNotFound, "Product not found", nil, "")
		return
	}
	utils.Respond(c, http.StatusOK, "Product fetched", product, "")
}

// ListProducts handles GET /products?category=...
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.Service.ListProducts(c.Query("category"))
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to fetch products", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Products fetched", products, "")
}

// SearchProducts handles GET /products/search?q=...
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	products, err := h.Service.SearchProducts(c.Query("q"))
	if err != nil {
		utils.Respond(c, http.StatusInternalServerError, "Failed to search products", nil, err.Error())
		return
	}
	utils.Respond(c, http.StatusOK, "Products fetched", products, "")
}
