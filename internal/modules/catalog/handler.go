package catalog

import (
	"net/http"
	"strconv"

	"kitchencare/internal/domain"
	"kitchencare/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.ListProducts)
	rg.GET("/products/:id", h.GetProduct)
}

// ListProducts supports optional ?category= and ?q= filters combined with AND.
func (h *Handler) ListProducts(c *gin.Context) {
	category := domain.ProductCategory(c.Query("category"))
	query := c.Query("q")

	var (
		products []domain.Product
		err      error
	)
	if category == "" && query == "" {
		products, err = h.service.ListProducts(c.Request.Context())
	} else {
		products, err = h.service.Search(c.Request.Context(), category, query)
	}
	if err != nil {
		switch err {
		case ErrInvalidCategory:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown product category")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list products")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"products": products})
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid product ID")
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrProductNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load product")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"product": p})
}
