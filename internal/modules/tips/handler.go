package tips

import (
	"net/http"

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
	rg.GET("/maintenance-tips", h.List)
}

func (h *Handler) List(c *gin.Context) {
	tips, err := h.service.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list maintenance tips")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tips": tips})
}
