package contract

import (
	"net/http"
	"strconv"

	"kitchencare/internal/middleware"
	"kitchencare/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/contracts/generate", h.Generate)
	rg.GET("/contracts", h.ListContracts)
	rg.GET("/contracts/:id", h.GetContract)
	rg.GET("/contracts/:id/html", h.RenderContract)
	rg.POST("/contracts/:id/accept", h.Accept)
}

type generateRequest struct {
	PlanID int64 `json:"planId" binding:"required"`
}

func (h *Handler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	ct, err := h.service.Generate(c.Request.Context(), middleware.UserID(c), req.PlanID)
	if err != nil {
		switch err {
		case ErrPlanNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Warranty plan not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Plan belongs to another user")
		case ErrKitchenRequired:
			response.Error(c, http.StatusConflict, "KITCHEN_REQUIRED", "Kitchen details must be saved before generating a contract")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate contract")
		}
		return
	}

	response.Success(c, http.StatusCreated, ct)
}

func (h *Handler) ListContracts(c *gin.Context) {
	contracts, err := h.service.ListForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list contracts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"contracts": contracts})
}

func (h *Handler) GetContract(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid contract ID")
		return
	}

	ct, err := h.service.GetContract(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ct)
}

// RenderContract returns the agreement as an HTML document rather than the
// JSON envelope.
func (h *Handler) RenderContract(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid contract ID")
		return
	}

	html, err := h.service.Render(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *Handler) Accept(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid contract ID")
		return
	}

	ct, err := h.service.Accept(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		switch err {
		case ErrAlreadyAccepted:
			response.Error(c, http.StatusConflict, "ALREADY_ACCEPTED", "Contract has already been accepted")
		default:
			h.writeError(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, ct)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch err {
	case ErrContractNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Contract not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Contract belongs to another user")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process contract")
	}
}
