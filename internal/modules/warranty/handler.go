package warranty

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/warranty/tiers", h.ListTiers)
	rg.GET("/warranty/plans", h.ListPlans)
	rg.GET("/warranty/plans/:id", h.GetPlan)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/warranty/purchase", h.PurchasePlan)
	rg.GET("/warranty/my-plans", h.ListMyPlans)
	rg.POST("/warranty/my-plans/:id/cancel", h.CancelPlan)
}

func (h *Handler) ListTiers(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"tiers": h.service.ListTiers()})
}

func (h *Handler) ListPlans(c *gin.Context) {
	plans, err := h.service.ListPlans(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list warranty plans")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"plans": plans})
}

func (h *Handler) GetPlan(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid plan ID")
		return
	}

	p, err := h.service.GetPlan(c.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrPlanNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Warranty plan not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get warranty plan")
		}
		return
	}

	response.Success(c, http.StatusOK, p)
}

func (h *Handler) PurchasePlan(c *gin.Context) {
	var req PurchasePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	up, err := h.service.PurchasePlan(c.Request.Context(), middleware.UserID(c), req.PlanID)
	if err != nil {
		switch err {
		case ErrPlanNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Warranty plan not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to purchase plan")
		}
		return
	}

	response.Success(c, http.StatusCreated, up)
}

func (h *Handler) ListMyPlans(c *gin.Context) {
	plans, err := h.service.ListActivePlans(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list plans")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"plans": plans})
}

func (h *Handler) CancelPlan(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid plan ID")
		return
	}

	if err := h.service.CancelPlan(c.Request.Context(), middleware.UserID(c), id); err != nil {
		switch err {
		case ErrPlanNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Plan not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Plan belongs to another user")
		case ErrNotActive:
			response.Error(c, http.StatusConflict, "NOT_ACTIVE", "Plan is not active")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel plan")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cancelled": true})
}
