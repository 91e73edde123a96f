package cart

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
	rg.GET("/cart", h.GetCart)
	rg.POST("/cart", h.AddToCart)
	rg.PUT("/cart/:id", h.SetQuantity)
	rg.DELETE("/cart/:id", h.RemoveLine)
	rg.POST("/orders", h.Checkout)
	rg.GET("/orders", h.ListOrders)
	rg.GET("/orders/:id", h.GetOrder)
}

// RegisterInternalRoutes exposes operator-side fulfilment updates.
func (h *Handler) RegisterInternalRoutes(rg *gin.RouterGroup) {
	rg.PUT("/orders/:id/status", h.UpdateOrderStatus)
	rg.PUT("/orders/:id/payment-status", h.UpdatePaymentStatus)
}

func (h *Handler) GetCart(c *gin.Context) {
	view, err := h.service.GetCart(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load cart")
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	line, err := h.service.AddToCart(c.Request.Context(), middleware.UserID(c), req.ProductID, req.Quantity)
	if err != nil {
		switch err {
		case ErrProductNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Product not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to add to cart")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"item": line})
}

func (h *Handler) SetQuantity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid cart line ID")
		return
	}

	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.SetQuantity(c.Request.Context(), middleware.UserID(c), id, req.Quantity); err != nil {
		switch err {
		case ErrInvalidQuantity:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Quantity must be at least 1")
		case ErrLineNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Cart line not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Cart line belongs to another user")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update quantity")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) RemoveLine(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid cart line ID")
		return
	}

	if err := h.service.RemoveLine(c.Request.Context(), middleware.UserID(c), id); err != nil {
		switch err {
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Cart line belongs to another user")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove cart line")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	order, err := h.service.Checkout(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		switch err {
		case ErrEmptyCart:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cart is empty")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to place order")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"order": order})
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.service.ListOrders(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list orders")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid order ID")
		return
	}

	order, err := h.service.GetOrder(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		switch err {
		case ErrOrderNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Order belongs to another user")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load order")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"order": order})
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid order ID")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.UpdateOrderStatus(c.Request.Context(), id, req.Status); err != nil {
		switch err {
		case ErrOrderNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case ErrInvalidTransition:
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Order status transition not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update order status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) UpdatePaymentStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid order ID")
		return
	}

	var req UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.UpdatePaymentStatus(c.Request.Context(), id, req.PaymentStatus); err != nil {
		switch err {
		case ErrOrderNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case ErrInvalidTransition:
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Payment status transition not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update payment status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true})
}
