package servicerequest

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"kitchencare/internal/middleware"
	"kitchencare/internal/pkg/response"
	"kitchencare/internal/upload"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/service-requests/taxonomy", h.GetTaxonomy)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/service-requests", h.CreateRequest)
	rg.GET("/service-requests", h.ListRequests)
	rg.GET("/service-requests/:id", h.GetRequest)
	rg.POST("/service-requests/:id/cancel", h.CancelRequest)
}

// RegisterInternalRoutes exposes the operator-side transitions behind the
// internal token.
func (h *Handler) RegisterInternalRoutes(rg *gin.RouterGroup) {
	rg.PUT("/service-requests/:id/status", h.UpdateStatus)
	rg.PUT("/service-requests/:id/technician", h.AssignTechnician)
	rg.GET("/technicians", h.ListTechnicians)
}

func (h *Handler) GetTaxonomy(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Taxonomy())
}

func (h *Handler) CreateRequest(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	var images []ImageUpload
	if form, err := c.MultipartForm(); err == nil {
		images, err = readImages(form.File["images"])
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Failed to read uploaded images")
			return
		}
	}

	sr, err := h.service.CreateRequest(c.Request.Context(), middleware.UserID(c), req, images)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown time slot")
		case ErrPlanNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Warranty plan not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Plan belongs to another user")
		case ErrPlanNotActive:
			response.Error(c, http.StatusConflict, "NOT_ACTIVE", "Warranty plan is not active")
		case ErrNoVisitsLeft:
			response.Error(c, http.StatusConflict, "NO_VISITS_LEFT", "No service visits remaining")
		case upload.ErrEmptyFile, upload.ErrInvalidMimeType:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case upload.ErrFileTooLarge:
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create service request")
		}
		return
	}

	response.Success(c, http.StatusCreated, sr)
}

func (h *Handler) ListRequests(c *gin.Context) {
	requests, err := h.service.ListForUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list service requests")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"requests": requests})
}

func (h *Handler) GetRequest(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request ID")
		return
	}

	sr, err := h.service.GetRequest(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		switch err {
		case ErrRequestNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service request not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Request belongs to another user")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get service request")
		}
		return
	}

	response.Success(c, http.StatusOK, sr)
}

func (h *Handler) CancelRequest(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request ID")
		return
	}

	if err := h.service.CancelRequest(c.Request.Context(), middleware.UserID(c), id); err != nil {
		switch err {
		case ErrRequestNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service request not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Request belongs to another user")
		case ErrInvalidTransition:
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Request cannot be cancelled")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to cancel service request")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cancelled": true})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		switch err {
		case ErrRequestNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service request not found")
		case ErrInvalidTransition:
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Status transition not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": req.Status})
}

func (h *Handler) AssignTechnician(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request ID")
		return
	}

	var req AssignTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.service.AssignTechnician(c.Request.Context(), id, req.TechnicianID); err != nil {
		switch err {
		case ErrRequestNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service request not found")
		case ErrTechnicianNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Technician not found")
		case ErrInvalidTransition:
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Request is not pending")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to assign technician")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"assigned": true})
}

func (h *Handler) ListTechnicians(c *gin.Context) {
	technicians, err := h.service.ListAvailableTechnicians(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list technicians")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"technicians": technicians})
}

func readImages(headers []*multipart.FileHeader) ([]ImageUpload, error) {
	images := make([]ImageUpload, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		images = append(images, ImageUpload{
			Name:     fh.Filename,
			Content:  content,
			MimeType: fh.Header.Get("Content-Type"),
		})
	}
	return images, nil
}
