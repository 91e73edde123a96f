package kitchen

import (
	"io"
	"mime/multipart"
	"net/http"

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

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/kitchen", h.SaveDetails)
	rg.GET("/kitchen", h.GetDetails)
}

func (h *Handler) SaveDetails(c *gin.Context) {
	var req SaveDetailsRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid multipart form")
		return
	}

	images, err := readImages(form.File["images"])
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Failed to read uploaded images")
		return
	}

	k, err := h.service.SaveDetails(c.Request.Context(), middleware.UserID(c), req, images)
	if err != nil {
		switch err {
		case upload.ErrEmptyFile, upload.ErrInvalidMimeType:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case upload.ErrFileTooLarge:
			response.Error(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save kitchen details")
		}
		return
	}

	response.Success(c, http.StatusCreated, k)
}

func (h *Handler) GetDetails(c *gin.Context) {
	k, err := h.service.GetDetails(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Kitchen details not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to get kitchen details")
		}
		return
	}

	response.Success(c, http.StatusOK, k)
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
