package upload

import (
	"errors"
	"net/http"

	"guesthouse/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	uploadGroup := protected.Group("/upload")
	{
		uploadGroup.POST("/images", h.UploadImages)
	}
}

// UploadImages handles POST /api/upload/images
func (h *Handler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_FORM", "Failed to parse form")
		return
	}

	files := form.File["images"]
	urls, err := h.service.SaveImages(files)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoFiles):
			response.Error(c, http.StatusBadRequest, "NO_FILES", "No files uploaded")
		case errors.Is(err, ErrTooManyFiles):
			response.Error(c, http.StatusBadRequest, "TOO_MANY_FILES", ErrTooManyFiles.Error())
		case errors.Is(err, ErrEmptyFile), errors.Is(err, ErrFileTooLarge), errors.Is(err, ErrInvalidMimeType):
			response.Error(c, http.StatusBadRequest, "INVALID_FILE", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "SAVE_FAILED", "Failed to save images")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"urls": urls,
	})
}
