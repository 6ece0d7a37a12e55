package admin

import (
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
	adminGroup := protected.Group("/admin")
	{
		adminGroup.GET("/dashboard", h.Dashboard)
	}
}

// Dashboard handles GET /api/admin/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	metrics, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load dashboard metrics")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"metrics": metrics,
	})
}
