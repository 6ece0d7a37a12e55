package contact

import (
	"errors"
	"net/http"

	"guesthouse/internal/middleware"
	"guesthouse/internal/pkg/mailer"
	"guesthouse/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	limiter *middleware.RateLimiter
}

func NewHandler(service *Service, limiter *middleware.RateLimiter) *Handler {
	return &Handler{
		service: service,
		limiter: limiter,
	}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	contactGroup := api.Group("/contact")
	contactGroup.Use(middleware.RateLimit(h.limiter))
	{
		contactGroup.POST("/email", h.SubmitEmail)
	}
}

// SubmitEmail handles POST /api/contact/email
func (h *Handler) SubmitEmail(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	err := h.service.Submit(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", vErr.Errors)
		case errors.Is(err, mailer.ErrAuth):
			response.Error(c, http.StatusInternalServerError, "MAIL_AUTH_FAILED", "Email authentication failed. Please contact support")
		case errors.Is(err, mailer.ErrConnection):
			response.Error(c, http.StatusInternalServerError, "MAIL_UNREACHABLE", "Unable to connect to email server. Please try again later")
		case errors.Is(err, mailer.ErrMessage):
			response.Error(c, http.StatusBadRequest, "MAIL_MALFORMED", "Invalid message format. Please check your input and try again")
		default:
			response.Error(c, http.StatusInternalServerError, "MAIL_FAILED", "An error occurred while sending your message. Please try again")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Thank you for your message! We'll get back to you soon.",
	})
}
