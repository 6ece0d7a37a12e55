package auth

import (
	"errors"
	"net/http"
	"strings"

	"guesthouse/internal/pkg/response"
	"guesthouse/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// CookieSettings controls the attributes of the session cookie.
type CookieSettings struct {
	Secure   bool
	SameSite string
	Path     string
}

// Handler manages all HTTP interactions for authentication.
type Handler struct {
	service *Service
	cookies CookieSettings
}

func NewHandler(service *Service, cookies CookieSettings) *Handler {
	if cookies.Path == "" {
		cookies.Path = "/"
	}
	return &Handler{
		service: service,
		cookies: cookies,
	}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/signin", h.Signin)
		authGroup.GET("/signout", h.Signout)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	authGroup := protected.Group("/auth")
	{
		authGroup.POST("/verify", h.Verify)
	}
}

// Signup handles POST /api/auth/signup
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", errs)
		return
	}

	if _, err := h.service.Signup(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
		case errors.Is(err, ErrUsernameAlreadyExists):
			response.Error(c, http.StatusConflict, "USERNAME_EXISTS", "This username is already taken")
		default:
			response.Error(c, http.StatusInternalServerError, "SIGNUP_FAILED", "Failed to create user")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "user created successfully",
	})
}

// Signin handles POST /api/auth/signin. On success the session token is
// set as an httpOnly cookie and the body carries the user without its
// password hash.
func (h *Handler) Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", errs)
		return
	}

	user, token, err := h.service.Signin(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
		default:
			response.Error(c, http.StatusInternalServerError, "SIGNIN_FAILED", "Failed to sign in")
		}
		return
	}

	h.setSessionCookie(c, token)

	response.Success(c, http.StatusOK, gin.H{
		"user": user,
	})
}

// Signout handles GET /api/auth/signout. The token stays cryptographically
// valid until the client discards it; only the cookie is cleared.
func (h *Handler) Signout(c *gin.Context) {
	c.SetSameSite(h.sameSite())
	c.SetCookie("access_token", "", -1, h.cookies.Path, "", h.cookies.Secure, true)

	response.Success(c, http.StatusOK, gin.H{
		"message":    "User logged out successfully",
		"redirectTo": "/sign-in",
	})
}

// Verify handles POST /api/auth/verify behind the JWT guard.
func (h *Handler) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(h.sameSite())
	c.SetCookie("access_token", token, 0, h.cookies.Path, "", h.cookies.Secure, true)
}

func (h *Handler) sameSite() http.SameSite {
	switch strings.ToLower(h.cookies.SameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
