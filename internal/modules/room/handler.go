package room

import (
	"errors"
	"net/http"
	"strconv"

	"guesthouse/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	roomGroup := api.Group("/room")
	{
		roomGroup.GET("/get/:id", h.Get)
		roomGroup.GET("/get-all-rooms", h.GetAll)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	roomGroup := protected.Group("/room")
	{
		roomGroup.POST("/create", h.Create)
		roomGroup.POST("/update/:id", h.Update)
		roomGroup.DELETE("/delete/:id", h.Delete)
	}
}

// Create handles POST /api/room/create
func (h *Handler) Create(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	listing, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", vErr.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create room")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"listing": listing,
	})
}

// Get handles GET /api/room/get/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	room, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get room")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"room": room,
	})
}

// GetAll handles GET /api/room/get-all-rooms
func (h *Handler) GetAll(c *gin.Context) {
	rooms, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get rooms")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"rooms": rooms,
	})
}

// Update handles POST /api/room/update/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	listing, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		case errors.As(err, &vErr):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", vErr.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update room")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Listing updated successfully",
		"listing": listing,
	})
}

// Delete handles DELETE /api/room/delete/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Listing not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete room")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Room deleted successfully",
	})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return 0, false
	}
	return id, true
}
