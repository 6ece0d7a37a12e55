package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guesthouse/internal/database"
	"guesthouse/internal/middleware"
	"guesthouse/internal/pkg/jwt"
	"guesthouse/internal/repository"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	jwtService := jwt.New("test-secret-123", 1*time.Hour)
	handler := NewHandler(
		NewService(repository.NewUserRepository(db), jwtService),
		CookieSettings{},
	)

	router := gin.New()
	api := router.Group("/api")
	handler.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtService))
	handler.RegisterProtectedRoutes(protected)

	return router
}

func postJSON(router *gin.Engine, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func signupBody() map[string]string {
	return map[string]string{
		"username": "admin",
		"email":    "admin@example.com",
		"password": "secret123",
	}
}

func TestSignupEndpoint(t *testing.T) {
	router := setupAuthRouter(t)

	w := postJSON(router, "/api/auth/signup", signupBody())
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "user created successfully")

	// Same email again.
	body := signupBody()
	body["username"] = "other"
	w = postJSON(router, "/api/auth/signup", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "EMAIL_EXISTS")

	// Same username, different email.
	body = signupBody()
	body["email"] = "other@example.com"
	w = postJSON(router, "/api/auth/signup", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "USERNAME_EXISTS")

	// Short password fails binding.
	body = signupBody()
	body["email"] = "third@example.com"
	body["username"] = "third"
	body["password"] = "short"
	w = postJSON(router, "/api/auth/signup", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSigninEndpoint(t *testing.T) {
	router := setupAuthRouter(t)
	require.Equal(t, http.StatusCreated, postJSON(router, "/api/auth/signup", signupBody()).Code)

	w := postJSON(router, "/api/auth/signin", map[string]string{
		"email":    "admin@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "passwordHash")

	var sessionCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AccessTokenCookie {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie, "signin must set the session cookie")
	assert.True(t, sessionCookie.HttpOnly)
	assert.NotEmpty(t, sessionCookie.Value)

	// The cookie opens the protected verify endpoint.
	w = postJSON(router, "/api/auth/verify", nil, sessionCookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/api/auth/verify", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSigninEndpoint_Failures(t *testing.T) {
	router := setupAuthRouter(t)
	require.Equal(t, http.StatusCreated, postJSON(router, "/api/auth/signup", signupBody()).Code)

	w := postJSON(router, "/api/auth/signin", map[string]string{
		"email":    "ghost@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")

	w = postJSON(router, "/api/auth/signin", map[string]string{
		"email":    "admin@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestSignoutEndpoint(t *testing.T) {
	router := setupAuthRouter(t)

	req := httptest.NewRequest("GET", "/api/auth/signout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User logged out successfully")

	var cleared *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.AccessTokenCookie {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}
