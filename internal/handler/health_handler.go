package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Pinger reports store connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and info endpoints.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates the handler; db may be nil when no store is wired.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Root handles GET / requests.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message":   "Tagad Platforms Backend API is running!",
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Info handles GET /api requests.
func (h *HealthHandler) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message":   "Tagad Platforms API v1.0",
		"endpoints": []string{"/api/contact/submit", "/api/contact", "/api/chatbot/ask"},
		"status":    "operational",
	})
}

// Health handles GET /api/health requests with a best-effort store ping.
func (h *HealthHandler) Health(c echo.Context) error {
	database := "not configured"
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			database = "unreachable"
		} else {
			database = "connected"
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":    "healthy",
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
