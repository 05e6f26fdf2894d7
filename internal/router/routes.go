package router

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	authpkg "github.com/tagadplatforms/contact-api/internal/auth"
	"github.com/tagadplatforms/contact-api/internal/config"
	"github.com/tagadplatforms/contact-api/internal/handler"
	middlewarepkg "github.com/tagadplatforms/contact-api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Health   *handler.HealthHandler
	Contacts *handler.ContactsHandler
	Chat     *handler.ChatHandler
}

var availableEndpoints = []string{
	"/",
	"/api",
	"/api/health",
	"/api/contact/submit",
	"/api/contact",
	"/api/chatbot/ask",
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, policy authpkg.Policy, handlers Handlers) {
	e.HTTPErrorHandler = errorHandler(cfg.IsDevelopment())

	e.GET("/", handlers.Health.Root)
	e.GET("/api", handlers.Health.Info)
	e.GET("/api/health", handlers.Health.Health)

	contact := e.Group("/api/contact")
	contact.POST("/submit", handlers.Contacts.Submit)
	contact.GET("", handlers.Contacts.List, middlewarepkg.RequireAuth(policy))

	if handlers.Chat != nil {
		e.POST("/api/chatbot/ask", handlers.Chat.Ask)
	}
}

// errorHandler shapes boundary failures: unknown paths get the endpoint
// index, everything else a generic message with detail only in development.
func errorHandler(devMode bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if httpErr.Code == http.StatusNotFound {
				_ = c.JSON(http.StatusNotFound, map[string]any{
					"message":            "API endpoint not found",
					"availableEndpoints": availableEndpoints,
				})
				return
			}
			if httpErr.Code != http.StatusInternalServerError {
				_ = c.JSON(httpErr.Code, map[string]any{"message": fmt.Sprintf("%v", httpErr.Message)})
				return
			}
		}

		log.Printf("request_id=%s unhandled error: %v", middlewarepkg.RequestIDFromContext(c), err)
		payload := map[string]any{"message": "Something went wrong!"}
		if devMode {
			payload["error"] = err.Error()
		}
		_ = c.JSON(http.StatusInternalServerError, payload)
	}
}
