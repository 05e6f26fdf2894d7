package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tagadplatforms/contact-api/internal/dto"
	middlewarepkg "github.com/tagadplatforms/contact-api/internal/middleware"
)

// ChatHandler forwards visitor questions to the assistant API.
type ChatHandler struct {
	assistant ChatCompleter
}

// NewChatHandler constructs a chat handler backed by the given completer.
func NewChatHandler(assistant ChatCompleter) *ChatHandler {
	return &ChatHandler{assistant: assistant}
}

// Ask handles POST /api/chatbot/ask requests.
func (h *ChatHandler) Ask(c echo.Context) error {
	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
	}

	reply, err := h.assistant.Complete(c.Request().Context(), req.Message)
	if err != nil {
		log.Printf("request_id=%s assistant call failed: %v", middlewarepkg.RequestIDFromContext(c), err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to get AI response."})
	}

	return c.JSON(http.StatusOK, dto.ChatReply{Reply: reply})
}
