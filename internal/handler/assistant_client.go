package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ChatCompleter produces an assistant reply for a visitor message.
type ChatCompleter interface {
	Complete(ctx context.Context, message string) (string, error)
}

const defaultAssistantModel = "deepseek-reasoner"

// assistantSystemPrompt pins every answer to the company knowledge snippet.
const assistantSystemPrompt = `
You are the official AI assistant for Tagad Platforms LLP.
Only answer questions using the information below. If you do not know the answer from this information, respond with: "I'm sorry, I can only answer questions about Tagad Platforms LLP and its services."
---
Company: Tagad Platforms LLP
About: We are a forward-thinking software technology company dedicated to transforming businesses through innovative digital solutions.
Services: Custom Software, Mobile Applications, Digital marketing, Erp Solutions, Saleforce, E commerce Development, Buisness Softwares.
Core Values: Innovation, Security, Reliability, Passion.
Team: Aniket Baswade (CEO & Founder, Business Strategy & Leadership).
Vision: To be the global leader in software technology services, recognized for innovation, quality, and commitment to client success and serve to 1 billion people daily.
Experience: 2025 Build year, 100% success projects, 3 core members.
---
Remember: If the answer is not in the information above, say: "I'm sorry, I can only answer questions about Tagad Platforms LLP and its services."
`

// AssistantClient calls a chat-completions API with the fixed system prompt.
type AssistantClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
	model   string
}

// NewAssistantClient builds a client for the completion API at baseURL.
func NewAssistantClient(client *http.Client, baseURL, apiKey string) *AssistantClient {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &AssistantClient{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   defaultAssistantModel,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete forwards the message with the system prompt prefix and returns
// the first choice content.
func (c *AssistantClient) Complete(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: assistantSystemPrompt},
			{Role: "user", Content: message},
		},
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("completion api error: %s", extractAPIError(resp.Body, resp.StatusCode))
	}

	var payload completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if payload.Error != nil && payload.Error.Message != "" {
		return "", fmt.Errorf("completion api error: %s", payload.Error.Message)
	}
	if len(payload.Choices) == 0 {
		return "", errors.New("completion response contained no choices")
	}
	return payload.Choices[0].Message.Content, nil
}

func extractAPIError(body io.Reader, status int) string {
	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return fmt.Sprintf("status %d", status)
	}

	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	return fmt.Sprintf("status %d: %s", status, string(data))
}

var _ ChatCompleter = (*AssistantClient)(nil)
