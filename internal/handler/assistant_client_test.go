package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAssistantClient_Complete_Success(t *testing.T) {
	var gotAuth string
	var gotPayload completionRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "hello from assistant"}},
			},
		})
	}))
	defer srv.Close()

	client := NewAssistantClient(srv.Client(), srv.URL, "test-key")
	reply, err := client.Complete(context.Background(), "What services do you offer?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "hello from assistant" {
		t.Fatalf("unexpected reply: %q", reply)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotPayload.Model != defaultAssistantModel || gotPayload.Stream {
		t.Fatalf("unexpected payload: %+v", gotPayload)
	}
	if len(gotPayload.Messages) != 2 || gotPayload.Messages[0].Role != "system" {
		t.Fatalf("expected system prompt prefix, got %+v", gotPayload.Messages)
	}
	if !strings.Contains(gotPayload.Messages[0].Content, "Tagad Platforms LLP") {
		t.Fatalf("system prompt missing company context")
	}
	if gotPayload.Messages[1].Role != "user" || gotPayload.Messages[1].Content != "What services do you offer?" {
		t.Fatalf("unexpected user message: %+v", gotPayload.Messages[1])
	}
}

func TestAssistantClient_Complete_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": map[string]string{"message": "invalid api key"}})
	}))
	defer srv.Close()

	client := NewAssistantClient(srv.Client(), srv.URL, "bad-key")
	_, err := client.Complete(context.Background(), "hi")
	if err == nil || !strings.Contains(err.Error(), "invalid api key") {
		t.Fatalf("expected api error surfaced, got %v", err)
	}
}

func TestAssistantClient_Complete_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	client := NewAssistantClient(srv.Client(), srv.URL, "key")
	if _, err := client.Complete(context.Background(), "hi"); err == nil {
		t.Fatalf("expected error for empty choices")
	}
}
