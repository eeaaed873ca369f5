package groq

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"careercoach-backend/internal/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", "llama-3.1-8b-instant")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client.WithAPIURL(srv.URL)
}

func TestCompleteSendsOneSystemAndOneUserMessage(t *testing.T) {
	var got chatRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "hello"}},
			},
		})
	})

	out, err := client.Complete(context.Background(), llm.CompletionRequest{
		System:      "You are a strict JSON API.",
		Prompt:      "Analyze the Software industry.",
		Temperature: 0.2,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != "hello" {
		t.Fatalf("expected hello, got %q", out)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got.Messages))
	}
	if got.Messages[0].Role != "system" || got.Messages[1].Role != "user" {
		t.Fatalf("unexpected roles: %s, %s", got.Messages[0].Role, got.Messages[1].Role)
	}
	if got.Temperature == nil || *got.Temperature != 0.2 {
		t.Fatalf("expected temperature 0.2, got %v", got.Temperature)
	}
}

func TestCompleteBlankContentIsEmptyCompletion(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "   "}},
			},
		})
	})

	_, err := client.Complete(context.Background(), llm.CompletionRequest{Prompt: "x"})
	if !errors.Is(err, llm.ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}

func TestCompleteSurfacesProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "model overloaded", "type": "server_error"},
		})
	})

	_, err := client.Complete(context.Background(), llm.CompletionRequest{Prompt: "x"})
	if err == nil {
		t.Fatalf("expected error")
	}
}
