package assistant

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/injazapp/injaz/internal/models"
)

func TestSendWithoutKeyReturnsFallback(t *testing.T) {
	c := NewWithKey("http://unused", "")
	if got := c.Send(context.Background(), nil, "hi"); got != FallbackNoKey {
		t.Errorf("expected the no-key fallback, got %q", got)
	}
}

func TestSendReturnsModelReply(t *testing.T) {
	var gotPath string
	var gotReq generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"وعليكم السلام"}]}}]}`)
	}))
	defer server.Close()

	c := NewWithKey(server.URL, "test-key")
	history := []models.ChatMessage{
		{Role: models.ChatRoleUser, Text: "السلام عليكم"},
		{Role: models.ChatRoleAssistant, Text: "أهلاً"},
	}

	got := c.Send(context.Background(), history, "كيف أذاكر؟")
	if got != "وعليكم السلام" {
		t.Errorf("expected the model reply, got %q", got)
	}
	if gotPath != "/models/"+defaultModel+":generateContent" {
		t.Errorf("unexpected request path %q", gotPath)
	}

	if len(gotReq.Contents) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(gotReq.Contents))
	}
	if gotReq.Contents[0].Role != "user" || gotReq.Contents[1].Role != "model" || gotReq.Contents[2].Role != "user" {
		t.Errorf("history roles mapped wrong: %s/%s/%s",
			gotReq.Contents[0].Role, gotReq.Contents[1].Role, gotReq.Contents[2].Role)
	}
	if gotReq.SystemInstruction == nil {
		t.Error("expected a system instruction")
	}
}

func TestSendServerErrorReturnsFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := NewWithKey(server.URL, "test-key")
	if got := c.Send(context.Background(), nil, "hi"); got != FallbackError {
		t.Errorf("expected the error fallback, got %q", got)
	}
}

func TestSendUnreachableHostReturnsFallback(t *testing.T) {
	c := NewWithKey("http://127.0.0.1:1", "test-key")
	if got := c.Send(context.Background(), nil, "hi"); got != FallbackError {
		t.Errorf("expected the error fallback, got %q", got)
	}
}

func TestSendEmptyCandidatesReturnsFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"candidates":[]}`)
	}))
	defer server.Close()

	c := NewWithKey(server.URL, "test-key")
	if got := c.Send(context.Background(), nil, "hi"); got != FallbackError {
		t.Errorf("expected the error fallback, got %q", got)
	}
}
