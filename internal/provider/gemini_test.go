package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func geminiTestClient(srv *httptest.Server) *geminiClient {
	return newGeminiClient("test-key", Endpoints{
		Models: srv.URL + "/v1beta/models",
		Chat:   srv.URL + "/v1beta/models/%s:generateContent",
	})
}

func TestGeminiChat(t *testing.T) {
	var gotReq geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/gemini-pro:generateContent") {
			t.Errorf("path = %q, want model spliced into URL", r.URL.Path)
		}
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hello back"}]}}]}`))
	}))
	defer srv.Close()

	c := geminiTestClient(srv)
	history := []Message{
		SystemMessage("be helpful"),
		UserMessage("hi"),
		AssistantMessage("hello"),
		UserMessage("again"),
	}

	reply, err := c.Chat(context.Background(), "gemini-pro", history)
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply != "hello back" {
		t.Fatalf("reply = %q", reply)
	}

	if gotReq.SystemInstruction == nil || gotReq.SystemInstruction.Parts[0].Text != "be helpful" {
		t.Errorf("system message not sent as systemInstruction: %+v", gotReq.SystemInstruction)
	}
	if len(gotReq.Contents) != 3 {
		t.Fatalf("contents = %d entries, want 3", len(gotReq.Contents))
	}
	if gotReq.Contents[1].Role != "model" {
		t.Errorf("assistant turn role = %q, want model", gotReq.Contents[1].Role)
	}
}

func TestGeminiChatHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := geminiTestClient(srv)
	_, err := c.Chat(context.Background(), "gemini-pro", []Message{UserMessage("hi")})
	if err == nil {
		t.Fatal("expected error for non-2xx status")
	}
	if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("error = %v, want status and body text", err)
	}
}

func TestGeminiChatShapeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := geminiTestClient(srv)
	_, err := c.Chat(context.Background(), "gemini-pro", []Message{UserMessage("hi")})
	if err == nil {
		t.Fatal("expected error for missing candidates")
	}
	if !strings.Contains(err.Error(), `{"candidates":[]}`) {
		t.Fatalf("error = %v, want raw body included", err)
	}
}

func TestGeminiListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"models":[{"name":"models/gemini-pro","description":"text model"}]}`))
	}))
	defer srv.Close()

	c := geminiTestClient(srv)
	models, err := c.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels: %v", err)
	}
	if len(models) != 1 || models[0].Name != "models/gemini-pro" {
		t.Fatalf("models = %+v", models)
	}
}
