package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestListModelsBaseShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
  {"name":"openai","description":"OpenAI GPT","community":false},
  {"name":"unity","description":"community model","community":true}
]`))
	}))
	defer srv.Close()

	c := newOpenAIClient("base", "", Endpoints{Models: srv.URL})
	models, err := c.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels: %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("models = %+v, want 2", models)
	}
	if models[0].Community || !models[1].Community {
		t.Errorf("community flags wrong: %+v", models)
	}
}

func TestListModelsOpenRouterShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer sk-123" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`{"data":[{"id":"mistralai/mistral-7b","name":"Mistral 7B","description":"fast"}]}`))
	}))
	defer srv.Close()

	c := newOpenAIClient("openrouter", "sk-123", Endpoints{Models: srv.URL})
	models, err := c.ListModels(context.Background())
	if err != nil {
		t.Fatalf("ListModels: %v", err)
	}
	if len(models) != 1 || models[0].Name != "mistralai/mistral-7b" {
		t.Fatalf("models = %+v", models)
	}
}

func TestListModelsHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newOpenAIClient("openrouter", "", Endpoints{Models: srv.URL})
	_, err := c.ListModels(context.Background())
	if err == nil || !strings.Contains(err.Error(), "401") {
		t.Fatalf("err = %v, want 401 surfaced", err)
	}
}

func TestChatOpenAIEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("path = %q, want chat/completions", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hi there"}}]}`))
	}))
	defer srv.Close()

	c := newOpenAIClient("base", "key", Endpoints{Chat: srv.URL})
	reply, err := c.Chat(context.Background(), "default-model", []Message{
		SystemMessage("sys"),
		UserMessage("hello"),
	})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply != "hi there" {
		t.Fatalf("reply = %q", reply)
	}
}

func TestNewClosedSet(t *testing.T) {
	for _, name := range []string{"base", "openrouter", "gemini"} {
		p, err := New(name, "")
		if err != nil {
			t.Fatalf("New(%s): %v", name, err)
		}
		if p.Name() != name {
			t.Errorf("Name() = %q, want %q", p.Name(), name)
		}
	}
	if _, err := New("anthropic", ""); err == nil {
		t.Error("New should reject providers outside the closed set")
	}
}
