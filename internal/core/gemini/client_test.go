package gemini

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/steveyiyo/guide-backend/internal/config"
)

func TestNewRequiresKey(t *testing.T) {
	if _, err := New(config.GeminiConfig{Model: "gemini-2.5-flash"}); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestGenerate(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"  Nomoshkar! Start at Victoria Memorial.  "}]}}]}`))
	}))
	defer srv.Close()

	c, err := New(config.GeminiConfig{APIKey: "k", Model: "gemini-2.5-flash", BaseURL: srv.URL + "/", Temperature: 0.5})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := c.Generate(context.Background(), "You are a Kolkata guide.", "Where should I start?")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out != "Nomoshkar! Start at Victoria Memorial." {
		t.Fatalf("unexpected reply %q", out)
	}
	if !strings.Contains(body, "You are a Kolkata guide.") || !strings.Contains(body, "Where should I start?") {
		t.Fatalf("request did not carry system and user text: %s", body)
	}
}

func TestGenerateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer srv.Close()

	c, err := New(config.GeminiConfig{APIKey: "bad", Model: "gemini-2.5-flash", BaseURL: srv.URL + "/"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Generate(context.Background(), "sys", "hi"); err == nil {
		t.Fatal("expected an error")
	}
}
