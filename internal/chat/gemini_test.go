package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"healieve/health-app/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	c := NewClient(config.GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.0-flash",
		BaseURL: srv.URL,
	})
	return c, srv.Close
}

func TestGenerate_ExtractsText(t *testing.T) {
	c, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-2.0-flash") {
			t.Errorf("model missing from path: %s", r.URL.Path)
		}
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if len(req.Contents) != 1 || !strings.Contains(req.Contents[0].Parts[0].Text, "User: how much water") {
			t.Errorf("prompt not forwarded: %+v", req)
		}
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Drink ~2 liters a day."}]}}]}`))
	})
	defer done()

	got, err := c.Generate(context.Background(), "how much water should I drink?")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if got != "Drink ~2 liters a day." {
		t.Fatalf("got %q", got)
	}
}

func TestGenerate_FallbackOnMissingShape(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"candidates":[]}`,
		`{"candidates":[{"content":{}}]}`,
		`{"candidates":[{"content":{"parts":[{"text":""}]}}]}`,
	}
	for _, body := range bodies {
		b := body
		c, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(b))
		})
		got, err := c.Generate(context.Background(), "hi")
		done()
		if err != nil {
			t.Fatalf("body %q: unexpected error %v", b, err)
		}
		if got != FallbackText {
			t.Fatalf("body %q: got %q, want fallback", b, got)
		}
	}
}

func TestGenerate_NonOKStatusErrors(t *testing.T) {
	c, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer done()
	if _, err := c.Generate(context.Background(), "hi"); err == nil {
		t.Fatalf("non-OK upstream should surface an error")
	}
}
