package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestClient_Complete tests the happy path against a stub endpoint
func TestClient_Complete(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotPayload)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"choices":[{"message":{"role":"assistant","content":"<cli>echo hi</cli>"}}]}`)
	}))
	defer srv.Close()

	client := NewClient("sk-test", srv.URL, map[string]any{
		"model":       "some/model",
		"temperature": 0.2,
	})

	content, err := client.Complete(context.Background(), "be helpful", "list files")
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	if content != "<cli>echo hi</cli>" {
		t.Errorf("content = %q", content)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("auth = %q", gotAuth)
	}
	if gotPayload["model"] != "some/model" {
		t.Errorf("model param = %v", gotPayload["model"])
	}

	messages, ok := gotPayload["messages"].([]any)
	if !ok || len(messages) != 2 {
		t.Fatalf("messages = %v", gotPayload["messages"])
	}
	first := messages[0].(map[string]any)
	if first["role"] != "system" || first["content"] != "be helpful" {
		t.Errorf("system message = %v", first)
	}
}

// TestClient_Errors tests the error taxonomy
func TestClient_Errors(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		client := NewClient("", "", nil)
		if _, err := client.Complete(context.Background(), "s", "u"); err == nil {
			t.Fatal("expected error without API key")
		}
	})

	t.Run("non-200 status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"error":{"message":"bad key"}}`)
		}))
		defer srv.Close()

		client := NewClient("sk-test", srv.URL, nil)
		_, err := client.Complete(context.Background(), "s", "u")

		var httpErr *HTTPError
		if !errors.As(err, &httpErr) {
			t.Fatalf("err = %v, want HTTPError", err)
		}
		if httpErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("StatusCode = %d, want 401", httpErr.StatusCode)
		}
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		client := NewClient("sk-test", "http://127.0.0.1:1", nil)
		_, err := client.Complete(context.Background(), "s", "u")

		var netErr *NetworkError
		if !errors.As(err, &netErr) {
			t.Fatalf("err = %v, want NetworkError", err)
		}
	})

	t.Run("malformed completion payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"choices":[]}`)
		}))
		defer srv.Close()

		client := NewClient("sk-test", srv.URL, nil)
		if _, err := client.Complete(context.Background(), "s", "u"); err == nil {
			t.Fatal("expected error for payload without content")
		}
	})
}
