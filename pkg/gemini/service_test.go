package gemini

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestService(url string) *GeminiService {
	svc := NewGeminiService("test-key", "gemini-flash-latest")
	svc.BaseURL = url
	return svc
}

func TestGenerateContentSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if !strings.Contains(r.URL.Path, "gemini-flash-latest:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("expected key in query, got %q", r.URL.Query().Get("key"))
		}
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"## AI Weekly Plan"}]}}]}`))
	}))
	defer server.Close()

	text, err := newTestService(server.URL).GenerateContent(context.Background(), "plan my week")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "## AI Weekly Plan" {
		t.Fatalf("expected candidate text, got %q", text)
	}
}

func TestGenerateContentUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"Quota exceeded"}}`))
	}))
	defer server.Close()

	_, err := newTestService(server.URL).GenerateContent(context.Background(), "plan")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", statusErr.Code)
	}
	if statusErr.Message != "Quota exceeded" {
		t.Fatalf("expected upstream message, got %q", statusErr.Message)
	}
}

func TestGenerateContentUpstreamErrorWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newTestService(server.URL).GenerateContent(context.Background(), "plan")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.Message != "" {
		t.Fatalf("expected empty message for unparseable payload, got %q", statusErr.Message)
	}
}

func TestGenerateContentEmptyCandidateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":""}]}}]}`))
	}))
	defer server.Close()

	_, err := newTestService(server.URL).GenerateContent(context.Background(), "plan")
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestGenerateContentNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	_, err := newTestService(server.URL).GenerateContent(context.Background(), "plan")
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestGenerateContentTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	_, err := newTestService(server.URL).GenerateContent(context.Background(), "plan")
	if err == nil {
		t.Fatal("expected transport error")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Fatalf("transport failure must not be a StatusError, got %v", err)
	}
}
