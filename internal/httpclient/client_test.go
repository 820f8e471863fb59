package httpclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/probench/probench/internal/httpclient"
)

func TestClient_Do(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/items" {
			t.Errorf("path = %q, want /api/items", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "5" {
			t.Errorf("limit = %q, want 5", r.URL.Query().Get("limit"))
		}
		if r.Header.Get("X-Suite") != "demo" {
			t.Errorf("X-Suite = %q, want demo", r.Header.Get("X-Suite"))
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := httpclient.NewClient(
		httpclient.WithBaseURL(server.URL),
		httpclient.WithTimeout(5*time.Second),
		httpclient.WithHeader("X-Suite", "demo"),
	)

	req := httpclient.NewRequest(http.MethodGet, "/api/items").
		WithQueryParam("limit", "5")

	resp, err := client.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("Do error = %v", err)
	}

	if !resp.IsSuccess() {
		t.Errorf("status = %d, want 2xx", resp.StatusCode)
	}
	if resp.BodyString() != `{"ok":true}` {
		t.Errorf("body = %q", resp.BodyString())
	}
	if resp.ResponseTime <= 0 {
		t.Error("response time was not measured")
	}
}

func TestClient_JSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := httpclient.NewClient(httpclient.WithBaseURL(server.URL))
	req := httpclient.NewRequest(http.MethodPost, "/articles").
		WithBody(map[string]string{"title": "hello"})

	resp, err := client.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("Do error = %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("status = %d, want 201", resp.StatusCode)
	}
}

func TestClient_BasePathJoin(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))
	defer server.Close()

	client := httpclient.NewClient(httpclient.WithBaseURL(server.URL + "/api/"))
	if _, err := client.Do(context.Background(), httpclient.NewRequest(http.MethodGet, "/health")); err != nil {
		t.Fatalf("Do error = %v", err)
	}

	if gotPath != "/api/health" {
		t.Errorf("path = %q, want /api/health", gotPath)
	}
}

func TestResponse_BodyJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"probench"}`))
	}))
	defer server.Close()

	client := httpclient.NewClient(httpclient.WithBaseURL(server.URL))
	resp, err := client.Do(context.Background(), httpclient.NewRequest(http.MethodGet, "/"))
	if err != nil {
		t.Fatal(err)
	}

	var decoded struct {
		Name string `json:"name"`
	}
	if err := resp.BodyJSON(&decoded); err != nil {
		t.Fatalf("BodyJSON error = %v", err)
	}
	if decoded.Name != "probench" {
		t.Errorf("decoded name = %q", decoded.Name)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := httpclient.NewClient(httpclient.WithBaseURL(server.URL))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := client.Do(ctx, httpclient.NewRequest(http.MethodGet, "/")); err == nil {
		t.Error("expected error from cancelled context")
	}
}
