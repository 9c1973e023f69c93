package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestAuthHeaderAttachedConditionally(t *testing.T) {
	var gotAuth string
	var gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()
	client := NewClient(server.URL, nil)

	if _, err := client.Me(context.Background(), "secret-token"); err != nil {
		t.Fatalf("me: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotRequestID == "" {
		t.Fatal("expected an X-Request-ID header")
	}

	if _, err := client.ListGigs(context.Background()); err != nil {
		t.Fatalf("list gigs: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("public call should carry no Authorization header, got %q", gotAuth)
	}
}

func TestErrorNormalization(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid credentials"}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream exploded"))
		}
	}))
	defer server.Close()
	client := NewClient(server.URL, nil)

	_, err := client.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "x"})
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}
	if apiErr.Message != "Invalid credentials" {
		t.Fatalf("message = %q", apiErr.Message)
	}
	if apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("status = %d", apiErr.Status)
	}

	_, err = client.ListGigs(context.Background())
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T (%v)", err, err)
	}
	if apiErr.Message != "Request failed with status 502" {
		t.Fatalf("fallback message = %q", apiErr.Message)
	}
}

func TestMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()
	client := NewClient(server.URL, nil)

	_, err := client.ListGigs(context.Background())
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer server.Close()
	client := NewClient(server.URL+"/", nil)

	if _, err := client.ListTalents(context.Background()); err != nil {
		t.Fatalf("list talents: %v", err)
	}
	if gotPath != "/talents" {
		t.Fatalf("path = %q", gotPath)
	}
}

func TestGetContractNull(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	}))
	defer server.Close()
	client := NewClient(server.URL, nil)

	fetched, err := client.GetContract(context.Background(), "app-1", "token")
	if err != nil {
		t.Fatalf("get contract: %v", err)
	}
	if fetched != nil {
		t.Fatalf("expected nil contract, got %+v", fetched)
	}
}

func TestConcurrentIdenticalReadsJoin(t *testing.T) {
	var hits atomic.Int32
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		<-release
		w.Write([]byte(`[]`))
	}))
	defer server.Close()
	client := NewClient(server.URL, &http.Client{Timeout: 5 * time.Second})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := client.ListGigs(context.Background()); err != nil {
				t.Errorf("list gigs: %v", err)
			}
		}()
	}
	// Give the goroutines a moment to pile onto the in-flight request.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := hits.Load(); got != 1 {
		t.Fatalf("expected 1 upstream hit, got %d", got)
	}
}

func TestMutationsAreNotDeduplicated(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"id":"m-1","senderId":"u-1","content":"hi","createdAt":"2026-01-02T15:04:05Z"}`))
	}))
	defer server.Close()
	client := NewClient(server.URL, nil)

	for i := 0; i < 2; i++ {
		if _, err := client.SendMessage(context.Background(), "app-1", SendMessageRequest{Content: "hi"}, "token"); err != nil {
			t.Fatalf("send: %v", err)
		}
	}
	if got := hits.Load(); got != 2 {
		t.Fatalf("expected 2 upstream hits, got %d", got)
	}
}
