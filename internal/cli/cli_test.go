package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"talentia/internal/api"
	"talentia/internal/config"
	"talentia/internal/logging"
	"talentia/internal/session"
)

func testApp(t *testing.T, backend http.Handler) (*App, *bytes.Buffer) {
	t.Helper()
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)
	out := &bytes.Buffer{}
	cfg := config.Config{APIBaseURL: server.URL}
	client := api.NewClient(server.URL, nil)
	return New(cfg, logging.NewLogger("error"), client, session.NewMemoryStorage(), out), out
}

func run(t *testing.T, a *App, args ...string) error {
	t.Helper()
	root := a.Root()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.Execute()
}

func authBackend() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			var req struct {
				Email string `json:"email"`
			}
			json.NewDecoder(r.Body).Decode(&req)
			role := "STUDENT"
			if strings.HasPrefix(req.Email, "company") {
				role = "COMPANY"
			}
			json.NewEncoder(w).Encode(map[string]any{
				"accessToken": "tok",
				"user": map[string]any{
					"id": "u-1", "email": req.Email,
					"firstName": "Test", "lastName": "User", "role": role,
				},
			})
		case "/gigs":
			json.NewEncoder(w).Encode([]map[string]any{{
				"id": "g-1", "title": "Design a logo", "company": "Acme",
				"type": "GIG", "budget": "XAF 50,000", "posted": "2026-08-01", "applicants": 3,
			}})
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"not found"}`))
		}
	})
}

func TestLoginWhoamiLogout(t *testing.T) {
	a, out := testApp(t, authBackend())

	if err := run(t, a, "login", "-e", "company@example.com", "-p", "pw"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Home: /company-dashboard") {
		t.Fatalf("login output: %q", out.String())
	}

	out.Reset()
	if err := run(t, a, "whoami"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Role: COMPANY") {
		t.Fatalf("whoami output: %q", out.String())
	}

	out.Reset()
	if err := run(t, a, "logout"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Home: /") {
		t.Fatalf("logout output: %q", out.String())
	}

	out.Reset()
	if err := run(t, a, "whoami"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Not logged in") {
		t.Fatalf("whoami after logout: %q", out.String())
	}
}

func TestGigsListIsPublic(t *testing.T) {
	a, out := testApp(t, authBackend())
	if err := run(t, a, "gigs", "list"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Design a logo") {
		t.Fatalf("gigs output: %q", out.String())
	}
}

func TestAuthedCommandsRequireLogin(t *testing.T) {
	a, _ := testApp(t, authBackend())
	err := run(t, a, "gigs", "mine")
	if err == nil || !strings.Contains(err.Error(), "must be logged in") {
		t.Fatalf("err = %v", err)
	}
}

func TestBackendErrorSurfacesMessage(t *testing.T) {
	a, _ := testApp(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	err := run(t, a, "login", "-e", "x@example.com", "-p", "bad")
	if err == nil || err.Error() != "Invalid credentials" {
		t.Fatalf("err = %v", err)
	}
}
