package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"talentia/internal/api"
	"talentia/internal/domain/contract"
	"talentia/internal/logging"
)

// contractBackend is a tiny stateful stand-in for the contract endpoints:
// one contract per application, created once, released once.
type contractBackend struct {
	mu        sync.Mutex
	contracts map[string]*contract.Contract
}

func newContractBackend() *contractBackend {
	return &contractBackend{contracts: make(map[string]*contract.Contract)}
}

func (b *contractBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/gigs/applications/app-1/contract":
			existing := b.contracts["app-1"]
			if existing == nil {
				w.Write([]byte("null"))
				return
			}
			json.NewEncoder(w).Encode(existing)
		case r.Method == http.MethodPost && r.URL.Path == "/gigs/applications/app-1/contracts":
			created := &contract.Contract{ID: "c-1", ApplicationID: "app-1", AgreedAmount: 500, Status: contract.StatusFunded}
			b.contracts["app-1"] = created
			json.NewEncoder(w).Encode(created)
		case r.Method == http.MethodPost && r.URL.Path == "/gigs/contracts/c-1/release":
			existing := b.contracts["app-1"]
			if existing == nil || existing.Status == contract.StatusCompleted {
				w.WriteHeader(http.StatusConflict)
				w.Write([]byte(`{"message":"contract is not releasable"}`))
				return
			}
			existing.Status = contract.StatusCompleted
			json.NewEncoder(w).Encode(existing)
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"not found"}`))
		}
	})
}

func newEscrowFlow(t *testing.T) (*EscrowFlow, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(newContractBackend().handler())
	t.Cleanup(server.Close)
	client := api.NewClient(server.URL, nil)
	return NewEscrowFlow(client, logging.NewLogger("error")), server
}

func TestContractLifecycle(t *testing.T) {
	flow, _ := newEscrowFlow(t)
	ctx := context.Background()

	state, _, err := flow.ContractState(ctx, "app-1", "tok")
	if err != nil {
		t.Fatal(err)
	}
	if state != contract.StateNone {
		t.Fatalf("initial state = %v", state)
	}

	created, err := flow.CreateContract(ctx, CreateContractInput{ApplicationID: "app-1", Amount: 500}, "tok")
	if err != nil {
		t.Fatal(err)
	}
	if created.Status != contract.StatusFunded {
		t.Fatalf("created status = %q", created.Status)
	}

	state, _, err = flow.ContractState(ctx, "app-1", "tok")
	if err != nil {
		t.Fatal(err)
	}
	if state != contract.StateFunded {
		t.Fatalf("state after funding = %v", state)
	}

	rating := 5
	released, err := flow.Release(ctx, ReleaseInput{ApplicationID: "app-1", Rating: &rating, Comment: "great work"}, "tok")
	if err != nil {
		t.Fatal(err)
	}
	if released.Status != contract.StatusCompleted {
		t.Fatalf("released status = %q", released.Status)
	}

	// Second release fails locally before any request reaches the backend.
	_, err = flow.Release(ctx, ReleaseInput{ApplicationID: "app-1"}, "tok")
	if !errors.Is(err, contract.ErrAlreadyReleased) {
		t.Fatalf("double release: %v", err)
	}
}

func TestReleaseWithoutContract(t *testing.T) {
	flow, _ := newEscrowFlow(t)
	_, err := flow.Release(context.Background(), ReleaseInput{ApplicationID: "app-1"}, "tok")
	if !errors.Is(err, contract.ErrNoContract) {
		t.Fatalf("err = %v", err)
	}
}

func TestCreateContractTwice(t *testing.T) {
	flow, _ := newEscrowFlow(t)
	ctx := context.Background()

	if _, err := flow.CreateContract(ctx, CreateContractInput{ApplicationID: "app-1", Amount: 500}, "tok"); err != nil {
		t.Fatal(err)
	}
	_, err := flow.CreateContract(ctx, CreateContractInput{ApplicationID: "app-1", Amount: 700}, "tok")
	if !errors.Is(err, ErrContractExists) {
		t.Fatalf("err = %v", err)
	}
}

func TestCreateContractValidation(t *testing.T) {
	flow, _ := newEscrowFlow(t)
	_, err := flow.CreateContract(context.Background(), CreateContractInput{ApplicationID: "app-1", Amount: 0}, "tok")
	if err == nil {
		t.Fatal("expected a validation error for a zero amount")
	}
}

func TestReleaseRatingValidation(t *testing.T) {
	flow, _ := newEscrowFlow(t)
	rating := 9
	_, err := flow.Release(context.Background(), ReleaseInput{ApplicationID: "app-1", Rating: &rating}, "tok")
	if err == nil {
		t.Fatal("expected a validation error for an out-of-range rating")
	}
}

func TestSendMessageValidation(t *testing.T) {
	flow, _ := newEscrowFlow(t)
	_, err := flow.Send(context.Background(), SendMessageInput{ApplicationID: "app-1"}, "tok")
	if err == nil {
		t.Fatal("expected a validation error for empty content")
	}
}
