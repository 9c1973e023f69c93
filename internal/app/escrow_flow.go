package app

import (
	"context"
	"errors"
	"log/slog"

	"talentia/internal/api"
	"talentia/internal/domain/contract"
	"talentia/internal/domain/gig"
	"talentia/internal/domain/messaging"
)

// ErrContractExists rejects funding an application twice.
var ErrContractExists = errors.New("a contract already exists for this application")

// EscrowFlow covers the approve-and-chat workflow: a company approves an
// application, the two sides message inside the application's conversation,
// the company funds a contract and finally releases it with a review. The
// contract lifecycle is tracked as an explicit state so every action is
// gated on the fetched state, not on the backend alone.
type EscrowFlow struct {
	api    *api.Client
	logger *slog.Logger
}

func NewEscrowFlow(client *api.Client, logger *slog.Logger) *EscrowFlow {
	return &EscrowFlow{api: client, logger: logger}
}

type CreateContractInput struct {
	ApplicationID string  `validate:"required"`
	Amount        float64 `validate:"gt=0"`
}

type ReleaseInput struct {
	ApplicationID string `validate:"required"`
	Rating        *int   `validate:"omitempty,min=1,max=5"`
	Comment       string
}

type SendMessageInput struct {
	ApplicationID string `validate:"required"`
	Content       string `validate:"required"`
}

func (f *EscrowFlow) Approve(ctx context.Context, applicationID, token string) (*gig.Application, error) {
	return f.api.ApproveApplication(ctx, applicationID, token)
}

func (f *EscrowFlow) Conversations(ctx context.Context, token string) ([]messaging.Conversation, error) {
	return f.api.ListMyConversations(ctx, token)
}

func (f *EscrowFlow) Conversation(ctx context.Context, applicationID, token string) (*messaging.Conversation, error) {
	return f.api.GetConversation(ctx, applicationID, token)
}

func (f *EscrowFlow) Send(ctx context.Context, input SendMessageInput, token string) (*messaging.Message, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	return f.api.SendMessage(ctx, input.ApplicationID, api.SendMessageRequest{Content: input.Content}, token)
}

// ContractState fetches the application's contract and derives its escrow
// state in one step.
func (f *EscrowFlow) ContractState(ctx context.Context, applicationID, token string) (contract.State, *contract.Contract, error) {
	fetched, err := f.api.GetContract(ctx, applicationID, token)
	if err != nil {
		return contract.StateNone, nil, err
	}
	return contract.StateOf(fetched), fetched, nil
}

func (f *EscrowFlow) CreateContract(ctx context.Context, input CreateContractInput, token string) (*contract.Contract, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	state, _, err := f.ContractState(ctx, input.ApplicationID, token)
	if err != nil {
		return nil, err
	}
	if state != contract.StateNone {
		return nil, ErrContractExists
	}
	created, err := f.api.CreateContract(ctx, input.ApplicationID, api.CreateContractRequest{AgreedAmount: input.Amount}, token)
	if err != nil {
		return nil, err
	}
	f.logger.Debug("contract funded", slog.String("contract_id", created.ID))
	return created, nil
}

// Release re-fetches the contract before attempting the release so a stale
// or already-released contract fails locally with a sentinel error.
func (f *EscrowFlow) Release(ctx context.Context, input ReleaseInput, token string) (*contract.Contract, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	fetched, err := f.api.GetContract(ctx, input.ApplicationID, token)
	if err != nil {
		return nil, err
	}
	if err := contract.Releasable(fetched); err != nil {
		return nil, err
	}
	released, err := f.api.ReleaseContract(ctx, fetched.ID, api.ReleaseContractRequest{
		Rating:  input.Rating,
		Comment: input.Comment,
	}, token)
	if err != nil {
		return nil, err
	}
	f.logger.Debug("contract released", slog.String("contract_id", released.ID))
	return released, nil
}
