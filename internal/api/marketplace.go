package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"talentia/internal/domain/contract"
	"talentia/internal/domain/gig"
	"talentia/internal/domain/messaging"
)

type CreateGigRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Role        string     `json:"role,omitempty"`
	BudgetMin   *float64   `json:"budgetMin,omitempty"`
	BudgetMax   *float64   `json:"budgetMax,omitempty"`
	Location    string     `json:"location,omitempty"`
	Type        gig.Type   `json:"type,omitempty"`
	Category    string     `json:"category,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

type ApplyRequest struct {
	Proposal string `json:"proposal,omitempty"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

type CreateContractRequest struct {
	AgreedAmount float64 `json:"agreedAmount"`
}

type ReleaseContractRequest struct {
	Rating  *int   `json:"rating,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// ListGigs is the one public marketplace read; everything else below requires
// a bearer token.
func (c *Client) ListGigs(ctx context.Context) ([]gig.Gig, error) {
	var out []gig.Gig
	if err := c.get(ctx, "/gigs", "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateGig(ctx context.Context, req CreateGigRequest, token string) (*gig.Gig, error) {
	var out gig.Gig
	if err := c.do(ctx, http.MethodPost, "/gigs", req, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListMyGigs(ctx context.Context, token string) ([]gig.Gig, error) {
	var out []gig.Gig
	if err := c.get(ctx, "/gigs/my", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ApplyToGig(ctx context.Context, gigID string, req ApplyRequest, token string) (*gig.Application, error) {
	var out gig.Application
	if err := c.do(ctx, http.MethodPost, "/gigs/"+url.PathEscape(gigID)+"/apply", req, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListApplications(ctx context.Context, gigID, token string) ([]gig.Application, error) {
	var out []gig.Application
	if err := c.get(ctx, "/gigs/"+url.PathEscape(gigID)+"/applications", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ApproveApplication(ctx context.Context, applicationID, token string) (*gig.Application, error) {
	var out gig.Application
	if err := c.do(ctx, http.MethodPost, "/gigs/applications/"+url.PathEscape(applicationID)+"/approve", nil, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetConversation(ctx context.Context, applicationID, token string) (*messaging.Conversation, error) {
	var out messaging.Conversation
	if err := c.get(ctx, "/gigs/applications/"+url.PathEscape(applicationID)+"/conversation", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListMyConversations(ctx context.Context, token string) ([]messaging.Conversation, error) {
	var out []messaging.Conversation
	if err := c.get(ctx, "/gigs/conversations/me", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SendMessage(ctx context.Context, applicationID string, req SendMessageRequest, token string) (*messaging.Message, error) {
	var out messaging.Message
	if err := c.do(ctx, http.MethodPost, "/gigs/applications/"+url.PathEscape(applicationID)+"/messages", req, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateContract(ctx context.Context, applicationID string, req CreateContractRequest, token string) (*contract.Contract, error) {
	var out contract.Contract
	if err := c.do(ctx, http.MethodPost, "/gigs/applications/"+url.PathEscape(applicationID)+"/contracts", req, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetContract returns nil without error when the backend reports that no
// contract exists yet for the application (a JSON null body).
func (c *Client) GetContract(ctx context.Context, applicationID, token string) (*contract.Contract, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/gigs/applications/"+url.PathEscape(applicationID)+"/contract", token, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var out contract.Contract
	if err := decode(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReleaseContract(ctx context.Context, contractID string, req ReleaseContractRequest, token string) (*contract.Contract, error) {
	var out contract.Contract
	if err := c.do(ctx, http.MethodPost, "/gigs/contracts/"+url.PathEscape(contractID)+"/release", req, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
