package app

import (
	"context"
	"log/slog"
	"time"

	"talentia/internal/api"
	"talentia/internal/domain/gig"
)

// MarketplaceFlow covers the opportunity pages: companies post and review
// gigs, students browse and apply.
type MarketplaceFlow struct {
	api    *api.Client
	logger *slog.Logger
}

func NewMarketplaceFlow(client *api.Client, logger *slog.Logger) *MarketplaceFlow {
	return &MarketplaceFlow{api: client, logger: logger}
}

type PostGigInput struct {
	Title       string `validate:"required"`
	Description string
	Role        string
	BudgetMin   *float64 `validate:"omitempty,gte=0"`
	BudgetMax   *float64 `validate:"omitempty,gte=0"`
	Location    string
	Type        string
	Category    string
	Deadline    *time.Time
}

type ApplyInput struct {
	GigID    string `validate:"required"`
	Proposal string
}

func (f *MarketplaceFlow) Browse(ctx context.Context) ([]gig.Gig, error) {
	return f.api.ListGigs(ctx)
}

func (f *MarketplaceFlow) MyGigs(ctx context.Context, token string) ([]gig.Gig, error) {
	return f.api.ListMyGigs(ctx, token)
}

func (f *MarketplaceFlow) Post(ctx context.Context, input PostGigInput, token string) (*gig.Gig, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	created, err := f.api.CreateGig(ctx, api.CreateGigRequest{
		Title:       input.Title,
		Description: input.Description,
		Role:        input.Role,
		BudgetMin:   input.BudgetMin,
		BudgetMax:   input.BudgetMax,
		Location:    input.Location,
		Type:        gig.Type(input.Type),
		Category:    input.Category,
		Deadline:    input.Deadline,
	}, token)
	if err != nil {
		return nil, err
	}
	f.logger.Debug("gig posted", slog.String("gig_id", created.ID))
	return created, nil
}

func (f *MarketplaceFlow) Apply(ctx context.Context, input ApplyInput, token string) (*gig.Application, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}
	return f.api.ApplyToGig(ctx, input.GigID, api.ApplyRequest{Proposal: input.Proposal}, token)
}

func (f *MarketplaceFlow) Applications(ctx context.Context, gigID, token string) ([]gig.Application, error) {
	return f.api.ListApplications(ctx, gigID, token)
}
