// Package cli wires the page views of the original app onto commands: each
// command fetches its own data through the API client and renders it, with the
// session store deciding what is reachable.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"talentia/internal/api"
	"talentia/internal/app"
	"talentia/internal/config"
	"talentia/internal/session"
)

type App struct {
	cfg      config.Config
	logger   *slog.Logger
	client   *api.Client
	sessions *session.Store

	auth        *app.AuthFlow
	marketplace *app.MarketplaceFlow
	escrow      *app.EscrowFlow

	out io.Writer
}

func New(cfg config.Config, logger *slog.Logger, client *api.Client, storage session.Storage, out io.Writer) *App {
	sessions := session.NewStore(storage)
	return &App{
		cfg:         cfg,
		logger:      logger,
		client:      client,
		sessions:    sessions,
		auth:        app.NewAuthFlow(client, sessions, logger),
		marketplace: app.NewMarketplaceFlow(client, logger),
		escrow:      app.NewEscrowFlow(client, logger),
		out:         out,
	}
}

func (a *App) Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "talentia",
		Short:         "Talentia creative talent marketplace",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		a.loginCommand(),
		a.registerCommand(),
		a.logoutCommand(),
		a.whoamiCommand(),
		a.gigsCommand(),
		a.messagesCommand(),
		a.contractCommand(),
		a.talentsCommand(),
		a.libraryCommand(),
		a.coursesCommand(),
		a.mentorsCommand(),
		a.portfolioCommand(),
	)
	return root
}

// token returns the stored bearer token. Pages that need auth bounce the
// user to sign-in; here that is an error telling them to log in.
func (a *App) token() (string, error) {
	current := a.sessions.Load()
	if current == nil {
		return "", fmt.Errorf("you must be logged in; run `talentia login` first")
	}
	return current.Token, nil
}
