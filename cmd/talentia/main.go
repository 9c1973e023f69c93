package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"talentia/internal/api"
	"talentia/internal/cli"
	"talentia/internal/config"
	"talentia/internal/logging"
	"talentia/internal/session"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := logging.NewLogger(cfg.LogLevel)

	storagePath := cfg.StoragePath
	if storagePath == "" {
		resolved, err := session.DefaultStoragePath()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		storagePath = resolved
	}

	client := api.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.APITimeout})
	app := cli.New(cfg, logger, client, session.NewFileStorage(storagePath), os.Stdout)

	if err := app.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
