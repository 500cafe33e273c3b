// Command plurk is a command-line client for the Plurk API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/plurklab/plurk-cli/internal/adapters/driven/keys"
	"github.com/plurklab/plurk-cli/internal/adapters/driven/plurkapi"
	"github.com/plurklab/plurk-cli/internal/adapters/driven/signing"
	"github.com/plurklab/plurk-cli/internal/adapters/driven/storage/sqlite"
	"github.com/plurklab/plurk-cli/internal/adapters/driving/cli"
	"github.com/plurklab/plurk-cli/internal/core/domain"
	"github.com/plurklab/plurk-cli/internal/core/ports/driven"
	"github.com/plurklab/plurk-cli/internal/core/ports/driving"
	"github.com/plurklab/plurk-cli/internal/core/services"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	dataDir := os.Getenv("PLURK_DATA_DIR")

	keyStore, err := keys.NewFileStore(dataDir)
	if err != nil {
		return fmt.Errorf("failed to open key store: %w", err)
	}

	profileStore, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("failed to open profile store: %w", err)
	}
	defer profileStore.Close()

	factory := func(k domain.Keys, prompt driven.VerifierPrompt) (driving.OAuthFlow, error) {
		signer, err := signing.New(k.ConsumerKey, k.ConsumerSecret, signing.Config{})
		if err != nil {
			return nil, err
		}
		creds := domain.NewCredentials(k.ConsumerKey, k.ConsumerSecret)
		api := plurkapi.New(signer, plurkapi.Config{})
		return services.NewFlowService(creds, signer, api, prompt), nil
	}

	cli.Wire(factory, services.NewProfileService(profileStore), keyStore)
	cli.SetVersion(version)

	return cli.Execute(ctx)
}
