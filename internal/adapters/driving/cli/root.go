// Package cli implements the plurk command-line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/plurklab/plurk-cli/internal/core/domain"
	"github.com/plurklab/plurk-cli/internal/core/ports/driven"
	"github.com/plurklab/plurk-cli/internal/core/ports/driving"
	"github.com/plurklab/plurk-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// FlowFactory builds an OAuth flow for a set of keys and a verifier prompt.
// The CLI constructs a fresh flow per invocation so each command starts from
// the key file's state.
type FlowFactory func(keys domain.Keys, prompt driven.VerifierPrompt) (driving.OAuthFlow, error)

// Services injected by main before Execute runs.
var (
	flowFactory    FlowFactory
	profileService driving.ProfileService
	keyStore       driven.KeyStore
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "plurk",
	Short: "A command-line client for the Plurk API",
	Long: `plurk is a command-line client for the Plurk API.

It performs the three-legged OAuth handshake, stores the resulting access
token, and issues signed API calls.

Typical first run:
  plurk keys set                 # store your consumer key pair
  plurk authorize                # run the OAuth flow in the browser
  plurk call /APP/Profile/getOwnProfile

Subsequent calls reuse the stored access token:
  plurk call /APP/Timeline/plurkAdd -d content="hello" -d qualifier=says`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "Enable verbose output")
}

// Wire injects the services the commands depend on.
func Wire(factory FlowFactory, profiles driving.ProfileService, ks driven.KeyStore) {
	flowFactory = factory
	profileService = profiles
	keyStore = ks
}

// SetVersion overrides the build-time version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
