package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plurklab/plurk-cli/internal/adapters/driving/console"
	"github.com/plurklab/plurk-cli/internal/adapters/driving/tui"
	"github.com/plurklab/plurk-cli/internal/core/domain"
	"github.com/plurklab/plurk-cli/internal/core/ports/driven"
)

var authorizeCmd = &cobra.Command{
	Use:   "authorize",
	Short: "Run the OAuth authorization flow",
	Long: `Run the three-legged OAuth flow and store the resulting access token.

The command prints an authorization URL; open it in a browser, approve the
app, and enter the verification code Plurk displays. The access token is
written back to the key file so later calls skip the flow.

Examples:
  plurk authorize                 # console prompt
  plurk authorize --tui           # full-screen prompt
  plurk authorize --save work     # also store the token as a named profile
  plurk authorize --force         # redo the flow despite a stored token`,
	RunE: runAuthorize,
}

// Flags for authorize.
var (
	authorizeSave  string
	authorizeTUI   bool
	authorizeForce bool
)

func init() {
	authorizeCmd.Flags().StringVar(
		&authorizeSave, "save", "", "Also save the access token as a named profile")
	authorizeCmd.Flags().BoolVar(
		&authorizeTUI, "tui", false, "Prompt for the verification code in a full-screen UI")
	authorizeCmd.Flags().BoolVar(
		&authorizeForce, "force", false, "Run the flow even when an access token is already stored")

	rootCmd.AddCommand(authorizeCmd)
}

func runAuthorize(cmd *cobra.Command, _ []string) error {
	if flowFactory == nil {
		return errors.New("flow factory not configured")
	}
	if keyStore == nil {
		return errors.New("key store not configured")
	}

	keys, err := keyStore.Load()
	if err != nil {
		if errors.Is(err, domain.ErrNoConsumerKeys) {
			return fmt.Errorf("no consumer keys stored, run: plurk keys set")
		}
		return fmt.Errorf("failed to read keys: %w", err)
	}

	var prompt driven.VerifierPrompt
	if authorizeTUI {
		prompt = tui.NewPrompt()
	} else {
		prompt = console.NewPrompt(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	flow, err := flowFactory(keys, prompt)
	if err != nil {
		return fmt.Errorf("failed to build OAuth flow: %w", err)
	}

	var existing *domain.TokenPair
	if pair, ok := keys.AccessPair(); ok && !authorizeForce {
		existing = &pair
		cmd.Println("Reusing stored access token. Use --force to redo the flow.")
	}

	ctx := cmd.Context()
	if err := flow.Authorize(ctx, existing); err != nil {
		return fmt.Errorf("authorization failed: %w", err)
	}

	pair, ok := flow.AccessPair()
	if !ok {
		return errors.New("authorization finished without an access token")
	}

	keys.AccessToken = pair.Token
	keys.AccessTokenSecret = pair.Secret
	if err := keyStore.Save(keys); err != nil {
		return fmt.Errorf("failed to save access token: %w", err)
	}

	cmd.Printf("Authorized. Access token %s saved to %s\n", pair.Token, keyStore.Path())

	if authorizeSave != "" {
		if profileService == nil {
			return errors.New("profile service not configured")
		}
		profile, err := profileService.Save(ctx, authorizeSave, pair)
		if err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		cmd.Printf("Saved profile %q (%s)\n", profile.Name, profile.ID)
	}

	return nil
}
