package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/plurklab/plurk-cli/internal/core/domain"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage the Plurk consumer key pair",
	Long: `Store and inspect the consumer key pair issued by Plurk.

Register an app at https://www.plurk.com/PlurkApp/ to obtain the pair.
Keys are stored with owner-only permissions in the plurk data directory.`,
}

var keysSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the consumer key pair",
	Long: `Store the consumer key pair.

Runs interactively when no flags are given; the secret is read without
echo. Non-interactive mode:

  plurk keys set --consumer-key "xxx" --consumer-secret "yyy"`,
	RunE: runKeysSet,
}

var keysShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored keys",
	RunE:  runKeysShow,
}

// Flags for keys set.
var (
	keysSetConsumerKey    string
	keysSetConsumerSecret string
)

func init() {
	keysSetCmd.Flags().StringVar(
		&keysSetConsumerKey, "consumer-key", "", "Consumer key (for non-interactive mode)")
	keysSetCmd.Flags().StringVar(
		&keysSetConsumerSecret, "consumer-secret", "", "Consumer secret (for non-interactive mode)")

	keysCmd.AddCommand(keysSetCmd)
	keysCmd.AddCommand(keysShowCmd)
	rootCmd.AddCommand(keysCmd)
}

func runKeysSet(cmd *cobra.Command, _ []string) error {
	if keyStore == nil {
		return errors.New("key store not configured")
	}

	key := keysSetConsumerKey
	secret := keysSetConsumerSecret
	reader := bufio.NewReader(cmd.InOrStdin())

	if key == "" {
		cmd.Print("Consumer key: ")
		input, _ := reader.ReadString('\n')
		key = strings.TrimSpace(input)
	}
	if key == "" {
		return errors.New("consumer key is required")
	}

	if secret == "" {
		cmd.Print("Consumer secret: ")
		secret = strings.TrimSpace(readSecret(cmd, reader))
		cmd.Println()
	}
	if secret == "" {
		return errors.New("consumer secret is required")
	}

	// Keep a previously stored access token pair across key updates.
	existing, err := keyStore.Load()
	if err != nil && !errors.Is(err, domain.ErrNoConsumerKeys) {
		return fmt.Errorf("failed to read existing keys: %w", err)
	}

	keys := domain.Keys{
		ConsumerKey:       key,
		ConsumerSecret:    secret,
		AccessToken:       existing.AccessToken,
		AccessTokenSecret: existing.AccessTokenSecret,
	}
	if err := keyStore.Save(keys); err != nil {
		return fmt.Errorf("failed to save keys: %w", err)
	}

	cmd.Printf("Keys saved to %s\n", keyStore.Path())
	return nil
}

func runKeysShow(cmd *cobra.Command, _ []string) error {
	if keyStore == nil {
		return errors.New("key store not configured")
	}

	keys, err := keyStore.Load()
	if err != nil {
		if errors.Is(err, domain.ErrNoConsumerKeys) {
			cmd.Println("No keys stored.")
			cmd.Println("Add them with: plurk keys set")
			return nil
		}
		return fmt.Errorf("failed to read keys: %w", err)
	}

	cmd.Printf("Key file: %s\n", keyStore.Path())
	cmd.Printf("Consumer key:    %s\n", keys.ConsumerKey)
	cmd.Printf("Consumer secret: %s\n", mask(keys.ConsumerSecret))
	if pair, ok := keys.AccessPair(); ok {
		cmd.Printf("Access token:    %s\n", pair.Token)
		cmd.Printf("Access secret:   %s\n", mask(pair.Secret))
	} else {
		cmd.Println("No access token stored. Run: plurk authorize")
	}
	return nil
}

// readSecret reads a secret without echo when stdin is a terminal.
//
//nolint:errcheck // CLI helper, error ignored for UX
func readSecret(cmd *cobra.Command, reader *bufio.Reader) string {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return string(secret)
		}
	}
	// Fallback to regular input
	input, _ := reader.ReadString('\n')
	return input
}

// mask hides all but the first four characters of a secret.
func mask(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", len(s)-4)
}
