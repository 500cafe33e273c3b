package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plurklab/plurk-cli/internal/adapters/driving/console"
	"github.com/plurklab/plurk-cli/internal/core/domain"
)

var callCmd = &cobra.Command{
	Use:   "call [endpoint]",
	Short: "Issue a signed API call",
	Long: `Issue a signed call against a Plurk API endpoint.

Parameters are passed as repeatable key=value flags; file uploads name a
form field and a local path. The response is printed as JSON.

Examples:
  plurk call /APP/Profile/getOwnProfile
  plurk call /APP/Timeline/plurkAdd -d content="hello" -d qualifier=says
  plurk call /APP/Timeline/uploadPicture -f image=./photo.jpg
  plurk call /APP/Profile/getOwnProfile --profile work`,
	Args: cobra.ExactArgs(1),
	RunE: runCall,
}

// Flags for call.
var (
	callData    []string
	callFiles   []string
	callProfile string
)

func init() {
	callCmd.Flags().StringArrayVarP(
		&callData, "data", "d", nil, "Request parameter as key=value (repeatable)")
	callCmd.Flags().StringArrayVarP(
		&callFiles, "file", "f", nil, "File upload as field=path (repeatable)")
	callCmd.Flags().StringVar(
		&callProfile, "profile", "", "Sign with a stored profile instead of the key file token")

	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
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

	ctx := cmd.Context()

	pair, err := resolveTokenPair(cmd, keys)
	if err != nil {
		return err
	}

	data, err := parsePairs(callData, "data")
	if err != nil {
		return err
	}
	files, err := parsePairs(callFiles, "file")
	if err != nil {
		return err
	}

	flow, err := flowFactory(keys, console.NewPrompt(cmd.InOrStdin(), cmd.OutOrStdout()))
	if err != nil {
		return fmt.Errorf("failed to build OAuth flow: %w", err)
	}
	if err := flow.Authorize(ctx, pair); err != nil {
		return fmt.Errorf("authorization failed: %w", err)
	}

	response, err := flow.Call(ctx, args[0], data, files)
	if err != nil {
		return fmt.Errorf("call failed: %w", err)
	}

	encoded, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	cmd.Println(string(encoded))
	return nil
}

// resolveTokenPair picks the token to sign with: a named profile when
// --profile is given, otherwise the key file's stored access token. Nil
// means no token yet and the flow runs interactively.
func resolveTokenPair(cmd *cobra.Command, keys domain.Keys) (*domain.TokenPair, error) {
	if callProfile != "" {
		if profileService == nil {
			return nil, errors.New("profile service not configured")
		}
		profile, err := profileService.GetByName(cmd.Context(), callProfile)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", callProfile, err)
		}
		pair := profile.Pair()
		return &pair, nil
	}

	if pair, ok := keys.AccessPair(); ok {
		return &pair, nil
	}
	return nil, nil
}

// parsePairs splits repeated key=value flags into a map.
func parsePairs(values []string, flag string) (map[string]string, error) {
	if len(values) == 0 {
		return nil, nil
	}
	result := make(map[string]string, len(values))
	for _, v := range values {
		key, value, found := strings.Cut(v, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --%s value %q, expected key=value", flag, v)
		}
		result[key] = value
	}
	return result, nil
}
