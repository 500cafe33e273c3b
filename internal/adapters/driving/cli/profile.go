package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage stored access-token profiles",
	Long: `List and remove stored access-token profiles.

Profiles hold access tokens for multiple Plurk accounts; create one with
'plurk authorize --save <name>' and use it with 'plurk call --profile <name>'.`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	RunE:  runProfileList,
}

var profileRemoveCmd = &cobra.Command{
	Use:   "remove [profile-id]",
	Short: "Remove a stored profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileRemove,
}

func init() {
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileRemoveCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileList(cmd *cobra.Command, _ []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	profiles, err := profileService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	if len(profiles) == 0 {
		cmd.Println("No stored profiles.")
		cmd.Println("Add one with: plurk authorize --save <name>")
		return nil
	}

	cmd.Println("Stored profiles:")
	cmd.Println()
	for i := range profiles {
		cmd.Printf("  %s\n", profiles[i].ID)
		cmd.Printf("    Name: %s\n", profiles[i].Name)
		cmd.Printf("    Token: %s\n", profiles[i].Token)
		cmd.Printf("    Created: %s\n", profiles[i].CreatedAt.Format(time.RFC3339))
		cmd.Println()
	}
	return nil
}

func runProfileRemove(cmd *cobra.Command, args []string) error {
	if profileService == nil {
		return errors.New("profile service not configured")
	}

	if err := profileService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to remove profile: %w", err)
	}

	cmd.Printf("Removed profile: %s\n", args[0])
	return nil
}
