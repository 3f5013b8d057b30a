package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored access code",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := session.ClearCredential(); err != nil {
				return fmt.Errorf("clear access code: %w", err)
			}
			session.RefreshClient()
			okLabel.Println("✓ Logged out")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the staff profile behind the stored access code",
		RunE: func(cmd *cobra.Command, args []string) error {
			staff, err := session.Client().Me(cmd.Context())
			if err != nil {
				return reportAPIError(err)
			}
			fmt.Printf("%s (%s)\n", staff.FullName, staff.Role)
			return nil
		},
	}
}
