package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the practice server",
		Long: `Validate a staff access code against the practice server and store it.

The code is prompted for when not passed via --code. On success the code is
written to the credentials file and used for every subsequent command.`,
		RunE: runLogin,
	}

	cmd.Flags().String("code", "", "Staff access code")
	return cmd
}

func runLogin(cmd *cobra.Command, args []string) error {
	code, _ := cmd.Flags().GetString("code")
	if code == "" {
		prompted, err := promptLine("Access code: ")
		if err != nil {
			return err
		}
		code = prompted
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("no access code provided")
	}

	result, err := session.Client().Login(cmd.Context(), code)
	if err != nil {
		return reportAPIError(err)
	}

	// Two deliberate steps: persist the credential, then rebuild the shared
	// client so it picks the new code up.
	if err := session.SetCredential(code); err != nil {
		return fmt.Errorf("store access code: %w", err)
	}
	session.RefreshClient()

	if serverURL != "" {
		if err := session.Store().SaveServerURL(serverURL); err != nil {
			return fmt.Errorf("store server URL: %w", err)
		}
	}

	okLabel.Printf("✓ Logged in as %s (%s)\n", result.Staff.FullName, result.Staff.Role)
	return nil
}

func promptLine(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
