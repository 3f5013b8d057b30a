// Package cli implements the stepsctl staff console. Every command talks to
// the practice server through the shared SessionManager, so a 401/403 from
// any call wipes the stored access code.
package cli

import (
	"errors"
	"os"

	"github.com/brightsteps/brightsteps/internal/apiclient"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	serverURL       string
	credentialsPath string

	session *apiclient.SessionManager
)

var okLabel = color.New(color.FgGreen)
var warnLabel = color.New(color.FgYellow)
var errorLabel = color.New(color.FgRed)

var rootCmd = &cobra.Command{
	Use:   "stepsctl",
	Short: "BrightSteps staff console",
	Long: `stepsctl is the staff console for a BrightSteps practice server.

Log in once with your staff access code; the code is stored in your user
config directory and sent with every request until you log out.

Examples:
  stepsctl login
  stepsctl clients list
  stepsctl clients intake
  stepsctl therapists list`,
	PersistentPreRunE: initSession,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Practice server URL (overrides the stored one)")
	rootCmd.PersistentFlags().StringVar(&credentialsPath, "credentials", "", "Path to the credentials file")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newClientsCmd())
	rootCmd.AddCommand(newTherapistsCmd())
	rootCmd.AddCommand(newCaregiversCmd())
}

// initSession wires the process-wide SessionManager before any command runs.
func initSession(cmd *cobra.Command, args []string) error {
	path := credentialsPath
	if path == "" {
		defaultPath, err := apiclient.DefaultCredentialPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}
	store := apiclient.NewCredentialStore(path)

	resolvedURL := serverURL
	if resolvedURL == "" {
		storedURL, err := store.ServerURL()
		if err != nil {
			return err
		}
		resolvedURL = storedURL
	}
	if resolvedURL == "" {
		resolvedURL = "http://localhost:8080"
	}

	session = apiclient.NewSessionManager(resolvedURL, store)
	return nil
}

// reportAPIError routes the error through the session manager's auth-failure
// hook and prints whatever comes back.
func reportAPIError(err error) error {
	normalized := session.HandleAuthFailure(err)
	var apiErr *apiclient.APIError
	if errors.As(normalized, &apiErr) && apiErr.IsAuthFailure() {
		errorLabel.Fprintf(os.Stderr, "✗ %s\n", apiErr.Message)
		return errAlreadyReported
	}
	return normalized
}

var errAlreadyReported = errors.New("already reported")

func Execute() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errAlreadyReported) {
			errorLabel.Fprintf(os.Stderr, "✗ %v\n", err)
		}
		os.Exit(1)
	}
}
