package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "Client records",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := session.Client().ListClients(cmd.Context())
			if err != nil {
				return reportAPIError(err)
			}
			if len(clients) == 0 {
				fmt.Println("no clients yet")
				return nil
			}
			for _, client := range clients {
				fmt.Printf("%4d  %-25s %-9s %s\n",
					client.ID,
					client.LastName+", "+client.FirstName,
					client.Status,
					client.TherapyTypes,
				)
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "intake",
		Short: "Enroll a new client through the step-by-step intake",
		RunE:  runIntake,
	})
	return cmd
}
