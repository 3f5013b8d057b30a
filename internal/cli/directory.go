package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTherapistsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "therapists",
		Short: "Therapist directory",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List therapists",
		RunE: func(cmd *cobra.Command, args []string) error {
			therapists, err := session.Client().ListTherapists(cmd.Context())
			if err != nil {
				return reportAPIError(err)
			}
			if len(therapists) == 0 {
				fmt.Println("no therapists in the directory")
				return nil
			}
			for _, therapist := range therapists {
				fmt.Printf("%4d  %-30s %s\n", therapist.ID, therapist.FullName, therapist.Specialty)
			}
			return nil
		},
	})
	return cmd
}

func newCaregiversCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "caregivers",
		Short: "Parent and caregiver directory",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List caregivers",
		RunE: func(cmd *cobra.Command, args []string) error {
			caregivers, err := session.Client().ListCaregivers(cmd.Context())
			if err != nil {
				return reportAPIError(err)
			}
			if len(caregivers) == 0 {
				fmt.Println("no caregivers in the directory")
				return nil
			}
			for _, caregiver := range caregivers {
				fmt.Printf("%4d  %-30s %s\n", caregiver.ID, caregiver.FullName, caregiver.Relationship)
			}
			return nil
		},
	})
	return cmd
}
