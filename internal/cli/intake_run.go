package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/brightsteps/brightsteps/internal/intake"
	"github.com/spf13/cobra"
)

// runIntake drives the seven-step wizard over stdin. Each pass prompts the
// fields of the current step, then asks for next/back/cancel; validation
// failures keep the cursor where it is.
func runIntake(cmd *cobra.Command, args []string) error {
	wizard := intake.NewWizard(session.Client())
	if err := wizard.Open(cmd.Context()); err != nil {
		return reportAPIError(err)
	}

	reader := bufio.NewReader(os.Stdin)

	for wizard.State() == intake.StateEditing {
		step := wizard.Step()
		fmt.Printf("\n── Step %d/%d · %s ──\n", step, intake.LastStep, intake.StepTitle(step))

		if err := promptStepFields(reader, wizard); err != nil {
			return err
		}

		action, err := promptAction(reader, wizard.OnLastStep())
		if err != nil {
			return err
		}

		switch action {
		case "back":
			wizard.Prev()
		case "cancel":
			wizard.Cancel()
			warnLabel.Println("intake cancelled, nothing was saved")
		case "next":
			if result := wizard.Next(); !result.Valid {
				printFieldErrors(result)
			}
		case "submit":
			result, err := wizard.Submit(cmd.Context())
			if err != nil {
				errorLabel.Fprintf(os.Stderr, "✗ submission failed: %v\n", err)
				errorLabel.Fprintln(os.Stderr, "  your entries are kept, fix the problem and submit again")
				continue
			}
			for _, warning := range result.Warnings {
				warnLabel.Printf("⚠ %s\n", warning)
			}
			okLabel.Printf("✓ Client enrolled (id %d)\n", result.ClientID)
		}
	}

	return nil
}

func promptStepFields(reader *bufio.Reader, wizard *intake.Wizard) error {
	draft := wizard.Draft()

	switch wizard.Step() {
	case intake.StepBasicInfo:
		return promptBasicInfo(reader, draft)
	case intake.StepTherapyTypes:
		return promptTherapyTypes(reader, draft)
	case intake.StepTherapist:
		return promptTherapist(reader, wizard, draft)
	case intake.StepCaregiver:
		return promptCaregiver(reader, wizard, draft)
	case intake.StepSensoryProfile:
		return promptSensoryProfile(reader, draft)
	case intake.StepPreferences:
		return promptPreferences(reader, draft)
	case intake.StepCommunication:
		return promptCommunication(reader, draft)
	default:
		return fmt.Errorf("unknown step %d", wizard.Step())
	}
}

func promptBasicInfo(reader *bufio.Reader, draft *intake.Draft) error {
	var err error
	if draft.FirstName, err = ask(reader, "First name", draft.FirstName); err != nil {
		return err
	}
	if draft.LastName, err = ask(reader, "Last name", draft.LastName); err != nil {
		return err
	}

	dob, err := askDate(reader, "Date of birth (YYYY-MM-DD)", draft.DateOfBirth)
	if err != nil {
		return err
	}
	draft.DateOfBirth = dob
	if dob != nil {
		fmt.Printf("  age: %d\n", intake.AgeInYears(*dob, time.Now()))
	}

	start, err := askDate(reader, "Therapy start date (YYYY-MM-DD)", draft.TherapyStart)
	if err != nil {
		return err
	}
	draft.TherapyStart = start
	return nil
}

func joinTherapyTypes(draft *intake.Draft) string {
	names := make([]string, 0, len(draft.TherapyTypes))
	for _, therapyType := range draft.TherapyTypes {
		names = append(names, string(therapyType))
	}
	return strings.Join(names, ", ")
}

func promptTherapyTypes(reader *bufio.Reader, draft *intake.Draft) error {
	fmt.Println("therapy types: aba, speech, ot (comma separated)")
	raw, err := ask(reader, "Selection", joinTherapyTypes(draft))
	if err != nil {
		return err
	}

	draft.TherapyTypes = draft.TherapyTypes[:0]
	for _, token := range intake.SplitList(raw) {
		switch strings.ToLower(token) {
		case string(intake.TherapyABA):
			draft.ToggleTherapyType(intake.TherapyABA)
		case string(intake.TherapySpeech):
			draft.ToggleTherapyType(intake.TherapySpeech)
		case string(intake.TherapyOT):
			draft.ToggleTherapyType(intake.TherapyOT)
		default:
			warnLabel.Printf("ignoring unknown therapy type %q\n", token)
		}
	}
	return nil
}

func promptTherapist(reader *bufio.Reader, wizard *intake.Wizard, draft *intake.Draft) error {
	if len(wizard.Therapists) == 0 {
		fmt.Println("no therapists in the directory, skipping assignment")
		draft.TherapistID = 0
		return nil
	}

	fmt.Println("available therapists (empty to skip):")
	for _, therapist := range wizard.Therapists {
		fmt.Printf("  %4d  %-30s %s\n", therapist.ID, therapist.FullName, therapist.Specialty)
	}

	id, err := askOptionalID(reader, "Therapist id")
	if err != nil {
		return err
	}
	draft.TherapistID = id
	if id != 0 {
		primary, err := askYesNo(reader, "Mark as primary therapist?")
		if err != nil {
			return err
		}
		draft.TherapistPrimary = primary
	}
	return nil
}

func promptCaregiver(reader *bufio.Reader, wizard *intake.Wizard, draft *intake.Draft) error {
	choice, err := ask(reader, "Caregiver: link [e]xisting, create [n]ew, or [s]kip", "s")
	if err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(choice)) {
	case "e", "existing":
		draft.CaregiverAction = intake.CaregiverExisting
		if len(wizard.Caregivers) == 0 {
			fmt.Println("the caregiver directory is empty")
		}
		for _, caregiver := range wizard.Caregivers {
			fmt.Printf("  %4d  %-30s %s\n", caregiver.ID, caregiver.FullName, caregiver.Relationship)
		}
		id, err := askOptionalID(reader, "Caregiver id")
		if err != nil {
			return err
		}
		draft.ExistingCaregiverID = id
	case "n", "new":
		draft.CaregiverAction = intake.CaregiverNew
		if draft.CaregiverFullName, err = ask(reader, "Caregiver full name", draft.CaregiverFullName); err != nil {
			return err
		}
		if draft.CaregiverRelationship, err = ask(reader, "Relationship (mother, father, guardian...)", draft.CaregiverRelationship); err != nil {
			return err
		}
		if draft.CaregiverPhone, err = ask(reader, "Phone (optional)", draft.CaregiverPhone); err != nil {
			return err
		}
		if draft.CaregiverEmail, err = ask(reader, "Email (optional)", draft.CaregiverEmail); err != nil {
			return err
		}
	default:
		draft.CaregiverAction = intake.CaregiverSkip
		return nil
	}

	primary, err := askYesNo(reader, "Mark as primary caregiver?")
	if err != nil {
		return err
	}
	draft.CaregiverPrimary = primary
	return nil
}

func promptSensoryProfile(reader *bufio.Reader, draft *intake.Draft) error {
	fmt.Println("sensory observations, all optional:")
	var err error
	if draft.Sensory.Visual, err = ask(reader, "Visual", draft.Sensory.Visual); err != nil {
		return err
	}
	if draft.Sensory.Auditory, err = ask(reader, "Auditory", draft.Sensory.Auditory); err != nil {
		return err
	}
	if draft.Sensory.Tactile, err = ask(reader, "Tactile", draft.Sensory.Tactile); err != nil {
		return err
	}
	if draft.Sensory.Vestibular, err = ask(reader, "Vestibular", draft.Sensory.Vestibular); err != nil {
		return err
	}
	if draft.Sensory.Oral, err = ask(reader, "Oral", draft.Sensory.Oral); err != nil {
		return err
	}
	return nil
}

func promptPreferences(reader *bufio.Reader, draft *intake.Draft) error {
	var err error
	if draft.Preferences, err = ask(reader, "Preferences (comma separated)", draft.Preferences); err != nil {
		return err
	}
	draft.Dislikes, err = ask(reader, "Dislikes (comma separated)", draft.Dislikes)
	return err
}

func promptCommunication(reader *bufio.Reader, draft *intake.Draft) error {
	var err error
	draft.CommunicationNotes, err = ask(reader, "Communication notes", draft.CommunicationNotes)
	return err
}

func promptAction(reader *bufio.Reader, lastStep bool) (string, error) {
	label := "[n]ext, [b]ack, [c]ancel"
	if lastStep {
		label = "[s]ubmit, [b]ack, [c]ancel"
	}
	raw, err := ask(reader, label, "")
	if err != nil {
		return "", err
	}

	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "b", "back":
		return "back", nil
	case "c", "cancel":
		return "cancel", nil
	case "s", "submit":
		if lastStep {
			return "submit", nil
		}
		return "next", nil
	default:
		if lastStep {
			return "submit", nil
		}
		return "next", nil
	}
}

func printFieldErrors(result intake.StepResult) {
	for field, message := range result.FieldErrors {
		errorLabel.Fprintf(os.Stderr, "✗ %s: %s\n", field, message)
	}
}

func ask(reader *bufio.Reader, label string, current string) (string, error) {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return current, nil
	}
	return trimmed, nil
}

// askDate re-prompts on malformed input; it does not enforce the future-date
// rule, the step validator owns that.
func askDate(reader *bufio.Reader, label string, current *time.Time) (*time.Time, error) {
	currentText := ""
	if current != nil {
		currentText = current.Format("2006-01-02")
	}
	for {
		raw, err := ask(reader, label, currentText)
		if err != nil {
			return nil, err
		}
		if raw == "" {
			return current, nil
		}
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			warnLabel.Println("expected YYYY-MM-DD")
			continue
		}
		return &parsed, nil
	}
}

func askOptionalID(reader *bufio.Reader, label string) (uint, error) {
	raw, err := ask(reader, label, "")
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		warnLabel.Println("not a valid id, skipping")
		return 0, nil
	}
	return uint(value), nil
}

func askYesNo(reader *bufio.Reader, label string) (bool, error) {
	raw, err := ask(reader, label+" [y/N]", "")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
