package intake

import (
	"context"
	"errors"
	"fmt"

	"github.com/brightsteps/brightsteps/internal/apiclient"
)

var ErrNoTherapyTypes = errors.New("at least one therapy type must be selected")

// Result is the outcome of a successful submission. Warnings carry the
// best-effort failures (therapist assignment, caregiver linkage) that did not
// stop the flow.
type Result struct {
	ClientID uint
	PublicID string
	Warnings []string
}

// Submit runs the three-call pipeline: create client, then optionally assign
// the therapist, then optionally create or link the caregiver.
//
// Only the first call is fatal: its failure returns an error and leaves the
// draft and step cursor intact so the user can retry. Failures of the two
// auxiliary calls are collected as warnings; the client record is the
// success-critical artifact and there is no rollback and no retry for the
// links. On overall success the wizard enters the Submitted state and the
// draft is discarded.
func (w *Wizard) Submit(ctx context.Context) (Result, error) {
	if result := ValidateStep(LastStep, w.draft, w.now()); !result.Valid {
		return Result{}, errors.New("communication step is not valid")
	}
	// The therapy-type set may have been emptied after step 2 passed.
	if len(w.draft.TherapyTypes) == 0 {
		return Result{}, ErrNoTherapyTypes
	}

	created, err := w.api.CreateClient(ctx, BuildCreateClientInput(w.draft))
	if err != nil {
		return Result{}, fmt.Errorf("create client: %w", err)
	}

	result := Result{ClientID: created.ID, PublicID: created.PublicID}

	if w.draft.TherapistID != 0 {
		assignment := buildTherapistAssignment(w.draft)
		if err := w.api.AssignTherapist(ctx, created.ID, assignment); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("client created but therapist assignment failed: %v", err))
		}
	}

	if w.draft.CaregiverAction != CaregiverSkip {
		linkage := buildCaregiverLinkage(w.draft)
		if _, err := w.api.LinkCaregiver(ctx, created.ID, linkage); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("client created but caregiver linkage failed: %v", err))
		}
	}

	w.state = StateSubmitted
	w.reset()
	return result, nil
}

func buildTherapistAssignment(draft *Draft) apiclient.AssignTherapistInput {
	return apiclient.AssignTherapistInput{
		TherapistID: draft.TherapistID,
		Primary:     draft.TherapistPrimary,
	}
}

func buildCaregiverLinkage(draft *Draft) apiclient.LinkCaregiverInput {
	if draft.CaregiverAction == CaregiverExisting {
		return apiclient.LinkCaregiverInput{
			CaregiverID: draft.ExistingCaregiverID,
			Primary:     draft.CaregiverPrimary,
		}
	}
	return apiclient.LinkCaregiverInput{
		FullName:     draft.CaregiverFullName,
		Relationship: draft.CaregiverRelationship,
		Phone:        draft.CaregiverPhone,
		Email:        draft.CaregiverEmail,
		Primary:      draft.CaregiverPrimary,
	}
}
