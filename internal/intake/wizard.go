package intake

import (
	"context"
	"fmt"
	"time"

	"github.com/brightsteps/brightsteps/internal/apiclient"
)

// PracticeAPI is the slice of the practice server the wizard needs. The
// apiclient.Client satisfies it; tests substitute stubs.
type PracticeAPI interface {
	CreateClient(ctx context.Context, input apiclient.CreateClientInput) (apiclient.ClientRecord, error)
	AssignTherapist(ctx context.Context, clientID uint, input apiclient.AssignTherapistInput) error
	LinkCaregiver(ctx context.Context, clientID uint, input apiclient.LinkCaregiverInput) (apiclient.CaregiverRecord, error)
	ListTherapists(ctx context.Context) ([]apiclient.TherapistRecord, error)
	ListCaregivers(ctx context.Context) ([]apiclient.CaregiverRecord, error)
}

var _ PracticeAPI = (*apiclient.Client)(nil)

type State string

const (
	StateEditing   State = "editing"
	StateSubmitted State = "submitted"
	StateCancelled State = "cancelled"
)

// Wizard drives one intake run: a draft, a step cursor in [1, 7], and the
// reference lists fetched when the wizard opens.
type Wizard struct {
	api   PracticeAPI
	now   func() time.Time
	draft *Draft
	step  int
	state State

	Therapists []apiclient.TherapistRecord
	Caregivers []apiclient.CaregiverRecord
}

// Option configures a Wizard; used by tests to pin the clock.
type Option func(*Wizard)

func WithClock(now func() time.Time) Option {
	return func(w *Wizard) {
		w.now = now
	}
}

func NewWizard(api PracticeAPI, opts ...Option) *Wizard {
	wizard := &Wizard{
		api:   api,
		now:   time.Now,
		draft: NewDraft(),
		step:  FirstStep,
		state: StateEditing,
	}
	for _, opt := range opts {
		opt(wizard)
	}
	return wizard
}

// Open fetches the therapist and caregiver reference lists. Both must load
// before the wizard is usable; they populate disjoint state, so order does
// not matter, but a failure of either aborts the open.
func (w *Wizard) Open(ctx context.Context) error {
	therapists, err := w.api.ListTherapists(ctx)
	if err != nil {
		return fmt.Errorf("load therapists: %w", err)
	}
	caregivers, err := w.api.ListCaregivers(ctx)
	if err != nil {
		return fmt.Errorf("load caregivers: %w", err)
	}
	w.Therapists = therapists
	w.Caregivers = caregivers
	return nil
}

func (w *Wizard) Draft() *Draft {
	return w.draft
}

func (w *Wizard) Step() int {
	return w.step
}

func (w *Wizard) State() State {
	return w.state
}

func (w *Wizard) OnLastStep() bool {
	return w.step == LastStep
}

// Next validates the current step and advances only when it passes. The
// cursor and draft are untouched on a failed validation.
func (w *Wizard) Next() StepResult {
	result := ValidateStep(w.step, w.draft, w.now())
	if !result.Valid {
		return result
	}
	if w.step < LastStep {
		w.step++
	}
	return result
}

// Prev moves backward without validation and never goes below step 1.
func (w *Wizard) Prev() {
	if w.step > FirstStep {
		w.step--
	}
}

// Cancel discards the draft without any network call.
func (w *Wizard) Cancel() {
	w.state = StateCancelled
	w.reset()
}

func (w *Wizard) reset() {
	w.draft = NewDraft()
	w.step = FirstStep
}
