package wizard

import (
	"github.com/srgjo27/tour_wizard/internal/core/domain"
	"github.com/srgjo27/tour_wizard/internal/core/payment"
	"github.com/srgjo27/tour_wizard/internal/core/pricing"
	"github.com/srgjo27/tour_wizard/internal/core/summary"
	"github.com/srgjo27/tour_wizard/internal/core/validation"
)

// Transition describes the outcome of a successful advance or retreat.
type Transition struct {
	From domain.Step `json:"from"`
	To   domain.Step `json:"to"`
	Page domain.Page `json:"page"`

	InlandCleared      bool               `json:"inlandCleared,omitempty"`
	MinimumDownPayment int64              `json:"minimumDownPayment,omitempty"`
	Summary            *summary.ViewModel `json:"summary,omitempty"`
}

// Sequencer is the step state machine for one draft. It owns the draft it
// was built with; callers persist the draft after each successful call.
type Sequencer struct {
	draft     *domain.BookingDraft
	validator *validation.Validator
	policy    payment.Policy
	finalizer *payment.Finalizer
}

type Option func(*Sequencer)

func WithPolicy(p payment.Policy) Option {
	return func(s *Sequencer) {
		s.policy = p
		s.validator = validation.New(p)
	}
}

func WithFinalizer(f *payment.Finalizer) Option {
	return func(s *Sequencer) {
		s.finalizer = f
	}
}

// NewSequencer resumes d at the step it was left on. Derived amounts are
// recomputed unless the draft is already submitted.
func NewSequencer(d *domain.BookingDraft, opts ...Option) *Sequencer {
	s := &Sequencer{
		draft:     d,
		validator: validation.New(payment.DefaultPolicy),
		policy:    payment.DefaultPolicy,
		finalizer: payment.NewFinalizer(),
	}
	for _, opt := range opts {
		opt(s)
	}

	d.Step = ResumeStep(*d)
	if d.Status == "" {
		d.Status = domain.BookingDraftStatus
	}
	if !d.IsSubmitted() {
		s.refresh()
	}
	return s
}

// ResumeStep picks the step a rehydrated draft continues from. An explicit
// step pointer wins; a draft handed off by an entry page without one resumes
// at the summary; anything else starts over.
func ResumeStep(d domain.BookingDraft) domain.Step {
	if d.Step.IsValid() {
		return d.Step
	}
	if d.IsSubmitted() {
		return domain.StepConfirmation
	}
	if (d.LastPage == domain.PagePackage || d.LastPage == domain.PageTour) && d.HasService() {
		return domain.StepSummary
	}
	return domain.StepContact
}

func (s *Sequencer) Draft() *domain.BookingDraft {
	return s.draft
}

func (s *Sequencer) Current() domain.Step {
	return s.draft.Step
}

func (s *Sequencer) Page() domain.Page {
	return s.draft.Step.Page(s.draft.BookingType)
}

// Validate runs the current step's validator without moving.
func (s *Sequencer) Validate() validation.Result {
	return s.validator.Validate(s.draft.Step, *s.draft)
}

// Advance gates on the current step's validator. On failure the draft is
// left untouched and a *domain.ValidationError is returned.
func (s *Sequencer) Advance() (Transition, error) {
	from := s.draft.Step
	if from == domain.StepConfirmation {
		return Transition{}, domain.ErrTerminalStep
	}

	if err := s.validator.Validate(from, *s.draft).Err(from); err != nil {
		return Transition{}, err
	}

	if from == domain.StepServices {
		s.draft.LastPage = s.entryPage()
	}

	to := from + 1
	s.draft.Step = to
	t := Transition{From: from, To: to, Page: s.Page()}
	s.enter(&t)
	return t, nil
}

// Retreat moves one step back. Leaving the summary goes back to the entry
// page recorded on the draft.
func (s *Sequencer) Retreat() (Transition, error) {
	from := s.draft.Step
	if from == domain.StepContact {
		return Transition{}, domain.ErrFirstStep
	}
	if s.draft.IsSubmitted() {
		return Transition{}, domain.ErrAlreadySubmitted
	}

	to := from - 1
	s.draft.Step = to
	t := Transition{From: from, To: to, Page: s.Page()}
	if from == domain.StepSummary {
		t.Page = s.entryPage()
	}
	t.InlandCleared = s.refresh()
	return t, nil
}

// Finalize submits the draft when the receipt has been confirmed. It is not
// a step transition; the review step only completes afterwards. Every step
// before the receipt is validated again so a draft edited after passing a
// step cannot be submitted.
func (s *Sequencer) Finalize(receiptConfirmed bool) error {
	if s.draft.Step < domain.StepReceipt {
		return &domain.ValidationError{
			Step:   s.draft.Step,
			Fields: map[string]string{"step": "Complete the payment steps before submitting"},
		}
	}

	if s.draft.IsSubmitted() {
		return domain.ErrAlreadySubmitted
	}
	if !receiptConfirmed {
		return domain.ErrReceiptMissing
	}
	for step := domain.StepContact; step < domain.StepReceipt; step++ {
		if err := s.validator.Validate(step, *s.draft).Err(step); err != nil {
			return err
		}
	}

	finalized, err := s.finalizer.Finalize(*s.draft, receiptConfirmed)
	if err != nil {
		return err
	}
	*s.draft = finalized
	return nil
}

func (s *Sequencer) MinimumDownPayment() int64 {
	return s.policy.MinimumDownPayment(*s.draft)
}

func (s *Sequencer) Summary() summary.ViewModel {
	return summary.Project(*s.draft)
}

func (s *Sequencer) enter(t *Transition) {
	t.InlandCleared = s.refresh()

	switch t.To {
	case domain.StepSummary:
		vm := summary.Project(*s.draft)
		t.Summary = &vm
	case domain.StepPaymentPlan:
		t.MinimumDownPayment = s.policy.MinimumDownPayment(*s.draft)
	}
}

// refresh re-derives every computed field.
func (s *Sequencer) refresh() bool {
	cleared := pricing.Recompute(s.draft)
	s.draft.RemainingBalance = s.policy.RemainingBalance(*s.draft)
	return cleared
}

func (s *Sequencer) entryPage() domain.Page {
	if s.draft.LastPage == domain.PagePackage || s.draft.LastPage == domain.PageTour {
		return s.draft.LastPage
	}
	return s.draft.BookingType.EntryPage()
}
