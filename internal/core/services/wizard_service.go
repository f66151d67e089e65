package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/srgjo27/tour_wizard/internal/core/domain"
	"github.com/srgjo27/tour_wizard/internal/core/payment"
	"github.com/srgjo27/tour_wizard/internal/core/ports"
	"github.com/srgjo27/tour_wizard/internal/core/summary"
	"github.com/srgjo27/tour_wizard/internal/core/wizard"
)

type State struct {
	SessionID  string              `json:"sessionId"`
	Step       domain.Step         `json:"step"`
	StepName   string              `json:"stepName"`
	TotalSteps int                 `json:"totalSteps"`
	Page       domain.Page         `json:"page"`
	Draft      domain.BookingDraft `json:"draft"`

	MinimumDownPayment int64              `json:"minimumDownPayment"`
	Summary            *summary.ViewModel `json:"summary,omitempty"`
	Transition         *wizard.Transition `json:"transition,omitempty"`
	Change             *wizard.Change     `json:"change,omitempty"`
}

// WizardService runs one request against a session: rehydrate the draft,
// apply the step input or transition, persist the whole record.
type WizardService struct {
	drafts    *DraftStore
	backend   ports.BookingBackend
	receipts  ports.ReceiptUploader
	policy    payment.Policy
	finalizer *payment.Finalizer
	log       *zap.Logger
}

func NewWizardService(
	drafts *DraftStore,
	backend ports.BookingBackend,
	receipts ports.ReceiptUploader,
	policy payment.Policy,
	log *zap.Logger,
) *WizardService {
	if log == nil {
		log = zap.NewNop()
	}
	return &WizardService{
		drafts:    drafts,
		backend:   backend,
		receipts:  receipts,
		policy:    policy,
		finalizer: payment.NewFinalizer(),
		log:       log,
	}
}

// WithFinalizer replaces the reference generator and clock used on submit.
func (s *WizardService) WithFinalizer(f *payment.Finalizer) *WizardService {
	s.finalizer = f
	return s
}

// Start opens a new session for the option chosen upstream of step 1.
func (s *WizardService) Start(ctx context.Context, option domain.BookingOption) (*State, error) {
	if !option.IsValid() {
		return nil, &domain.ValidationError{
			Step:   domain.StepContact,
			Fields: map[string]string{"bookingOption": "Choose package or tour"},
		}
	}

	sessionID := uuid.NewString()
	draft := domain.BookingDraft{
		BookingType: option,
		LastPage:    option.EntryPage(),
		Step:        domain.StepContact,
		Status:      domain.BookingDraftStatus,
	}

	if err := s.drafts.SaveOption(ctx, sessionID, option); err != nil {
		return nil, err
	}
	if err := s.drafts.Save(ctx, sessionID, draft); err != nil {
		return nil, err
	}

	s.log.Info("wizard session started",
		zap.String("session_id", sessionID),
		zap.String("booking_option", string(option)),
	)

	return s.state(sessionID, s.sequencer(&draft)), nil
}

func (s *WizardService) State(ctx context.Context, sessionID string) (*State, error) {
	return s.run(ctx, sessionID, false, func(seq *wizard.Sequencer, st *State) error {
		return nil
	})
}

func (s *WizardService) UpdateContact(ctx context.Context, sessionID string, in wizard.ContactInput) (*State, error) {
	return s.run(ctx, sessionID, true, func(seq *wizard.Sequencer, st *State) error {
		change, err := seq.ApplyContact(in)
		st.Change = &change
		return err
	})
}

func (s *WizardService) UpdateServices(ctx context.Context, sessionID string, in wizard.ServicesInput) (*State, error) {
	return s.run(ctx, sessionID, true, func(seq *wizard.Sequencer, st *State) error {
		change, err := seq.ApplyServices(in)
		st.Change = &change
		return err
	})
}

func (s *WizardService) ChoosePaymentPlan(ctx context.Context, sessionID string, in wizard.PaymentPlanInput) (*State, error) {
	return s.run(ctx, sessionID, true, func(seq *wizard.Sequencer, st *State) error {
		change, err := seq.ApplyPaymentPlan(in)
		st.Change = &change
		return err
	})
}

func (s *WizardService) ChoosePaymentMethod(ctx context.Context, sessionID string, in wizard.PaymentMethodInput) (*State, error) {
	return s.run(ctx, sessionID, true, func(seq *wizard.Sequencer, st *State) error {
		return seq.ApplyPaymentMethod(in)
	})
}

func (s *WizardService) UploadReceipt(ctx context.Context, sessionID, filename string, r io.Reader) (*State, error) {
	return s.run(ctx, sessionID, true, func(seq *wizard.Sequencer, st *State) error {
		present, err := s.receipts.UploadReceipt(ctx, sessionID, filename, r)
		if err != nil {
			return fmt.Errorf("upload receipt: %w", err)
		}
		if !present {
			// An empty upload does not replace a receipt already on file.
			if present, err = s.receipts.ReceiptConfirmed(ctx, sessionID); err != nil {
				return fmt.Errorf("check receipt: %w", err)
			}
		}
		return seq.SetReceiptPresent(present)
	})
}

func (s *WizardService) Advance(ctx context.Context, sessionID string) (*State, error) {
	return s.run(ctx, sessionID, true, func(seq *wizard.Sequencer, st *State) error {
		t, err := seq.Advance()
		if err != nil {
			s.logRejected(sessionID, seq.Current(), err)
			return err
		}
		st.Transition = &t
		s.log.Info("wizard advanced",
			zap.String("session_id", sessionID),
			zap.Stringer("from_step", t.From),
			zap.Stringer("to_step", t.To),
		)
		return nil
	})
}

func (s *WizardService) Retreat(ctx context.Context, sessionID string) (*State, error) {
	return s.run(ctx, sessionID, true, func(seq *wizard.Sequencer, st *State) error {
		t, err := seq.Retreat()
		if err != nil {
			return err
		}
		st.Transition = &t
		s.log.Info("wizard retreated",
			zap.String("session_id", sessionID),
			zap.Stringer("from_step", t.From),
			zap.Stringer("to_step", t.To),
			zap.String("page", string(t.Page)),
		)
		return nil
	})
}

// Submit finalizes the draft once the receipt collaborator confirms a
// receipt, then hands it to the booking backend. A backend failure leaves
// the stored draft unsubmitted.
func (s *WizardService) Submit(ctx context.Context, sessionID string) (*State, error) {
	return s.run(ctx, sessionID, false, func(seq *wizard.Sequencer, st *State) error {
		confirmed, err := s.receipts.ReceiptConfirmed(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("check receipt: %w", err)
		}

		if err := seq.Finalize(confirmed); err != nil {
			return err
		}

		if err := s.backend.SubmitBooking(ctx, *seq.Draft()); err != nil {
			s.log.Error("booking submission failed",
				zap.String("session_id", sessionID),
				zap.Error(err),
			)
			return fmt.Errorf("%w: %v", domain.ErrBackendRejected, err)
		}

		s.log.Info("booking submitted",
			zap.String("session_id", sessionID),
			zap.String("reference", seq.Draft().Reference),
			zap.Int64("grand_total", seq.Draft().Amounts.GrandTotal),
		)

		if err := s.drafts.Save(ctx, sessionID, *seq.Draft()); err != nil {
			s.log.Error("booking submitted but draft not saved",
				zap.String("session_id", sessionID),
				zap.String("reference", seq.Draft().Reference),
				zap.Error(err),
			)
			return err
		}
		return nil
	})
}

func (s *WizardService) Reset(ctx context.Context, sessionID string) error {
	if _, err := uuid.Parse(sessionID); err != nil {
		return domain.ErrNoSession
	}
	if err := s.drafts.Clear(ctx, sessionID); err != nil {
		return err
	}
	s.log.Info("wizard session reset", zap.String("session_id", sessionID))
	return nil
}

// run loads the draft, applies fn and, when persist is set and fn succeeds,
// saves the whole draft back. Failed calls leave the stored draft as it was.
// A session with neither a draft nor a booking option is unknown or expired.
func (s *WizardService) run(ctx context.Context, sessionID string, persist bool, fn func(*wizard.Sequencer, *State) error) (*State, error) {
	if _, err := uuid.Parse(sessionID); err != nil {
		return nil, domain.ErrNoSession
	}

	exists, err := s.drafts.Exists(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNoSession
	}

	draft, err := s.drafts.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	seq := s.sequencer(&draft)
	st := s.state(sessionID, seq)

	if err := fn(seq, st); err != nil {
		return nil, err
	}

	if persist {
		if err := s.drafts.Save(ctx, sessionID, *seq.Draft()); err != nil {
			return nil, err
		}
	}

	s.fill(st, seq)
	return st, nil
}

func (s *WizardService) sequencer(d *domain.BookingDraft) *wizard.Sequencer {
	return wizard.NewSequencer(d, wizard.WithPolicy(s.policy), wizard.WithFinalizer(s.finalizer))
}

func (s *WizardService) state(sessionID string, seq *wizard.Sequencer) *State {
	st := &State{SessionID: sessionID, TotalSteps: domain.TotalSteps}
	s.fill(st, seq)
	return st
}

func (s *WizardService) fill(st *State, seq *wizard.Sequencer) {
	st.Step = seq.Current()
	st.StepName = seq.Current().String()
	st.Page = seq.Page()
	st.Draft = *seq.Draft()
	st.MinimumDownPayment = seq.MinimumDownPayment()
	st.Summary = nil
	if seq.Current() >= domain.StepSummary {
		vm := seq.Summary()
		st.Summary = &vm
	}
}

func (s *WizardService) logRejected(sessionID string, step domain.Step, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		s.log.Debug("wizard transition rejected",
			zap.String("session_id", sessionID),
			zap.Stringer("step", step),
			zap.Int("field_errors", len(verr.Fields)),
			zap.Bool("invariant", verr.Invariant),
		)
		return
	}
	s.log.Debug("wizard transition rejected",
		zap.String("session_id", sessionID),
		zap.Stringer("step", step),
		zap.Error(err),
	)
}
