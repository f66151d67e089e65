package wizard_test

import (
	"errors"
	"testing"
	"time"

	"github.com/srgjo27/tour_wizard/internal/core/domain"
	"github.com/srgjo27/tour_wizard/internal/core/payment"
	"github.com/srgjo27/tour_wizard/internal/core/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func contactInput(tourists int) wizard.ContactInput {
	return wizard.ContactInput{
		FirstName:     ptr(" Maria "),
		LastName:      ptr("Santos"),
		Email:         ptr("maria.santos@example.com"),
		ContactNumber: ptr("0917-123-4567"),
		ArrivalDate:   ptr("2025-03-01"),
		DepartureDate: ptr("2025-03-03"),
		TouristCount:  ptr(tourists),
	}
}

func servicesInput(tours domain.TourSelections) wizard.ServicesInput {
	return wizard.ServicesInput{
		Tours:    &tours,
		Vehicles: &wizard.VehicleInput{},
		Van:      &domain.VanRental{},
		Diving:   &wizard.DivingInput{},
		Hotel:    &wizard.HotelInput{},
	}
}

func testFinalizer() *payment.Finalizer {
	return &payment.Finalizer{
		Now:          func() time.Time { return time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC) },
		NewReference: func(time.Time) string { return "BK-20250301-0000CAFE" },
	}
}

func newTourDraft() *domain.BookingDraft {
	return &domain.BookingDraft{
		BookingType: domain.OptionTour,
		LastPage:    domain.PageTour,
		Step:        domain.StepContact,
	}
}

func TestSequencer_FullWalk(t *testing.T) {
	d := newTourDraft()
	seq := wizard.NewSequencer(d, wizard.WithFinalizer(testFinalizer()))
	assert.Equal(t, domain.PageTour, seq.Page())

	_, err := seq.ApplyContact(contactInput(3))
	require.NoError(t, err)
	assert.Equal(t, "Maria", d.FirstName)
	assert.Equal(t, "09171234567", d.ContactNumber)

	tr, err := seq.Advance()
	require.NoError(t, err)
	assert.Equal(t, domain.StepServices, tr.To)
	assert.Equal(t, domain.PageTour, tr.Page)

	_, err = seq.ApplyServices(servicesInput(domain.TourSelections{Island: []string{"big-lagoon"}}))
	require.NoError(t, err)

	tr, err = seq.Advance()
	require.NoError(t, err)
	assert.Equal(t, domain.StepSummary, tr.To)
	assert.Equal(t, domain.PageCheckout, tr.Page)
	require.NotNil(t, tr.Summary)
	assert.Equal(t, "₱3,000.00", tr.Summary.GrandTotalLabel)
	assert.Equal(t, int64(3000), d.Amounts.GrandTotal)

	tr, err = seq.Advance()
	require.NoError(t, err)
	assert.Equal(t, domain.StepPaymentPlan, tr.To)
	assert.Equal(t, int64(1500), tr.MinimumDownPayment)

	_, err = seq.ApplyPaymentPlan(wizard.PaymentPlanInput{Plan: ptr(domain.PlanDown), DownPayment: ptr(int64(1000))})
	require.NoError(t, err)
	_, err = seq.Advance()
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.StepPaymentPlan, seq.Current())

	_, err = seq.ApplyPaymentPlan(wizard.PaymentPlanInput{Plan: ptr(domain.PlanDown), DownPayment: ptr(int64(1500))})
	require.NoError(t, err)
	assert.Equal(t, int64(1500), d.RemainingBalance)
	_, err = seq.Advance()
	require.NoError(t, err)

	require.NoError(t, seq.ApplyPaymentMethod(wizard.PaymentMethodInput{Method: ptr(domain.MethodGCash)}))
	_, err = seq.Advance()
	require.NoError(t, err)
	assert.Equal(t, domain.StepReceipt, seq.Current())

	_, err = seq.Advance()
	assert.ErrorIs(t, err, domain.ErrValidation)

	require.NoError(t, seq.SetReceiptPresent(true))
	_, err = seq.Advance()
	require.NoError(t, err)
	assert.Equal(t, domain.StepReview, seq.Current())

	_, err = seq.Advance()
	assert.ErrorIs(t, err, domain.ErrValidation, "review completes only after submit")

	require.NoError(t, seq.Finalize(true))
	assert.Equal(t, "BK-20250301-0000CAFE", d.Reference)
	assert.True(t, d.IsSubmitted())

	tr, err = seq.Advance()
	require.NoError(t, err)
	assert.Equal(t, domain.StepConfirmation, tr.To)

	_, err = seq.Advance()
	assert.ErrorIs(t, err, domain.ErrTerminalStep)

	_, err = seq.Retreat()
	assert.ErrorIs(t, err, domain.ErrAlreadySubmitted)

	_, err = seq.ApplyContact(contactInput(2))
	assert.ErrorIs(t, err, domain.ErrAlreadySubmitted)
}

func TestSequencer_AdvanceFailureLeavesDraftUntouched(t *testing.T) {
	d := newTourDraft()
	d.FirstName = "Maria"
	seq := wizard.NewSequencer(d)
	before := *d

	_, err := seq.Advance()

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, domain.StepContact, verr.Step)
	assert.Contains(t, verr.Fields, "email")
	assert.Equal(t, before, *d)
}

func TestSequencer_RetreatFromSummaryReturnsToEntryPage(t *testing.T) {
	d := &domain.BookingDraft{
		BookingType:  domain.OptionPackage,
		Step:         domain.StepSummary,
		TouristCount: 2,
		Vehicles:     []string{"vios"},
		RentalDays:   1,
	}
	seq := wizard.NewSequencer(d)

	tr, err := seq.Retreat()

	require.NoError(t, err)
	assert.Equal(t, domain.StepServices, tr.To)
	assert.Equal(t, domain.PagePackage, tr.Page)

	tr, err = seq.Retreat()
	require.NoError(t, err)
	assert.Equal(t, domain.StepContact, tr.To)

	_, err = seq.Retreat()
	assert.ErrorIs(t, err, domain.ErrFirstStep)
}

func TestSequencer_LeavingServicesRecordsLastPage(t *testing.T) {
	d := &domain.BookingDraft{
		BookingType:  domain.OptionPackage,
		Step:         domain.StepServices,
		TouristCount: 1,
		Diving:       true,
		DiverCount:   1,
	}
	seq := wizard.NewSequencer(d)

	_, err := seq.Advance()

	require.NoError(t, err)
	assert.Equal(t, domain.PagePackage, d.LastPage)
	assert.Equal(t, int64(3500), d.Amounts.GrandTotal)
}

func TestSequencer_FewerTouristsClearsInland(t *testing.T) {
	d := newTourDraft()
	seq := wizard.NewSequencer(d)

	_, err := seq.ApplyContact(contactInput(2))
	require.NoError(t, err)
	_, err = seq.Advance()
	require.NoError(t, err)

	change, err := seq.ApplyServices(servicesInput(domain.TourSelections{
		Island: []string{"big-lagoon"},
		Inland: []string{"nacpan-beach", "nacpan-beach"},
	}))
	require.NoError(t, err)
	assert.False(t, change.InlandCleared)
	assert.Equal(t, []string{"nacpan-beach"}, d.Tours.Inland)
	assert.Equal(t, int64(3200+3000), d.Amounts.Package)

	_, err = seq.Retreat()
	require.NoError(t, err)

	change, err = seq.ApplyContact(contactInput(1))
	require.NoError(t, err)
	assert.True(t, change.InlandCleared)
	assert.Empty(t, d.Tours.Inland)
	assert.Equal(t, int64(3000), d.Amounts.GrandTotal)
}

func TestSequencer_FinalizeBeforeReceiptStep(t *testing.T) {
	d := newTourDraft()
	d.Step = domain.StepPaymentMethod
	seq := wizard.NewSequencer(d)

	err := seq.Finalize(true)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.False(t, d.IsSubmitted())
}

func TestSequencer_FinalizeWithoutReceipt(t *testing.T) {
	d := newTourDraft()
	d.Step = domain.StepReview
	seq := wizard.NewSequencer(d, wizard.WithFinalizer(testFinalizer()))

	err := seq.Finalize(false)

	assert.ErrorIs(t, err, domain.ErrReceiptMissing)
	assert.Empty(t, d.Reference)
}

func TestSequencer_WithPolicy(t *testing.T) {
	d := newTourDraft()
	d.Step = domain.StepPaymentPlan
	d.TouristCount = 1
	d.PaymentPlan = domain.PlanDown
	d.DownPayment = 800
	d.Vehicles = []string{"vios"}
	d.RentalDays = 1
	seq := wizard.NewSequencer(d, wizard.WithPolicy(payment.Policy{PerTourist: 500, Floor: 1000}))

	assert.Equal(t, int64(1000), seq.MinimumDownPayment())
	_, err := seq.Advance()
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestResumeStep(t *testing.T) {
	tests := []struct {
		name  string
		draft domain.BookingDraft
		want  domain.Step
	}{
		{"explicit step", domain.BookingDraft{Step: domain.StepPaymentMethod}, domain.StepPaymentMethod},
		{"empty draft", domain.BookingDraft{}, domain.StepContact},
		{"submitted", domain.BookingDraft{Status: domain.BookingSubmittedStatus}, domain.StepConfirmation},
		{"handed off from package page", domain.BookingDraft{LastPage: domain.PagePackage, Vehicles: []string{"vios"}}, domain.StepSummary},
		{"handed off from tour page", domain.BookingDraft{LastPage: domain.PageTour, Tours: domain.TourSelections{Island: []string{"big-lagoon"}}}, domain.StepSummary},
		{"entry page without services", domain.BookingDraft{LastPage: domain.PageTour, HotelID: "seaside-inn"}, domain.StepContact},
		{"out of range step", domain.BookingDraft{Step: domain.Step(12)}, domain.StepContact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wizard.ResumeStep(tt.draft))
		})
	}
}

func reviewReadyDraft() *domain.BookingDraft {
	return &domain.BookingDraft{
		FirstName:      "Maria",
		LastName:       "Santos",
		Email:          "maria.santos@example.com",
		ContactNumber:  "09171234567",
		ArrivalDate:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DepartureDate:  time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		TouristCount:   2,
		Tours:          domain.TourSelections{Island: []string{"big-lagoon"}},
		PaymentPlan:    domain.PlanDown,
		DownPayment:    1000,
		PaymentMethod:  domain.MethodGCash,
		ReceiptPresent: true,
		Step:           domain.StepReview,
		BookingType:    domain.OptionTour,
		LastPage:       domain.PageTour,
	}
}

func TestSequencer_FinalizeRevalidatesEarlierSteps(t *testing.T) {
	d := reviewReadyDraft()
	d.Tours = domain.TourSelections{}
	seq := wizard.NewSequencer(d, wizard.WithFinalizer(testFinalizer()))

	err := seq.Finalize(true)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, domain.StepServices, verr.Step)
	assert.Contains(t, verr.Fields, "services")
	assert.False(t, d.IsSubmitted())
	assert.Empty(t, d.Reference)
}

func TestSequencer_FinalizeRejectsStaleDownPayment(t *testing.T) {
	d := reviewReadyDraft()
	d.TouristCount = 3
	seq := wizard.NewSequencer(d, wizard.WithFinalizer(testFinalizer()))

	err := seq.Finalize(true)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, domain.StepPaymentPlan, verr.Step)
	assert.Contains(t, verr.Fields["downPayment"], "₱1500")
}

func TestSequencer_EditingPassedStepReopensIt(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*wizard.Sequencer) error
		want  domain.Step
	}{
		{"contact", func(s *wizard.Sequencer) error {
			_, err := s.ApplyContact(contactInput(2))
			return err
		}, domain.StepContact},
		{"services", func(s *wizard.Sequencer) error {
			_, err := s.ApplyServices(servicesInput(domain.TourSelections{}))
			return err
		}, domain.StepServices},
		{"payment plan", func(s *wizard.Sequencer) error {
			_, err := s.ApplyPaymentPlan(wizard.PaymentPlanInput{Plan: ptr(domain.PlanFull)})
			return err
		}, domain.StepPaymentPlan},
		{"payment method", func(s *wizard.Sequencer) error {
			return s.ApplyPaymentMethod(wizard.PaymentMethodInput{Method: ptr(domain.MethodBanking)})
		}, domain.StepPaymentMethod},
		{"receipt", func(s *wizard.Sequencer) error {
			return s.SetReceiptPresent(true)
		}, domain.StepReceipt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := reviewReadyDraft()
			seq := wizard.NewSequencer(d)

			require.NoError(t, tt.apply(seq))

			assert.Equal(t, tt.want, seq.Current())
			assert.Equal(t, tt.want, d.Step)
		})
	}
}

func TestSequencer_EditingCurrentStepDoesNotReopen(t *testing.T) {
	d := reviewReadyDraft()
	d.Step = domain.StepPaymentPlan
	seq := wizard.NewSequencer(d)

	change, err := seq.ApplyPaymentPlan(wizard.PaymentPlanInput{Plan: ptr(domain.PlanFull)})

	require.NoError(t, err)
	assert.False(t, change.Reopened)
	assert.Equal(t, domain.StepPaymentPlan, d.Step)
}
