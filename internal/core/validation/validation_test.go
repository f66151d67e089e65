package validation_test

import (
	"errors"
	"testing"
	"time"

	"github.com/srgjo27/tour_wizard/internal/core/domain"
	"github.com/srgjo27/tour_wizard/internal/core/payment"
	"github.com/srgjo27/tour_wizard/internal/core/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContact() domain.BookingDraft {
	return domain.BookingDraft{
		FirstName:     "Maria",
		LastName:      "Santos",
		Email:         "maria.santos@example.com",
		ContactNumber: "09171234567",
		ArrivalDate:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		DepartureDate: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		TouristCount:  2,
	}
}

func TestContact_Valid(t *testing.T) {
	res := validation.Validate(domain.StepContact, validContact())

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	assert.NoError(t, res.Err(domain.StepContact))
}

func TestContact_RequiredAndFormat(t *testing.T) {
	d := domain.BookingDraft{
		FirstName:     "  ",
		Email:         "not-an-email",
		ContactNumber: "0917123",
	}

	res := validation.Validate(domain.StepContact, d)

	require.False(t, res.Valid)
	assert.Contains(t, res.Errors, "firstName")
	assert.Contains(t, res.Errors, "lastName")
	assert.Equal(t, "Enter a valid email address", res.Errors["email"])
	assert.Contains(t, res.Errors, "contactNumber")
	assert.Contains(t, res.Errors, "touristCount")
	assert.Contains(t, res.Errors, "arrivalDate")
	assert.False(t, res.Invariant)
}

func TestContact_DepartureMustBeAfterArrival(t *testing.T) {
	d := validContact()
	d.DepartureDate = d.ArrivalDate

	res := validation.Validate(domain.StepContact, d)

	require.False(t, res.Valid)
	assert.Contains(t, res.Errors, "departureDate")
	assert.True(t, res.Invariant)

	err := res.Err(domain.StepContact)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.True(t, errors.Is(err, domain.ErrInvariantViolation))
}

func TestContact_PhoneMustBeElevenDigits(t *testing.T) {
	for _, phone := range []string{"0917123456", "091712345678", "0917-123-456", ""} {
		d := validContact()
		d.ContactNumber = phone
		res := validation.Validate(domain.StepContact, d)
		assert.Contains(t, res.Errors, "contactNumber", phone)
	}
}

func TestSanitizePhone(t *testing.T) {
	assert.Equal(t, "09171234567", validation.SanitizePhone("0917-123-4567"))
	assert.Equal(t, "09171234567", validation.SanitizePhone("(0917) 123 4567 89"))
	assert.Equal(t, "0917", validation.SanitizePhone("+0917abc"))
	assert.Equal(t, "", validation.SanitizePhone("phone"))
}

func TestServices_RejectsEmptySelection(t *testing.T) {
	d := validContact()
	d.HotelID = "seaside-inn"

	res := validation.Validate(domain.StepServices, d)

	require.False(t, res.Valid)
	assert.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors, "services")
}

func TestServices_EmptySelectionShortCircuits(t *testing.T) {
	d := validContact()
	d.TouristCount = 1
	d.RentalDays = 0
	d.HotelID = "nowhere"

	res := validation.Validate(domain.StepServices, d)

	require.False(t, res.Valid)
	assert.Equal(t, map[string]string{"services": "Select at least one tour, vehicle, van rental or diving"}, res.Errors)
}

func TestServices_SingleVehicleWithDays(t *testing.T) {
	d := validContact()
	d.Vehicles = []string{"click-125"}
	d.RentalDays = 3

	res := validation.Validate(domain.StepServices, d)

	assert.True(t, res.Valid, res.Errors)
}

func TestServices_VehicleNeedsRentalDays(t *testing.T) {
	d := validContact()
	d.Vehicles = []string{"click-125"}

	res := validation.Validate(domain.StepServices, d)

	require.False(t, res.Valid)
	assert.Contains(t, res.Errors, "rentalDays")
	assert.True(t, res.Invariant)
}

func TestServices_InlandNeedsTwoTourists(t *testing.T) {
	d := validContact()
	d.TouristCount = 1
	d.Tours.Inland = []string{"nacpan-beach"}

	res := validation.Validate(domain.StepServices, d)

	require.False(t, res.Valid)
	assert.Contains(t, res.Errors, "tours.inland")
	assert.NotContains(t, res.Errors, "services")
	assert.True(t, res.Invariant)
}

func TestServices_TourNeedsTourist(t *testing.T) {
	d := validContact()
	d.TouristCount = 0
	d.Tours.Island = []string{"big-lagoon"}

	res := validation.Validate(domain.StepServices, d)

	require.False(t, res.Valid)
	assert.Contains(t, res.Errors, "touristCount")
}

func TestServices_DivingNeedsDivers(t *testing.T) {
	d := validContact()
	d.Diving = true

	res := validation.Validate(domain.StepServices, d)

	require.False(t, res.Valid)
	assert.Contains(t, res.Errors, "diverCount")

	d.DiverCount = 2
	assert.True(t, validation.Validate(domain.StepServices, d).Valid)
}

func TestServices_VanRules(t *testing.T) {
	d := validContact()
	d.Van = domain.VanRental{Destination: "atlantis", Trip: "teleport"}

	res := validation.Validate(domain.StepServices, d)

	require.False(t, res.Valid)
	assert.Contains(t, res.Errors, "van.destination")
	assert.Contains(t, res.Errors, "van.trip")

	d.Van = domain.VanRental{Destination: "taytay", Trip: domain.TripRoundTrip}
	res = validation.Validate(domain.StepServices, d)
	assert.Contains(t, res.Errors, "van.days")

	d.Van.Days = 2
	assert.True(t, validation.Validate(domain.StepServices, d).Valid)
}

func TestServices_UnknownCatalogIDs(t *testing.T) {
	d := validContact()
	d.Tours.Island = []string{"big-lagoon", "nacpan-beach"}
	d.Vehicles = []string{"tank"}
	d.RentalDays = 1
	d.HotelID = "grand-budapest"

	res := validation.Validate(domain.StepServices, d)

	require.False(t, res.Valid)
	assert.Contains(t, res.Errors, "tours.island")
	assert.Contains(t, res.Errors, "vehicles")
	assert.Contains(t, res.Errors, "hotelId")
	assert.False(t, res.Invariant)
}

func TestSummary_NeedsTotal(t *testing.T) {
	assert.False(t, validation.Validate(domain.StepSummary, domain.BookingDraft{}).Valid)
	assert.True(t, validation.Validate(domain.StepSummary, domain.BookingDraft{Amounts: domain.Amounts{GrandTotal: 800}}).Valid)
}

func TestPaymentPlan(t *testing.T) {
	d := domain.BookingDraft{TouristCount: 1, Amounts: domain.Amounts{GrandTotal: 7000}}

	res := validation.Validate(domain.StepPaymentPlan, d)
	assert.Contains(t, res.Errors, "paymentPlan")

	d.PaymentPlan = domain.PlanFull
	assert.True(t, validation.Validate(domain.StepPaymentPlan, d).Valid)

	d.PaymentPlan = domain.PlanDown
	d.DownPayment = 300
	res = validation.Validate(domain.StepPaymentPlan, d)
	require.False(t, res.Valid)
	assert.Contains(t, res.Errors["downPayment"], "₱500")

	d.DownPayment = 500
	assert.True(t, validation.Validate(domain.StepPaymentPlan, d).Valid)
}

func TestPaymentPlan_UsesConfiguredFloor(t *testing.T) {
	v := validation.New(payment.Policy{PerTourist: 500, Floor: 1000})
	d := domain.BookingDraft{
		TouristCount: 1,
		PaymentPlan:  domain.PlanDown,
		DownPayment:  600,
		Amounts:      domain.Amounts{GrandTotal: 3000},
	}

	res := v.Validate(domain.StepPaymentPlan, d)

	require.False(t, res.Valid)
	assert.Contains(t, res.Errors["downPayment"], "₱1000")
}

func TestPaymentMethod(t *testing.T) {
	assert.False(t, validation.Validate(domain.StepPaymentMethod, domain.BookingDraft{}).Valid)
	assert.False(t, validation.Validate(domain.StepPaymentMethod, domain.BookingDraft{PaymentMethod: "cash"}).Valid)
	for _, m := range []domain.PaymentMethod{domain.MethodGCash, domain.MethodPayMaya, domain.MethodBanking} {
		assert.True(t, validation.Validate(domain.StepPaymentMethod, domain.BookingDraft{PaymentMethod: m}).Valid)
	}
}

func TestReceiptAndReview(t *testing.T) {
	assert.False(t, validation.Validate(domain.StepReceipt, domain.BookingDraft{}).Valid)
	assert.True(t, validation.Validate(domain.StepReceipt, domain.BookingDraft{ReceiptPresent: true}).Valid)

	assert.False(t, validation.Validate(domain.StepReview, domain.BookingDraft{ReceiptPresent: true}).Valid)
	assert.True(t, validation.Validate(domain.StepReview, domain.BookingDraft{Status: domain.BookingSubmittedStatus}).Valid)
}

func TestUnknownStep(t *testing.T) {
	res := validation.Validate(domain.Step(42), domain.BookingDraft{})

	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "step")
}
