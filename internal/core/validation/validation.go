package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/srgjo27/tour_wizard/internal/core/domain"
	"github.com/srgjo27/tour_wizard/internal/core/payment"
)

const PhoneDigits = 11

var validate = validator.New(validator.WithRequiredStructEnabled())

// Result is the outcome of one step's validator. Invariant is set when at
// least one cross-field rule failed.
type Result struct {
	Valid     bool
	Errors    map[string]string
	Invariant bool
}

// Err converts a failed result into a *domain.ValidationError.
func (r Result) Err(step domain.Step) error {
	if r.Valid {
		return nil
	}
	return &domain.ValidationError{Step: step, Fields: r.Errors, Invariant: r.Invariant}
}

type collector struct {
	errors    map[string]string
	invariant bool
}

func (c *collector) add(field, msg string) {
	if c.errors == nil {
		c.errors = make(map[string]string)
	}
	if _, exists := c.errors[field]; !exists {
		c.errors[field] = msg
	}
}

func (c *collector) addInvariant(field, msg string) {
	c.add(field, msg)
	c.invariant = true
}

func (c *collector) result() Result {
	return Result{Valid: len(c.errors) == 0, Errors: c.errors, Invariant: c.invariant}
}

// Validator runs the per-step rules. It never mutates the draft.
type Validator struct {
	Payment payment.Policy
}

func New(policy payment.Policy) *Validator {
	return &Validator{Payment: policy}
}

var defaultValidator = New(payment.DefaultPolicy)

func Validate(step domain.Step, d domain.BookingDraft) Result {
	return defaultValidator.Validate(step, d)
}

func (v *Validator) Validate(step domain.Step, d domain.BookingDraft) Result {
	switch step {
	case domain.StepContact:
		return contact(d)
	case domain.StepServices:
		return services(d)
	case domain.StepSummary:
		return summary(d)
	case domain.StepPaymentPlan:
		return v.paymentPlan(d)
	case domain.StepPaymentMethod:
		return paymentMethod(d)
	case domain.StepReceipt:
		return receipt(d)
	case domain.StepReview:
		return review(d)
	case domain.StepConfirmation:
		return Result{Valid: true}
	}

	var c collector
	c.add("step", fmt.Sprintf("unknown step %d", int(step)))
	return c.result()
}

func contact(d domain.BookingDraft) Result {
	var c collector

	if strings.TrimSpace(d.FirstName) == "" {
		c.add("firstName", "First name is required")
	}
	if strings.TrimSpace(d.LastName) == "" {
		c.add("lastName", "Last name is required")
	}
	if strings.TrimSpace(d.Email) == "" {
		c.add("email", "Email is required")
	} else if err := validate.Var(d.Email, "email"); err != nil {
		c.add("email", "Enter a valid email address")
	}
	if !isPhone(d.ContactNumber) {
		c.add("contactNumber", fmt.Sprintf("Contact number must be exactly %d digits", PhoneDigits))
	}
	if d.TouristCount < 1 {
		c.add("touristCount", "At least one tourist is required")
	}

	switch {
	case d.ArrivalDate.IsZero():
		c.add("arrivalDate", "Arrival date is required")
	case d.DepartureDate.IsZero():
		c.add("departureDate", "Departure date is required")
	case !d.DepartureDate.After(d.ArrivalDate):
		c.addInvariant("departureDate", "Departure date must be after the arrival date")
	}

	return c.result()
}

func services(d domain.BookingDraft) Result {
	var c collector

	// Takes priority over every other rule on this step.
	if !d.HasService() {
		c.add("services", "Select at least one tour, vehicle, van rental or diving")
		return c.result()
	}

	checkTourItems(&c, domain.TourIsland, d.Tours.Island)
	checkTourItems(&c, domain.TourInland, d.Tours.Inland)
	checkTourItems(&c, domain.TourSnorkeling, d.Tours.Snorkeling)

	if d.Tours.Any() && d.TouristCount < 1 {
		c.addInvariant("touristCount", "At least one tourist is required for tours")
	}
	if len(d.Tours.Inland) > 0 && d.TouristCount < domain.InlandMinTourists {
		c.addInvariant("tours.inland", fmt.Sprintf("Inland tours require at least %d tourists", domain.InlandMinTourists))
	}

	if len(d.Vehicles) > 0 {
		for _, id := range d.Vehicles {
			if _, ok := domain.FindVehicle(id); !ok {
				c.add("vehicles", fmt.Sprintf("Unknown vehicle %q", id))
				break
			}
		}
		if d.RentalDays < 1 {
			c.addInvariant("rentalDays", "Enter the number of rental days")
		}
	}

	if d.Van.Selected() {
		if _, ok := domain.FindVanDestination(d.Van.Destination); !ok {
			c.add("van.destination", fmt.Sprintf("Unknown destination %q", d.Van.Destination))
		}
		if !d.Van.Trip.IsValid() {
			c.add("van.trip", "Choose one-way or round-trip")
		} else if d.Van.Trip == domain.TripRoundTrip && d.Van.Days < 1 {
			c.addInvariant("van.days", "Enter the number of days for the round trip")
		}
	}

	if d.Diving && d.DiverCount < 1 {
		c.addInvariant("diverCount", "Enter the number of divers")
	}

	if d.HotelID != "" {
		if _, ok := domain.FindHotel(d.HotelID); !ok {
			c.add("hotelId", fmt.Sprintf("Unknown hotel %q", d.HotelID))
		}
	}

	return c.result()
}

func checkTourItems(c *collector, category domain.TourCategory, ids []string) {
	for _, id := range ids {
		if _, ok := domain.FindTourItem(category, id); !ok {
			c.add("tours."+string(category), fmt.Sprintf("Unknown %s tour %q", category, id))
			return
		}
	}
}

func summary(d domain.BookingDraft) Result {
	var c collector
	if d.Amounts.GrandTotal <= 0 {
		c.add("grandTotal", "There is nothing to pay for yet")
	}
	return c.result()
}

func (v *Validator) paymentPlan(d domain.BookingDraft) Result {
	var c collector
	if !d.PaymentPlan.IsValid() {
		c.add("paymentPlan", "Choose full payment or down payment")
		return c.result()
	}
	if err := v.Payment.ValidateDownPayment(d); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			for field, msg := range verr.Fields {
				c.add(field, msg)
			}
		}
	}
	return c.result()
}

func paymentMethod(d domain.BookingDraft) Result {
	var c collector
	if !d.PaymentMethod.IsValid() {
		c.add("paymentMethod", "Choose GCash, PayMaya or online banking")
	}
	return c.result()
}

func receipt(d domain.BookingDraft) Result {
	var c collector
	if !d.ReceiptPresent {
		c.add("receipt", "Upload your payment receipt to continue")
	}
	return c.result()
}

func review(d domain.BookingDraft) Result {
	var c collector
	if !d.IsSubmitted() {
		c.add("status", "Submit the booking to continue")
	}
	return c.result()
}

func isPhone(s string) bool {
	if len(s) != PhoneDigits {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SanitizePhone keeps only digits and truncates past PhoneDigits, mirroring
// the input filter on the contact form.
func SanitizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if b.Len() == PhoneDigits {
			break
		}
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
