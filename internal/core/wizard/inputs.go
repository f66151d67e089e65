package wizard

import (
	"strings"
	"time"

	"github.com/srgjo27/tour_wizard/internal/core/domain"
	"github.com/srgjo27/tour_wizard/internal/core/validation"
)

const DateLayout = "2006-01-02"

// Step inputs use pointers for every field the page must render. A nil field
// is reported as *domain.FieldMissingError instead of being skipped.

type ContactInput struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Email         *string `json:"email"`
	ContactNumber *string `json:"contactNumber"`
	ArrivalDate   *string `json:"arrivalDate"`
	DepartureDate *string `json:"departureDate"`
	TouristCount  *int    `json:"touristCount"`
}

type VehicleInput struct {
	IDs        []string `json:"ids"`
	RentalDays int      `json:"rentalDays"`
}

type DivingInput struct {
	Selected bool `json:"selected"`
	Divers   int  `json:"divers"`
}

type HotelInput struct {
	ID string `json:"id"`
}

type ServicesInput struct {
	Tours    *domain.TourSelections `json:"tours"`
	Vehicles *VehicleInput          `json:"vehicles"`
	Van      *domain.VanRental      `json:"van"`
	Diving   *DivingInput           `json:"diving"`
	Hotel    *HotelInput            `json:"hotel"`
}

type PaymentPlanInput struct {
	Plan        *domain.PaymentPlan `json:"plan"`
	DownPayment *int64              `json:"downPayment"`
}

type PaymentMethodInput struct {
	Method *domain.PaymentMethod `json:"method"`
}

// Change reports side effects of applying an input.
type Change struct {
	InlandCleared bool `json:"inlandCleared,omitempty"`
	Reopened      bool `json:"reopened,omitempty"`
}

func (s *Sequencer) ApplyContact(in ContactInput) (Change, error) {
	if err := s.mutable(); err != nil {
		return Change{}, err
	}
	if err := requireFields(
		field{"firstName", in.FirstName != nil},
		field{"lastName", in.LastName != nil},
		field{"email", in.Email != nil},
		field{"contactNumber", in.ContactNumber != nil},
		field{"arrivalDate", in.ArrivalDate != nil},
		field{"departureDate", in.DepartureDate != nil},
		field{"touristCount", in.TouristCount != nil},
	); err != nil {
		return Change{}, err
	}

	arrival, arrErr := parseDate(*in.ArrivalDate)
	departure, depErr := parseDate(*in.DepartureDate)
	if arrErr != nil || depErr != nil {
		fields := make(map[string]string)
		if arrErr != nil {
			fields["arrivalDate"] = "Use the YYYY-MM-DD format"
		}
		if depErr != nil {
			fields["departureDate"] = "Use the YYYY-MM-DD format"
		}
		return Change{}, &domain.ValidationError{Step: domain.StepContact, Fields: fields}
	}

	d := s.draft
	d.FirstName = strings.TrimSpace(*in.FirstName)
	d.LastName = strings.TrimSpace(*in.LastName)
	d.Email = strings.TrimSpace(*in.Email)
	d.ContactNumber = validation.SanitizePhone(*in.ContactNumber)
	d.ArrivalDate = arrival
	d.DepartureDate = departure
	d.TouristCount = *in.TouristCount

	return s.changed(domain.StepContact), nil
}

func (s *Sequencer) ApplyServices(in ServicesInput) (Change, error) {
	if err := s.mutable(); err != nil {
		return Change{}, err
	}
	if err := requireFields(
		field{"tours", in.Tours != nil},
		field{"vehicles", in.Vehicles != nil},
		field{"van", in.Van != nil},
		field{"diving", in.Diving != nil},
		field{"hotel", in.Hotel != nil},
	); err != nil {
		return Change{}, err
	}

	d := s.draft
	d.Tours = domain.TourSelections{
		Island:     dedupe(in.Tours.Island),
		Inland:     dedupe(in.Tours.Inland),
		Snorkeling: dedupe(in.Tours.Snorkeling),
	}

	d.Vehicles = dedupe(in.Vehicles.IDs)
	d.RentalDays = in.Vehicles.RentalDays
	if len(d.Vehicles) == 0 {
		d.RentalDays = 0
	}

	d.Van = *in.Van
	if !d.Van.Selected() {
		d.Van = domain.VanRental{}
	}

	d.Diving = in.Diving.Selected
	d.DiverCount = in.Diving.Divers
	if !d.Diving {
		d.DiverCount = 0
	}

	d.HotelID = in.Hotel.ID

	return s.changed(domain.StepServices), nil
}

func (s *Sequencer) ApplyPaymentPlan(in PaymentPlanInput) (Change, error) {
	if err := s.mutable(); err != nil {
		return Change{}, err
	}
	if in.Plan == nil {
		return Change{}, &domain.FieldMissingError{Field: "plan"}
	}
	if *in.Plan == domain.PlanDown && in.DownPayment == nil {
		return Change{}, &domain.FieldMissingError{Field: "downPayment"}
	}

	d := s.draft
	d.PaymentPlan = *in.Plan
	d.DownPayment = 0
	if d.PaymentPlan == domain.PlanDown {
		d.DownPayment = *in.DownPayment
	}

	return s.changed(domain.StepPaymentPlan), nil
}

func (s *Sequencer) ApplyPaymentMethod(in PaymentMethodInput) error {
	if err := s.mutable(); err != nil {
		return err
	}
	if in.Method == nil {
		return &domain.FieldMissingError{Field: "method"}
	}
	s.draft.PaymentMethod = *in.Method
	s.reopen(domain.StepPaymentMethod)
	return nil
}

// SetReceiptPresent records the flag supplied by the upload collaborator.
func (s *Sequencer) SetReceiptPresent(present bool) error {
	if err := s.mutable(); err != nil {
		return err
	}
	s.draft.ReceiptPresent = present
	s.reopen(domain.StepReceipt)
	return nil
}

func (s *Sequencer) changed(step domain.Step) Change {
	return Change{InlandCleared: s.refresh(), Reopened: s.reopen(step)}
}

// reopen moves the pointer back to step when the draft has already passed
// it. The edited step has to be validated again on the next advance.
func (s *Sequencer) reopen(step domain.Step) bool {
	if s.draft.Step <= step {
		return false
	}
	s.draft.Step = step
	return true
}

func (s *Sequencer) mutable() error {
	if s.draft.IsSubmitted() {
		return domain.ErrAlreadySubmitted
	}
	return nil
}

type field struct {
	name    string
	present bool
}

func requireFields(fields ...field) error {
	for _, f := range fields {
		if !f.present {
			return &domain.FieldMissingError{Field: f.name}
		}
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// dedupe keeps the first occurrence of each id, preserving selection order.
func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
