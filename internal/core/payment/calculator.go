package payment

import (
	"fmt"

	"github.com/srgjo27/tour_wizard/internal/core/domain"
)

const (
	PerTouristDownPayment = 500
	DefaultFloor          = 500
)

// Policy holds the down payment floor. The minimum is the larger of the
// per-tourist amount and the global floor.
type Policy struct {
	PerTourist int64
	Floor      int64
}

var DefaultPolicy = Policy{PerTourist: PerTouristDownPayment, Floor: DefaultFloor}

func (p Policy) floor() int64 {
	if p.Floor <= 0 {
		return DefaultFloor
	}
	return p.Floor
}

func (p Policy) MinimumDownPayment(d domain.BookingDraft) int64 {
	floor := p.floor()
	perTourist := p.PerTourist * int64(d.TouristCount)
	if perTourist > floor {
		return perTourist
	}
	return floor
}

// ValidateDownPayment returns a field keyed error when the chosen down
// payment is outside [minimum, grand total]. Full payment always passes.
func (p Policy) ValidateDownPayment(d domain.BookingDraft) error {
	if d.PaymentPlan != domain.PlanDown {
		return nil
	}

	minimum := p.MinimumDownPayment(d)
	if d.DownPayment < minimum {
		return &domain.ValidationError{
			Step: domain.StepPaymentPlan,
			Fields: map[string]string{
				"downPayment": fmt.Sprintf("Minimum down payment is ₱%d (₱%d per tourist × %d, at least ₱%d)", minimum, p.PerTourist, d.TouristCount, p.floor()),
			},
		}
	}
	if d.DownPayment > d.Amounts.GrandTotal {
		return &domain.ValidationError{
			Step: domain.StepPaymentPlan,
			Fields: map[string]string{
				"downPayment": fmt.Sprintf("Down payment cannot exceed the total of ₱%d", d.Amounts.GrandTotal),
			},
		}
	}
	return nil
}

func (p Policy) RemainingBalance(d domain.BookingDraft) int64 {
	if d.PaymentPlan != domain.PlanDown {
		return 0
	}
	return d.Amounts.GrandTotal - d.DownPayment
}

func MinimumDownPayment(d domain.BookingDraft) int64 {
	return DefaultPolicy.MinimumDownPayment(d)
}

func ValidateDownPayment(d domain.BookingDraft) error {
	return DefaultPolicy.ValidateDownPayment(d)
}

func RemainingBalance(d domain.BookingDraft) int64 {
	return DefaultPolicy.RemainingBalance(d)
}
