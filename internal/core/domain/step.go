package domain

import "fmt"

type Step int

const (
	StepContact Step = iota + 1
	StepServices
	StepSummary
	StepPaymentPlan
	StepPaymentMethod
	StepReceipt
	StepReview
	StepConfirmation
)

const TotalSteps = 8

var stepNames = map[Step]string{
	StepContact:       "contact",
	StepServices:      "services",
	StepSummary:       "summary",
	StepPaymentPlan:   "payment-plan",
	StepPaymentMethod: "payment-method",
	StepReceipt:       "receipt",
	StepReview:        "review",
	StepConfirmation:  "confirmation",
}

func (s Step) IsValid() bool {
	return s >= StepContact && s <= StepConfirmation
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Page returns the page that physically hosts the step. Steps 1 and 2 live on
// the entry page chosen by the booking option.
func (s Step) Page(option BookingOption) Page {
	if s >= StepSummary {
		return PageCheckout
	}
	return option.EntryPage()
}
