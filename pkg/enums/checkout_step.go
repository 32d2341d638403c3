package enums

import "fmt"

// CheckoutStep is the cursor of the multi-step checkout flow.
type CheckoutStep int

const (
	StepShipping CheckoutStep = 1
	StepPayment  CheckoutStep = 2
	StepReview   CheckoutStep = 3
)

const (
	// FirstCheckoutStep and LastCheckoutStep bound step clamping.
	FirstCheckoutStep = StepShipping
	LastCheckoutStep  = StepReview
)

// String implements fmt.Stringer.
func (s CheckoutStep) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

// IsValid reports whether the value is a known CheckoutStep.
func (s CheckoutStep) IsValid() bool {
	return s >= FirstCheckoutStep && s <= LastCheckoutStep
}
