package storefront

const (
	OnboardingSteps = 4 // household, meals per week, skill and allergies, payment
	CheckoutSteps   = 2 // delivery details, payment
)

// Wizard is a linear multi-step form. Step is 1-based.
type Wizard struct {
	Step  int `json:"step"`
	Steps int `json:"steps"`
}

func NewWizard(steps int) *Wizard {
	if steps < 1 {
		steps = 1
	}
	return &Wizard{Step: 1, Steps: steps}
}

func (w *Wizard) Next() {
	if w.Step < w.Steps {
		w.Step++
	}
}

func (w *Wizard) Back() {
	if w.Step > 1 {
		w.Step--
	}
}

func (w *Wizard) IsFirst() bool { return w.Step == 1 }
func (w *Wizard) IsLast() bool  { return w.Step == w.Steps }
