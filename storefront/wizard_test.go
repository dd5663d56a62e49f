package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWizardIsClamped(t *testing.T) {
	w := NewWizard(OnboardingSteps)
	assert.True(t, w.IsFirst())

	w.Back()
	assert.Equal(t, 1, w.Step)

	for i := 0; i < 10; i++ {
		w.Next()
	}
	assert.Equal(t, 4, w.Step)
	assert.True(t, w.IsLast())

	w.Back()
	assert.Equal(t, 3, w.Step)
}

func TestCheckoutWizard(t *testing.T) {
	w := NewWizard(CheckoutSteps)
	w.Next()
	assert.True(t, w.IsLast())
	assert.Equal(t, 2, w.Step)
}

func TestNewWizardNeedsOneStep(t *testing.T) {
	w := NewWizard(0)
	assert.Equal(t, 1, w.Steps)
	assert.True(t, w.IsFirst() && w.IsLast())
}

func TestToggleAllergy(t *testing.T) {
	list := ToggleAllergy(nil, "  Peanuts ")
	assert.Equal(t, []string{"Peanuts"}, list)

	list = ToggleAllergy(list, "Shellfish")
	assert.Equal(t, []string{"Peanuts", "Shellfish"}, list)

	list = ToggleAllergy(list, "peanuts")
	assert.Equal(t, []string{"Shellfish"}, list)

	assert.Equal(t, []string{"Shellfish"}, ToggleAllergy(list, "   "))
}

func TestToggleAllergyDoesNotAliasInput(t *testing.T) {
	in := []string{"Gluten", "Dairy"}
	out := ToggleAllergy(in, "gluten")
	assert.Equal(t, []string{"Dairy"}, out)
	assert.Equal(t, []string{"Gluten", "Dairy"}, in)
}
