package storefront

import (
	"testing"

	"homecooked/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func meal(id uint, price float64) models.Recipe {
	return models.Recipe{Model: gorm.Model{ID: id}, Title: "Meal", Price: price}
}

func TestNewSession(t *testing.T) {
	s := NewSession()
	assert.False(t, s.LoggedIn)
	assert.Equal(t, ViewHome, s.View)
	assert.Equal(t, DefaultProfile(), s.Profile)
	assert.Equal(t, 0, s.Box.DistinctCount())
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	assert.Equal(t, 2, p.People)
	assert.Equal(t, 3, p.RecipesPerWeek)
	assert.Equal(t, models.SkillAll, p.SkillLevel)
	assert.Empty(t, p.Allergies)
}

func TestAddToCartOpensDrawerAtQuota(t *testing.T) {
	s := NewSession()
	s.Profile.RecipesPerWeek = 2

	s.AddToCart(meal(1, 10))
	assert.False(t, s.DrawerOpen)

	// same recipe again: still one distinct entry
	assert.False(t, s.AddToCart(meal(1, 10)))
	assert.False(t, s.DrawerOpen)
	assert.False(t, s.CanCheckout())

	assert.True(t, s.AddToCart(meal(2, 10)))
	assert.True(t, s.DrawerOpen)
	assert.True(t, s.CanCheckout())
}

func TestUpdateQuantityDropsEmptyEntries(t *testing.T) {
	s := NewSession()
	s.AddToCart(meal(1, 10))
	s.UpdateQuantity(1, -1)
	assert.Equal(t, 0, s.Box.DistinctCount())
}

func TestSubtotalUsesHousehold(t *testing.T) {
	s := NewSession()
	s.AddToCart(meal(1, 18.5))
	s.AddToCart(meal(1, 18.5))
	assert.InDelta(t, 37.0, s.Subtotal(), 1e-9)

	s.Profile.People = 4
	assert.InDelta(t, 74.0, s.Subtotal(), 1e-9)
	assert.InDelta(t, 33.33, s.Progress(), 0.01)
}

func TestToggleSaved(t *testing.T) {
	s := NewSession()
	assert.True(t, s.ToggleSaved(3))
	assert.True(t, s.ToggleSaved(4))
	assert.True(t, s.IsSaved(3))

	assert.False(t, s.ToggleSaved(3))
	assert.False(t, s.IsSaved(3))
	assert.Equal(t, []uint{4}, s.SavedIDs)
}

func TestLogin(t *testing.T) {
	s := NewSession()
	s.Login(true)
	assert.True(t, s.LoggedIn)
	assert.Equal(t, ViewOnboarding, s.View)

	s = NewSession()
	s.Navigate(ViewMenu)
	s.Login(false)
	assert.Equal(t, ViewHome, s.View)
}

func TestLogoutClearsCartAndFavorites(t *testing.T) {
	s := NewSession()
	s.Login(false)
	s.AddToCart(meal(1, 10))
	s.AddToCart(meal(2, 10))
	s.AddToCart(meal(3, 10))
	s.ToggleSaved(2)
	s.Navigate(ViewCheckout)
	require.True(t, s.DrawerOpen)

	s.Logout()

	assert.False(t, s.LoggedIn)
	assert.Equal(t, 0, s.Box.DistinctCount())
	assert.Empty(t, s.SavedIDs)
	assert.False(t, s.DrawerOpen)
	assert.Equal(t, ViewHome, s.View)
}

func TestCompleteOrder(t *testing.T) {
	s := NewSession()
	s.AddToCart(meal(1, 10))
	s.ToggleSaved(1)

	s.CompleteOrder()

	assert.Equal(t, 0, s.Box.DistinctCount())
	assert.Equal(t, ViewSuccess, s.View)
	// favorites survive an order
	assert.Equal(t, []uint{1}, s.SavedIDs)
}

func TestNavigate(t *testing.T) {
	s := NewSession()
	assert.True(t, s.Navigate(ViewJournal))
	assert.Equal(t, ViewJournal, s.View)

	assert.False(t, s.Navigate(View("BASEMENT")))
	assert.Equal(t, ViewJournal, s.View)
}

func TestFromProfile(t *testing.T) {
	p := FromProfile(models.Profile{
		People:         4,
		RecipesPerWeek: 5,
		SkillLevel:     models.SkillAdvanced,
		Allergies:      datatypes.JSONSlice[string]{"Nuts"},
	})
	assert.Equal(t, 4, p.People)
	assert.Equal(t, 5, p.RecipesPerWeek)
	assert.Equal(t, []string{"Nuts"}, p.Allergies)
	assert.Equal(t, []string{}, p.Preferences)

	empty := FromProfile(models.Profile{})
	assert.Equal(t, DefaultProfile().People, empty.People)
	assert.Equal(t, DefaultProfile().RecipesPerWeek, empty.RecipesPerWeek)
	assert.Equal(t, models.SkillAll, empty.SkillLevel)
}
