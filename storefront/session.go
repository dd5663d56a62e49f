// Package storefront holds the shopper-facing session state: which screen is
// shown, the box, favorites and the profile that bounds the box.
package storefront

import (
	"homecooked/box"
	"homecooked/models"
)

type View string

const (
	ViewHome       View = "HOME"
	ViewPlans      View = "PLANS"
	ViewMenu       View = "MENU"
	ViewCheckout   View = "CHECKOUT"
	ViewJournal    View = "JOURNAL"
	ViewProfile    View = "PROFILE"
	ViewOnboarding View = "ONBOARDING"
	ViewAdmin      View = "ADMIN"
	ViewSuccess    View = "SUCCESS"
)

var views = map[View]bool{
	ViewHome: true, ViewPlans: true, ViewMenu: true, ViewCheckout: true, ViewJournal: true,
	ViewProfile: true, ViewOnboarding: true, ViewAdmin: true, ViewSuccess: true,
}

func (v View) Valid() bool {
	return views[v]
}

// Preferences is the part of a profile the session needs.
type Preferences struct {
	People         int      `json:"people"`
	RecipesPerWeek int      `json:"recipesPerWeek"`
	SkillLevel     string   `json:"skillLevel"`
	Allergies      []string `json:"allergies"`
	Preferences    []string `json:"preferences"`
}

// DefaultProfile is what a new shopper starts with.
func DefaultProfile() Preferences {
	return Preferences{
		People:         2,
		RecipesPerWeek: 3,
		SkillLevel:     models.SkillAll,
		Allergies:      []string{},
		Preferences:    []string{},
	}
}

// FromProfile copies the box settings out of a stored profile.
func FromProfile(p models.Profile) Preferences {
	prefs := Preferences{
		People:         p.People,
		RecipesPerWeek: p.RecipesPerWeek,
		SkillLevel:     p.SkillLevel,
		Allergies:      append([]string{}, p.Allergies...),
		Preferences:    append([]string{}, p.Preferences...),
	}
	if prefs.People <= 0 {
		prefs.People = 2
	}
	if prefs.RecipesPerWeek <= 0 {
		prefs.RecipesPerWeek = 3
	}
	if prefs.SkillLevel == "" {
		prefs.SkillLevel = models.SkillAll
	}
	return prefs
}

type Session struct {
	LoggedIn   bool        `json:"loggedIn"`
	View       View        `json:"view"`
	Box        *box.Box    `json:"box"`
	SavedIDs   []uint      `json:"savedIds"`
	Profile    Preferences `json:"profile"`
	DrawerOpen bool        `json:"drawerOpen"`
}

func NewSession() *Session {
	return &Session{
		View:     ViewHome,
		Box:      box.New(),
		SavedIDs: []uint{},
		Profile:  DefaultProfile(),
	}
}

// AddToCart merges recipe into the box and opens the drawer once the box
// holds as many distinct recipes as the weekly quota.
func (s *Session) AddToCart(recipe models.Recipe) bool {
	created := s.Box.Add(recipe)
	if s.Box.ShouldOpenDrawer(s.Profile.RecipesPerWeek) {
		s.DrawerOpen = true
	}
	return created
}

func (s *Session) UpdateQuantity(recipeID uint, delta int) {
	s.Box.UpdateQuantity(recipeID, delta)
}

// ToggleSaved flips a favorite and reports whether it is now saved.
func (s *Session) ToggleSaved(recipeID uint) bool {
	for i, id := range s.SavedIDs {
		if id == recipeID {
			s.SavedIDs = append(s.SavedIDs[:i], s.SavedIDs[i+1:]...)
			return false
		}
	}
	s.SavedIDs = append(s.SavedIDs, recipeID)
	return true
}

func (s *Session) IsSaved(recipeID uint) bool {
	for _, id := range s.SavedIDs {
		if id == recipeID {
			return true
		}
	}
	return false
}

// Login marks the session authenticated. New accounts go to onboarding.
func (s *Session) Login(isSignUp bool) {
	s.LoggedIn = true
	if isSignUp {
		s.View = ViewOnboarding
		return
	}
	s.View = ViewHome
}

// Logout drops everything shopper-specific and returns home.
func (s *Session) Logout() {
	s.LoggedIn = false
	s.Box.Clear()
	s.SavedIDs = []uint{}
	s.DrawerOpen = false
	s.View = ViewHome
}

// CompleteOrder empties the box after a successful checkout.
func (s *Session) CompleteOrder() {
	s.Box.Clear()
	s.DrawerOpen = false
	s.View = ViewSuccess
}

func (s *Session) CanCheckout() bool {
	return s.Box.IsComplete(s.Profile.RecipesPerWeek)
}

// Navigate switches the current view. Unknown views are ignored.
func (s *Session) Navigate(v View) bool {
	if !v.Valid() {
		return false
	}
	s.View = v
	return true
}

func (s *Session) Subtotal() float64 {
	return s.Box.Subtotal(s.Profile.People)
}

func (s *Session) Progress() float64 {
	return s.Box.Progress(s.Profile.RecipesPerWeek)
}
