// Package box models the shopper's weekly recipe box: an insertion-ordered
// set of recipes, each with a quantity of at least one.
package box

import (
	"errors"

	"homecooked/models"
)

var ErrUnknownRecipe = errors.New("recipe not found in catalog")

// Item is one recipe in the box together with how many kits of it are wanted.
type Item struct {
	models.Recipe
	Quantity int `json:"quantity"`
}

type Box struct {
	Items []Item `json:"items"`
}

func New() *Box {
	return &Box{Items: []Item{}}
}

func (b *Box) index(recipeID uint) int {
	for i := range b.Items {
		if b.Items[i].ID == recipeID {
			return i
		}
	}
	return -1
}

// Add puts one more kit of recipe into the box. An existing entry has its
// quantity incremented in place; otherwise the recipe is appended with
// quantity 1. It reports whether a new entry was created.
func (b *Box) Add(recipe models.Recipe) bool {
	if i := b.index(recipe.ID); i >= 0 {
		b.Items[i].Quantity++
		return false
	}
	b.Items = append(b.Items, Item{Recipe: recipe, Quantity: 1})
	return true
}

// UpdateQuantity shifts an entry's quantity by delta, flooring at zero.
// Entries that reach zero are removed. Unknown ids are ignored.
func (b *Box) UpdateQuantity(recipeID uint, delta int) {
	i := b.index(recipeID)
	if i < 0 {
		return
	}
	q := b.Items[i].Quantity + delta
	if q < 0 {
		q = 0
	}
	b.Items[i].Quantity = q

	kept := b.Items[:0]
	for _, item := range b.Items {
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	b.Items = kept
}

func (b *Box) Remove(recipeID uint) {
	if i := b.index(recipeID); i >= 0 {
		b.Items = append(b.Items[:i], b.Items[i+1:]...)
	}
}

func (b *Box) Clear() {
	b.Items = []Item{}
}

func (b *Box) Quantity(recipeID uint) int {
	if i := b.index(recipeID); i >= 0 {
		return b.Items[i].Quantity
	}
	return 0
}

// DistinctCount is the number of different recipes in the box. This is what
// the weekly quota counts, not the number of kits.
func (b *Box) DistinctCount() int {
	return len(b.Items)
}

func (b *Box) TotalQuantity() int {
	total := 0
	for _, item := range b.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal prices the box for a household of people. Recipe prices are for
// two people and scale linearly.
func (b *Box) Subtotal(people int) float64 {
	multiplier := float64(people) / 2
	total := 0.0
	for _, item := range b.Items {
		total += item.Price * multiplier * float64(item.Quantity)
	}
	return total
}

// Progress is the percentage of the weekly quota filled, capped at 100.
func (b *Box) Progress(limit int) float64 {
	if limit <= 0 {
		return 100
	}
	p := float64(b.DistinctCount()) / float64(limit) * 100
	if p > 100 {
		return 100
	}
	return p
}

func (b *Box) IsComplete(limit int) bool {
	return b.DistinctCount() >= limit
}

// ShouldOpenDrawer reports whether the box summary should pop open after an
// add. It uses the distinct count the add produced, so re-adding a recipe
// that is already present can still trigger it once the quota is met.
func (b *Box) ShouldOpenDrawer(limit int) bool {
	return b.DistinctCount() >= limit
}

// Lines converts the box into its persisted form.
func (b *Box) Lines() []models.CartLine {
	lines := make([]models.CartLine, 0, len(b.Items))
	for _, item := range b.Items {
		lines = append(lines, models.CartLine{RecipeID: item.ID, Quantity: item.Quantity})
	}
	return lines
}

// Hydrate rebuilds a box from persisted lines using current catalog data.
// Lines whose recipe is missing or whose quantity is not positive are dropped,
// and repeated ids are merged.
func Hydrate(lines []models.CartLine, catalog map[uint]models.Recipe) *Box {
	b := New()
	for _, line := range lines {
		recipe, ok := catalog[line.RecipeID]
		if !ok || line.Quantity <= 0 {
			continue
		}
		if i := b.index(recipe.ID); i >= 0 {
			b.Items[i].Quantity += line.Quantity
			continue
		}
		b.Items = append(b.Items, Item{Recipe: recipe, Quantity: line.Quantity})
	}
	return b
}

// AddByID looks the recipe up in catalog before adding it.
func (b *Box) AddByID(recipeID uint, catalog map[uint]models.Recipe) (bool, error) {
	recipe, ok := catalog[recipeID]
	if !ok {
		return false, ErrUnknownRecipe
	}
	return b.Add(recipe), nil
}
