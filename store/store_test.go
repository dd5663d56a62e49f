package store

import (
	"testing"

	"homecooked/box"
	"homecooked/database"
	"homecooked/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.ConnectTestDb()
	require.NoError(t, err)
	return db
}

func createRecipe(t *testing.T, db *gorm.DB, title, category, skill string, price float64, active bool) models.Recipe {
	t.Helper()
	r := models.Recipe{
		Title:       title,
		Description: title + " description",
		Category:    category,
		SkillLevel:  skill,
		Price:       price,
		IsActive:    active,
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}

func TestActiveRecipesFilters(t *testing.T) {
	db := setup(t)
	seabass := createRecipe(t, db, "Pan-Roasted Seabass", models.CategoryModernBritish, models.SkillMedium, 18.5, true)
	createRecipe(t, db, "Miso Aubergine", models.CategoryAsianFusion, models.SkillEasy, 14.5, true)
	createRecipe(t, db, "Hidden Venison", models.CategoryModernBritish, models.SkillAdvanced, 24.5, false)

	all, err := ActiveRecipes(db, RecipeFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Miso Aubergine", all[0].Title, "newest first")

	british, err := ActiveRecipes(db, RecipeFilter{Category: models.CategoryModernBritish})
	require.NoError(t, err)
	require.Len(t, british, 1)
	assert.Equal(t, seabass.ID, british[0].ID)

	easy, err := ActiveRecipes(db, RecipeFilter{Category: "All", SkillLevel: models.SkillEasy})
	require.NoError(t, err)
	require.Len(t, easy, 1)

	found, err := ActiveRecipes(db, RecipeFilter{Search: "SEABASS"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	byDescription, err := ActiveRecipes(db, RecipeFilter{Search: "aubergine desc", Category: models.CategoryAsianFusion})
	require.NoError(t, err)
	assert.Len(t, byDescription, 1)
}

func TestRecipesPaginatesAllRecipes(t *testing.T) {
	db := setup(t)
	for i := 0; i < 5; i++ {
		createRecipe(t, db, "Recipe", models.CategoryMediterranean, models.SkillEasy, 10, i%2 == 0)
	}

	page, total, err := Recipes(db, RecipeFilter{}, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Len(t, page, 2)

	last, _, err := Recipes(db, RecipeFilter{}, 3, 2)
	require.NoError(t, err)
	assert.Len(t, last, 1)
}

func TestCategories(t *testing.T) {
	db := setup(t)
	createRecipe(t, db, "A", models.CategoryMediterranean, models.SkillEasy, 10, true)
	createRecipe(t, db, "B", models.CategoryMediterranean, models.SkillEasy, 10, true)
	createRecipe(t, db, "C", models.CategoryAsianFusion, models.SkillEasy, 10, true)
	createRecipe(t, db, "D", models.CategoryClassicComfort, models.SkillEasy, 10, false)

	cats, err := Categories(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"All", models.CategoryAsianFusion, models.CategoryMediterranean, "Saved"}, cats)
}

func TestCartRoundTrip(t *testing.T) {
	db := setup(t)
	a := createRecipe(t, db, "A", models.CategoryMediterranean, models.SkillEasy, 10, true)
	b := createRecipe(t, db, "B", models.CategoryMediterranean, models.SkillEasy, 12, true)

	empty, err := LoadCart(db, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.DistinctCount())

	bx := box.New()
	bx.Add(a)
	bx.Add(b)
	bx.Add(b)
	require.NoError(t, SaveCart(db, 1, bx))

	loaded, err := LoadCart(db, 1)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 2)
	assert.Equal(t, "B", loaded.Items[1].Title)
	assert.Equal(t, 2, loaded.Items[1].Quantity)

	// second save overwrites the same row
	bx.Clear()
	require.NoError(t, SaveCart(db, 1, bx))

	var rows int64
	db.Model(&models.Cart{}).Where("user_id = ?", 1).Count(&rows)
	assert.EqualValues(t, 1, rows)

	loaded, err = LoadCart(db, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.DistinctCount())
}

func TestLoadCartDropsDeletedRecipes(t *testing.T) {
	db := setup(t)
	a := createRecipe(t, db, "A", models.CategoryMediterranean, models.SkillEasy, 10, true)
	b := createRecipe(t, db, "B", models.CategoryMediterranean, models.SkillEasy, 12, true)

	bx := box.New()
	bx.Add(a)
	bx.Add(b)
	require.NoError(t, SaveCart(db, 4, bx))
	require.NoError(t, db.Delete(&models.Recipe{}, a.ID).Error)

	loaded, err := LoadCart(db, 4)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, b.ID, loaded.Items[0].ID)
}

func TestSavedRecipes(t *testing.T) {
	db := setup(t)
	a := createRecipe(t, db, "A", models.CategoryMediterranean, models.SkillEasy, 10, true)
	b := createRecipe(t, db, "B", models.CategoryMediterranean, models.SkillEasy, 12, true)

	require.NoError(t, SaveRecipe(db, 2, a.ID))
	require.NoError(t, SaveRecipe(db, 2, b.ID))
	require.NoError(t, SaveRecipe(db, 2, a.ID))

	ids, err := SavedRecipeIDs(db, 2)
	require.NoError(t, err)
	assert.Equal(t, []uint{a.ID, b.ID}, ids)

	require.NoError(t, UnsaveRecipe(db, 2, a.ID))
	// saving again after unsaving must not hit the unique index
	require.NoError(t, SaveRecipe(db, 2, a.ID))

	recipes, err := SavedRecipes(db, 2)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "A", recipes[0].Title)
}

func TestGetProfileCreatesDefault(t *testing.T) {
	db := setup(t)

	p, err := GetProfile(db, 9)
	require.NoError(t, err)
	assert.Equal(t, 2, p.People)
	assert.Equal(t, 3, p.RecipesPerWeek)
	assert.Equal(t, models.SkillAll, p.SkillLevel)
	assert.Equal(t, models.SubscriptionNone, p.SubscriptionStatus)

	p.People = 4
	require.NoError(t, SaveProfile(db, p))

	again, err := GetProfile(db, 9)
	require.NoError(t, err)
	assert.Equal(t, p.ID, again.ID)
	assert.Equal(t, 4, again.People)
}

func TestLoadSession(t *testing.T) {
	db := setup(t)
	a := createRecipe(t, db, "A", models.CategoryMediterranean, models.SkillEasy, 10, true)

	profile := NewProfile(5)
	profile.RecipesPerWeek = 1
	require.NoError(t, db.Create(&profile).Error)

	bx := box.New()
	bx.Add(a)
	require.NoError(t, SaveCart(db, 5, bx))
	require.NoError(t, SaveRecipe(db, 5, a.ID))

	s, err := LoadSession(db, 5)
	require.NoError(t, err)
	assert.True(t, s.LoggedIn)
	assert.Equal(t, 1, s.Box.DistinctCount())
	assert.Equal(t, []uint{a.ID}, s.SavedIDs)
	assert.True(t, s.CanCheckout())
}

func TestOrdersAreScopedToOwner(t *testing.T) {
	db := setup(t)
	user := models.User{Name: "Ada", Email: "ada@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)

	order := models.Order{UserID: user.ID, OrderNumber: "HC-1", TotalPrice: 20, Status: models.OrderPending}
	require.NoError(t, CreateOrder(db, &order))

	mine, err := UserOrders(db, user.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = UserOrder(db, user.ID+1, order.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	updated, err := UpdateOrderStatus(db, order.ID, models.OrderShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderShipped, updated.Status)

	all, err := AllOrders(db, models.OrderShipped)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].User)
	assert.Equal(t, "ada@example.com", all[0].User.Email)
}

func TestUpsertWeeklyMenu(t *testing.T) {
	db := setup(t)

	menu, err := UpsertWeeklyMenu(db, "2024-10-14", []uint{1, 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, []uint(menu.RecipeIDs))

	menu, err = UpsertWeeklyMenu(db, "2024-10-14", []uint{3}, nil)
	require.NoError(t, err)
	assert.Equal(t, []uint{3}, []uint(menu.RecipeIDs))

	menus, err := WeeklyMenus(db)
	require.NoError(t, err)
	assert.Len(t, menus, 1)

	published, err := PublishedWeeklyMenus(db)
	require.NoError(t, err)
	assert.Empty(t, published)
}
