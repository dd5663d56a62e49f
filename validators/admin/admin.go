package adminValidator

import (
	"strings"

	"homecooked/models"
	"homecooked/validators"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type RecipeRequest struct {
	Title       string               `json:"title" validate:"required,max=200"`
	Description string               `json:"description" validate:"max=2000"`
	PrepTime    string               `json:"prepTime" validate:"max=50"`
	Servings    int                  `json:"servings" validate:"gte=0,lte=12"`
	Calories    int                  `json:"calories" validate:"gte=0"`
	Price       float64              `json:"price" validate:"gte=0"`
	ImageURL    string               `json:"imageUrl" validate:"omitempty,url"`
	Category    string               `json:"category" validate:"category"`
	SkillLevel  string               `json:"skillLevel" validate:"skill"`
	Ingredients []models.Ingredient  `json:"ingredients" validate:"dive"`
	Steps       []models.CookingStep `json:"steps" validate:"dive"`
	Nutrition   models.Nutrition     `json:"nutrition"`
	IsActive    *bool                `json:"isActive"`
}

func (r *RecipeRequest) Normalize() {
	validators.Trim(&r.Title, &r.Description, &r.PrepTime, &r.ImageURL)
	if r.Category == "" {
		r.Category = models.CategoryModernBritish
	}
	if r.SkillLevel == "" {
		r.SkillLevel = models.SkillEasy
	}
	if r.Servings == 0 {
		r.Servings = 2
	}
}

type BulkDeleteRequest struct {
	IDs []uint `json:"ids" validate:"required,min=1,dive,gt=0"`
}

type ImportRequest struct {
	Format string `json:"format" validate:"required,oneof=csv markdown md"`
	Data   string `json:"data" validate:"required"`
}

func (r *ImportRequest) Normalize() {
	r.Format = strings.ToLower(strings.TrimSpace(r.Format))
}

type RecipeListRequest struct {
	validators.Pagination
	Search     string `query:"search" validate:"max=100"`
	Category   string `query:"category" validate:"omitempty,category"`
	SkillLevel string `query:"skillLevel" validate:"omitempty,skill"`
}

func (r *RecipeListRequest) Normalize() {
	r.Defaults()
	r.Search = strings.TrimSpace(r.Search)
}

type WeeklyMenuRequest struct {
	WeekOf    string `json:"weekOf" validate:"required,date"`
	RecipeIDs []uint `json:"recipeIds" validate:"dive,gt=0"`
}

type ToggleWeeklyRecipeRequest struct {
	WeekOf   string `json:"weekOf" validate:"required,date"`
	RecipeID uint   `json:"recipeId" validate:"required"`
}

type PublishRequest struct {
	WeekOf      string `json:"weekOf" validate:"required,date"`
	IsPublished bool   `json:"isPublished"`
}

type UserStatusRequest struct {
	Status string `json:"status" validate:"required,accountStatus"`
}

type OrderStatusRequest struct {
	Status string `json:"status" validate:"required,orderStatus"`
}

type OrderListRequest struct {
	Status string `query:"status" validate:"omitempty,orderStatus"`
}

type ProducerRequest struct {
	Name      string `json:"name" validate:"required,max=150"`
	Location  string `json:"location" validate:"max=150"`
	Specialty string `json:"specialty" validate:"max=150"`
	Story     string `json:"story" validate:"max=2000"`
	ImageURL  string `json:"imageUrl" validate:"omitempty,url"`
	IsActive  *bool  `json:"isActive"`
}

type JournalRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Excerpt     string `json:"excerpt" validate:"max=500"`
	Content     string `json:"content"`
	Category    string `json:"category" validate:"max=100"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
	Date        string `json:"date" validate:"omitempty,date"`
	IsPublished *bool  `json:"isPublished"`
}

type PlanRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	People       int      `json:"people" validate:"oneof=2 4"`
	MealsPerWeek int      `json:"mealsPerWeek" validate:"gte=2,lte=5"`
	Price        float64  `json:"price" validate:"gte=0"`
	Features     []string `json:"features" validate:"dive,required"`
	IsActive     *bool    `json:"isActive"`
}

func AdminLogin() fiber.Handler {
	return validators.Body[LoginRequest]("validatedLogin")
}

func Recipe() fiber.Handler {
	return validators.Body[RecipeRequest]("validatedRecipe")
}

func BulkDelete() fiber.Handler {
	return validators.Body[BulkDeleteRequest]("validatedBulkDelete")
}

func Import() fiber.Handler {
	return validators.Body[ImportRequest]("validatedImport")
}

func RecipeList() fiber.Handler {
	return validators.Query[RecipeListRequest]("validatedRecipeList")
}

func WeeklyMenu() fiber.Handler {
	return validators.Body[WeeklyMenuRequest]("validatedWeeklyMenu")
}

func ToggleWeeklyRecipe() fiber.Handler {
	return validators.Body[ToggleWeeklyRecipeRequest]("validatedWeeklyRecipe")
}

func Publish() fiber.Handler {
	return validators.Body[PublishRequest]("validatedPublish")
}

func UserStatus() fiber.Handler {
	return validators.Body[UserStatusRequest]("validatedUserStatus")
}

func OrderStatus() fiber.Handler {
	return validators.Body[OrderStatusRequest]("validatedOrderStatus")
}

func OrderList() fiber.Handler {
	return validators.Query[OrderListRequest]("validatedOrderList")
}

func Producer() fiber.Handler {
	return validators.Body[ProducerRequest]("validatedProducer")
}

func Journal() fiber.Handler {
	return validators.Body[JournalRequest]("validatedJournal")
}

func Plan() fiber.Handler {
	return validators.Body[PlanRequest]("validatedPlan")
}
