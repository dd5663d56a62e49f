package profileValidator

import (
	"strings"

	"homecooked/validators"

	"github.com/gofiber/fiber/v2"
)

type UpdateProfileRequest struct {
	People         int      `json:"people" validate:"oneof=2 4"`
	RecipesPerWeek int      `json:"recipesPerWeek" validate:"gte=2,lte=5"`
	SkillLevel     string   `json:"skillLevel" validate:"skillOrAll"`
	Allergies      []string `json:"allergies" validate:"max=20,dive,required,max=50"`
	Preferences    []string `json:"preferences" validate:"max=20,dive,required,max=50"`
}

func (r *UpdateProfileRequest) Normalize() {
	if r.SkillLevel == "" {
		r.SkillLevel = "All"
	}
	r.Allergies = clean(r.Allergies)
	r.Preferences = clean(r.Preferences)
}

// clean trims entries and drops blanks and duplicates, keeping order.
func clean(list []string) []string {
	out := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, v := range list {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

type ToggleAllergyRequest struct {
	Allergy string `json:"allergy" validate:"required,max=50"`
}

func (r *ToggleAllergyRequest) Normalize() {
	r.Allergy = strings.TrimSpace(r.Allergy)
}

type RecommendationRequest struct {
	Preferences string `json:"preferences" validate:"required,max=500"`
}

func (r *RecommendationRequest) Normalize() {
	r.Preferences = strings.TrimSpace(r.Preferences)
}

type ToggleWeekRequest struct {
	WeekOf string `json:"weekOf" validate:"required,date"`
}

type UpdatePlanRequest struct {
	People         int `json:"people" validate:"oneof=2 4"`
	RecipesPerWeek int `json:"recipesPerWeek" validate:"gte=2,lte=5"`
}

type ConfirmSubscriptionRequest struct {
	Reference         string `json:"reference" validate:"required"`
	SubscriptionCode  string `json:"subscriptionCode"`
	CustomerCode      string `json:"customerCode"`
	AuthorizationCode string `json:"authorizationCode"`
}

func UpdateProfile() fiber.Handler {
	return validators.Body[UpdateProfileRequest]("validatedProfile")
}

func Onboarding() fiber.Handler {
	return validators.Body[UpdateProfileRequest]("validatedProfile")
}

func ToggleAllergy() fiber.Handler {
	return validators.Body[ToggleAllergyRequest]("validatedAllergy")
}

func Recommendation() fiber.Handler {
	return validators.Body[RecommendationRequest]("validatedRecommendation")
}

func ToggleWeek() fiber.Handler {
	return validators.Body[ToggleWeekRequest]("validatedWeek")
}

func UpdatePlan() fiber.Handler {
	return validators.Body[UpdatePlanRequest]("validatedPlan")
}

func ConfirmSubscription() fiber.Handler {
	return validators.Body[ConfirmSubscriptionRequest]("validatedSubscription")
}
