package adminController

import (
	"errors"

	"homecooked/database"
	"homecooked/logger"
	"homecooked/middleware"
	"homecooked/models"
	"homecooked/validators"
	"homecooked/weeks"
	adminValidator "homecooked/validators/admin"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

// findByParam loads the row named by :id, writing the error response itself on failure.
func findByParam[T any](c *fiber.Ctx, what string) (*T, error) {
	id, ok := validators.ParamID(c, "id")
	if !ok {
		return nil, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+what+" id!", nil)
	}
	row := new(T)
	if err := database.Database.Db.First(row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, what+" not found!", nil)
		}
		return nil, middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch "+what+"!", nil)
	}
	return row, nil
}

func save(c *fiber.Ctx, row interface{}, status int, message string) error {
	if err := database.Database.Db.Save(row).Error; err != nil {
		logger.Log.Errorf("Error saving %T: %v", row, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save!", nil)
	}
	return middleware.JsonResponse(c, status, true, message, row)
}

func remove[T any](c *fiber.Ctx, what string) error {
	row, errResp := findByParam[T](c, what)
	if row == nil {
		return errResp
	}
	if err := database.Database.Db.Delete(row).Error; err != nil {
		logger.Log.Errorf("Error deleting %s: %v", what, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete "+what+"!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, what+" deleted.", nil)
}

// --- Producers ---

func applyProducer(p *models.Producer, reqData *adminValidator.ProducerRequest) {
	p.Name = reqData.Name
	p.Location = reqData.Location
	p.Specialty = reqData.Specialty
	p.Story = reqData.Story
	p.ImageURL = reqData.ImageURL
	p.IsActive = boolOr(reqData.IsActive, p.IsActive)
}

func ListProducers(c *fiber.Ctx) error {
	producers := []models.Producer{}
	if err := database.Database.Db.Order("id").Find(&producers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch producers!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Producer list.", producers)
}

func CreateProducer(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProducer").(*adminValidator.ProducerRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	producer := models.Producer{IsActive: true}
	applyProducer(&producer, reqData)
	return save(c, &producer, fiber.StatusCreated, "Producer created.")
}

func UpdateProducer(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProducer").(*adminValidator.ProducerRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	producer, errResp := findByParam[models.Producer](c, "Producer")
	if producer == nil {
		return errResp
	}
	applyProducer(producer, reqData)
	return save(c, producer, fiber.StatusOK, "Producer updated.")
}

func DeleteProducer(c *fiber.Ctx) error {
	return remove[models.Producer](c, "Producer")
}

// --- Journal ---

func applyJournal(j *models.JournalEntry, reqData *adminValidator.JournalRequest) {
	j.Title = reqData.Title
	j.Excerpt = reqData.Excerpt
	j.Content = reqData.Content
	j.Category = reqData.Category
	j.ImageURL = reqData.ImageURL
	if reqData.Date != "" {
		j.Date = reqData.Date
	}
	if j.Date == "" {
		j.Date = now().Format(weeks.Layout)
	}
	j.IsPublished = boolOr(reqData.IsPublished, j.IsPublished)
}

func ListJournal(c *fiber.Ctx) error {
	entries := []models.JournalEntry{}
	if err := database.Database.Db.Order("date DESC").Order("id DESC").Find(&entries).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch journal!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Journal entries.", entries)
}

func CreateJournalEntry(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedJournal").(*adminValidator.JournalRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	entry := models.JournalEntry{IsPublished: true}
	applyJournal(&entry, reqData)
	return save(c, &entry, fiber.StatusCreated, "Journal entry created.")
}

func UpdateJournalEntry(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedJournal").(*adminValidator.JournalRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	entry, errResp := findByParam[models.JournalEntry](c, "Journal entry")
	if entry == nil {
		return errResp
	}
	applyJournal(entry, reqData)
	return save(c, entry, fiber.StatusOK, "Journal entry updated.")
}

func DeleteJournalEntry(c *fiber.Ctx) error {
	return remove[models.JournalEntry](c, "Journal entry")
}

// --- Plans ---

func applyPlan(p *models.SubscriptionPlan, reqData *adminValidator.PlanRequest) {
	p.Name = reqData.Name
	p.People = reqData.People
	p.MealsPerWeek = reqData.MealsPerWeek
	p.Price = reqData.Price
	p.Features = datatypes.NewJSONSlice(nonNil(reqData.Features))
	p.IsActive = boolOr(reqData.IsActive, p.IsActive)
}

func ListPlans(c *fiber.Ctx) error {
	plans := []models.SubscriptionPlan{}
	if err := database.Database.Db.Order("people").Order("meals_per_week").Find(&plans).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch plans!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan list.", plans)
}

func CreatePlan(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPlan").(*adminValidator.PlanRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	plan := models.SubscriptionPlan{IsActive: true}
	applyPlan(&plan, reqData)
	return save(c, &plan, fiber.StatusCreated, "Plan created.")
}

func UpdatePlan(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPlan").(*adminValidator.PlanRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}
	plan, errResp := findByParam[models.SubscriptionPlan](c, "Plan")
	if plan == nil {
		return errResp
	}
	applyPlan(plan, reqData)
	return save(c, plan, fiber.StatusOK, "Plan updated.")
}

func DeletePlan(c *fiber.Ctx) error {
	return remove[models.SubscriptionPlan](c, "Plan")
}
