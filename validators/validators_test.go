package validators

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string `json:"email" validate:"required,email"`
	Category string `json:"category" validate:"omitempty,category"`
	Skill    string `json:"skillLevel" validate:"skillOrAll"`
	Date     string `json:"date" validate:"omitempty,date"`
	People   int    `json:"people" validate:"oneof=2 4"`
}

func (s *sample) Normalize() {
	s.Email = strings.TrimSpace(s.Email)
}

func TestCheck(t *testing.T) {
	ok := sample{Email: "a@b.co", Category: "Mediterranean", Skill: "All", Date: "2024-10-14", People: 4}
	assert.Nil(t, Check(&ok))

	bad := sample{Email: "nope", Category: "Tex-Mex", Skill: "Expert", Date: "14/10/2024", People: 3}
	errors := Check(&bad)
	assert.Equal(t, "Invalid email!", errors["email"])
	assert.Contains(t, errors["category"], "Modern British")
	assert.Contains(t, errors["skillLevel"], "All")
	assert.Equal(t, "date must be a date in YYYY-MM-DD format!", errors["date"])
	assert.Equal(t, "people must be one of: 2, 4!", errors["people"])
}

func TestBody(t *testing.T) {
	app := fiber.New()
	app.Post("/", Body[sample]("validatedSample"), func(c *fiber.Ctx) error {
		req := c.Locals("validatedSample").(*sample)
		return c.SendString(req.Email)
	})

	send := func(body string) (int, string) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(raw)
	}

	status, body := send(`{"email":"  cook@example.com ","skillLevel":"Easy","people":2}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "cook@example.com", body)

	status, body = send(`{"email":"cook@example.com","skillLevel":"Easy","people":5}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	assert.Equal(t, false, envelope["status"])

	assert.Equal(t, "Validation failed!", envelope["message"])
	assert.Equal(t, map[string]interface{}{"people": "people must be one of: 2, 4!"}, envelope["data"])

	status, _ = send(`{`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

type statusChange struct {
	Order   string `json:"order" validate:"omitempty,orderStatus"`
	Account string `json:"account" validate:"omitempty,accountStatus"`
	Skill   string `json:"skill" validate:"omitempty,skill"`
}

func TestStatusTags(t *testing.T) {
	assert.Nil(t, Check(&statusChange{Order: "delivered", Account: "Paused", Skill: "Medium"}))

	errors := Check(&statusChange{Order: "lost", Account: "Frozen", Skill: "All"})
	assert.Contains(t, errors["order"], "pending")
	assert.Equal(t, "account must be one of: Active, Paused, Cancelled!", errors["account"])
	assert.Equal(t, "skill must be one of: Easy, Medium, Advanced!", errors["skill"])
}

type listQuery struct {
	Pagination
	Search string `query:"search"`
}

func (q *listQuery) Normalize() {
	q.Defaults()
}

func TestQueryDefaults(t *testing.T) {
	app := fiber.New()
	app.Get("/", Query[listQuery]("validatedList"), func(c *fiber.Ctx) error {
		q := c.Locals("validatedList").(*listQuery)
		return c.JSON(fiber.Map{"page": q.Page, "limit": q.Limit, "search": q.Search})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/?search=duck", nil), -1)
	require.NoError(t, err)
	var got map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.EqualValues(t, 1, got["page"])
	assert.EqualValues(t, 20, got["limit"])
	assert.Equal(t, "duck", got["search"])

	resp, err = app.Test(httptest.NewRequest("GET", "/?limit=500", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
