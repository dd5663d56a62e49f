package validators

import (
	"strings"

	"homecooked/middleware"

	"github.com/gofiber/fiber/v2"
)

// normalizer is implemented by requests that clean their own input before validation.
type normalizer interface {
	Normalize()
}

// Body parses the JSON body into T, validates it and stores it in Locals under key.
func Body[T any](key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)
		if err := c.BodyParser(req); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		return finish(c, key, req)
	}
}

// Query does the same as Body for query string parameters.
func Query[T any](key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(T)
		if err := c.QueryParser(req); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}
		return finish(c, key, req)
	}
}

func finish(c *fiber.Ctx, key string, req interface{}) error {
	if n, ok := req.(normalizer); ok {
		n.Normalize()
	}
	if errors := Check(req); errors != nil {
		return middleware.ValidationErrorResponse(c, errors)
	}
	c.Locals(key, req)
	return c.Next()
}

// ParamID reads a positive numeric route parameter.
func ParamID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 1 {
		return 0, false
	}
	return uint(id), true
}

type Pagination struct {
	Page  int `query:"page" json:"page" validate:"gte=0"`
	Limit int `query:"limit" json:"limit" validate:"gte=0,lte=100"`
}

func (p *Pagination) Defaults() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 20
	}
}

func Trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
