// Package validators holds the struct-tag validation shared by the request
// validators of each route group.
package validators

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"homecooked/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report fields by their json name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("category", oneOfList(models.IsCategory))
	_ = v.RegisterValidation("skill", oneOfList(models.IsSkillLevel))
	_ = v.RegisterValidation("skillOrAll", oneOfList(func(s string) bool {
		return s == models.SkillAll || models.IsSkillLevel(s)
	}))
	_ = v.RegisterValidation("orderStatus", oneOfList(models.IsOrderStatus))
	_ = v.RegisterValidation("accountStatus", oneOfList(func(s string) bool {
		for _, status := range models.AccountStatuses {
			if s == status {
				return true
			}
		}
		return false
	}))
	_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
	return v
}

func oneOfList(ok func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return ok(fl.Field().String())
	}
}

// Check validates req and returns a field -> message map, nil when valid.
func Check(req interface{}) map[string]string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"request": "Invalid request!"}
	}

	errors := make(map[string]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		key := fe.Field()
		if _, seen := errors[key]; seen {
			continue
		}
		errors[key] = message(fe)
	}
	return errors
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", field)
	case "email":
		return "Invalid email!"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long!", field, fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)!", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s!", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s!", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s!", field, fe.Param())
	case "nefield":
		return fmt.Sprintf("%s must be different from %s!", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s!", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s!", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s!", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "ne":
		return fmt.Sprintf("%s must not be %s!", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL!", field)
	case "category":
		return fmt.Sprintf("%s must be one of: %s!", field, strings.Join(models.Categories, ", "))
	case "skill":
		return fmt.Sprintf("%s must be one of: %s!", field, strings.Join(models.SkillLevels, ", "))
	case "skillOrAll":
		return fmt.Sprintf("%s must be one of: %s, %s!", field, strings.Join(models.SkillLevels, ", "), models.SkillAll)
	case "orderStatus":
		return fmt.Sprintf("%s must be one of: %s!", field, strings.Join(models.OrderStatuses, ", "))
	case "accountStatus":
		return fmt.Sprintf("%s must be one of: %s!", field, strings.Join(models.AccountStatuses, ", "))
	case "date":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format!", field)
	}
	return fmt.Sprintf("Invalid %s!", field)
}
