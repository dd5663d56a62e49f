package cartValidator

import (
	"homecooked/validators"

	"github.com/gofiber/fiber/v2"
)

type AddRequest struct {
	RecipeID uint `json:"recipeId" validate:"required"`
}

type UpdateQuantityRequest struct {
	RecipeID uint `json:"recipeId" validate:"required"`
	Delta    int  `json:"delta" validate:"ne=0"`
}

func Add() fiber.Handler {
	return validators.Body[AddRequest]("validatedCartAdd")
}

func UpdateQuantity() fiber.Handler {
	return validators.Body[UpdateQuantityRequest]("validatedCartQuantity")
}
