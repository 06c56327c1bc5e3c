package utils

import (
	"math"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("rating_scale", validateRatingScale)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateObjectID(fl validator.FieldLevel) bool {
	_, err := primitive.ObjectIDFromHex(fl.Field().String())
	return err == nil
}

// Ratings are accepted on a half-point scale from 1.0 to 5.0 inclusive.
func validateRatingScale(fl validator.FieldLevel) bool {
	value := fl.Field().Float()
	if value < 1.0 || value > 5.0 {
		return false
	}
	doubled := value * 2
	return doubled == math.Trunc(doubled)
}

// IsValidEntityReference reports whether raw is a syntactically valid entity
// identifier. Shared by the authorization chain's fail-fast input check.
func IsValidEntityReference(raw string) bool {
	_, err := primitive.ObjectIDFromHex(raw)
	return err == nil
}
