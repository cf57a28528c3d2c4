package validator

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	"insurai_backend/internal/models"
)

// registerCustomRules installs all custom validation tags.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that fails to register is a startup error.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-category': USER, AGENT or ADMIN
	mustRegister("is-user-category", validateUserCategory)

	// 'is-hhmm': time of day, "09:30"
	mustRegister("is-hhmm", validateHHMM)

	// 'is-date': calendar day, "2024-06-01"
	mustRegister("is-date", validateDate)
}

func validateUserCategory(fl validator.FieldLevel) bool {
	return models.UserCategory(fl.Field().String()).Valid()
}

func validateHHMM(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // combine with 'required' where the field is mandatory
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}

func validateDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
