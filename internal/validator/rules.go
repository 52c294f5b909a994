package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"pitchplan_backend/internal/models"
)

// registerCustomRules registers domain validation tags on the validator
// instance. A failed registration is a startup error.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'sessiontype': outfield or goalkeeping
	mustRegister("sessiontype", validateSessionType)

	// 'plantype': free or pro
	mustRegister("plantype", validatePlanType)
}

func validateSessionType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty values are handled by 'required'
	}

	switch models.SessionType(value) {
	case models.SessionTypeOutfield, models.SessionTypeGoalkeeping:
		return true
	default:
		return false
	}
}

func validatePlanType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	switch models.PlanType(value) {
	case models.PlanTypeFree, models.PlanTypePro:
		return true
	default:
		return false
	}
}
