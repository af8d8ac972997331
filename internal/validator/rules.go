package validator

import (
	"github.com/go-playground/validator/v10"

	"petlink_backend/internal/models"
)

// registerCustomRules installs the domain-specific tags. The coordinate
// checks use the builtin latitude/longitude tags; only the two status
// vocabularies need custom rules.
func registerCustomRules(v *validator.Validate) {
	_ = v.RegisterValidation("rescue_status", func(fl validator.FieldLevel) bool {
		return models.RescueStatus(fl.Field().String()).IsValid()
	})

	_ = v.RegisterValidation("adoption_status", func(fl validator.FieldLevel) bool {
		return models.AdoptionStatus(fl.Field().String()).IsValid()
	})
}
