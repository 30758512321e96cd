package validator

import (
	"jobportal_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует доменные правила валидации.
func registerCustomRules(v *validator.Validate) {
	// userrole: закрытый набор ролей {student, admin, recruiter}.
	// Пустое значение пропускаем - обязательность задается тегом required.
	_ = v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, err := models.ParseUserRole(s)
		return err == nil
	})
}
