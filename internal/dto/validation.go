package dto

import (
	"regexp"

	"github.com/SscSPs/journal_lifecycle_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var formatTokenPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,31}$`)

// RegisterValidators adds the "period" and "exportformat" tags to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("period", validatePeriod); err != nil {
		return err
	}
	return v.RegisterValidation("exportformat", validateExportFormat)
}

func validatePeriod(fl validator.FieldLevel) bool {
	_, err := domain.ParsePeriod(fl.Field().String())
	return err == nil
}

// Unknown formats are accepted as long as they look like a format token;
// they export as csv under their own label.
func validateExportFormat(fl validator.FieldLevel) bool {
	return formatTokenPattern.MatchString(fl.Field().String())
}
