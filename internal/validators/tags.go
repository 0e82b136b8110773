package validators

import (
	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/MKhiriev/go-notify-settings/models"
)

const (
	tagLogLevel = "loglevel"
	tagNotBlank = "notblank"
)

// newValidate builds a go-playground validator with the custom tags used by
// this package registered. Registration only fails on an empty tag or a nil
// function, neither of which can happen here.
func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation(tagLogLevel, isLogLevel)
	_ = v.RegisterValidation(tagNotBlank, nonstandard.NotBlank)
	return v
}

// isLogLevel accepts any recognized level regardless of case.
func isLogLevel(fl validator.FieldLevel) bool {
	_, ok := models.ParseLogLevel(fl.Field().String())
	return ok
}
