package validators

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-notify-settings/internal/app"
	"github.com/MKhiriev/go-notify-settings/models"
)

// Field names accepted by [SettingsValidator]. They double as the Field of
// the returned [FieldError].
const (
	FieldLogLevel   = "log_level"
	FieldServerHost = "server.host"
	FieldServerPort = "server.port"
)

// SettingsValidator checks merged models.Settings values. Log levels are
// matched case-insensitively and hosts are checked after trimming, so it can
// run on a value before it is normalized.
type SettingsValidator struct {
	validate *validator.Validate
}

// NewSettingsValidator constructs a SettingsValidator and returns it as the
// Validator interface.
func NewSettingsValidator() Validator {
	return &SettingsValidator{
		validate: newValidate(),
	}
}

// Validate accepts models.Settings or *models.Settings.
// Returns ErrUnsupportedType for anything else.
func (v *SettingsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Settings:
		return v.validateSettings(ctx, value, fields...)
	case *models.Settings:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSettings(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateSettings checks log_level, server.host and server.port by default
// and returns the first failure.
func (v *SettingsValidator) validateSettings(ctx context.Context, s models.Settings, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogLevel, FieldServerHost, FieldServerPort}
	}

	for _, f := range fields {
		switch f {
		case FieldLogLevel:
			if err := v.validate.VarCtx(ctx, string(s.LogLevel), "required,"+tagLogLevel); err != nil {
				return invalidConfig(f, string(s.LogLevel), app.MsgLogLevelNotRecognized)
			}
		case FieldServerHost:
			if err := v.validate.VarCtx(ctx, s.Server.Host, tagNotBlank); err != nil {
				return invalidConfig(f, s.Server.Host, app.MsgServerHostEmpty)
			}
		case FieldServerPort:
			if err := v.validate.VarCtx(ctx, s.Server.Port, "min=1,max=65535"); err != nil {
				return invalidConfig(f, s.Server.Port, app.MsgServerPortOutOfRange)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
