package validators

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notify-settings/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidConfig is the kind of every settings validation failure.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidNotification is the kind of every notification validation failure.
	ErrInvalidNotification = errors.New("invalid notification")
)

// FieldError describes a single rejected field. It unwraps to its Kind, so
// callers match it with errors.Is against [ErrInvalidConfig] or
// [ErrInvalidNotification] and extract details with errors.As.
type FieldError struct {
	// Kind is ErrInvalidConfig or ErrInvalidNotification.
	Kind error
	// Field is the dotted path of the offending field, e.g. "server.port".
	Field string
	// Value is the value received for Field, nil when the field was absent.
	Value any
	// Reason is a user-facing explanation taken from the app package.
	Reason string
}

func (e *FieldError) Error() string {
	msg := e.Kind.Error()
	if e.Field != "" {
		msg += ": " + e.Field
	}
	msg += " " + e.Reason
	if e.Value != nil {
		msg += fmt.Sprintf(" (got %#v)", e.Value)
	}
	return msg
}

func (e *FieldError) Unwrap() error {
	return e.Kind
}

func invalidConfig(field string, value any, reason string) error {
	return &FieldError{Kind: ErrInvalidConfig, Field: field, Value: value, Reason: reason}
}

func invalidNotification(field string, value any, reason string) error {
	return &FieldError{Kind: ErrInvalidNotification, Field: field, Value: value, Reason: reason}
}

// FromDecodeError converts a JSON decoding failure into a validation error of
// the given kind. Type mismatches keep the JSON path of the offending field.
func FromDecodeError(kind error, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &FieldError{Kind: kind, Field: typeErr.Field, Value: typeErr.Value, Reason: app.MsgWrongType}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &FieldError{Kind: kind, Reason: fmt.Sprintf("%s at offset %d", app.MsgMalformedPayload, syntaxErr.Offset)}
	}

	return fmt.Errorf("%w: %w", kind, err)
}
