package validators

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-notify-settings/internal/app"
	"github.com/MKhiriev/go-notify-settings/models"
)

// Field names accepted by [NotificationValidator].
const (
	// FieldDisplayable targets the rule that at least one of title,
	// subtitle, content or image is present.
	FieldDisplayable = "title|subtitle|content|image"

	FieldImageURL    = "image.url"
	FieldImageHeight = "image.height"
	FieldImageWidth  = "image.width"
	FieldTimeout     = "timeout"
)

// NotificationValidator checks models.Notification values before they are
// passed to a display collaborator.
type NotificationValidator struct {
	validate *validator.Validate
}

// NewNotificationValidator constructs a NotificationValidator and returns it
// as the Validator interface.
func NewNotificationValidator() Validator {
	return &NotificationValidator{
		validate: newValidate(),
	}
}

// Validate accepts models.Notification or *models.Notification.
// Returns ErrUnsupportedType for anything else.
func (v *NotificationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Notification:
		return v.validateNotification(ctx, value, fields...)
	case *models.Notification:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateNotification(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateNotification validates a single notification.
//
// Default validated fields: displayable content, image url, image height,
// image width, timeout. Image and timeout checks only trigger when the
// corresponding pointer is non-nil.
func (v *NotificationValidator) validateNotification(ctx context.Context, n models.Notification, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDisplayable, FieldImageURL, FieldImageHeight, FieldImageWidth, FieldTimeout}
	}

	for _, f := range fields {
		switch f {
		case FieldDisplayable:
			if !n.HasDisplayableContent() {
				return invalidNotification(f, nil, app.MsgNoDisplayableContent)
			}
		case FieldImageURL:
			if n.Image == nil {
				continue
			}
			if err := v.validate.VarCtx(ctx, n.Image.URL, "required"); err != nil {
				return invalidNotification(f, n.Image.URL, app.MsgImageURLEmpty)
			}
		case FieldImageHeight:
			if n.Image == nil {
				continue
			}
			if err := v.nonNegative(ctx, n.Image.Height); err != nil {
				return invalidNotification(f, *n.Image.Height, app.MsgNegativeDimension)
			}
		case FieldImageWidth:
			if n.Image == nil {
				continue
			}
			if err := v.nonNegative(ctx, n.Image.Width); err != nil {
				return invalidNotification(f, *n.Image.Width, app.MsgNegativeDimension)
			}
		case FieldTimeout:
			if err := v.nonNegative(ctx, n.Timeout); err != nil {
				return invalidNotification(f, *n.Timeout, app.MsgNegativeTimeout)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// nonNegative passes for nil; otherwise the pointed-to value must be >= 0.
func (v *NotificationValidator) nonNegative(ctx context.Context, value *int) error {
	if value == nil {
		return nil
	}
	return v.validate.VarCtx(ctx, *value, "min=0")
}
