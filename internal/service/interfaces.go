package service

import (
	"context"

	"github.com/MKhiriev/go-notify-settings/internal/config"
	"github.com/MKhiriev/go-notify-settings/models"
)

// ConfigResolver turns partial settings into complete, valid settings and
// checks notifications before they are handed to a display collaborator.
//
// Both operations are pure: they read only their input and the compiled-in
// defaults, perform no I/O and may be called concurrently.
type ConfigResolver interface {
	// ResolveSettings deep-merges partial over the compiled-in defaults,
	// validates the result and returns it normalized. Failures wrap
	// validators.ErrInvalidConfig.
	ResolveSettings(ctx context.Context, partial config.PartialSettings) (models.Settings, error)

	// LoadSettings collects partial settings from sources, later sources
	// overriding earlier ones, and resolves the result.
	LoadSettings(ctx context.Context, sources ...config.Source) (models.Settings, error)

	// ValidateNotification returns n unchanged when it is valid. Failures
	// wrap validators.ErrInvalidNotification.
	ValidateNotification(ctx context.Context, n models.Notification) (models.Notification, error)

	// DecodeNotification decodes a JSON notification and validates it.
	DecodeNotification(ctx context.Context, data []byte) (models.Notification, error)
}
