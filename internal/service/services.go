package service

import (
	"github.com/MKhiriev/go-notify-settings/internal/validators"
)

// Services groups the application services exposed to external
// collaborators.
type Services struct {
	ConfigResolver ConfigResolver
}

// NewServices wires every service with its default dependencies.
func NewServices() *Services {
	return &Services{
		ConfigResolver: NewConfigResolver(validators.NewSettingsValidator(), validators.NewNotificationValidator()),
	}
}
