// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notify-settings/internal/config"
	"github.com/MKhiriev/go-notify-settings/internal/validators"
	"github.com/MKhiriev/go-notify-settings/models"
)

type configResolver struct {
	settingsValidator     validators.Validator
	notificationValidator validators.Validator
}

// NewConfigResolver constructs a [ConfigResolver] backed by the given
// validators. Nil validators are replaced with the package defaults.
func NewConfigResolver(settingsValidator, notificationValidator validators.Validator) ConfigResolver {
	if settingsValidator == nil {
		settingsValidator = validators.NewSettingsValidator()
	}
	if notificationValidator == nil {
		notificationValidator = validators.NewNotificationValidator()
	}

	return &configResolver{
		settingsValidator:     settingsValidator,
		notificationValidator: notificationValidator,
	}
}

func (r *configResolver) ResolveSettings(ctx context.Context, partial config.PartialSettings) (models.Settings, error) {
	merged := config.DefaultPartialSettings()
	if err := config.Merge(&merged, partial); err != nil {
		return models.Settings{}, fmt.Errorf("%w: %w", validators.ErrInvalidConfig, err)
	}

	settings := merged.Settings()
	if err := r.settingsValidator.Validate(ctx, settings); err != nil {
		return models.Settings{}, fmt.Errorf("error during settings validation: %w", err)
	}

	return normalizeSettings(settings), nil
}

func (r *configResolver) LoadSettings(ctx context.Context, sources ...config.Source) (models.Settings, error) {
	partial, err := config.Collect(sources...)
	if err != nil {
		return models.Settings{}, fmt.Errorf("error loading settings: %w", err)
	}

	return r.ResolveSettings(ctx, partial)
}

func (r *configResolver) ValidateNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	if err := r.notificationValidator.Validate(ctx, n); err != nil {
		return models.Notification{}, fmt.Errorf("error during notification validation: %w", err)
	}

	return n, nil
}

func (r *configResolver) DecodeNotification(ctx context.Context, data []byte) (models.Notification, error) {
	var n models.Notification
	if err := json.Unmarshal(data, &n); err != nil {
		return models.Notification{}, validators.FromDecodeError(validators.ErrInvalidNotification, err)
	}

	return r.ValidateNotification(ctx, n)
}

// normalizeSettings brings a validated value into canonical form: the log
// level upper-cased and the host trimmed.
func normalizeSettings(s models.Settings) models.Settings {
	if level, ok := models.ParseLogLevel(string(s.LogLevel)); ok {
		s.LogLevel = level
	}
	s.Server.Host = strings.TrimSpace(s.Server.Host)

	return s
}
