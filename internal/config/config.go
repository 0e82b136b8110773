// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/go-notify-settings/models"
)

// PartialSettings is a possibly incomplete [models.Settings] as supplied by a
// settings source. A nil pointer means the field was absent or null and
// falls back to the next layer or the compiled-in default.
//
// Struct tags:
//   - json:      key in a persisted settings payload.
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       environment variable name, after the global [EnvPrefix].
type PartialSettings struct {
	// Autostart overrides whether the application launches at system startup.
	// Env: NOTIFY_AUTOSTART
	Autostart *bool `json:"autostart" env:"AUTOSTART"`

	// LogLevel overrides the log verbosity. Any casing is accepted here;
	// the resolver normalizes it.
	// Env: NOTIFY_LOG_LEVEL
	LogLevel *string `json:"log_level" env:"LOG_LEVEL"`

	// Server overrides individual fields of the server bind address.
	// It is a value, not a pointer, so a layer that sets only the port
	// keeps the host of the layers below it.
	Server PartialServer `json:"server" envPrefix:"SERVER_"`
}

// PartialServer is a possibly incomplete [models.Server].
type PartialServer struct {
	// Env: NOTIFY_SERVER_HOST
	Host *string `json:"host" env:"HOST"`

	// Env: NOTIFY_SERVER_PORT
	Port *int `json:"port" env:"PORT"`
}

// DefaultPartialSettings returns the compiled-in defaults as a fully
// populated partial. Each call allocates fresh pointers.
func DefaultPartialSettings() PartialSettings {
	return FromSettings(models.DefaultSettings())
}

// FromSettings lifts a complete settings value into a partial with every
// field present.
func FromSettings(s models.Settings) PartialSettings {
	autostart := s.Autostart
	logLevel := string(s.LogLevel)
	host := s.Server.Host
	port := s.Server.Port

	return PartialSettings{
		Autostart: &autostart,
		LogLevel:  &logLevel,
		Server: PartialServer{
			Host: &host,
			Port: &port,
		},
	}
}

// Settings copies the partial into a [models.Settings]. Absent fields become
// zero values, so callers merge over [DefaultPartialSettings] first.
func (p PartialSettings) Settings() models.Settings {
	var s models.Settings
	if p.Autostart != nil {
		s.Autostart = *p.Autostart
	}
	if p.LogLevel != nil {
		s.LogLevel = models.LogLevel(*p.LogLevel)
	}
	if p.Server.Host != nil {
		s.Server.Host = *p.Server.Host
	}
	if p.Server.Port != nil {
		s.Server.Port = *p.Server.Port
	}
	return s
}

// IsEmpty reports whether no field is present.
func (p PartialSettings) IsEmpty() bool {
	return p.Autostart == nil && p.LogLevel == nil && p.Server.Host == nil && p.Server.Port == nil
}
