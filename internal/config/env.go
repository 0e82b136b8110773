// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-notify-settings/internal/validators"
)

// EnvPrefix is prepended to every environment variable name read by
// [EnvSource].
const EnvPrefix = "NOTIFY_"

// EnvSource reads partial settings from environment variables:
//
//	NOTIFY_AUTOSTART    bool
//	NOTIFY_LOG_LEVEL    string
//	NOTIFY_SERVER_HOST  string
//	NOTIFY_SERVER_PORT  int
//
// Unset or empty variables leave the corresponding field absent.
type EnvSource struct{}

// Load parses the environment. A value that cannot be converted to the
// field's type is reported as [validators.ErrInvalidConfig].
func (EnvSource) Load() (PartialSettings, error) {
	var p PartialSettings
	if err := parseEnv(&p); err != nil {
		return PartialSettings{}, err
	}

	return p, nil
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [PartialSettings] and its nested types.
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("%w: error getting env configs: %w", validators.ErrInvalidConfig, err)
	}

	return nil
}
