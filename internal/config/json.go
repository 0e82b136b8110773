package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-notify-settings/internal/validators"
)

// JSONSource decodes partial settings from a JSON payload the caller has
// already read, e.g. the contents of a persisted settings file:
//
//	{"autostart": true, "log_level": "debug", "server": {"port": 9000}}
//
// Missing keys and null values are absent. Empty input is an empty partial.
type JSONSource struct {
	Data []byte
}

// Load decodes Data. Malformed JSON or a value of the wrong type, such as
// "port": "abc" or "port": 80.5, is reported as [validators.ErrInvalidConfig]
// naming the JSON path of the field.
func (s JSONSource) Load() (PartialSettings, error) {
	return parseJSON(s.Data)
}

// MapSource provides partial settings from a generic mapping, nested the same
// way as the JSON payload:
//
//	config.MapSource{"server": map[string]any{"port": 9000}}
//
// Values must be JSON-compatible; type rules are those of [JSONSource].
type MapSource map[string]any

// Load converts the mapping. A nil or empty map is an empty partial.
func (m MapSource) Load() (PartialSettings, error) {
	if len(m) == 0 {
		return PartialSettings{}, nil
	}

	data, err := json.Marshal(map[string]any(m))
	if err != nil {
		return PartialSettings{}, fmt.Errorf("%w: error encoding settings map: %w", validators.ErrInvalidConfig, err)
	}

	return parseJSON(data)
}

func parseJSON(data []byte) (PartialSettings, error) {
	var p PartialSettings
	if len(bytes.TrimSpace(data)) == 0 {
		return p, nil
	}

	if err := json.Unmarshal(data, &p); err != nil {
		return PartialSettings{}, validators.FromDecodeError(validators.ErrInvalidConfig, err)
	}

	return p, nil
}
