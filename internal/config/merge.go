package config

import (
	"fmt"

	"dario.cat/mergo"
)

// Merge applies layers onto dst in order. A field present in a layer
// replaces the one in dst, including explicit zero values such as a port of
// 0; absent fields leave dst untouched.
//
// Pointers are copied, not dereferenced, so dst may share memory with the
// layers. Call [PartialSettings.Settings] to obtain an independent value.
func Merge(dst *PartialSettings, layers ...PartialSettings) error {
	for _, layer := range layers {
		if err := mergo.Merge(dst, layer, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return fmt.Errorf("error merging settings: %w", err)
		}
	}

	return nil
}
