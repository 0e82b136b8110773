package config

import (
	"errors"
	"fmt"
)

type configBuilder struct {
	layers []PartialSettings
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]PartialSettings, 0, 4),
	}
}

// Collect loads every source and merges the results in order, later sources
// overriding earlier ones field by field. All load errors are reported
// together. No sources yields an empty partial.
func Collect(sources ...Source) (PartialSettings, error) {
	b := newConfigBuilder()
	for _, src := range sources {
		b.withSource(src)
	}

	return b.build()
}

func (b *configBuilder) build() (PartialSettings, error) {
	if b.err != nil {
		return PartialSettings{}, fmt.Errorf("error occurred during collecting settings: %w", b.err)
	}

	var merged PartialSettings
	if err := Merge(&merged, b.layers...); err != nil {
		return PartialSettings{}, err
	}

	return merged, nil
}

func (b *configBuilder) withSource(src Source) *configBuilder {
	if src == nil {
		b.err = errors.Join(b.err, ErrNilSource)
		return b
	}

	partial, err := src.Load()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, partial)
	return b
}
