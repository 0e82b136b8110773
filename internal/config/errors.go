package config

import "errors"

var (
	// ErrNilSource is returned by [Collect] when one of the sources is nil.
	ErrNilSource = errors.New("nil settings source")
)
