package config

//go:generate mockgen -source=interfaces.go -destination=../mock/source_mock.go -package=mock

// Source supplies one layer of partial settings, e.g. from the environment
// or from a payload read by a persistence collaborator.
type Source interface {
	// Load returns the fields this source provides. An empty partial is a
	// valid result and means the source sets nothing.
	Load() (PartialSettings, error)
}

// StaticSource is an in-memory [Source] returning a fixed partial.
type StaticSource PartialSettings

// Load returns the partial unchanged.
func (s StaticSource) Load() (PartialSettings, error) {
	return PartialSettings(s), nil
}
