package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notify-settings/models"
)

func TestDefaultPartialSettings_AllFieldsPresent(t *testing.T) {
	p := DefaultPartialSettings()

	require.NotNil(t, p.Autostart)
	require.NotNil(t, p.LogLevel)
	require.NotNil(t, p.Server.Host)
	require.NotNil(t, p.Server.Port)
	assert.Equal(t, models.DefaultSettings(), p.Settings())
}

func TestDefaultPartialSettings_FreshPointers(t *testing.T) {
	a := DefaultPartialSettings()
	b := DefaultPartialSettings()

	*a.Server.Port = 1
	*a.LogLevel = "ERROR"

	assert.Equal(t, models.DefaultServerPort, *b.Server.Port)
	assert.Equal(t, string(models.DefaultLogLevel), *b.LogLevel)
	assert.Equal(t, models.DefaultServerPort, models.DefaultSettings().Server.Port)
}

func TestFromSettings_RoundTrip(t *testing.T) {
	s := models.Settings{
		Autostart: true,
		LogLevel:  models.LogLevelWarn,
		Server:    models.Server{Host: "example.org", Port: 443},
	}

	assert.Equal(t, s, FromSettings(s).Settings())
}

func TestPartialSettings_Settings_AbsentFieldsAreZero(t *testing.T) {
	port := 10
	p := PartialSettings{Server: PartialServer{Port: &port}}

	assert.Equal(t, models.Settings{Server: models.Server{Port: 10}}, p.Settings())
}

func TestPartialSettings_Settings_DoesNotAlias(t *testing.T) {
	host := "a"
	p := PartialSettings{Server: PartialServer{Host: &host}}

	s := p.Settings()
	host = "b"

	assert.Equal(t, "a", s.Server.Host)
}

func TestPartialSettings_IsEmpty(t *testing.T) {
	assert.True(t, PartialSettings{}.IsEmpty())
	assert.False(t, DefaultPartialSettings().IsEmpty())

	autostart := false
	assert.False(t, PartialSettings{Autostart: &autostart}.IsEmpty())
}

func TestStaticSource_Load(t *testing.T) {
	level := "DEBUG"
	p, err := StaticSource(PartialSettings{LogLevel: &level}).Load()

	require.NoError(t, err)
	require.NotNil(t, p.LogLevel)
	assert.Equal(t, "DEBUG", *p.LogLevel)
}
