package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotification_HasDisplayableContent(t *testing.T) {
	empty := ""

	assert.False(t, Notification{}.HasDisplayableContent())
	assert.False(t, Notification{Timeout: new(int)}.HasDisplayableContent())

	assert.True(t, Notification{Title: &empty}.HasDisplayableContent())
	assert.True(t, Notification{Subtitle: &empty}.HasDisplayableContent())
	assert.True(t, Notification{Content: &empty}.HasDisplayableContent())
	assert.True(t, Notification{Image: &Image{}}.HasDisplayableContent())
}

func TestNotification_JSONDistinguishesAbsentFromEmpty(t *testing.T) {
	var n Notification
	require.NoError(t, json.Unmarshal([]byte(`{"title": "", "subtitle": null}`), &n))

	require.NotNil(t, n.Title)
	assert.Equal(t, "", *n.Title)
	assert.Nil(t, n.Subtitle)
	assert.Nil(t, n.Content)
}

func TestNotification_MarshalOmitsAbsent(t *testing.T) {
	title := "Hi"
	data, err := json.Marshal(Notification{Title: &title})
	require.NoError(t, err)

	assert.JSONEq(t, `{"title": "Hi"}`, string(data))
}
