// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notify-settings/models"
)

func ptrStr(s string) *string { return &s }
func ptrInt(i int) *int       { return &i }

// ---------------------------------------------------------------------------
// TestNotificationValidator_Dispatch
// ---------------------------------------------------------------------------

func TestNotificationValidator_Dispatch(t *testing.T) {
	v := NewNotificationValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.DefaultSettings()), ErrUnsupportedType)
	})

	t.Run("nil pointer", func(t *testing.T) {
		var n *models.Notification
		require.ErrorIs(t, v.Validate(ctx, n), ErrUnsupportedType)
	})

	t.Run("Notification value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.Notification{Title: ptrStr("Hi")}))
	})

	t.Run("Notification pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.Notification{Content: ptrStr("body")}))
	})

	t.Run("unknown field", func(t *testing.T) {
		n := models.Notification{Title: ptrStr("Hi")}
		require.ErrorIs(t, v.Validate(ctx, n, "sound"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestNotificationValidator_Content
// ---------------------------------------------------------------------------

func TestNotificationValidator_Content(t *testing.T) {
	v := NewNotificationValidator()
	ctx := context.Background()

	t.Run("degenerate", func(t *testing.T) {
		err := v.Validate(ctx, models.Notification{})
		fe := requireFieldError(t, err, ErrInvalidNotification, FieldDisplayable)
		assert.Nil(t, fe.Value)
	})

	t.Run("degenerate with timeout only", func(t *testing.T) {
		err := v.Validate(ctx, models.Notification{Timeout: ptrInt(3000)})
		requireFieldError(t, err, ErrInvalidNotification, FieldDisplayable)
	})

	t.Run("present but empty title counts", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.Notification{Title: ptrStr("")}))
	})

	t.Run("subtitle only", func(t *testing.T) {
		assert.NoError(t, v.Validate(ctx, models.Notification{Subtitle: ptrStr("sub")}))
	})

	t.Run("image only", func(t *testing.T) {
		n := models.Notification{Image: &models.Image{URL: "https://example.com/a.png"}}
		assert.NoError(t, v.Validate(ctx, n))
	})
}

// ---------------------------------------------------------------------------
// TestNotificationValidator_Image
// ---------------------------------------------------------------------------

func TestNotificationValidator_Image(t *testing.T) {
	v := NewNotificationValidator()
	ctx := context.Background()

	t.Run("empty url", func(t *testing.T) {
		n := models.Notification{Image: &models.Image{URL: "", Height: ptrInt(10)}}
		fe := requireFieldError(t, v.Validate(ctx, n), ErrInvalidNotification, FieldImageURL)
		assert.Equal(t, "", fe.Value)
	})

	t.Run("negative height", func(t *testing.T) {
		n := models.Notification{Image: &models.Image{URL: "u", Height: ptrInt(-1)}}
		fe := requireFieldError(t, v.Validate(ctx, n), ErrInvalidNotification, FieldImageHeight)
		assert.Equal(t, -1, fe.Value)
	})

	t.Run("negative width", func(t *testing.T) {
		n := models.Notification{Image: &models.Image{URL: "u", Width: ptrInt(-5)}}
		requireFieldError(t, v.Validate(ctx, n), ErrInvalidNotification, FieldImageWidth)
	})

	t.Run("zero dimensions", func(t *testing.T) {
		n := models.Notification{Image: &models.Image{URL: "u", Width: ptrInt(0), Height: ptrInt(0)}}
		assert.NoError(t, v.Validate(ctx, n))
	})

	t.Run("image checks skipped without image", func(t *testing.T) {
		n := models.Notification{Title: ptrStr("t")}
		assert.NoError(t, v.Validate(ctx, n, FieldImageURL, FieldImageHeight, FieldImageWidth))
	})
}

// ---------------------------------------------------------------------------
// TestNotificationValidator_Timeout
// ---------------------------------------------------------------------------

func TestNotificationValidator_Timeout(t *testing.T) {
	v := NewNotificationValidator()
	ctx := context.Background()

	t.Run("negative", func(t *testing.T) {
		n := models.Notification{Title: ptrStr("t"), Timeout: ptrInt(-100)}
		fe := requireFieldError(t, v.Validate(ctx, n), ErrInvalidNotification, FieldTimeout)
		assert.Equal(t, -100, fe.Value)
	})

	t.Run("zero", func(t *testing.T) {
		n := models.Notification{Title: ptrStr("t"), Timeout: ptrInt(0)}
		assert.NoError(t, v.Validate(ctx, n))
	})
}
