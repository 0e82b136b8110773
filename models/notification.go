// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Notification is a transient message shown to the user.
//
// Every field is presence-optional: a nil pointer means "not shown", while a
// pointer to an empty string is present and shown empty.
type Notification struct {
	Title    *string `json:"title,omitempty"`
	Subtitle *string `json:"subtitle,omitempty"`
	Content  *string `json:"content,omitempty"`
	Image    *Image  `json:"image,omitempty"`

	// Timeout is how long, in milliseconds, the notification stays visible.
	// Nil leaves the choice to the display collaborator.
	Timeout *int `json:"timeout,omitempty"`
}

// Image is a picture attached to a [Notification].
type Image struct {
	Height *int   `json:"height,omitempty"`
	Width  *int   `json:"width,omitempty"`
	URL    string `json:"url"`
}

// HasDisplayableContent reports whether at least one of title, subtitle,
// content or image is present.
func (n Notification) HasDisplayableContent() bool {
	return n.Title != nil || n.Subtitle != nil || n.Content != nil || n.Image != nil
}
