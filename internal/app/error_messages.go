// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// settings resolver and the notification validator.
//
// All Msg* constants are human-readable strings placed into validation errors
// so the UI collaborator can show them to the user as-is. Keeping them in one
// place ensures consistent wording.
package app

const (
	// MsgLogLevelNotRecognized is used when log_level is outside the
	// recognized set.
	MsgLogLevelNotRecognized = "must be one of DEBUG, INFO, WARN, ERROR"

	// MsgServerHostEmpty is used when server.host is empty or only whitespace.
	MsgServerHostEmpty = "must not be empty"

	// MsgServerPortOutOfRange is used when server.port is not a TCP port.
	MsgServerPortOutOfRange = "must be an integer between 1 and 65535"

	// MsgNoDisplayableContent is used when a notification has none of
	// title, subtitle, content or image.
	MsgNoDisplayableContent = "at least one of title, subtitle, content or image is required"

	// MsgImageURLEmpty is used when an attached image has no URL.
	MsgImageURLEmpty = "image url must not be empty"

	// MsgNegativeDimension is used when an image height or width is below zero.
	MsgNegativeDimension = "must not be negative"

	// MsgNegativeTimeout is used when a notification timeout is below zero.
	MsgNegativeTimeout = "timeout must be a non-negative number of milliseconds"

	// MsgWrongType is used when a decoded value has the wrong JSON type,
	// e.g. a string or a fraction where an integer is expected.
	MsgWrongType = "has the wrong type"

	// MsgMalformedPayload is used when the payload is not valid JSON.
	MsgMalformedPayload = "malformed payload"
)
