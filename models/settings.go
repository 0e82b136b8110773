// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"net"
	"strconv"
)

// Compiled-in defaults applied to every field the settings source leaves out.
const (
	DefaultAutostart  = false
	DefaultLogLevel   = LogLevelInfo
	DefaultServerHost = "localhost"
	DefaultServerPort = 8080
)

// Settings is the application's persisted configuration.
//
// A Settings value handed out by the resolver is complete and already
// satisfies every range and enum rule, so consumers do not re-validate it.
type Settings struct {
	// Autostart reports whether the application launches at system startup.
	Autostart bool `json:"autostart"`

	// LogLevel is the verbosity the logging consumer is configured with.
	LogLevel LogLevel `json:"log_level"`

	// Server is the bind address of the local notification server.
	Server Server `json:"server"`
}

// Server holds the host and TCP port the notification server binds to.
type Server struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// DefaultSettings returns the compiled-in default configuration.
// Each call returns a fresh value.
func DefaultSettings() Settings {
	return Settings{
		Autostart: DefaultAutostart,
		LogLevel:  DefaultLogLevel,
		Server: Server{
			Host: DefaultServerHost,
			Port: DefaultServerPort,
		},
	}
}

// Address returns the server address in "host:port" form.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
