package models

import "strings"

// LogLevel is a recognized logging severity in its canonical upper-case form.
type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

// LogLevels returns the recognized levels ordered from most to least verbose.
func LogLevels() []LogLevel {
	return []LogLevel{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}
}

// ParseLogLevel matches s against the recognized levels ignoring case and
// surrounding whitespace. The second result is false when nothing matches.
func ParseLogLevel(s string) (LogLevel, bool) {
	candidate := LogLevel(strings.ToUpper(strings.TrimSpace(s)))
	for _, level := range LogLevels() {
		if candidate == level {
			return level, true
		}
	}
	return "", false
}

func (l LogLevel) String() string {
	return string(l)
}
