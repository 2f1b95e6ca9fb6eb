package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Mode is the process-wide session mode. It is resolved once when a command starts and is
// only read afterwards.
type Mode uint8

const (
	// ModeDevelopment is used by the dev server. Caching defaults to off.
	ModeDevelopment Mode = iota
	// ModeProduction is used by one-shot builds. Caching defaults to on.
	ModeProduction
)

// String returns the canonical name of the mode.
func (m Mode) String() string {
	if m == ModeProduction {
		return "production"
	}
	return "development"
}

// ParseMode converts a user supplied mode name into a Mode.
// Command names ("serve", "build") are accepted as aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "development", "dev", "serve":
		return ModeDevelopment, nil
	case "production", "prod", "build":
		return ModeProduction, nil
	default:
		return ModeDevelopment, zerr.With(ErrInvalidMode, "mode", s)
	}
}

// DefaultCaching reports whether caching is enabled for the mode when no override is given.
func (m Mode) DefaultCaching() bool {
	return m != ModeDevelopment
}
