// Package detector resolves the session mode and log format from flags and the environment.
package detector

import (
	"os"
	"strings"

	"go.trai.ch/domx/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// ModeEnvVar overrides the command's default session mode when no flag is given.
const ModeEnvVar = "DOMX_MODE"

// LogFormat represents the encoding of log output.
type LogFormat int

const (
	// FormatAuto automatically detects the appropriate format.
	FormatAuto LogFormat = iota
	// FormatPretty forces the styled human readable handler.
	FormatPretty
	// FormatJSON forces JSON lines.
	FormatJSON
)

// DetectEnvironment returns the recommended log format based on the environment.
// CI runs without a terminal on stderr log JSON.
func DetectEnvironment() LogFormat {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY && isCI {
		return FormatJSON
	}
	return FormatPretty
}

// ResolveLogFormat applies the user flag to auto-detection.
// userFlag should be one of: "auto", "pretty", "text", "json", or empty.
func ResolveLogFormat(autoDetected LogFormat, userFlag string) LogFormat {
	switch userFlag {
	case "pretty", "text":
		return FormatPretty
	case "json":
		return FormatJSON
	default:
		return autoDetected
	}
}

// ResolveMode returns the session mode. A non-empty flag wins over the DOMX_MODE
// environment variable, which wins over the command default.
func ResolveMode(flag string, commandDefault domain.Mode) (domain.Mode, error) {
	if strings.TrimSpace(flag) != "" {
		return domain.ParseMode(flag)
	}

	if env := strings.TrimSpace(os.Getenv(ModeEnvVar)); env != "" {
		mode, err := domain.ParseMode(env)
		if err != nil {
			return commandDefault, zerr.With(err, "env", ModeEnvVar)
		}
		return mode, nil
	}

	return commandDefault, nil
}
