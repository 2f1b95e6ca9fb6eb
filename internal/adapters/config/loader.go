// Package config provides the configuration loader for domx.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/domx/internal/core/domain"
	"go.trai.ch/domx/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const maxPort = 65535

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds domx.yaml by walking up from cwd and resolves it into a domain.Config.
// Without a config file the defaults rooted at cwd are returned.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, found := findConfiguration(cwd)
	if !found {
		return domain.DefaultConfig(filepath.Clean(cwd)), nil
	}

	var file Configfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	cfg, err := l.resolve(configPath, &file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := filepath.Clean(cwd)

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

//nolint:cyclop // one check per configuration section
func (l *Loader) resolve(configPath string, file *Configfile) (*domain.Config, error) {
	root := resolveRoot(configPath, file.Root)
	cfg := domain.DefaultConfig(root)
	cfg.Path = configPath
	cfg.EntryPoints = file.EntryPoints

	if file.Outdir != "" {
		cfg.Outdir = resolvePath(root, file.Outdir)
	}

	filter, err := domain.NewExtensionFilter(file.Extensions)
	if err != nil {
		return nil, err
	}
	cfg.Filter = filter

	cfg.Caching = file.Cache.Enabled
	if cfg.ProgramScope, err = domain.ParseProgramScope(file.Cache.Program); err != nil {
		return nil, err
	}

	if co := file.CompilerOptions; co != nil {
		if co.Target != "" {
			cfg.CompilerOptions.Target = co.Target
		}
		if co.Module != "" {
			cfg.CompilerOptions.Module = co.Module
		}
		if co.JSX != "" {
			cfg.CompilerOptions.JSX = co.JSX
		}
		if co.Strict != nil {
			cfg.CompilerOptions.Strict = *co.Strict
		}
	}

	if file.Transformer.ImportSource != "" {
		cfg.Transformer.ImportSource = file.Transformer.ImportSource
	}
	cfg.Transformer.Verify = file.Transformer.Verify

	if file.Serve.Host != "" {
		cfg.Serve.Host = file.Serve.Host
	}
	if file.Serve.Port != 0 {
		cfg.Serve.Port = file.Serve.Port
	}
	if file.Serve.Servedir != "" {
		cfg.Serve.Servedir = resolvePath(root, file.Serve.Servedir)
	}
	cfg.Serve.MetricsPort = file.Serve.MetricsPort
	for _, port := range []int{cfg.Serve.Port, cfg.Serve.MetricsPort} {
		if port < 0 || port > maxPort {
			return nil, zerr.With(domain.ErrInvalidPort, "port", port)
		}
	}

	if file.Watch.Debounce != "" {
		d, err := time.ParseDuration(file.Watch.Debounce)
		if err != nil || d < 0 {
			return nil, zerr.With(domain.ErrInvalidDebounce, "debounce", file.Watch.Debounce)
		}
		cfg.Debounce = d
	}

	if file.Version != "" && file.Version != "1" && l.Logger != nil {
		l.Logger.Warn("unknown config version " + file.Version + " in " + domain.ConfigFileName + ", reading it as version 1")
	}

	return cfg, nil
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	return resolvePath(configDir, configuredRoot)
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(base, p))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
// Unknown keys are rejected.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(configFile))
	dec.KnownFields(true)
	if parseErr := dec.Decode(target); parseErr != nil && !errors.Is(parseErr, io.EOF) {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
