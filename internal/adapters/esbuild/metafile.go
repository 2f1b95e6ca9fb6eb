package esbuild

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/domx/internal/core/domain"
	"go.trai.ch/zerr"
)

// ErrInvalidMetafile is returned when a build metafile cannot be decoded.
var ErrInvalidMetafile = zerr.New("invalid build metafile")

type metafileOutputs struct {
	Outputs map[string]struct {
		Bytes int64 `json:"bytes"`
	} `json:"outputs"`
}

// Outputs returns the files listed in the outputs section of a metafile, sorted by path.
// Metafile paths are relative to root, the working directory of the build.
func Outputs(root, raw string) ([]domain.OutputFile, error) {
	if raw == "" {
		return nil, nil
	}

	var meta metafileOutputs
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, zerr.Wrap(err, ErrInvalidMetafile.Error())
	}

	files := make([]domain.OutputFile, 0, len(meta.Outputs))
	for path, out := range meta.Outputs {
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, filepath.FromSlash(path))
		}
		files = append(files, domain.OutputFile{Path: filepath.Clean(path), Size: out.Bytes})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// FormatMessage renders an esbuild diagnostic as "file:line:col: text".
// Messages from other plugins are prefixed with the plugin name.
func FormatMessage(m api.Message) string {
	text := m.Text
	if m.PluginName != "" && m.PluginName != PluginName {
		text = "[" + m.PluginName + "] " + text
	}
	if m.Location != nil {
		return fmt.Sprintf("%s:%d:%d: %s", m.Location.File, m.Location.Line, m.Location.Column, text)
	}
	return text
}

// BuildError turns the errors of a build into a single error, one message per line.
// It returns nil when msgs is empty.
func BuildError(msgs []api.Message) error {
	if len(msgs) == 0 {
		return nil
	}

	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		lines = append(lines, FormatMessage(m))
	}
	return zerr.With(zerr.New(strings.Join(lines, "\n")), "errors", len(msgs))
}
