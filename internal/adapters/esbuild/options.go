// Package esbuild adapts the esbuild Go API to the transform ports: programs strip types,
// the transformer rewrites JSX into DOM runtime calls and the plugin hooks the controller
// into esbuild builds.
package esbuild

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/domx/internal/core/domain"
	"go.trai.ch/zerr"
)

const jsxPreserve = "preserve"

var targets = map[string]api.Target{
	"es5":    api.ES5,
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
	"esnext": api.ESNext,
}

// loaders maps eligible source extensions to the esbuild loader that parses them.
var loaders = map[string]api.Loader{
	".js":  api.LoaderJSX,
	".jsx": api.LoaderJSX,
	".ts":  api.LoaderTSX,
	".tsx": api.LoaderTSX,
	".mts": api.LoaderTS,
	".cts": api.LoaderTS,
}

// ParseTarget converts a compiler target name into an esbuild target.
func ParseTarget(s string) (api.Target, error) {
	t, ok := targets[strings.ToLower(s)]
	if !ok {
		return api.DefaultTarget, zerr.With(domain.ErrInvalidTarget, "target", s)
	}
	return t, nil
}

// ParseFormat converts a module format name into an esbuild format.
func ParseFormat(s string) (api.Format, error) {
	switch strings.ToLower(s) {
	case "", "esm", "esnext", "es2015":
		return api.FormatESModule, nil
	case "cjs", "commonjs":
		return api.FormatCommonJS, nil
	case "iife":
		return api.FormatIIFE, nil
	default:
		return api.FormatDefault, zerr.With(domain.ErrInvalidModuleFormat, "module", s)
	}
}

// ValidateCompilerOptions checks that opts can be served by esbuild.
func ValidateCompilerOptions(opts domain.CompilerOptions) error {
	if _, err := ParseTarget(opts.Target); err != nil {
		return err
	}
	if _, err := ParseFormat(opts.Module); err != nil {
		return err
	}
	if !strings.EqualFold(opts.JSX, jsxPreserve) {
		return zerr.With(domain.ErrInvalidJSXMode, "jsx", opts.JSX)
	}
	return nil
}

type tsconfig struct {
	CompilerOptions tsconfigCompilerOptions `json:"compilerOptions"`
}

type tsconfigCompilerOptions struct {
	Target                  string `json:"target"`
	JSX                     string `json:"jsx"`
	Strict                  bool   `json:"strict"`
	AlwaysStrict            bool   `json:"alwaysStrict"`
	UseDefineForClassFields bool   `json:"useDefineForClassFields"`
}

// renderTsconfig renders opts as the tsconfig document handed to esbuild.
func renderTsconfig(opts domain.CompilerOptions) string {
	doc := tsconfig{CompilerOptions: tsconfigCompilerOptions{
		Target:                  strings.ToLower(opts.Target),
		JSX:                     jsxPreserve,
		Strict:                  opts.Strict,
		AlwaysStrict:            opts.Strict,
		UseDefineForClassFields: true,
	}}
	raw, _ := json.Marshal(doc)
	return string(raw)
}

func loaderFor(identity string) api.Loader {
	if l, ok := loaders[strings.ToLower(filepath.Ext(identity))]; ok {
		return l
	}
	return api.LoaderTSX
}

// messagesError turns esbuild diagnostics into a single error.
func messagesError(identity string, msgs []api.Message) error {
	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if m.Location != nil {
			lines = append(lines, fmt.Sprintf("%d:%d: %s", m.Location.Line, m.Location.Column, m.Text))
			continue
		}
		lines = append(lines, m.Text)
	}
	return zerr.With(zerr.New(strings.Join(lines, "; ")), "identity", identity)
}
