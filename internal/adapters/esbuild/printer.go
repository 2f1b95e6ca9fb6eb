package esbuild

import (
	"context"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/domx/internal/core/ports"
)

const sourceURLPrefix = "//# sourceURL="

// Printer implements ports.Printer: emit, transform, then print in the output module format.
type Printer struct {
	format api.Format
}

// NewPrinter creates a printer for the module format named by module.
// Printers used inside a bundle should print ESM and leave the format to the bundler.
func NewPrinter(module string) (*Printer, error) {
	format, err := ParseFormat(module)
	if err != nil {
		return nil, err
	}
	return &Printer{format: format}, nil
}

// Print runs the unit through program and transformer.
func (p *Printer) Print(
	ctx context.Context, program ports.Program, transformer ports.Transformer, content, identity string,
) (string, error) {
	emitted, err := program.Emit(ctx, identity, content)
	if err != nil {
		return "", err
	}

	out, err := transformer.Transform(ctx, identity, emitted)
	if err != nil {
		return "", err
	}

	if p.format != api.FormatESModule {
		result := api.Transform(out, api.TransformOptions{
			Loader:     api.LoaderJS,
			Format:     p.format,
			Sourcefile: identity,
			LogLevel:   api.LogLevelSilent,
		})
		if len(result.Errors) > 0 {
			return "", messagesError(identity, result.Errors)
		}
		out = string(result.Code)
	}

	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out + sourceURLPrefix + identity + "\n", nil
}
