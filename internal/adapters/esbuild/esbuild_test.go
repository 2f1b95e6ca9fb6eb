package esbuild_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/domx/internal/adapters/esbuild"
	"go.trai.ch/domx/internal/core/domain"
)

const component = `import type { Props } from "./types";

export function Counter(props: Props): JSX.Element {
	const label: string = props.label ?? "count";
	return <button class="counter">{label}</button>;
}
`

func TestValidateCompilerOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    domain.CompilerOptions
		wantErr error
	}{
		{name: "defaults", opts: domain.DefaultCompilerOptions()},
		{name: "esnext cjs", opts: domain.CompilerOptions{Target: "ESNext", Module: "cjs", JSX: "preserve"}},
		{name: "bad target", opts: domain.CompilerOptions{Target: "es3", Module: "esm", JSX: "preserve"}, wantErr: domain.ErrInvalidTarget},
		{name: "bad module", opts: domain.CompilerOptions{Target: "es2020", Module: "amd", JSX: "preserve"}, wantErr: domain.ErrInvalidModuleFormat},
		{name: "bad jsx", opts: domain.CompilerOptions{Target: "es2020", Module: "esm", JSX: "react"}, wantErr: domain.ErrInvalidJSXMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := esbuild.ValidateCompilerOptions(tt.opts)
			if tt.wantErr != nil {
				assert.ErrorContains(t, err, tt.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := esbuild.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, api.FormatESModule, f)

	f, err = esbuild.ParseFormat("iife")
	require.NoError(t, err)
	assert.Equal(t, api.FormatIIFE, f)
}

func TestBuilder_EmitStripsTypesAndPreservesJSX(t *testing.T) {
	ctx := t.Context()
	program, err := esbuild.NewBuilder().Build(ctx, domain.DefaultCompilerOptions(), "/src/counter.tsx", component)
	require.NoError(t, err)

	out, err := program.Emit(ctx, "/src/counter.tsx", component)
	require.NoError(t, err)

	assert.Contains(t, out, `<button class="counter">`)
	assert.NotContains(t, out, ": string")
	assert.NotContains(t, out, "import type")
}

func TestBuilder_RejectsInvalidOptions(t *testing.T) {
	_, err := esbuild.NewBuilder().Build(t.Context(),
		domain.CompilerOptions{Target: "es2020", Module: "esm", JSX: "react-jsx"}, "/a.tsx", "")
	assert.ErrorContains(t, err, domain.ErrInvalidJSXMode.Error())
}

func TestProgram_MemoisesPerContent(t *testing.T) {
	ctx := t.Context()
	p, err := esbuild.NewBuilder().Build(ctx, domain.DefaultCompilerOptions(), "", "")
	require.NoError(t, err)
	program, ok := p.(*esbuild.Program)
	require.True(t, ok)

	first, err := program.Emit(ctx, "/a.tsx", "const a: number = 1;")
	require.NoError(t, err)
	again, err := program.Emit(ctx, "/a.tsx", "const a: number = 1;")
	require.NoError(t, err)
	assert.Equal(t, first, again)

	changed, err := program.Emit(ctx, "/a.tsx", "const a: number = 2;")
	require.NoError(t, err)
	assert.Contains(t, changed, "2")

	_, err = program.Emit(ctx, "/b.tsx", "const b = <div/>;")
	require.NoError(t, err)
	assert.Equal(t, 2, esbuild.ProgramMemoised(program))
}

func TestProgram_ConcurrentEmit(t *testing.T) {
	ctx := t.Context()
	program, err := esbuild.NewBuilder().Build(ctx, domain.DefaultCompilerOptions(), "", "")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := filepath.Join("/src", strings.Repeat("x", i+1)+".tsx")
			_, emitErr := program.Emit(ctx, id, component)
			assert.NoError(t, emitErr)
		}()
	}
	wg.Wait()
}

func TestProgram_SyntaxError(t *testing.T) {
	ctx := t.Context()
	program, err := esbuild.NewBuilder().Build(ctx, domain.DefaultCompilerOptions(), "", "")
	require.NoError(t, err)

	_, err = program.Emit(ctx, "/bad.tsx", "const = <div>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1:")
}

func TestTransformer_UsesAutomaticRuntime(t *testing.T) {
	tr := esbuild.NewTransformer("dom-expressions", "")

	out, err := tr.Transform(t.Context(), "/a.jsx", `export const App = () => <div id="app">hi</div>;`)
	require.NoError(t, err)

	assert.Contains(t, out, "dom-expressions/jsx-runtime")
	assert.NotContains(t, out, "<div")
	assert.Equal(t, "dom-expressions", esbuild.TransformerImportSource(tr))
}

func TestPrinter_Print(t *testing.T) {
	ctx := t.Context()
	program, err := esbuild.NewBuilder().Build(ctx, domain.DefaultCompilerOptions(), "", "")
	require.NoError(t, err)
	tr := esbuild.NewTransformer("solid-js/h", "")

	t.Run("esm", func(t *testing.T) {
		printer, err := esbuild.NewPrinter("esm")
		require.NoError(t, err)

		out, err := printer.Print(ctx, program, tr, component, "/src/counter.tsx")
		require.NoError(t, err)
		assert.Contains(t, out, `from "solid-js/h/jsx-runtime"`)
		assert.True(t, strings.HasSuffix(out, "//# sourceURL=/src/counter.tsx\n"))
	})

	t.Run("cjs", func(t *testing.T) {
		printer, err := esbuild.NewPrinter("cjs")
		require.NoError(t, err)

		out, err := printer.Print(ctx, program, tr, component, "/src/counter.tsx")
		require.NoError(t, err)
		assert.Contains(t, out, "require(")
		assert.NotContains(t, out, "import ")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := esbuild.NewPrinter("amd")
		assert.ErrorContains(t, err, domain.ErrInvalidModuleFormat.Error())
	})
}

func TestLoader_Load(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "node_modules", "dom-expressions", "package.json"),
		`{"name":"dom-expressions","version":"0.39.4"}`)
	writeFile(t, filepath.Join(root, "node_modules", "@acme", "dom", "package.json"),
		`{"name":"@acme/dom","version":"1.2.0"}`)
	writeFile(t, filepath.Join(root, "node_modules", "broken", "package.json"), `{`)

	tests := []struct {
		name        string
		opts        domain.TransformerOptions
		wantVersion string
		wantErr     error
	}{
		{name: "unverified", opts: domain.TransformerOptions{ImportSource: "missing-pkg"}},
		{name: "verified", opts: domain.TransformerOptions{ImportSource: "dom-expressions", Verify: true}, wantVersion: "0.39.4"},
		{name: "scoped subpath", opts: domain.TransformerOptions{ImportSource: "@acme/dom/jsx", Verify: true}, wantVersion: "1.2.0"},
		{name: "missing", opts: domain.TransformerOptions{ImportSource: "missing-pkg", Verify: true}, wantErr: domain.ErrTransformerModuleNotFound},
		{name: "invalid manifest", opts: domain.TransformerOptions{ImportSource: "broken", Verify: true}, wantErr: domain.ErrTransformerModuleInvalid},
		{name: "empty import source", opts: domain.TransformerOptions{}, wantErr: domain.ErrMissingImportSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := esbuild.NewLoader(root, tt.opts).Load(t.Context())
			if tt.wantErr != nil {
				assert.ErrorContains(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			tr, ok := got.(*esbuild.Transformer)
			require.True(t, ok)
			assert.Equal(t, tt.wantVersion, esbuild.TransformerVersion(tr))
		})
	}
}

type unitFunc func(ctx context.Context, content, identity string) (domain.TransformResult, error)

func (f unitFunc) TransformUnit(ctx context.Context, content, identity string) (domain.TransformResult, error) {
	return f(ctx, content, identity)
}

func TestPlugin_Build(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "main.ts")
	writeFile(t, entry, `import { answer } from "./answer.tsx";
import { other } from "./other.tsx";
console.log(answer, other);
`)
	writeFile(t, filepath.Join(dir, "answer.tsx"), `export const answer: number = <x/>;`)
	writeFile(t, filepath.Join(dir, "other.tsx"), `export const other: number = 7;`)

	filter, err := domain.NewExtensionFilter(nil)
	require.NoError(t, err)

	var (
		mu   sync.Mutex
		seen []string
	)
	units := unitFunc(func(_ context.Context, _, identity string) (domain.TransformResult, error) {
		mu.Lock()
		seen = append(seen, filepath.Base(identity))
		mu.Unlock()
		if strings.HasSuffix(identity, "other.tsx") {
			return domain.TransformResult{Skipped: true}, nil
		}
		return domain.TransformResult{Output: "export const answer = 42;"}, nil
	})

	var metafile string
	plugin := esbuild.NewPlugin(t.Context(), units, esbuild.PluginOptions{
		Filter: filter,
		OnEnd: func(result *api.BuildResult) {
			metafile = result.Metafile
		},
	})

	result := api.Build(api.BuildOptions{
		EntryPoints: []string{entry},
		Bundle:      true,
		Write:       false,
		Metafile:    true,
		Format:      api.FormatESModule,
		Outdir:      filepath.Join(dir, "dist"),
		LogLevel:    api.LogLevelSilent,
		Plugins:     []api.Plugin{plugin},
	})
	require.Empty(t, result.Errors)
	require.Len(t, result.OutputFiles, 1)

	out := string(result.OutputFiles[0].Contents)
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "7")
	assert.ElementsMatch(t, []string{"answer.tsx", "other.tsx"}, seen)
	assert.Contains(t, metafile, "answer.tsx")
}

func TestPlugin_ReportsUnitErrors(t *testing.T) {
	dir := t.TempDir()
	entry := filepath.Join(dir, "main.tsx")
	writeFile(t, entry, `export default <x/>;`)

	filter, err := domain.NewExtensionFilter(nil)
	require.NoError(t, err)

	units := unitFunc(func(_ context.Context, _, identity string) (domain.TransformResult, error) {
		return domain.TransformResult{}, domain.NewUnitError(identity, domain.PhaseTransform, errors.New("unexpected token"))
	})

	result := api.Build(api.BuildOptions{
		EntryPoints: []string{entry},
		Bundle:      true,
		Write:       false,
		LogLevel:    api.LogLevelSilent,
		Plugins:     []api.Plugin{esbuild.NewPlugin(t.Context(), units, esbuild.PluginOptions{Filter: filter})},
	})
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Text, "unexpected token")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}
