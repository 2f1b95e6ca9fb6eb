package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/domx/cmd/domx/commands"
	"go.trai.ch/domx/internal/app"
	"go.trai.ch/domx/internal/build"
)

type mockApp struct {
	build     func(ctx context.Context, opts app.BuildOptions) error
	serve     func(ctx context.Context, opts app.ServeOptions) error
	transform func(ctx context.Context, opts app.TransformOptions) error
}

func (m *mockApp) Build(ctx context.Context, opts app.BuildOptions) error {
	if m.build != nil {
		return m.build(ctx, opts)
	}
	return nil
}

func (m *mockApp) Serve(ctx context.Context, opts app.ServeOptions) error {
	if m.serve != nil {
		return m.serve(ctx, opts)
	}
	return nil
}

func (m *mockApp) Transform(ctx context.Context, opts app.TransformOptions) error {
	if m.transform != nil {
		return m.transform(ctx, opts)
	}
	return nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.BuildOptions
		mock := &mockApp{build: func(_ context.Context, opts app.BuildOptions) error {
			captured = opts
			return nil
		}}

		_, err := execute(t, mock, "build", "src/main.tsx", "src/admin.tsx",
			"--outdir", "public", "--minify", "--metafile", "meta.json",
			"--mode", "development", "--no-cache", "--program-scope", "shared", "--verbose", "-C", "web")
		require.NoError(t, err)

		assert.Equal(t, []string{"src/main.tsx", "src/admin.tsx"}, captured.EntryPoints)
		assert.Equal(t, "public", captured.Outdir)
		assert.True(t, captured.Minify)
		assert.Equal(t, "meta.json", captured.Metafile)
		assert.Equal(t, "development", captured.Mode)
		require.NotNil(t, captured.Caching)
		assert.False(t, *captured.Caching)
		assert.Equal(t, "shared", captured.ProgramScope)
		assert.True(t, captured.Verbose)
		assert.Equal(t, "web", captured.Dir)
		assert.Equal(t, "auto", captured.LogFormat)
	})

	t.Run("caching follows the mode without flags", func(t *testing.T) {
		var captured app.BuildOptions
		mock := &mockApp{build: func(_ context.Context, opts app.BuildOptions) error {
			captured = opts
			return nil
		}}

		_, err := execute(t, mock, "build")
		require.NoError(t, err)
		assert.Nil(t, captured.Caching)
		assert.Empty(t, captured.Mode)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{build: func(context.Context, app.BuildOptions) error {
			return errors.New("simulated error")
		}}

		_, err := execute(t, mock, "build")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_CacheFlagsExclusive(t *testing.T) {
	mock := &mockApp{build: func(context.Context, app.BuildOptions) error {
		panic("should not be called")
	}}

	_, err := execute(t, mock, "build", "--cache", "--no-cache")
	require.Error(t, err)
}

func TestCommands_Serve(t *testing.T) {
	var captured app.ServeOptions
	mock := &mockApp{serve: func(_ context.Context, opts app.ServeOptions) error {
		captured = opts
		return nil
	}}

	_, err := execute(t, mock, "dev", "--host", "0.0.0.0", "-p", "3000", "--metrics-port", "9090",
		"--cache", "--log-format", "json")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", captured.Host)
	assert.Equal(t, 3000, captured.Port)
	assert.Equal(t, 9090, captured.MetricsPort)
	require.NotNil(t, captured.Caching)
	assert.True(t, *captured.Caching)
	assert.Equal(t, "json", captured.LogFormat)
}

func TestCommands_Serve_RejectsArgs(t *testing.T) {
	_, err := execute(t, &mockApp{}, "serve", "src/main.tsx")
	require.Error(t, err)
}

func TestCommands_Transform(t *testing.T) {
	var captured app.TransformOptions
	mock := &mockApp{transform: func(_ context.Context, opts app.TransformOptions) error {
		captured = opts
		return nil
	}}

	_, err := execute(t, mock, "transform", "src/App.tsx", "--stdout", "--program-scope", "unit", "--stats")
	require.NoError(t, err)

	assert.Equal(t, []string{"src/App.tsx"}, captured.Paths)
	assert.True(t, captured.Stdout)
	assert.Equal(t, "unit", captured.ProgramScope)
	assert.True(t, captured.Stats)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "domx version "+build.Version)

	out, err = execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
	assert.Contains(t, out, build.Commit)
}

func TestCommands_VersionShorthand(t *testing.T) {
	var out string
	var err error
	require.NotPanics(t, func() {
		out, err = execute(t, &mockApp{}, "-v")
	})
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}

func TestCommands_FlagSetsMerge(t *testing.T) {
	for _, args := range [][]string{
		{"version"},
		{"build", "--verbose"},
		{"serve", "--verbose"},
		{"transform", "src/App.tsx", "--verbose"},
	} {
		t.Run(args[0], func(t *testing.T) {
			require.NotPanics(t, func() {
				_, err := execute(t, &mockApp{}, args...)
				require.NoError(t, err)
			})
		})
	}
}
