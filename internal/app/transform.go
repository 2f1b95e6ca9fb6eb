package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/domx/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// TransformOptions configuration for the Transform method.
type TransformOptions struct {
	SessionOptions
	// Paths are the files and directories to transform. Empty means the project root.
	Paths []string
	// Outdir overrides the configured output directory. Relative paths are resolved
	// against the working directory.
	Outdir string
	// Stdout prints a single transformed file instead of writing it.
	Stdout bool
}

// Transform runs eligible files through the transform controller without bundling.
// Outputs mirror the input layout below the output directory with a .js extension.
//
//nolint:cyclop // orchestration function
func (a *App) Transform(ctx context.Context, opts TransformOptions) error {
	s, err := a.openSession(opts.SessionOptions, domain.ModeProduction, false)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	outdir := s.cfg.Outdir
	if opts.Outdir != "" {
		outdir = resolvePath(s.cwd, opts.Outdir)
	}

	inputs, err := a.collectInputs(s, opts.Paths, outdir)
	if err != nil {
		return err
	}
	if opts.Stdout && len(inputs) != 1 {
		return zerr.With(domain.ErrStdoutNeedsOneInput, "inputs", len(inputs))
	}

	start := time.Now()
	var (
		mu      sync.Mutex
		errs    error
		outputs []domain.OutputFile
		g       errgroup.Group
	)
	g.SetLimit(runtime.NumCPU())
	for _, input := range inputs {
		g.Go(func() error {
			out, err := a.transformFile(ctx, s, input)
			if err == nil && opts.Stdout {
				_, err = io.WriteString(a.stdout, out)
			} else if err == nil {
				dst := outputPath(s.cfg.Root, outdir, input)
				if err = writeOutput(dst, out); err == nil {
					mu.Lock()
					outputs = append(outputs, domain.OutputFile{Path: dst, Size: int64(len(out))})
					mu.Unlock()
				}
			}
			if err != nil {
				mu.Lock()
				errs = errors.Join(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if errs != nil {
		a.logger.Error(errs)
		return errors.Join(domain.ErrBuildExecutionFailed, errs)
	}

	if !opts.Stdout {
		slices.SortFunc(outputs, func(x, y domain.OutputFile) int { return strings.Compare(x.Path, y.Path) })
		s.reporter.OnBuild(domain.BuildSummary{Outputs: outputs, Duration: time.Since(start)})
	}
	a.logStats(s)
	return nil
}

// collectInputs expands paths into eligible files, sorted and without duplicates.
func (a *App) collectInputs(s *session, paths []string, outdir string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{s.cfg.Root}
	}

	seen := make(map[string]struct{})
	var inputs []string
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		inputs = append(inputs, p)
	}

	for _, p := range paths {
		abs := resolvePath(s.cwd, p)
		info, err := os.Stat(abs)
		if err != nil {
			return nil, zerr.With(domain.ErrInputNotFound, "path", p)
		}

		if info.IsDir() {
			for file := range a.walker.EligibleFiles(abs, s.cfg.Filter, []string{outdir, s.cfg.Outdir}) {
				add(file)
			}
			continue
		}

		if !s.cfg.Filter.Match(abs) {
			a.logger.Warn("skipping " + p + ": not an eligible extension (" + strings.Join(s.cfg.Filter.Extensions(), ", ") + ")")
			continue
		}
		add(abs)
	}

	if len(inputs) == 0 {
		return nil, domain.ErrNoInputs
	}
	slices.Sort(inputs)
	return inputs, nil
}

func (a *App) transformFile(ctx context.Context, s *session, path string) (string, error) {
	//nolint:gosec // path is an eligible project file
	content, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}

	result, err := s.controller.TransformUnit(ctx, string(content), path)
	if err != nil {
		return "", err
	}
	return result.Output, nil
}

// outputPath mirrors input below outdir. Inputs outside root keep only their base name.
func outputPath(root, outdir, input string) string {
	rel, err := filepath.Rel(root, input)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Base(input)
	}
	return filepath.Join(outdir, strings.TrimSuffix(rel, filepath.Ext(rel))+domain.OutputExt)
}

func writeOutput(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileWriteFailed.Error()), "path", path)
	}
	return nil
}
