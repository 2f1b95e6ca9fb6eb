// Package linear provides a synchronous, line-oriented reporter for transform and build results.
package linear

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/docker/go-units"
	"github.com/muesli/termenv"
	"go.trai.ch/domx/internal/core/domain"
	"go.trai.ch/domx/internal/core/ports"
	"go.trai.ch/domx/internal/ui/output"
)

var _ ports.Reporter = (*Renderer)(nil)

// Renderer implements ports.Reporter by writing one line per event.
// Unit lines are only written in verbose mode.
type Renderer struct {
	w       io.Writer
	output  *termenv.Output
	root    string
	verbose bool

	mu sync.Mutex
}

// NewRenderer creates a Renderer writing to w. Paths are shown relative to root.
func NewRenderer(w io.Writer, root string, verbose bool) *Renderer {
	if w == nil {
		w = os.Stderr
	}
	return &Renderer{
		w:       w,
		output:  output.NewWithProfile(w, output.ColorProfileANSI),
		root:    root,
		verbose: verbose,
	}
}

// OnUnit prints the transformed unit with its status and duration.
func (r *Renderer) OnUnit(identity string, status domain.Status, duration time.Duration) {
	if !r.verbose {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	symbol := r.output.String("✓").Foreground(termenv.ANSIGreen).String()
	detail := r.output.String(fmt.Sprintf("(%s)", status)).Faint().String()
	_, _ = fmt.Fprintf(r.w, "%s %s %s %s\n", symbol, r.rel(identity), formatDuration(duration), detail)
}

// OnBuild prints every output file with its size, followed by the build duration.
func (r *Renderer) OnBuild(summary domain.BuildSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()

	width := 0
	for _, out := range summary.Outputs {
		width = max(width, len(r.rel(out.Path)))
	}
	for _, out := range summary.Outputs {
		size := r.output.String(units.HumanSize(float64(out.Size))).Faint().String()
		_, _ = fmt.Fprintf(r.w, "  %-*s  %s\n", width, r.rel(out.Path), size)
	}

	verb := "built"
	if summary.Rebuild {
		verb = "rebuilt"
	}
	symbol := r.output.String("✓").Foreground(termenv.ANSIGreen).String()
	line := fmt.Sprintf("%s %s in %s", symbol, verb, formatDuration(summary.Duration))
	if summary.Warnings > 0 {
		line += r.output.String(fmt.Sprintf(" with %d warning(s)", summary.Warnings)).
			Foreground(termenv.ANSIYellow).String()
	}
	_, _ = fmt.Fprintln(r.w, line)
}

func (r *Renderer) rel(path string) string {
	if r.root == "" {
		return path
	}
	rel, err := filepath.Rel(r.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.Round(time.Microsecond).String()
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}
