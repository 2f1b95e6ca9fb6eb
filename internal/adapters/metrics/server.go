package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/domx/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// Path is the HTTP path metrics are served on.
	Path = "/metrics"

	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 2 * time.Second
)

// Expose serves the collectors, plus Go runtime metrics, on addr until ctx is done.
// It returns the bound address, which differs from addr when addr uses port 0.
func Expose(ctx context.Context, addr string, log ports.Logger, cs ...prometheus.Collector) (string, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	for _, c := range cs {
		if err := reg.Register(c); err != nil {
			return "", zerr.Wrap(err, "failed to register metrics collector")
		}
	}

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to listen for metrics"), "addr", addr)
	}

	mux := http.NewServeMux()
	mux.Handle(Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: readHeaderTimeout}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) && log != nil {
			log.Error(zerr.Wrap(err, "metrics server stopped"))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	return ln.Addr().String(), nil
}
