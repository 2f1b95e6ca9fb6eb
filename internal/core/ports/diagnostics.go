package ports

import (
	"context"

	"go.trai.ch/domx/internal/core/domain"
)

// DiagnosticsSink receives one diagnostic per successfully transformed unit.
// It is a pure sink and never influences the transform.
//
//go:generate go run go.uber.org/mock/mockgen -source=diagnostics.go -destination=mocks/mock_diagnostics.go -package=mocks
type DiagnosticsSink interface {
	Record(ctx context.Context, diagnostic domain.Diagnostic)
}
