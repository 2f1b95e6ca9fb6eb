package ports

import (
	"time"

	"go.trai.ch/domx/internal/core/domain"
)

// Reporter renders transform progress and build results for the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// OnUnit is called once per successfully transformed unit.
	OnUnit(identity string, status domain.Status, duration time.Duration)
	// OnBuild is called after each build or rebuild that produced no errors.
	OnBuild(summary domain.BuildSummary)
}
