package generator

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/deicod/scaffolder/internal/observability/metrics"
	"github.com/deicod/scaffolder/internal/observability/tracing"
)

// Generator is one composed sub-generator. It takes part in a phase by
// implementing the matching interface below.
type Generator interface {
	Name() string
}

// Configurer runs during the configuring phase.
type Configurer interface {
	Configuring(ctx context.Context) error
}

// Writer runs during the writing phase.
type Writer interface {
	Writing(ctx context.Context) error
}

// Ender runs during the end phase.
type Ender interface {
	End(ctx context.Context) error
}

// Phase names a lifecycle step.
type Phase string

const (
	PhaseConfiguring Phase = "configuring"
	PhaseWriting     Phase = "writing"
	PhaseEnd         Phase = "end"
)

// Phases lists the lifecycle steps in execution order.
var Phases = []Phase{PhaseConfiguring, PhaseWriting, PhaseEnd}

func (p Phase) step(g Generator) (func(context.Context) error, bool) {
	switch p {
	case PhaseConfiguring:
		if c, ok := g.(Configurer); ok {
			return c.Configuring, true
		}
	case PhaseWriting:
		if w, ok := g.(Writer); ok {
			return w.Writing, true
		}
	case PhaseEnd:
		if e, ok := g.(Ender); ok {
			return e.End, true
		}
	}
	return nil, false
}

// Lifecycle drives composed generators phase by phase: every generator
// finishes configuring before any of them starts writing.
type Lifecycle struct {
	Logger  *zap.Logger
	Tracer  tracing.Tracer
	Metrics metrics.Collector
}

// Run executes all phases and stops at the first failing step.
func (l Lifecycle) Run(ctx context.Context, gens []Generator) error {
	logger := l.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tracer := tracing.WithTracer(l.Tracer)
	collector := metrics.WithCollector(l.Metrics)

	for _, phase := range Phases {
		for _, g := range gens {
			run, ok := phase.step(g)
			if !ok {
				continue
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			spanCtx, span := tracer.Start(ctx, tracing.PhaseSpanName(g.Name(), string(phase)),
				tracing.String("generator", g.Name()),
				tracing.String("phase", string(phase)),
			)
			start := time.Now()
			err := run(spanCtx)
			elapsed := time.Since(start)
			span.End(err)
			collector.RecordPhase(g.Name(), string(phase), elapsed)
			if err != nil {
				return fmt.Errorf("%s %s: %w", g.Name(), phase, err)
			}
			logger.Debug("phase complete",
				zap.String("generator", g.Name()),
				zap.String("phase", string(phase)),
				zap.Duration("elapsed", elapsed),
			)
		}
	}
	return nil
}
