package pipeline

import (
	"context"
	"fmt"
	"go-data-processor/internal/config"
	"go-data-processor/internal/logger"
	"go-data-processor/internal/model"
	"go-data-processor/pkg/utils"
	"io"
	"time"

	"go.uber.org/zap"
)

// DefaultDelay simulates a latency-bearing operation at the end of a run
const DefaultDelay = 500 * time.Millisecond

// RunStore persists completed runs
type RunStore interface {
	SaveRun(ctx context.Context, cfg config.Configuration, result model.RunResult) (string, error)
}

// Processor runs the generate → transform → render → summarize pipeline
type Processor struct {
	out   io.Writer
	log   *logger.Logger
	now   func() time.Time
	delay time.Duration
	store RunStore
}

// Option configures a Processor
type Option func(*Processor)

// WithClock overrides the clock used to stamp processed records
func WithClock(now func() time.Time) Option {
	return func(p *Processor) { p.now = now }
}

// WithDelay overrides the artificial delay before completion
func WithDelay(d time.Duration) Option {
	return func(p *Processor) { p.delay = d }
}

// WithStore records every completed run in s
func WithStore(s RunStore) Option {
	return func(p *Processor) { p.store = s }
}

// NewProcessor creates a Processor writing its transcript to out
func NewProcessor(out io.Writer, log *logger.Logger, opts ...Option) *Processor {
	if log == nil {
		log = logger.Nop()
	}
	p := &Processor{
		out:   out,
		log:   log,
		now:   time.Now,
		delay: DefaultDelay,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ------------------- Pipeline Runner -------------------

// Run executes one pipeline run for cfg. It returns only after the artificial
// delay has elapsed, or with a *PipelineError if any stage fails.
func (p *Processor) Run(ctx context.Context, cfg config.Configuration) (result model.RunResult, err error) {
	start := p.now()
	result.StartedAt = start

	p.log.Debug("Pipeline started",
		zap.Float64("multiplier", cfg.Multiplier),
		zap.Int("count", cfg.Count),
		zap.String("format", string(cfg.Format)),
	)
	defer func() {
		if err != nil {
			p.log.Error("Pipeline failed", zap.Error(err))
		}
	}()

	fmt.Fprintln(p.out, "📊 Starting data processing...")
	fmt.Fprintf(p.out, "Options: multiplier=%s, count=%d, format=%s\n\n", utils.FormatNumber(cfg.Multiplier), cfg.Count, cfg.Format)

	records := Generate(cfg.Count)
	fmt.Fprintf(p.out, "Processing %d items...\n", len(records))

	processed, err := Transform(records, cfg.Multiplier, p.now)
	if err != nil {
		return result, stageError(StageTransform, err)
	}
	p.log.Debug("Records transformed", zap.Int("records", len(processed)))

	if cfg.Format == config.FormatJSON {
		fmt.Fprintln(p.out, "\n📈 Processed Results (JSON):")
	} else {
		fmt.Fprintln(p.out, "\n📈 Processed Results:")
	}
	if err := Render(p.out, cfg.Format, cfg.Multiplier, processed); err != nil {
		return result, stageError(StageRender, err)
	}

	summary := Summarize(processed)
	fmt.Fprintln(p.out, "\n📊 Summary:")
	fmt.Fprintf(p.out, "  💰 Total: %s\n", utils.FormatNumber(summary.Total))
	fmt.Fprintf(p.out, "  📊 Average: %s\n", utils.FormatFixed2(summary.Average))
	fmt.Fprintf(p.out, "  📦 Items processed: %d\n", summary.Count)

	result.Records = processed
	result.Summary = summary

	if p.store != nil {
		runID, err := p.store.SaveRun(ctx, cfg, result)
		if err != nil {
			return result, stageError(StageStore, err)
		}
		result.RunID = runID
		p.log.Info("Run stored", zap.String("run_id", runID))
		fmt.Fprintf(p.out, "  🗄️  Run ID: %s\n", runID)
	}

	if err := p.wait(ctx); err != nil {
		return result, stageError(StageDelay, err)
	}

	result.CompletedAt = p.now()
	fmt.Fprintln(p.out, "\n✅ Data processing completed!")
	p.log.Debug("Pipeline completed", zap.Duration("duration", result.CompletedAt.Sub(start)))
	return result, nil
}

// wait blocks for the configured delay or until ctx is done
func (p *Processor) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
