package otel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// MineInstruments publishes metrics and traces for one mining run: a span
// per StartLevel/FinishLevel pair (internal/cli opens a single one, level
// 0, around the whole run), and counters for candidates generated,
// patterns pruned, and MDCOPs found (SPEC_FULL.md §11). Every method is a
// no-op on a nil receiver or when the corresponding provider toggle is off,
// so callers never need to branch on whether telemetry is enabled.
type MineInstruments struct {
	meterEnabled bool
	traceEnabled bool

	counterCandidates metric.Int64Counter
	counterPruned     metric.Int64Counter
	counterMDCOPs     metric.Int64Counter

	tracer trace.Tracer
}

// LevelHandle tracks the in-flight span for one mining level, opened by
// StartLevel and closed by FinishLevel.
type LevelHandle struct {
	ctx   context.Context
	span  trace.Span
	start time.Time
	level int
}

func newMineInstruments(p *Provider) *MineInstruments {
	if p == nil {
		return nil
	}

	inst := &MineInstruments{
		meterEnabled: p.meterProvider != nil,
		traceEnabled: p.tracerProvider != nil,
	}
	if p.meterProvider != nil {
		inst.counterCandidates, _ = p.meter.Int64Counter(
			"mining.candidates_generated_total",
			metric.WithDescription("Number of candidate patterns generated by CandidateGenerator"),
		)
		inst.counterPruned, _ = p.meter.Int64Counter(
			"mining.patterns_pruned_total",
			metric.WithDescription("Number of candidate patterns eliminated by spatial or time pruning"),
		)
		inst.counterMDCOPs, _ = p.meter.Int64Counter(
			"mining.mdcops_found_total",
			metric.WithDescription("Number of Closed MDCOPs reported for a level"),
		)
	}
	if p.tracerProvider != nil {
		inst.tracer = p.tracer
	}
	return inst
}

// StartLevel opens a span for processing pattern size `level`, if tracing
// is enabled, and returns a handle to pass to FinishLevel along with the
// (possibly span-carrying) context to use for the rest of that level's work.
func (i *MineInstruments) StartLevel(parent context.Context, level int) (*LevelHandle, context.Context) {
	if i == nil {
		return nil, parent
	}

	h := &LevelHandle{ctx: parent, start: time.Now(), level: level}
	if i.traceEnabled && i.tracer != nil {
		ctx, span := i.tracer.Start(parent, "mining.level", trace.WithAttributes(
			attribute.Int("mining.level", level),
		))
		h.ctx = ctx
		h.span = span
	}
	return h, h.ctx
}

// RecordCandidates adds n to the candidates-generated counter for the given
// level.
func (i *MineInstruments) RecordCandidates(ctx context.Context, level, n int) {
	if i == nil || !i.meterEnabled || n == 0 {
		return
	}
	i.counterCandidates.Add(ctx, int64(n), metric.WithAttributes(attribute.Int("mining.level", level)))
}

// RecordPruned adds n to the patterns-pruned counter for the given level.
func (i *MineInstruments) RecordPruned(ctx context.Context, level, n int) {
	if i == nil || !i.meterEnabled || n == 0 {
		return
	}
	i.counterPruned.Add(ctx, int64(n), metric.WithAttributes(attribute.Int("mining.level", level)))
}

// FinishLevel records the MDCOPs-found counter for h's level and ends its
// span, if one was started.
func (i *MineInstruments) FinishLevel(h *LevelHandle, mdcopCount int) {
	if i == nil || h == nil {
		return
	}
	if i.meterEnabled && mdcopCount > 0 {
		i.counterMDCOPs.Add(h.ctx, int64(mdcopCount), metric.WithAttributes(attribute.Int("mining.level", h.level)))
	}
	if h.span != nil {
		h.span.SetAttributes(
			attribute.Int("mining.mdcops_found", mdcopCount),
			attribute.Int64("mining.duration_ms", time.Since(h.start).Milliseconds()),
		)
		h.span.End()
	}
}
