package otel

import (
	"context"
	"testing"
)

func TestEnvBool(t *testing.T) {
	for _, tc := range []struct {
		value      string
		defaultOn  bool
		want       bool
	}{
		{"", false, false},
		{"", true, true},
		{"1", false, true},
		{"true", false, true},
		{"enabled", false, true},
		{"0", true, false},
		{"off", true, false},
		{"garbage", true, true},
	} {
		if got := EnvBool(tc.value, tc.defaultOn); got != tc.want {
			t.Errorf("EnvBool(%q, %v) = %v, want %v", tc.value, tc.defaultOn, got, tc.want)
		}
	}
}

func TestSetupDisabledIsSafeNoOp(t *testing.T) {
	p, err := Setup(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	defer p.Shutdown(context.Background())

	inst := p.Mine()
	h, ctx := inst.StartLevel(context.Background(), 2)
	inst.RecordCandidates(ctx, 2, 5)
	inst.RecordPruned(ctx, 2, 1)
	inst.FinishLevel(h, 1)
}

func TestSetupEnablesMetersAndTracers(t *testing.T) {
	p, err := Setup(context.Background(), Config{
		ServiceName:   "test",
		RunID:         "run-1",
		EnableMetrics: true,
		EnableTraces:  true,
	})
	if err != nil {
		t.Fatalf("Setup returned error: %v", err)
	}
	defer p.Shutdown(context.Background())

	inst := p.Mine()
	if inst == nil {
		t.Fatal("Mine() = nil, want instruments")
	}

	h, ctx := inst.StartLevel(context.Background(), 3)
	if h == nil {
		t.Fatal("StartLevel returned nil handle with tracing enabled")
	}
	inst.RecordCandidates(ctx, 3, 4)
	inst.RecordPruned(ctx, 3, 2)
	inst.FinishLevel(h, 1)
}

func TestShutdownOnNilProviderIsNoOp(t *testing.T) {
	var p *Provider
	if err := p.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown on nil provider returned error: %v", err)
	}
	if got := p.Mine(); got != nil {
		t.Fatalf("Mine() on nil provider = %v, want nil", got)
	}
}
