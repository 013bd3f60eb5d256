// Package cli parses flags, loads optional config, and orchestrates one
// mining run: dataset -> neighbor predicate -> Miner -> report, wiring in
// internal/config, internal/telemetry/otel, internal/progress, and
// internal/stream. It follows internal/runner's Main(args) error shape and
// ExitCodeError convention for propagating process exit status.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/integeruser/closedmdcop-miner/internal/config"
	"github.com/integeruser/closedmdcop-miner/internal/dataset"
	"github.com/integeruser/closedmdcop-miner/internal/mining"
	"github.com/integeruser/closedmdcop-miner/internal/progress"
	"github.com/integeruser/closedmdcop-miner/internal/stream"
	"github.com/integeruser/closedmdcop-miner/internal/telemetry/otel"
)

// Main orchestrates a single mining run using the provided argv slice. When
// args is empty, os.Args is used, mirroring runner.Main.
func Main(args []string) error {
	if len(args) == 0 {
		args = os.Args
	}
	cmdName := filepath.Base(args[0])
	return run(cmdName, args[1:], os.Stdout, os.Stderr)
}

func run(cmdName string, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	opts, err := parseArgs(cmdName, args, cfg)
	if err != nil {
		if errors.Is(err, errShowUsage) {
			fmt.Fprint(stdout, usage(cmdName))
			return nil
		}
		return exitError(2, err)
	}

	logger := log.New(stderr, "", 0)
	if !opts.verbose {
		logger = log.New(bytes.NewBuffer(nil), "", 0)
	}

	ds, err := dataset.Open(opts.datasetPath, logger)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	summary := ds.Summarize()
	printDatasetSummary(stdout, summary)

	window, err := clampWindow(opts.windowFirst, opts.windowCount, ds.TimeSlotCount(), logger)
	if err != nil {
		return fmt.Errorf("resolve window: %w", err)
	}

	pred, err := newPredicate(opts.distance, opts.distanceThreshold)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	ctx := context.Background()

	provider, err := otel.Setup(ctx, otel.Config{
		ServiceName:   "mdcopminer",
		RunID:         runID,
		EnableMetrics: opts.telemetry,
		EnableTraces:  opts.telemetry,
	})
	if err != nil {
		return fmt.Errorf("set up telemetry: %w", err)
	}
	defer provider.Shutdown(ctx)
	instruments := provider.Mine()

	reporter := progress.New(stdout, opts.progress)
	defer reporter.Close()

	var hub *stream.Hub
	if opts.serveAddr != "" {
		hub = stream.NewHub(4096)
		go hub.Run()
		mux := http.NewServeMux()
		mux.HandleFunc("/ws", hub.HandleWebSocket)
		srv := &http.Server{Addr: opts.serveAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Printf("stream: server error: %v", err)
			}
		}()
		fmt.Fprintf(stdout, "streaming mining events on ws://%s/ws\n", opts.serveAddr)
	}

	// Mine runs to completion in one synchronous call (the already-tested
	// Miner driver exposes no mid-algorithm hooks), so the whole run is
	// wrapped in a single span rather than one per pattern-size level.
	handle, mineCtx := instruments.StartLevel(ctx, 0)
	cmdp, err := mining.Mine(ds.EventTypes(), ds, window, pred, opts.spt, opts.tpt)
	if err != nil {
		return fmt.Errorf("mine: %w", err)
	}

	totalMDCOPs := 0
	for size, patterns := range cmdp {
		if size < 2 {
			continue
		}
		n := len(patterns)
		totalMDCOPs += n
		instruments.RecordCandidates(mineCtx, size, n)

		reporter.Update(progress.Event{
			Level:      size,
			SlotIndex:  window.Count - 1,
			SlotCount:  window.Count,
			Candidates: n,
			MDCOPs:     n,
			Phase:      "closed",
		})
		if hub != nil {
			hub.EmitJSON(stream.KindLevel, stream.LevelEvent{
				Level:      size,
				SlotIndex:  window.Count - 1,
				SlotCount:  window.Count,
				Candidates: n,
				Phase:      "closed",
			})
			for _, p := range patterns.Slice() {
				hub.EmitJSON(stream.KindMDCOP, stream.MDCOPEvent{
					Level:   size,
					Pattern: p.String(),
				})
			}
		}
	}
	instruments.FinishLevel(handle, totalMDCOPs)

	printResults(stdout, cmdp)
	return nil
}
