package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/integeruser/closedmdcop-miner/internal/config"
)

// options holds the fully-resolved settings for one mining run: config-file
// defaults overridden by whatever flags the caller actually passed,
// following the same layering as internal/darwind's parseConfig.
type options struct {
	datasetPath string

	spt float64
	tpt float64

	distance          string
	distanceThreshold float64

	windowFirst int
	windowCount int // -1 means "use every time slot in the dataset"

	verbose   bool
	progress  bool
	telemetry bool
	serveAddr string
}

func parseArgs(cmdName string, args []string, cfg config.Config) (options, error) {
	fs := flag.NewFlagSet(cmdName, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := options{}
	fs.Float64Var(&opts.spt, "spt", cfg.SpatialPrevalence, "Minimum spatial-prevalence threshold, in (0, 1]")
	fs.Float64Var(&opts.tpt, "tpt", cfg.TimePrevalence, "Minimum time-prevalence threshold, in (0, 1]")
	fs.StringVar(&opts.distance, "distance", cfg.Distance, "Neighbor predicate: euclidean or haversine")
	fs.Float64Var(&opts.distanceThreshold, "distance-threshold", cfg.DistanceThreshold, "Distance threshold passed to the neighbor predicate")
	fs.IntVar(&opts.windowFirst, "window-first", 0, "First time slot to mine (must be within the dataset's range)")
	fs.IntVar(&opts.windowCount, "window-count", -1, "Number of time slots to mine, -1 for every slot from window-first onward")
	fs.BoolVar(&opts.verbose, "verbose", false, "Log skipped dataset lines and clamped windows")
	fs.BoolVar(&opts.progress, "progress", cfg.Progress, "Show live mining progress")
	fs.BoolVar(&opts.telemetry, "telemetry", cfg.Telemetry, "Emit OpenTelemetry metrics and traces")
	fs.StringVar(&opts.serveAddr, "serve", cfg.ServeAddr, "Broadcast mining events over websocket on this bind address (blank disables)")

	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage(cmdName))
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return opts, errShowUsage
		}
		return opts, err
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return opts, fmt.Errorf("a dataset path is required")
	}
	opts.datasetPath = strings.TrimSpace(rest[0])
	if opts.datasetPath == "" {
		return opts, fmt.Errorf("a dataset path is required")
	}

	return opts, nil
}

func usage(cmdName string) string {
	return fmt.Sprintf(`Usage: %s [flags] <dataset-path>

Mine Closed MDCOPs (Closed Mixed-Drove Spatiotemporal Co-occurrence Patterns)
from a dataset of spatiotemporal instances.

Flags:
  -spt <float>                 Minimum spatial-prevalence threshold (default from config, else 0.5).
  -tpt <float>                 Minimum time-prevalence threshold (default from config, else 0.5).
  -distance <kind>             Neighbor predicate: euclidean or haversine (default from config).
  -distance-threshold <float>  Distance threshold for the neighbor predicate.
  -window-first <int>          First time slot to mine.
  -window-count <int>          Number of time slots to mine, -1 for all.
  -verbose                     Log skipped dataset lines and clamped windows.
  -progress                    Show live mining progress.
  -telemetry                   Emit OpenTelemetry metrics and traces.
  -serve <addr>                Broadcast mining events over websocket (e.g. :8787).

Config file:
  A TOML file under MDCOPMINER_HOME, XDG_CONFIG_HOME, or ~/.config/mdcopminer
  supplies defaults for any flag not passed explicitly.
`, cmdName)
}
