// Package config loads the optional TOML file that supplies default mining
// thresholds and ambient toggles, following the same "missing file means
// defaults, present file must parse" contract as
// internal/configstore/loadsave.go.
package config

// Config holds defaults CLI flags are layered on top of (spec §7's
// thresholds and the distance predicate, plus the ambient progress/telemetry/serve toggles
// SPEC_FULL.md §10 adds). Every field has a sensible zero-config default via
// Default.
type Config struct {
	SpatialPrevalence float64 `toml:"spatial_prevalence"`
	TimePrevalence    float64 `toml:"time_prevalence"`
	Distance          string  `toml:"distance"`
	DistanceThreshold float64 `toml:"distance_threshold"`
	Progress          bool    `toml:"progress"`
	Telemetry         bool    `toml:"telemetry"`
	ServeAddr         string  `toml:"serve_addr"`
}

// Default returns the built-in configuration used when no config file is
// present, or to fill in fields a present file leaves unset.
func Default() Config {
	return Config{
		SpatialPrevalence: 0.5,
		TimePrevalence:    0.5,
		Distance:          "euclidean",
		DistanceThreshold: 1.0,
		Progress:          true,
		Telemetry:         false,
		ServeAddr:         "",
	}
}
