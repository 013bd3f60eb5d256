package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ParseError reports a TOML decode failure, mirroring
// internal/configstore/loadsave.go's ParseError shape so the CLI can
// distinguish "bad config file" from other startup failures with
// errors.As.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads the persisted config from disk, starting from Default() and
// overwriting any field the file sets. A missing file is not an error: it
// yields Default() unchanged, exactly as configstore.Load treats
// os.ErrNotExist.
func Load() (Config, error) {
	cfg := Default()

	_, file, err := Path()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			return Default(), &ParseError{Path: file, Err: decodeErr}
		}
		return Default(), err
	}

	return cfg, nil
}
