// Package config loads reordering options from TOML.
//
// A configuration file looks like:
//
//	policy    = "both"     # left | both
//	strategy  = "indexed"  # indexed | scan
//	missing   = "strict"   # strict | empty
//	max_depth = 0          # 0 = unlimited
//	validate  = true
//	trace     = false
//	log_level = "info"     # debug | info | warn | error
//
// Every key is optional; omitted keys keep the values from [Default].
// Unknown keys are rejected so that typos do not silently fall back to defaults.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphbisect/internal/logging"
	"github.com/matzehuels/graphbisect/pkg/bisect"
	"github.com/matzehuels/graphbisect/pkg/errors"
)

// Config is the file representation of [bisect.Options].
type Config struct {
	Policy   string `toml:"policy"`
	Strategy string `toml:"strategy"`
	Missing  string `toml:"missing"`
	MaxDepth int    `toml:"max_depth"`
	Validate bool   `toml:"validate"`
	Trace    bool   `toml:"trace"`
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration matching the zero [bisect.Options],
// with ordering validation turned on.
func Default() Config {
	return Config{
		Policy:   bisect.RecurseLeft.String(),
		Strategy: bisect.StrategyIndexed.String(),
		Missing:  bisect.MissingStrict.String(),
		Validate: true,
		LogLevel: "info",
	}
}

// Parse decodes TOML data on top of [Default] and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	if err := cfg.Check(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the TOML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(names, ", "))
}

// Check validates every field without converting it.
func (c Config) Check() error {
	_, err := c.options()
	if err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid log_level %q", c.LogLevel)
	}
	return nil
}

func (c Config) options() (bisect.Options, error) {
	policy, err := bisect.ParsePolicy(c.Policy)
	if err != nil {
		return bisect.Options{}, err
	}
	strategy, err := bisect.ParseStrategy(c.Strategy)
	if err != nil {
		return bisect.Options{}, err
	}
	missing, err := bisect.ParseMissingPolicy(c.Missing)
	if err != nil {
		return bisect.Options{}, err
	}
	if err := errors.ValidateNonNegative(errors.ErrCodeInvalidConfig, "max_depth", c.MaxDepth); err != nil {
		return bisect.Options{}, err
	}
	return bisect.Options{
		Policy:   policy,
		Strategy: strategy,
		Missing:  missing,
		MaxDepth: c.MaxDepth,
		Validate: c.Validate,
		Trace:    c.Trace,
	}, nil
}

// Options converts c into [bisect.Options] with a logger writing to w at
// c.LogLevel.
func (c Config) Options(w io.Writer) (bisect.Options, error) {
	opts, err := c.options()
	if err != nil {
		return bisect.Options{}, err
	}
	logger, err := c.Logger(w)
	if err != nil {
		return bisect.Options{}, err
	}
	opts.Logger = logger
	return opts, nil
}

// Logger returns a logger writing to w at c.LogLevel.
func (c Config) Logger(w io.Writer) (*log.Logger, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid log_level %q", c.LogLevel)
	}
	return logging.New(w, level), nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
