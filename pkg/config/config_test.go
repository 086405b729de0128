package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/graphbisect/pkg/bisect"
	"github.com/matzehuels/graphbisect/pkg/errors"
	"github.com/matzehuels/graphbisect/pkg/graph"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(empty) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Parse(empty) = %+v, want %+v", cfg, Default())
	}

	opts, err := cfg.Options(&bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if opts.Policy != bisect.RecurseLeft || opts.Strategy != bisect.StrategyIndexed || opts.Missing != bisect.MissingStrict {
		t.Errorf("default options = %+v", opts)
	}
	if !opts.Validate || opts.Trace || opts.MaxDepth != 0 {
		t.Errorf("default flags = %+v", opts)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
policy    = "both"
strategy  = "scan"
missing   = "empty"
max_depth = 3
validate  = false
trace     = true
log_level = "debug"
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var buf bytes.Buffer
	opts, err := cfg.Options(&buf)
	if err != nil {
		t.Fatal(err)
	}
	want := bisect.Options{
		Policy:   bisect.RecurseBoth,
		Strategy: bisect.StrategyScan,
		Missing:  bisect.MissingAsEmpty,
		MaxDepth: 3,
		Trace:    true,
	}
	opts.Logger.Debug("probe")
	opts.Logger = nil
	if opts != want {
		t.Errorf("Options() = %+v, want %+v", opts, want)
	}
	if !strings.Contains(buf.String(), "probe") {
		t.Error("debug log_level should let debug messages through")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", `policy = `},
		{"unknown key", `polcy = "both"`},
		{"bad policy", `policy = "right"`},
		{"bad strategy", `strategy = "fast"`},
		{"bad missing", `missing = "ignore"`},
		{"negative depth", `max_depth = -2`},
		{"bad log level", `log_level = "chatty"`},
		{"wrong type", `max_depth = "three"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() error = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %q, want %q (%v)", errors.GetCode(err), errors.ErrCodeInvalidConfig, err)
			}
		})
	}
}

func TestUnknownKeyMessage(t *testing.T) {
	_, err := Parse([]byte("policy = \"both\"\ncolour = 1\n"))
	if err == nil || !strings.Contains(errors.UserMessage(err), "colour") {
		t.Errorf("error should name the unknown key, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bisect.toml")
	if err := os.WriteFile(path, []byte(`policy = "both"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Policy != "both" || cfg.Strategy != "indexed" {
		t.Errorf("Load() = %+v", cfg)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load(missing) error = %v, want INVALID_CONFIG", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Config{
		Policy:   "both",
		Strategy: "scan",
		Missing:  "empty",
		MaxDepth: 4,
		Trace:    true,
		LogLevel: "warn",
	}

	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse(Encode()) error = %v\n%s", err, buf.String())
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestOptionsDriveReorder(t *testing.T) {
	cfg, err := Parse([]byte("policy = \"both\"\ntrace = true\nlog_level = \"warn\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	opts, err := cfg.Options(&bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	order := []graph.Vertex{0, 1, 2, 3}
	adj := graph.NewAdjacency(map[graph.Vertex][]graph.Vertex{0: {1}, 1: {0}, 2: {3}, 3: {2}})
	res, err := bisect.Reorder(context.Background(), order, adj, opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bisections != 3 || res.Trace.Len() != 3 {
		t.Errorf("recurse-both over 4 vertices: bisections=%d trace=%d, want 3", res.Bisections, res.Trace.Len())
	}
}
