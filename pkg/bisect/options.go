package bisect

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphbisect/pkg/errors"
)

// Policy selects which halves of a bisected window are refined further.
type Policy int

const (
	// RecurseLeft refines only the left half [S, M] after each split.
	// Right halves are never refined, so later positions keep coarser grouping.
	RecurseLeft Policy = iota
	// RecurseBoth refines [S, M] and then [M+1, E], producing a full
	// binary partition of the ordering.
	RecurseBoth
)

// Strategy selects the gain model.
type Strategy int

const (
	// StrategyIndexed uses [IndexedModel].
	StrategyIndexed Strategy = iota
	// StrategyScan uses the brute-force [ScanModel].
	StrategyScan
)

// MissingPolicy decides how vertices of the ordering without an adjacency
// entry are handled.
type MissingPolicy int

const (
	// MissingStrict rejects the run before any mutation if a vertex of the
	// ordering has no entry in the relation.
	MissingStrict MissingPolicy = iota
	// MissingAsEmpty treats a missing entry as an empty neighbor list.
	MissingAsEmpty
)

var (
	policyNames   = []string{"left", "both"}
	strategyNames = []string{"indexed", "scan"}
	missingNames  = []string{"strict", "empty"}
)

func (p Policy) String() string        { return nameOf(policyNames, int(p)) }
func (s Strategy) String() string      { return nameOf(strategyNames, int(s)) }
func (m MissingPolicy) String() string { return nameOf(missingNames, int(m)) }

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

// ParsePolicy parses "left" or "both".
func ParsePolicy(s string) (Policy, error) {
	i, err := parseName("policy", s, policyNames)
	return Policy(i), err
}

// ParseStrategy parses "indexed" or "scan".
func ParseStrategy(s string) (Strategy, error) {
	i, err := parseName("strategy", s, strategyNames)
	return Strategy(i), err
}

// ParseMissingPolicy parses "strict" or "empty".
func ParseMissingPolicy(s string) (MissingPolicy, error) {
	i, err := parseName("missing", s, missingNames)
	return MissingPolicy(i), err
}

func parseName(field, s string, names []string) (int, error) {
	v, err := errors.ValidateChoice(errors.ErrCodeInvalidConfig, field, s, names...)
	if err != nil {
		return 0, err
	}
	for i, n := range names {
		if n == v {
			return i, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInternal, "unreachable %s %q", field, s)
}

// Options configures a reordering run. The zero value is usable: left-only
// recursion, indexed gains, strict missing-vertex handling, no depth limit.
type Options struct {
	Policy   Policy
	Strategy Strategy
	Missing  MissingPolicy

	// MaxDepth caps the number of recursion levels that are bisected.
	// The top-level window is depth 1. Zero means unlimited.
	MaxDepth int

	// Validate checks that the ordering holds no duplicate vertex before
	// the run starts.
	Validate bool

	// Trace records every bisected window in Result.Trace.
	Trace bool

	// Logger receives per-step debug logs and a per-run summary. When nil,
	// the logger attached to the context is used.
	Logger *log.Logger
}

func (o Options) validate() error {
	if o.Policy != RecurseLeft && o.Policy != RecurseBoth {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown policy %d", int(o.Policy))
	}
	if o.Strategy != StrategyIndexed && o.Strategy != StrategyScan {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown strategy %d", int(o.Strategy))
	}
	if o.Missing != MissingStrict && o.Missing != MissingAsEmpty {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown missing policy %d", int(o.Missing))
	}
	return errors.ValidateNonNegative(errors.ErrCodeInvalidConfig, "max depth", o.MaxDepth)
}
