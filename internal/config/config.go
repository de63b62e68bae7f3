// Package config holds the tunable constant table behind the cost model and
// heuristic (component 3 and 4 of the design). It is modeled directly on
// the teacher pack's gas-schedule override pattern (a flat key/value
// override map layered over a fixed default table) rather than a struct
// literal of bare ints, so a caller -- the CLI, a config file, an
// experiment -- can retune one constant without recompiling.
package config

// Key names one tunable constant. Keys are package constants rather than
// free strings so a typo fails at compile time everywhere except the
// override map itself.
type Key string

const (
	AddZero         Key = "add-zero"
	AddSingleDigit  Key = "add-single-digit"
	AddPerDigit     Key = "add-per-digit"
	SubIdentical    Key = "sub-identical"
	SubDiffByOne    Key = "sub-diff-by-one"
	SubPerDigit     Key = "sub-per-digit"
	MulByZero       Key = "mul-by-zero"
	MulByOne        Key = "mul-by-one"
	MulSingleDigit  Key = "mul-single-digit"
	MulDigitExp     Key = "mul-digit-exponent"
	VarBase         Key = "var-base"
	VarCombine      Key = "var-combine"
	VarCancelReward Key = "var-cancel-reward"
	ExprCombine     Key = "expr-combine"
	CoeffVarMul     Key = "coeff-var-mul"
	SameVarMul      Key = "same-var-mul"
	DivCost         Key = "div"
	CancelCost      Key = "cancel"
	CleanupCost     Key = "cleanup"
	SubToAddCost    Key = "sub-to-add"
	ParenElideCost  Key = "paren-elide"
	ResolveStep     Key = "resolve-step"
	HeuristicMax    Key = "heuristic-max"
)

var defaults = map[Key]int{
	AddZero:         1,
	AddSingleDigit:  1,
	AddPerDigit:     2,
	SubIdentical:    1,
	SubDiffByOne:    2,
	SubPerDigit:     2,
	MulByZero:       1,
	MulByOne:        1,
	MulSingleDigit:  2,
	MulDigitExp:     2,
	VarBase:         2,
	VarCombine:      3,
	VarCancelReward: -2,
	ExprCombine:     4,
	CoeffVarMul:     2,
	SameVarMul:      2,
	DivCost:         2,
	CancelCost:      1,
	CleanupCost:     1,
	SubToAddCost:    1,
	ParenElideCost:  1,
	ResolveStep:     1,
	HeuristicMax:    100,
}

// Config is a read-only (from the caller's perspective) constant table: the
// defaults above, plus whatever overrides were installed at construction.
type Config struct {
	overrides map[Key]int
}

// Default returns the constant table with no overrides applied.
func Default() *Config {
	return &Config{}
}

// GetOr returns the override for key if one was installed, else fallback.
// Grounded on the teacher pack's GasSchedule.GetOr(key, defaultVal).
func (c *Config) GetOr(key Key, fallback int) int {
	if c == nil {
		return fallback
	}
	if v, ok := c.overrides[key]; ok {
		return v
	}
	return fallback
}

// Get returns the effective value for key: the override if present, else
// the built-in default.
func (c *Config) Get(key Key) int {
	return c.GetOr(key, defaults[key])
}

// WithOverride returns a new Config with key pinned to val, leaving the
// receiver untouched.
func (c *Config) WithOverride(key Key, val int) *Config {
	nc := &Config{overrides: make(map[Key]int, len(c.overridesOrEmpty())+1)}
	for k, v := range c.overridesOrEmpty() {
		nc.overrides[k] = v
	}
	nc.overrides[key] = val
	return nc
}

func (c *Config) overridesOrEmpty() map[Key]int {
	if c == nil {
		return nil
	}
	return c.overrides
}
