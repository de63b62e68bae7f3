// Package cost implements the pure cost functions behind the rewrite
// generators (component 3 of the design): each function takes only the
// operand values and the constant table, and returns the local cost a
// generator should attach to the Model transition it produces.
package cost

import "github.com/lexiform/algex/internal/config"

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// Digits returns the number of decimal digits in |n|, with Digits(0) == 1.
func Digits(n int64) int {
	n = abs64(n)
	if n == 0 {
		return 1
	}
	count := 0
	for n > 0 {
		count++
		n /= 10
	}
	return count
}

func singleDigit(n int64) bool {
	return Digits(n) == 1
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func intPow(base, exp int) int {
	r := 1
	for i := 0; i < exp; i++ {
		r *= base
	}
	return r
}

// Add returns the local cost of folding a+b into one number ref.
func Add(cfg *config.Config, a, b int64) int {
	if a == 0 || b == 0 {
		return cfg.Get(config.AddZero)
	}
	if singleDigit(a) && singleDigit(b) {
		return cfg.Get(config.AddSingleDigit)
	}
	return maxInt(Digits(a), Digits(b)) * cfg.Get(config.AddPerDigit)
}

// Sub returns the local cost of folding a-b into one number ref.
func Sub(cfg *config.Config, a, b int64) int {
	if a == b {
		return cfg.Get(config.SubIdentical)
	}
	if abs64(a-b) == 1 {
		return cfg.Get(config.SubDiffByOne)
	}
	return maxInt(Digits(a), Digits(b)) * cfg.Get(config.SubPerDigit)
}

// Mul returns the local cost of folding a*b into one number ref.
func Mul(cfg *config.Config, a, b int64) int {
	if a == 0 || b == 0 {
		return cfg.Get(config.MulByZero)
	}
	if abs64(a) == 1 || abs64(b) == 1 {
		return cfg.Get(config.MulByOne)
	}
	if singleDigit(a) && singleDigit(b) {
		return cfg.Get(config.MulSingleDigit)
	}
	return intPow(maxInt(Digits(a), Digits(b)), cfg.Get(config.MulDigitExp))
}

// Div returns the local cost of folding a/b into one number ref. Callers
// are responsible for only invoking this when the division is exact.
func Div(cfg *config.Config, a, b int64) int {
	return cfg.Get(config.DivCost)
}
