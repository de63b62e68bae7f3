package cost

import (
	"testing"

	"github.com/lexiform/algex/internal/config"
)

func TestDigits(t *testing.T) {
	cases := map[int64]int{0: 1, 5: 1, -5: 1, 42: 2, -123: 3, 1000: 4}
	for n, want := range cases {
		if got := Digits(n); got != want {
			t.Errorf("Digits(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestAddCheapestOnZero(t *testing.T) {
	cfg := config.Default()
	if got := Add(cfg, 0, 9); got != cfg.Get(config.AddZero) {
		t.Errorf("Add(0,9) = %d, want %d", got, cfg.Get(config.AddZero))
	}
	if got := Add(cfg, 4, 5); got != cfg.Get(config.AddSingleDigit) {
		t.Errorf("Add(4,5) = %d, want %d", got, cfg.Get(config.AddSingleDigit))
	}
	if got := Add(cfg, 40, 5); got <= cfg.Get(config.AddSingleDigit) {
		t.Errorf("Add(40,5) = %d, should exceed the single-digit cost", got)
	}
}

func TestMulByZeroAndOne(t *testing.T) {
	cfg := config.Default()
	if got := Mul(cfg, 0, 999); got != cfg.Get(config.MulByZero) {
		t.Errorf("Mul(0,999) = %d, want %d", got, cfg.Get(config.MulByZero))
	}
	if got := Mul(cfg, 1, 999); got != cfg.Get(config.MulByOne) {
		t.Errorf("Mul(1,999) = %d, want %d", got, cfg.Get(config.MulByOne))
	}
	if got := Mul(cfg, -1, 999); got != cfg.Get(config.MulByOne) {
		t.Errorf("Mul(-1,999) = %d, want %d (abs value of 1)", got, cfg.Get(config.MulByOne))
	}
}

func TestMulGrowsWithDigitCount(t *testing.T) {
	cfg := config.Default()
	small := Mul(cfg, 3, 4)
	big := Mul(cfg, 345, 678)
	if big <= small {
		t.Errorf("Mul(345,678) = %d, should exceed Mul(3,4) = %d", big, small)
	}
}

func TestDivIsFlat(t *testing.T) {
	cfg := config.Default()
	if got := Div(cfg, 100, 5); got != cfg.Get(config.DivCost) {
		t.Errorf("Div(100,5) = %d, want %d", got, cfg.Get(config.DivCost))
	}
	if got := Div(cfg, 6, 2); got != cfg.Get(config.DivCost) {
		t.Errorf("Div(6,2) = %d, want %d", got, cfg.Get(config.DivCost))
	}
}
