// Package schedule computes polynomial learning-rate decay curves with
// optional linear warmup.
package schedule

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidConfig is returned (wrapped) by Config.Validate for
// out-of-range parameters.
var ErrInvalidConfig = errors.New("invalid schedule config")

// DefaultPowers is the comparison set plotted when no powers are given.
var DefaultPowers = []float64{0.1, 0.3, 0.5, 0.8, 1, 1.5, 2, 3, 5, 10}

// Default returns the configuration used when no flags or parameters
// override it.
func Default() Config {
	return Config{
		Steps:     4000,
		Warmup:    400,
		InitialLR: 1e-4,
		FinalLR:   1e-7,
		Powers:    append([]float64(nil), DefaultPowers...),
	}
}

// Config describes a family of polynomial decay schedules sharing the same
// step count, warmup length and learning-rate bounds. One curve is produced
// per entry in Powers.
type Config struct {
	Steps     int
	Warmup    int
	InitialLR float64
	FinalLR   float64
	Powers    []float64
}

// Curve is one sampled schedule: a rate per training step for a single power.
type Curve struct {
	Power float64
	Rates []float64
}

// Validate rejects parameter combinations the calculator cannot evaluate.
func (c Config) Validate() error {
	if c.Steps <= 0 {
		return fmt.Errorf("%w: steps must be positive, got %d", ErrInvalidConfig, c.Steps)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("%w: warmup steps must not be negative, got %d", ErrInvalidConfig, c.Warmup)
	}
	if c.Warmup >= c.Steps {
		return fmt.Errorf("%w: warmup steps (%d) must be less than total steps (%d)", ErrInvalidConfig, c.Warmup, c.Steps)
	}
	if c.InitialLR <= 0 {
		return fmt.Errorf("%w: learning rate must be positive, got %g", ErrInvalidConfig, c.InitialLR)
	}
	if c.FinalLR < 0 {
		return fmt.Errorf("%w: final learning rate must not be negative, got %g", ErrInvalidConfig, c.FinalLR)
	}
	if len(c.Powers) == 0 {
		return fmt.Errorf("%w: at least one power is required", ErrInvalidConfig)
	}
	for _, p := range c.Powers {
		if p <= 0 {
			return fmt.Errorf("%w: powers must be positive, got %g", ErrInvalidConfig, p)
		}
	}
	return nil
}

// Rate returns the learning rate at the given step for one power.
//
// Steps below Warmup ramp linearly from 0 toward InitialLR; the step at the
// warmup boundary is the first decay step and yields exactly InitialLR. After
// warmup the rate follows (1-t)^power decay where t runs from 0 at the warmup
// boundary to 1 at the final step, so the last step lands on FinalLR.
func (c Config) Rate(step int, power float64) float64 {
	if step < c.Warmup {
		return c.InitialLR * float64(step) / float64(c.Warmup)
	}
	span := c.Steps - 1 - c.Warmup
	if span <= 0 {
		return c.InitialLR
	}
	t := float64(step-c.Warmup) / float64(span)
	if t >= 1 {
		return c.FinalLR
	}
	return c.FinalLR + (c.InitialLR-c.FinalLR)*math.Pow(1-t, power)
}

// Sample evaluates the schedule for one power at every step.
func (c Config) Sample(power float64) []float64 {
	rates := make([]float64, c.Steps)
	for i := range rates {
		rates[i] = c.Rate(i, power)
	}
	return rates
}

// Curves evaluates the schedule for every configured power, in order.
func (c Config) Curves() []Curve {
	out := make([]Curve, 0, len(c.Powers))
	for _, p := range c.Powers {
		out = append(out, Curve{Power: p, Rates: c.Sample(p)})
	}
	return out
}

// ParsePowers parses a comma- or space-separated list of powers, e.g.
// "0.5,1,2" or "0.5 1 2".
func ParsePowers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: at least one power is required", ErrInvalidConfig)
	}
	powers := make([]float64, 0, len(fields))
	for _, f := range fields {
		p, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad power %q", ErrInvalidConfig, f)
		}
		powers = append(powers, p)
	}
	return powers, nil
}

// FormatPower renders a power the way it appears in legends and filenames:
// no exponent, no trailing zeros.
func FormatPower(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
