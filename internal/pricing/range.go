package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
)

// Strategy collapses a "min-max" price range into one number
type Strategy string

// ParseStrategy matches a strategy name case-insensitively. Empty selects the default.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultStrategy, nil
	case string(StrategyMinimum):
		return StrategyMinimum, nil
	case string(StrategyAverage):
		return StrategyAverage, nil
	case string(StrategyMaximum):
		return StrategyMaximum, nil
	}
	return "", fmt.Errorf("%w: unknown price strategy %q", domain.ErrInvalidInput, s)
}

// RangeKind tells how a price string was interpreted
type RangeKind int

const (
	RangeInvalid RangeKind = iota
	RangeInestimable
	RangeScalar
	RangeInterval
	RangeFloor
)

// Range is the parsed form of a price string
type Range struct {
	Kind RangeKind
	Min  float64
	Max  float64
}

// ParseRange interprets price guide text. It never fails; text that cannot be read
// comes back as RangeInvalid, which resolves to zero.
func ParseRange(text string) Range {
	text = strings.TrimSpace(text)
	if text == "" {
		return Range{Kind: RangeInvalid}
	}

	if _, ok := inestimableTokens[strings.ToUpper(text)]; ok {
		return Range{Kind: RangeInestimable}
	}

	// "4800+" prices at the floor whatever the strategy
	if strings.HasSuffix(text, "+") {
		v, err := parseNumber(strings.TrimRight(text, "+"))
		if err != nil {
			return Range{Kind: RangeInvalid}
		}
		return Range{Kind: RangeFloor, Min: v, Max: v}
	}

	if strings.Contains(text, "-") {
		parts := strings.Split(text, "-")
		if len(parts) != 2 {
			return Range{Kind: RangeInvalid}
		}
		lo, errLo := parseNumber(parts[0])
		hi, errHi := parseNumber(parts[1])
		if errLo != nil || errHi != nil {
			return Range{Kind: RangeInvalid}
		}
		return Range{Kind: RangeInterval, Min: lo, Max: hi}
	}

	v, err := parseNumber(text)
	if err != nil {
		return Range{Kind: RangeInvalid}
	}
	return Range{Kind: RangeScalar, Min: v, Max: v}
}

// Resolve collapses the range under the given strategy
func (r Range) Resolve(strategy Strategy) float64 {
	switch r.Kind {
	case RangeScalar, RangeFloor:
		return r.Min
	case RangeInterval:
		switch strategy {
		case StrategyMaximum:
			return r.Max
		case StrategyAverage:
			return (r.Min + r.Max) / 2
		default:
			return r.Min
		}
	}
	return 0
}

// ResolveRange parses and resolves a price string in one step
func ResolveRange(text string, strategy Strategy) float64 {
	return ParseRange(text).Resolve(strategy)
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(s, 64)
}
