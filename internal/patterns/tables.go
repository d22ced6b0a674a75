// Package patterns holds the weapon attribute roll model: per-pattern value
// distributions and per-area attribute category weights.
package patterns

import (
	"maps"
	"math"
	"slices"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
)

// Outcome is one category an area attribute roll can land on
type Outcome int

const (
	Native Outcome = iota
	ABeast
	Machine
	Dark
	Hit
	NoAttribute
)

// Outcomes lists every roll category in table order
var Outcomes = [...]Outcome{Native, ABeast, Machine, Dark, Hit, NoAttribute}

// ElementalOutcomes are the attributes priced through weapon modifiers
var ElementalOutcomes = [...]Outcome{Native, ABeast, Machine, Dark}

func (o Outcome) String() string {
	switch o {
	case Native:
		return "native"
	case ABeast:
		return "abeast"
	case Machine:
		return "machine"
	case Dark:
		return "dark"
	case Hit:
		return "hit"
	}
	return "no_attribute"
}

// ModifierCode is the price guide modifier key for an elemental outcome ("" otherwise)
func (o Outcome) ModifierCode() string {
	switch o {
	case Native:
		return "N"
	case ABeast:
		return "AB"
	case Machine:
		return "M"
	case Dark:
		return "D"
	}
	return ""
}

// Bucket is one attribute value and its probability
type Bucket struct {
	Value       int
	Probability float64
}

// Distribution is a pattern's buckets in ascending value order
type Distribution []Bucket

// Sum returns the total probability mass
func (d Distribution) Sum() float64 {
	total := 0.0
	for _, b := range d {
		total += b.Probability
	}
	return total
}

// AreaRates are the raw roll weights of an area, indexed by Outcome
type AreaRates [len(Outcomes)]float64

// Total returns the sum of the weights
func (r AreaRates) Total() float64 {
	total := 0.0
	for _, w := range r {
		total += w
	}
	return total
}

// ValueRange is the attribute span a common weapon pattern rolls in
type ValueRange struct {
	Min int
	Max int
}

// Tables is an immutable set of roll tables
type Tables struct {
	patterns     map[int]Distribution
	areas        map[string]AreaRates
	areaAliases  map[string]string
	areaPatterns map[string]int
	valueRanges  map[int]ValueRange
	foldedAreas  map[string]string
}

// Config is the raw content used to build Tables
type Config struct {
	Patterns map[int]map[int]float64
	Areas    map[string]AreaRates
	// AreaAliases maps alternate area spellings (e.g. quest area names) to Areas keys
	AreaAliases  map[string]string
	AreaPatterns map[string]int
	ValueRanges  map[int]ValueRange
}

// NewTables builds Tables from cfg. Inputs are copied.
func NewTables(cfg Config) *Tables {
	t := &Tables{
		patterns:     make(map[int]Distribution, len(cfg.Patterns)),
		areas:        maps.Clone(cfg.Areas),
		areaAliases:  make(map[string]string, len(cfg.AreaAliases)),
		areaPatterns: make(map[string]int, len(cfg.AreaPatterns)),
		valueRanges:  maps.Clone(cfg.ValueRanges),
		foldedAreas:  make(map[string]string, len(cfg.Areas)),
	}
	if t.areas == nil {
		t.areas = map[string]AreaRates{}
	}
	if t.valueRanges == nil {
		t.valueRanges = map[int]ValueRange{}
	}

	for n, buckets := range cfg.Patterns {
		dist := make(Distribution, 0, len(buckets))
		for _, v := range slices.Sorted(maps.Keys(buckets)) {
			dist = append(dist, Bucket{Value: v, Probability: buckets[v]})
		}
		t.patterns[n] = dist
	}
	for name := range cfg.Areas {
		t.foldedAreas[domain.FoldName(name)] = name
	}
	for alias, name := range cfg.AreaAliases {
		t.areaAliases[domain.FoldName(alias)] = name
	}
	for name, n := range cfg.AreaPatterns {
		t.areaPatterns[domain.FoldName(name)] = n
	}
	return t
}

// Pattern returns the distribution for pattern n (nil when undefined)
func (t *Tables) Pattern(n int) Distribution {
	return t.patterns[n]
}

// AttributeProbability is the chance pattern n rolls exactly value
func (t *Tables) AttributeProbability(n, value int) float64 {
	for _, b := range t.patterns[n] {
		if b.Value == value {
			return b.Probability
		}
	}
	return 0
}

// AttributeProbabilityAtLeast sums the buckets of pattern n with value >= minValue
func (t *Tables) AttributeProbabilityAtLeast(n, minValue int) float64 {
	total := 0.0
	for _, b := range t.patterns[n] {
		if b.Value >= minValue {
			total += b.Probability
		}
	}
	return total
}

// ExpectedAttributeValue is the probability-weighted sum of bucket values >= minValue
func (t *Tables) ExpectedAttributeValue(n, minValue int) float64 {
	expected := 0.0
	for _, b := range t.patterns[n] {
		if b.Value >= minValue {
			expected += float64(b.Value) * b.Probability
		}
	}
	return expected
}

// CanonicalArea resolves an area name (exact, case-insensitive, then alias) to its
// table key
func (t *Tables) CanonicalArea(area string) (string, bool) {
	if area == "" {
		return "", false
	}
	if _, ok := t.areas[area]; ok {
		return area, true
	}
	folded := domain.FoldName(area)
	if name, ok := t.foldedAreas[folded]; ok {
		return name, true
	}
	if name, ok := t.areaAliases[folded]; ok {
		if _, exists := t.areas[name]; exists {
			return name, true
		}
	}
	return "", false
}

// AreaRates returns the raw weights for area
func (t *Tables) AreaRates(area string) (AreaRates, bool) {
	name, ok := t.CanonicalArea(area)
	if !ok {
		return AreaRates{}, false
	}
	return t.areas[name], true
}

// AreaProbabilities returns the normalized roll distribution for area. It reports
// false when the area is unknown or its weights are all zero.
func (t *Tables) AreaProbabilities(area string) (AreaRates, bool) {
	rates, ok := t.AreaRates(area)
	if !ok {
		return AreaRates{}, false
	}
	total := rates.Total()
	if total == 0 {
		return AreaRates{}, false
	}
	var probs AreaRates
	for i, w := range rates {
		probs[i] = w / total
	}
	return probs, true
}

// HitProbability is the chance one roll lands on hit. Unknown or empty areas use
// DefaultHitProbability; an all-zero area gives 0.
func (t *Tables) HitProbability(area string) float64 {
	rates, ok := t.AreaRates(area)
	if !ok {
		return DefaultHitProbability
	}
	total := rates.Total()
	if total == 0 {
		return 0
	}
	return rates[Hit] / total
}

// ThreeRollHitProbability is the chance at least one of the three rolls lands on hit
func (t *Tables) ThreeRollHitProbability(area string) float64 {
	return 1 - math.Pow(1-t.HitProbability(area), AttributeRolls)
}

// PatternForArea returns the common-weapon pattern used in area (0 when unmapped)
func (t *Tables) PatternForArea(area string) int {
	if name, ok := t.CanonicalArea(area); ok {
		area = name
	}
	return t.areaPatterns[domain.FoldName(area)]
}

// PatternValueRange returns the attribute span of pattern n
func (t *Tables) PatternValueRange(n int) ValueRange {
	if r, ok := t.valueRanges[n]; ok {
		return r
	}
	return DefaultValueRange
}

// AveragePatternValue is the midpoint of the pattern's value range
func (t *Tables) AveragePatternValue(n int) float64 {
	r := t.PatternValueRange(n)
	return float64(r.Min+r.Max) / 2
}

// Areas returns the area names in sorted order
func (t *Tables) Areas() []string {
	return slices.Sorted(maps.Keys(t.areas))
}
