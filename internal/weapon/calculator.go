// Package weapon computes the expected value of a rare weapon drop from the area
// attribute roll model and the price guide.
package weapon

import (
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/patterns"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/pricing"
)

// TechBonus is added to a rolled hit value before it is priced
const TechBonus = 10

// Calculator values weapons against one catalog and one set of roll tables
type Calculator struct {
	catalog *pricing.Catalog
	tables  *patterns.Tables
}

// NewCalculator creates a Calculator
func NewCalculator(catalog *pricing.Catalog, tables *patterns.Tables) *Calculator {
	return &Calculator{catalog: catalog, tables: tables}
}

// Expectations holds, per roll outcome, the expected price-relevant share of that
// attribute: P(assigned) times P(magnitude counts once assigned)
type Expectations [len(patterns.Outcomes)]float64

// Total sums every outcome
func (e Expectations) Total() float64 {
	total := 0.0
	for _, v := range e {
		total += v
	}
	return total
}

// ExpectedValue returns base + attribute contribution + hit contribution for the
// named weapon dropped in area ("" when unknown)
func (c *Calculator) ExpectedValue(name, area string) (float64, error) {
	b, err := c.Breakdown(name, area)
	if err != nil {
		return 0, err
	}
	return b.Total, nil
}

// Breakdown computes the expected value with every intermediate term
func (c *Calculator) Breakdown(name, area string) (*Breakdown, error) {
	b := &Breakdown{
		Weapon:                  name,
		Area:                    area,
		HitProbability:          c.tables.HitProbability(area),
		ThreeRollHitProbability: c.tables.ThreeRollHitProbability(area),
	}
	b.NoHitProbability = 1 - b.ThreeRollHitProbability
	if probs, ok := c.tables.AreaProbabilities(area); ok {
		b.AreaProbabilities = make(map[string]float64, len(probs))
		for _, o := range patterns.Outcomes {
			b.AreaProbabilities[o.String()] = probs[o]
		}
	}

	w, ok := c.catalog.Weapon(name)
	if !ok {
		// Common weapons have no area pattern model yet and are valued at base only
		if common, found := c.catalog.CommonWeapon(name); found {
			b.Common = true
			b.BasePrice = c.basePrice(common)
			b.Total = b.BasePrice
			return b, nil
		}
		if _, err := c.catalog.LookupWeapon(name, nil, 0); err != nil {
			return nil, err
		}
		return b, nil
	}

	b.BasePrice = c.basePrice(w)

	exp := c.AttributeExpectations(w, area)
	for _, o := range patterns.ElementalOutcomes {
		code := o.ModifierCode()
		if !w.HasModifier(code) {
			continue
		}
		price := c.catalog.ModifierPrice(w, code)
		row := AttributeRow{
			Attribute:     o.String(),
			Code:          code,
			Expectation:   exp[o],
			ModifierPrice: price,
			Contribution:  exp[o] * price,
		}
		b.Attributes = append(b.Attributes, row)
		b.AttributeContribution += row.Contribution
	}
	b.HitExpectation = exp[patterns.Hit]

	b.HitRows = c.hitRows(w, b.ThreeRollHitProbability, b.NoHitProbability)
	for _, row := range b.HitRows {
		b.HitContribution += row.ExpectedValue
	}

	b.Total = b.BasePrice + b.AttributeContribution + b.HitContribution
	return b, nil
}

// basePrice is the explicit base only. The "0" hit price is covered by the no-hit
// row of the hit contribution.
func (c *Calculator) basePrice(w *pricing.WeaponEntry) float64 {
	if w.Base == nil {
		return 0
	}
	return c.catalog.Resolve(*w.Base)
}

// AttributeExpectations enumerates all 6^3 ordered outcomes of the three area rolls.
// A roll repeating an already assigned category assigns nothing. Only categories the
// weapon prices accumulate. Without area data every expectation is 0.
func (c *Calculator) AttributeExpectations(w *pricing.WeaponEntry, area string) Expectations {
	var exp Expectations

	probs, ok := c.tables.AreaProbabilities(area)
	if !ok {
		return exp
	}

	var supported [len(patterns.Outcomes)]bool
	anySupported := false
	for _, o := range patterns.ElementalOutcomes {
		supported[o] = w.HasModifier(o.ModifierCode())
		anySupported = anySupported || supported[o]
	}
	supported[patterns.Hit] = w.HasHitPricing()
	anySupported = anySupported || supported[patterns.Hit]
	if !anySupported {
		return exp
	}

	var perAssignment [len(patterns.Outcomes)]float64
	highShare := c.tables.AttributeProbabilityAtLeast(patterns.TopPattern, patterns.HighAttributeThreshold)
	for _, o := range patterns.ElementalOutcomes {
		perAssignment[o] = highShare
	}
	// hit uses the whole top pattern distribution when priced
	perAssignment[patterns.Hit] = 1.0

	for _, r1 := range patterns.Outcomes {
		p1 := probs[r1]
		if p1 == 0 {
			continue
		}
		for _, r2 := range patterns.Outcomes {
			p2 := probs[r2]
			if p2 == 0 {
				continue
			}
			for _, r3 := range patterns.Outcomes {
				p3 := probs[r3]
				if p3 == 0 {
					continue
				}

				p := p1 * p2 * p3
				assigned := assignedSet(r1, r2, r3)
				for _, o := range patterns.Outcomes {
					if assigned&(1<<o) != 0 && supported[o] {
						exp[o] += perAssignment[o] * p
					}
				}
			}
		}
	}

	return exp
}

// assignedSet returns the distinct attribute categories assigned by a roll triple
func assignedSet(rolls ...patterns.Outcome) uint8 {
	var set uint8
	for _, r := range rolls {
		if r == patterns.NoAttribute {
			continue
		}
		set |= 1 << r
	}
	return set
}

// hitRows prices every top-pattern hit bucket after teching, plus the no-hit outcome
// when the weapon prices hit "0". Weapons without hit pricing have no rows.
func (c *Calculator) hitRows(w *pricing.WeaponEntry, threeRoll, noHit float64) []HitRow {
	if !w.HasHitPricing() {
		return nil
	}

	var rows []HitRow
	if text, ok := w.HitValues[pricing.NoHitKey]; ok {
		price := c.catalog.Resolve(text)
		rows = append(rows, HitRow{
			CombinedProbability: noHit,
			PriceRange:          string(text),
			Price:               price,
			ExpectedValue:       price * noHit,
		})
	}

	for _, bucket := range c.tables.Pattern(patterns.TopPattern) {
		teched := bucket.Value + TechBonus
		tier, ok := w.TierAtHit(teched)
		if !ok {
			continue
		}
		combined := threeRoll * bucket.Probability
		price := c.catalog.Resolve(tier.Price)
		p5 := bucket.Probability
		rows = append(rows, HitRow{
			HitValue:            bucket.Value,
			TechedHit:           teched,
			PatternProbability:  &p5,
			CombinedProbability: combined,
			PriceRange:          string(tier.Price),
			Price:               price,
			ExpectedValue:       price * combined,
		})
	}
	return rows
}

// IsRare reports whether a catalog weapon rolls on the top pattern. Every weapon in
// the rare table does; rarity codes are not modeled.
func IsRare(catalog *pricing.Catalog, name string) bool {
	return catalog.Has(domain.CategoryWeapon, name)
}
