// Package armor computes the expected value of frame and barrier drops from the
// stat tier distribution and the price guide.
package armor

import (
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/pricing"
)

// Tier is a stat roll band of a dropped frame or barrier
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
	TierMax    Tier = "max"
)

// Tiers lists every tier in roll order
var Tiers = []Tier{TierLow, TierMedium, TierHigh, TierMax}

// Low and medium are equally likely, high is half of either and max is 1/100:
// 2x + x/2 + 0.01 = 1
var tierProbabilities = map[Tier]float64{
	TierLow:    0.396,
	TierMedium: 0.396,
	TierHigh:   0.198,
	TierMax:    0.01,
}

// TierProbability returns the chance a drop rolls the given tier
func TierProbability(t Tier) float64 {
	return tierProbabilities[t]
}

// Calculator values frames and barriers against one catalog
type Calculator struct {
	catalog *pricing.Catalog
}

// NewCalculator creates a Calculator
func NewCalculator(catalog *pricing.Catalog) *Calculator {
	return &Calculator{catalog: catalog}
}

// FrameExpectedValue is the tier-weighted price of a frame. Slots are not part of the drop.
func (c *Calculator) FrameExpectedValue(name string) (float64, error) {
	b, err := c.FrameBreakdown(name)
	if err != nil {
		return 0, err
	}
	return b.ExpectedValue, nil
}

// BarrierExpectedValue is the tier-weighted price of a barrier
func (c *Calculator) BarrierExpectedValue(name string) (float64, error) {
	b, err := c.BarrierBreakdown(name)
	if err != nil {
		return 0, err
	}
	return b.ExpectedValue, nil
}

// FrameBreakdown itemizes a frame's expected value per tier. The max tier reads "Max Stat".
func (c *Calculator) FrameBreakdown(name string) (*Breakdown, error) {
	entry, ok := c.catalog.Frame(name)
	if !ok {
		if _, err := c.catalog.LookupFrame(name, 0); err != nil {
			return nil, err
		}
		return &Breakdown{Item: name, Category: domain.CategoryFrame}, nil
	}
	return c.breakdown(name, domain.CategoryFrame, entry, entry.MaxStat), nil
}

// BarrierBreakdown itemizes a barrier's expected value per tier. The max tier reads "Max EVP".
func (c *Calculator) BarrierBreakdown(name string) (*Breakdown, error) {
	entry, ok := c.catalog.Barrier(name)
	if !ok {
		if _, err := c.catalog.LookupBarrier(name); err != nil {
			return nil, err
		}
		return &Breakdown{Item: name, Category: domain.CategoryBarrier}, nil
	}
	return c.breakdown(name, domain.CategoryBarrier, entry, entry.MaxEVP), nil
}

func (c *Calculator) breakdown(name string, category domain.Category, entry pricing.ArmorEntry, maxTier *pricing.PriceText) *Breakdown {
	b := &Breakdown{Item: name, Category: category}
	if entry.Base != nil {
		b.BasePrice = c.catalog.Resolve(*entry.Base)
	}

	prices := map[Tier]*pricing.PriceText{
		TierLow:    entry.MinStat,
		TierMedium: entry.MedStat,
		TierHigh:   entry.HighStat,
		TierMax:    maxTier,
	}

	for _, t := range Tiers {
		row := TierRow{
			Tier:        t,
			Probability: tierProbabilities[t],
			Price:       b.BasePrice,
		}
		// an undefined or blank tier falls back to base
		if text := prices[t]; text != nil && *text != "" {
			row.Defined = true
			row.PriceRange = string(*text)
			row.Price = c.catalog.Resolve(*text)
		}
		row.Contribution = row.Price * row.Probability
		b.Tiers = append(b.Tiers, row)
		b.ExpectedValue += row.Contribution
	}
	return b
}
