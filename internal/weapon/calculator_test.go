package weapon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/patterns"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/pricing"
)

func price(s string) *pricing.PriceText {
	p := pricing.PriceText(s)
	return &p
}

func testCatalog(opts pricing.Options) *pricing.Catalog {
	return pricing.NewCatalog(pricing.Data{
		Weapons: map[string]pricing.WeaponEntry{
			"EXCALIBUR": {Base: price("9-12")},
			"VJAYA":     {HitValues: map[string]pricing.PriceText{"0": "4", "40": "10"}},
			"DARK FLOW": {
				Base:      price("50"),
				Modifiers: map[string]pricing.PriceText{"D": "100"},
			},
			"RAINBOW BATON": {
				Modifiers: map[string]pricing.PriceText{"N": "10", "AB": "10", "M": "10", "D": "10"},
				HitValues: map[string]pricing.PriceText{"20": "1", "50": "5"},
			},
		},
		CommonWeapons: map[string]pricing.WeaponEntry{
			"Saber": {Base: price("0.5")},
		},
	}, opts)
}

func newTestCalculator(tables *patterns.Tables) *Calculator {
	if tables == nil {
		tables = patterns.Default()
	}
	return NewCalculator(testCatalog(pricing.DefaultOptions()), tables)
}

func highShare() float64 {
	return patterns.Default().AttributeProbabilityAtLeast(patterns.TopPattern, patterns.HighAttributeThreshold)
}

func TestExpectedValue_BaseOnly(t *testing.T) {
	calc := newTestCalculator(nil)

	got, err := calc.ExpectedValue("EXCALIBUR", "")
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)

	got, err = calc.ExpectedValue("excalibur", "Forest 1")
	require.NoError(t, err)
	assert.Equal(t, 9.0, got, "weapons without modifiers or hit pricing ignore the area")
}

func TestExpectedValue_HitContributionWithoutArea(t *testing.T) {
	calc := newTestCalculator(nil)

	p3 := 1 - math.Pow(1-patterns.DefaultHitProbability, 3)
	// buckets 5..25 tech below 40 and price at the "0" tier; 30..90 price at 40
	lowMass := 0.2921 + 0.2309 + 0.1908 + 0.1389 + 0.0865
	highMass := 1 - lowMass
	want := 4*(1-p3) + p3*(lowMass*4+highMass*10)

	got, err := calc.ExpectedValue("VJAYA", "")
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-9)
}

func TestAttributeExpectations_ClosedForm(t *testing.T) {
	calc := newTestCalculator(nil)
	tables := patterns.Default()

	w, ok := testCatalog(pricing.DefaultOptions()).Weapon("RAINBOW BATON")
	require.True(t, ok)

	for _, area := range []string{"Forest 1", "Mine 2", "Seabed Lower Levels", "Crater North"} {
		t.Run(area, func(t *testing.T) {
			probs, ok := tables.AreaProbabilities(area)
			require.True(t, ok)

			exp := calc.AttributeExpectations(w, area)
			// an attribute is assigned iff it appears in at least one of the three rolls
			for _, o := range patterns.ElementalOutcomes {
				want := (1 - math.Pow(1-probs[o], 3)) * highShare()
				assert.InDelta(t, want, exp[o], 1e-12, o.String())
			}
			assert.InDelta(t, 1-math.Pow(1-probs[patterns.Hit], 3), exp[patterns.Hit], 1e-12)
			assert.Equal(t, 0.0, exp[patterns.NoAttribute])
		})
	}
}

func TestExpectedValue_DarkOnlyArea(t *testing.T) {
	cfg := patterns.DefaultConfig()
	cfg.Areas = map[string]patterns.AreaRates{"Dark Room": {0, 0, 0, 1, 0, 1}}
	calc := newTestCalculator(patterns.NewTables(cfg))

	b, err := calc.Breakdown("DARK FLOW", "Dark Room")
	require.NoError(t, err)

	wantAttr := (1 - 0.5*0.5*0.5) * highShare() * 100
	assert.InDelta(t, wantAttr, b.AttributeContribution, 1e-12)
	assert.Equal(t, 50.0, b.BasePrice)
	assert.Equal(t, 0.0, b.HitProbability)
	assert.InDelta(t, 50+wantAttr, b.Total, 1e-12)
	require.Len(t, b.Attributes, 1)
	assert.Equal(t, "D", b.Attributes[0].Code)
}

func TestExpectedValue_NoAreaMeansNoAttributes(t *testing.T) {
	calc := newTestCalculator(nil)

	b, err := calc.Breakdown("DARK FLOW", "")
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.AttributeContribution)
	assert.Equal(t, 50.0, b.Total)
	assert.Nil(t, b.AreaProbabilities)
}

func TestExpectedValue_ZeroWeightArea(t *testing.T) {
	cfg := patterns.DefaultConfig()
	cfg.Areas = map[string]patterns.AreaRates{"Void": {}}
	calc := newTestCalculator(patterns.NewTables(cfg))

	b, err := calc.Breakdown("RAINBOW BATON", "Void")
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.AttributeContribution)
	assert.Equal(t, 0.0, b.HitContribution, "no hit can roll in an all-zero area")
}

func TestBreakdown_HitRows(t *testing.T) {
	calc := newTestCalculator(nil)

	b, err := calc.Breakdown("VJAYA", "Cave 1")
	require.NoError(t, err)
	require.NotEmpty(t, b.HitRows)

	noHit := b.HitRows[0]
	assert.Nil(t, noHit.PatternProbability)
	assert.Equal(t, "4", noHit.PriceRange)
	assert.InDelta(t, b.NoHitProbability, noHit.CombinedProbability, 1e-15)

	sum := 0.0
	combined := 0.0
	for _, row := range b.HitRows {
		sum += row.ExpectedValue
		combined += row.CombinedProbability
		if row.PatternProbability != nil {
			assert.Equal(t, row.HitValue+TechBonus, row.TechedHit)
		}
	}
	assert.InDelta(t, b.HitContribution, sum, 1e-12)
	assert.InDelta(t, 1.0, combined, 1e-9, "no-hit plus every hit bucket covers all outcomes")
	assert.InDelta(t, b.BasePrice+b.AttributeContribution+b.HitContribution, b.Total, 1e-12)
}

func TestBreakdown_SkipsBucketsBelowLowestThreshold(t *testing.T) {
	calc := newTestCalculator(nil)

	b, err := calc.Breakdown("RAINBOW BATON", "")
	require.NoError(t, err)

	for _, row := range b.HitRows {
		assert.GreaterOrEqual(t, row.TechedHit, 20)
	}
	// bucket 5 techs to 15 and has no tier, so 17 of 18 buckets price
	assert.Len(t, b.HitRows, 17)
}

func TestExpectedValue_CommonWeaponIsBaseOnly(t *testing.T) {
	calc := newTestCalculator(nil)

	b, err := calc.Breakdown("saber", "Forest 1")
	require.NoError(t, err)
	assert.True(t, b.Common)
	assert.Equal(t, 0.5, b.Total)
	assert.Empty(t, b.HitRows)
}

func TestExpectedValue_UnknownWeapon(t *testing.T) {
	lenient := newTestCalculator(nil)
	got, err := lenient.ExpectedValue("NO SUCH BLADE", "Forest 1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	strict := NewCalculator(testCatalog(pricing.Options{Strategy: pricing.StrategyMinimum}), patterns.Default())
	_, err = strict.ExpectedValue("NO SUCH BLADE", "Forest 1")
	assert.ErrorIs(t, err, domain.ErrPriceNotFound)
}

func TestIsRare(t *testing.T) {
	c := testCatalog(pricing.DefaultOptions())
	assert.True(t, IsRare(c, "vjaya"))
	assert.False(t, IsRare(c, "Saber"))
}
