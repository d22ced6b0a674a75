package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_PatternsSumToOne(t *testing.T) {
	tables := Default()

	for n := 0; n <= TopPattern; n++ {
		dist := tables.Pattern(n)
		require.NotEmpty(t, dist, "pattern %d", n)
		assert.InDelta(t, 1.0, dist.Sum(), 1e-9, "pattern %d", n)

		for i := 1; i < len(dist); i++ {
			assert.Less(t, dist[i-1].Value, dist[i].Value, "buckets must ascend")
		}
	}
}

func TestDefault_AreaWeightsPositive(t *testing.T) {
	tables := Default()

	for _, area := range tables.Areas() {
		rates, ok := tables.AreaRates(area)
		require.True(t, ok)
		assert.Positive(t, rates.Total(), area)

		probs, ok := tables.AreaProbabilities(area)
		require.True(t, ok)
		assert.InDelta(t, 1.0, probs.Total(), 1e-12, area)
	}
}

func TestAttributeProbability(t *testing.T) {
	tables := Default()

	assert.Equal(t, 0.2921, tables.AttributeProbability(5, 5))
	assert.Equal(t, 0.0016, tables.AttributeProbability(5, 50))
	assert.Equal(t, 0.0, tables.AttributeProbability(5, 7), "undefined bucket")
	assert.Equal(t, 0.0, tables.AttributeProbability(9, 5), "undefined pattern")
}

func TestAttributeProbabilityAtLeast(t *testing.T) {
	tables := Default()

	assert.InDelta(t, 0.0033, tables.AttributeProbabilityAtLeast(5, HighAttributeThreshold), 1e-12)
	assert.InDelta(t, 1.0, tables.AttributeProbabilityAtLeast(5, 0), 1e-9)
	assert.Equal(t, 0.0, tables.AttributeProbabilityAtLeast(5, 95))
}

func TestExpectedAttributeValue(t *testing.T) {
	tables := Default()

	// 50*.0016 + 55*.0008 + 60*.0003 + (65+70+75+80+85+90)*.0001
	want := 0.08 + 0.044 + 0.018 + 0.0465
	assert.InDelta(t, want, tables.ExpectedAttributeValue(5, 50), 1e-12)
	assert.Greater(t, tables.ExpectedAttributeValue(5, 0), tables.ExpectedAttributeValue(5, 50))
}

func TestHitProbability(t *testing.T) {
	tables := Default()

	tests := []struct {
		name string
		area string
		want float64
	}{
		{"no area", "", DefaultHitProbability},
		{"unknown area", "Pioneer 2", DefaultHitProbability},
		{"forest", "Forest 1", 0.05},
		{"case-insensitive", "forest 1", 0.05},
		{"seabed by quest name", "Seabed Upper", 5.0 / 100.0},
		{"vr temple", "VR Temple Alpha", 5.0 / 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tables.HitProbability(tt.area), 1e-12)
		})
	}
}

func TestHitProbability_ZeroWeightArea(t *testing.T) {
	tables := NewTables(Config{Areas: map[string]AreaRates{"Void": {}}})

	assert.Equal(t, 0.0, tables.HitProbability("Void"))
	assert.Equal(t, 0.0, tables.ThreeRollHitProbability("Void"))

	_, ok := tables.AreaProbabilities("Void")
	assert.False(t, ok)
}

func TestThreeRollHitProbability(t *testing.T) {
	tables := Default()

	want := 1 - 0.95*0.95*0.95
	assert.InDelta(t, want, tables.ThreeRollHitProbability(""), 1e-12)
	assert.InDelta(t, want, tables.ThreeRollHitProbability("Cave 2"), 1e-12)
}

func TestPatternForArea(t *testing.T) {
	tables := Default()

	assert.Equal(t, 2, tables.PatternForArea("VR Temple Alpha"))
	assert.Equal(t, 3, tables.PatternForArea("jungle north"))
	assert.Equal(t, 4, tables.PatternForArea("Desert 3"))
	assert.Equal(t, 0, tables.PatternForArea("Forest 1"))
	assert.Equal(t, 0, tables.PatternForArea("nowhere"))
}

func TestPatternValueRange(t *testing.T) {
	tables := Default()

	assert.Equal(t, ValueRange{Min: 50, Max: 60}, tables.PatternValueRange(5))
	assert.Equal(t, DefaultValueRange, tables.PatternValueRange(42))
	assert.Equal(t, 25.0, tables.AveragePatternValue(2))
}

func TestOutcomeCodes(t *testing.T) {
	codes := map[Outcome]string{Native: "N", ABeast: "AB", Machine: "M", Dark: "D", Hit: "", NoAttribute: ""}
	for o, code := range codes {
		assert.Equal(t, code, o.ModifierCode(), o.String())
	}
	assert.Equal(t, "no_attribute", NoAttribute.String())
}
