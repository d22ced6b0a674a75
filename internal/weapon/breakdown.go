package weapon

// Breakdown is the itemized expected value of one weapon drop
type Breakdown struct {
	Weapon string `json:"weapon"`
	Area   string `json:"area,omitempty"`
	// Common is set for weapons only found in the common table, valued at base
	Common bool `json:"common,omitempty"`

	BasePrice             float64 `json:"base_price"`
	AttributeContribution float64 `json:"attribute_contribution"`
	HitContribution       float64 `json:"hit_contribution"`
	Total                 float64 `json:"total"`

	Attributes     []AttributeRow `json:"attributes,omitempty"`
	HitExpectation float64        `json:"hit_expectation"`
	HitRows        []HitRow       `json:"hit_breakdown,omitempty"`

	HitProbability          float64            `json:"hit_probability"`
	ThreeRollHitProbability float64            `json:"three_roll_hit_probability"`
	NoHitProbability        float64            `json:"no_hit_probability"`
	AreaProbabilities       map[string]float64 `json:"area_probabilities,omitempty"`
}

// AttributeRow is one elemental attribute's share of the expected value
type AttributeRow struct {
	Attribute     string  `json:"attribute"`
	Code          string  `json:"code"`
	Expectation   float64 `json:"expectation"`
	ModifierPrice float64 `json:"modifier_price"`
	Contribution  float64 `json:"contribution"`
}

// HitRow is one priced hit outcome. The no-hit row has a nil PatternProbability.
type HitRow struct {
	HitValue            int      `json:"hit_value"`
	TechedHit           int      `json:"teched_hit"`
	PatternProbability  *float64 `json:"pattern5_prob"`
	CombinedProbability float64  `json:"combined_prob"`
	PriceRange          string   `json:"price_range"`
	Price               float64  `json:"price"`
	ExpectedValue       float64  `json:"expected_value"`
}
