package armor

import "github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"

// Breakdown is the itemized expected value of one frame or barrier
type Breakdown struct {
	Item          string          `json:"item"`
	Category      domain.Category `json:"category"`
	BasePrice     float64         `json:"base_price"`
	Tiers         []TierRow       `json:"tiers,omitempty"`
	ExpectedValue float64         `json:"expected_value"`
}

// TierRow is one stat tier's share of the expected value
type TierRow struct {
	Tier        Tier    `json:"tier"`
	Probability float64 `json:"probability"`
	// Defined is false when the tier fell back to the base price
	Defined      bool    `json:"defined"`
	PriceRange   string  `json:"price_range,omitempty"`
	Price        float64 `json:"price"`
	Contribution float64 `json:"contribution"`
}
