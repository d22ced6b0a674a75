package pricing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// PriceText is a raw price guide value such as "9-12", "4800+" or "N/A".
// Numbers in the source files are accepted and kept as their text form.
type PriceText string

// UnmarshalJSON accepts strings, numbers and null
func (p *PriceText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PriceText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("price must be a string or number: %w", err)
	}
	*p = PriceText(n.String())
	return nil
}

// WeaponEntry is one row of weapons.json or common_weapons.json
type WeaponEntry struct {
	Base      *PriceText           `json:"base"`
	Modifiers map[string]PriceText `json:"modifiers,omitempty"`
	HitValues map[string]PriceText `json:"hit_values,omitempty"`

	tiers []Tier
}

// Tier is a threshold (hit value or disk level) and the price that applies from it upward
type Tier struct {
	Threshold int
	Price     PriceText
}

// HasHitPricing reports whether any hit threshold is priced
func (w *WeaponEntry) HasHitPricing() bool {
	return len(w.HitValues) > 0
}

// HasModifier reports whether the weapon prices the given attribute
func (w *WeaponEntry) HasModifier(attribute string) bool {
	_, ok := w.Modifiers[attribute]
	return ok
}

// HitTiers returns the priced thresholds in ascending order. Keys that are not
// integers are ignored.
func (w *WeaponEntry) HitTiers() []Tier {
	if w.tiers != nil {
		return w.tiers
	}
	return sortTiers(w.HitValues)
}

// prepare sorts the hit thresholds once so concurrent readers never re-sort
func (w *WeaponEntry) prepare() {
	if len(w.HitValues) > 0 {
		w.tiers = sortTiers(w.HitValues)
	}
}

// TierAtHit finds the greatest threshold <= hit
func (w *WeaponEntry) TierAtHit(hit int) (Tier, bool) {
	return floorTier(w.HitTiers(), hit)
}

func sortTiers(values map[string]PriceText) []Tier {
	tiers := make([]Tier, 0, len(values))
	for k, v := range values {
		threshold, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		tiers = append(tiers, Tier{Threshold: threshold, Price: v})
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].Threshold < tiers[j].Threshold })
	return tiers
}

func floorTier(tiers []Tier, value int) (Tier, bool) {
	// first index with Threshold > value, mirrors bisect_right
	idx := sort.Search(len(tiers), func(i int) bool { return tiers[i].Threshold > value })
	if idx == 0 {
		return Tier{}, false
	}
	return tiers[idx-1], true
}

// ArmorEntry is one row of frames.json or barriers.json
type ArmorEntry struct {
	Base     *PriceText `json:"base"`
	MinStat  *PriceText `json:"Min Stat,omitempty"`
	MedStat  *PriceText `json:"Med Stat,omitempty"`
	HighStat *PriceText `json:"High Stat,omitempty"`
	MaxStat  *PriceText `json:"Max Stat,omitempty"`
	MaxEVP   *PriceText `json:"Max EVP,omitempty"`
}

// BaseEntry is a row priced by its base value alone (units, cells, tools, mags)
type BaseEntry struct {
	Base *PriceText `json:"base"`
}

// LevelTable is a sparse level -> price table used for technique disks
type LevelTable map[string]PriceText

// SRankData holds the S-rank weapon table and its ability surcharges
type SRankData struct {
	Weapons   map[string]BaseEntry `json:"weapons"`
	Modifiers map[string]BaseEntry `json:"modifiers"`
}

func textOf(p *PriceText) string {
	if p == nil {
		return ""
	}
	return string(*p)
}
