package droptable

import (
	"maps"
	"strings"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
)

// Aliases holds the enemy naming rules used to match quest data to the drop table
type Aliases struct {
	// UltimateToBase maps Ultimate enemy names to the base names other sources use
	UltimateToBase map[string]string
	// NoDrops lists enemies that never drop anything
	NoDrops []string
	// RareVariants maps, per episode, an enemy to the rare form it can spawn as
	RareVariants map[domain.Episode]map[string]string
	// Slimes are split during a run; each counts SlimeSplit times
	Slimes     []string
	SlimeSplit float64
	// FixedRateVariant spawns at its own base rate instead of the rare enemy rate
	FixedRateVariant string

	baseToUltimate map[string]string
	noDrops        map[string]struct{}
	slimes         map[string]struct{}
}

// ============================================================================
// Reference enemy tables
// ============================================================================

var defaultUltimateToBase = map[string]string{
	// Episode 1 - Forest
	"Bartle":     "Booma",
	"Barble":     "Gobooma",
	"Tollaw":     "Gigobooma",
	"Gulgus":     "Savage Wolf",
	"Gulgus-Gue": "Barbarous Wolf",
	"Hildelt":    "Hildebear",
	"Hildetorr":  "Hildeblue",
	"El Rappy":   "Rag Rappy",
	"Pal Rappy":  "Al Rappy",
	"Mothvist":   "Mothmant",
	"Sil Dragon": "Dragon",
	// Episode 1 - Caves
	"Vulmer":           "Evil Shark",
	"Govulmer":         "Pal Shark",
	"Melqueek":         "Guil Shark",
	"Ob Lily":          "Poison Lily",
	"Mil Lily":         "Nar Lily",
	"Crimson Assassin": "Grass Assassin",
	"Dal Ra Lie":       "De Rol Le",
	// Episode 1 - Mines
	"Dubchich":   "Dubchic",
	"Gillchich":  "Gillchic",
	"Duvuik":     "Dubwitch",
	"Canabin":    "Canadine",
	"Canune":     "Canane",
	"Sinow Red":  "Sinow Gold",
	"Sinow Blue": "Sinow Beat",
	"Baranz":     "Garanz",
	// Episode 1 - Ruins
	"Arlan":         "Dimenian",
	"Merlan":        "La Dimenian",
	"Del-D":         "So Dimenian",
	"Gran Sorcerer": "Chaos Sorcerer",
	"Indi Belra":    "Dark Belra",
	"Dark Bringer":  "Chaos Bringer",
}

var defaultNoDrops = []string{"Dubwitch", "Duvuik", "Monest", "Mothvist", "Recobox"}

var defaultRareVariants = map[domain.Episode]map[string]string{
	domain.Episode1: {
		"El Rappy":       "Pal Rappy",
		"Hildelt":        "Hildetorr",
		"Ob Lily":        "Mil Lily",
		"Pofuilly Slime": "Pouilly Slime",
	},
	domain.Episode2: {
		"El Rappy": "Love Rappy",
		"Ob Lily":  "Mil Lily",
		"Hildelt":  "Hildetorr",
	},
	domain.Episode4: {
		"Sand Rappy":   "Del Rappy",
		"Dorphon":      "Dorphon Eclair",
		"Zu":           "Pazuzu",
		"Merissa A":    "Merissa AA",
		"Saint-Milion": "Kondrieu",
		"Shambertin":   "Kondrieu",
	},
}

var defaultSlimes = []string{"Pofuilly Slime", "Pouilly Slime"}

const (
	// DefaultSlimeSplit is how many slimes one spawn becomes when split
	DefaultSlimeSplit = 8
	// Kondrieu replaces Saint-Milion and Shambertin at a fixed base rate
	Kondrieu = "Kondrieu"
)

// DefaultAliases returns the reference naming rules
func DefaultAliases() *Aliases {
	rare := make(map[domain.Episode]map[string]string, len(defaultRareVariants))
	for ep, m := range defaultRareVariants {
		rare[ep] = maps.Clone(m)
	}
	return NewAliases(Aliases{
		UltimateToBase:   maps.Clone(defaultUltimateToBase),
		NoDrops:          append([]string(nil), defaultNoDrops...),
		RareVariants:     rare,
		Slimes:           append([]string(nil), defaultSlimes...),
		SlimeSplit:       DefaultSlimeSplit,
		FixedRateVariant: Kondrieu,
	})
}

// NewAliases indexes a set of naming rules
func NewAliases(a Aliases) *Aliases {
	out := a
	out.baseToUltimate = make(map[string]string, len(a.UltimateToBase))
	for ultimate, base := range a.UltimateToBase {
		out.baseToUltimate[base] = ultimate
	}
	out.noDrops = make(map[string]struct{}, len(a.NoDrops))
	for _, n := range a.NoDrops {
		out.noDrops[n] = struct{}{}
	}
	out.slimes = make(map[string]struct{}, len(a.Slimes))
	for _, n := range a.Slimes {
		out.slimes[n] = struct{}{}
	}
	if out.SlimeSplit <= 0 {
		out.SlimeSplit = 1
	}
	return &out
}

// BaseName maps an Ultimate name to its base name. "A/B" names reduce to "A".
func (a *Aliases) BaseName(name string) string {
	if base, ok := a.UltimateToBase[name]; ok {
		return base
	}
	if first, _, found := strings.Cut(name, "/"); found {
		return strings.TrimSpace(first)
	}
	return strings.TrimSpace(name)
}

// UltimateName maps a base name to its Ultimate name. Ultimate and unknown names
// are returned unchanged.
func (a *Aliases) UltimateName(name string) string {
	if _, ok := a.UltimateToBase[name]; ok {
		return name
	}
	if ultimate, ok := a.baseToUltimate[name]; ok {
		return ultimate
	}
	return name
}

// NormalizeCounts converts every name to its Ultimate form and sums counts that collide
func (a *Aliases) NormalizeCounts(enemies map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(enemies))
	for name, count := range enemies {
		out[a.UltimateName(name)] += count
	}
	return out
}

// HasNoDrops reports whether the enemy never drops items
func (a *Aliases) HasNoDrops(name string) bool {
	_, ok := a.noDrops[name]
	return ok
}

// IsSlime reports whether the enemy splits during a run
func (a *Aliases) IsSlime(name string) bool {
	_, ok := a.slimes[name]
	return ok
}

// RareVariant returns the rare form an enemy can spawn as in the episode
func (a *Aliases) RareVariant(ep domain.Episode, name string) (string, bool) {
	v, ok := a.RareVariants[ep][name]
	return v, ok
}

// IsFixedRateVariant reports whether the rare form spawns at its own fixed rate
func (a *Aliases) IsFixedRateVariant(name string) bool {
	return a.FixedRateVariant != "" && name == a.FixedRateVariant
}
