package droptable

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
)

// ============================================================================
// Quest areas
// ============================================================================

// QuestAreas lists every area name quest data may use
var QuestAreas = []string{
	"Forest 1", "Forest 2", "Under the Dome",
	"Cave 1", "Cave 2", "Cave 3", "Underground Channel",
	"Mine 1", "Mine 2", "Monitor Room",
	"Ruins 1", "Ruins 2", "Ruins 3", "????",
	"VR Temple Alpha", "VR Temple Beta", "VR Temple Final",
	"VR Spaceship Alpha", "VR Spaceship Beta", "VR Spaceship Final",
	"Jungle North", "Jungle East", "Mountain", "Seaside",
	"Central Control Area", "Cliffs of Gal Da Val",
	"Seabed Upper", "Seabed Lower", "Test Subject Disposal Area",
	"Crater East", "Crater West", "Crater South", "Crater North", "Crater Interior",
	"Desert 1", "Desert 2", "Desert 3", "Meteor Impact Site",
}

// questAreaToDropArea maps boss and transit areas to the drop-table area whose box
// drops they share. Unlisted areas map to themselves.
var questAreaToDropArea = map[string]string{
	"Under the Dome":      "Cave 1",
	"Underground Channel": "Mine 1",
	"Monitor Room":        "Ruins 1",
	"????":                "Ruins 3",

	"VR Temple Final":            "VR Spaceship Alpha",
	"VR Spaceship Final":         "Cliffs of Gal Da Val",
	"Cliffs of Gal Da Val":       "Seabed Upper",
	"Test Subject Disposal Area": "Meteor Impact Site",
}

// MapQuestArea returns the drop-table area for a quest area name (case-insensitive)
func MapQuestArea(area string) (string, error) {
	folded := domain.FoldName(area)
	for _, known := range QuestAreas {
		if domain.FoldName(known) != folded {
			continue
		}
		if mapped, ok := questAreaToDropArea[known]; ok {
			return mapped, nil
		}
		return known, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownArea, area)
}

// ============================================================================
// Drop area inference
// ============================================================================

// areaHint assigns an area to enemies whose name matches one of Enemies
type areaHint struct {
	Area    string
	Enemies []string
}

var dropAreaHints = map[domain.Episode][]areaHint{
	domain.Episode1: {
		{"Forest 1", []string{"booma", "gobooma", "gigobooma", "savage wolf", "barbarous wolf", "rag rappy", "al rappy", "hildebear", "mothmant"}},
		{"Cave 1", []string{"evil shark", "pal shark", "guil shark", "poison lily", "nar lily", "pofuilly slime", "grass assassin", "nano dragon", "pan arms"}},
		{"Mine 1", []string{"gillchich", "canabin", "sinow blue", "garanz"}},
		{"Ruins 1", []string{"dimenian", "la dimenian", "so dimenian", "bulclaw", "claw", "dark gunner", "delsaber", "chaos sorcerer", "dark belra", "chaos bringer", "dark falz"}},
	},
	domain.Episode2: {
		{"VR Temple Alpha", []string{"merillia", "meriltas", "ul gibbon", "zol gibbon", "gibbon", "mercarol", "gi gue"}},
		{"VR Spaceship Beta", []string{"gee", "sinow berill", "sinow spigell", "sinow"}},
		{"Mountain Area", []string{"gibbles"}},
		{"Seabed Upper Levels", []string{"dolmolm", "dolmdarl", "morfos"}},
	},
}

var defaultDropAreas = map[domain.Episode]string{
	domain.Episode1: "Forest 1",
	domain.Episode2: "VR Temple Alpha",
	domain.Episode4: "Crater East",
}

// InferDropArea guesses the area an enemy was killed in when the quest does not say.
// An enemy matches a hint when its base name is listed or its name contains a listed
// name. Unmatched enemies get the episode default.
func (a *Aliases) InferDropArea(enemy string, ep domain.Episode) string {
	raw := domain.FoldName(enemy)
	normalized := domain.FoldName(a.BaseName(enemy))

	for _, hint := range dropAreaHints[ep] {
		if slices.Contains(hint.Enemies, normalized) {
			return hint.Area
		}
		for _, e := range hint.Enemies {
			if strings.Contains(raw, e) {
				return hint.Area
			}
		}
	}

	if area, ok := defaultDropAreas[ep]; ok {
		return area
	}
	return defaultDropAreas[domain.Episode1]
}

// ============================================================================
// Level 30 techniques
// ============================================================================

// Techniques lists the techniques that can drop at level 30, in reporting order
var Techniques = []string{
	"Foie", "Barta", "Zonde", "Gifoie", "Gibarta", "Gizonde",
	"Rafoie", "Rabarta", "Razonde", "Grants", "Megid",
}

// TechniqueAreas lists the areas where each technique can drop at level 30
var TechniqueAreas = map[string][]string{
	"Foie":    {"Ruins 2", "VR Temple Alpha"},
	"Barta":   {"Mine 1", "VR Spaceship Beta", "Crater West"},
	"Zonde":   {"Mine 2", "Mountain Area", "Crater Interior"},
	"Gifoie":  {"Ruins 1", "VR Temple Beta"},
	"Gibarta": {"Cave 3", "Jungle Area (North)", "Crater South"},
	"Gizonde": {"Ruins 1", "Seaside Area", "Central Control Area", "Desert 1"},
	"Rafoie":  {"Mine 2", "VR Spaceship Alpha", "Crater East"},
	"Rabarta": {"Mine 1", "Jungle Area (East)", "Crater North"},
	"Razonde": {"Ruins 2", "Seabed Upper Levels", "Desert 2"},
	"Grants":  {"Ruins 3", "Seabed Lower Levels", "Control Tower", "Desert 3"},
	"Megid":   {"Seabed Lower Levels", "Control Tower", "Desert 3"},
}

// techniqueAreaAliases maps quest area spellings to the names used in TechniqueAreas
var techniqueAreaAliases = map[string]string{
	"jungle north": "Jungle Area (North)",
	"jungle east":  "Jungle Area (East)",
	"mountain":     "Mountain Area",
	"seaside":      "Seaside Area",
	"seabed upper": "Seabed Upper Levels",
	"seabed lower": "Seabed Lower Levels",
}

// TechniqueSuffix is appended to a technique name to form its item name
const TechniqueSuffix = " Lv30"

// TechniqueItem returns the item name of a level 30 technique
func TechniqueItem(technique string) string {
	return technique + TechniqueSuffix
}

// IsTechniqueArea reports whether technique can drop at level 30 in area
func IsTechniqueArea(area, technique string) bool {
	folded := domain.FoldName(area)
	if alias, ok := techniqueAreaAliases[folded]; ok {
		folded = domain.FoldName(alias)
	}
	for _, eligible := range TechniqueAreas[technique] {
		if domain.FoldName(eligible) == folded {
			return true
		}
	}
	return false
}

// TechniquesForArea lists the techniques that can drop at level 30 in area
func TechniquesForArea(area string) []string {
	if strings.TrimSpace(area) == "" {
		return nil
	}
	var out []string
	for _, tech := range Techniques {
		if IsTechniqueArea(area, tech) {
			out = append(out, tech)
		}
	}
	return out
}

// ParseTechnique recognizes "<Technique> Lv30", "<Technique> Lv 30" or a bare
// technique name and returns the canonical technique name
func ParseTechnique(item string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(item))
	if before, _, found := strings.Cut(name, "lv30"); found {
		name = before
	} else if before, _, found := strings.Cut(name, "lv 30"); found {
		name = before
	}
	name = strings.TrimSpace(name)
	for _, tech := range Techniques {
		if strings.ToLower(tech) == name {
			return tech, true
		}
	}
	return "", false
}
