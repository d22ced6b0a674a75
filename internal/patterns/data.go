package patterns

// ============================================================================
// Roll Model Constants
// ============================================================================

const (
	// TopPattern is the pattern every rare weapon rolls its attributes and hit on
	TopPattern = 5

	// AttributeRolls is how many area roll draws a weapon receives
	AttributeRolls = 3

	// HighAttributeThreshold is the value an attribute must reach to count as priced
	HighAttributeThreshold = 50

	// DefaultHitProbability applies when no area data is available
	DefaultHitProbability = 0.05
)

// DefaultValueRange is used for patterns without a defined range
var DefaultValueRange = ValueRange{Min: 5, Max: 10}

// ============================================================================
// Reference Tables
// ============================================================================

var defaultPatterns = map[int]map[int]float64{
	0: {
		5: 0.4256, 10: 0.3324, 15: 0.1541, 20: 0.0820, 25: 0.0050,
		30: 0.0003, 35: 0.0002, 40: 0.0002, 45: 0.0001, 50: 0.0001,
	},
	1: {
		5: 0.0897, 10: 0.1932, 15: 0.3852, 20: 0.2219, 25: 0.0998,
		30: 0.0082, 35: 0.0011, 40: 0.0005, 45: 0.0002, 50: 0.0001, 55: 0.0001,
	},
	2: {
		5: 0.0402, 10: 0.0890, 15: 0.1532, 20: 0.3698, 25: 0.2126,
		30: 0.0972, 35: 0.0331, 40: 0.0035, 45: 0.0007, 50: 0.0003,
		55: 0.0002, 60: 0.0001, 65: 0.0001,
	},
	3: {
		5: 0.0205, 10: 0.0211, 15: 0.1021, 20: 0.1345, 25: 0.3452,
		30: 0.2102, 35: 0.1139, 40: 0.0476, 45: 0.0025, 50: 0.0016,
		55: 0.0003, 60: 0.0002, 65: 0.0001, 70: 0.0001, 75: 0.0001,
	},
	4: {
		5: 0.0102, 10: 0.0121, 15: 0.0756, 20: 0.1011, 25: 0.1672,
		30: 0.3565, 35: 0.1568, 40: 0.0932, 45: 0.0201, 50: 0.0041,
		55: 0.0012, 60: 0.0007, 65: 0.0004, 70: 0.0003, 75: 0.0002,
		80: 0.0001, 85: 0.0001, 90: 0.0001,
	},
	5: {
		5: 0.2921, 10: 0.2309, 15: 0.1908, 20: 0.1389, 25: 0.0865,
		30: 0.0310, 35: 0.0156, 40: 0.0067, 45: 0.0042, 50: 0.0016,
		55: 0.0008, 60: 0.0003, 65: 0.0001, 70: 0.0001, 75: 0.0001,
		80: 0.0001, 85: 0.0001, 90: 0.0001,
	},
}

// rates are native, a.beast, machine, dark, hit, none
var defaultAreas = map[string]AreaRates{
	// Episode 1
	"Forest 1": {30, 19, 13, 8, 5, 25},
	"Forest 2": {30, 19, 13, 8, 5, 25},
	"Cave 1":   {11, 30, 19, 10, 5, 25},
	"Cave 2":   {11, 30, 19, 10, 5, 25},
	"Cave 3":   {9, 30, 21, 10, 5, 25},
	"Mine 1":   {6, 12, 32, 20, 5, 25},
	"Mine 2":   {6, 12, 32, 20, 5, 25},
	"Ruins 1":  {20, 7, 11, 32, 5, 25},
	"Ruins 2":  {20, 7, 11, 32, 5, 25},
	"Ruins 3":  {13, 13, 12, 32, 5, 25},
	// Episode 2
	"VR Temple Alpha":      {15, 10, 10, 10, 5, 50},
	"VR Temple Beta":       {10, 10, 15, 10, 5, 50},
	"VR Spaceship Alpha":   {15, 10, 10, 10, 5, 50},
	"VR Spaceship Beta":    {10, 10, 10, 15, 5, 50},
	"Jungle Area North":    {15, 10, 10, 10, 5, 50},
	"Jungle Area East":     {10, 15, 10, 10, 5, 50},
	"Mountain Area":        {10, 10, 10, 15, 5, 50},
	"Seaside Area":         {10, 10, 15, 10, 5, 50},
	"Central Control Area": {10, 10, 15, 10, 5, 50},
	"Seabed Upper Levels":  {15, 10, 15, 10, 5, 45},
	"Seabed Lower Levels":  {10, 15, 10, 15, 5, 45},
	"Control Tower":        {10, 15, 10, 15, 5, 45},
	// Episode 4
	"Crater East":           {15, 10, 10, 10, 5, 50},
	"Crater West":           {10, 10, 10, 15, 5, 50},
	"Crater South":          {15, 10, 10, 10, 5, 50},
	"Crater North":          {10, 15, 10, 10, 5, 50},
	"Crater Interior":       {10, 10, 10, 15, 5, 50},
	"Subterranean Desert 1": {10, 10, 15, 10, 5, 50},
	"Subterranean Desert 2": {15, 10, 15, 10, 5, 45},
	"Subterranean Desert 3": {10, 15, 10, 15, 5, 45},
}

// quest files and drop tables use shorter names for some areas
var defaultAreaAliases = map[string]string{
	"Jungle North":        "Jungle Area North",
	"Jungle Area (North)": "Jungle Area North",
	"Jungle East":         "Jungle Area East",
	"Jungle Area (East)":  "Jungle Area East",
	"Mountain":            "Mountain Area",
	"Seaside":             "Seaside Area",
	"Seabed Upper":        "Seabed Upper Levels",
	"Seabed Lower":        "Seabed Lower Levels",
	"Desert 1":            "Subterranean Desert 1",
	"Desert 2":            "Subterranean Desert 2",
	"Desert 3":            "Subterranean Desert 3",
}

var defaultAreaPatterns = map[string]int{
	"VR Temple Alpha":       2,
	"VR Temple Beta":        2,
	"VR Spaceship Alpha":    2,
	"VR Spaceship Beta":     2,
	"Jungle Area North":     3,
	"Jungle Area East":      3,
	"Mountain Area":         3,
	"Seaside Area":          3,
	"Central Control Area":  4,
	"Seabed Upper Levels":   4,
	"Seabed Lower Levels":   4,
	"Control Tower":         4,
	"Crater East":           2,
	"Crater West":           2,
	"Crater South":          3,
	"Crater North":          3,
	"Crater Interior":       3,
	"Subterranean Desert 1": 4,
	"Subterranean Desert 2": 4,
	"Subterranean Desert 3": 4,
}

var defaultValueRanges = map[int]ValueRange{
	0: {5, 10},
	1: {10, 20},
	2: {20, 30},
	3: {30, 40},
	4: {40, 50},
	5: {50, 60},
	6: {60, 70},
	7: {70, 80},
	8: {80, 90},
}

// DefaultConfig returns the reference roll tables
func DefaultConfig() Config {
	return Config{
		Patterns:     defaultPatterns,
		Areas:        defaultAreas,
		AreaAliases:  defaultAreaAliases,
		AreaPatterns: defaultAreaPatterns,
		ValueRanges:  defaultValueRanges,
	}
}

// Default builds Tables from the reference data
func Default() *Tables {
	return NewTables(DefaultConfig())
}
