package pricing

// ============================================================================
// Price Strategies
// ============================================================================

const (
	StrategyMinimum Strategy = "minimum"
	StrategyAverage Strategy = "average"
	StrategyMaximum Strategy = "maximum"

	DefaultStrategy = StrategyMinimum
)

// ============================================================================
// Lookup Rules
// ============================================================================

const (
	// HighAttributeThreshold is the attribute percentage a weapon must exceed before
	// its modifier price applies
	HighAttributeThreshold = 50

	// NoHitKey is the hit_values key used as the base price of weapons without one
	NoHitKey = "0"

	// AddSlotTool is the tool whose price is charged per frame slot
	AddSlotTool = "AddSlot"

	// Router defaults for items valued without extra parameters
	DefaultToolQuantity = 1
	DefaultMagLevel     = 0
	DefaultDiskLevel    = 30
)

// inestimableTokens resolve to zero regardless of strategy (compared upper-cased)
var inestimableTokens = map[string]struct{}{
	"N/A":         {},
	"NA":          {},
	"INESTIMABLE": {},
	"INEST":       {},
}

// ============================================================================
// Catalog Files
// ============================================================================

const (
	FileSRankWeapons  = "srankweapons.json"
	FileWeapons       = "weapons.json"
	FileCommonWeapons = "common_weapons.json"
	FileFrames        = "frames.json"
	FileBarriers      = "barriers.json"
	FileUnits         = "units.json"
	FileMags          = "mags.json"
	FileCells         = "cells.json"
	FileDisks         = "disks.json"
	FileTools         = "tools.json"
)
