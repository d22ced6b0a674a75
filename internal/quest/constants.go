package quest

// ============================================================================
// Boost Multipliers
// ============================================================================

const (
	WeeklyDARBoost       = 0.25
	WeeklyRDRBoost       = 0.25
	WeeklyRareEnemyBoost = 0.50

	// ChristmasWeeklyBoostFactor doubles the weekly boost during Christmas
	ChristmasWeeklyBoostFactor = 2.0

	RBRDARBoost       = 0.25
	RBRRDRBoost       = 0.25
	RBRRareEnemyBoost = 0.50

	// Hallow quests carry their own boosts and ignore weekly and RBR boosts
	HallowDARBoost       = 0.50
	HallowRDRBoost       = 0.50
	HallowRareEnemyBoost = 1.00
)

// ============================================================================
// Drop Rates
// ============================================================================

const (
	// BasePDDropRate is the chance a drop is a Photon Drop, independent of RDR
	BasePDDropRate = 1.0 / 375.0

	BaseRareEnemyRate = 1.0 / 512.0
	MaxRareEnemyRate  = 1.0 / 256.0

	BaseKondrieuRate = 1.0 / 10.0
	MaxKondrieuRate  = 1.0
)

// ============================================================================
// Technique Drops
// ============================================================================

const (
	MusicDiskDropRate     = 1.0 / 600.0
	ToolDropRate          = 1.0 / 3.0
	TechniqueDiskRate     = 0.1
	SpecificTechniqueRate = 0.001
	Level30Rate           = 0.1
	// BoxToolRate is the chance a box drop is a tool
	BoxToolRate = 0.1
	// EventItemRate must fail before a technique can drop during item events
	EventItemRate = 0.001

	TechniqueLevel = 30
)

// ============================================================================
// Event Drops
// ============================================================================

const (
	ChristmasPresentDropRate = 1.0 / 2250.0
	HalloweenCookieDropRate  = 1.0 / 1500.0
	EasterEggDropRate        = 1.0 / 500.0

	HallowQuestCookieMultiplier = 1.2

	ItemPresent         = "Present"
	ItemHalloweenCookie = "Halloween Cookie"
	ItemEventEgg        = "Event Egg"
)

// ============================================================================
// Boxes
// ============================================================================

// BoxTypeRegular is the only box type that drops rare items
const BoxTypeRegular = "box"

// ============================================================================
// Ranking
// ============================================================================

// TopItemsLimit is how many items each ranked result lists
const TopItemsLimit = 10

// ============================================================================
// Breakdown Messages
// ============================================================================

const (
	MsgNoUltimateDrops = "Enemy has no item drops in Ultimate difficulty"
	MsgNoSectionDrops  = "No item drops for Section ID %s"
	MsgEnemyNotFound   = "Enemy not found in drop table for episode %d"
)
