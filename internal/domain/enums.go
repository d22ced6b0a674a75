package domain

import (
	"fmt"
	"strings"
)

// Category is the price catalog an item was classified into
type Category string

const (
	CategoryWeapon  Category = "weapon"
	CategoryFrame   Category = "frame"
	CategoryBarrier Category = "barrier"
	CategoryUnit    Category = "unit"
	CategoryCell    Category = "cell"
	CategoryTool    Category = "tool"
	CategoryMag     Category = "mag"
	CategoryDisk    Category = "disk"
)

// SectionID selects which drop column of the drop table applies to a player
type SectionID string

const (
	SectionViridia    SectionID = "Viridia"
	SectionGreenill   SectionID = "Greenill"
	SectionSkyly      SectionID = "Skyly"
	SectionBluefull   SectionID = "Bluefull"
	SectionPurplenum  SectionID = "Purplenum"
	SectionPinkal     SectionID = "Pinkal"
	SectionRedria     SectionID = "Redria"
	SectionOran       SectionID = "Oran"
	SectionYellowboze SectionID = "Yellowboze"
	SectionWhitill    SectionID = "Whitill"
)

// SectionAll is accepted by ranking to sweep every section ID
const SectionAll = "All"

// AllSectionIDs lists section IDs in in-game order
var AllSectionIDs = []SectionID{
	SectionViridia, SectionGreenill, SectionSkyly, SectionBluefull, SectionPurplenum,
	SectionPinkal, SectionRedria, SectionOran, SectionYellowboze, SectionWhitill,
}

// ParseSectionID matches a section ID case-insensitively
func ParseSectionID(s string) (SectionID, error) {
	s = strings.TrimSpace(s)
	for _, id := range AllSectionIDs {
		if strings.EqualFold(string(id), s) {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: unknown section id %q", ErrInvalidInput, s)
}

// WeeklyBoost is the rotating bonus active for the current week
type WeeklyBoost string

const (
	WeeklyBoostNone      WeeklyBoost = ""
	WeeklyBoostDAR       WeeklyBoost = "DAR"
	WeeklyBoostRDR       WeeklyBoost = "RDR"
	WeeklyBoostRareEnemy WeeklyBoost = "RareEnemy"
	WeeklyBoostXP        WeeklyBoost = "XP"
)

var weeklyBoosts = []WeeklyBoost{WeeklyBoostDAR, WeeklyBoostRDR, WeeklyBoostRareEnemy, WeeklyBoostXP}

// ParseWeeklyBoost accepts an empty string as "no boost"
func ParseWeeklyBoost(s string) (WeeklyBoost, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return WeeklyBoostNone, nil
	}
	for _, b := range weeklyBoosts {
		if strings.EqualFold(string(b), s) {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: unknown weekly boost %q", ErrInvalidInput, s)
}

// EventType is a seasonal event
type EventType string

const (
	EventNone          EventType = ""
	EventEaster        EventType = "Easter"
	EventHalloween     EventType = "Halloween"
	EventChristmas     EventType = "Christmas"
	EventValentinesDay EventType = "ValentinesDay"
	EventAnniversary   EventType = "Anniversary"
)

var eventTypes = []EventType{EventEaster, EventHalloween, EventChristmas, EventValentinesDay, EventAnniversary}

// ParseEventType accepts an empty string as "no event"
func ParseEventType(s string) (EventType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return EventNone, nil
	}
	for _, e := range eventTypes {
		if strings.EqualFold(string(e), s) {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: unknown event %q", ErrInvalidInput, s)
}

// Episode identifies a game episode in the drop table
type Episode int

const (
	Episode1 Episode = 1
	Episode2 Episode = 2
	Episode4 Episode = 4
)

// AllEpisodes lists the episodes present in the drop table
var AllEpisodes = []Episode{Episode1, Episode2, Episode4}

// Key returns the drop table key, e.g. "episode1"
func (e Episode) Key() string {
	return fmt.Sprintf("episode%d", int(e))
}
