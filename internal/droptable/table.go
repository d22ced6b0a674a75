// Package droptable holds the Ultimate drop table and the name and area tables
// needed to match quest data against it.
package droptable

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
)

// Drop is the rare item an enemy drops for one section ID
type Drop struct {
	Item string  `json:"item"`
	RDR  float64 `json:"rdr"`
}

// Enemy is one enemy's drop record
type Enemy struct {
	DAR        float64          `json:"dar"`
	SectionIDs map[string]*Drop `json:"section_ids"`
}

// HasDrops reports whether the enemy drops anything for any section ID
func (e Enemy) HasDrops() bool {
	return len(e.SectionIDs) > 0
}

// DropFor returns the drop for sectionID. A null entry counts as no drop.
func (e Enemy) DropFor(sectionID string) (Drop, bool) {
	d, ok := e.SectionIDs[sectionID]
	if !ok || d == nil {
		return Drop{}, false
	}
	return *d, true
}

// BoxItem is one item a box can drop
type BoxItem struct {
	Item string  `json:"item"`
	Rate float64 `json:"rate"`
}

// BoxArea lists the box drops of one drop-table area per section ID
type BoxArea struct {
	SectionIDs map[string][]BoxItem `json:"section_ids"`
}

// EpisodeTable is the drop data of one episode
type EpisodeTable struct {
	Enemies map[string]Enemy   `json:"enemies"`
	Boxes   map[string]BoxArea `json:"boxes"`
}

// Table is the loaded drop table, keyed by episode. It is read-only after construction.
type Table struct {
	episodes map[domain.Episode]*episodeIndex
}

type episodeIndex struct {
	EpisodeTable
	enemyNames []string
	areaNames  []string
}

// NewTable builds a Table from the decoded file, whose keys are "episodeN"
func NewTable(raw map[string]EpisodeTable) (*Table, error) {
	t := &Table{episodes: make(map[domain.Episode]*episodeIndex, len(raw))}
	for key, ep := range raw {
		n, err := strconv.Atoi(strings.TrimPrefix(key, "episode"))
		if err != nil || !strings.HasPrefix(key, "episode") {
			return nil, fmt.Errorf("%w: drop table key %q is not an episode", domain.ErrInvalidInput, key)
		}
		if ep.Enemies == nil {
			ep.Enemies = map[string]Enemy{}
		}
		if ep.Boxes == nil {
			ep.Boxes = map[string]BoxArea{}
		}
		t.episodes[domain.Episode(n)] = &episodeIndex{
			EpisodeTable: ep,
			enemyNames:   slices.Sorted(maps.Keys(ep.Enemies)),
			areaNames:    slices.Sorted(maps.Keys(ep.Boxes)),
		}
	}
	return t, nil
}

// Episodes lists the episodes present, ascending
func (t *Table) Episodes() []domain.Episode {
	return slices.Sorted(maps.Keys(t.episodes))
}

// HasEpisode reports whether the episode is present
func (t *Table) HasEpisode(ep domain.Episode) bool {
	_, ok := t.episodes[ep]
	return ok
}

// Enemy returns the record stored under the exact name
func (t *Table) Enemy(ep domain.Episode, name string) (Enemy, bool) {
	idx, ok := t.episodes[ep]
	if !ok {
		return Enemy{}, false
	}
	e, ok := idx.Enemies[name]
	return e, ok
}

// EnemyNames lists every enemy of the episode in sorted order
func (t *Table) EnemyNames(ep domain.Episode) []string {
	if idx, ok := t.episodes[ep]; ok {
		return idx.enemyNames
	}
	return nil
}

// BoxAreaNames lists every box area of the episode in sorted order
func (t *Table) BoxAreaNames(ep domain.Episode) []string {
	if idx, ok := t.episodes[ep]; ok {
		return idx.areaNames
	}
	return nil
}

// BoxArea returns the box drops of a drop-table area
func (t *Table) BoxArea(ep domain.Episode, area string) (BoxArea, bool) {
	idx, ok := t.episodes[ep]
	if !ok {
		return BoxArea{}, false
	}
	b, ok := idx.Boxes[area]
	return b, ok
}
