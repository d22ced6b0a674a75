package quest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/droptable"
)

// fakeValuer prices items from fixed maps
type fakeValuer struct {
	prices map[string]float64
	disks  map[string]float64
	// areas records the area each Value call was made with
	areas map[string]string
}

func newFakeValuer(prices map[string]float64) *fakeValuer {
	return &fakeValuer{prices: prices, disks: map[string]float64{}, areas: map[string]string{}}
}

func (f *fakeValuer) Value(name, area string) (float64, error) {
	f.areas[name] = area
	p, ok := f.prices[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrItemNotClassifiable, name)
	}
	return p, nil
}

func (f *fakeValuer) DiskValue(name string, level int) (float64, error) {
	if level != TechniqueLevel {
		return 0, fmt.Errorf("unexpected level %d", level)
	}
	return f.disks[name], nil
}

func drop(item string, rdr float64) *droptable.Drop {
	return &droptable.Drop{Item: item, RDR: rdr}
}

func testTable(t *testing.T) *droptable.Table {
	t.Helper()
	table, err := droptable.NewTable(map[string]droptable.EpisodeTable{
		"episode1": {
			Enemies: map[string]droptable.Enemy{
				"Bartle": {DAR: 0.3, SectionIDs: map[string]*droptable.Drop{
					"Viridia": drop("Bamboo Spear", 0.01),
					"Skyly":   drop("Sange", 0.002),
				}},
				"El Rappy":  {DAR: 1.0, SectionIDs: map[string]*droptable.Drop{"Viridia": drop("Rappy Wing", 0.1)}},
				"Pal Rappy": {DAR: 1.0, SectionIDs: map[string]*droptable.Drop{"Viridia": drop("Angel Ring", 0.5)}},
				"Gulgus":    {DAR: 0.4, SectionIDs: map[string]*droptable.Drop{}},
				"Gillchich": {DAR: 0.5, SectionIDs: map[string]*droptable.Drop{"Viridia": drop("Bamboo Spear", 0.01)}},
				"Hildelt":   {DAR: 0.8, SectionIDs: map[string]*droptable.Drop{"Viridia": drop("Sange", 0.001)}},
			},
			Boxes: map[string]droptable.BoxArea{
				"Forest 1": {SectionIDs: map[string][]droptable.BoxItem{
					"Viridia": {{Item: "Stealth", Rate: 0.001}, {Item: "Sange", Rate: 0.0005}},
				}},
			},
		},
	})
	require.NoError(t, err)
	return table
}

func testPrices() map[string]float64 {
	return map[string]float64{
		"Bamboo Spear":  20,
		"Sange":         40,
		"Rappy Wing":    1,
		"Angel Ring":    10,
		"Stealth":       100,
		"Photon Sphere": 3,
		ItemPresent:     2,
		ItemEventEgg:    1,
	}
}

func newTestCalculator(t *testing.T) (*Calculator, *fakeValuer) {
	t.Helper()
	valuer := newFakeValuer(testPrices())
	return NewCalculator(valuer, droptable.NewResolver(testTable(t), nil)), valuer
}
