package droptable

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/validation"
)

const sampleTable = `{
  "episode1": {
    "enemies": {
      "Booma": {"dar": 0.3, "section_ids": {"Viridia": {"item": "Bamboo Spear", "rdr": 0.001}}},
      "Al Rappy": {"dar": 1.0, "section_ids": {"Viridia": {"item": "Angel Ring", "rdr": 0.5}, "Oran": null}},
      "Barbarous Wolf": {"dar": 0.4, "section_ids": {}},
      "Hildebear": {"dar": 0.8, "section_ids": {"Skyly": {"item": "Sange", "rdr": 0.002}}}
    },
    "boxes": {
      "Forest 1": {"section_ids": {"Viridia": [{"item": "Stealth", "rate": 0.0001}]}}
    }
  },
  "episode4": {
    "enemies": {
      "Kondrieu": {"dar": 1.0, "section_ids": {"Viridia": {"item": "Excalibur", "rdr": 0.01}}}
    }
  }
}`

func writeTable(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drop_tables_ultimate.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func loadSample(t *testing.T) *Table {
	t.Helper()
	table, err := Load(context.Background(), writeTable(t, sampleTable), validation.NewSchemaValidator())
	require.NoError(t, err)
	return table
}

func TestLoad(t *testing.T) {
	table := loadSample(t)

	assert.Equal(t, []domain.Episode{domain.Episode1, domain.Episode4}, table.Episodes())
	assert.Equal(t, []string{"Al Rappy", "Barbarous Wolf", "Booma", "Hildebear"}, table.EnemyNames(domain.Episode1))
	assert.Empty(t, table.BoxAreaNames(domain.Episode4))

	booma, ok := table.Enemy(domain.Episode1, "Booma")
	require.True(t, ok)
	assert.Equal(t, 0.3, booma.DAR)
	drop, ok := booma.DropFor("Viridia")
	require.True(t, ok)
	assert.Equal(t, Drop{Item: "Bamboo Spear", RDR: 0.001}, drop)

	rappy, _ := table.Enemy(domain.Episode1, "Al Rappy")
	_, ok = rappy.DropFor("Oran")
	assert.False(t, ok, "null section entries count as no drop")

	wolf, _ := table.Enemy(domain.Episode1, "Barbarous Wolf")
	assert.False(t, wolf.HasDrops())

	box, ok := table.BoxArea(domain.Episode1, "Forest 1")
	require.True(t, ok)
	assert.Len(t, box.SectionIDs["Viridia"], 1)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"dar above one", `{"episode1": {"enemies": {"Booma": {"dar": 2}}}}`},
		{"bad episode key", `{"ep1": {"enemies": {}}}`},
		{"missing dar", `{"episode1": {"enemies": {"Booma": {"section_ids": {}}}}}`},
		{"not json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), writeTable(t, tt.content), nil)
			assert.Error(t, err)
		})
	}

	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.Error(t, err)
}

func TestNewTable_RejectsNonEpisodeKeys(t *testing.T) {
	_, err := NewTable(map[string]EpisodeTable{"episodeX": {}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestResolver_FindEnemy(t *testing.T) {
	r := NewResolver(loadSample(t), nil)

	tests := []struct {
		name    string
		query   string
		episode domain.Episode
		wantKey string
		found   bool
	}{
		{"exact", "Booma", domain.Episode1, "Booma", true},
		{"case-insensitive", "booma", domain.Episode1, "Booma", true},
		{"ultimate alias", "Bartle", domain.Episode1, "Booma", true},
		{"rare ultimate alias", "Pal Rappy", domain.Episode1, "Al Rappy", true},
		{"alias to barbarous wolf", "Gulgus-Gue", domain.Episode1, "Barbarous Wolf", true},
		{"slash name", "Hildebear/Hildelt", domain.Episode1, "Hildebear", true},
		{"substring", "Boomas", domain.Episode1, "Booma", true},
		{"other episode", "Kondrieu", domain.Episode4, "Kondrieu", true},
		{"missing episode", "Booma", domain.Episode2, "", false},
		{"unknown", "Olga Flow", domain.Episode1, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, _, ok := r.FindEnemy(tt.query, tt.episode)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestAliases_Names(t *testing.T) {
	a := DefaultAliases()

	assert.Equal(t, "Booma", a.BaseName("Bartle"))
	assert.Equal(t, "Hildebear", a.BaseName("Hildebear / Hildeblue"))
	assert.Equal(t, "Zu", a.BaseName("Zu"))

	assert.Equal(t, "Bartle", a.UltimateName("Booma"))
	assert.Equal(t, "Bartle", a.UltimateName("Bartle"))
	assert.Equal(t, "Zu", a.UltimateName("Zu"))

	got := a.NormalizeCounts(map[string]float64{"Booma": 3, "Bartle": 2, "Zu": 1})
	assert.Equal(t, map[string]float64{"Bartle": 5, "Zu": 1}, got)

	assert.True(t, a.HasNoDrops("Mothvist"))
	assert.True(t, a.HasNoDrops(a.UltimateName("Dubwitch")))
	assert.False(t, a.HasNoDrops("Booma"))

	assert.True(t, a.IsSlime("Pofuilly Slime"))
	assert.Equal(t, 8.0, a.SlimeSplit)

	v, ok := a.RareVariant(domain.Episode2, "El Rappy")
	require.True(t, ok)
	assert.Equal(t, "Love Rappy", v)
	v, _ = a.RareVariant(domain.Episode4, "Shambertin")
	assert.True(t, a.IsFixedRateVariant(v))
	_, ok = a.RareVariant(domain.Episode4, "El Rappy")
	assert.False(t, ok)
}

func TestMapQuestArea(t *testing.T) {
	tests := []struct {
		area string
		want string
	}{
		{"Under the Dome", "Cave 1"},
		{"under the dome", "Cave 1"},
		{"Underground Channel", "Mine 1"},
		{"Monitor Room", "Ruins 1"},
		{"????", "Ruins 3"},
		{"VR Temple Final", "VR Spaceship Alpha"},
		{"VR Spaceship Final", "Cliffs of Gal Da Val"},
		{"Cliffs of Gal Da Val", "Seabed Upper"},
		{"Test Subject Disposal Area", "Meteor Impact Site"},
		{"Meteor Impact Site", "Meteor Impact Site"},
		{"forest 1", "Forest 1"},
	}

	for _, tt := range tests {
		t.Run(tt.area, func(t *testing.T) {
			got, err := MapQuestArea(tt.area)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := MapQuestArea("Pioneer 2")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownArea)
	assert.Contains(t, err.Error(), domain.ErrMsgUnknownArea)
}

func TestInferDropArea(t *testing.T) {
	a := DefaultAliases()

	tests := []struct {
		enemy   string
		episode domain.Episode
		want    string
	}{
		{"Bartle", domain.Episode1, "Forest 1"},
		{"Hildelt", domain.Episode1, "Forest 1"},
		{"Ob Lily", domain.Episode1, "Cave 1"},
		{"Pofuilly Slime", domain.Episode1, "Cave 1"},
		{"Gillchich", domain.Episode1, "Mine 1"},
		{"Baranz", domain.Episode1, "Mine 1"},
		{"Arlan", domain.Episode1, "Ruins 1"},
		{"Dark Falz", domain.Episode1, "Ruins 1"},
		{"Unknown Thing", domain.Episode1, "Forest 1"},
		{"Merillia", domain.Episode2, "VR Temple Alpha"},
		{"Sinow Spigell", domain.Episode2, "VR Spaceship Beta"},
		{"Gibbles", domain.Episode2, "Mountain Area"},
		{"Dolmolm", domain.Episode2, "Seabed Upper Levels"},
		{"Delbiter", domain.Episode2, "VR Temple Alpha"},
		{"Boota", domain.Episode4, "Crater East"},
	}

	for _, tt := range tests {
		t.Run(tt.enemy, func(t *testing.T) {
			assert.Equal(t, tt.want, a.InferDropArea(tt.enemy, tt.episode))
		})
	}
}

func TestTechniques(t *testing.T) {
	assert.True(t, IsTechniqueArea("Ruins 2", "Foie"))
	assert.True(t, IsTechniqueArea("ruins 2", "Foie"))
	assert.True(t, IsTechniqueArea("Jungle North", "Gibarta"))
	assert.True(t, IsTechniqueArea("Seabed Lower", "Megid"))
	assert.False(t, IsTechniqueArea("Forest 1", "Foie"))
	assert.False(t, IsTechniqueArea("Ruins 2", "Resta"))

	assert.Equal(t, []string{"Gifoie", "Gizonde"}, TechniquesForArea("Ruins 1"))
	assert.Equal(t, []string{"Grants", "Megid"}, TechniquesForArea("Desert 3"))
	assert.Nil(t, TechniquesForArea(""))
	assert.Nil(t, TechniquesForArea("Forest 1"))

	tests := []struct {
		item string
		want string
		ok   bool
	}{
		{"Foie Lv30", "Foie", true},
		{"foie lv 30", "Foie", true},
		{"Grants", "Grants", true},
		{"Resta Lv30", "", false},
		{"Heaven Punisher", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			got, ok := ParseTechnique(tt.item)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "Megid Lv30", TechniqueItem("Megid"))
}
