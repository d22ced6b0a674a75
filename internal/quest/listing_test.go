package quest

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

const sampleQuests = `[
  {
    "quest_name": "MU1",
    "long_name": "Mop-Up Operation #1",
    "episode": 1,
    "areas": [{"name": "Forest 1", "enemies": {"Booma": 12}, "boxes": {"box": 4}}],
    "quest_completion_items": {"Photon Sphere": 1},
    "is_in_rbr_rotation": true
  },
  {"quest_name": "PW4", "episode": 2, "enemies": {"Dolmolm": 30}},
  {"quest_name": "CH1", "episode": 4, "enemies": {"Sand Rappy": 10}, "is_event_quest": true}
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadQuests(t *testing.T) {
	listing, err := LoadQuests(context.Background(), writeFile(t, "quests.json", sampleQuests), validation.NewSchemaValidator())
	require.NoError(t, err)
	assert.Equal(t, 3, listing.Len())

	mu1, err := listing.Get("mu1")
	require.NoError(t, err)
	assert.Equal(t, "Mop-Up Operation #1", mu1.LongName)
	assert.True(t, mu1.IsInRBRRotation)
	require.Len(t, mu1.Areas, 1)
	assert.Equal(t, 4, mu1.Areas[0].Boxes["box"])

	_, err = listing.Get("Nope")
	assert.ErrorIs(t, err, domain.ErrQuestNotFound)

	ep2 := listing.ByEpisode(domain.Episode2)
	require.Len(t, ep2, 1)
	assert.Equal(t, "PW4", ep2[0].QuestName)
}

func TestLoadQuests_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown episode", `[{"quest_name": "X", "episode": 3}]`},
		{"missing name", `[{"episode": 1}]`},
		{"negative count", `[{"quest_name": "X", "episode": 1, "enemies": {"Booma": -1}}]`},
		{"not an array", `{"quest_name": "X"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadQuests(context.Background(), writeFile(t, "quests.json", tt.content), nil)
			assert.ErrorIs(t, err, validation.ErrSchemaValidation)
		})
	}

	_, err := LoadQuests(context.Background(), filepath.Join(t.TempDir(), "missing.json"), nil)
	assert.Error(t, err)
}

func TestListing_ReturnsCopies(t *testing.T) {
	listing := NewListing([]domain.Quest{{QuestName: "MU1", Episode: domain.Episode1, Enemies: map[string]float64{"Booma": 1}}})

	all := listing.All()
	all[0].Enemies["Booma"] = 99

	q, err := listing.Get("MU1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, q.Enemies["Booma"])
}

func TestLoadDurations(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		d, err := LoadDurations(context.Background(), writeFile(t, "quest_times.json", `{"MU1": 12.5, "PW4": 20}`), nil)
		require.NoError(t, err)
		m, ok := d.Minutes("mu1")
		assert.True(t, ok)
		assert.Equal(t, 12.5, m)
	})

	t.Run("yaml", func(t *testing.T) {
		d, err := LoadDurations(context.Background(), writeFile(t, "quest_times.yaml", "MU1: 12.5\nPW4: 20\n"), nil)
		require.NoError(t, err)
		m, ok := d.Minutes("PW4")
		assert.True(t, ok)
		assert.Equal(t, 20.0, m)
	})

	t.Run("missing file", func(t *testing.T) {
		d, err := LoadDurations(context.Background(), filepath.Join(t.TempDir(), "none.json"), nil)
		require.NoError(t, err)
		assert.Empty(t, d)
	})

	t.Run("non-positive time", func(t *testing.T) {
		_, err := LoadDurations(context.Background(), writeFile(t, "quest_times.yml", "MU1: 0\n"), nil)
		assert.ErrorIs(t, err, validation.ErrSchemaValidation)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadDurations(context.Background(), writeFile(t, "quest_times.json", `{"MU1": "fast"}`), nil)
		assert.Error(t, err)
	})
}

func TestDurations_Minutes(t *testing.T) {
	d := Durations{"MU1": 10, "Zero": 0}

	_, ok := d.Minutes("Zero")
	assert.False(t, ok)
	_, ok = d.Minutes("Missing")
	assert.False(t, ok)
	m, ok := d.Minutes(" mu1 ")
	assert.True(t, ok)
	assert.Equal(t, 10.0, m)
}
