package quest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/logger"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/validation"
)

// Listing is the loaded quest list. It is read-only; accessors hand out copies.
type Listing struct {
	quests []domain.Quest
	byName map[string]int
}

// NewListing indexes quests by folded name. The first quest with a name wins.
func NewListing(quests []domain.Quest) *Listing {
	l := &Listing{
		quests: make([]domain.Quest, len(quests)),
		byName: make(map[string]int, len(quests)),
	}
	for i, q := range quests {
		l.quests[i] = q.Clone()
		key := domain.FoldName(q.QuestName)
		if _, exists := l.byName[key]; !exists {
			l.byName[key] = i
		}
	}
	return l
}

// LoadQuests reads and validates the quest list at path
func LoadQuests(ctx context.Context, path string, v validation.SchemaValidator) (*Listing, error) {
	if v == nil {
		v = validation.NewSchemaValidator()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read quest list %s: %w", path, err)
	}

	if err := v.ValidateBytes(raw, validation.QuestsSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var quests []domain.Quest
	if err := json.Unmarshal(raw, &quests); err != nil {
		return nil, fmt.Errorf("failed to parse quest list %s: %w", path, err)
	}

	logger.FromContext(ctx).Info("Quest list loaded", "path", path, "quests", len(quests))
	return NewListing(quests), nil
}

// Len returns the number of quests
func (l *Listing) Len() int {
	return len(l.quests)
}

// All returns a copy of every quest in file order
func (l *Listing) All() []domain.Quest {
	out := make([]domain.Quest, len(l.quests))
	for i, q := range l.quests {
		out[i] = q.Clone()
	}
	return out
}

// Get finds a quest by short name, case-insensitively
func (l *Listing) Get(name string) (domain.Quest, error) {
	i, ok := l.byName[domain.FoldName(name)]
	if !ok {
		return domain.Quest{}, fmt.Errorf("%w: %q", domain.ErrQuestNotFound, name)
	}
	return l.quests[i].Clone(), nil
}

// ByEpisode returns copies of the quests of one episode
func (l *Listing) ByEpisode(ep domain.Episode) []domain.Quest {
	var out []domain.Quest
	for _, q := range l.quests {
		if q.Episode == ep {
			out = append(out, q.Clone())
		}
	}
	return out
}
