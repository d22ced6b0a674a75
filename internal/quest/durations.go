package quest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/domain"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/logger"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/validation"
)

// Durations maps quest short names to estimated clear times in minutes
type Durations map[string]float64

// LoadDurations reads clear times from a YAML (.yaml, .yml) or JSON file. A missing
// file yields no durations, so ranking falls back to total value.
func LoadDurations(ctx context.Context, path string, v validation.SchemaValidator) (Durations, error) {
	if v == nil {
		v = validation.NewSchemaValidator()
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Warn("Quest times file missing, ranking by total value", "path", path)
		return Durations{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read quest times %s: %w", path, err)
	}

	var d Durations
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
		// validate the decoded times with the same schema as the JSON form
		if raw, err = json.Marshal(d); err != nil {
			return nil, fmt.Errorf("failed to re-encode %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := v.ValidateBytes(raw, validation.QuestTimesSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	if d == nil {
		d = Durations{}
	}
	logger.FromContext(ctx).Info("Quest times loaded", "path", path, "quests", len(d))
	return d, nil
}

// Minutes returns the clear time of a quest. Only positive times count.
func (d Durations) Minutes(quest string) (float64, bool) {
	if m, ok := d[quest]; ok {
		return m, m > 0
	}
	folded := domain.FoldName(quest)
	for name, m := range d {
		if domain.FoldName(name) == folded {
			return m, m > 0
		}
	}
	return 0, false
}
