package droptable

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/logger"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/validation"
)

// Load reads and validates the drop table at path
func Load(ctx context.Context, path string, v validation.SchemaValidator) (*Table, error) {
	if v == nil {
		v = validation.NewSchemaValidator()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read drop table %s: %w", path, err)
	}

	if err := v.ValidateBytes(raw, validation.DropTableSchemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var decoded map[string]EpisodeTable
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("failed to parse drop table %s: %w", path, err)
	}

	table, err := NewTable(decoded)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	for _, ep := range table.Episodes() {
		log.Info("Drop table episode loaded",
			"episode", int(ep),
			"enemies", len(table.EnemyNames(ep)),
			"box_areas", len(table.BoxAreaNames(ep)))
	}
	return table, nil
}
