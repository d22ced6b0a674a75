package pricing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/logger"
	"github.com/Jusctsch5/PSOQuestOptimizer-sub000/internal/validation"
)

// Loader reads a price guide directory into Data
type Loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader that validates each file against its schema
func NewLoader(v validation.SchemaValidator) *Loader {
	if v == nil {
		v = validation.NewSchemaValidator()
	}
	return &Loader{schemaValidator: v}
}

// LoadCatalog loads dir and builds a catalog with opts
func LoadCatalog(ctx context.Context, dir string, opts Options) (*Catalog, error) {
	data, err := NewLoader(nil).Load(ctx, dir)
	if err != nil {
		return nil, err
	}
	return NewCatalog(data, opts), nil
}

// Load reads every price file in dir. weapons.json is required; any other file may be
// absent and loads as an empty table.
func (l *Loader) Load(ctx context.Context, dir string) (Data, error) {
	var data Data

	files := []struct {
		name     string
		schema   string
		target   any
		required bool
	}{
		{FileWeapons, validation.WeaponsSchemaPath, &data.Weapons, true},
		{FileCommonWeapons, validation.WeaponsSchemaPath, &data.CommonWeapons, false},
		{FileSRankWeapons, validation.SRankSchemaPath, &data.SRank, false},
		{FileFrames, validation.ArmorSchemaPath, &data.Frames, false},
		{FileBarriers, validation.ArmorSchemaPath, &data.Barriers, false},
		{FileUnits, validation.BasePriceSchemaPath, &data.Units, false},
		{FileCells, validation.BasePriceSchemaPath, &data.Cells, false},
		{FileTools, validation.BasePriceSchemaPath, &data.Tools, false},
		{FileMags, validation.BasePriceSchemaPath, &data.Mags, false},
		{FileDisks, validation.DisksSchemaPath, &data.Disks, false},
	}

	log := logger.FromContext(ctx)
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		found, err := l.loadFile(path, f.schema, f.target)
		if err != nil {
			return Data{}, err
		}
		if !found {
			if f.required {
				return Data{}, fmt.Errorf("price guide file %s is required: %w", path, fs.ErrNotExist)
			}
			log.Warn("Price guide file missing, loading empty table", "file", path)
		}
	}

	log.Info("Price guide loaded",
		"dir", dir,
		"weapons", len(data.Weapons),
		"frames", len(data.Frames),
		"barriers", len(data.Barriers),
		"tools", len(data.Tools))
	return data, nil
}

func (l *Loader) loadFile(path, schemaPath string, target any) (bool, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := l.schemaValidator.ValidateBytes(raw, schemaPath); err != nil {
		return false, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return true, nil
}
