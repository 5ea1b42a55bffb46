// Package survey loads external survey definitions (items, checklists,
// threshold tables) from JSON, YAML or CSV files, falling back to the SDK's
// built-in defaults when a file is absent. Malformed files fail loudly;
// missing files never do.
package survey

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	profilersdk "github.com/caretalk/profiler-sdk-go"
)

// Config is the assembled survey configuration for an engine.
type Config struct {
	Items      []profilersdk.SurveyItem
	Checklist  []profilersdk.ChecklistItem
	Thresholds profilersdk.ThresholdTable
}

// File names probed by Load, in extension priority order.
var (
	itemsBasename      = "attitude_items"
	checklistBasename  = "typology_items"
	thresholdsBasename = "thresholds"
)

// Load assembles a Config from dir. Each definition falls back to the
// built-in default when its file is missing, so a partial (or empty, or
// non-existent) directory is fine. A present but malformed file is an error.
func Load(dir string) (*Config, error) {
	cfg := &Config{
		Items:      profilersdk.DefaultAttitudeItems(),
		Checklist:  profilersdk.DefaultChecklistItems(),
		Thresholds: profilersdk.DefaultThresholds(),
	}

	if path, ok := probe(dir, itemsBasename, "json", "yaml", "yml", "csv"); ok {
		items, err := LoadItems(path)
		if err != nil {
			return nil, err
		}
		cfg.Items = items
	}
	if path, ok := probe(dir, checklistBasename, "json", "yaml", "yml", "csv"); ok {
		checklist, err := LoadChecklist(path)
		if err != nil {
			return nil, err
		}
		cfg.Checklist = checklist
	}
	if path, ok := probe(dir, thresholdsBasename, "json", "yaml", "yml"); ok {
		thresholds, err := LoadThresholds(path)
		if err != nil {
			return nil, err
		}
		cfg.Thresholds = thresholds
	}
	return cfg, nil
}

func probe(dir, base string, exts ...string) (string, bool) {
	for _, ext := range exts {
		path := filepath.Join(dir, base+"."+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// LoadItems reads attitude survey items from a JSON, YAML or CSV file.
func LoadItems(path string) ([]profilersdk.SurveyItem, error) {
	var items []profilersdk.SurveyItem
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		if err := unmarshalFile(path, &items); err != nil {
			return nil, err
		}
	case ".csv":
		var err error
		items, err = loadItemsCSV(path)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("load items %s: unsupported format", path)
	}
	for i, it := range items {
		if it.ID == "" || it.Scale == "" {
			return nil, fmt.Errorf("load items %s: entry %d missing id or scale", path, i)
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("load items %s: no items", path)
	}
	return items, nil
}

// LoadChecklist reads typology checklist items from a JSON, YAML or CSV file.
func LoadChecklist(path string) ([]profilersdk.ChecklistItem, error) {
	var items []profilersdk.ChecklistItem
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		if err := unmarshalFile(path, &items); err != nil {
			return nil, err
		}
	case ".csv":
		var err error
		items, err = loadChecklistCSV(path)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("load checklist %s: unsupported format", path)
	}
	for i, it := range items {
		if it.ID == "" || it.Type == "" {
			return nil, fmt.Errorf("load checklist %s: entry %d missing id or type", path, i)
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("load checklist %s: no items", path)
	}
	return items, nil
}

// rawRanges mirrors LevelRanges but tolerates the "medium" alias for "med".
type rawRanges map[string]profilersdk.Range

// LoadThresholds reads a threshold table from a JSON or YAML file and
// validates it (ordered, non-overlapping bands per scale).
func LoadThresholds(path string) (profilersdk.ThresholdTable, error) {
	var raw map[string]rawRanges
	if err := unmarshalFile(path, &raw); err != nil {
		return nil, err
	}

	table := make(profilersdk.ThresholdTable, len(raw))
	for scale, bands := range raw {
		var ranges profilersdk.LevelRanges
		for levelName, band := range bands {
			level, err := profilersdk.ParseLevel(levelName)
			if err != nil {
				return nil, fmt.Errorf("load thresholds %s: scale %s: %w", path, scale, err)
			}
			switch level {
			case profilersdk.LevelLow:
				ranges.Low = band
			case profilersdk.LevelMed:
				ranges.Med = band
			case profilersdk.LevelHigh:
				ranges.High = band
			}
		}
		table[scale] = ranges
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("load thresholds %s: %w", path, err)
	}
	return table, nil
}

func unmarshalFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return profilersdk.ErrConfigMissing
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, target); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, target); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return nil
}

// loadItemsCSV parses columns: id,text,scale,reverse,weight. Header optional.
func loadItemsCSV(path string) ([]profilersdk.SurveyItem, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	var items []profilersdk.SurveyItem
	for i, row := range rows {
		if i == 0 && strings.EqualFold(row[0], "id") {
			continue
		}
		if len(row) < 3 {
			return nil, fmt.Errorf("parse %s: row %d has %d columns, want at least 3", path, i+1, len(row))
		}
		item := profilersdk.SurveyItem{ID: row[0], Text: row[1], Scale: row[2]}
		if len(row) > 3 && row[3] != "" {
			reverse, err := strconv.ParseBool(row[3])
			if err != nil {
				return nil, fmt.Errorf("parse %s: row %d: bad reverse flag %q", path, i+1, row[3])
			}
			item.Reverse = reverse
		}
		if len(row) > 4 && row[4] != "" {
			weight, err := strconv.Atoi(row[4])
			if err != nil {
				return nil, fmt.Errorf("parse %s: row %d: bad weight %q", path, i+1, row[4])
			}
			item.Weight = weight
		}
		items = append(items, item)
	}
	return items, nil
}

// loadChecklistCSV parses columns: id,text,type. Header optional.
func loadChecklistCSV(path string) ([]profilersdk.ChecklistItem, error) {
	rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	var items []profilersdk.ChecklistItem
	for i, row := range rows {
		if i == 0 && strings.EqualFold(row[0], "id") {
			continue
		}
		if len(row) < 3 {
			return nil, fmt.Errorf("parse %s: row %d has %d columns, want 3", path, i+1, len(row))
		}
		items = append(items, profilersdk.ChecklistItem{ID: row[0], Text: row[1], Type: row[2]})
	}
	return items, nil
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, profilersdk.ErrConfigMissing
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return rows, nil
}
