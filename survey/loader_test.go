package survey

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	profilersdk "github.com/caretalk/profiler-sdk-go"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingDirFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)

	assert.Equal(t, profilersdk.DefaultAttitudeItems(), cfg.Items)
	assert.Equal(t, profilersdk.DefaultChecklistItems(), cfg.Checklist)
	assert.Equal(t, profilersdk.DefaultThresholds(), cfg.Thresholds)
}

func TestLoadPartialDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "attitude_items.json", `[
		{"id":"x01","text":"I worry a lot.","scale":"anxiety"},
		{"id":"x02","text":"I stay calm.","scale":"anxiety","reverse":true}
	]`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	require.Len(t, cfg.Items, 2)
	assert.Equal(t, "x01", cfg.Items[0].ID)
	assert.True(t, cfg.Items[1].Reverse)
	// Untouched definitions keep their defaults.
	assert.Equal(t, profilersdk.DefaultChecklistItems(), cfg.Checklist)
	assert.Equal(t, profilersdk.DefaultThresholds(), cfg.Thresholds)
}

func TestLoadItemsYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "attitude_items.yaml", `
- id: y01
  text: I avoid doctors.
  scale: ignore
  weight: 2
`)
	items, err := LoadItems(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "ignore", items[0].Scale)
	assert.Equal(t, 2, items[0].Weight)
}

func TestLoadItemsCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "attitude_items.csv",
		"id,text,scale,reverse,weight\n"+
			"c01,I worry.,anxiety,,\n"+
			"c02,I stay calm.,anxiety,true,-1\n")

	items, err := LoadItems(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.False(t, items[0].Reverse)
	assert.True(t, items[1].Reverse)
	assert.Equal(t, -1, items[1].Weight)
}

func TestLoadItemsRejectsMissingFields(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "attitude_items.json", `[{"text":"no id or scale"}]`)
	_, err := LoadItems(path)
	assert.Error(t, err)
}

func TestLoadChecklistCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "typology_items.csv",
		"id,text,type\n"+
			"k01,I double-check everything.,pedantic\n")

	items, err := LoadChecklist(path)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "pedantic", items[0].Type)
}

func TestLoadThresholdsMediumAlias(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "thresholds.yaml", `
anxiety:
  low: {min: 0, max: 4}
  medium: {min: 5, max: 9}
  high: {min: 10, max: 14}
`)
	table, err := LoadThresholds(path)
	require.NoError(t, err)
	assert.Equal(t, profilersdk.LevelMed, table.Classify("anxiety", 7))
}

func TestLoadThresholdsRejectsOverlap(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "thresholds.json",
		`{"anxiety":{"low":{"min":0,"max":5},"med":{"min":5,"max":9},"high":{"min":10,"max":14}}}`)
	_, err := LoadThresholds(path)
	assert.Error(t, err)
}

func TestLoadMalformedFileFailsLoudly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "attitude_items.json", `{not json`)
	_, err := Load(dir)
	assert.Error(t, err)
}
