package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Schema != SchemaVersion {
		t.Errorf("schema = %q, want %q", cfg.Schema, SchemaVersion)
	}
	if cfg.Knob.Min != nil || cfg.Knob.Max != nil {
		t.Error("default knob should be unbounded")
	}
	if cfg.Knob.Diameter <= 0 {
		t.Error("diameter should be positive")
	}
}

func TestLoadOptional_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Knob.Diameter != 48 {
		t.Errorf("diameter = %v, want default 48", cfg.Knob.Diameter)
	}
}

func TestLoadOptional_ParsesKnobSection(t *testing.T) {
	path := writeConfig(t, `
schema: v1
knob:
  value: 0.5
  min: 0
  max: 1
  divisions: 10
  diameter: 64
`)

	cfg, err := LoadOptional(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Knob.Value != 0.5 {
		t.Errorf("value = %v, want 0.5", cfg.Knob.Value)
	}
	if cfg.Knob.Min == nil || *cfg.Knob.Min != 0 {
		t.Errorf("min = %v, want 0", cfg.Knob.Min)
	}
	if cfg.Knob.Max == nil || *cfg.Knob.Max != 1 {
		t.Errorf("max = %v, want 1", cfg.Knob.Max)
	}
	if cfg.Knob.Divisions != 10 {
		t.Errorf("divisions = %d, want 10", cfg.Knob.Divisions)
	}
}

func TestLoadOptional_OmittedBoundsStayUnbounded(t *testing.T) {
	path := writeConfig(t, "knob:\n  value: 2.5\n")

	cfg, err := LoadOptional(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Knob.Min != nil || cfg.Knob.Max != nil {
		t.Error("omitted bounds should stay unbounded")
	}
}

func TestLoadOptional_RejectsNewerSchema(t *testing.T) {
	path := writeConfig(t, "schema: v2\nknob:\n  value: 0\n")

	if _, err := LoadOptional(path); err == nil {
		t.Fatal("expected error for newer schema")
	}
}

func TestLoadOptional_RejectsMalformedSchema(t *testing.T) {
	path := writeConfig(t, "schema: one\n")

	if _, err := LoadOptional(path); err == nil {
		t.Fatal("expected error for malformed schema version")
	}
}

func TestSanitizeRepairsDegradedValues(t *testing.T) {
	path := writeConfig(t, `
knob:
  divisions: -3
  diameter: -10
  min: 1
  max: 0
`)

	cfg, err := LoadOptional(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Knob.Divisions != 0 {
		t.Errorf("divisions = %d, want 0", cfg.Knob.Divisions)
	}
	if cfg.Knob.Diameter != 48 {
		t.Errorf("diameter = %v, want 48", cfg.Knob.Diameter)
	}
	if *cfg.Knob.Min != 0 || *cfg.Knob.Max != 1 {
		t.Errorf("bounds = [%v, %v], want [0, 1]", *cfg.Knob.Min, *cfg.Knob.Max)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "knobsim.yaml")
	minVal, maxVal := -1.0, 1.0
	cfg := &Config{
		Schema: SchemaVersion,
		Knob:   KnobConfig{Value: 0.25, Min: &minVal, Max: &maxVal, Divisions: 8, Diameter: 48},
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadOptional(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Knob.Value != 0.25 || loaded.Knob.Divisions != 8 {
		t.Errorf("loaded = %+v", loaded.Knob)
	}
	if loaded.Knob.Min == nil || *loaded.Knob.Min != -1 {
		t.Errorf("min = %v, want -1", loaded.Knob.Min)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "knobsim.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
