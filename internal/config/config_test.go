package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wanderer.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
world:
  width: 120
  height: 90
  seed: 7
locations:
  min: 3
  max: 6
time:
  minutesPerTurn: 5
display:
  scale: 8
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.World.Width != 120 || cfg.World.Height != 90 || cfg.World.Seed != 7 {
		t.Fatalf("world config = %+v", cfg.World)
	}
	if cfg.Locations.Min != 3 || cfg.Locations.Max != 6 {
		t.Fatalf("locations config = %+v", cfg.Locations)
	}
	if cfg.Time.MinutesPerTurn != 5 || cfg.Display.Scale != 8 {
		t.Fatalf("time/display config = %+v / %+v", cfg.Time, cfg.Display)
	}
}

func TestLoadSparseFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
world:
  seed: 99
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	def := Default()
	if cfg.World.Width != def.World.Width || cfg.World.Height != def.World.Height {
		t.Fatalf("sparse file should keep default dimensions, got %+v", cfg.World)
	}
	if cfg.World.Seed != 99 {
		t.Fatalf("seed = %d, want 99", cfg.World.Seed)
	}
	if cfg.Locations.Min != def.Locations.Min || cfg.Time.MinutesPerTurn != def.Time.MinutesPerTurn {
		t.Fatal("sparse file should keep remaining defaults")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name, yaml, fragment string
	}{
		{"negative width", "world:\n  width: -5\n", "dimensions"},
		{"inverted bounds", "locations:\n  min: 8\n  max: 2\n", "bounds"},
		{"negative turn", "time:\n  minutesPerTurn: -1\n", "minutesPerTurn"},
	}
	for _, c := range cases {
		path := writeConfig(t, c.yaml)
		if _, err := Load(path); err == nil || !strings.Contains(err.Error(), c.fragment) {
			t.Fatalf("%s: got %v, want error mentioning %q", c.name, err, c.fragment)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("loading a missing file should fail")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "world: [not a map")
	if _, err := Load(path); err == nil {
		t.Fatal("malformed YAML should fail")
	}
}

func TestDefaultValidates(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("default config must be valid: %v", err)
	}
}
