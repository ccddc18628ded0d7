package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(wd)
	return home, wd
}

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	isolate(t)

	cfg, err := LoadSokoban("")
	if err != nil {
		t.Fatalf("LoadSokoban() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSokobanConfig()) {
		t.Errorf("embedded default = %+v\nwant %+v", cfg, DefaultSokobanConfig())
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, wd := isolate(t)

	writeFile(t, filepath.Join(wd, "configs", FileName), "levels:\n  last: 3\n")
	cfg, err := LoadSokoban("")
	if err != nil {
		t.Fatalf("LoadSokoban() failed: %v", err)
	}
	if cfg.Levels.Last != 3 {
		t.Errorf("Expected local config (last=3), got %d", cfg.Levels.Last)
	}

	writeFile(t, filepath.Join(home, ".sokoban", "configs", FileName), "levels:\n  last: 2\n")
	cfg, _ = LoadSokoban("")
	if cfg.Levels.Last != 2 {
		t.Errorf("Expected user config (last=2) to win over local, got %d", cfg.Levels.Last)
	}

	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "levels:\n  last: 6\n")
	cfg, err = LoadSokoban(custom)
	if err != nil {
		t.Fatalf("LoadSokoban(custom) failed: %v", err)
	}
	if cfg.Levels.Last != 6 {
		t.Errorf("Expected custom config (last=6), got %d", cfg.Levels.Last)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	isolate(t)
	custom := filepath.Join(t.TempDir(), "partial.yaml")
	writeFile(t, custom, "runtime:\n  tick_rate: 20\nkeys:\n  restart: [x]\n")

	cfg, err := LoadSokoban(custom)
	if err != nil {
		t.Fatalf("LoadSokoban() failed: %v", err)
	}
	if cfg.Runtime.TickRate != 20 {
		t.Errorf("Expected tick_rate 20, got %d", cfg.Runtime.TickRate)
	}
	if cfg.Grid.Rows != 15 || cfg.Levels.Last != 4 {
		t.Errorf("Expected defaults for unset fields, got %+v", cfg)
	}
	if !reflect.DeepEqual(cfg.Keys.Restart, []string{"x"}) {
		t.Errorf("Expected restart keys [x], got %v", cfg.Keys.Restart)
	}
	if len(cfg.Keys.Up) == 0 {
		t.Error("unset key list should keep its default")
	}
}

func TestLoadCustomErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		data    string
		wantMsg string
	}{
		{name: "missing", path: filepath.Join(dir, "nope.yaml"), wantMsg: "failed to read"},
		{name: "bad yaml", path: filepath.Join(dir, "bad.yaml"), data: "grid: [", wantMsg: "failed to parse"},
		{name: "invalid values", path: filepath.Join(dir, "zero.yaml"), data: "grid:\n  rows: 0\n", wantMsg: "grid size"},
		{name: "start past last", path: filepath.Join(dir, "start.yaml"), data: "levels:\n  start: 9\n", wantMsg: "levels.start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.data != "" {
				writeFile(t, tt.path, tt.data)
			}
			cfg, err := LoadSokoban(tt.path)
			if err == nil {
				t.Fatal("LoadSokoban() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
			if !reflect.DeepEqual(cfg, DefaultSokobanConfig()) {
				t.Error("failed load should return the default config")
			}
		})
	}
}

func TestLoadSkipsInvalidUserConfig(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".sokoban", "configs", FileName), "runtime:\n  tick_rate: 0\n")

	cfg, err := LoadSokoban("")
	if err != nil {
		t.Fatalf("LoadSokoban() failed: %v", err)
	}
	if cfg.Runtime.TickRate != 8 {
		t.Errorf("Expected fallback tick_rate 8, got %d", cfg.Runtime.TickRate)
	}
}
