package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Menu.Title != "Advent of Code" {
		t.Errorf("title = %q", cfg.Menu.Title)
	}
	if len(cfg.Derived.Puzzles) != 12 {
		t.Fatalf("expected 12 puzzles, got %d", len(cfg.Derived.Puzzles))
	}
	for i, p := range cfg.Derived.Puzzles {
		if p.Year != 2025 || p.Day != i+1 {
			t.Errorf("puzzle %d = %+v, want 2025/%d", i, p, i+1)
		}
	}
	if cfg.Derived.ScreenW32 != 1280 || cfg.Derived.ScreenH32 != 720 {
		t.Errorf("unexpected derived screen size %vx%v", cfg.Derived.ScreenW32, cfg.Derived.ScreenH32)
	}
}

func TestLoadOverridesYears(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
menu:
  years:
    - year: 2024
      days: [1, 3, 5]
    - year: 2025
      first_day: 1
      last_day: 2
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []PuzzleRef{{2024, 1}, {2024, 3}, {2024, 5}, {2025, 1}, {2025, 2}}
	if len(cfg.Derived.Puzzles) != len(want) {
		t.Fatalf("got %d puzzles, want %d", len(cfg.Derived.Puzzles), len(want))
	}
	for i := range want {
		if cfg.Derived.Puzzles[i] != want[i] {
			t.Errorf("puzzle %d = %+v, want %+v", i, cfg.Derived.Puzzles[i], want[i])
		}
	}

	// Untouched sections keep their defaults.
	if cfg.Menu.GridColumns != 5 {
		t.Errorf("grid_columns = %d, want default 5", cfg.Menu.GridColumns)
	}
	if got := cfg.DaysOf(2024); len(got) != 3 || got[2] != 5 {
		t.Errorf("DaysOf(2024) = %v", got)
	}
}

func TestLoadRejectsInvalidMenus(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"no years", "menu:\n  years: []\n", "no years"},
		{"duplicate year", "menu:\n  years:\n    - {year: 2025, days: [1]}\n    - {year: 2025, days: [2]}\n", "listed twice"},
		{"day out of range", "menu:\n  years:\n    - {year: 2025, days: [26]}\n", "out of range"},
		{"duplicate day", "menu:\n  years:\n    - {year: 2025, days: [4, 4]}\n", "day 4 listed twice"},
		{"empty range", "menu:\n  years:\n    - {year: 2025, first_day: 3, last_day: 1}\n", "no days"},
		{"bad year", "menu:\n  years:\n    - {year: 1999, days: [1]}\n", "invalid year"},
		{"bad columns", "menu:\n  grid_columns: 0\n", "grid_columns"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.data), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading config file") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("reloading snapshot failed: %v", err)
	}
	if len(loaded.Derived.Puzzles) != len(cfg.Derived.Puzzles) {
		t.Errorf("snapshot has %d puzzles, want %d", len(loaded.Derived.Puzzles), len(cfg.Derived.Puzzles))
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Cfg()
}
