package puzzles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/advent/components"
	"github.com/pthm-cable/advent/ui"
)

// unregister removes a plugin so tests can reuse keys.
func unregister(p components.Puzzle) {
	mu.Lock()
	defer mu.Unlock()
	delete(plugins, p)
}

func stubBuild(root components.PuzzleRoot, env Env) ui.Bundle {
	return ui.TextNode("stub", 12, env.Theme.TextColor).With(root)
}

func TestRegisterLookupList(t *testing.T) {
	a := components.Puzzle{Year: 1990, Day: 2}
	b := components.Puzzle{Year: 1990, Day: 1}
	c := components.Puzzle{Year: 1989, Day: 9}
	for _, p := range []components.Puzzle{a, b, c} {
		Register(p.Year, p.Day, Plugin{Title: p.String(), Build: stubBuild})
		defer unregister(p)
	}

	if !Exists(a) {
		t.Fatal("registered plugin not found")
	}
	plugin, ok := Lookup(b)
	if !ok || plugin.Title != "1990/1" {
		t.Errorf("Lookup(%s) = %+v, %v", b, plugin, ok)
	}

	// List is sorted by year, then day; filter to our test keys.
	var got []components.Puzzle
	for _, info := range List() {
		if info.Puzzle.Year < 2015 {
			got = append(got, info.Puzzle)
		}
	}
	want := []components.Puzzle{c, b, a}
	if len(got) != len(want) {
		t.Fatalf("List returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	p := components.Puzzle{Year: 1991, Day: 1}
	Register(p.Year, p.Day, Plugin{Build: stubBuild})
	defer unregister(p)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(p.Year, p.Day, Plugin{Build: stubBuild})
}

func TestRegisterWithoutBuildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for plugin without build function")
		}
	}()
	Register(1992, 1, Plugin{Title: "empty"})
}

func TestResolveFallsBackToPlaceholder(t *testing.T) {
	p := components.Puzzle{Year: 1993, Day: 4}
	env := Env{Theme: ui.DefaultTheme(), InputDir: t.TempDir()}

	plugin := Resolve(p)
	b := plugin.Build(components.PuzzleRoot{}, env)

	if len(b.Markers) != 1 {
		t.Fatalf("placeholder root has %d markers, want 1", len(b.Markers))
	}
	if _, ok := b.Markers[0].(components.PuzzleRoot); !ok {
		t.Errorf("placeholder root marker = %T, want PuzzleRoot", b.Markers[0])
	}
	if b.Children[0].Text == nil || b.Children[0].Text.Value != "1993 Day 4" {
		t.Errorf("unexpected heading %+v", b.Children[0].Text)
	}
}

func TestReadInputInfo(t *testing.T) {
	dir := t.TempDir()
	p := components.Puzzle{Year: 2025, Day: 1}

	info, err := ReadInputInfo(dir, p)
	if err != nil {
		t.Fatalf("missing input should not error: %v", err)
	}
	if info.Exists {
		t.Error("expected Exists=false for missing input")
	}
	if want := filepath.Join(dir, "2025", "day-1-input.txt"); info.Path != want {
		t.Errorf("Path = %q, want %q", info.Path, want)
	}

	if err := os.MkdirAll(filepath.Join(dir, "2025"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(info.Path, []byte("L68\nL30\nR48\n"), 0644); err != nil {
		t.Fatal(err)
	}

	info, err = ReadInputInfo(dir, p)
	if err != nil {
		t.Fatalf("ReadInputInfo failed: %v", err)
	}
	if !info.Exists || info.Lines != 3 || info.Bytes != 12 {
		t.Errorf("got %+v, want 3 lines, 12 bytes", info)
	}
}

func TestInputStatusText(t *testing.T) {
	env := Env{Theme: ui.DefaultTheme(), InputDir: t.TempDir()}
	b := InputStatus(env, components.Puzzle{Year: 2025, Day: 3})

	if len(b.Children) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(b.Children))
	}
	if got := b.Children[1].Text.Value; got != "Input not found" {
		t.Errorf("status = %q, want %q", got, "Input not found")
	}
}

func TestCountLines(t *testing.T) {
	long := strings.Repeat("x", 3<<20)
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"terminated", "a\nb\n", 2},
		{"unterminated last line", "a\nb", 2},
		{"blank lines", "\n\n", 2},
		{"line longer than the read buffer", long + "\nR48\n", 2},
		{"unterminated long line", "L1\n" + long, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := countLines(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("countLines failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("countLines = %d, want %d", got, tc.want)
			}
		})
	}
}
