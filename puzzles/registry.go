// Package puzzles provides a global registry of puzzle content plugins.
// Plugins register themselves in init() functions, so the menu can load a
// day's UI without depending on each year's package.
package puzzles

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pthm-cable/advent/components"
	"github.com/pthm-cable/advent/ui"
)

// Env is what a plugin may read while building its UI.
type Env struct {
	Theme    ui.Theme
	InputDir string
}

// BuildFunc builds a puzzle's UI subtree. The returned bundle's root must
// carry the given marker so the loader can tear it down later.
type BuildFunc func(root components.PuzzleRoot, env Env) ui.Bundle

// Plugin is one day's content.
type Plugin struct {
	Title string
	Build BuildFunc
}

// Info describes a registered plugin.
type Info struct {
	Puzzle components.Puzzle
	Title  string
}

var (
	plugins = make(map[components.Puzzle]Plugin)
	mu      sync.RWMutex
)

// Register adds a plugin for the given year and day.
// Typically called from a year package's init() function.
// Panics if the day is already registered or the plugin has no Build.
func Register(year components.Year, day components.Day, p Plugin) {
	mu.Lock()
	defer mu.Unlock()

	key := components.Puzzle{Year: year, Day: day}
	if p.Build == nil {
		panic(fmt.Sprintf("puzzles: plugin %s has no build function", key))
	}
	if _, exists := plugins[key]; exists {
		panic(fmt.Sprintf("puzzles: %s already registered", key))
	}
	plugins[key] = p
}

// Lookup returns the plugin registered for a puzzle.
func Lookup(p components.Puzzle) (Plugin, bool) {
	mu.RLock()
	defer mu.RUnlock()

	plugin, ok := plugins[p]
	return plugin, ok
}

// Exists checks if a plugin is registered for a puzzle.
func Exists(p components.Puzzle) bool {
	_, ok := Lookup(p)
	return ok
}

// List returns all registered plugins sorted by year, then day.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(plugins))
	for key, p := range plugins {
		result = append(result, Info{Puzzle: key, Title: p.Title})
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i].Puzzle, result[j].Puzzle
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Day < b.Day
	})
	return result
}

// Resolve returns the plugin for a puzzle, or the placeholder when none is registered.
func Resolve(p components.Puzzle) Plugin {
	if plugin, ok := Lookup(p); ok {
		return plugin
	}
	return Placeholder(p)
}
