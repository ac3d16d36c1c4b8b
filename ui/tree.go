package ui

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/mlange-42/ark/ecs"
	"github.com/zyedidia/generic/mapset"

	"github.com/pthm-cable/advent/components"
)

// Tree owns the component mappers for UI entities in an ECS world.
// Every UI entity carries Node, Seq and Layout; nothing else lives in the world,
// so the Node count is the entity count.
type Tree struct {
	world *ecs.World
	seq   uint64

	nodes        *ecs.Map[components.Node]
	seqs         *ecs.Map[components.Seq]
	layouts      *ecs.Map[components.Layout]
	parents      *ecs.Map[components.Parent]
	texts        *ecs.Map[components.Text]
	buttons      *ecs.Map[components.Button]
	interactions *ecs.Map[components.Interaction]
	backgrounds  *ecs.Map[components.BackgroundColor]
	radii        *ecs.Map[components.BorderRadius]
	hidden       *ecs.Map[components.Hidden]
	puzzles      *ecs.Map[components.Puzzle]
	menuRoots    *ecs.Map[components.MenuRoot]
	puzzleRoots  *ecs.Map[components.PuzzleRoot]
	backButtons  *ecs.Map[components.BackButton]
	titles       *ecs.Map[components.Title]

	nodeFilter       *ecs.Filter1[components.Node]
	parentFilter     *ecs.Filter1[components.Parent]
	buttonFilter     *ecs.Filter1[components.Button]
	textFilter       *ecs.Filter1[components.Text]
	menuRootFilter   *ecs.Filter1[components.MenuRoot]
	puzzleRootFilter *ecs.Filter1[components.PuzzleRoot]
}

// NewTree creates mappers for UI components on the given world.
func NewTree(world *ecs.World) *Tree {
	return &Tree{
		world: world,

		nodes:        ecs.NewMap[components.Node](world),
		seqs:         ecs.NewMap[components.Seq](world),
		layouts:      ecs.NewMap[components.Layout](world),
		parents:      ecs.NewMap[components.Parent](world),
		texts:        ecs.NewMap[components.Text](world),
		buttons:      ecs.NewMap[components.Button](world),
		interactions: ecs.NewMap[components.Interaction](world),
		backgrounds:  ecs.NewMap[components.BackgroundColor](world),
		radii:        ecs.NewMap[components.BorderRadius](world),
		hidden:       ecs.NewMap[components.Hidden](world),
		puzzles:      ecs.NewMap[components.Puzzle](world),
		menuRoots:    ecs.NewMap[components.MenuRoot](world),
		puzzleRoots:  ecs.NewMap[components.PuzzleRoot](world),
		backButtons:  ecs.NewMap[components.BackButton](world),
		titles:       ecs.NewMap[components.Title](world),

		nodeFilter:       ecs.NewFilter1[components.Node](world),
		parentFilter:     ecs.NewFilter1[components.Parent](world),
		buttonFilter:     ecs.NewFilter1[components.Button](world),
		textFilter:       ecs.NewFilter1[components.Text](world),
		menuRootFilter:   ecs.NewFilter1[components.MenuRoot](world),
		puzzleRootFilter: ecs.NewFilter1[components.PuzzleRoot](world),
	}
}

// Spawn creates the bundle as a new root and returns the root entity.
func (t *Tree) Spawn(b Bundle) ecs.Entity {
	return t.spawn(b, ecs.Entity{}, false)
}

func (t *Tree) spawn(b Bundle, parent ecs.Entity, hasParent bool) ecs.Entity {
	node := b.Node
	t.seq++
	e := t.nodes.NewEntity(&node)
	t.seqs.Add(e, &components.Seq{N: t.seq})
	t.layouts.Add(e, &components.Layout{})

	if hasParent {
		t.parents.Add(e, &components.Parent{Entity: parent})
	}
	if b.Text != nil {
		text := *b.Text
		t.texts.Add(e, &text)
	}
	if b.Background != nil {
		bg := *b.Background
		t.backgrounds.Add(e, &bg)
	}
	if b.Radius > 0 {
		t.radii.Add(e, &components.BorderRadius{Radius: b.Radius})
	}
	if b.Button {
		t.buttons.Add(e, &components.Button{})
		t.interactions.Add(e, &components.Interaction{})
	}
	if b.Puzzle != nil {
		p := *b.Puzzle
		t.puzzles.Add(e, &p)
	}
	if b.Hidden {
		t.hidden.Add(e, &components.Hidden{})
	}
	for _, m := range b.Markers {
		t.addMarker(e, m)
	}

	for _, child := range b.Children {
		t.spawn(child, e, true)
	}
	return e
}

func (t *Tree) addMarker(e ecs.Entity, m any) {
	switch m.(type) {
	case components.MenuRoot:
		t.menuRoots.Add(e, &components.MenuRoot{})
	case components.PuzzleRoot:
		t.puzzleRoots.Add(e, &components.PuzzleRoot{})
	case components.BackButton:
		t.backButtons.Add(e, &components.BackButton{})
	case components.Title:
		t.titles.Add(e, &components.Title{})
	default:
		panic(fmt.Sprintf("ui: unsupported marker %T", m))
	}
}

// children returns each parent's children in spawn order, and the roots.
func (t *Tree) children() (map[ecs.Entity][]ecs.Entity, []ecs.Entity) {
	byParent := make(map[ecs.Entity][]ecs.Entity)
	query := t.parentFilter.Query()
	for query.Next() {
		p := query.Get()
		byParent[p.Entity] = append(byParent[p.Entity], query.Entity())
	}

	var roots []ecs.Entity
	nodes := t.nodeFilter.Query()
	for nodes.Next() {
		e := nodes.Entity()
		if !t.parents.Has(e) {
			roots = append(roots, e)
		}
	}

	for p, kids := range byParent {
		t.sortBySeq(kids)
		byParent[p] = kids
	}
	t.sortBySeq(roots)
	return byParent, roots
}

func (t *Tree) sortBySeq(es []ecs.Entity) {
	sort.Slice(es, func(i, j int) bool {
		return t.seqs.Get(es[i]).N < t.seqs.Get(es[j]).N
	})
}

// descendants collects e and every entity below it.
func descendants(e ecs.Entity, byParent map[ecs.Entity][]ecs.Entity, into *mapset.Set[ecs.Entity]) {
	if into.Has(e) {
		return
	}
	into.Put(e)
	for _, c := range byParent[e] {
		descendants(c, byParent, into)
	}
}

// Despawn removes the given entities together with their descendants.
// Returns the number of entities removed.
func (t *Tree) Despawn(roots ...ecs.Entity) int {
	byParent, _ := t.children()
	doomed := mapset.New[ecs.Entity]()
	for _, r := range roots {
		if t.world.Alive(r) {
			descendants(r, byParent, &doomed)
		}
	}

	removed := 0
	doomed.Each(func(e ecs.Entity) {
		t.world.RemoveEntity(e)
		removed++
	})
	return removed
}

// DespawnPuzzleRoots removes every PuzzleRoot entity and its subtree.
func (t *Tree) DespawnPuzzleRoots() int {
	// Collect first; the world is locked while a query is open.
	return t.Despawn(t.PuzzleRoots()...)
}

// PuzzleRoots returns all entities tagged PuzzleRoot.
func (t *Tree) PuzzleRoots() []ecs.Entity {
	var out []ecs.Entity
	query := t.puzzleRootFilter.Query()
	for query.Next() {
		out = append(out, query.Entity())
	}
	return out
}

// MenuRoots returns all entities tagged MenuRoot.
func (t *Tree) MenuRoots() []ecs.Entity {
	var out []ecs.Entity
	query := t.menuRootFilter.Query()
	for query.Next() {
		out = append(out, query.Entity())
	}
	return out
}

// SetHidden shows or hides an entity's subtree.
func (t *Tree) SetHidden(e ecs.Entity, hidden bool) {
	has := t.hidden.Has(e)
	switch {
	case hidden && !has:
		t.hidden.Add(e, &components.Hidden{})
	case !hidden && has:
		t.hidden.Remove(e)
	}
}

// Visible reports whether e and all its ancestors are not hidden.
func (t *Tree) Visible(e ecs.Entity) bool {
	for {
		if t.hidden.Has(e) {
			return false
		}
		if !t.parents.Has(e) {
			return true
		}
		e = t.parents.Get(e).Entity
	}
}

// Count returns the number of UI entities.
func (t *Tree) Count() int {
	query := t.nodeFilter.Query()
	n := query.Count()
	query.Close()
	return n
}

// CountTexts returns the number of text nodes.
func (t *Tree) CountTexts() int {
	query := t.textFilter.Query()
	n := query.Count()
	query.Close()
	return n
}

// CountTitles returns the number of title text nodes.
func (t *Tree) CountTitles() int {
	n := 0
	query := t.textFilter.Query()
	for query.Next() {
		if t.titles.Has(query.Entity()) {
			n++
		}
	}
	return n
}

// Buttons returns all button entities in spawn order.
func (t *Tree) Buttons() []ecs.Entity {
	var out []ecs.Entity
	query := t.buttonFilter.Query()
	for query.Next() {
		out = append(out, query.Entity())
	}
	t.sortBySeq(out)
	return out
}

// Puzzle returns the puzzle carried by a button, if any.
func (t *Tree) Puzzle(e ecs.Entity) (components.Puzzle, bool) {
	if !t.puzzles.Has(e) {
		return components.Puzzle{}, false
	}
	return *t.puzzles.Get(e), true
}

// IsBackButton reports whether e requests a return to the menu.
func (t *Tree) IsBackButton(e ecs.Entity) bool {
	return t.backButtons.Has(e)
}

// Layout returns the computed rectangle of e.
func (t *Tree) Layout(e ecs.Entity) components.Layout {
	return *t.layouts.Get(e)
}

// Interaction returns the pointer state of a button.
func (t *Tree) Interaction(e ecs.Entity) components.InteractionState {
	if !t.interactions.Has(e) {
		return components.InteractionNone
	}
	return t.interactions.Get(e).State
}

// Text returns the text of e, if it is a text node.
func (t *Tree) Text(e ecs.Entity) (components.Text, bool) {
	if !t.texts.Has(e) {
		return components.Text{}, false
	}
	return *t.texts.Get(e), true
}

// FindText returns the first visible text node with the given value.
func (t *Tree) FindText(value string) (ecs.Entity, bool) {
	var found []ecs.Entity
	query := t.textFilter.Query()
	for query.Next() {
		if query.Get().Value == value {
			found = append(found, query.Entity())
		}
	}
	t.sortBySeq(found)
	for _, e := range found {
		if t.Visible(e) {
			return e, true
		}
	}
	return ecs.Entity{}, false
}

// ParentOf returns the parent of e, if it has one.
func (t *Tree) ParentOf(e ecs.Entity) (ecs.Entity, bool) {
	if !t.parents.Has(e) {
		return ecs.Entity{}, false
	}
	return t.parents.Get(e).Entity, true
}

// Walk calls fn for every visible node, parents before children, siblings in
// spawn order. Later calls draw on top of earlier ones.
func (t *Tree) Walk(fn func(e ecs.Entity, depth int)) {
	byParent, roots := t.children()
	var visit func(e ecs.Entity, depth int)
	visit = func(e ecs.Entity, depth int) {
		if t.hidden.Has(e) {
			return
		}
		fn(e, depth)
		for _, c := range byParent[e] {
			visit(c, depth+1)
		}
	}
	for _, r := range roots {
		visit(r, 0)
	}
}

// Background returns the fill color of e, if it has one.
func (t *Tree) Background(e ecs.Entity) (color.RGBA, bool) {
	if !t.backgrounds.Has(e) {
		return color.RGBA{}, false
	}
	return t.backgrounds.Get(e).Color, true
}

// Radius returns the corner radius of e, or zero.
func (t *Tree) Radius(e ecs.Entity) float32 {
	if !t.radii.Has(e) {
		return 0
	}
	return t.radii.Get(e).Radius
}

// IsButton reports whether e reacts to the pointer.
func (t *Tree) IsButton(e ecs.Entity) bool {
	return t.buttons.Has(e)
}
