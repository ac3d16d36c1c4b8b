// Package state provides the application state enum and a small state machine
// with enter/exit callbacks applied at frame boundaries.
package state

// AppState selects which UI tree is active.
type AppState uint8

const (
	Menu AppState = iota // Default
	Puzzle
)

func (s AppState) String() string {
	switch s {
	case Menu:
		return "menu"
	case Puzzle:
		return "puzzle"
	default:
		return "unknown"
	}
}

// Transition records a state change applied by the machine.
type Transition[S comparable] struct {
	From S
	To   S
}

// Machine holds a current state and an optional queued next state.
// Callbacks run synchronously inside Apply.
type Machine[S comparable] struct {
	current S
	next    S
	pending bool

	onEnter map[S][]func()
	onExit  map[S][]func()
}

// NewMachine creates a machine starting in the given state.
// No enter callbacks run for the initial state.
func NewMachine[S comparable](initial S) *Machine[S] {
	return &Machine[S]{
		current: initial,
		onEnter: make(map[S][]func()),
		onExit:  make(map[S][]func()),
	}
}

// Current returns the active state.
func (m *Machine[S]) Current() S {
	return m.current
}

// Pending returns the queued state, if any.
func (m *Machine[S]) Pending() (S, bool) {
	return m.next, m.pending
}

// Set queues a transition for the next Apply. The last call before Apply wins.
func (m *Machine[S]) Set(next S) {
	m.next = next
	m.pending = true
}

// OnEnter registers fn to run when the machine enters s.
func (m *Machine[S]) OnEnter(s S, fn func()) {
	m.onEnter[s] = append(m.onEnter[s], fn)
}

// OnExit registers fn to run when the machine leaves s.
func (m *Machine[S]) OnExit(s S, fn func()) {
	m.onExit[s] = append(m.onExit[s], fn)
}

// Apply performs the queued transition. Exit callbacks of the old state run
// before enter callbacks of the new one, each in registration order.
// Queuing the current state clears the request without running callbacks.
func (m *Machine[S]) Apply() (Transition[S], bool) {
	if !m.pending {
		return Transition[S]{}, false
	}
	next := m.next
	m.pending = false

	if next == m.current {
		return Transition[S]{}, false
	}

	tr := Transition[S]{From: m.current, To: next}
	for _, fn := range m.onExit[tr.From] {
		fn()
	}
	m.current = next
	for _, fn := range m.onEnter[tr.To] {
		fn()
	}
	return tr, true
}
