package components

// ValUnit selects how a Val is resolved.
type ValUnit uint8

const (
	UnitAuto ValUnit = iota
	UnitPx
	UnitPercent
)

// Val is a length in pixels, percent of the parent's content box, or auto.
type Val struct {
	Unit  ValUnit
	Value float32
}

// Auto sizes a node to its content.
func Auto() Val { return Val{} }

// Px is a fixed pixel length.
func Px(v float32) Val { return Val{Unit: UnitPx, Value: v} }

// Percent is a length relative to the parent's content box.
func Percent(v float32) Val { return Val{Unit: UnitPercent, Value: v} }

// Resolve returns the length against the given parent size.
// ok is false for auto values.
func (v Val) Resolve(parent float32) (float32, bool) {
	switch v.Unit {
	case UnitPx:
		return v.Value, true
	case UnitPercent:
		return parent * v.Value / 100, true
	default:
		return 0, false
	}
}

// Display selects the layout algorithm for a node's children.
type Display uint8

const (
	DisplayFlex Display = iota
	DisplayGrid
)

// FlexDirection is the main axis of a flex container.
type FlexDirection uint8

const (
	FlexRow FlexDirection = iota
	FlexColumn
)

// Align positions children on an axis.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// UIRect holds per-side lengths.
type UIRect struct {
	Left, Right, Top, Bottom float32
}

// All returns a rect with the same length on every side.
func All(v float32) UIRect {
	return UIRect{Left: v, Right: v, Top: v, Bottom: v}
}

// Node is the layout style of a UI entity.
type Node struct {
	Width, Height  Val
	Display        Display
	FlexDirection  FlexDirection
	AlignItems     Align // Cross-axis placement of children
	JustifyContent Align // Main-axis placement of children
	Padding        UIRect
	RowGap         float32
	ColumnGap      float32
	GridColumns    int // Equal-width tracks; only for DisplayGrid
}
