package ui

import (
	"unicode/utf8"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/advent/components"
)

// TextMeasurer reports the rendered size of a string.
type TextMeasurer interface {
	MeasureText(text string, fontSize float32) (width, height float32)
}

// EstimateMeasurer approximates glyphs as half as wide as they are tall.
// Used headless and in tests.
type EstimateMeasurer struct{}

// MeasureText implements TextMeasurer.
func (EstimateMeasurer) MeasureText(text string, fontSize float32) (float32, float32) {
	return float32(utf8.RuneCountInString(text)) * fontSize * 0.5, fontSize
}

type size struct {
	w, h float32
}

type layoutPass struct {
	t        *Tree
	byParent map[ecs.Entity][]ecs.Entity
	measurer TextMeasurer
	sizes    map[ecs.Entity]size
	bottom   float32
}

// ComputeLayout sizes and positions every visible node. Roots are laid out
// against the viewport at the origin.
func (t *Tree) ComputeLayout(viewW, viewH float32, m TextMeasurer) {
	t.ComputeLayoutScrolled(viewW, viewH, 0, m)
}

// ComputeLayoutScrolled lays out like ComputeLayout with every root shifted up
// by scrollY. Returns the content height: the lowest node edge before scrolling.
func (t *Tree) ComputeLayoutScrolled(viewW, viewH, scrollY float32, m TextMeasurer) float32 {
	if m == nil {
		m = EstimateMeasurer{}
	}
	byParent, roots := t.children()
	lp := &layoutPass{
		t:        t,
		byParent: byParent,
		measurer: m,
		sizes:    make(map[ecs.Entity]size, len(byParent)*4),
		bottom:   -scrollY,
	}

	for _, r := range roots {
		if t.hidden.Has(r) {
			continue
		}
		lp.measure(r, viewW, viewH)
		lp.place(r, 0, -scrollY)
	}
	return lp.bottom + scrollY
}

func (lp *layoutPass) visibleChildren(e ecs.Entity) []ecs.Entity {
	kids := lp.byParent[e]
	out := kids[:0:0]
	for _, k := range kids {
		if !lp.t.hidden.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

// measure computes the outer size of e given the space offered by its parent.
func (lp *layoutPass) measure(e ecs.Entity, availW, availH float32) size {
	node := lp.t.nodes.Get(e)
	pad := node.Padding

	w, fixedW := node.Width.Resolve(availW)
	h, fixedH := node.Height.Resolve(availH)

	innerW := availW - pad.Left - pad.Right
	if fixedW {
		innerW = w - pad.Left - pad.Right
	}
	innerH := availH - pad.Top - pad.Bottom
	if fixedH {
		innerH = h - pad.Top - pad.Bottom
	}

	var cw, ch float32
	if lp.t.texts.Has(e) {
		text := lp.t.texts.Get(e)
		cw, ch = lp.measurer.MeasureText(text.Value, text.FontSize)
	}

	if kids := lp.visibleChildren(e); len(kids) > 0 {
		kw, kh := lp.measureChildren(node, kids, innerW, innerH)
		cw = max(cw, kw)
		ch = max(ch, kh)
	}

	if !fixedW {
		w = cw + pad.Left + pad.Right
	}
	if !fixedH {
		h = ch + pad.Top + pad.Bottom
	}

	s := size{w: w, h: h}
	lp.sizes[e] = s
	return s
}

func (lp *layoutPass) measureChildren(node *components.Node, kids []ecs.Entity, innerW, innerH float32) (float32, float32) {
	n := len(kids)
	switch {
	case node.Display == components.DisplayGrid:
		cols := max(node.GridColumns, 1)
		var colW float32
		rowH := make([]float32, (n+cols-1)/cols)
		for i, k := range kids {
			s := lp.measure(k, innerW, innerH)
			colW = max(colW, s.w)
			rowH[i/cols] = max(rowH[i/cols], s.h)
		}
		w := float32(cols)*colW + float32(cols-1)*node.ColumnGap
		var h float32
		for _, rh := range rowH {
			h += rh
		}
		h += float32(len(rowH)-1) * node.RowGap
		return w, h

	case node.FlexDirection == components.FlexColumn:
		var w, h float32
		for _, k := range kids {
			s := lp.measure(k, innerW, innerH)
			w = max(w, s.w)
			h += s.h
		}
		return w, h + float32(n-1)*node.RowGap

	default:
		var w, h float32
		for _, k := range kids {
			s := lp.measure(k, innerW, innerH)
			w += s.w
			h = max(h, s.h)
		}
		return w + float32(n-1)*node.ColumnGap, h
	}
}

func alignOffset(free float32, a components.Align) float32 {
	switch a {
	case components.AlignCenter:
		return free / 2
	case components.AlignEnd:
		return free
	default:
		return 0
	}
}

// place writes the Layout of e at (x, y) and positions its children.
func (lp *layoutPass) place(e ecs.Entity, x, y float32) {
	s := lp.sizes[e]
	*lp.t.layouts.Get(e) = components.Layout{X: x, Y: y, Width: s.w, Height: s.h}
	lp.bottom = max(lp.bottom, y+s.h)

	kids := lp.visibleChildren(e)
	if len(kids) == 0 {
		return
	}

	node := lp.t.nodes.Get(e)
	pad := node.Padding
	cx := x + pad.Left
	cy := y + pad.Top
	cw := s.w - pad.Left - pad.Right
	ch := s.h - pad.Top - pad.Bottom

	switch {
	case node.Display == components.DisplayGrid:
		cols := max(node.GridColumns, 1)
		colW := (cw - float32(cols-1)*node.ColumnGap) / float32(cols)
		rowY := cy
		for row := 0; row*cols < len(kids); row++ {
			var rowH float32
			for col := 0; col < cols && row*cols+col < len(kids); col++ {
				k := kids[row*cols+col]
				ks := lp.sizes[k]
				kx := cx + float32(col)*(colW+node.ColumnGap) + alignOffset(colW-ks.w, node.AlignItems)
				lp.place(k, kx, rowY)
				rowH = max(rowH, ks.h)
			}
			rowY += rowH + node.RowGap
		}

	case node.FlexDirection == components.FlexColumn:
		var total float32
		for _, k := range kids {
			total += lp.sizes[k].h
		}
		total += float32(len(kids)-1) * node.RowGap

		cursor := cy + alignOffset(ch-total, node.JustifyContent)
		for _, k := range kids {
			ks := lp.sizes[k]
			lp.place(k, cx+alignOffset(cw-ks.w, node.AlignItems), cursor)
			cursor += ks.h + node.RowGap
		}

	default:
		var total float32
		for _, k := range kids {
			total += lp.sizes[k].w
		}
		total += float32(len(kids)-1) * node.ColumnGap

		cursor := cx + alignOffset(cw-total, node.JustifyContent)
		for _, k := range kids {
			ks := lp.sizes[k]
			lp.place(k, cursor, cy+alignOffset(ch-ks.h, node.AlignItems))
			cursor += ks.w + node.ColumnGap
		}
	}
}
