package game

import (
	"strconv"

	"github.com/pthm-cable/advent/components"
	"github.com/pthm-cable/advent/config"
	"github.com/pthm-cable/advent/ui"
)

// buildMenu returns the menu tree: a title, then one column per configured
// year holding the year label and a grid of day buttons.
func buildMenu(cfg *config.Config, theme ui.Theme) ui.Bundle {
	m := cfg.Menu

	root := ui.Bundle{
		Node: components.Node{
			Width:         components.Percent(100),
			Height:        components.Percent(100),
			FlexDirection: components.FlexColumn,
			AlignItems:    components.AlignCenter,
			Padding:       components.All(m.Padding),
			RowGap:        m.RowGap,
		},
		Markers: []any{components.MenuRoot{}},
	}
	root.Children = append(root.Children,
		ui.TextNode(m.Title, m.TitleFontSize, theme.TextColor).With(components.Title{}))

	for _, y := range m.Years {
		root.Children = append(root.Children, yearColumn(cfg, y.Year, theme))
	}
	return root
}

func yearColumn(cfg *config.Config, year int, theme ui.Theme) ui.Bundle {
	m := cfg.Menu

	grid := ui.Bundle{
		Node: components.Node{
			Display:     components.DisplayGrid,
			GridColumns: m.GridColumns,
			RowGap:      m.GridGap,
			ColumnGap:   m.GridGap,
		},
	}
	for _, d := range cfg.DaysOf(year) {
		p := components.Puzzle{Year: components.Year(year), Day: components.Day(d)}
		btn := ui.ButtonNode(strconv.Itoa(d), m.ButtonSize, m.ButtonSize, m.DayFontSize, theme)
		btn.Puzzle = &p
		grid.Children = append(grid.Children, btn)
	}

	label := ui.TextNode(strconv.Itoa(year), m.YearFontSize, theme.TextColor)
	return ui.Column(m.RowGap, label, grid)
}
