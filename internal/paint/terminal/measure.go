package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/sdui/internal/layout"
	"github.com/alexisbeaulieu97/sdui/internal/render"
	"github.com/alexisbeaulieu97/sdui/internal/theme"
)

// Measurer reports the size an instruction occupies when painted, in layout
// units.
type Measurer struct {
	p *Painter
}

// Measurer returns a render.Measurer backed by p.
func (p *Painter) Measurer() render.Measurer {
	return Measurer{p: p}
}

// Measure paints leaves at their natural size and reads container extents
// from their plan. Margins are included.
func (m Measurer) Measure(in *render.Instruction) layout.Size {
	var size layout.Size
	if in.Layout != nil {
		size = layout.Size{Width: in.Layout.Width, Height: in.Layout.Height}
	} else {
		w, h := lipgloss.Size(m.p.leaf(in, 0, frame{bg: 0xFFFFFFFF}))
		size = layout.Size{Width: w * CellWidth, Height: h * CellHeight}
	}

	return layout.Size{
		Width:  size.Width + in.Margin.Start + in.Margin.End,
		Height: size.Height + in.Margin.Top + in.Margin.Bottom,
	}
}

// MeasureListItem returns the painted row width and the row's token height.
func (m Measurer) MeasureListItem(item render.ListItemContent, _ theme.TextPreset) layout.Size {
	return layout.Size{Width: itemWidth(item) * CellWidth, Height: item.Height}
}
