// Package layout computes child placement for container nodes.
//
// The compositor never measures anything itself: intrinsic child sizes come
// from the paint layer. Unknown alignment and aspect ratio tokens degrade to
// a documented default instead of failing.
package layout

import (
	"math"

	"github.com/alexisbeaulieu97/sdui/internal/model"
)

// Size is an intrinsic child size in layout units.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Axis is the stacking direction of a plan.
type Axis string

const (
	AxisHorizontal Axis = "horizontal"
	AxisVertical   Axis = "vertical"
	AxisGrid       Axis = "grid"
)

// Alignment distributes children along an axis.
type Alignment string

const (
	AlignStart        Alignment = "start"
	AlignCenter       Alignment = "center"
	AlignEnd          Alignment = "end"
	AlignSpaceBetween Alignment = "spaceBetween"
	AlignSpaceEvenly  Alignment = "spaceEvenly"
	AlignSpaceAround  Alignment = "spaceAround"
)

// ParseAlignment maps a token to an Alignment, returning fallback for
// anything unrecognized.
func ParseAlignment(token string, fallback Alignment) Alignment {
	switch a := Alignment(token); a {
	case AlignStart, AlignCenter, AlignEnd, AlignSpaceBetween, AlignSpaceEvenly, AlignSpaceAround:
		return a
	default:
		return fallback
	}
}

// DividerThickness is the extent a list divider occupies.
const DividerThickness = 1

// Plan is the placement of a container's children.
type Plan struct {
	Axis        Axis          `json:"axis"`
	Margin      model.Spacing `json:"margin"`
	Gap         int           `json:"gap"`
	Alignment   Alignment     `json:"alignment"`
	Columns     int           `json:"columns,omitempty"`
	AspectRatio float64       `json:"aspectRatio,omitempty"`
	Placements  []Placement   `json:"placements"`
	Dividers    []Divider     `json:"dividers,omitempty"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
}

// OuterSize is the content extent plus the container margin.
func (p *Plan) OuterSize() Size {
	return Size{
		Width:  p.Width + p.Margin.Start + p.Margin.End,
		Height: p.Height + p.Margin.Top + p.Margin.Bottom,
	}
}

// Placement locates one child relative to the container's content box.
type Placement struct {
	Index  int `json:"index"`
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Divider separates list item After from item After+1.
type Divider struct {
	After int `json:"after"`
	Y     int `json:"y"`
}

// AspectRatio maps a grid cell token to width/height. Anything other than
// "16:9" and "4:3" is square.
func AspectRatio(token string) float64 {
	switch token {
	case "16:9":
		return 16.0 / 9.0
	case "4:3":
		return 4.0 / 3.0
	default:
		return 1.0
	}
}

// Compose lays out container's children using their intrinsic sizes only.
// It returns nil for leaf nodes.
func Compose(container model.Node, sizes []Size) *Plan {
	return ComposeWithin(container, sizes, 0)
}

// ComposeWithin is Compose with an available content width. A zero width
// sizes the container to its content.
func ComposeWithin(container model.Node, sizes []Size, available int) *Plan {
	switch c := container.(type) {
	case *model.Row:
		align := ParseAlignment(c.Arrangement, AlignStart)
		return composeRow(c.Spacing(), sizes, align, available)
	case *model.Column:
		align := ParseAlignment(c.Alignment, AlignCenter)
		return composeColumn(c.Spacing(), sizes, align, available)
	case *model.Grid:
		return composeGrid(c.Spacing(), sizes, c.Columns, c.Style.ItemSpacing, AspectRatio(c.Style.AspectRatio), available)
	case *model.List:
		return composeList(c.Spacing(), sizes, c.Style.ItemSpacing, c.Style.Dividers && len(c.Items) > 1, available)
	default:
		return nil
	}
}

func composeRow(spacing model.Spacing, sizes []Size, align Alignment, available int) *Plan {
	n := len(sizes)
	gap := spacing.Inner

	content, height := 0, 0
	for _, s := range sizes {
		content += s.Width
		height = max(height, s.Height)
	}
	if n > 1 {
		content += gap * (n - 1)
	}

	width := max(available, content)
	offset, extra := Distribute(align, width-content, n)

	placements := make([]Placement, 0, n)
	x := offset
	for i, s := range sizes {
		placements = append(placements, Placement{
			Index:  i,
			X:      x,
			Y:      (height - s.Height) / 2,
			Width:  s.Width,
			Height: s.Height,
			Column: i,
		})
		x += s.Width + gap + extra
	}

	return &Plan{
		Axis:       AxisHorizontal,
		Margin:     marginOf(spacing),
		Gap:        gap,
		Alignment:  align,
		Placements: placements,
		Width:      width,
		Height:     height,
	}
}

// Distribute returns the leading offset and the extra space added to each
// gap for a main-axis alignment.
func Distribute(align Alignment, free, n int) (offset, extra int) {
	if free <= 0 || n == 0 {
		return 0, 0
	}
	switch align {
	case AlignCenter:
		return free / 2, 0
	case AlignEnd:
		return free, 0
	case AlignSpaceBetween:
		if n == 1 {
			return 0, 0
		}
		return 0, free / (n - 1)
	case AlignSpaceAround:
		return free / (2 * n), free / n
	case AlignSpaceEvenly:
		return free / (n + 1), free / (n + 1)
	default:
		return 0, 0
	}
}

func composeColumn(spacing model.Spacing, sizes []Size, align Alignment, available int) *Plan {
	// The column's token positions children across its width; distribution
	// tokens have no cross-axis meaning and collapse to center.
	switch align {
	case AlignSpaceBetween, AlignSpaceEvenly, AlignSpaceAround:
		align = AlignCenter
	}

	n := len(sizes)
	gap := spacing.Inner

	width := available
	for _, s := range sizes {
		width = max(width, s.Width)
	}

	placements := make([]Placement, 0, n)
	y := 0
	for i, s := range sizes {
		if i > 0 {
			y += gap
		}
		placements = append(placements, Placement{
			Index:  i,
			X:      CrossOffset(align, width, s.Width),
			Y:      y,
			Width:  s.Width,
			Height: s.Height,
			Row:    i,
		})
		y += s.Height
	}

	return &Plan{
		Axis:       AxisVertical,
		Margin:     marginOf(spacing),
		Gap:        gap,
		Alignment:  align,
		Placements: placements,
		Width:      width,
		Height:     y,
	}
}

// CrossOffset positions an item of size within extent on the cross axis.
func CrossOffset(align Alignment, extent, size int) int {
	switch align {
	case AlignCenter:
		return (extent - size) / 2
	case AlignEnd:
		return extent - size
	default:
		return 0
	}
}

func composeGrid(spacing model.Spacing, sizes []Size, columns, gap int, ratio float64, available int) *Plan {
	if columns < 1 {
		columns = 1
	}

	cellWidth := 0
	if available > 0 {
		cellWidth = (available - gap*(columns-1)) / columns
	}
	if cellWidth <= 0 {
		for _, s := range sizes {
			cellWidth = max(cellWidth, s.Width)
		}
	}
	cellHeight := int(math.Round(float64(cellWidth) / ratio))

	placements := make([]Placement, 0, len(sizes))
	rows := 0
	for i := range sizes {
		row, col := i/columns, i%columns
		rows = row + 1
		placements = append(placements, Placement{
			Index:  i,
			X:      col * (cellWidth + gap),
			Y:      row * (cellHeight + gap),
			Width:  cellWidth,
			Height: cellHeight,
			Row:    row,
			Column: col,
		})
	}

	usedColumns := min(columns, len(sizes))
	width := 0
	if usedColumns > 0 {
		width = usedColumns*cellWidth + (usedColumns-1)*gap
	}
	height := 0
	if rows > 0 {
		height = rows*cellHeight + (rows-1)*gap
	}

	return &Plan{
		Axis:        AxisGrid,
		Margin:      marginOf(spacing),
		Gap:         gap,
		Alignment:   AlignStart,
		Columns:     columns,
		AspectRatio: ratio,
		Placements:  placements,
		Width:       max(width, available),
		Height:      height,
	}
}

func composeList(spacing model.Spacing, sizes []Size, gap int, dividers bool, available int) *Plan {
	n := len(sizes)

	width := available
	for _, s := range sizes {
		width = max(width, s.Width)
	}

	placements := make([]Placement, 0, n)
	var divs []Divider
	y := 0
	for i, s := range sizes {
		placements = append(placements, Placement{
			Index:  i,
			Y:      y,
			Width:  width,
			Height: s.Height,
			Row:    i,
		})
		y += s.Height
		if i == n-1 {
			break
		}
		if dividers {
			divs = append(divs, Divider{After: i, Y: y + gap/2})
			y += DividerThickness
		}
		y += gap
	}

	return &Plan{
		Axis:       AxisVertical,
		Margin:     marginOf(spacing),
		Gap:        gap,
		Alignment:  AlignStart,
		Placements: placements,
		Dividers:   divs,
		Width:      width,
		Height:     y,
	}
}

func marginOf(s model.Spacing) model.Spacing {
	s.Inner = 0
	return s
}
