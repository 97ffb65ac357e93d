// Package terminal paints render instructions as styled terminal text.
//
// Layout units are converted to cells with CellWidth and CellHeight. The
// painter also implements render.Measurer so the compositor can be fed
// intrinsic sizes that match what will actually be drawn.
package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/sdui/internal/layout"
	"github.com/alexisbeaulieu97/sdui/internal/model"
	"github.com/alexisbeaulieu97/sdui/internal/render"
	"github.com/alexisbeaulieu97/sdui/internal/style"
)

const (
	// CellWidth is the number of layout units in one terminal column.
	CellWidth = 8
	// CellHeight is the number of layout units in one terminal line.
	CellHeight = 16
	// DefaultWidth is used when the terminal width is unknown.
	DefaultWidth = 80
)

// Painter renders instruction trees. It holds no per-screen state and may be
// shared between goroutines.
type Painter struct {
	r     *lipgloss.Renderer
	width int
}

// Option configures a Painter.
type Option func(*Painter)

// WithWidth sets the paint width in cells.
func WithWidth(cells int) Option {
	return func(p *Painter) {
		if cells > 0 {
			p.width = cells
		}
	}
}

// WithRenderer sets the lipgloss renderer, which decides the color profile.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(p *Painter) {
		if r != nil {
			p.r = r
		}
	}
}

// New creates a Painter.
func New(opts ...Option) *Painter {
	p := &Painter{r: lipgloss.DefaultRenderer(), width: DefaultWidth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Width returns the paint width in cells.
func (p *Painter) Width() int { return p.width }

// frame carries the colors inherited from enclosing instructions.
type frame struct {
	bg style.Color
	fg style.Color
}

// Paint renders a whole screen at the painter's width.
func (p *Painter) Paint(screen *render.ScreenInstruction) string {
	if screen == nil {
		return ""
	}

	f := frame{bg: screen.Background, fg: screen.Foreground}
	padX, padY := cols(screen.Padding.Horizontal), lines(screen.Padding.Vertical)
	inner := max(p.width-2*padX, 1)

	blocks := make([]string, 0, len(screen.Nodes)+1)
	if screen.Title != "" {
		title := p.r.NewStyle().Bold(true).Foreground(p.color(screen.Foreground, f))
		blocks = append(blocks, title.Render(truncate(screen.Title, inner))+"\n")
	}
	for _, node := range screen.Nodes {
		blocks = append(blocks, p.node(node, inner, f))
	}

	return p.r.NewStyle().
		Width(p.width).
		Padding(padY, padX).
		Background(p.color(screen.Background, f)).
		Foreground(p.color(screen.Foreground, f)).
		Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))
}

// PaintNode renders a single instruction at width cells. A width of zero
// paints at the instruction's natural size.
func (p *Painter) PaintNode(in *render.Instruction, width int) string {
	return p.node(in, width, frame{bg: 0xFFFFFFFF, fg: 0xFF000000})
}

func (p *Painter) node(in *render.Instruction, width int, f frame) string {
	if in == nil {
		return ""
	}

	m := in.Margin
	inner := width
	if width > 0 {
		inner = max(width-cols(m.Start)-cols(m.End), 1)
	}

	var body string
	switch {
	case in.Kind == model.KindList:
		body = p.list(in, inner, f)
	case in.Layout != nil:
		body = p.container(in, inner, f)
	default:
		body = p.leaf(in, inner, f)
	}

	if m == (model.Spacing{}) {
		return body
	}
	return p.r.NewStyle().
		Margin(lines(m.Top), cols(m.End), lines(m.Bottom), cols(m.Start)).
		Render(body)
}

func (p *Painter) container(in *render.Instruction, width int, f frame) string {
	plan := in.Layout
	if in.Style.Fill.Alpha() == 0xFF && in.Kind == model.KindGrid {
		f.bg = in.Style.Fill
	}

	switch plan.Axis {
	case layout.AxisHorizontal:
		return p.row(in, width, f)
	case layout.AxisGrid:
		return p.grid(in, width, f)
	default:
		return p.column(in, width, f)
	}
}

func (p *Painter) column(in *render.Instruction, width int, f frame) string {
	plan := in.Layout
	gap := lines(plan.Gap)

	blocks := make([]string, 0, len(in.Children))
	for i, child := range in.Children {
		if i > 0 && gap > 0 {
			blocks = append(blocks, strings.Repeat("\n", gap-1))
		}
		childWidth := 0
		if stretches(child) {
			childWidth = width
		}
		block := p.node(child, childWidth, f)
		if width > 0 {
			w := lipgloss.Width(block)
			if w < width {
				block = indent(block, layout.CrossOffset(plan.Alignment, width, w))
			}
		}
		blocks = append(blocks, block)
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (p *Painter) row(in *render.Instruction, width int, f frame) string {
	plan := in.Layout
	gap := cols(plan.Gap)

	blocks := make([]string, len(in.Children))
	content := 0
	for i, child := range in.Children {
		blocks[i] = p.node(child, 0, f)
		content += lipgloss.Width(blocks[i])
	}
	if n := len(blocks); n > 1 {
		content += gap * (n - 1)
	}

	if width > 0 && content > width {
		// Not enough room side by side.
		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	}

	free := 0
	if width > 0 {
		free = width - content
	}
	offset, extra := layout.Distribute(plan.Alignment, free, len(blocks))

	parts := make([]string, 0, 2*len(blocks)+1)
	if offset > 0 {
		parts = append(parts, strings.Repeat(" ", offset))
	}
	for i, block := range blocks {
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", gap+extra))
		}
		parts = append(parts, block)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (p *Painter) grid(in *render.Instruction, width int, f frame) string {
	plan := in.Layout
	columns := max(plan.Columns, 1)
	gapX, gapY := cols(plan.Gap), lines(plan.Gap)

	cell := 0
	if width > 0 {
		cell = (width - gapX*(columns-1)) / columns
	}
	if cell <= 0 {
		for _, child := range in.Children {
			cell = max(cell, lipgloss.Width(p.node(child, 0, f)))
		}
	}

	var rows []string
	for start := 0; start < len(in.Children); start += columns {
		end := min(start+columns, len(in.Children))
		parts := make([]string, 0, 2*columns)
		for i := start; i < end; i++ {
			if i > start {
				parts = append(parts, strings.Repeat(" ", gapX))
			}
			parts = append(parts, p.node(in.Children[i], cell, f))
		}
		if len(rows) > 0 && gapY > 0 {
			rows = append(rows, strings.Repeat("\n", gapY-1))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}

	block := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if in.Style.Fill.Alpha() == 0xFF {
		block = p.r.NewStyle().Background(p.color(in.Style.Fill, f)).Render(block)
	}
	return block
}

// stretches reports whether child fills the width of a column.
func stretches(in *render.Instruction) bool {
	switch in.Kind {
	case model.KindCard, model.KindList, model.KindGrid, model.KindColumn, model.KindRow,
		model.KindChart, model.KindProgress, model.KindNavigation:
		return true
	default:
		return false
	}
}

// color converts c to a terminal color, compositing translucent colors over
// the inherited background.
func (p *Painter) color(c style.Color, f frame) lipgloss.Color {
	if c.Alpha() < 0xFF {
		c = c.Over(f.bg)
	}
	return lipgloss.Color(c.RGBHex())
}

func cols(units int) int {
	if units <= 0 {
		return 0
	}
	return (units + CellWidth/2) / CellWidth
}

func lines(units int) int {
	if units <= 0 {
		return 0
	}
	return (units + CellHeight/2) / CellHeight
}

func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

func indent(block string, n int) string {
	if n <= 0 {
		return block
	}
	pad := strings.Repeat(" ", n)
	rows := strings.Split(block, "\n")
	for i := range rows {
		rows[i] = pad + rows[i]
	}
	return strings.Join(rows, "\n")
}
