package terminal

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/sdui/internal/model"
	"github.com/alexisbeaulieu97/sdui/internal/render"
	"github.com/alexisbeaulieu97/sdui/internal/style"
	"github.com/alexisbeaulieu97/sdui/internal/theme"
)

const (
	imageWidth = 16
	chartWidth = 30
	barWidth   = 24
)

var sparkTicks = []rune("▁▂▃▄▅▆▇█")

func (p *Painter) leaf(in *render.Instruction, width int, f frame) string {
	switch c := in.Content.(type) {
	case render.TextContent:
		return p.text(in, c, width, f)
	case render.CardContent:
		return p.card(in, c, width, f)
	case render.ButtonContent:
		return p.button(in, c, f)
	case render.ImageContent:
		return p.image(in, c, width, f)
	case render.ChartContent:
		return p.chart(in, c, width, f)
	case render.ProgressContent:
		return p.progress(in, c, width, f)
	case render.ChipContent:
		return p.chip(in, c, f)
	case render.NavigationContent:
		return p.navigation(in, c, width, f)
	case render.FABContent:
		return p.fab(in, c, f)
	default:
		return ""
	}
}

func (p *Painter) typography(st lipgloss.Style, typo theme.TextPreset) lipgloss.Style {
	if typo.Weight == "bold" || typo.Size >= 28 {
		return st.Bold(true)
	}
	return st
}

func (p *Painter) text(in *render.Instruction, c render.TextContent, width int, f frame) string {
	st := p.typography(p.r.NewStyle().Foreground(p.color(in.Style.Text, f)), in.Style.Typography)
	if width <= 0 {
		return st.Render(c.Text)
	}
	return st.Width(width).Align(position(c.Alignment)).Render(c.Text)
}

func (p *Painter) card(in *render.Instruction, c render.CardContent, width int, f frame) string {
	inner := f
	if in.Style.Fill.Alpha() > 0 {
		inner.bg = in.Style.Fill.Over(f.bg)
	}

	title := p.r.NewStyle().Bold(true).Foreground(p.color(in.Style.Text, inner))
	support := p.r.NewStyle().Foreground(p.color(c.Supporting.Text, inner))

	rows := []string{title.Render(c.Title)}
	if c.Subtitle != "" {
		rows = append(rows, support.Render(c.Subtitle))
	}
	if c.Body != "" {
		rows = append(rows, support.Render(c.Body))
	}
	if len(c.Actions) > 0 {
		actions := make([]string, 0, 2*len(c.Actions))
		for i, action := range c.Actions {
			if i > 0 {
				actions = append(actions, " ")
			}
			actions = append(actions, p.pill(action.Text, action.Style, inner))
		}
		rows = append(rows, "", lipgloss.JoinHorizontal(lipgloss.Top, actions...))
	}

	box := p.r.NewStyle().
		Background(p.color(in.Style.Fill, f)).
		Padding(lines(c.Padding.Vertical)/2, cols(c.Padding.Horizontal)/2).
		Border(border(in.Shape), true).
		BorderForeground(p.color(in.Style.Border, f))
	if c.Variant == model.CardFilled && in.Shape.StrokeWidth == 0 {
		box = box.Border(lipgloss.HiddenBorder(), true)
	}
	if width > 2 {
		box = box.Width(width - 2)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (p *Painter) pill(text string, st style.Concrete, f frame) string {
	return p.r.NewStyle().
		Background(p.color(st.Fill, f)).
		Foreground(p.color(st.Text, f)).
		Padding(0, 1).
		Render(text)
}

func (p *Painter) button(in *render.Instruction, c render.ButtonContent, f frame) string {
	label := c.Text
	if c.Icon != "" {
		label = c.Icon + " " + label
	}

	st := p.r.NewStyle().
		Background(p.color(in.Style.Fill, f)).
		Foreground(p.color(in.Style.Text, f)).
		Padding(0, max(cols(c.Padding.Horizontal)/2, 1))
	if c.Variant == model.ButtonOutlined && in.Shape.StrokeWidth > 0 {
		st = st.Border(border(in.Shape), true).BorderForeground(p.color(in.Style.Border, f))
	}
	if !c.Enabled {
		st = st.Faint(true)
	}
	return st.Render(label)
}

func (p *Painter) image(in *render.Instruction, c render.ImageContent, width int, f frame) string {
	w := imageWidth
	if width > 2 {
		w = width - 2
	}
	ratio := c.AspectRatio
	if ratio <= 0 {
		ratio = 1
	}
	// A cell is roughly twice as tall as it is wide.
	h := max(int(math.Round(float64(w)/ratio/2)), 1)

	return p.r.NewStyle().
		Width(w).
		Height(h).
		Align(lipgloss.Center).
		AlignVertical(lipgloss.Center).
		Background(p.color(in.Style.Fill, f)).
		Foreground(p.color(in.Style.Text, f)).
		Border(border(in.Shape), true).
		BorderForeground(p.color(in.Style.Border, f)).
		Render(c.Placeholder)
}

func (p *Painter) chart(in *render.Instruction, c render.ChartContent, width int, f frame) string {
	var rows []string
	if c.Title != "" {
		rows = append(rows, p.r.NewStyle().Bold(true).Foreground(p.color(in.Style.Text, f)).Render(c.Title))
	}
	if len(c.Points) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	w := chartWidth
	if width > 0 {
		w = width
	}

	if c.ChartType == model.ChartLine {
		rows = append(rows, p.sparkline(c.Points, f))
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	labelWidth, peak, total := 0, 0.0, 0.0
	for _, pt := range c.Points {
		labelWidth = max(labelWidth, runewidth.StringWidth(pt.Label))
		peak = math.Max(peak, pt.Value)
		total += math.Max(pt.Value, 0)
	}
	bars := max(min(w-labelWidth-8, barWidth), 1)
	share := c.ChartType == model.ChartPie || c.ChartType == model.ChartDonut

	for _, pt := range c.Points {
		ratio, suffix := 0.0, fmt.Sprintf("%g", pt.Value)
		if share && total > 0 {
			ratio = math.Max(pt.Value, 0) / total
			suffix = fmt.Sprintf("%d%%", int(math.Round(ratio*100)))
		} else if peak > 0 {
			ratio = math.Max(pt.Value, 0) / peak
		}
		n := int(math.Round(ratio * float64(bars)))
		bar := p.r.NewStyle().Foreground(p.color(pt.Color, f)).Render(strings.Repeat("█", n))
		label := runewidth.FillRight(pt.Label, labelWidth)
		rows = append(rows, fmt.Sprintf("%s %s %s", label, bar, suffix))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (p *Painter) sparkline(points []render.ChartPoint, f frame) string {
	lo, hi := points[0].Value, points[0].Value
	for _, pt := range points {
		lo, hi = math.Min(lo, pt.Value), math.Max(hi, pt.Value)
	}

	var b strings.Builder
	for _, pt := range points {
		idx := len(sparkTicks) - 1
		if hi > lo {
			idx = int(math.Round((pt.Value - lo) / (hi - lo) * float64(len(sparkTicks)-1)))
		}
		b.WriteRune(sparkTicks[idx])
	}
	return p.r.NewStyle().Foreground(p.color(points[0].Color, f)).Render(b.String())
}

func (p *Painter) progress(in *render.Instruction, c render.ProgressContent, width int, f frame) string {
	var rows []string
	if c.Label != "" {
		rows = append(rows, p.r.NewStyle().Foreground(p.color(in.Style.Text, f)).Render(c.Label))
	}

	if c.Style == model.ProgressCircular {
		glyphs := []string{"○", "◔", "◑", "◕", "●"}
		glyph := glyphs[int(math.Round(c.Value*float64(len(glyphs)-1)))]
		line := p.r.NewStyle().Foreground(p.color(in.Style.Fill, f)).Render(glyph)
		if c.Percentage != "" {
			line += " " + c.Percentage
		}
		return lipgloss.JoinVertical(lipgloss.Left, append(rows, line)...)
	}

	w := chartWidth
	if width > 0 {
		w = width
	}
	if c.Percentage != "" {
		w -= runewidth.StringWidth(c.Percentage) + 1
	}

	bar := progress.New(
		progress.WithSolidFill(in.Style.Fill.Over(f.bg).RGBHex()),
		progress.WithoutPercentage(),
		progress.WithColorProfile(p.r.ColorProfile()),
		progress.WithWidth(max(w, 1)),
	)
	bar.EmptyColor = in.Style.Border.Over(f.bg).RGBHex()

	line := bar.ViewAs(c.Value)
	if c.Percentage != "" {
		line += " " + c.Percentage
	}
	return lipgloss.JoinVertical(lipgloss.Left, append(rows, line)...)
}

func (p *Painter) chip(in *render.Instruction, c render.ChipContent, f frame) string {
	label := c.Text
	if c.Icon != "" {
		label = c.Icon + " " + label
	}
	if c.Selected {
		label = "✓ " + label
	}
	return p.r.NewStyle().
		Background(p.color(in.Style.Fill, f)).
		Foreground(p.color(in.Style.Text, f)).
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(p.color(in.Style.Border, f)).
		Padding(0, 1).
		Render(label)
}

func (p *Painter) navigation(in *render.Instruction, c render.NavigationContent, width int, f frame) string {
	bar := f
	bar.bg = in.Style.Fill.Over(f.bg)

	items := make([]string, len(c.Items))
	content := 0
	for i, item := range c.Items {
		label := item.Icon + " " + item.Label
		if item.Badge != nil {
			label += " " + p.r.NewStyle().Bold(true).Render("("+item.Badge.Label+")")
		}
		st := p.r.NewStyle().Foreground(p.color(item.Color, bar)).Padding(0, 1)
		if item.Selected {
			st = st.Background(p.color(c.Indicator, bar)).Bold(true)
		}
		items[i] = st.Render(label)
		content += lipgloss.Width(items[i])
	}

	gap := 1
	if width > 0 && len(items) > 1 {
		gap = max((width-content)/(len(items)+1), 1)
	}
	row := strings.Repeat(" ", gap) + strings.Join(items, strings.Repeat(" ", gap))

	st := p.r.NewStyle().Background(p.color(in.Style.Fill, f))
	if width > 0 {
		st = st.Width(width)
	}
	if c.Placement == model.PlacementBottom {
		st = st.Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(p.color(in.Style.Border, f))
	}
	return st.Render(row)
}

func (p *Painter) fab(in *render.Instruction, c render.FABContent, f frame) string {
	label := c.Icon
	if c.Text != "" {
		label += " " + c.Text
	}
	padY, padX := 0, 1
	if c.Size == model.FABLarge {
		padY, padX = 1, 3
	}
	return p.r.NewStyle().
		Background(p.color(in.Style.Fill, f)).
		Foreground(p.color(in.Style.Text, f)).
		Bold(true).
		Padding(padY, padX).
		Render(label)
}

func border(shape render.Shape) lipgloss.Border {
	switch {
	case shape.StrokeWidth > 1 || shape.Elevation >= 3:
		return lipgloss.ThickBorder()
	case shape.CornerRadius > 0:
		return lipgloss.RoundedBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

func position(alignment string) lipgloss.Position {
	switch alignment {
	case model.AlignCenter:
		return lipgloss.Center
	case model.AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
