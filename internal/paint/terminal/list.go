package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/sdui/internal/render"
)

func (p *Painter) list(in *render.Instruction, width int, f frame) string {
	c, ok := in.Content.(render.ListContent)
	if !ok {
		return ""
	}

	inner := f
	if in.Style.Fill.Alpha() > 0 {
		inner.bg = in.Style.Fill.Over(f.bg)
	}

	rowWidth := width
	if rowWidth <= 0 {
		for _, item := range c.Items {
			rowWidth = max(rowWidth, itemWidth(item))
		}
		rowWidth += 2 * cols(c.ItemPadding.Horizontal)
	}

	dividerAfter := map[int]bool{}
	if in.Layout != nil {
		for _, d := range in.Layout.Dividers {
			dividerAfter[d.After] = true
		}
	}

	rule := p.r.NewStyle().Foreground(p.color(in.Style.Border, inner)).Render(strings.Repeat("─", rowWidth))

	rows := make([]string, 0, 2*len(c.Items))
	for i, item := range c.Items {
		rows = append(rows, p.listItem(in, c, item, rowWidth, inner))
		if dividerAfter[i] {
			rows = append(rows, rule)
		}
	}

	return p.r.NewStyle().
		Background(p.color(in.Style.Fill, f)).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (p *Painter) listItem(in *render.Instruction, c render.ListContent, item render.ListItemContent, width int, f frame) string {
	padX := cols(c.ItemPadding.Horizontal)
	avail := max(width-2*padX, 1)

	lead := item.Title
	if item.Icon != "" {
		lead = item.Icon + " " + lead
	}

	var tail string
	if item.Badge != nil {
		tail = p.r.NewStyle().Bold(true).Foreground(p.color(in.Style.Text, f)).Render("(" + item.Badge.Label + ")")
	}
	if item.Trailing != "" {
		if tail != "" {
			tail += " "
		}
		tail += p.r.NewStyle().Foreground(p.color(c.Supporting.Text, f)).Render(item.Trailing)
	}

	titleRoom := avail
	if tail != "" {
		titleRoom = max(avail-lipgloss.Width(tail)-1, 1)
	}
	title := p.r.NewStyle().Foreground(p.color(in.Style.Text, f)).Render(truncate(lead, titleRoom))
	first := title
	if tail != "" {
		gap := max(avail-lipgloss.Width(title)-lipgloss.Width(tail), 1)
		first = title + strings.Repeat(" ", gap) + tail
	}

	rows := []string{first}
	if item.Subtitle != "" {
		indentBy := 0
		if item.Icon != "" {
			indentBy = runewidth.StringWidth(item.Icon) + 1
		}
		sub := truncate(item.Subtitle, max(avail-indentBy, 1))
		rows = append(rows, strings.Repeat(" ", indentBy)+p.r.NewStyle().Foreground(p.color(c.Supporting.Text, f)).Render(sub))
	}

	return p.r.NewStyle().
		Padding(0, padX).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func itemWidth(item render.ListItemContent) int {
	w := runewidth.StringWidth(item.Title)
	if item.Icon != "" {
		w += runewidth.StringWidth(item.Icon) + 1
	}
	if item.Badge != nil {
		w += runewidth.StringWidth(item.Badge.Label) + 3
	}
	if item.Trailing != "" {
		w += runewidth.StringWidth(item.Trailing) + 1
	}
	if item.Subtitle != "" {
		w = max(w, runewidth.StringWidth(item.Subtitle))
	}
	return w
}
