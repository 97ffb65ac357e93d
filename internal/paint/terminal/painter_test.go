package terminal

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/sdui/internal/model"
	"github.com/alexisbeaulieu97/sdui/internal/render"
	"github.com/alexisbeaulieu97/sdui/internal/theme"
)

func plainPainter(width int) *Painter {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return New(WithRenderer(r), WithWidth(width))
}

func renderNode(t *testing.T, p *Painter, node model.Node) *render.Instruction {
	t.Helper()
	d := render.NewDispatcher(render.WithMeasurer(p.Measurer()))
	in, err := d.Render(node, theme.DefaultContext().Select(false), 1)
	require.NoError(t, err)
	return in
}

func TestPaintScreen(t *testing.T) {
	t.Parallel()

	p := plainPainter(60)
	screen := &model.Screen{
		ID:           "s1",
		Title:        "Today",
		MotionScheme: model.MotionExpressive,
		Padding:      model.Padding{Horizontal: 16, Vertical: 16},
		Nodes:        model.Nodes{model.NewText("t1", "Hello there")},
	}
	out, err := render.NewDispatcher().RenderScreen(screen, theme.DefaultContext().Select(false))
	require.NoError(t, err)

	painted := p.Paint(out)
	assert.Contains(t, painted, "Today")
	assert.Contains(t, painted, "Hello there")
	for _, line := range strings.Split(painted, "\n") {
		assert.Equal(t, 60, lipgloss.Width(line))
	}

	assert.Empty(t, p.Paint(nil))
}

func TestPaintListDividers(t *testing.T) {
	t.Parallel()

	p := plainPainter(40)
	list := model.NewList("l",
		model.ListItem{ID: "a", Title: "Alpha", BadgeCount: 120},
		model.ListItem{ID: "b", Title: "Beta", Subtitle: "second", Trailing: "$5"},
		model.ListItem{ID: "c", Title: "Gamma", Icon: "★"},
	)

	painted := p.PaintNode(renderNode(t, p, list), 40)
	rules := 0
	for _, line := range strings.Split(painted, "\n") {
		if strings.Contains(line, "────") {
			rules++
		}
	}
	assert.Equal(t, 2, rules)
	assert.Contains(t, painted, "(99+)")
	assert.Contains(t, painted, "second")
	assert.Contains(t, painted, "$5")
	assert.False(t, strings.HasSuffix(strings.TrimSpace(painted), "─"))
}

func TestPaintRowArrangement(t *testing.T) {
	t.Parallel()

	p := plainPainter(40)

	tests := []struct {
		arrangement string
		leading     bool
		fills       bool
	}{
		{arrangement: "start", leading: false, fills: false},
		{arrangement: "end", leading: true, fills: true},
		{arrangement: "spaceBetween", leading: false, fills: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.arrangement, func(t *testing.T) {
			t.Parallel()
			row := model.NewRow("r", model.NewChip("a", "One"), model.NewChip("b", "Two"))
			row.Arrangement = tt.arrangement

			painted := p.PaintNode(renderNode(t, p, row), 40)
			middle := strings.Split(painted, "\n")[1]
			assert.Equal(t, tt.leading, strings.HasPrefix(middle, " "), middle)
			assert.Equal(t, tt.fills, lipgloss.Width(painted) == 40, middle)
		})
	}
}

func TestPaintLeaves(t *testing.T) {
	t.Parallel()

	p := plainPainter(40)

	t.Run("card", func(t *testing.T) {
		t.Parallel()
		card := model.NewCard("c", "Steps")
		card.Subtitle = "Today"
		card.Actions = []model.Action{{ID: "go", Text: "Open", Type: model.ActionPrimary}}
		painted := p.PaintNode(renderNode(t, p, card), 30)
		assert.Contains(t, painted, "Steps")
		assert.Contains(t, painted, "Today")
		assert.Contains(t, painted, "Open")
		assert.Equal(t, 30, lipgloss.Width(painted))
	})

	t.Run("progress", func(t *testing.T) {
		t.Parallel()
		painted := p.PaintNode(renderNode(t, p, model.NewProgress("p", 0.5)), 30)
		assert.Contains(t, painted, "50%")
		assert.Contains(t, painted, "█")
		assert.Equal(t, 30, lipgloss.Width(painted))
	})

	t.Run("pie chart shares", func(t *testing.T) {
		t.Parallel()
		chart := model.NewChart("ch", model.DataPoint{Label: "a", Value: 1}, model.DataPoint{Label: "b", Value: 3})
		chart.ChartType = "pie"
		painted := p.PaintNode(renderNode(t, p, chart), 30)
		assert.Contains(t, painted, "25%")
		assert.Contains(t, painted, "75%")
	})

	t.Run("line chart sparkline", func(t *testing.T) {
		t.Parallel()
		chart := model.NewChart("ch", model.DataPoint{Label: "a", Value: 1}, model.DataPoint{Label: "b", Value: 9})
		painted := p.PaintNode(renderNode(t, p, chart), 30)
		assert.Contains(t, painted, "▁█")
	})

	t.Run("navigation", func(t *testing.T) {
		t.Parallel()
		nav := model.NewNavigation("n",
			model.NavItem{ID: "h", Label: "Home", Icon: "h", SelectedIcon: "H", Selected: true},
			model.NavItem{ID: "c", Label: "Cart", Icon: "c", BadgeCount: 3},
		)
		painted := p.PaintNode(renderNode(t, p, nav), 40)
		assert.Contains(t, painted, "H Home")
		assert.Contains(t, painted, "(3)")
	})

	t.Run("fab", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, p.PaintNode(renderNode(t, p, model.NewFAB("f")), 0), "+")
	})
}

func TestMeasurerMatchesPaint(t *testing.T) {
	t.Parallel()

	p := plainPainter(80)
	chip := renderNode(t, p, model.NewChip("a", "Label"))
	w, h := lipgloss.Size(p.PaintNode(chip, 0))

	size := p.Measurer().Measure(chip)
	assert.Equal(t, w*CellWidth, size.Width)
	assert.Equal(t, h*CellHeight, size.Height)

	row := renderNode(t, p, model.NewRow("r", model.NewChip("a", "Label"), model.NewChip("b", "Label")))
	assert.Equal(t, 2*w*CellWidth+8, row.Layout.Width)
}

func TestUnitConversion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, cols(0))
	assert.Equal(t, 1, cols(8))
	assert.Equal(t, 2, cols(16))
	assert.Equal(t, 1, lines(16))
	assert.Equal(t, 2, lines(24))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
}
