package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/sdui/internal/layout"
	"github.com/alexisbeaulieu97/sdui/internal/model"
	"github.com/alexisbeaulieu97/sdui/internal/style"
	"github.com/alexisbeaulieu97/sdui/internal/theme"
	sduierrors "github.com/alexisbeaulieu97/sdui/pkg/errors"
)

// carousel stands in for a variant added to the schema after this dispatcher.
type carousel struct {
	model.Base
}

func (*carousel) Kind() model.Kind { return model.Kind(99) }

func lightTheme() *theme.Theme { return theme.DefaultContext().Select(false) }

func sampleTree() model.Node {
	card := model.NewCard("c1", "Steps")
	card.Subtitle = "Today"
	card.Style.BackgroundColor = "#ZZZZZZ"
	card.Actions = []model.Action{{ID: "a1", Text: "Open", Type: model.ActionPrimary}}

	list := model.NewList("l1",
		model.ListItem{ID: "i1", Title: "One", BadgeCount: 3},
		model.ListItem{ID: "i2", Title: "Two", Subtitle: "second"},
		model.ListItem{ID: "i3", Title: "Three", BadgeCount: 120},
	)

	return model.NewColumn("root",
		card,
		model.NewRow("r1", model.NewChip("ch1", "Tag"), model.NewButton("b1", "Go")),
		model.NewGrid("g1", model.NewImage("img1"), model.NewProgress("p1", 0.42)),
		list,
		model.NewChart("ch", model.DataPoint{Label: "a", Value: 1}, model.DataPoint{Label: "b", Value: 2}),
		model.NewNavigation("nav", model.NavItem{ID: "n1", Label: "Home", Icon: "h", SelectedIcon: "H", Selected: true}),
		model.NewFAB("fab"),
	)
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	d := NewDispatcher()
	th := lightTheme()
	node := sampleTree()

	first, err := d.Render(node, th, 1)
	require.NoError(t, err)
	second, err := d.Render(node, th, 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestRenderDoesNotMutateNode(t *testing.T) {
	t.Parallel()

	node := sampleTree()
	before, err := json.Marshal(node)
	require.NoError(t, err)

	_, err = NewDispatcher().Render(node, lightTheme(), 1)
	require.NoError(t, err)

	after, err := json.Marshal(node)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestRenderUnknownKindFails(t *testing.T) {
	t.Parallel()

	d := NewDispatcher()

	_, err := d.Render(&carousel{Base: model.Base{NodeID: "x"}}, lightTheme(), 1)
	var kindErr *sduierrors.UnknownComponentKindError
	require.ErrorAs(t, err, &kindErr)
	assert.Equal(t, "x", kindErr.NodeID)

	t.Run("nested unknown aborts the whole pass", func(t *testing.T) {
		t.Parallel()
		tree := model.NewColumn("c", model.NewText("t", "ok"), &carousel{Base: model.Base{NodeID: "y"}})
		in, err := d.Render(tree, lightTheme(), 1)
		require.ErrorAs(t, err, &kindErr)
		assert.Nil(t, in)
	})
}

func nestedColumns(depth int) model.Node {
	var node model.Node = model.NewText("leaf", "x")
	for i := 1; i < depth; i++ {
		node = model.NewColumn("c", node)
	}
	return node
}

func TestRenderDepthBound(t *testing.T) {
	t.Parallel()

	d := NewDispatcher()

	_, err := d.Render(nestedColumns(64), lightTheme(), 1)
	require.NoError(t, err)

	_, err = d.Render(nestedColumns(65), lightTheme(), 1)
	var depthErr *sduierrors.TreeTooDeepError
	require.ErrorAs(t, err, &depthErr)
	assert.Equal(t, 65, depthErr.Depth)
	assert.Equal(t, DefaultMaxDepth, depthErr.Limit)
	assert.True(t, sduierrors.IsFatal(err))

	t.Run("configurable bound", func(t *testing.T) {
		t.Parallel()
		shallow := NewDispatcher(WithMaxDepth(3))
		_, err := shallow.Render(nestedColumns(3), lightTheme(), 1)
		require.NoError(t, err)
		_, err = shallow.Render(nestedColumns(4), lightTheme(), 1)
		require.ErrorAs(t, err, &depthErr)
	})
}

func TestRenderScreenMinimalDocument(t *testing.T) {
	t.Parallel()

	th := lightTheme()
	screen := &model.Screen{
		ID:           "s1",
		MotionScheme: model.MotionExpressive,
		Nodes:        model.Nodes{model.NewText("t1", "Hi")},
	}

	out, err := NewDispatcher().RenderScreen(screen, th)
	require.NoError(t, err)
	require.Len(t, out.Nodes, 1)

	leaf := out.Nodes[0]
	assert.Equal(t, "t1", leaf.ID)
	assert.Equal(t, "text", leaf.KindName)
	assert.Empty(t, leaf.Children)
	assert.Nil(t, leaf.Layout)

	want, err := style.ParseHex(th.Color(theme.SlotOnBackground))
	require.NoError(t, err)
	assert.Equal(t, want, leaf.Style.Text)
	assert.Equal(t, TextContent{Text: "Hi", Alignment: model.AlignStart}, leaf.Content)

	bg, err := style.ParseHex(th.Color(theme.SlotBackground))
	require.NoError(t, err)
	assert.Equal(t, bg, out.Background)
	assert.Equal(t, th.Motion(), out.Motion)
}

func TestRenderScreenRecordsFallbacks(t *testing.T) {
	t.Parallel()

	screen := &model.Screen{
		ID:              "s",
		BackgroundColor: "#12",
		MotionScheme:    model.MotionStandard,
		Nodes:           model.Nodes{sampleTree()},
	}

	out, err := NewDispatcher().RenderScreen(screen, lightTheme())
	require.NoError(t, err)

	var attrs []string
	for _, fb := range out.Fallbacks {
		attrs = append(attrs, fb.Attribute)
	}
	assert.Equal(t, []string{"backgroundColor", "c1.fill"}, attrs)
}

func TestRenderLeafDetails(t *testing.T) {
	t.Parallel()

	th := lightTheme()
	root, err := NewDispatcher().Render(sampleTree(), th, 1)
	require.NoError(t, err)

	byID := map[string]*Instruction{}
	root.Walk(func(in *Instruction) { byID[in.ID] = in })

	t.Run("card falls back to surface container on bad color", func(t *testing.T) {
		card := byID["c1"]
		assert.Equal(t, style.Color(0xFFF3EDF7), card.Style.Fill)
		require.Len(t, card.Style.Fallbacks, 1)
		assert.Equal(t, th.Elevation().Level1, card.Shape.Elevation)
		content := card.Content.(CardContent)
		assert.Equal(t, style.Color(0xFF6750A4), content.Actions[0].Style.Fill)
	})

	t.Run("list badges and dividers", func(t *testing.T) {
		list := byID["l1"]
		content := list.Content.(ListContent)
		require.NotNil(t, content.Items[0].Badge)
		assert.Equal(t, "3", content.Items[0].Badge.Label)
		assert.Nil(t, content.Items[1].Badge)
		assert.Equal(t, "99+", content.Items[2].Badge.Label)
		assert.Equal(t, th.Sizes().ListItemTwoLine, content.Items[1].Height)
		require.NotNil(t, list.Layout)
		assert.Len(t, list.Layout.Dividers, 2)
	})

	t.Run("progress percentage", func(t *testing.T) {
		assert.Equal(t, "42%", byID["p1"].Content.(ProgressContent).Percentage)
	})

	t.Run("chart palette cycles", func(t *testing.T) {
		points := byID["ch"].Content.(ChartContent).Points
		assert.Equal(t, style.Color(0xFF6750A4), points[0].Color)
		assert.Equal(t, style.Color(0xFF7D5260), points[1].Color)
	})

	t.Run("navigation selected icon", func(t *testing.T) {
		nav := byID["nav"].Content.(NavigationContent)
		assert.Equal(t, "H", nav.Items[0].Icon)
		assert.Equal(t, style.Color(0xFF1D192B), nav.Items[0].Color)
		assert.Equal(t, style.Color(0xFFE8DEF8), nav.Indicator)
	})

	t.Run("fab uses primary container", func(t *testing.T) {
		fab := byID["fab"]
		assert.Equal(t, style.Color(0xFFEADDFF), fab.Style.Fill)
		assert.Equal(t, th.Sizes().FABRegular, fab.Content.(FABContent).Dimension)
	})

	t.Run("grid and row have plans", func(t *testing.T) {
		require.NotNil(t, byID["g1"].Layout)
		assert.Equal(t, 2, byID["g1"].Layout.Columns)
		require.NotNil(t, byID["r1"].Layout)
		assert.Len(t, byID["r1"].Layout.Placements, 2)
		assert.Equal(t, 2, byID["r1"].Depth)
	})
}

func TestRenderDisabledButton(t *testing.T) {
	t.Parallel()

	b := model.NewButton("b", "Nope")
	b.Style.Enabled = false

	in, err := NewDispatcher().Render(b, lightTheme(), 1)
	require.NoError(t, err)
	assert.Equal(t, style.DisabledContentAlpha, in.Style.Text.Alpha())
	assert.False(t, in.Content.(ButtonContent).Enabled)
}

func TestRenderWithoutTheme(t *testing.T) {
	t.Parallel()

	in, err := NewDispatcher().Render(model.NewText("t", "x"), nil, 1)
	require.NoError(t, err)
	assert.Equal(t, style.Color(0xFF000000), in.Style.Text)
}

type fixedMeasurer struct{}

func (fixedMeasurer) Measure(*Instruction) layout.Size { return layout.Size{Width: 7, Height: 3} }

func (fixedMeasurer) MeasureListItem(ListItemContent, theme.TextPreset) layout.Size {
	return layout.Size{Width: 7, Height: 3}
}

func TestRenderUsesInjectedMeasurer(t *testing.T) {
	t.Parallel()

	d := NewDispatcher(WithMeasurer(fixedMeasurer{}))
	in, err := d.Render(model.NewRow("r", model.NewText("a", "a"), model.NewText("b", "b")), lightTheme(), 1)
	require.NoError(t, err)
	assert.Equal(t, 7+8+7, in.Layout.Width)
	assert.Equal(t, 3, in.Layout.Height)
}
