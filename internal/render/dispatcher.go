// Package render walks a component tree and emits paint-ready instructions.
//
// Rendering is a pure function of (node, theme): the dispatcher keeps no
// state between calls, performs no I/O and never mutates its inputs, so the
// same pair always yields an identical instruction tree. Structural problems
// (an unknown variant, nesting past the depth bound) abort the whole pass;
// malformed colors are absorbed by the style resolver and recorded on the
// instruction instead.
package render

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/alexisbeaulieu97/sdui/internal/layout"
	"github.com/alexisbeaulieu97/sdui/internal/model"
	"github.com/alexisbeaulieu97/sdui/internal/style"
	"github.com/alexisbeaulieu97/sdui/internal/theme"
	sduierrors "github.com/alexisbeaulieu97/sdui/pkg/errors"
)

// DefaultMaxDepth bounds recursion. Top-level screen nodes are at depth 1.
const DefaultMaxDepth = 64

// Measurer supplies intrinsic sizes of rendered children to the compositor.
type Measurer interface {
	Measure(in *Instruction) layout.Size
	MeasureListItem(item ListItemContent, typography theme.TextPreset) layout.Size
}

// Dispatcher renders nodes. The zero value is not usable; use NewDispatcher.
type Dispatcher struct {
	maxDepth int
	measurer Measurer
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMaxDepth overrides the nesting bound.
func WithMaxDepth(depth int) Option {
	return func(d *Dispatcher) {
		if depth > 0 {
			d.maxDepth = depth
		}
	}
}

// WithMeasurer replaces the size estimator used for compositor input.
func WithMeasurer(m Measurer) Option {
	return func(d *Dispatcher) {
		if m != nil {
			d.measurer = m
		}
	}
}

// NewDispatcher builds a Dispatcher.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{maxDepth: DefaultMaxDepth, measurer: Estimator{}}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// MaxDepth returns the configured nesting bound.
func (d *Dispatcher) MaxDepth() int { return d.maxDepth }

// RenderScreen renders every top-level node at depth 1. On any structural
// error nothing is returned.
func (d *Dispatcher) RenderScreen(screen *model.Screen, th *theme.Theme) (*ScreenInstruction, error) {
	if screen == nil {
		return nil, sduierrors.NewSchemaError("screen", "screen is nil", nil)
	}

	bg := style.Resolve(style.Partial{Fill: screen.BackgroundColor}, th, style.RoleScreen)

	out := &ScreenInstruction{
		ID:           screen.ID,
		Title:        screen.Title,
		Background:   bg.Fill,
		Foreground:   bg.Text,
		MotionScheme: token(screen.MotionScheme, model.MotionExpressive, model.MotionStandard, model.MotionExpressive),
		Padding:      screen.Padding,
		Nodes:        make([]*Instruction, 0, len(screen.Nodes)),
	}
	if th != nil {
		out.Motion = th.Motion()
		out.IsDark = th.IsDark()
	}
	for _, fb := range bg.Fallbacks {
		fb.Attribute = "backgroundColor"
		out.Fallbacks = append(out.Fallbacks, fb)
	}

	for _, node := range screen.Nodes {
		in, err := d.Render(node, th, 1)
		if err != nil {
			return nil, err
		}
		out.Nodes = append(out.Nodes, in)
	}

	out.Walk(func(in *Instruction) {
		for _, fb := range in.Style.Fallbacks {
			fb.Attribute = in.ID + "." + fb.Attribute
			out.Fallbacks = append(out.Fallbacks, fb)
		}
	})

	return out, nil
}

// Render produces the instruction tree for node. depth is the node's own
// nesting level; children are rendered at depth+1.
func (d *Dispatcher) Render(node model.Node, th *theme.Theme, depth int) (*Instruction, error) {
	if node == nil {
		return nil, sduierrors.NewSchemaError("node", "node is nil", nil)
	}
	if depth > d.maxDepth {
		return nil, sduierrors.NewTreeTooDeepError(node.ID(), depth, d.maxDepth)
	}

	switch n := node.(type) {
	case *model.Card:
		return d.renderCard(n, th, depth), nil
	case *model.Button:
		return d.renderButton(n, th, depth), nil
	case *model.Text:
		return d.renderText(n, th, depth), nil
	case *model.List:
		return d.renderList(n, th, depth), nil
	case *model.Grid:
		st := style.Resolve(style.Partial{Fill: n.Style.BackgroundColor}, th, style.RoleGrid)
		return d.renderContainer(n, n.Items, st, Shape{CornerRadius: n.Style.CornerRadius}, th, depth)
	case *model.Column:
		st := style.Resolve(style.Partial{}, th, style.RoleContainer)
		return d.renderContainer(n, n.Components, st, Shape{}, th, depth)
	case *model.Row:
		st := style.Resolve(style.Partial{}, th, style.RoleContainer)
		return d.renderContainer(n, n.Components, st, Shape{}, th, depth)
	case *model.Image:
		return d.renderImage(n, th, depth), nil
	case *model.Chart:
		return d.renderChart(n, th, depth), nil
	case *model.Progress:
		return d.renderProgress(n, th, depth), nil
	case *model.Chip:
		return d.renderChip(n, th, depth), nil
	case *model.Navigation:
		return d.renderNavigation(n, th, depth), nil
	case *model.FAB:
		return d.renderFAB(n, th, depth), nil
	default:
		return nil, sduierrors.NewUnknownComponentKindError(node.Kind().String(), node.ID())
	}
}

func newInstruction(node model.Node, depth int, st style.Concrete, shape Shape, content any) *Instruction {
	return &Instruction{
		ID:       node.ID(),
		Kind:     node.Kind(),
		KindName: node.Kind().String(),
		Depth:    depth,
		Margin:   node.Spacing(),
		Style:    st,
		Shape:    shape,
		Content:  content,
	}
}

func (d *Dispatcher) renderContainer(node model.Node, children []model.Node, st style.Concrete, shape Shape, th *theme.Theme, depth int) (*Instruction, error) {
	in := newInstruction(node, depth, st, shape, nil)
	in.Children = make([]*Instruction, 0, len(children))

	sizes := make([]layout.Size, 0, len(children))
	for _, child := range children {
		rendered, err := d.Render(child, th, depth+1)
		if err != nil {
			return nil, err
		}
		in.Children = append(in.Children, rendered)
		sizes = append(sizes, d.measurer.Measure(rendered))
	}

	in.Layout = layout.Compose(node, sizes)
	return in, nil
}

func elevation(th *theme.Theme, level int) int {
	level = min(max(level, 0), theme.MaxElevationLevel)
	if th == nil {
		return level
	}
	return th.Elevation().Level(level)
}

func sizeTokens(th *theme.Theme) theme.Sizes {
	if th == nil {
		return theme.DefaultLightTokens().Sizes
	}
	return th.Sizes()
}

func withFallback(st *style.Concrete, fb *style.Fallback) {
	if fb != nil {
		st.Fallbacks = append(st.Fallbacks, *fb)
	}
}

// token returns value when it is one of known and def otherwise.
func token(value, def string, known ...string) string {
	if slices.Contains(known, value) {
		return value
	}
	return def
}

func badge(count int) *Badge {
	if count <= 0 {
		return nil
	}
	label := strconv.Itoa(count)
	if count > 99 {
		label = "99+"
	}
	return &Badge{Count: count, Label: label}
}

func (d *Dispatcher) renderCard(n *model.Card, th *theme.Theme, depth int) *Instruction {
	st := style.Resolve(style.Partial{Fill: n.Style.BackgroundColor, Border: n.Style.StrokeColor}, th, style.RoleCard)

	variant := token(n.Style.Variant, model.CardElevated, model.CardElevated, model.CardFilled, model.CardOutlined)
	shape := Shape{CornerRadius: n.Style.CornerRadius, StrokeWidth: n.Style.StrokeWidth}
	switch variant {
	case model.CardOutlined:
		shape.StrokeWidth = max(n.Style.StrokeWidth, 1)
	case model.CardFilled:
		// Flat.
	default:
		shape.Elevation = elevation(th, n.Style.Elevation)
	}

	content := CardContent{
		Title:      n.Title,
		Subtitle:   n.Subtitle,
		Body:       n.Content,
		ImageRef:   n.ImageRef,
		Variant:    variant,
		Padding:    n.Style.ContentPadding,
		Supporting: style.Resolve(style.Partial{}, th, style.RoleCardSupporting),
	}
	for _, a := range n.Actions {
		kind := token(a.Type, model.ActionPrimary, model.ActionPrimary, model.ActionSecondary, model.ActionTertiary)
		role := style.RoleButtonFilled
		switch kind {
		case model.ActionSecondary:
			role = style.RoleButtonTonal
		case model.ActionTertiary:
			role = style.RoleButtonText
		}
		content.Actions = append(content.Actions, ActionContent{
			ID:        a.ID,
			Text:      a.Text,
			Type:      kind,
			ActionRef: a.ActionRef,
			Style:     style.Resolve(style.Partial{}, th, role),
		})
	}

	return newInstruction(n, depth, st, shape, content)
}

func buttonRole(b *model.Button) style.Role {
	if !b.Style.Enabled {
		return style.RoleButtonDisabled
	}
	switch b.Style.Variant {
	case model.ButtonTonal:
		return style.RoleButtonTonal
	case model.ButtonOutlined:
		return style.RoleButtonOutlined
	case model.ButtonText:
		return style.RoleButtonText
	case model.ButtonElevated:
		return style.RoleButtonElevated
	default:
		return style.RoleButtonFilled
	}
}

func (d *Dispatcher) renderButton(n *model.Button, th *theme.Theme, depth int) *Instruction {
	st := style.Resolve(style.Partial{
		Fill:   n.Style.BackgroundColor,
		Text:   n.Style.TextColor,
		Border: n.Style.StrokeColor,
	}, th, buttonRole(n))

	variant := token(n.Style.Variant, model.ButtonFilled,
		model.ButtonFilled, model.ButtonOutlined, model.ButtonText, model.ButtonElevated, model.ButtonTonal)
	size := token(n.Style.Size, model.SizeMedium, model.SizeSmall, model.SizeMedium, model.SizeLarge)

	shape := Shape{CornerRadius: n.Style.CornerRadius}
	switch variant {
	case model.ButtonOutlined:
		shape.StrokeWidth = n.Style.StrokeWidth
	case model.ButtonElevated:
		shape.Elevation = elevation(th, 1)
	}

	tokens := sizeTokens(th)
	height := tokens.ButtonMedium
	switch size {
	case model.SizeSmall:
		height = tokens.ButtonSmall
	case model.SizeLarge:
		height = tokens.ButtonLarge
	}

	return newInstruction(n, depth, st, shape, ButtonContent{
		Text:      n.Text,
		Icon:      n.Icon,
		ActionRef: n.ActionRef,
		Variant:   variant,
		Size:      size,
		Height:    height,
		Padding:   n.Style.ContentPadding,
		Enabled:   n.Style.Enabled,
	})
}

func (d *Dispatcher) renderText(n *model.Text, th *theme.Theme, depth int) *Instruction {
	st := style.Resolve(style.Partial{
		Text:       n.Style.Color,
		Typography: n.Style.Variant,
		Weight:     n.Style.Weight,
		Size:       n.Style.Size,
		LineHeight: n.Style.LineHeight,
	}, th, style.RoleText)

	return newInstruction(n, depth, st, Shape{}, TextContent{
		Text:      n.Text,
		Alignment: token(n.Alignment, model.AlignStart, model.AlignStart, model.AlignCenter, model.AlignEnd),
	})
}

func (d *Dispatcher) renderList(n *model.List, th *theme.Theme, depth int) *Instruction {
	st := style.Resolve(style.Partial{Fill: n.Style.BackgroundColor}, th, style.RoleList)
	tokens := sizeTokens(th)

	content := ListContent{
		Items:       make([]ListItemContent, 0, len(n.Items)),
		Supporting:  style.Resolve(style.Partial{}, th, style.RoleListSupporting),
		ItemPadding: n.Style.ItemPadding,
		Dividers:    n.Style.Dividers,
	}

	itemSizes := make([]layout.Size, 0, len(n.Items))
	for _, item := range n.Items {
		height := tokens.ListItemOneLine
		if item.Subtitle != "" {
			height = tokens.ListItemTwoLine
		}
		row := ListItemContent{
			ID:        item.ID,
			Title:     item.Title,
			Subtitle:  item.Subtitle,
			Icon:      item.Icon,
			Trailing:  item.Trailing,
			ActionRef: item.ActionRef,
			Badge:     badge(item.BadgeCount),
			Height:    height,
		}
		content.Items = append(content.Items, row)
		itemSizes = append(itemSizes, d.measurer.MeasureListItem(row, st.Typography))
	}

	in := newInstruction(n, depth, st, Shape{CornerRadius: n.Style.CornerRadius}, content)
	in.Layout = layout.Compose(n, itemSizes)
	return in
}

func (d *Dispatcher) renderImage(n *model.Image, th *theme.Theme, depth int) *Instruction {
	st := style.Resolve(style.Partial{}, th, style.RoleImage)
	return newInstruction(n, depth, st, Shape{CornerRadius: n.CornerRadius}, ImageContent{
		URL:          n.URL,
		Placeholder:  n.Placeholder,
		AspectRatio:  layout.AspectRatio(n.AspectRatio),
		ContentScale: token(n.ContentScale, model.ScaleCrop, model.ScaleCrop, model.ScaleFit, model.ScaleFillWidth),
	})
}

func (d *Dispatcher) renderChart(n *model.Chart, th *theme.Theme, depth int) *Instruction {
	st := style.Resolve(style.Partial{}, th, style.RoleChart)

	content := ChartContent{
		ChartType: token(n.ChartType, model.ChartLine, model.ChartLine, model.ChartBar, model.ChartPie, model.ChartDonut),
		Title:     n.Title,
		Height:    n.Height,
		Points:    make([]ChartPoint, 0, len(n.Data)),
	}
	for i, p := range n.Data {
		ref := p.Color
		if !ref.IsSet() && len(n.Colors) > 0 {
			ref = n.Colors[i%len(n.Colors)]
		}
		c, fb := style.ResolveColor(fmt.Sprintf("data[%d].color", i), ref, th, theme.SlotPrimary)
		withFallback(&st, fb)
		content.Points = append(content.Points, ChartPoint{Label: p.Label, Value: p.Value, Color: c})
	}

	return newInstruction(n, depth, st, Shape{CornerRadius: 12}, content)
}

func (d *Dispatcher) renderProgress(n *model.Progress, th *theme.Theme, depth int) *Instruction {
	st := style.Resolve(style.Partial{Fill: n.Color}, th, style.RoleProgress)

	content := ProgressContent{
		Value: n.Value,
		Label: n.Label,
		Style: token(n.Style, model.ProgressLinear, model.ProgressLinear, model.ProgressCircular),
	}
	if n.ShowPercentage {
		content.Percentage = fmt.Sprintf("%d%%", int(n.Value*100))
	}

	return newInstruction(n, depth, st, Shape{}, content)
}

func (d *Dispatcher) renderChip(n *model.Chip, th *theme.Theme, depth int) *Instruction {
	role := style.RoleChip
	shape := Shape{CornerRadius: 8, StrokeWidth: 1}
	if n.Selected {
		role = style.RoleChipSelected
		shape.StrokeWidth = 0
	}
	st := style.Resolve(style.Partial{}, th, role)

	return newInstruction(n, depth, st, shape, ChipContent{
		Text:      n.Text,
		Variant:   token(n.Style, model.ChipAssist, model.ChipAssist, model.ChipFilter, model.ChipInput, model.ChipSuggestion),
		Selected:  n.Selected,
		Icon:      n.Icon,
		ActionRef: n.ActionRef,
	})
}

func (d *Dispatcher) renderNavigation(n *model.Navigation, th *theme.Theme, depth int) *Instruction {
	st := style.Resolve(style.Partial{Fill: n.Style.BackgroundColor}, th, style.RoleNavigation)

	indicator, fb := style.ResolveColor("indicatorColor", n.Style.IndicatorColor, th, theme.SlotSecondaryContainer)
	withFallback(&st, fb)
	selected, fb := style.ResolveColor("selectedColor", n.Style.SelectedColor, th, theme.SlotOnSecondaryContainer)
	withFallback(&st, fb)
	unselected, fb := style.ResolveColor("unselectedColor", n.Style.UnselectedColor, th, theme.SlotOnSurfaceVariant)
	withFallback(&st, fb)

	content := NavigationContent{
		Placement: token(n.Placement, model.PlacementBottom,
			model.PlacementBottom, model.PlacementTop, model.PlacementRail, model.PlacementDrawer),
		Height:    n.Style.Height,
		Indicator: indicator,
		Items:     make([]NavItemContent, 0, len(n.Items)),
	}
	for _, item := range n.Items {
		icon, color := item.Icon, unselected
		if item.Selected {
			color = selected
			if item.SelectedIcon != "" {
				icon = item.SelectedIcon
			}
		}
		content.Items = append(content.Items, NavItemContent{
			ID:        item.ID,
			Label:     item.Label,
			Icon:      icon,
			Selected:  item.Selected,
			ActionRef: item.ActionRef,
			Badge:     badge(item.BadgeCount),
			Color:     color,
		})
	}

	return newInstruction(n, depth, st, Shape{Elevation: elevation(th, n.Style.Elevation)}, content)
}

func (d *Dispatcher) renderFAB(n *model.FAB, th *theme.Theme, depth int) *Instruction {
	st := style.Resolve(style.Partial{Fill: n.Style.BackgroundColor, Text: n.Style.ContentColor}, th, style.RoleFAB)

	tokens := sizeTokens(th)
	size := token(n.Style.Size, model.FABRegular, model.FABRegular, model.FABSmall, model.FABLarge, model.FABExtended)
	dimension := tokens.FABRegular
	switch size {
	case model.FABSmall:
		dimension = tokens.FABSmall
	case model.FABLarge:
		dimension = tokens.FABLarge
	}

	shape := Shape{CornerRadius: n.Style.CornerRadius, Elevation: elevation(th, n.Style.Elevation)}
	return newInstruction(n, depth, st, shape, FABContent{
		Icon:      n.Icon,
		Text:      n.Text,
		ActionRef: n.ActionRef,
		Size:      size,
		Dimension: dimension,
	})
}
