package render

import (
	"github.com/alexisbeaulieu97/sdui/internal/layout"
	"github.com/alexisbeaulieu97/sdui/internal/model"
	"github.com/alexisbeaulieu97/sdui/internal/style"
	"github.com/alexisbeaulieu97/sdui/internal/theme"
)

// Instruction is the paint-ready description of one node. The tree of
// instructions mirrors the node tree.
type Instruction struct {
	ID       string         `json:"id"`
	Kind     model.Kind     `json:"-"`
	KindName string         `json:"kind"`
	Depth    int            `json:"depth"`
	Margin   model.Spacing  `json:"margin"`
	Style    style.Concrete `json:"style"`
	Shape    Shape          `json:"shape"`
	Content  any            `json:"content,omitempty"`
	Layout   *layout.Plan   `json:"layout,omitempty"`
	Children []*Instruction `json:"children,omitempty"`
}

// Walk visits the instruction and its descendants depth-first.
func (in *Instruction) Walk(fn func(*Instruction)) {
	if in == nil {
		return
	}
	fn(in)
	for _, child := range in.Children {
		child.Walk(fn)
	}
}

// Shape carries the resolved geometry tokens of a node.
type Shape struct {
	CornerRadius int `json:"cornerRadius"`
	StrokeWidth  int `json:"strokeWidth"`
	Elevation    int `json:"elevation"`
}

// ScreenInstruction is the render output for a whole screen.
type ScreenInstruction struct {
	ID           string           `json:"id"`
	Title        string           `json:"title,omitempty"`
	Background   style.Color      `json:"background"`
	Foreground   style.Color      `json:"foreground"`
	MotionScheme string           `json:"motionScheme"`
	Motion       theme.Motion     `json:"motion"`
	Padding      model.Padding    `json:"padding"`
	IsDark       bool             `json:"isDark"`
	Nodes        []*Instruction   `json:"nodes"`
	Fallbacks    []style.Fallback `json:"fallbacks,omitempty"`
}

// Walk visits every node instruction of the screen.
func (s *ScreenInstruction) Walk(fn func(*Instruction)) {
	for _, n := range s.Nodes {
		n.Walk(fn)
	}
}

// CardContent is the payload of a card instruction.
type CardContent struct {
	Title      string          `json:"title"`
	Subtitle   string          `json:"subtitle,omitempty"`
	Body       string          `json:"body,omitempty"`
	ImageRef   string          `json:"imageRef,omitempty"`
	Variant    string          `json:"variant"`
	Padding    model.Padding   `json:"padding"`
	Supporting style.Concrete  `json:"supporting"`
	Actions    []ActionContent `json:"actions,omitempty"`
}

// ActionContent is a resolved card action.
type ActionContent struct {
	ID        string         `json:"id"`
	Text      string         `json:"text"`
	Type      string         `json:"type"`
	ActionRef string         `json:"actionRef,omitempty"`
	Style     style.Concrete `json:"style"`
}

// ButtonContent is the payload of a button instruction.
type ButtonContent struct {
	Text      string        `json:"text"`
	Icon      string        `json:"icon,omitempty"`
	ActionRef string        `json:"actionRef,omitempty"`
	Variant   string        `json:"variant"`
	Size      string        `json:"size"`
	Height    int           `json:"height"`
	Padding   model.Padding `json:"padding"`
	Enabled   bool          `json:"enabled"`
}

// TextContent is the payload of a text instruction.
type TextContent struct {
	Text      string `json:"text"`
	Alignment string `json:"alignment"`
}

// ListContent is the payload of a list instruction.
type ListContent struct {
	Items       []ListItemContent `json:"items"`
	Supporting  style.Concrete    `json:"supporting"`
	ItemPadding model.Padding     `json:"itemPadding"`
	Dividers    bool              `json:"dividers"`
}

// ListItemContent is one resolved list row.
type ListItemContent struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle,omitempty"`
	Icon      string `json:"icon,omitempty"`
	Trailing  string `json:"trailing,omitempty"`
	ActionRef string `json:"actionRef,omitempty"`
	Badge     *Badge `json:"badge,omitempty"`
	Height    int    `json:"height"`
}

// Badge is a count indicator attached to a list or navigation item.
type Badge struct {
	Count int    `json:"count"`
	Label string `json:"label"`
}

// ImageContent is the payload of an image instruction.
type ImageContent struct {
	URL          string  `json:"url,omitempty"`
	Placeholder  string  `json:"placeholder"`
	AspectRatio  float64 `json:"aspectRatio"`
	ContentScale string  `json:"contentScale"`
}

// ChartContent is the payload of a chart instruction.
type ChartContent struct {
	ChartType string       `json:"chartType"`
	Title     string       `json:"title,omitempty"`
	Height    int          `json:"height"`
	Points    []ChartPoint `json:"points"`
}

// ChartPoint is one resolved data point.
type ChartPoint struct {
	Label string      `json:"label"`
	Value float64     `json:"value"`
	Color style.Color `json:"color"`
}

// ProgressContent is the payload of a progress instruction.
type ProgressContent struct {
	Value      float64 `json:"value"`
	Label      string  `json:"label,omitempty"`
	Percentage string  `json:"percentage,omitempty"`
	Style      string  `json:"style"`
}

// ChipContent is the payload of a chip instruction.
type ChipContent struct {
	Text      string `json:"text"`
	Variant   string `json:"variant"`
	Selected  bool   `json:"selected"`
	Icon      string `json:"icon,omitempty"`
	ActionRef string `json:"actionRef,omitempty"`
}

// NavigationContent is the payload of a navigation instruction.
type NavigationContent struct {
	Placement string           `json:"placement"`
	Height    int              `json:"height"`
	Indicator style.Color      `json:"indicator"`
	Items     []NavItemContent `json:"items"`
}

// NavItemContent is one resolved navigation destination.
type NavItemContent struct {
	ID        string      `json:"id"`
	Label     string      `json:"label"`
	Icon      string      `json:"icon"`
	Selected  bool        `json:"selected"`
	ActionRef string      `json:"actionRef,omitempty"`
	Badge     *Badge      `json:"badge,omitempty"`
	Color     style.Color `json:"color"`
}

// FABContent is the payload of a floating action button instruction.
type FABContent struct {
	Icon      string `json:"icon"`
	Text      string `json:"text,omitempty"`
	ActionRef string `json:"actionRef,omitempty"`
	Size      string `json:"size"`
	Dimension int    `json:"dimension"`
}
