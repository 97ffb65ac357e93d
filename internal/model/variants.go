package model

import "gopkg.in/yaml.v3"

// Card is a surface grouping a title, optional body and actions.
type Card struct {
	Base     `yaml:",inline"`
	Title    string    `yaml:"title" json:"title" validate:"required"`
	Subtitle string    `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Content  string    `yaml:"content,omitempty" json:"content,omitempty"`
	ImageRef string    `yaml:"imageRef,omitempty" json:"imageRef,omitempty"`
	Actions  []Action  `yaml:"actions,omitempty" json:"actions,omitempty" validate:"dive"`
	Style    CardStyle `yaml:"style" json:"style"`
}

// CardStyle variants.
const (
	CardElevated = "elevated"
	CardFilled   = "filled"
	CardOutlined = "outlined"
)

type CardStyle struct {
	Variant         string   `yaml:"variant" json:"variant"`
	Elevation       int      `yaml:"elevation" json:"elevation" validate:"min=0,max=5"`
	CornerRadius    int      `yaml:"cornerRadius" json:"cornerRadius" validate:"min=0"`
	BackgroundColor ColorRef `yaml:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	StrokeColor     ColorRef `yaml:"strokeColor,omitempty" json:"strokeColor,omitempty"`
	StrokeWidth     int      `yaml:"strokeWidth" json:"strokeWidth" validate:"min=0"`
	ContentPadding  Padding  `yaml:"contentPadding" json:"contentPadding"`
}

func (*Card) Kind() Kind { return KindCard }

// NewCard returns a card with default styling.
func NewCard(id, title string) *Card {
	return &Card{
		Base:  Base{NodeID: id},
		Title: title,
		Style: CardStyle{
			Variant:        CardElevated,
			Elevation:      1,
			CornerRadius:   12,
			ContentPadding: Padding{Horizontal: 16, Vertical: 16},
		},
	}
}

// Button is a labelled trigger.
type Button struct {
	Base      `yaml:",inline"`
	Text      string      `yaml:"text" json:"text" validate:"required"`
	Icon      string      `yaml:"icon,omitempty" json:"icon,omitempty"`
	ActionRef string      `yaml:"actionRef,omitempty" json:"actionRef,omitempty"`
	Style     ButtonStyle `yaml:"style" json:"style"`
}

// ButtonStyle variants and sizes.
const (
	ButtonFilled   = "filled"
	ButtonOutlined = "outlined"
	ButtonText     = "text"
	ButtonElevated = "elevated"
	ButtonTonal    = "tonal"

	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

type ButtonStyle struct {
	Variant         string   `yaml:"variant" json:"variant"`
	Size            string   `yaml:"size" json:"size"`
	CornerRadius    int      `yaml:"cornerRadius" json:"cornerRadius" validate:"min=0"`
	BackgroundColor ColorRef `yaml:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	TextColor       ColorRef `yaml:"textColor,omitempty" json:"textColor,omitempty"`
	StrokeColor     ColorRef `yaml:"strokeColor,omitempty" json:"strokeColor,omitempty"`
	StrokeWidth     int      `yaml:"strokeWidth" json:"strokeWidth" validate:"min=0"`
	ContentPadding  Padding  `yaml:"contentPadding" json:"contentPadding"`
	Enabled         bool     `yaml:"enabled" json:"enabled"`
}

func (*Button) Kind() Kind { return KindButton }

// NewButton returns an enabled, filled, medium button.
func NewButton(id, text string) *Button {
	return &Button{
		Base: Base{NodeID: id},
		Text: text,
		Style: ButtonStyle{
			Variant:        ButtonFilled,
			Size:           SizeMedium,
			CornerRadius:   20,
			StrokeWidth:    1,
			ContentPadding: Padding{Horizontal: 24, Vertical: 10},
			Enabled:        true,
		},
	}
}

// Text alignments.
const (
	AlignStart  = "start"
	AlignCenter = "center"
	AlignEnd    = "end"
)

// Text is a run of styled text.
type Text struct {
	Base      `yaml:",inline"`
	Text      string    `yaml:"text" json:"text" validate:"required"`
	Alignment string    `yaml:"alignment" json:"alignment"`
	Style     TextStyle `yaml:"style" json:"style"`
}

// TextStyle selects a typography preset and optionally overrides parts of it.
type TextStyle struct {
	Variant    string   `yaml:"variant" json:"variant"`
	Color      ColorRef `yaml:"color,omitempty" json:"color,omitempty"`
	Weight     string   `yaml:"weight,omitempty" json:"weight,omitempty"`
	Size       *int     `yaml:"size,omitempty" json:"size,omitempty" validate:"omitempty,min=1"`
	LineHeight *int     `yaml:"lineHeight,omitempty" json:"lineHeight,omitempty" validate:"omitempty,min=1"`
}

func (*Text) Kind() Kind { return KindText }

// NewText returns body-large, start-aligned text.
func NewText(id, text string) *Text {
	return &Text{
		Base:      Base{NodeID: id},
		Text:      text,
		Alignment: AlignStart,
		Style:     TextStyle{Variant: "bodyLarge"},
	}
}

// List is a vertical stack of item rows.
type List struct {
	Base  `yaml:",inline"`
	Items []ListItem `yaml:"items" json:"items" validate:"dive"`
	Style ListStyle  `yaml:"style" json:"style"`
}

// ListItem is one row of a List.
type ListItem struct {
	ID         string `yaml:"id" json:"id" validate:"required"`
	Title      string `yaml:"title" json:"title" validate:"required"`
	Subtitle   string `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Icon       string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Trailing   string `yaml:"trailing,omitempty" json:"trailing,omitempty"`
	BadgeCount int    `yaml:"badgeCount,omitempty" json:"badgeCount,omitempty" validate:"min=0"`
	ActionRef  string `yaml:"actionRef,omitempty" json:"actionRef,omitempty"`
}

type ListStyle struct {
	Dividers        bool     `yaml:"dividers" json:"dividers"`
	BackgroundColor ColorRef `yaml:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	ItemPadding     Padding  `yaml:"itemPadding" json:"itemPadding"`
	CornerRadius    int      `yaml:"cornerRadius" json:"cornerRadius" validate:"min=0"`
	ItemSpacing     int      `yaml:"itemSpacing" json:"itemSpacing" validate:"min=0"`
}

func (*List) Kind() Kind { return KindList }

// NewList returns a list with dividers enabled.
func NewList(id string, items ...ListItem) *List {
	return &List{
		Base:  Base{NodeID: id},
		Items: items,
		Style: ListStyle{
			Dividers:     true,
			ItemPadding:  Padding{Horizontal: 16, Vertical: 8},
			CornerRadius: 12,
		},
	}
}

// Grid places its items row-major in a fixed number of columns.
type Grid struct {
	Base    `yaml:",inline"`
	Items   Nodes     `yaml:"items" json:"items" validate:"-"`
	Columns int       `yaml:"columns" json:"columns" validate:"min=1"`
	Style   GridStyle `yaml:"style" json:"style"`
}

type GridStyle struct {
	AspectRatio     string   `yaml:"aspectRatio" json:"aspectRatio"`
	ItemSpacing     int      `yaml:"itemSpacing" json:"itemSpacing" validate:"min=0"`
	BackgroundColor ColorRef `yaml:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	CornerRadius    int      `yaml:"cornerRadius" json:"cornerRadius" validate:"min=0"`
}

func (*Grid) Kind() Kind { return KindGrid }

// NewGrid returns a two-column square grid.
func NewGrid(id string, items ...Node) *Grid {
	return &Grid{
		Base:    Base{NodeID: id},
		Items:   items,
		Columns: 2,
		Style:   GridStyle{AspectRatio: "1:1", ItemSpacing: 8, CornerRadius: 16},
	}
}

// Column stacks components vertically.
type Column struct {
	Base       `yaml:",inline"`
	Components Nodes  `yaml:"components" json:"components" validate:"-"`
	Alignment  string `yaml:"alignment" json:"alignment"`
}

func (*Column) Kind() Kind { return KindColumn }

// NewColumn returns a centered column with a 16 unit gap.
func NewColumn(id string, components ...Node) *Column {
	return &Column{
		Base:       Base{NodeID: id, Margin: Spacing{Inner: 16}},
		Components: components,
		Alignment:  AlignCenter,
	}
}

// Row lays components out horizontally.
type Row struct {
	Base        `yaml:",inline"`
	Components  Nodes  `yaml:"components" json:"components" validate:"-"`
	Arrangement string `yaml:"arrangement" json:"arrangement"`
}

func (*Row) Kind() Kind { return KindRow }

// NewRow returns a start-arranged row with an 8 unit gap.
func NewRow(id string, components ...Node) *Row {
	return &Row{
		Base:        Base{NodeID: id, Margin: Spacing{Inner: 8}},
		Components:  components,
		Arrangement: AlignStart,
	}
}

// Image content scales.
const (
	ScaleCrop      = "crop"
	ScaleFit       = "fit"
	ScaleFillWidth = "fillWidth"
)

// Image is a remote image or a placeholder glyph.
type Image struct {
	Base         `yaml:",inline"`
	URL          string `yaml:"url,omitempty" json:"url,omitempty"`
	Placeholder  string `yaml:"placeholder" json:"placeholder"`
	AspectRatio  string `yaml:"aspectRatio" json:"aspectRatio"`
	CornerRadius int    `yaml:"cornerRadius" json:"cornerRadius" validate:"min=0"`
	ContentScale string `yaml:"contentScale" json:"contentScale"`
}

func (*Image) Kind() Kind { return KindImage }

// NewImage returns a square, cropped image placeholder.
func NewImage(id string) *Image {
	return &Image{
		Base:         Base{NodeID: id},
		Placeholder:  "📷",
		AspectRatio:  "1:1",
		CornerRadius: 8,
		ContentScale: ScaleCrop,
	}
}

// Chart types.
const (
	ChartLine  = "line"
	ChartBar   = "bar"
	ChartPie   = "pie"
	ChartDonut = "donut"
)

// Chart is a small data visualization.
type Chart struct {
	Base      `yaml:",inline"`
	ChartType string      `yaml:"chartType" json:"chartType"`
	Data      []DataPoint `yaml:"data" json:"data" validate:"dive"`
	Title     string      `yaml:"title,omitempty" json:"title,omitempty"`
	Height    int         `yaml:"height" json:"height" validate:"min=1"`
	Colors    []ColorRef  `yaml:"colors" json:"colors"`
}

// DataPoint is one labelled chart value.
type DataPoint struct {
	Label string   `yaml:"label" json:"label" validate:"required"`
	Value float64  `yaml:"value" json:"value"`
	Color ColorRef `yaml:"color,omitempty" json:"color,omitempty"`
}

func (*Chart) Kind() Kind { return KindChart }

// NewChart returns a line chart with the default palette.
func NewChart(id string, data ...DataPoint) *Chart {
	return &Chart{
		Base:      Base{NodeID: id},
		ChartType: ChartLine,
		Data:      data,
		Height:    200,
		Colors:    []ColorRef{"#6750A4", "#7D5260", "#625B71"},
	}
}

// Progress indicator styles.
const (
	ProgressLinear   = "linear"
	ProgressCircular = "circular"
)

// Progress shows completion of a task.
type Progress struct {
	Base           `yaml:",inline"`
	Value          float64  `yaml:"value" json:"value" validate:"gte=0,lte=1"`
	Label          string   `yaml:"label,omitempty" json:"label,omitempty"`
	ShowPercentage bool     `yaml:"showPercentage" json:"showPercentage"`
	Style          string   `yaml:"style" json:"style"`
	Color          ColorRef `yaml:"color,omitempty" json:"color,omitempty"`
}

func (*Progress) Kind() Kind { return KindProgress }

// NewProgress returns a linear indicator that shows its percentage.
func NewProgress(id string, value float64) *Progress {
	return &Progress{
		Base:           Base{NodeID: id},
		Value:          value,
		ShowPercentage: true,
		Style:          ProgressLinear,
	}
}

// Chip styles.
const (
	ChipAssist     = "assist"
	ChipFilter     = "filter"
	ChipInput      = "input"
	ChipSuggestion = "suggestion"
)

// Chip is a compact selectable label.
type Chip struct {
	Base      `yaml:",inline"`
	Text      string `yaml:"text" json:"text" validate:"required"`
	Style     string `yaml:"style" json:"style"`
	Selected  bool   `yaml:"selected,omitempty" json:"selected"`
	Icon      string `yaml:"icon,omitempty" json:"icon,omitempty"`
	ActionRef string `yaml:"actionRef,omitempty" json:"actionRef,omitempty"`
}

func (*Chip) Kind() Kind { return KindChip }

// NewChip returns an assist chip.
func NewChip(id, text string) *Chip {
	return &Chip{Base: Base{NodeID: id}, Text: text, Style: ChipAssist}
}

// Navigation placements.
const (
	PlacementBottom = "bottom"
	PlacementTop    = "top"
	PlacementRail   = "rail"
	PlacementDrawer = "drawer"
)

// Navigation is a bar, rail or drawer of destinations.
type Navigation struct {
	Base      `yaml:",inline"`
	Placement string          `yaml:"placement" json:"placement"`
	Items     []NavItem       `yaml:"items" json:"items" validate:"min=1,dive"`
	Style     NavigationStyle `yaml:"style" json:"style"`
}

// NavItem is one navigation destination.
type NavItem struct {
	ID           string `yaml:"id" json:"id" validate:"required"`
	Label        string `yaml:"label" json:"label" validate:"required"`
	Icon         string `yaml:"icon" json:"icon" validate:"required"`
	SelectedIcon string `yaml:"selectedIcon,omitempty" json:"selectedIcon,omitempty"`
	Selected     bool   `yaml:"selected,omitempty" json:"selected"`
	BadgeCount   int    `yaml:"badgeCount,omitempty" json:"badgeCount,omitempty" validate:"min=0"`
	ActionRef    string `yaml:"actionRef,omitempty" json:"actionRef,omitempty"`
}

type NavigationStyle struct {
	BackgroundColor ColorRef `yaml:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	SelectedColor   ColorRef `yaml:"selectedColor,omitempty" json:"selectedColor,omitempty"`
	UnselectedColor ColorRef `yaml:"unselectedColor,omitempty" json:"unselectedColor,omitempty"`
	IndicatorColor  ColorRef `yaml:"indicatorColor,omitempty" json:"indicatorColor,omitempty"`
	Elevation       int      `yaml:"elevation" json:"elevation" validate:"min=0,max=5"`
	Height          int      `yaml:"height" json:"height" validate:"min=1"`
}

func (*Navigation) Kind() Kind { return KindNavigation }

// NewNavigation returns a bottom navigation bar.
func NewNavigation(id string, items ...NavItem) *Navigation {
	return &Navigation{
		Base:      Base{NodeID: id},
		Placement: PlacementBottom,
		Items:     items,
		Style:     NavigationStyle{Elevation: 3, Height: 80},
	}
}

// FAB is a floating action button.
type FAB struct {
	Base      `yaml:",inline"`
	Icon      string   `yaml:"icon" json:"icon" validate:"required"`
	Text      string   `yaml:"text,omitempty" json:"text,omitempty"`
	ActionRef string   `yaml:"actionRef,omitempty" json:"actionRef,omitempty"`
	Style     FABStyle `yaml:"style" json:"style"`
}

// FAB sizes.
const (
	FABRegular  = "regular"
	FABSmall    = "small"
	FABLarge    = "large"
	FABExtended = "extended"
)

type FABStyle struct {
	Size            string   `yaml:"size" json:"size"`
	BackgroundColor ColorRef `yaml:"backgroundColor,omitempty" json:"backgroundColor,omitempty"`
	ContentColor    ColorRef `yaml:"contentColor,omitempty" json:"contentColor,omitempty"`
	Elevation       int      `yaml:"elevation" json:"elevation" validate:"min=0,max=5"`
	CornerRadius    int      `yaml:"cornerRadius" json:"cornerRadius" validate:"min=0"`
}

func (*FAB) Kind() Kind { return KindFAB }

// NewFAB returns a regular "+" button.
func NewFAB(id string) *FAB {
	return &FAB{
		Base:  Base{NodeID: id},
		Icon:  "+",
		Style: FABStyle{Size: FABRegular, Elevation: 3, CornerRadius: 16},
	}
}

// UnmarshalYAML defaults the action type to primary.
func (a *Action) UnmarshalYAML(value *yaml.Node) error {
	type rawAction Action
	raw := rawAction{Type: ActionPrimary}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*a = Action(raw)
	return nil
}

// newDefault returns a zero-content node of kind carrying every default.
func newDefault(kind Kind) Node {
	switch kind {
	case KindCard:
		return NewCard("", "")
	case KindButton:
		return NewButton("", "")
	case KindText:
		return NewText("", "")
	case KindList:
		return NewList("")
	case KindGrid:
		return NewGrid("")
	case KindColumn:
		return NewColumn("")
	case KindRow:
		return NewRow("")
	case KindImage:
		return NewImage("")
	case KindChart:
		return NewChart("")
	case KindProgress:
		return NewProgress("", 0)
	case KindChip:
		return NewChip("", "")
	case KindNavigation:
		return NewNavigation("")
	case KindFAB:
		return NewFAB("")
	default:
		return nil
	}
}

// Children returns the nested nodes of container variants.
func Children(n Node) []Node {
	switch v := n.(type) {
	case *Grid:
		return v.Items
	case *Column:
		return v.Components
	case *Row:
		return v.Components
	default:
		return nil
	}
}
