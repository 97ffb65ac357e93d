// Package model defines the declarative component tree: a screen and the
// closed set of node variants it may contain.
//
// Nodes are plain data. Nothing in this package resolves colors or computes
// layout; a decoded tree is treated as immutable by every consumer.
package model

// Kind tags a node variant.
type Kind int

const (
	KindUnknown Kind = iota
	KindCard
	KindButton
	KindText
	KindList
	KindGrid
	KindColumn
	KindRow
	KindImage
	KindChart
	KindProgress
	KindChip
	KindNavigation
	KindFAB

	kindCount
)

var kindNames = [kindCount]string{
	KindUnknown:    "unknown",
	KindCard:       "card",
	KindButton:     "button",
	KindText:       "text",
	KindList:       "list",
	KindGrid:       "grid",
	KindColumn:     "column",
	KindRow:        "row",
	KindImage:      "image",
	KindChart:      "chart",
	KindProgress:   "progress",
	KindChip:       "chip",
	KindNavigation: "navigation",
	KindFAB:        "fab",
}

func (k Kind) String() string {
	if k <= KindUnknown || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind maps a wire type tag to a Kind. Matching is exact.
func ParseKind(tag string) (Kind, bool) {
	for k := KindCard; k < kindCount; k++ {
		if kindNames[k] == tag {
			return k, true
		}
	}
	return KindUnknown, false
}

// Kinds lists every recognized variant.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindCard; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Node is one element of a screen tree. The set of implementations is closed:
// every variant embeds Base, which carries the unexported marker method.
type Node interface {
	ID() string
	Kind() Kind
	Spacing() Spacing
	sealed()
}

// Base holds the fields shared by every variant.
type Base struct {
	NodeID string  `yaml:"id" json:"id" validate:"required"`
	Margin Spacing `yaml:"spacing,omitempty" json:"spacing"`
}

// ID returns the node identifier.
func (b Base) ID() string { return b.NodeID }

// Spacing returns the margin box and inner gap.
func (b Base) Spacing() Spacing { return b.Margin }

func (Base) sealed() {}

// Spacing is a margin box plus the gap between consecutive children.
type Spacing struct {
	Top    int `yaml:"top,omitempty" json:"top" validate:"min=0"`
	Bottom int `yaml:"bottom,omitempty" json:"bottom" validate:"min=0"`
	Start  int `yaml:"start,omitempty" json:"start" validate:"min=0"`
	End    int `yaml:"end,omitempty" json:"end" validate:"min=0"`
	Inner  int `yaml:"inner,omitempty" json:"inner" validate:"min=0"`
}

// Padding is a symmetric content inset.
type Padding struct {
	Horizontal int `yaml:"horizontal" json:"horizontal" validate:"min=0"`
	Vertical   int `yaml:"vertical" json:"vertical" validate:"min=0"`
}

// ColorRef is an optional color: six hex digits with an optional '#', or a
// theme slot reference written "@slotName". The empty value means unset.
type ColorRef string

// IsSet reports whether a value was supplied.
func (c ColorRef) IsSet() bool { return c != "" }

// SlotName returns the referenced theme slot for "@slot" values.
func (c ColorRef) SlotName() (string, bool) {
	if len(c) > 1 && c[0] == '@' {
		return string(c[1:]), true
	}
	return "", false
}

// Action types.
const (
	ActionPrimary   = "primary"
	ActionSecondary = "secondary"
	ActionTertiary  = "tertiary"
)

// Action is an opaque interaction reference attached to a card. It carries
// no behavior; ActionRef is routed by whoever consumes the render output.
type Action struct {
	ID        string `yaml:"id" json:"id" validate:"required"`
	Text      string `yaml:"text" json:"text" validate:"required"`
	Type      string `yaml:"type" json:"type"`
	ActionRef string `yaml:"actionRef,omitempty" json:"actionRef,omitempty"`
}
