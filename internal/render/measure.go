package render

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/sdui/internal/layout"
	"github.com/alexisbeaulieu97/sdui/internal/theme"
)

// Estimator approximates intrinsic sizes in density-independent units from
// typography alone. A glyph is taken to be half as wide as the font size and
// wide runes (CJK, emoji) count double.
type Estimator struct{}

func textWidth(s string, typo theme.TextPreset) int {
	return runewidth.StringWidth(s) * typo.Size / 2
}

// Measure returns the outer size of in, margin included.
func (Estimator) Measure(in *Instruction) layout.Size {
	var size layout.Size
	if in.Layout != nil {
		size = layout.Size{Width: in.Layout.Width, Height: in.Layout.Height}
	} else {
		size = estimateLeaf(in)
	}

	return layout.Size{
		Width:  size.Width + in.Margin.Start + in.Margin.End,
		Height: size.Height + in.Margin.Top + in.Margin.Bottom,
	}
}

// MeasureListItem returns the width of the row text and the row height.
func (Estimator) MeasureListItem(item ListItemContent, typo theme.TextPreset) layout.Size {
	w := textWidth(item.Title, typo)
	if item.Subtitle != "" {
		w = max(w, textWidth(item.Subtitle, typo))
	}
	if item.Trailing != "" {
		w += textWidth(" "+item.Trailing, typo)
	}
	return layout.Size{Width: w, Height: item.Height}
}

func estimateLeaf(in *Instruction) layout.Size {
	typo := in.Style.Typography

	switch c := in.Content.(type) {
	case TextContent:
		return layout.Size{Width: textWidth(c.Text, typo), Height: typo.LineHeight}
	case CardContent:
		w := textWidth(c.Title, typo)
		h := typo.LineHeight
		for _, line := range []string{c.Subtitle, c.Body} {
			if line == "" {
				continue
			}
			w = max(w, textWidth(line, c.Supporting.Typography))
			h += c.Supporting.Typography.LineHeight
		}
		if len(c.Actions) > 0 {
			h += 40
		}
		return layout.Size{Width: w + 2*c.Padding.Horizontal, Height: h + 2*c.Padding.Vertical}
	case ButtonContent:
		return layout.Size{Width: textWidth(c.Text, typo) + 2*c.Padding.Horizontal, Height: c.Height}
	case ImageContent:
		const side = 96
		return layout.Size{Width: side, Height: int(math.Round(side / c.AspectRatio))}
	case ChartContent:
		return layout.Size{Width: 240, Height: c.Height}
	case ProgressContent:
		h := 4
		if c.Label != "" || c.Percentage != "" {
			h += typo.LineHeight
		}
		return layout.Size{Width: 200, Height: h}
	case ChipContent:
		return layout.Size{Width: textWidth(c.Text, typo) + 32, Height: 32}
	case NavigationContent:
		return layout.Size{Width: 80 * len(c.Items), Height: c.Height}
	case FABContent:
		if c.Text != "" {
			return layout.Size{Width: c.Dimension + textWidth(c.Text, typo), Height: c.Dimension}
		}
		return layout.Size{Width: c.Dimension, Height: c.Dimension}
	default:
		return layout.Size{}
	}
}
