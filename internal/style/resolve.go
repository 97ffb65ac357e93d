// Package style turns a node's optional style overrides into concrete paint
// values.
//
// Every attribute is resolved through the same chain: the explicit value on
// the node, then the theme slot the role conventionally uses, then an engine
// default that only applies when no theme is given. A malformed explicit
// color never fails resolution; it is recorded as a Fallback and the next
// step of the chain is used.
package style

import (
	"github.com/alexisbeaulieu97/sdui/internal/model"
	"github.com/alexisbeaulieu97/sdui/internal/theme"
	sduierrors "github.com/alexisbeaulieu97/sdui/pkg/errors"
)

// Partial holds the optional overrides a node may carry.
type Partial struct {
	Fill       model.ColorRef
	Text       model.ColorRef
	Border     model.ColorRef
	Typography string
	Weight     string
	Size       *int
	LineHeight *int
}

// Concrete is a fully resolved style.
type Concrete struct {
	Fill       Color            `json:"fill"`
	Text       Color            `json:"text"`
	Border     Color            `json:"border"`
	Typography theme.TextPreset `json:"typography"`
	Fallbacks  []Fallback       `json:"fallbacks,omitempty"`
}

// Fallback records an explicit value that could not be used.
type Fallback struct {
	Attribute string `json:"attribute"`
	Value     string `json:"value"`
	Reason    string `json:"reason"`
}

// Resolve produces the concrete style for role. th may be nil.
func Resolve(p Partial, th *theme.Theme, role Role) Concrete {
	spec := role.spec()

	var fallbacks []Fallback
	record := func(fb *Fallback) {
		if fb != nil {
			fallbacks = append(fallbacks, *fb)
		}
	}

	fill, fb := resolveColor("fill", p.Fill, th, spec.fill, spec.fillAlpha, defaultFill)
	record(fb)
	text, fb := resolveColor("text", p.Text, th, spec.text, spec.textAlpha, defaultText)
	record(fb)
	border, fb := resolveColor("border", p.Border, th, spec.border, 0, defaultBorder)
	record(fb)

	typo, typoFallbacks := resolveTypography(p, th, spec.typography)
	fallbacks = append(fallbacks, typoFallbacks...)

	return Concrete{
		Fill:       fill,
		Text:       text,
		Border:     border,
		Typography: typo,
		Fallbacks:  fallbacks,
	}
}

// ResolveColor resolves a single color attribute against slot, for values
// that do not belong to a role triple (chart series, navigation indicators).
func ResolveColor(attribute string, ref model.ColorRef, th *theme.Theme, slot theme.Slot) (Color, *Fallback) {
	return resolveColor(attribute, ref, th, slot, 0, defaultFill)
}

func resolveColor(attribute string, ref model.ColorRef, th *theme.Theme, slot theme.Slot, alpha uint8, engineDefault Color) (Color, *Fallback) {
	var fb *Fallback
	if ref.IsSet() {
		c, err := parseRef(ref, th)
		if err == nil {
			return c, nil
		}
		fb = &Fallback{Attribute: attribute, Value: string(ref), Reason: err.Error()}
	}

	if th == nil {
		return engineDefault, fb
	}

	c, err := ParseHex(th.Color(slot))
	if err != nil {
		// Theme tables are validated on construction.
		return engineDefault, fb
	}
	if alpha != 0 {
		c = c.WithAlpha(alpha)
	}
	return c, fb
}

func parseRef(ref model.ColorRef, th *theme.Theme) (Color, error) {
	name, isSlot := ref.SlotName()
	if !isSlot {
		return ParseHex(string(ref))
	}

	slot, ok := theme.ParseSlot(name)
	if !ok {
		return 0, sduierrors.NewInvalidColorFormatError(string(ref), "unknown theme slot")
	}
	if th == nil {
		return 0, sduierrors.NewInvalidColorFormatError(string(ref), "no theme to resolve slot")
	}
	return ParseHex(th.Color(slot))
}

func resolveTypography(p Partial, th *theme.Theme, rolePreset string) (theme.TextPreset, []Fallback) {
	var fbs []Fallback

	preset := defaultTypography
	if th != nil {
		typo := th.Typography()
		if base, ok := typo.Preset(rolePreset); ok {
			preset = base
		}
		if p.Typography != "" {
			if explicit, ok := typo.Preset(p.Typography); ok {
				preset = explicit
			} else {
				fbs = append(fbs, Fallback{Attribute: "typography", Value: p.Typography, Reason: "unknown typography preset"})
			}
		}
	}

	if p.Size != nil && *p.Size > 0 {
		preset.Size = *p.Size
	}
	if p.LineHeight != nil && *p.LineHeight > 0 {
		preset.LineHeight = *p.LineHeight
	}
	switch p.Weight {
	case "":
	case "normal", "medium", "bold":
		preset.Weight = p.Weight
	default:
		fbs = append(fbs, Fallback{Attribute: "weight", Value: p.Weight, Reason: "unknown font weight"})
	}

	return preset, fbs
}
