package style

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	sduierrors "github.com/alexisbeaulieu97/sdui/pkg/errors"
)

// Color is a packed 0xAARRGGBB value.
type Color uint32

const opaque Color = 0xFF000000

// ParseHex parses six hex digits with an optional leading '#'. The result is
// always fully opaque: any other length, including eight-digit ARGB strings,
// is rejected.
func ParseHex(s string) (Color, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return 0, sduierrors.NewInvalidColorFormatError(s, fmt.Sprintf("expected 6 hex digits, got %d", len(digits)))
	}
	for _, r := range digits {
		if !isHexDigit(r) {
			return 0, sduierrors.NewInvalidColorFormatError(s, fmt.Sprintf("invalid hex digit %q", r))
		}
	}

	c, err := colorful.Hex("#" + digits)
	if err != nil {
		return 0, sduierrors.NewInvalidColorFormatError(s, err.Error())
	}

	return fromColorful(c), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.RGB255()
	return opaque | Color(r)<<16 | Color(g)<<8 | Color(b)
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.Red()) / 255,
		G: float64(c.Green()) / 255,
		B: float64(c.Blue()) / 255,
	}
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c Color) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c Color) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c Color) Blue() uint8 { return uint8(c) }

// WithAlpha replaces the alpha channel.
func (c Color) WithAlpha(a uint8) Color {
	return Color(a)<<24 | c&0x00FFFFFF
}

// Hex formats the color as "#AARRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%08X", uint32(c))
}

// RGBHex formats the color as "#RRGGBB", dropping alpha.
func (c Color) RGBHex() string {
	return fmt.Sprintf("#%06X", uint32(c)&0x00FFFFFF)
}

func (c Color) String() string { return c.Hex() }

// MarshalText encodes the color as "#AARRGGBB".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// Over composites c onto an opaque background and returns an opaque color.
// Surfaces that cannot draw translucency use it to flatten reduced-opacity
// roles such as disabled text.
func (c Color) Over(bg Color) Color {
	a := c.Alpha()
	if a == 0xFF {
		return c
	}
	t := float64(a) / 255
	blended := bg.toColorful().BlendRgb(c.toColorful(), t).Clamped()
	return fromColorful(blended)
}
