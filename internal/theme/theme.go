// Package theme holds the immutable design tokens used to resolve node styles.
//
// A Theme is built once from a Tokens table and never changes afterwards; all
// accessors return copies. A Context holds exactly two themes, light and dark,
// and hands out the precomputed instance matching the requested mode. Changing
// a token means building a new Theme (and a new Context), so a render pass
// that already holds a *Theme keeps seeing a consistent snapshot.
package theme

import (
	"fmt"

	sduierrors "github.com/alexisbeaulieu97/sdui/pkg/errors"
)

// Theme is an immutable token snapshot for one variant (light or dark).
type Theme struct {
	tokens Tokens
}

// New validates tokens and builds a Theme from them.
func New(tokens Tokens) (*Theme, error) {
	if err := ValidateTokens(tokens); err != nil {
		return nil, err
	}
	return &Theme{tokens: tokens}, nil
}

// MustNew is New for token tables known to be valid, such as the built-in defaults.
func MustNew(tokens Tokens) *Theme {
	t, err := New(tokens)
	if err != nil {
		panic(fmt.Sprintf("theme: invalid built-in tokens: %v", err))
	}
	return t
}

// IsDark reports whether this is the dark variant.
func (t *Theme) IsDark() bool {
	return t.tokens.ColorScheme.IsDark
}

// Color returns the six-digit hex value of slot.
func (t *Theme) Color(slot Slot) string {
	return t.tokens.ColorScheme.Hex(slot)
}

// ColorScheme returns a copy of the color table.
func (t *Theme) ColorScheme() ColorScheme {
	return t.tokens.ColorScheme
}

// Typography returns a copy of the typography presets.
func (t *Theme) Typography() Typography {
	return t.tokens.Typography
}

// Shapes returns a copy of the corner radius presets.
func (t *Theme) Shapes() Shapes {
	return t.tokens.Shapes
}

// Elevation returns a copy of the elevation table.
func (t *Theme) Elevation() Elevation {
	return t.tokens.Elevation
}

// Spacing returns a copy of the spacing scale.
func (t *Theme) Spacing() SpacingScale {
	return t.tokens.Spacing
}

// Sizes returns a copy of the component size table.
func (t *Theme) Sizes() Sizes {
	return t.tokens.Sizes
}

// Motion returns a copy of the motion tokens.
func (t *Theme) Motion() Motion {
	return t.tokens.Motion
}

// Export returns the full token table in its serializable form.
func (t *Theme) Export() Tokens {
	return t.tokens
}

// Context holds the light and dark themes.
type Context struct {
	light *Theme
	dark  *Theme
}

// NewContext pairs a light and a dark theme. The isDark flag of each theme
// must match its position.
func NewContext(light, dark *Theme) (*Context, error) {
	if light == nil || dark == nil {
		return nil, sduierrors.NewSchemaError("theme", "both light and dark themes are required", nil)
	}
	if light.IsDark() {
		return nil, sduierrors.NewSchemaError("light.colorScheme.isDark", "light theme is marked dark", nil)
	}
	if !dark.IsDark() {
		return nil, sduierrors.NewSchemaError("dark.colorScheme.isDark", "dark theme is not marked dark", nil)
	}
	return &Context{light: light, dark: dark}, nil
}

// NewContextFromTokens validates both tables of set and builds a Context.
func NewContextFromTokens(set TokenSet) (*Context, error) {
	light, err := New(set.Light)
	if err != nil {
		return nil, fmt.Errorf("light theme: %w", err)
	}
	dark, err := New(set.Dark)
	if err != nil {
		return nil, fmt.Errorf("dark theme: %w", err)
	}
	return NewContext(light, dark)
}

// DefaultContext builds a Context from the built-in token tables.
func DefaultContext() *Context {
	return &Context{
		light: MustNew(DefaultLightTokens()),
		dark:  MustNew(DefaultDarkTokens()),
	}
}

// Select returns the precomputed theme for the requested mode.
func (c *Context) Select(isDark bool) *Theme {
	if isDark {
		return c.dark
	}
	return c.light
}

// Light returns the light theme.
func (c *Context) Light() *Theme {
	return c.light
}

// Dark returns the dark theme.
func (c *Context) Dark() *Theme {
	return c.dark
}
