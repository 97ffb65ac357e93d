package theme

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/sdui/internal/validation"
	sduierrors "github.com/alexisbeaulieu97/sdui/pkg/errors"
)

// ValidateTokens checks that every color slot is a six-digit hex string and
// that the numeric tables are in range.
func ValidateTokens(tokens Tokens) error {
	if err := validation.Instance().Struct(tokens); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// LoadTokens reads a YAML token file with optional "light" and "dark"
// sections. Keys missing from the file keep their built-in values, so a file
// may override a handful of slots only. A leading '#' on color values is
// accepted and stripped.
func LoadTokens(path string) (TokenSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TokenSet{}, sduierrors.NewParseError(path, 0, err)
	}

	set := DefaultTokenSet()
	if err := yaml.Unmarshal(data, &set); err != nil {
		return TokenSet{}, sduierrors.NewParseError(path, validation.Line(err), err)
	}

	set.Light.ColorScheme = normalizeScheme(set.Light.ColorScheme)
	set.Dark.ColorScheme = normalizeScheme(set.Dark.ColorScheme)
	// The section a table was loaded into decides its mode.
	set.Light.ColorScheme.IsDark = false
	set.Dark.ColorScheme.IsDark = true

	if err := ValidateTokens(set.Light); err != nil {
		return TokenSet{}, fmt.Errorf("light tokens: %w", err)
	}
	if err := ValidateTokens(set.Dark); err != nil {
		return TokenSet{}, fmt.Errorf("dark tokens: %w", err)
	}

	return set, nil
}

func normalizeScheme(cs ColorScheme) ColorScheme {
	strip := func(s string) string {
		return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	}
	cs.Primary = strip(cs.Primary)
	cs.OnPrimary = strip(cs.OnPrimary)
	cs.PrimaryContainer = strip(cs.PrimaryContainer)
	cs.OnPrimaryContainer = strip(cs.OnPrimaryContainer)
	cs.SecondaryContainer = strip(cs.SecondaryContainer)
	cs.OnSecondaryContainer = strip(cs.OnSecondaryContainer)
	cs.Surface = strip(cs.Surface)
	cs.OnSurface = strip(cs.OnSurface)
	cs.OnSurfaceVariant = strip(cs.OnSurfaceVariant)
	cs.SurfaceContainer = strip(cs.SurfaceContainer)
	cs.SurfaceContainerHigh = strip(cs.SurfaceContainerHigh)
	cs.Background = strip(cs.Background)
	cs.OnBackground = strip(cs.OnBackground)
	cs.Outline = strip(cs.Outline)
	cs.OutlineVariant = strip(cs.OutlineVariant)
	return cs
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := lowerNamespace(ve.StructNamespace())
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return sduierrors.NewSchemaError(field, msg, err)
	}

	return sduierrors.NewSchemaError("tokens", err.Error(), err)
}

func lowerNamespace(ns string) string {
	parts := strings.Split(ns, ".")
	// Drop the root type name.
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToLower(part[:1]) + part[1:]
	}
	return strings.Join(parts, ".")
}
