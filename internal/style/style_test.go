package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/sdui/internal/model"
	"github.com/alexisbeaulieu97/sdui/internal/theme"
	sduierrors "github.com/alexisbeaulieu97/sdui/pkg/errors"
)

func TestParseHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{name: "prefixed", input: "#AABBCC", want: 0xFFAABBCC},
		{name: "bare", input: "aabbcc", want: 0xFFAABBCC},
		{name: "black is opaque", input: "#000000", want: 0xFF000000},
		{name: "eight digits rejected", input: "#11223344", wantErr: true},
		{name: "non hex rejected", input: "#ZZZZZZ", wantErr: true},
		{name: "short form rejected", input: "#ABC", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
		{name: "double prefix rejected", input: "##AABBCC", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseHex(tt.input)
			if tt.wantErr {
				var colorErr *sduierrors.InvalidColorFormatError
				require.ErrorAs(t, err, &colorErr)
				require.Equal(t, tt.input, colorErr.Value)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, uint8(0xFF), got.Alpha())
		})
	}
}

func TestColorFormatting(t *testing.T) {
	t.Parallel()

	c := Color(0xFFAABBCC)
	assert.Equal(t, "#FFAABBCC", c.Hex())
	assert.Equal(t, "#AABBCC", c.RGBHex())
	assert.Equal(t, Color(0x61AABBCC), c.WithAlpha(0x61))

	text, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#FFAABBCC", string(text))
}

func TestColorOver(t *testing.T) {
	t.Parallel()

	white := Color(0xFFFFFFFF)
	black := Color(0xFF000000)

	assert.Equal(t, black, black.Over(white), "opaque colors are unchanged")

	half := black.WithAlpha(0x80).Over(white)
	assert.Equal(t, uint8(0xFF), half.Alpha())
	assert.InDelta(t, 127, int(half.Red()), 1)
	assert.Equal(t, half.Red(), half.Green())
}

func TestResolveUsesThemeSlotsWhenUnset(t *testing.T) {
	t.Parallel()

	light := theme.DefaultContext().Select(false)

	got := Resolve(Partial{}, light, RoleCard)
	assert.Equal(t, Color(0xFFF3EDF7), got.Fill, "card fill is surfaceContainer")
	assert.Equal(t, Color(0xFF1C1B1F), got.Text, "card text is onSurface")
	assert.Empty(t, got.Fallbacks)

	text := Resolve(Partial{}, light, RoleText)
	assert.Equal(t, Color(0xFF1C1B1F), text.Text, "text is onBackground")
	assert.Equal(t, 16, text.Typography.Size)

	fab := Resolve(Partial{}, light, RoleFAB)
	assert.Equal(t, Color(0xFFEADDFF), fab.Fill)
	assert.Equal(t, Color(0xFF21005D), fab.Text)
}

func TestResolveExplicitValueWins(t *testing.T) {
	t.Parallel()

	dark := theme.DefaultContext().Select(true)

	got := Resolve(Partial{Fill: "#AABBCC", Text: "@primary"}, dark, RoleCard)
	assert.Equal(t, Color(0xFFAABBCC), got.Fill)
	assert.Equal(t, Color(0xFFD0BCFF), got.Text)
	assert.Empty(t, got.Fallbacks)
}

func TestResolveInvalidColorFallsBackToThemeSlot(t *testing.T) {
	t.Parallel()

	light := theme.DefaultContext().Select(false)

	got := Resolve(Partial{Fill: "#ZZZZZZ", Border: "@tertiary"}, light, RoleList)
	assert.Equal(t, Color(0xFFF3EDF7), got.Fill)
	assert.Equal(t, Color(0xFFCAC4D0), got.Border)
	require.Len(t, got.Fallbacks, 2)
	assert.Equal(t, "fill", got.Fallbacks[0].Attribute)
	assert.Equal(t, "#ZZZZZZ", got.Fallbacks[0].Value)
	assert.Equal(t, "border", got.Fallbacks[1].Attribute)
}

func TestResolveEightDigitColorIsMalformed(t *testing.T) {
	t.Parallel()

	light := theme.DefaultContext().Select(false)

	got := Resolve(Partial{Text: "#11223344"}, light, RoleText)
	assert.Equal(t, Color(0xFF1C1B1F), got.Text)
	require.Len(t, got.Fallbacks, 1)
}

func TestResolveWithoutThemeUsesEngineDefaults(t *testing.T) {
	t.Parallel()

	got := Resolve(Partial{Fill: "bad"}, nil, RoleCard)
	assert.Equal(t, defaultFill, got.Fill)
	assert.Equal(t, defaultText, got.Text)
	assert.Equal(t, defaultTypography, got.Typography)
	require.Len(t, got.Fallbacks, 1)

	explicit := Resolve(Partial{Fill: "#010203"}, nil, RoleCard)
	assert.Equal(t, Color(0xFF010203), explicit.Fill)
}

func TestResolveDisabledButtonReducesOpacity(t *testing.T) {
	t.Parallel()

	light := theme.DefaultContext().Select(false)

	got := Resolve(Partial{}, light, RoleButtonDisabled)
	assert.Equal(t, DisabledContentAlpha, got.Text.Alpha())
	assert.Equal(t, Color(0x1C1B1F), got.Text&0x00FFFFFF)
	assert.Equal(t, DisabledContainerAlpha, got.Fill.Alpha())
}

func TestResolveTypographyOverrides(t *testing.T) {
	t.Parallel()

	light := theme.DefaultContext().Select(false)
	size := 20

	got := Resolve(Partial{Typography: theme.PresetHeadlineLarge, Size: &size, Weight: "bold"}, light, RoleText)
	assert.Equal(t, theme.TextPreset{Size: 20, LineHeight: 40, Weight: "bold"}, got.Typography)

	unknown := Resolve(Partial{Typography: "jumbo"}, light, RoleText)
	assert.Equal(t, 16, unknown.Typography.Size)
	require.Len(t, unknown.Fallbacks, 1)
	assert.Equal(t, "typography", unknown.Fallbacks[0].Attribute)
}

func TestResolveUnknownWeightKeepsPresetWeight(t *testing.T) {
	t.Parallel()

	light := theme.DefaultContext().Select(false)

	got := Resolve(Partial{Typography: theme.PresetTitleMedium, Weight: "heavy"}, light, RoleText)
	assert.Equal(t, "medium", got.Typography.Weight)
	require.Len(t, got.Fallbacks, 1)
	assert.Equal(t, Fallback{Attribute: "weight", Value: "heavy", Reason: "unknown font weight"}, got.Fallbacks[0])

	both := Resolve(Partial{Typography: "jumbo", Weight: "heavy"}, light, RoleText)
	require.Len(t, both.Fallbacks, 2)
	assert.Equal(t, "typography", both.Fallbacks[0].Attribute)
	assert.Equal(t, "weight", both.Fallbacks[1].Attribute)
}

func TestResolveColorForSingleAttribute(t *testing.T) {
	t.Parallel()

	light := theme.DefaultContext().Select(false)

	c, fb := ResolveColor("indicator", model.ColorRef(""), light, theme.SlotSecondaryContainer)
	assert.Nil(t, fb)
	assert.Equal(t, Color(0xFFE8DEF8), c)

	c, fb = ResolveColor("indicator", model.ColorRef("nope"), light, theme.SlotPrimary)
	require.NotNil(t, fb)
	assert.Equal(t, Color(0xFF6750A4), c)
}

func TestResolveIsDeterministic(t *testing.T) {
	t.Parallel()

	light := theme.DefaultContext().Select(false)
	p := Partial{Fill: "#ZZZZZZ", Text: "#123456"}

	assert.Equal(t, Resolve(p, light, RoleChip), Resolve(p, light, RoleChip))
}
