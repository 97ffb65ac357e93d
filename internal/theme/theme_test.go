package theme

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sduierrors "github.com/alexisbeaulieu97/sdui/pkg/errors"
)

func TestDefaultContextSelectReturnsPrecomputedInstances(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext()

	light := ctx.Select(false)
	dark := ctx.Select(true)

	assert.False(t, light.IsDark())
	assert.True(t, dark.IsDark())
	assert.Same(t, light, ctx.Select(false), "select must not build a theme per call")
	assert.Same(t, dark, ctx.Select(true))
	assert.Same(t, light, ctx.Light())
	assert.Same(t, dark, ctx.Dark())
}

func TestColorSchemeHasFifteenSlots(t *testing.T) {
	t.Parallel()

	slots := Slots()
	require.Len(t, slots, 15)

	light := MustNew(DefaultLightTokens())
	for _, slot := range slots {
		assert.Len(t, light.Color(slot), 6, "slot %s", slot)
	}
}

func TestParseSlot(t *testing.T) {
	t.Parallel()

	slot, ok := ParseSlot("surfaceContainer")
	require.True(t, ok)
	assert.Equal(t, SlotSurfaceContainer, slot)
	assert.Equal(t, "surfaceContainer", slot.String())

	_, ok = ParseSlot("tertiary")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Slot(99).String())
}

func TestThemeAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	th := MustNew(DefaultLightTokens())

	scheme := th.ColorScheme()
	scheme.Primary = "000000"
	exported := th.Export()
	exported.Shapes.Medium = 1

	assert.Equal(t, "6750A4", th.Color(SlotPrimary))
	assert.Equal(t, 12, th.Shapes().Medium)
}

func TestThemeIsSafeForConcurrentReaders(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(dark bool) {
			defer wg.Done()
			th := ctx.Select(dark)
			_ = th.Typography().BodyLarge
			_ = th.Color(SlotOnBackground)
		}(i%2 == 0)
	}
	wg.Wait()
}

func TestNewRejectsMalformedColor(t *testing.T) {
	t.Parallel()

	tokens := DefaultLightTokens()
	tokens.ColorScheme.Surface = "#FFFBFE"

	_, err := New(tokens)
	require.Error(t, err)

	var schemaErr *sduierrors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Field, "surface")
}

func TestNewContextRejectsSwappedVariants(t *testing.T) {
	t.Parallel()

	light := MustNew(DefaultLightTokens())
	dark := MustNew(DefaultDarkTokens())

	_, err := NewContext(dark, light)
	require.Error(t, err)

	_, err = NewContext(light, nil)
	require.Error(t, err)

	ctx, err := NewContext(light, dark)
	require.NoError(t, err)
	assert.Same(t, dark, ctx.Select(true))
}

func TestElevationLevelClamps(t *testing.T) {
	t.Parallel()

	e := DefaultLightTokens().Elevation
	assert.Equal(t, 0, e.Level(-3))
	assert.Equal(t, 1, e.Level(1))
	assert.Equal(t, 6, e.Level(3))
	assert.Equal(t, 12, e.Level(5))
	assert.Equal(t, 12, e.Level(9))
}

func TestTypographyPreset(t *testing.T) {
	t.Parallel()

	typo := DefaultLightTokens().Typography
	preset, ok := typo.Preset(PresetLabelLarge)
	require.True(t, ok)
	assert.Equal(t, TextPreset{Size: 14, LineHeight: 20, Weight: "medium"}, preset)

	_, ok = typo.Preset("displaySmall")
	assert.False(t, ok)
}

func TestLoadTokensOverridesSelectedKeys(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.yaml")
	content := `
light:
  colorScheme:
    primary: "#112233"
  shapes:
    medium: 10
dark:
  colorScheme:
    onBackground: "aabbcc"
    isDark: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	set, err := LoadTokens(path)
	require.NoError(t, err)

	assert.Equal(t, "112233", set.Light.ColorScheme.Primary)
	assert.Equal(t, 10, set.Light.Shapes.Medium)
	assert.Equal(t, "FFFFFF", set.Light.ColorScheme.OnPrimary)
	assert.Equal(t, "AABBCC", set.Dark.ColorScheme.OnBackground)
	assert.True(t, set.Dark.ColorScheme.IsDark)

	ctx, err := NewContextFromTokens(set)
	require.NoError(t, err)
	assert.Equal(t, "112233", ctx.Light().Color(SlotPrimary))
}

func TestLoadTokensReportsInvalidValues(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("light:\n  colorScheme:\n    outline: \"#12345678\"\n"), 0o644))

	_, err := LoadTokens(path)
	require.Error(t, err)

	var schemaErr *sduierrors.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "colorScheme.outline", schemaErr.Field)
}

func TestLoadTokensReportsParseErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "tokens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("light:\n  colorScheme: [\n"), 0o644))

	_, err := LoadTokens(path)
	require.Error(t, err)

	var parseErr *sduierrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.Path)
}
