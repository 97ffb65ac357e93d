package theme

// Slot identifies one of the named color roles of a ColorScheme.
type Slot int

const (
	SlotPrimary Slot = iota
	SlotOnPrimary
	SlotPrimaryContainer
	SlotOnPrimaryContainer
	SlotSecondaryContainer
	SlotOnSecondaryContainer
	SlotSurface
	SlotOnSurface
	SlotOnSurfaceVariant
	SlotSurfaceContainer
	SlotSurfaceContainerHigh
	SlotBackground
	SlotOnBackground
	SlotOutline
	SlotOutlineVariant

	slotCount
)

var slotNames = [slotCount]string{
	SlotPrimary:              "primary",
	SlotOnPrimary:            "onPrimary",
	SlotPrimaryContainer:     "primaryContainer",
	SlotOnPrimaryContainer:   "onPrimaryContainer",
	SlotSecondaryContainer:   "secondaryContainer",
	SlotOnSecondaryContainer: "onSecondaryContainer",
	SlotSurface:              "surface",
	SlotOnSurface:            "onSurface",
	SlotOnSurfaceVariant:     "onSurfaceVariant",
	SlotSurfaceContainer:     "surfaceContainer",
	SlotSurfaceContainerHigh: "surfaceContainerHigh",
	SlotBackground:           "background",
	SlotOnBackground:         "onBackground",
	SlotOutline:              "outline",
	SlotOutlineVariant:       "outlineVariant",
}

func (s Slot) String() string {
	if s < 0 || s >= slotCount {
		return "unknown"
	}
	return slotNames[s]
}

// Slots returns every color slot in declaration order.
func Slots() []Slot {
	slots := make([]Slot, 0, slotCount)
	for s := Slot(0); s < slotCount; s++ {
		slots = append(slots, s)
	}
	return slots
}

// ParseSlot looks up a slot by its exported name.
func ParseSlot(name string) (Slot, bool) {
	for s := Slot(0); s < slotCount; s++ {
		if slotNames[s] == name {
			return s, true
		}
	}
	return 0, false
}

// ColorScheme holds one six-hex-digit RGB string per slot.
type ColorScheme struct {
	Primary              string `yaml:"primary" json:"primary" validate:"required,hex6"`
	OnPrimary            string `yaml:"onPrimary" json:"onPrimary" validate:"required,hex6"`
	PrimaryContainer     string `yaml:"primaryContainer" json:"primaryContainer" validate:"required,hex6"`
	OnPrimaryContainer   string `yaml:"onPrimaryContainer" json:"onPrimaryContainer" validate:"required,hex6"`
	SecondaryContainer   string `yaml:"secondaryContainer" json:"secondaryContainer" validate:"required,hex6"`
	OnSecondaryContainer string `yaml:"onSecondaryContainer" json:"onSecondaryContainer" validate:"required,hex6"`
	Surface              string `yaml:"surface" json:"surface" validate:"required,hex6"`
	OnSurface            string `yaml:"onSurface" json:"onSurface" validate:"required,hex6"`
	OnSurfaceVariant     string `yaml:"onSurfaceVariant" json:"onSurfaceVariant" validate:"required,hex6"`
	SurfaceContainer     string `yaml:"surfaceContainer" json:"surfaceContainer" validate:"required,hex6"`
	SurfaceContainerHigh string `yaml:"surfaceContainerHigh" json:"surfaceContainerHigh" validate:"required,hex6"`
	Background           string `yaml:"background" json:"background" validate:"required,hex6"`
	OnBackground         string `yaml:"onBackground" json:"onBackground" validate:"required,hex6"`
	Outline              string `yaml:"outline" json:"outline" validate:"required,hex6"`
	OutlineVariant       string `yaml:"outlineVariant" json:"outlineVariant" validate:"required,hex6"`
	IsDark               bool   `yaml:"isDark" json:"isDark"`
}

// Hex returns the six-digit value stored for slot.
func (cs ColorScheme) Hex(slot Slot) string {
	switch slot {
	case SlotPrimary:
		return cs.Primary
	case SlotOnPrimary:
		return cs.OnPrimary
	case SlotPrimaryContainer:
		return cs.PrimaryContainer
	case SlotOnPrimaryContainer:
		return cs.OnPrimaryContainer
	case SlotSecondaryContainer:
		return cs.SecondaryContainer
	case SlotOnSecondaryContainer:
		return cs.OnSecondaryContainer
	case SlotSurface:
		return cs.Surface
	case SlotOnSurface:
		return cs.OnSurface
	case SlotOnSurfaceVariant:
		return cs.OnSurfaceVariant
	case SlotSurfaceContainer:
		return cs.SurfaceContainer
	case SlotSurfaceContainerHigh:
		return cs.SurfaceContainerHigh
	case SlotBackground:
		return cs.Background
	case SlotOnBackground:
		return cs.OnBackground
	case SlotOutline:
		return cs.Outline
	case SlotOutlineVariant:
		return cs.OutlineVariant
	default:
		return ""
	}
}

// TextPreset is a named typography style.
type TextPreset struct {
	Size       int    `yaml:"size" json:"size" validate:"min=1"`
	LineHeight int    `yaml:"lineHeight" json:"lineHeight" validate:"min=1"`
	Weight     string `yaml:"weight" json:"weight" validate:"oneof=normal medium bold"`
}

// Typography groups the text presets a node may reference by name.
type Typography struct {
	DisplayLarge  TextPreset `yaml:"displayLarge" json:"displayLarge"`
	HeadlineLarge TextPreset `yaml:"headlineLarge" json:"headlineLarge"`
	TitleLarge    TextPreset `yaml:"titleLarge" json:"titleLarge"`
	TitleMedium   TextPreset `yaml:"titleMedium" json:"titleMedium"`
	BodyLarge     TextPreset `yaml:"bodyLarge" json:"bodyLarge"`
	BodyMedium    TextPreset `yaml:"bodyMedium" json:"bodyMedium"`
	LabelLarge    TextPreset `yaml:"labelLarge" json:"labelLarge"`
	LabelMedium   TextPreset `yaml:"labelMedium" json:"labelMedium"`
}

// Preset names accepted by Typography.Preset.
const (
	PresetDisplayLarge  = "displayLarge"
	PresetHeadlineLarge = "headlineLarge"
	PresetTitleLarge    = "titleLarge"
	PresetTitleMedium   = "titleMedium"
	PresetBodyLarge     = "bodyLarge"
	PresetBodyMedium    = "bodyMedium"
	PresetLabelLarge    = "labelLarge"
	PresetLabelMedium   = "labelMedium"
)

// Preset returns the preset with the given name.
func (t Typography) Preset(name string) (TextPreset, bool) {
	switch name {
	case PresetDisplayLarge:
		return t.DisplayLarge, true
	case PresetHeadlineLarge:
		return t.HeadlineLarge, true
	case PresetTitleLarge:
		return t.TitleLarge, true
	case PresetTitleMedium:
		return t.TitleMedium, true
	case PresetBodyLarge:
		return t.BodyLarge, true
	case PresetBodyMedium:
		return t.BodyMedium, true
	case PresetLabelLarge:
		return t.LabelLarge, true
	case PresetLabelMedium:
		return t.LabelMedium, true
	default:
		return TextPreset{}, false
	}
}

// Shapes holds corner-radius presets.
type Shapes struct {
	None       int `yaml:"none" json:"none" validate:"min=0"`
	ExtraSmall int `yaml:"extraSmall" json:"extraSmall" validate:"min=0"`
	Small      int `yaml:"small" json:"small" validate:"min=0"`
	Medium     int `yaml:"medium" json:"medium" validate:"min=0"`
	Large      int `yaml:"large" json:"large" validate:"min=0"`
	ExtraLarge int `yaml:"extraLarge" json:"extraLarge" validate:"min=0"`
	Full       int `yaml:"full" json:"full" validate:"min=0"`
}

// Elevation maps the six elevation levels to shadow depths.
type Elevation struct {
	Level0 int `yaml:"level0" json:"level0" validate:"min=0"`
	Level1 int `yaml:"level1" json:"level1" validate:"min=0"`
	Level2 int `yaml:"level2" json:"level2" validate:"min=0"`
	Level3 int `yaml:"level3" json:"level3" validate:"min=0"`
	Level4 int `yaml:"level4" json:"level4" validate:"min=0"`
	Level5 int `yaml:"level5" json:"level5" validate:"min=0"`
}

// MaxElevationLevel is the highest elevation level a node may request.
const MaxElevationLevel = 5

// Level returns the depth for level, clamping it into [0, MaxElevationLevel].
func (e Elevation) Level(level int) int {
	switch {
	case level <= 0:
		return e.Level0
	case level == 1:
		return e.Level1
	case level == 2:
		return e.Level2
	case level == 3:
		return e.Level3
	case level == 4:
		return e.Level4
	default:
		return e.Level5
	}
}

// SpacingScale is the shared spacing rhythm.
type SpacingScale struct {
	ExtraSmall int `yaml:"extraSmall" json:"extraSmall" validate:"min=0"`
	Small      int `yaml:"small" json:"small" validate:"min=0"`
	Medium     int `yaml:"medium" json:"medium" validate:"min=0"`
	Large      int `yaml:"large" json:"large" validate:"min=0"`
	ExtraLarge int `yaml:"extraLarge" json:"extraLarge" validate:"min=0"`
}

// Sizes holds fixed component heights.
type Sizes struct {
	ButtonSmall       int `yaml:"buttonSmall" json:"buttonSmall" validate:"min=1"`
	ButtonMedium      int `yaml:"buttonMedium" json:"buttonMedium" validate:"min=1"`
	ButtonLarge       int `yaml:"buttonLarge" json:"buttonLarge" validate:"min=1"`
	FABSmall          int `yaml:"fabSmall" json:"fabSmall" validate:"min=1"`
	FABRegular        int `yaml:"fabRegular" json:"fabRegular" validate:"min=1"`
	FABLarge          int `yaml:"fabLarge" json:"fabLarge" validate:"min=1"`
	ListItemOneLine   int `yaml:"listItemOneLine" json:"listItemOneLine" validate:"min=1"`
	ListItemTwoLine   int `yaml:"listItemTwoLine" json:"listItemTwoLine" validate:"min=1"`
	NavigationBarItem int `yaml:"navigationBarItem" json:"navigationBarItem" validate:"min=1"`
}

// Durations lists the sixteen motion durations in milliseconds.
type Durations struct {
	Short1     int `yaml:"short1" json:"short1" validate:"min=0"`
	Short2     int `yaml:"short2" json:"short2" validate:"min=0"`
	Short3     int `yaml:"short3" json:"short3" validate:"min=0"`
	Short4     int `yaml:"short4" json:"short4" validate:"min=0"`
	Medium1    int `yaml:"medium1" json:"medium1" validate:"min=0"`
	Medium2    int `yaml:"medium2" json:"medium2" validate:"min=0"`
	Medium3    int `yaml:"medium3" json:"medium3" validate:"min=0"`
	Medium4    int `yaml:"medium4" json:"medium4" validate:"min=0"`
	Long1      int `yaml:"long1" json:"long1" validate:"min=0"`
	Long2      int `yaml:"long2" json:"long2" validate:"min=0"`
	Long3      int `yaml:"long3" json:"long3" validate:"min=0"`
	Long4      int `yaml:"long4" json:"long4" validate:"min=0"`
	ExtraLong1 int `yaml:"extraLong1" json:"extraLong1" validate:"min=0"`
	ExtraLong2 int `yaml:"extraLong2" json:"extraLong2" validate:"min=0"`
	ExtraLong3 int `yaml:"extraLong3" json:"extraLong3" validate:"min=0"`
	ExtraLong4 int `yaml:"extraLong4" json:"extraLong4" validate:"min=0"`
}

// Easings lists the seven named easing curves.
type Easings struct {
	Linear               string `yaml:"linear" json:"linear" validate:"required"`
	Standard             string `yaml:"standard" json:"standard" validate:"required"`
	StandardAccelerate   string `yaml:"standardAccelerate" json:"standardAccelerate" validate:"required"`
	StandardDecelerate   string `yaml:"standardDecelerate" json:"standardDecelerate" validate:"required"`
	Emphasized           string `yaml:"emphasized" json:"emphasized" validate:"required"`
	EmphasizedAccelerate string `yaml:"emphasizedAccelerate" json:"emphasizedAccelerate" validate:"required"`
	EmphasizedDecelerate string `yaml:"emphasizedDecelerate" json:"emphasizedDecelerate" validate:"required"`
}

// Motion groups duration and easing tokens.
type Motion struct {
	Durations Durations `yaml:"durations" json:"durations"`
	Easings   Easings   `yaml:"easings" json:"easings"`
}

// Tokens is the complete, serializable token table for one theme variant.
// It contains only value types so copies never share state.
type Tokens struct {
	ColorScheme ColorScheme  `yaml:"colorScheme" json:"colorScheme"`
	Typography  Typography   `yaml:"typography" json:"typography"`
	Shapes      Shapes       `yaml:"shapes" json:"shapes"`
	Elevation   Elevation    `yaml:"elevation" json:"elevation"`
	Spacing     SpacingScale `yaml:"spacing" json:"spacing"`
	Sizes       Sizes        `yaml:"sizes" json:"sizes"`
	Motion      Motion       `yaml:"motion" json:"motion"`
}

// TokenSet pairs the light and dark token tables.
type TokenSet struct {
	Light Tokens `yaml:"light" json:"light"`
	Dark  Tokens `yaml:"dark" json:"dark"`
}

// DefaultLightTokens returns the built-in light token table.
func DefaultLightTokens() Tokens {
	return Tokens{
		ColorScheme: ColorScheme{
			Primary:              "6750A4",
			OnPrimary:            "FFFFFF",
			PrimaryContainer:     "EADDFF",
			OnPrimaryContainer:   "21005D",
			SecondaryContainer:   "E8DEF8",
			OnSecondaryContainer: "1D192B",
			Surface:              "FFFBFE",
			OnSurface:            "1C1B1F",
			OnSurfaceVariant:     "49454F",
			SurfaceContainer:     "F3EDF7",
			SurfaceContainerHigh: "ECE6F0",
			Background:           "FFFBFE",
			OnBackground:         "1C1B1F",
			Outline:              "79747E",
			OutlineVariant:       "CAC4D0",
			IsDark:               false,
		},
		Typography: defaultTypography(),
		Shapes:     defaultShapes(),
		Elevation:  defaultElevation(),
		Spacing:    defaultSpacing(),
		Sizes:      defaultSizes(),
		Motion:     defaultMotion(),
	}
}

// DefaultDarkTokens returns the built-in dark token table.
func DefaultDarkTokens() Tokens {
	tokens := DefaultLightTokens()
	tokens.ColorScheme = ColorScheme{
		Primary:              "D0BCFF",
		OnPrimary:            "381E72",
		PrimaryContainer:     "4F378B",
		OnPrimaryContainer:   "EADDFF",
		SecondaryContainer:   "4A4458",
		OnSecondaryContainer: "E8DEF8",
		Surface:              "1C1B1F",
		OnSurface:            "E6E1E5",
		OnSurfaceVariant:     "CAC4D0",
		SurfaceContainer:     "211F26",
		SurfaceContainerHigh: "2B2930",
		Background:           "1C1B1F",
		OnBackground:         "E6E1E5",
		Outline:              "938F99",
		OutlineVariant:       "49454F",
		IsDark:               true,
	}
	return tokens
}

// DefaultTokenSet returns the built-in light and dark tables.
func DefaultTokenSet() TokenSet {
	return TokenSet{Light: DefaultLightTokens(), Dark: DefaultDarkTokens()}
}

func defaultTypography() Typography {
	return Typography{
		DisplayLarge:  TextPreset{Size: 57, LineHeight: 64, Weight: "normal"},
		HeadlineLarge: TextPreset{Size: 32, LineHeight: 40, Weight: "normal"},
		TitleLarge:    TextPreset{Size: 22, LineHeight: 28, Weight: "normal"},
		TitleMedium:   TextPreset{Size: 16, LineHeight: 24, Weight: "medium"},
		BodyLarge:     TextPreset{Size: 16, LineHeight: 24, Weight: "normal"},
		BodyMedium:    TextPreset{Size: 14, LineHeight: 20, Weight: "normal"},
		LabelLarge:    TextPreset{Size: 14, LineHeight: 20, Weight: "medium"},
		LabelMedium:   TextPreset{Size: 12, LineHeight: 16, Weight: "medium"},
	}
}

func defaultShapes() Shapes {
	return Shapes{None: 0, ExtraSmall: 4, Small: 8, Medium: 12, Large: 16, ExtraLarge: 28, Full: 999}
}

func defaultElevation() Elevation {
	return Elevation{Level0: 0, Level1: 1, Level2: 3, Level3: 6, Level4: 8, Level5: 12}
}

func defaultSpacing() SpacingScale {
	return SpacingScale{ExtraSmall: 4, Small: 8, Medium: 16, Large: 24, ExtraLarge: 32}
}

func defaultSizes() Sizes {
	return Sizes{
		ButtonSmall:       32,
		ButtonMedium:      40,
		ButtonLarge:       56,
		FABSmall:          40,
		FABRegular:        56,
		FABLarge:          96,
		ListItemOneLine:   56,
		ListItemTwoLine:   72,
		NavigationBarItem: 32,
	}
}

func defaultMotion() Motion {
	return Motion{
		Durations: Durations{
			Short1: 50, Short2: 100, Short3: 150, Short4: 200,
			Medium1: 250, Medium2: 300, Medium3: 350, Medium4: 400,
			Long1: 450, Long2: 500, Long3: 550, Long4: 600,
			ExtraLong1: 700, ExtraLong2: 800, ExtraLong3: 900, ExtraLong4: 1000,
		},
		Easings: Easings{
			Linear:               "cubic-bezier(0.0, 0.0, 1.0, 1.0)",
			Standard:             "cubic-bezier(0.2, 0.0, 0, 1.0)",
			StandardAccelerate:   "cubic-bezier(0.3, 0, 1, 1)",
			StandardDecelerate:   "cubic-bezier(0, 0, 0, 1)",
			Emphasized:           "cubic-bezier(0.2, 0.0, 0, 1.0)",
			EmphasizedAccelerate: "cubic-bezier(0.3, 0.0, 0.8, 0.15)",
			EmphasizedDecelerate: "cubic-bezier(0.05, 0.7, 0.1, 1.0)",
		},
	}
}
