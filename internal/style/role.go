package style

import "github.com/alexisbeaulieu97/sdui/internal/theme"

// Role names the visual part being styled. Each role has conventional theme
// slots for its fill, text and border, plus a default typography preset.
type Role int

const (
	RoleScreen Role = iota
	RoleContainer
	RoleCard
	RoleCardSupporting
	RoleText
	RoleButtonFilled
	RoleButtonTonal
	RoleButtonOutlined
	RoleButtonText
	RoleButtonElevated
	RoleButtonDisabled
	RoleList
	RoleListSupporting
	RoleGrid
	RoleImage
	RoleChart
	RoleProgress
	RoleChip
	RoleChipSelected
	RoleNavigation
	RoleNavigationSelected
	RoleFAB

	roleCount
)

// Opacity levels for disabled content.
const (
	DisabledContentAlpha   uint8 = 0x61
	DisabledContainerAlpha uint8 = 0x1F
)

type roleSpec struct {
	name       string
	fill       theme.Slot
	fillAlpha  uint8
	text       theme.Slot
	textAlpha  uint8
	border     theme.Slot
	typography string
}

var roleSpecs = [roleCount]roleSpec{
	RoleScreen:             {name: "screen", fill: theme.SlotBackground, text: theme.SlotOnBackground, border: theme.SlotOutlineVariant, typography: theme.PresetBodyLarge},
	RoleContainer:          {name: "container", fill: theme.SlotBackground, text: theme.SlotOnBackground, border: theme.SlotOutlineVariant, typography: theme.PresetBodyLarge},
	RoleCard:               {name: "card", fill: theme.SlotSurfaceContainer, text: theme.SlotOnSurface, border: theme.SlotOutlineVariant, typography: theme.PresetTitleMedium},
	RoleCardSupporting:     {name: "cardSupporting", fill: theme.SlotSurfaceContainer, text: theme.SlotOnSurfaceVariant, border: theme.SlotOutlineVariant, typography: theme.PresetBodyMedium},
	RoleText:               {name: "text", fill: theme.SlotBackground, text: theme.SlotOnBackground, border: theme.SlotOutlineVariant, typography: theme.PresetBodyLarge},
	RoleButtonFilled:       {name: "buttonFilled", fill: theme.SlotPrimary, text: theme.SlotOnPrimary, border: theme.SlotPrimary, typography: theme.PresetLabelLarge},
	RoleButtonTonal:        {name: "buttonTonal", fill: theme.SlotSecondaryContainer, text: theme.SlotOnSecondaryContainer, border: theme.SlotSecondaryContainer, typography: theme.PresetLabelLarge},
	RoleButtonOutlined:     {name: "buttonOutlined", fill: theme.SlotSurface, text: theme.SlotPrimary, border: theme.SlotOutline, typography: theme.PresetLabelLarge},
	RoleButtonText:         {name: "buttonText", fill: theme.SlotSurface, text: theme.SlotPrimary, border: theme.SlotSurface, typography: theme.PresetLabelLarge},
	RoleButtonElevated:     {name: "buttonElevated", fill: theme.SlotSurfaceContainerHigh, text: theme.SlotPrimary, border: theme.SlotSurfaceContainerHigh, typography: theme.PresetLabelLarge},
	RoleButtonDisabled:     {name: "buttonDisabled", fill: theme.SlotOnSurface, fillAlpha: DisabledContainerAlpha, text: theme.SlotOnSurface, textAlpha: DisabledContentAlpha, border: theme.SlotOutlineVariant, typography: theme.PresetLabelLarge},
	RoleList:               {name: "list", fill: theme.SlotSurfaceContainer, text: theme.SlotOnSurface, border: theme.SlotOutlineVariant, typography: theme.PresetBodyLarge},
	RoleListSupporting:     {name: "listSupporting", fill: theme.SlotSurfaceContainer, text: theme.SlotOnSurfaceVariant, border: theme.SlotOutlineVariant, typography: theme.PresetBodyMedium},
	RoleGrid:               {name: "grid", fill: theme.SlotSurfaceContainer, text: theme.SlotOnSurface, border: theme.SlotOutlineVariant, typography: theme.PresetBodyMedium},
	RoleImage:              {name: "image", fill: theme.SlotSurfaceContainerHigh, text: theme.SlotOnSurfaceVariant, border: theme.SlotOutlineVariant, typography: theme.PresetHeadlineLarge},
	RoleChart:              {name: "chart", fill: theme.SlotSurfaceContainer, text: theme.SlotOnSurface, border: theme.SlotOutlineVariant, typography: theme.PresetTitleMedium},
	RoleProgress:           {name: "progress", fill: theme.SlotPrimary, text: theme.SlotOnSurfaceVariant, border: theme.SlotSurfaceContainerHigh, typography: theme.PresetLabelMedium},
	RoleChip:               {name: "chip", fill: theme.SlotSurface, text: theme.SlotOnSurfaceVariant, border: theme.SlotOutline, typography: theme.PresetLabelLarge},
	RoleChipSelected:       {name: "chipSelected", fill: theme.SlotSecondaryContainer, text: theme.SlotOnSecondaryContainer, border: theme.SlotSecondaryContainer, typography: theme.PresetLabelLarge},
	RoleNavigation:         {name: "navigation", fill: theme.SlotSurfaceContainer, text: theme.SlotOnSurfaceVariant, border: theme.SlotOutlineVariant, typography: theme.PresetLabelMedium},
	RoleNavigationSelected: {name: "navigationSelected", fill: theme.SlotSecondaryContainer, text: theme.SlotOnSecondaryContainer, border: theme.SlotSecondaryContainer, typography: theme.PresetLabelMedium},
	RoleFAB:                {name: "fab", fill: theme.SlotPrimaryContainer, text: theme.SlotOnPrimaryContainer, border: theme.SlotPrimaryContainer, typography: theme.PresetLabelLarge},
}

func (r Role) spec() roleSpec {
	if r < 0 || r >= roleCount {
		return roleSpecs[RoleText]
	}
	return roleSpecs[r]
}

func (r Role) String() string {
	if r < 0 || r >= roleCount {
		return "unknown"
	}
	return roleSpecs[r].name
}

// FillSlot returns the theme slot conventionally used for the role's fill.
func (r Role) FillSlot() theme.Slot { return r.spec().fill }

// TextSlot returns the theme slot conventionally used for the role's text.
func (r Role) TextSlot() theme.Slot { return r.spec().text }

// BorderSlot returns the theme slot conventionally used for the role's border.
func (r Role) BorderSlot() theme.Slot { return r.spec().border }

// Engine defaults, used only when no theme is supplied.
const (
	defaultFill   Color = 0xFFFFFFFF
	defaultText   Color = 0xFF000000
	defaultBorder Color = 0xFF808080
)

var defaultTypography = theme.TextPreset{Size: 16, LineHeight: 24, Weight: "normal"}
