package styles

// Preset represents a complete color theme.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
}

// Presets contains all built-in theme presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-latte": CatppuccinLattePreset,
	"high-contrast":    HighContrastPreset,
}

// DefaultPreset matches the Dark values of the AdaptiveColor definitions in styles.go.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Default jassbot theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#CCCCCC",
		TokenTextSecondary:   "#BBBBBB",
		TokenTextMuted:       "#696969",
		TokenTextPlaceholder: "#777777",

		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		TokenSelectionIndicator: "#FFFFFF",

		TokenSyntaxKeyword:    "#CBA6F7",
		TokenSyntaxFunction:   "#89B4FA",
		TokenSyntaxNative:     "#74C7EC",
		TokenSyntaxType:       "#F9E2AF",
		TokenSyntaxGlobal:     "#F5C2E7",
		TokenSyntaxConstant:   "#EBA0AC",
		TokenSyntaxComment:    "#6C7086",
		TokenSyntaxNumber:     "#FAB387",
		TokenSyntaxLiteral:    "#FAB387",
		TokenSyntaxString:     "#A6E3A1",
		TokenSyntaxRawcode:    "#94E2D5",
		TokenSyntaxOperator:   "#F38BA8",
		TokenSyntaxIdentifier: "#CDD6F4",

		TokenSpinner: "#FFFFFF",
	},
}

// CatppuccinLattePreset is a light theme.
var CatppuccinLattePreset = Preset{
	Name:        "catppuccin-latte",
	Description: "Catppuccin Latte - light pastel theme",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#4C4F69",
		TokenTextSecondary:   "#5C5F77",
		TokenTextMuted:       "#9CA0B0",
		TokenTextPlaceholder: "#8C8FA1",

		TokenStatusSuccess: "#40A02B",
		TokenStatusWarning: "#DF8E1D",
		TokenStatusError:   "#D20F39",

		TokenSelectionIndicator: "#1E66F5",

		TokenSyntaxKeyword:    "#8839EF",
		TokenSyntaxFunction:   "#1E66F5",
		TokenSyntaxNative:     "#209FB5",
		TokenSyntaxType:       "#DF8E1D",
		TokenSyntaxGlobal:     "#EA76CB",
		TokenSyntaxConstant:   "#E64553",
		TokenSyntaxComment:    "#9CA0B0",
		TokenSyntaxNumber:     "#FE640B",
		TokenSyntaxLiteral:    "#FE640B",
		TokenSyntaxString:     "#40A02B",
		TokenSyntaxRawcode:    "#179299",
		TokenSyntaxOperator:   "#D20F39",
		TokenSyntaxIdentifier: "#4C4F69",

		TokenSpinner: "#8839EF",
	},
}

// HighContrastPreset uses the basic terminal palette.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "High contrast for accessibility",
	Colors: map[ColorToken]string{
		TokenTextPrimary:     "#FFFFFF",
		TokenTextSecondary:   "#FFFFFF",
		TokenTextMuted:       "#C0C0C0",
		TokenTextPlaceholder: "#C0C0C0",

		TokenStatusSuccess: "#00FF00",
		TokenStatusWarning: "#FFFF00",
		TokenStatusError:   "#FF0000",

		TokenSelectionIndicator: "#FFFF00",

		TokenSyntaxKeyword:    "#FF00FF",
		TokenSyntaxFunction:   "#00FFFF",
		TokenSyntaxNative:     "#00FFFF",
		TokenSyntaxType:       "#FFFF00",
		TokenSyntaxGlobal:     "#FF00FF",
		TokenSyntaxConstant:   "#FF00FF",
		TokenSyntaxComment:    "#C0C0C0",
		TokenSyntaxNumber:     "#00FF00",
		TokenSyntaxLiteral:    "#00FF00",
		TokenSyntaxString:     "#00FF00",
		TokenSyntaxRawcode:    "#00FF00",
		TokenSyntaxOperator:   "#FF0000",
		TokenSyntaxIdentifier: "#FFFFFF",

		TokenSpinner: "#FFFFFF",
	},
}
