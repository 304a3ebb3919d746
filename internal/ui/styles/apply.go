package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styleRebuilders holds callbacks to rebuild styles in other packages.
// styles can't import syntax, but syntax can register.
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback that will be called after ApplyTheme
// updates colors. Use this to rebuild styles in packages that depend on styles.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// ThemeConfig mirrors config.ThemeConfig to avoid circular imports.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

// ApplyTheme applies a complete theme configuration: the default preset, then
// the named preset, then individual overrides. All styles are rebuilt afterwards.
// Call it once at startup, before anything renders: the styles are package
// variables and are rewritten without locking.
func ApplyTheme(cfg ThemeConfig) error {
	colors := maps.Clone(DefaultPreset.Colors)

	if cfg.Preset != "" && cfg.Preset != "default" {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
		}
		maps.Copy(colors, preset.Colors)
	}

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		colors[token] = value
	}

	applyColors(colors)
	rebuildStyles()

	return nil
}

// colorTargets maps each token to the variable it controls.
func colorTargets() map[ColorToken]*lipgloss.AdaptiveColor {
	return map[ColorToken]*lipgloss.AdaptiveColor{
		TokenTextPrimary:        &TextPrimaryColor,
		TokenTextSecondary:      &TextSecondaryColor,
		TokenTextMuted:          &TextMutedColor,
		TokenTextPlaceholder:    &TextPlaceholderColor,
		TokenStatusSuccess:      &StatusSuccessColor,
		TokenStatusWarning:      &StatusWarningColor,
		TokenStatusError:        &StatusErrorColor,
		TokenSelectionIndicator: &SelectionIndicatorColor,
		TokenSyntaxKeyword:      &SyntaxKeywordColor,
		TokenSyntaxFunction:     &SyntaxFunctionColor,
		TokenSyntaxNative:       &SyntaxNativeColor,
		TokenSyntaxType:         &SyntaxTypeColor,
		TokenSyntaxGlobal:       &SyntaxGlobalColor,
		TokenSyntaxConstant:     &SyntaxConstantColor,
		TokenSyntaxComment:      &SyntaxCommentColor,
		TokenSyntaxNumber:       &SyntaxNumberColor,
		TokenSyntaxLiteral:      &SyntaxLiteralColor,
		TokenSyntaxString:       &SyntaxStringColor,
		TokenSyntaxRawcode:      &SyntaxRawcodeColor,
		TokenSyntaxOperator:     &SyntaxOperatorColor,
		TokenSyntaxIdentifier:   &SyntaxIdentifierColor,
		TokenSpinner:            &SpinnerColor,
	}
}

func applyColors(colors map[ColorToken]string) {
	targets := colorTargets()
	for token, hex := range colors {
		if target, ok := targets[token]; ok {
			// Same color for both modes
			*target = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
		}
	}
}

// rebuildStyles recreates all Style objects with updated colors.
// lipgloss.Style objects capture colors at creation time.
func rebuildStyles() {
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(TextSecondaryColor).
		Padding(0, 1)

	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(StatusErrorColor).
		Bold(true)

	// Call registered rebuilders (e.g., syntax.RebuildStyles)
	for _, fn := range styleRebuilders {
		fn()
	}
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
