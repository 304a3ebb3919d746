// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#CCCCCC"} // Main/primary text
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#5C5F77", Dark: "#BBBBBB"} // Parameter types, secondary info
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#696969"} // Hints, help text, footers
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#777777"} // Input placeholders

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"}

	// Selection indicator color (">" prefix in the result list)
	SelectionIndicatorColor = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#FFFFFF"}

	// JASS/Lua syntax highlighting colors (Catppuccin Mocha)
	SyntaxKeywordColor    = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"} // mauve
	SyntaxFunctionColor   = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"} // blue
	SyntaxNativeColor     = lipgloss.AdaptiveColor{Light: "#209FB5", Dark: "#74C7EC"} // sapphire
	SyntaxTypeColor       = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#F9E2AF"} // yellow
	SyntaxGlobalColor     = lipgloss.AdaptiveColor{Light: "#EA76CB", Dark: "#F5C2E7"} // pink
	SyntaxConstantColor   = lipgloss.AdaptiveColor{Light: "#E64553", Dark: "#EBA0AC"} // maroon
	SyntaxCommentColor    = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6C7086"} // overlay0
	SyntaxNumberColor     = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FAB387"} // peach
	SyntaxLiteralColor    = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FAB387"} // peach
	SyntaxStringColor     = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"} // green
	SyntaxRawcodeColor    = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94E2D5"} // teal
	SyntaxOperatorColor   = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"} // red
	SyntaxIdentifierColor = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#CDD6F4"} // text

	// Selection indicator style (">" prefix in the search result list)
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	// Muted text for hints and the explained query
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	// Error display
	ErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Bold(true)

	// Loading spinner color
	SpinnerColor = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#FFF"}
)
