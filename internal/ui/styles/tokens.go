package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override under ui.colors in their config.
const (
	// Text hierarchy
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	// Selection
	TokenSelectionIndicator ColorToken = "selection.indicator"

	// Syntax highlighting
	TokenSyntaxKeyword    ColorToken = "syntax.keyword"
	TokenSyntaxFunction   ColorToken = "syntax.function"
	TokenSyntaxNative     ColorToken = "syntax.native"
	TokenSyntaxType       ColorToken = "syntax.type"
	TokenSyntaxGlobal     ColorToken = "syntax.global"
	TokenSyntaxConstant   ColorToken = "syntax.constant"
	TokenSyntaxComment    ColorToken = "syntax.comment"
	TokenSyntaxNumber     ColorToken = "syntax.number"
	TokenSyntaxLiteral    ColorToken = "syntax.literal"
	TokenSyntaxString     ColorToken = "syntax.string"
	TokenSyntaxRawcode    ColorToken = "syntax.rawcode"
	TokenSyntaxOperator   ColorToken = "syntax.operator"
	TokenSyntaxIdentifier ColorToken = "syntax.identifier"

	// Misc
	TokenSpinner ColorToken = "spinner"
)

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,
		TokenTextPlaceholder,

		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,

		TokenSelectionIndicator,

		TokenSyntaxKeyword,
		TokenSyntaxFunction,
		TokenSyntaxNative,
		TokenSyntaxType,
		TokenSyntaxGlobal,
		TokenSyntaxConstant,
		TokenSyntaxComment,
		TokenSyntaxNumber,
		TokenSyntaxLiteral,
		TokenSyntaxString,
		TokenSyntaxRawcode,
		TokenSyntaxOperator,
		TokenSyntaxIdentifier,

		TokenSpinner,
	}
}
