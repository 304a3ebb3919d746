package syntax

import (
	"github.com/lep/jassbot/internal/ui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Terminal styles per category, built from the centralized colors in the
// styles package. They are process-wide: apply a theme with styles.ApplyTheme
// before any rendering starts, never while ANSI output is being produced.
var (
	KeywordStyle    lipgloss.Style
	FunctionStyle   lipgloss.Style // helper functions
	NativeStyle     lipgloss.Style
	TypeStyle       lipgloss.Style
	GlobalStyle     lipgloss.Style // bj_ globals
	ConstantStyle   lipgloss.Style // common.j globals
	CommentStyle    lipgloss.Style
	NumberStyle     lipgloss.Style
	LiteralStyle    lipgloss.Style // true, false, null, array, nothing
	StringStyle     lipgloss.Style
	RawcodeStyle    lipgloss.Style
	OperatorStyle   lipgloss.Style
	IdentifierStyle lipgloss.Style
	DefaultStyle    lipgloss.Style
)

func init() {
	RebuildStyles()
	styles.RegisterStyleRebuilder(RebuildStyles)
}

// RebuildStyles recreates the category styles after a theme change. It is not
// safe to call concurrently with Category.Style or ANSI.
func RebuildStyles() {
	KeywordStyle = lipgloss.NewStyle().Foreground(styles.SyntaxKeywordColor).Bold(true)
	FunctionStyle = lipgloss.NewStyle().Foreground(styles.SyntaxFunctionColor)
	NativeStyle = lipgloss.NewStyle().Foreground(styles.SyntaxNativeColor)
	TypeStyle = lipgloss.NewStyle().Foreground(styles.SyntaxTypeColor)
	GlobalStyle = lipgloss.NewStyle().Foreground(styles.SyntaxGlobalColor)
	ConstantStyle = lipgloss.NewStyle().Foreground(styles.SyntaxConstantColor)
	CommentStyle = lipgloss.NewStyle().Foreground(styles.SyntaxCommentColor).Italic(true)
	NumberStyle = lipgloss.NewStyle().Foreground(styles.SyntaxNumberColor)
	LiteralStyle = lipgloss.NewStyle().Foreground(styles.SyntaxLiteralColor)
	StringStyle = lipgloss.NewStyle().Foreground(styles.SyntaxStringColor)
	RawcodeStyle = lipgloss.NewStyle().Foreground(styles.SyntaxRawcodeColor)
	OperatorStyle = lipgloss.NewStyle().Foreground(styles.SyntaxOperatorColor)
	IdentifierStyle = lipgloss.NewStyle().Foreground(styles.SyntaxIdentifierColor)
	DefaultStyle = lipgloss.NewStyle()
}

// Style returns the terminal style for c.
func (c Category) Style() lipgloss.Style {
	switch c {
	case Keyword:
		return KeywordStyle
	case HelperFunction:
		return FunctionStyle
	case Native:
		return NativeStyle
	case Type:
		return TypeStyle
	case GlobalHelper:
		return GlobalStyle
	case GlobalUser:
		return ConstantStyle
	case Comment:
		return CommentStyle
	case Number:
		return NumberStyle
	case Boolean, NullLiteral, LooseType:
		return LiteralStyle
	case String:
		return StringStyle
	case Rawcode:
		return RawcodeStyle
	case Operator:
		return OperatorStyle
	case Identifier:
		return IdentifierStyle
	default:
		return DefaultStyle
	}
}
