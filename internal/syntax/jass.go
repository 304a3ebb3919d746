package syntax

// JassKeywords are the reserved words of JASS.
var JassKeywords = []string{
	"debug", "set", "call", "and", "or", "not", "takes", "returns", "type", "extends",
	"native", "constant", "globals", "endglobals", "local", "return", "if", "then",
	"else", "elseif", "endif", "loop", "exitwhen", "endloop", "function", "endfunction",
}

// NewJass returns the JASS grammar classifying identifiers against v.
// A nil vocabulary leaves every non-keyword identifier as Identifier.
func NewJass(v *Vocabulary) *Grammar {
	rules := []Rule{{NewWords(JassKeywords...), Keyword}}
	rules = append(rules, vocabularyRules(v)...)
	rules = append(rules,
		Rule{NewLineComment("//"), Comment},
		Rule{NewPattern(`(?i)0x[a-f0-9]+`), Number},
		Rule{NewPattern(`(?i)\$[a-f0-9]+`), Number},
		Rule{NewPattern(`\d+\.\d+`), Number},
		Rule{NewPattern(`\d+\.`), Number},
		Rule{NewPattern(`\.\d+`), Number},
		Rule{NewPattern(`\d+`), Number},
		Rule{NewWords("true", "false"), Boolean},
		Rule{NewWords("null"), NullLiteral},
		Rule{NewWords("array", "nothing"), LooseType},
		Rule{NewQuoted('"'), String},
		Rule{NewQuoted('\''), Rawcode},
		Rule{NewPattern(`[-<>+*/%=!,()\[\]]`), Operator},
		Rule{NewPattern(`\w+`), Identifier},
		Rule{NewPattern(`[ \t]+`), Whitespace},
	)
	rules = append(rules, catchAll()...)
	return MustGrammar("jass", rules...)
}
