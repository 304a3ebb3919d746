package syntax

// LuaKeywords are the reserved words of Lua.
var LuaKeywords = []string{
	"and", "break", "do", "else", "elseif", "end", "false", "for", "function", "if", "in",
	"local", "nil", "not", "or", "repeat", "return", "then", "true", "until", "while",
}

// NewLua returns the grammar for the Lua dialect, sharing the JASS vocabulary v
// since Lua maps call the same natives.
func NewLua(v *Vocabulary) *Grammar {
	rules := []Rule{{NewWords(LuaKeywords...), Keyword}}
	rules = append(rules, vocabularyRules(v)...)
	rules = append(rules,
		Rule{NewLongBracket("--"), Comment},
		Rule{NewLineComment("--"), Comment},
		Rule{NewPattern(`(?i)0x[a-f0-9]+`), Number},
		Rule{NewPattern(`\d+\.\d+`), Number},
		Rule{NewPattern(`\d+\.`), Number},
		Rule{NewPattern(`\.\d+`), Number},
		Rule{NewPattern(`\d+`), Number},
		Rule{NewLongBracket(""), String},
		Rule{NewQuoted('"'), String},
		Rule{NewQuoted('\''), String},
		Rule{NewPattern(`[-<>#;:~+.*/%=^,()\[\]]`), Operator},
		Rule{NewPattern(`\w+`), Identifier},
		Rule{NewPattern(`[ \t]+`), Whitespace},
	)
	rules = append(rules, catchAll()...)
	return MustGrammar("lua", rules...)
}
