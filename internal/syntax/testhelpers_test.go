package syntax

import "strings"

func testVocabulary() *Vocabulary {
	return NewVocabulary(Names{
		HelperFunctions: []string{"BJDebugMsg", "CreateNUnitsAtLoc"},
		Types:           []string{"unit", "player", "integer"},
		Natives:         []string{"CreateUnit", "GetTriggerUnit"},
		HelperGlobals:   []string{"bj_lastCreatedUnit"},
		UserGlobals:     []string{"PLAYER_NEUTRAL_AGGRESSIVE"},
	})
}

func categoriesOf(tokens []Token) []Category {
	cats := make([]Category, len(tokens))
	for i, tok := range tokens {
		cats[i] = tok.Category
	}
	return cats
}

func textsOf(tokens []Token) []string {
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	return texts
}

func joinTokens(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}
