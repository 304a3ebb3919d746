package syntax

import "sort"

// Names is the raw form of the vocabulary tables, as loaded from the docs database.
type Names struct {
	HelperFunctions []string `json:"functions"`
	Types           []string `json:"types"`
	Natives         []string `json:"natives"`
	HelperGlobals   []string `json:"bj_globals"`
	UserGlobals     []string `json:"cj_globals"`
}

// Vocabulary holds the name sets used to reclassify identifiers.
// It is immutable once built and safe to share between goroutines.
type Vocabulary struct {
	sets map[Category]map[string]struct{}
}

// vocabularyCategories lists the categories backed by a vocabulary table, in the
// order their rules appear in both grammars.
var vocabularyCategories = [...]Category{HelperFunction, Type, Native, GlobalHelper, GlobalUser}

// NewVocabulary builds a Vocabulary from n. Empty names are ignored.
func NewVocabulary(n Names) *Vocabulary {
	v := &Vocabulary{sets: make(map[Category]map[string]struct{}, len(vocabularyCategories))}
	v.sets[HelperFunction] = toSet(n.HelperFunctions)
	v.sets[Type] = toSet(n.Types)
	v.sets[Native] = toSet(n.Natives)
	v.sets[GlobalHelper] = toSet(n.HelperGlobals)
	v.sets[GlobalUser] = toSet(n.UserGlobals)
	return v
}

// EmptyVocabulary returns a Vocabulary with no names in it.
func EmptyVocabulary() *Vocabulary {
	return NewVocabulary(Names{})
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name != "" {
			set[name] = struct{}{}
		}
	}
	return set
}

// Contains reports whether name is in the table for category c.
// Categories without a table never contain anything.
func (v *Vocabulary) Contains(c Category, name string) bool {
	if v == nil {
		return false
	}
	_, ok := v.sets[c][name]
	return ok
}

// Len returns the number of names in the table for category c.
func (v *Vocabulary) Len(c Category) int {
	if v == nil {
		return 0
	}
	return len(v.sets[c])
}

// List returns the sorted names of the table for category c.
func (v *Vocabulary) List(c Category) []string {
	if v == nil {
		return nil
	}
	set := v.sets[c]
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Names returns the tables as sorted slices.
func (v *Vocabulary) Names() Names {
	return Names{
		HelperFunctions: v.List(HelperFunction),
		Types:           v.List(Type),
		Natives:         v.List(Native),
		HelperGlobals:   v.List(GlobalHelper),
		UserGlobals:     v.List(GlobalUser),
	}
}
