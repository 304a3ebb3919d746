package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVocabulary(t *testing.T) {
	v := NewVocabulary(Names{Natives: []string{"B", "A", ""}, Types: []string{"unit"}})

	assert.True(t, v.Contains(Native, "A"))
	assert.False(t, v.Contains(Native, ""))
	assert.False(t, v.Contains(Type, "A"))
	assert.False(t, v.Contains(Keyword, "A"))
	assert.Equal(t, 2, v.Len(Native))
	assert.Equal(t, []string{"A", "B"}, v.List(Native))
	assert.Equal(t, []string{"unit"}, v.Names().Types)
	assert.Empty(t, v.Names().HelperFunctions)
}

func TestVocabulary_Nil(t *testing.T) {
	var v *Vocabulary
	assert.False(t, v.Contains(Native, "A"))
	assert.Zero(t, v.Len(Native))
	assert.Nil(t, v.List(Native))
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "helperFunction", HelperFunction.String())
	assert.Equal(t, "bj", HelperFunction.Class())
	assert.Equal(t, "cjglobal", GlobalUser.Class())
	assert.Equal(t, "anything", Other.Class())
	assert.Len(t, Categories(), int(categoryCount))
	assert.False(t, Category(-1).Valid())

	var linkable []Category
	for _, c := range Categories() {
		if c.Linkable() {
			linkable = append(linkable, c)
		}
	}
	assert.ElementsMatch(t, []Category{Native, HelperFunction, GlobalUser, GlobalHelper, Type}, linkable)

	var c Category
	assert.Error(t, c.UnmarshalText([]byte("nope")))
	_, err := Category(99).MarshalText()
	assert.Error(t, err)
}
