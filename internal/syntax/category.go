// Package syntax implements the ordered-rule tokenizer used to highlight JASS and
// Lua snippets, the renderer that turns tokens into linkable presentation units,
// and the driver that highlights batches of code blocks.
package syntax

import "fmt"

// Category is the semantic class of a token.
type Category int

const (
	Other Category = iota

	Keyword
	HelperFunction // functions provided by blizzard.j
	Type
	Native
	GlobalHelper // bj_ globals
	GlobalUser   // common.j globals
	Comment
	Number
	Boolean
	NullLiteral
	LooseType // array, nothing
	String
	Rawcode // 'hfoo'
	Operator
	Identifier
	Whitespace

	categoryCount
)

// String returns the name of the category.
func (c Category) String() string {
	switch c {
	case Other:
		return "other"
	case Keyword:
		return "keyword"
	case HelperFunction:
		return "helperFunction"
	case Type:
		return "type"
	case Native:
		return "native"
	case GlobalHelper:
		return "globalHelper"
	case GlobalUser:
		return "globalUser"
	case Comment:
		return "comment"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case NullLiteral:
		return "nullLiteral"
	case LooseType:
		return "looseType"
	case String:
		return "string"
	case Rawcode:
		return "rawcode"
	case Operator:
		return "operator"
	case Identifier:
		return "identifier"
	case Whitespace:
		return "whitespace"
	default:
		return "unknown"
	}
}

// Class returns the stylesheet class for the category. The names are shared
// with the site stylesheet and the generated syntax.js, so they must not change.
func (c Category) Class() string {
	switch c {
	case Keyword:
		return "keyword"
	case HelperFunction:
		return "bj"
	case Type:
		return "type"
	case Native:
		return "native"
	case GlobalHelper:
		return "bjglobal"
	case GlobalUser:
		return "cjglobal"
	case Comment:
		return "comment"
	case Number:
		return "number"
	case Boolean:
		return "bool"
	case NullLiteral:
		return "null"
	case LooseType:
		return "like-type"
	case String:
		return "string"
	case Rawcode:
		return "rawcode"
	case Operator:
		return "operator"
	case Identifier:
		return "ident"
	case Whitespace:
		return "ws"
	default:
		return "anything"
	}
}

// Linkable reports whether tokens of this category link to a documentation page.
func (c Category) Linkable() bool {
	switch c {
	case Native, HelperFunction, GlobalUser, GlobalHelper, Type:
		return true
	}
	return false
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	return c >= Other && c < categoryCount
}

// Categories returns every category in declaration order.
func Categories() []Category {
	cats := make([]Category, 0, categoryCount)
	for c := Other; c < categoryCount; c++ {
		cats = append(cats, c)
	}
	return cats
}

// MarshalText encodes the category by name.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("unknown category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name produced by MarshalText.
func (c *Category) UnmarshalText(b []byte) error {
	for cat := Other; cat < categoryCount; cat++ {
		if cat.String() == string(b) {
			*c = cat
			return nil
		}
	}
	return fmt.Errorf("unknown category %q", b)
}
