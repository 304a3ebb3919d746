// Package jassbot talks to the jassbot type-search API and explains the
// parsed queries it returns.
package jassbot

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownQueryTag is returned for a query node whose tag is not recognised.
var ErrUnknownQueryTag = errors.New("unknown query tag")

// Tag identifies the kind of a Query node.
type Tag string

const (
	TagEmpty   Tag = "EmptyQuery"
	TagName    Tag = "NameQuery"
	TagReturn  Tag = "ReturnQuery"
	TagParam   Tag = "ParamQuery"
	TagExtends Tag = "ExtendsQuery"
	TagSum     Tag = "SumQuery"
	TagMin     Tag = "MinQuery"
)

// Query is one node of the parsed-query tree the API returns as queryParsed.
// Which field holds the contents depends on Tag: Name, Return and Extends use
// Text, Param uses Params, Sum and Min use Children.
type Query struct {
	Tag      Tag
	Text     string
	Params   []string
	Children []Query
}

type wireQuery struct {
	Tag      Tag             `json:"tag"`
	Contents json.RawMessage `json:"contents,omitempty"`
}

// UnmarshalJSON decodes the {"tag": ..., "contents": ...} form. A node with an
// unknown tag keeps only its Tag; Explain reports it.
func (q *Query) UnmarshalJSON(b []byte) error {
	var w wireQuery
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	out := Query{Tag: w.Tag}
	var err error
	switch w.Tag {
	case TagEmpty:
	case TagName, TagReturn, TagExtends:
		err = json.Unmarshal(w.Contents, &out.Text)
	case TagParam:
		err = json.Unmarshal(w.Contents, &out.Params)
	case TagSum, TagMin:
		err = json.Unmarshal(w.Contents, &out.Children)
	}
	if err != nil {
		return fmt.Errorf("decoding %s contents: %w", w.Tag, err)
	}
	*q = out
	return nil
}

// MarshalJSON encodes q in the same form the API uses.
func (q Query) MarshalJSON() ([]byte, error) {
	var contents any
	switch q.Tag {
	case TagEmpty:
	case TagName, TagReturn, TagExtends:
		contents = q.Text
	case TagParam:
		contents = nonNil(q.Params)
	case TagSum, TagMin:
		contents = nonNil(q.Children)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownQueryTag, q.Tag)
	}
	w := struct {
		Tag      Tag `json:"tag"`
		Contents any `json:"contents,omitempty"`
	}{Tag: q.Tag, Contents: contents}
	return json.Marshal(w)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Explain renders q as a short human readable description, for example
// "combined-score(name(unit), takes(real, real))".
func (q Query) Explain() (string, error) {
	var sb strings.Builder
	if err := q.explain(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (q Query) explain(sb *strings.Builder) error {
	switch q.Tag {
	case TagEmpty:
		sb.WriteString("<empty>")
	case TagName:
		fmt.Fprintf(sb, "name(%s)", q.Text)
	case TagReturn:
		fmt.Fprintf(sb, "return-type(%s)", q.Text)
	case TagExtends:
		fmt.Fprintf(sb, "extends(%s)", q.Text)
	case TagParam:
		fmt.Fprintf(sb, "takes(%s)", strings.Join(q.Params, ", "))
	case TagSum, TagMin:
		if q.Tag == TagSum {
			sb.WriteString("combined-score(")
		} else {
			sb.WriteString("best-of(")
		}
		for i, c := range q.Children {
			if i > 0 {
				sb.WriteString(", ")
			}
			if err := c.explain(sb); err != nil {
				return err
			}
		}
		sb.WriteByte(')')
	default:
		return fmt.Errorf("%w: %q", ErrUnknownQueryTag, q.Tag)
	}
	return nil
}
