// Package docs reads the jassdoc database: parameters, annotations and the
// name tables that make up the highlighting vocabulary.
package docs

import (
	"context"
	"errors"

	"github.com/lep/jassbot/internal/syntax"
)

// ErrNotFound is returned when the database does not document a name.
var ErrNotFound = errors.New("entity not found")

// Parameter is one parameter of a function or native.
type Parameter struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Doc  string `json:"doc"`
}

// Annotation is one documentation annotation, such as "note" or "source-file".
type Annotation struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Entity aggregates everything known about one documented name.
type Entity struct {
	Name        string       `json:"-"`
	Commit      string       `json:"commit"`
	Kind        string       `json:"kind"`
	LineNumber  string       `json:"linenumber"`
	Parameters  []Parameter  `json:"parameters"`
	Annotations []Annotation `json:"annotations"`
}

// Store is the read side of the docs database.
type Store interface {
	Parameters(ctx context.Context, entity string) ([]Parameter, error)
	Annotations(ctx context.Context, entity string) ([]Annotation, error)
	LineNumber(ctx context.Context, entity string) (string, error)
	Kind(ctx context.Context, entity string) (string, error)
	GitCommit(ctx context.Context) (string, error)
	Names(ctx context.Context) (syntax.Names, error)
}

// Lookup assembles the Entity for name from s. A name without a kind is not
// documented and yields ErrNotFound. A database without a commit or a name
// without a line number leaves those fields empty.
func Lookup(ctx context.Context, s Store, name string) (*Entity, error) {
	kind, err := s.Kind(ctx, name)
	if err != nil {
		return nil, err
	}
	commit, err := s.GitCommit(ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	line, err := s.LineNumber(ctx, name)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	params, err := s.Parameters(ctx, name)
	if err != nil {
		return nil, err
	}
	annotations, err := s.Annotations(ctx, name)
	if err != nil {
		return nil, err
	}
	return &Entity{
		Name:        name,
		Commit:      commit,
		Kind:        kind,
		LineNumber:  line,
		Parameters:  params,
		Annotations: annotations,
	}, nil
}

// Vocabulary loads the name tables of s as a highlighting vocabulary.
func Vocabulary(ctx context.Context, s Store) (*syntax.Vocabulary, error) {
	names, err := s.Names(ctx)
	if err != nil {
		return nil, err
	}
	return syntax.NewVocabulary(names), nil
}
