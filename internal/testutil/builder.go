package testutil

import (
	"database/sql"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// Builder accumulates test data and inserts it in one go.
type Builder struct {
	t        *testing.T
	db       *sql.DB
	entities []entityData
	metadata map[string]string
}

// NewBuilder creates a builder for the given test database.
func NewBuilder(t *testing.T, db *sql.DB) *Builder {
	t.Helper()
	return &Builder{t: t, db: db, metadata: make(map[string]string)}
}

// WithEntity adds a documented name with optional configuration.
func (b *Builder) WithEntity(name string, opts ...EntityOption) *Builder {
	e := entityData{name: name}
	for _, opt := range opts {
		opt(&e)
	}
	b.entities = append(b.entities, e)
	return b
}

// WithCommit sets the git commit the database was generated from.
func (b *Builder) WithCommit(commit string) *Builder {
	b.metadata["git-commit"] = commit
	return b
}

// Build inserts all accumulated data into the database.
func (b *Builder) Build() {
	b.t.Helper()
	for _, e := range b.entities {
		for _, a := range e.annotations {
			b.exec(`INSERT INTO annotations (fnname, anname, value) VALUES (?, ?, ?)`, e.name, a.name, a.value)
		}
		for i, p := range e.params {
			b.exec(`INSERT INTO params_extra (fnname, param, anname, value) VALUES (?, ?, 'param_order', ?)`,
				e.name, p.Name, strconv.Itoa(i))
			b.exec(`INSERT INTO params_extra (fnname, param, anname, value) VALUES (?, ?, 'param_type', ?)`,
				e.name, p.Name, p.Type)
			if p.Doc != "" {
				b.exec(`INSERT INTO parameters (fnname, param, value) VALUES (?, ?, ?)`, e.name, p.Name, p.Doc)
			}
		}
	}
	for key, value := range b.metadata {
		b.exec(`INSERT INTO metadata (key, value) VALUES (?, ?)`, key, value)
	}
}

func (b *Builder) exec(query string, args ...any) {
	b.t.Helper()
	_, err := b.db.Exec(query, args...)
	require.NoError(b.t, err)
}
