package docs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/lep/jassbot/internal/log"
	"github.com/lep/jassbot/internal/syntax"
)

const (
	parametersQuery = `
		SELECT Ty.param, Ty.value, COALESCE(Doc.value, '')
		FROM (
			SELECT value, param FROM params_extra
			WHERE anname = 'param_order' AND fnname = :fnname
		) AS Ord
		INNER JOIN (
			SELECT param, value FROM params_extra
			WHERE anname = 'param_type' AND fnname = :fnname
		) AS Ty ON Ty.param = Ord.param
		LEFT OUTER JOIN (
			SELECT param, value FROM parameters
			WHERE fnname = :fnname
		) AS Doc ON Doc.param = Ord.param
		ORDER BY CAST(Ord.value AS INTEGER)`

	// Annotations are inserted in docstring order, so rowid order is docstring order.
	annotationsQuery = `
		SELECT anname, COALESCE(value, '')
		FROM annotations
		WHERE fnname = ? AND anname NOT IN ('type', 'start-line', 'end-line')
		ORDER BY rowid`

	annotationValueQuery = `SELECT COALESCE(value, '') FROM annotations WHERE fnname = ? AND anname = ?`

	gitCommitQuery = `SELECT COALESCE(value, '') FROM metadata WHERE key = 'git-commit'`

	namesQuery = `SELECT fnname FROM annotations WHERE anname = 'type' AND value = ? ORDER BY fnname`

	// LIKE treats '_' as a wildcard; the generator relies on that too.
	helperGlobalsQuery = `
		SELECT fnname FROM annotations
		WHERE anname = 'type' AND value = 'global' AND fnname LIKE 'bj_%'
		ORDER BY fnname`

	userGlobalsQuery = `
		SELECT fnname FROM annotations
		WHERE anname = 'type' AND value = 'global' AND fnname NOT LIKE 'bj_%'
		ORDER BY fnname`
)

// SQLStore implements Store on a sqlite database.
type SQLStore struct {
	db     *sql.DB
	path   string
	tracer trace.Tracer
}

var _ Store = (*SQLStore)(nil)

// Open opens the docs database at path read-only.
func Open(path string) (*SQLStore, error) {
	log.Debug(log.CatDB, "Opening database", "path", path)
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		log.ErrorErr(log.CatDB, "Failed to open database", err, "path", path)
		return nil, fmt.Errorf("opening docs database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		log.ErrorErr(log.CatDB, "Failed to ping database", err, "path", path)
		return nil, fmt.Errorf("opening docs database %s: %w", path, err)
	}
	log.Info(log.CatDB, "Connected to database", "path", path)
	s := New(db)
	s.path = path
	return s, nil
}

// New wraps an open database.
func New(db *sql.DB) *SQLStore {
	return &SQLStore{db: db, tracer: otel.Tracer("github.com/lep/jassbot/internal/docs")}
}

// Path returns the database path given to Open.
func (s *SQLStore) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) span(ctx context.Context, op string, entity string) (context.Context, trace.Span) {
	ctx, span := s.tracer.Start(ctx, "docs."+op, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(attribute.String("db.system", "sqlite"))
	if entity != "" {
		span.SetAttributes(attribute.String("jassbot.entity", entity))
	}
	return ctx, span
}

func endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Parameters returns the parameters of entity in declaration order.
func (s *SQLStore) Parameters(ctx context.Context, entity string) (params []Parameter, err error) {
	ctx, span := s.span(ctx, "Parameters", entity)
	defer func() { endSpan(span, err) }()

	rows, err := s.db.QueryContext(ctx, parametersQuery, sql.Named("fnname", entity))
	if err != nil {
		log.ErrorErr(log.CatDB, "Parameters query failed", err, "entity", entity)
		return nil, fmt.Errorf("querying parameters of %s: %w", entity, err)
	}
	defer func() { _ = rows.Close() }()

	params = []Parameter{}
	for rows.Next() {
		var p Parameter
		if err := rows.Scan(&p.Name, &p.Type, &p.Doc); err != nil {
			return nil, fmt.Errorf("scanning parameter of %s: %w", entity, err)
		}
		params = append(params, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading parameters of %s: %w", entity, err)
	}
	return params, nil
}

// Annotations returns the annotations of entity in docstring order, without the
// bookkeeping annotations type, start-line and end-line.
func (s *SQLStore) Annotations(ctx context.Context, entity string) (annotations []Annotation, err error) {
	ctx, span := s.span(ctx, "Annotations", entity)
	defer func() { endSpan(span, err) }()

	rows, err := s.db.QueryContext(ctx, annotationsQuery, entity)
	if err != nil {
		log.ErrorErr(log.CatDB, "Annotations query failed", err, "entity", entity)
		return nil, fmt.Errorf("querying annotations of %s: %w", entity, err)
	}
	defer func() { _ = rows.Close() }()

	annotations = []Annotation{}
	for rows.Next() {
		var a Annotation
		if err := rows.Scan(&a.Name, &a.Value); err != nil {
			return nil, fmt.Errorf("scanning annotation of %s: %w", entity, err)
		}
		annotations = append(annotations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading annotations of %s: %w", entity, err)
	}
	return annotations, nil
}

// LineNumber returns the line entity starts on in its source file.
func (s *SQLStore) LineNumber(ctx context.Context, entity string) (line string, err error) {
	ctx, span := s.span(ctx, "LineNumber", entity)
	defer func() { endSpan(span, err) }()
	return s.annotationValue(ctx, entity, "start-line")
}

// Kind returns what entity is: native, function, type or global.
func (s *SQLStore) Kind(ctx context.Context, entity string) (kind string, err error) {
	ctx, span := s.span(ctx, "Kind", entity)
	defer func() { endSpan(span, err) }()
	return s.annotationValue(ctx, entity, "type")
}

func (s *SQLStore) annotationValue(ctx context.Context, entity, name string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, annotationValueQuery, entity, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%s of %s: %w", name, entity, ErrNotFound)
	}
	if err != nil {
		log.ErrorErr(log.CatDB, "Annotation query failed", err, "entity", entity, "annotation", name)
		return "", fmt.Errorf("querying %s of %s: %w", name, entity, err)
	}
	return value, nil
}

// GitCommit returns the jassdoc commit the database was generated from.
func (s *SQLStore) GitCommit(ctx context.Context) (commit string, err error) {
	ctx, span := s.span(ctx, "GitCommit", "")
	defer func() { endSpan(span, err) }()

	err = s.db.QueryRowContext(ctx, gitCommitQuery).Scan(&commit)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("git commit: %w", ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("querying git commit: %w", err)
	}
	return commit, nil
}

// Names returns the name tables used to build the highlighting vocabulary.
func (s *SQLStore) Names(ctx context.Context) (names syntax.Names, err error) {
	ctx, span := s.span(ctx, "Names", "")
	defer func() { endSpan(span, err) }()

	if names.Natives, err = s.column(ctx, namesQuery, "native"); err != nil {
		return names, err
	}
	if names.HelperFunctions, err = s.column(ctx, namesQuery, "function"); err != nil {
		return names, err
	}
	if names.Types, err = s.column(ctx, namesQuery, "type"); err != nil {
		return names, err
	}
	if names.HelperGlobals, err = s.column(ctx, helperGlobalsQuery); err != nil {
		return names, err
	}
	if names.UserGlobals, err = s.column(ctx, userGlobalsQuery); err != nil {
		return names, err
	}
	log.Debug(log.CatDB, "Loaded vocabulary",
		"natives", len(names.Natives), "functions", len(names.HelperFunctions), "types", len(names.Types),
		"bj_globals", len(names.HelperGlobals), "cj_globals", len(names.UserGlobals))
	return names, nil
}

func (s *SQLStore) column(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying names: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning name: %w", err)
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
