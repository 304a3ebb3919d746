package docs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lep/jassbot/internal/syntax"
	"github.com/lep/jassbot/internal/testutil"
)

func newStandardStore(t *testing.T) *SQLStore {
	t.Helper()
	db := testutil.NewTestDB(t)
	t.Cleanup(func() { _ = db.Close() })
	testutil.NewBuilder(t, db).WithStandardDocs().Build()
	return New(db)
}

func TestParameters_DeclarationOrder(t *testing.T) {
	s := newStandardStore(t)

	params, err := s.Parameters(context.Background(), "CreateUnit")
	require.NoError(t, err)
	require.Equal(t, []Parameter{
		{Name: "id", Type: "player", Doc: "The owner of the unit."},
		{Name: "unitid", Type: "integer", Doc: "The rawcode of the unit type."},
		{Name: "x", Type: "real", Doc: ""},
		{Name: "y", Type: "real", Doc: ""},
		{Name: "face", Type: "real", Doc: "Facing in degrees."},
	}, params)
}

func TestParameters_OrderIsNumeric(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer func() { _ = db.Close() }()

	var params []testutil.ParamData
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		params = append(params, testutil.Param(name, "integer", ""))
	}
	testutil.NewBuilder(t, db).WithEntity("Many", testutil.Kind("native"), testutil.Params(params...)).Build()

	got, err := New(db).Parameters(context.Background(), "Many")
	require.NoError(t, err)
	require.Len(t, got, 12)
	for i, p := range got {
		assert.Equal(t, params[i].Name, p.Name)
	}
}

func TestParameters_NoneIsEmptySlice(t *testing.T) {
	s := newStandardStore(t)

	params, err := s.Parameters(context.Background(), "GetLocalPlayer")
	require.NoError(t, err)
	require.NotNil(t, params)
	require.Empty(t, params)
}

func TestAnnotations_SkipsBookkeeping(t *testing.T) {
	s := newStandardStore(t)

	annotations, err := s.Annotations(context.Background(), "CreateUnit")
	require.NoError(t, err)
	require.Equal(t, []Annotation{
		{Name: "source-file", Value: "common.j"},
		{Name: "return-type", Value: "unit"},
		{Name: "note", Value: "Creates a unit at the given *coordinates*."},
	}, annotations)
}

func TestLineNumberAndKind(t *testing.T) {
	s := newStandardStore(t)
	ctx := context.Background()

	line, err := s.LineNumber(ctx, "CreateUnit")
	require.NoError(t, err)
	require.Equal(t, "2874", line)

	kind, err := s.Kind(ctx, "BJDebugMsg")
	require.NoError(t, err)
	require.Equal(t, "function", kind)

	_, err = s.Kind(ctx, "NoSuchThing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGitCommit(t *testing.T) {
	s := newStandardStore(t)

	commit, err := s.GitCommit(context.Background())
	require.NoError(t, err)
	require.Equal(t, testutil.StandardCommit, commit)
}

func TestGitCommit_Missing(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer func() { _ = db.Close() }()

	_, err := New(db).GitCommit(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNames_SplitsGlobals(t *testing.T) {
	s := newStandardStore(t)

	names, err := s.Names(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"CreateUnit", "GetLocalPlayer"}, names.Natives)
	require.Equal(t, []string{"BJDebugMsg"}, names.HelperFunctions)
	require.Equal(t, []string{"player", "unit"}, names.Types)
	// LIKE's '_' wildcard puts bjx with the helper globals.
	require.Equal(t, []string{"bj_lastCreatedUnit", "bjx"}, names.HelperGlobals)
	require.Equal(t, []string{"PLAYER_NEUTRAL_AGGRESSIVE"}, names.UserGlobals)
}

func TestLookup(t *testing.T) {
	s := newStandardStore(t)

	e, err := Lookup(context.Background(), s, "BJDebugMsg")
	require.NoError(t, err)
	require.Equal(t, "BJDebugMsg", e.Name)
	require.Equal(t, "function", e.Kind)
	require.Equal(t, "42", e.LineNumber)
	require.Equal(t, testutil.StandardCommit, e.Commit)
	require.Equal(t, []Parameter{{Name: "msg", Type: "string", Doc: "The message."}}, e.Parameters)
	require.Len(t, e.Annotations, 2)
}

func TestLookup_NotFound(t *testing.T) {
	s := newStandardStore(t)

	_, err := Lookup(context.Background(), s, "NoSuchThing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestVocabulary(t *testing.T) {
	s := newStandardStore(t)

	v, err := Vocabulary(context.Background(), s)
	require.NoError(t, err)
	assert.True(t, v.Contains(syntax.Native, "CreateUnit"))
	assert.True(t, v.Contains(syntax.GlobalUser, "PLAYER_NEUTRAL_AGGRESSIVE"))
	assert.False(t, v.Contains(syntax.Native, "BJDebugMsg"))
}

func TestOpen_ReadOnly(t *testing.T) {
	path, db := testutil.NewTestDBFile(t)
	testutil.NewBuilder(t, db).WithStandardDocs().Build()

	s, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()
	require.Equal(t, path, s.Path())

	kind, err := s.Kind(context.Background(), "unit")
	require.NoError(t, err)
	require.Equal(t, "type", kind)

	_, err = s.db.Exec(`INSERT INTO metadata (key, value) VALUES ('x', 'y')`)
	require.Error(t, err)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(t.TempDir() + "/missing.db")
	require.Error(t, err)
}
