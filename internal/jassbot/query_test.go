package jassbot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{name: "empty", json: `{"tag":"EmptyQuery"}`, want: "<empty>"},
		{name: "name", json: `{"tag":"NameQuery","contents":"unit"}`, want: "name(unit)"},
		{name: "return", json: `{"tag":"ReturnQuery","contents":"unit"}`, want: "return-type(unit)"},
		{name: "extends", json: `{"tag":"ExtendsQuery","contents":"widget"}`, want: "extends(widget)"},
		{name: "param", json: `{"tag":"ParamQuery","contents":["real","real"]}`, want: "takes(real, real)"},
		{name: "no params", json: `{"tag":"ParamQuery","contents":[]}`, want: "takes()"},
		{
			name: "sum",
			json: `{"tag":"SumQuery","contents":[{"tag":"NameQuery","contents":"create"},{"tag":"ReturnQuery","contents":"unit"}]}`,
			want: "combined-score(name(create), return-type(unit))",
		},
		{
			name: "nested min",
			json: `{"tag":"MinQuery","contents":[{"tag":"SumQuery","contents":[{"tag":"EmptyQuery"}]},{"tag":"ParamQuery","contents":["player"]}]}`,
			want: "best-of(combined-score(<empty>), takes(player))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q Query
			require.NoError(t, json.Unmarshal([]byte(tt.json), &q))
			got, err := q.Explain()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestUnmarshal_UnknownTag(t *testing.T) {
	var q Query
	require.NoError(t, json.Unmarshal([]byte(`{"tag":"FuzzyQuery","contents":"x"}`), &q))
	require.Equal(t, Query{Tag: "FuzzyQuery"}, q)
	_, err := q.Explain()
	require.ErrorIs(t, err, ErrUnknownQueryTag)

	require.NoError(t, json.Unmarshal([]byte(`{"tag":"SumQuery","contents":[{"tag":"Nope"}]}`), &q))
	require.Equal(t, Query{Tag: TagSum, Children: []Query{{Tag: "Nope"}}}, q)
	_, err = q.Explain()
	require.ErrorIs(t, err, ErrUnknownQueryTag)
}

func TestUnmarshal_WrongContents(t *testing.T) {
	var q Query
	err := json.Unmarshal([]byte(`{"tag":"NameQuery","contents":["a"]}`), &q)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUnknownQueryTag)
}

func TestExplain_UnknownTag(t *testing.T) {
	_, err := Query{Tag: "Bogus"}.Explain()
	require.ErrorIs(t, err, ErrUnknownQueryTag)

	_, err = Query{Tag: TagSum, Children: []Query{{Tag: "Bogus"}}}.Explain()
	require.ErrorIs(t, err, ErrUnknownQueryTag)
}

func TestMarshalJSON(t *testing.T) {
	q := Query{Tag: TagSum, Children: []Query{
		{Tag: TagName, Text: "unit"},
		{Tag: TagParam},
		{Tag: TagEmpty},
	}}

	b, err := json.Marshal(q)
	require.NoError(t, err)
	require.JSONEq(t,
		`{"tag":"SumQuery","contents":[{"tag":"NameQuery","contents":"unit"},{"tag":"ParamQuery","contents":[]},{"tag":"EmptyQuery"}]}`,
		string(b))
}
