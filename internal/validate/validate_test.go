package validate

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productionShape = Object(
	String("title").Require(),
	String("subtitle").Require(),
	StringList("listOfProductions"),
	Date("initialDate"),
)

func decode(t *testing.T, body string) Payload {
	t.Helper()
	var p Payload
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	return p
}

func TestShape_Check(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid", body: `{"title":"A","subtitle":"B","listOfProductions":["x","y"]}`},
		{name: "unknown keys ignored", body: `{"title":"A","subtitle":"B","extra":42}`},
		{name: "missing required", body: `{"title":"A"}`, wantErr: "subtitle is required"},
		{name: "empty required string", body: `{"title":"","subtitle":"B"}`, wantErr: "title is required"},
		{name: "wrong type", body: `{"title":3,"subtitle":"B"}`, wantErr: "title must be a string"},
		{name: "null value", body: `{"title":"A","subtitle":null}`, wantErr: "subtitle must not be null"},
		{name: "list of numbers", body: `{"title":"A","subtitle":"B","listOfProductions":[1]}`, wantErr: "listOfProductions[0] must be a string"},
		{name: "list not array", body: `{"title":"A","subtitle":"B","listOfProductions":"x"}`, wantErr: "listOfProductions must be a list"},
		{name: "calendar date", body: `{"title":"A","subtitle":"B","initialDate":"2021-03-01"}`},
		{name: "rfc3339 date", body: `{"title":"A","subtitle":"B","initialDate":"2021-03-01T10:00:00Z"}`},
		{name: "bad date", body: `{"title":"A","subtitle":"B","initialDate":"soon"}`, wantErr: "initialDate must be a date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := productionShape.Check(decode(t, tt.body))
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestShape_Optional(t *testing.T) {
	opt := productionShape.Optional()

	assert.True(t, Default.IsValid(opt, Payload{}))
	assert.True(t, Default.IsValid(opt, Payload{"subtitle": ""}))
	assert.False(t, Default.IsValid(opt, Payload{"subtitle": 1.0}))

	// The original shape is untouched.
	assert.False(t, Default.IsValid(productionShape, Payload{}))
	for _, f := range productionShape.Fields()[:2] {
		assert.True(t, f.Required, f.Name)
	}
}

func TestPayload_Decode(t *testing.T) {
	var dst struct {
		Title    *string  `json:"title"`
		Subtitle *string  `json:"subtitle"`
		List     []string `json:"listOfProductions"`
	}
	p := decode(t, `{"title":"A","listOfProductions":["a","b"]}`)

	require.NoError(t, p.Decode(&dst))
	require.NotNil(t, dst.Title)
	assert.Equal(t, "A", *dst.Title)
	assert.Nil(t, dst.Subtitle)
	assert.Equal(t, []string{"a", "b"}, dst.List)
	assert.True(t, p.Has("title"))
	assert.False(t, p.Has("subtitle"))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2020-12-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("31/12/2020")
	assert.Error(t, err)
}
