package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_ID(t *testing.T) {
	tests := []struct {
		name   string
		rec    Record
		want   string
		wantOK bool
	}{
		{"string", Record{"id": "abc"}, "abc", true},
		{"empty string", Record{"id": ""}, "", false},
		{"number", Record{"id": float64(42)}, "42", true},
		{"large number", Record{"id": float64(1234567890)}, "1234567890", true},
		{"missing", Record{"name": "x"}, "", false},
		{"wrong type", Record{"id": true}, "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.rec.ID()
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStripAll(t *testing.T) {
	rs := []Record{
		{"id": "1", "name": "a", "link": map[string]any{"href": "x"}},
		{"id": "2", "name": "b"},
	}
	StripAll(rs, KeyLink, KeyID)
	assert.Equal(t, []Record{{"name": "a"}, {"name": "b"}}, rs)
}

func TestCollection_DuplicateReplacesInPlace(t *testing.T) {
	c := NewCollection(4)
	c.Add(Record{"id": "1", "v": "first"})
	c.Add(Record{"id": "2", "v": "second"})
	c.Add(Record{"id": "1", "v": "third"})

	require.Equal(t, 2, c.Len())
	assert.Equal(t, 1, c.Duplicates())
	assert.Equal(t, "third", c.Records()[0]["v"])
	assert.Equal(t, "second", c.Records()[1]["v"])
	assert.Equal(t, []string{"1", "2"}, c.IDs())
}

func TestCollection_RecordsWithoutIDAreKept(t *testing.T) {
	c := NewCollection(0)
	c.AddAll([]Record{{"name": "a"}, {"name": "a"}, {"id": "x"}})
	assert.Equal(t, 3, c.Len())
	assert.Zero(t, c.Duplicates())
	assert.Equal(t, []string{"x"}, c.IDs())
}

func TestCollection_NegativeCapacity(t *testing.T) {
	c := NewCollection(-1)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.IDs())
}
