package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/ise-go/internal/model"
)

func TestDecodeERSPage(t *testing.T) {
	body := []byte(`{"SearchResult":{"total":3,"resources":[{"id":"a"},{"id":"b"}],
		"nextPage":{"rel":"next","href":"https://ise/ers/config/sgt?size=2&page=2","type":"application/json"}}}`)
	p, err := decodeERSPage("u", body)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Total)
	assert.Len(t, p.Records, 2)
}

func TestDecodeERSPage_Empty(t *testing.T) {
	p, err := decodeERSPage("u", []byte(`{"SearchResult":{"total":0}}`))
	require.NoError(t, err)
	assert.Zero(t, p.Total)
	assert.Empty(t, p.Records)
}

func TestDecodeERSPage_Errors(t *testing.T) {
	for name, body := range map[string]string{
		"missing envelope": `{"total":1}`,
		"not json":         `<html>`,
		"bare list":        `[]`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := decodeERSPage("u", []byte(body))
			var pe *ParseError
			assert.ErrorAs(t, err, &pe)
		})
	}
}

func TestDecodeOpenAPI(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []model.Record
	}{
		{"bare list", `[{"id":"1"},{"id":"2"}]`, []model.Record{{"id": "1"}, {"id": "2"}}},
		{"response list", `{"response":[{"id":"1"}],"version":"1.0.0"}`, []model.Record{{"id": "1"}}},
		{"response object", `{"response":{"id":"1"},"version":"1.0.0"}`, []model.Record{{"id": "1"}}},
		{"bare object", `{"id":"1","name":"n"}`, []model.Record{{"id": "1", "name": "n"}}},
		{"scalar list", `["a","b"]`, []model.Record{{"value": "a"}, {"value": "b"}}},
		{"string response stays whole", `{"response":"ok"}`, []model.Record{{"response": "ok"}}},
		{"whitespace", "  \n[]\n", []model.Record{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeOpenAPI("u", []byte(tc.body))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecodeOpenAPI_Invalid(t *testing.T) {
	got, err := decodeOpenAPI("u", nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = decodeOpenAPI("u", []byte(`42`))
	var pe *ParseError
	assert.ErrorAs(t, err, &pe)

	_, err = decodeOpenAPI("u", []byte(`{"broken"`))
	assert.ErrorAs(t, err, &pe)
}

func TestDecodeDetail(t *testing.T) {
	rec, err := decodeDetail("u", "ERSEndPoint", []byte(`{"ERSEndPoint":{"id":"x","mac":"AA:BB"}}`))
	require.NoError(t, err)
	assert.Equal(t, model.Record{"id": "x", "mac": "AA:BB"}, rec)

	_, err = decodeDetail("u", "ERSEndPoint", []byte(`{"Sgt":{"id":"x"}}`))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, err.Error(), "missing ERSEndPoint wrapper")

	_, err = decodeDetail("u", "Sgt", []byte(`{"Sgt":null}`))
	assert.ErrorAs(t, err, &pe)
}
