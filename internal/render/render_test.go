package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dm/ise-go/internal/model"
)

func sample() []model.Record {
	return []model.Record{
		{"id": "1", "name": "Employees", "value": float64(4), "tags": []any{"a", "b"}},
		{"id": "2", "name": "Contractors", "description": "3rd party", "propogateToApic": false},
		{"id": "3", "name": "Guests"},
	}
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	got, err := ParseFormat(" YAML ")
	require.NoError(t, err)
	assert.Equal(t, YAML, got)

	_, err = ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv|json|line|pretty|yaml|grid|table")
}

func TestColumns(t *testing.T) {
	assert.Equal(t,
		[]string{"id", "name", "description", "propogateToApic", "tags", "value"},
		Columns(sample()))
	assert.Equal(t, []string{"a", "b"}, Columns([]model.Record{{"b": 1}, {"a": 2}}))
	assert.Empty(t, Columns(nil))
}

func TestCell(t *testing.T) {
	assert.Equal(t, "", Cell(nil))
	assert.Equal(t, "x", Cell("x"))
	assert.Equal(t, "42", Cell(float64(42)))
	assert.Equal(t, "0.5", Cell(0.5))
	assert.Equal(t, "true", Cell(true))
	assert.Equal(t, `["a","b"]`, Cell([]any{"a", "b"}))
	assert.Equal(t, `{"href":"https://x/?a=1&b=<2>"}`, Cell(map[string]any{"href": "https://x/?a=1&b=<2>"}))
}

func TestRender_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "sgt", sample(), CSV))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"id", "name", "description", "propogateToApic", "tags", "value"}, rows[0])
	assert.Equal(t, []string{"1", "Employees", "", "", `["a","b"]`, "4"}, rows[1])
	assert.Equal(t, []string{"2", "Contractors", "3rd party", "false", "", ""}, rows[2])
}

func TestRender_CSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "sgt", nil, CSV))
	assert.Empty(t, buf.String())
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "sgt", sample(), JSON))

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"), "compact json is a single line")

	var env map[string][]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	require.Contains(t, env, "sgt")
	assert.Len(t, env["sgt"], 3)
}

func TestRender_JSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "sgt", nil, JSON))
	assert.Equal(t, "{\"sgt\":[]}\n", buf.String())
}

func TestRender_Line(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "sgt", sample(), Line))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, `{"sgt":[`, lines[0])
	assert.Equal(t, `]}`, lines[4])
	assert.True(t, strings.HasSuffix(lines[1], ","))
	assert.False(t, strings.HasSuffix(lines[3], ","))

	var env map[string][]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env), "line output is still valid json")
	assert.Len(t, env["sgt"], 3)
}

func TestRender_Pretty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "sgt", sample()[:1], Pretty))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "{\n  \"sgt\": [\n    {\n"), out)

	var env map[string][]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.Len(t, env["sgt"], 1)
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "endpointgroup", sample(), YAML))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "endpointgroup:\n  - "), out)

	var env map[string][]map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &env))
	require.Len(t, env["endpointgroup"], 3)
	assert.Equal(t, "Employees", env["endpointgroup"][0]["name"])
}

func TestRender_YAMLKeepsIntegers(t *testing.T) {
	var rec model.Record
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","createTime":1700000000000,"value":1234567,"ratio":0.5,"nested":{"big":2000000},"list":[3000000]}`), &rec))

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "sgt", []model.Record{rec}, YAML))
	out := buf.String()
	assert.Contains(t, out, "createTime: 1700000000000")
	assert.Contains(t, out, "value: 1234567")
	assert.Contains(t, out, "ratio: 0.5")
	assert.Contains(t, out, "big: 2000000")
	assert.NotContains(t, out, "e+")

	var env map[string][]map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &env))
	assert.Equal(t, 1700000000000, env["sgt"][0]["createTime"])
	assert.Equal(t, 1234567, env["sgt"][0]["value"])
	assert.Equal(t, 1700000000000.0, rec["createTime"], "records are not modified")
}

func TestRender_Tables(t *testing.T) {
	for _, f := range []Format{Grid, Table} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Render(&buf, "sgt", sample(), f))
			out := buf.String()

			for _, want := range []string{"id", "name", "description", "Employees", "Contractors", "Guests", "3rd party"} {
				assert.Contains(t, out, want)
			}
			lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
			header := lines[0]
			if f == Grid {
				header = lines[1]
			}
			assert.Less(t, strings.Index(header, "id"), strings.Index(header, "name"))
			assert.Less(t, strings.Index(header, "name"), strings.Index(header, "description"))
		})
	}
}

func TestRender_TableShapes(t *testing.T) {
	var grid, table bytes.Buffer
	require.NoError(t, Render(&grid, "sgt", sample(), Grid))
	require.NoError(t, Render(&table, "sgt", sample(), Table))

	assert.True(t, strings.HasPrefix(grid.String(), "┌"), "grid has an outer border")
	assert.Contains(t, grid.String(), "│")
	assert.False(t, strings.HasPrefix(table.String(), "┌"))
	assert.NotContains(t, table.String(), "│", "table has no column borders")
	assert.Contains(t, table.String(), "─", "table has a header rule")

	gridLines := strings.Count(grid.String(), "\n")
	tableLines := strings.Count(table.String(), "\n")
	assert.Greater(t, gridLines, tableLines)
}

func TestRender_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "sgt", nil, Table))
	assert.Contains(t, buf.String(), "(no sgt records)")
}

func TestRender_TableFlattensNewlines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "x", []model.Record{{"name": "a\nb"}}, Table))
	assert.Contains(t, buf.String(), "a b")
}

func TestRender_UnknownFormat(t *testing.T) {
	assert.Error(t, Render(&bytes.Buffer{}, "x", nil, Format("xml")))
}

func TestWrite_Stdout(t *testing.T) {
	var buf bytes.Buffer
	path, err := Write("", &buf, "sgt", sample(), JSON)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NotEmpty(t, buf.String())

	path, err = Write("", &buf, "sgt", sample(), JSON)
	require.NoError(t, err, "stdout stays usable for a second rendering")
	assert.Equal(t, 2, strings.Count(buf.String(), "\n"))
}

func TestWrite_SaveDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	var stdout bytes.Buffer
	path, err := Write(dir, &stdout, "sgt", sample(), YAML)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sgt.yaml"), path)
	assert.Empty(t, stdout.String())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "sgt:\n"))
}

func TestProjection(t *testing.T) {
	t.Run("hide", func(t *testing.T) {
		rs := sample()
		require.NoError(t, Projection{Hide: []string{"id", "tags"}}.Apply(rs))
		for _, r := range rs {
			assert.NotContains(t, r, "id")
			assert.NotContains(t, r, "tags")
		}
		assert.Equal(t, model.Record{"name": "Employees", "value": float64(4)}, rs[0])
	})

	t.Run("show", func(t *testing.T) {
		rs := sample()
		require.NoError(t, Projection{Show: []string{"name", "description"}}.Apply(rs))
		assert.Equal(t, model.Record{"name": "Employees"}, rs[0])
		assert.Equal(t, model.Record{"name": "Contractors", "description": "3rd party"}, rs[1])
	})

	t.Run("both is an error", func(t *testing.T) {
		p := Projection{Hide: []string{"a"}, Show: []string{"b"}}
		assert.ErrorIs(t, p.Validate(), ErrHideAndShow)
		rs := sample()
		assert.ErrorIs(t, p.Apply(rs), ErrHideAndShow)
		assert.Equal(t, sample(), rs, "records untouched on error")
	})

	t.Run("empty is a no-op", func(t *testing.T) {
		rs := sample()
		require.NoError(t, Projection{}.Apply(rs))
		assert.Equal(t, sample(), rs)
	})
}

func TestSort(t *testing.T) {
	rs := []model.Record{
		{"name": "b", "n": float64(10)},
		{"name": "a", "n": float64(9)},
		{"other": true},
		{"name": "c", "n": float64(100)},
	}
	Sort(rs, "name")
	assert.Equal(t, "a", rs[0]["name"])
	assert.Equal(t, "b", rs[1]["name"])
	assert.Equal(t, "c", rs[2]["name"])
	assert.Equal(t, true, rs[3]["other"], "missing key sorts last")

	Sort(rs, "n")
	assert.Equal(t, float64(9), rs[0]["n"])
	assert.Equal(t, float64(10), rs[1]["n"])
	assert.Equal(t, float64(100), rs[2]["n"], "numbers compare numerically")

	before := append([]model.Record(nil), rs...)
	Sort(rs, "")
	assert.Equal(t, before, rs)
}

func TestStatusLine(t *testing.T) {
	ok := StatusLine{OK: true, Status: 204, Alias: "endpoint", Target: "id-1"}
	assert.Equal(t, "✔ 204 endpoint id-1", ok.String())

	fail := StatusLine{Status: 401, Alias: "sgt", Message: "authentication failed"}
	assert.Equal(t, "✖ 401 sgt authentication failed", fail.String())

	noStatus := StatusLine{Message: "Unknown resource: xyz"}
	assert.Equal(t, "✖ Unknown resource: xyz", noStatus.String())

	var buf bytes.Buffer
	require.NoError(t, WriteStatus(&buf, ok))
	assert.Equal(t, ok.String()+"\n", buf.String(), "no styling when not a terminal")
}
