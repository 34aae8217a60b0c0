package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/dm/ise-go/internal/model"
)

var (
	colorGray  = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f8fafc")
)

// leadingColumns always come first, in this order, when present.
var leadingColumns = []string{model.KeyID, model.KeyName, model.KeyDescription}

// Render writes records for alias to w in format f.
func Render(w io.Writer, alias string, records []model.Record, f Format) error {
	if records == nil {
		records = []model.Record{}
	}
	switch f {
	case CSV:
		return renderCSV(w, records)
	case JSON:
		return renderJSON(w, alias, records)
	case Line:
		return renderLine(w, alias, records)
	case Pretty:
		return renderPretty(w, alias, records)
	case YAML:
		return renderYAML(w, alias, records)
	case Grid, Table:
		return renderTable(w, alias, records, f == Grid)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// Write renders to {dir}/{alias}.{format} when dir is set, otherwise to
// stdout. stdout is never closed. The returned path is empty for stdout.
func Write(dir string, stdout io.Writer, alias string, records []model.Record, f Format) (string, error) {
	if dir == "" {
		return "", Render(stdout, alias, records, f)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create save dir: %w", err)
	}
	path := filepath.Join(dir, alias+"."+string(f))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := Render(file, alias, records, f); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

// Columns returns the union of keys across records: id, name and
// description first when present, then the rest sorted.
func Columns(records []model.Record) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		for k := range r {
			seen[k] = struct{}{}
		}
	}
	cols := make([]string, 0, len(seen))
	for _, k := range leadingColumns {
		if _, ok := seen[k]; ok {
			cols = append(cols, k)
			delete(seen, k)
		}
	}
	rest := make([]string, 0, len(seen))
	for k := range seen {
		rest = append(rest, k)
	}
	sort.Strings(rest)
	return append(cols, rest...)
}

// Cell formats one attribute value for csv and text tables. Nested values
// become compact JSON.
func Cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		b, err := marshalCompact(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}

func renderCSV(w io.Writer, records []model.Record) error {
	if len(records) == 0 {
		return nil
	}
	cols := Columns(records)
	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return err
	}
	row := make([]string, len(cols))
	for _, r := range records {
		for i, c := range cols {
			row[i] = Cell(r[c])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func renderJSON(w io.Writer, alias string, records []model.Record) error {
	b, err := marshalCompact(map[string][]model.Record{alias: records})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// renderLine writes the json envelope with one record per line.
func renderLine(w io.Writer, alias string, records []model.Record) error {
	key, err := marshalCompact(alias)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "{%s:[\n", key)
	for i, r := range records {
		b, err := marshalCompact(r)
		if err != nil {
			return err
		}
		buf.Write(b)
		if i < len(records)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("]}\n")
	_, err = w.Write(buf.Bytes())
	return err
}

func renderPretty(w io.Writer, alias string, records []model.Record) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string][]model.Record{alias: records})
}

func renderYAML(w io.Writer, alias string, records []model.Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	out := make([]any, len(records))
	for i, r := range records {
		out[i] = yamlValue(map[string]any(r))
	}
	if err := enc.Encode(map[string][]any{alias: out}); err != nil {
		return err
	}
	return enc.Close()
}

// yamlValue copies v with whole-valued float64s turned into int64. JSON
// decoding yields float64 for every number and yaml.v3 would write large
// integers in exponent form.
func yamlValue(v any) any {
	switch t := v.(type) {
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1<<63 {
			return int64(t)
		}
		return t
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			m[k] = yamlValue(e)
		}
		return m
	case model.Record:
		return yamlValue(map[string]any(t))
	case []any:
		l := make([]any, len(t))
		for i, e := range t {
			l[i] = yamlValue(e)
		}
		return l
	default:
		return v
	}
}

// renderTable draws an aligned table. grid adds outer, column and row
// borders; table draws only the header rule.
func renderTable(w io.Writer, alias string, records []model.Record, grid bool) error {
	r := lipgloss.NewRenderer(w)
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, r.NewStyle().Foreground(colorGray).Render(fmt.Sprintf("(no %s records)", alias)))
		return err
	}

	cols := Columns(records)
	rows := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, len(cols))
		for j, c := range cols {
			row[j] = flatten(Cell(rec[c]))
		}
		rows[i] = row
	}

	header := r.NewStyle().Bold(true).Foreground(colorGray)
	cell := r.NewStyle().Foreground(colorWhite)
	t := ltable.New().
		Headers(cols...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return header.Padding(0, 1)
			}
			return cell.Padding(0, 1)
		}).
		BorderStyle(r.NewStyle().Foreground(colorGray))

	if grid {
		t = t.Border(lipgloss.NormalBorder()).BorderRow(true)
	} else {
		t = t.Border(lipgloss.NormalBorder()).
			BorderTop(false).
			BorderBottom(false).
			BorderLeft(false).
			BorderRight(false).
			BorderHeader(true).
			BorderColumn(false)
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func flatten(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\t", " ").Replace(s)
}

// marshalCompact is json.Marshal without HTML escaping.
func marshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
