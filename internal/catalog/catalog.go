// Package catalog maps short ISE resource aliases to their REST paths.
package catalog

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Dialect identifies which ISE REST surface serves a resource.
type Dialect int

const (
	// ERS is the paged External RESTful Services surface (/ers/...).
	ERS Dialect = iota
	// OpenAPI is the newer, unpaged surface (/api/...).
	OpenAPI
)

func (d Dialect) String() string {
	switch d {
	case ERS:
		return "ERS"
	case OpenAPI:
		return "OpenAPI"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// maxSuggestions bounds the list offered alongside UnknownResourceError.
const maxSuggestions = 5

var placeholderRE = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)

// Entry is one row of the catalog table.
type Entry struct {
	Alias      string
	ObjectName string // top-level key of ERS detail responses; "-" for OpenAPI
	Path       string
	// NoDetail marks ERS resources without GET-by-id.
	NoDetail bool
	// SettleDelay is slept before the detail phase for resources that
	// misbehave under full parallelism.
	SettleDelay time.Duration
}

// Resource is an immutable, resolved catalog entry.
type Resource struct {
	Alias       string
	ObjectName  string
	Path        string
	Dialect     Dialect
	NoDetail    bool
	SettleDelay time.Duration
}

// Variables returns the placeholder names still present in the path.
func (r Resource) Variables() []string {
	return placeholders(r.Path)
}

// Catalog is a read-only alias -> Resource registry.
type Catalog struct {
	byAlias map[string]Resource
	aliases []string
}

// New validates entries and builds a Catalog. Aliases must be unique and
// every path must start with /ers or /api.
func New(entries []Entry) (*Catalog, error) {
	c := &Catalog{byAlias: make(map[string]Resource, len(entries))}
	for _, e := range entries {
		if e.Alias == "" {
			return nil, fmt.Errorf("catalog: empty alias for path %q", e.Path)
		}
		if _, dup := c.byAlias[e.Alias]; dup {
			return nil, fmt.Errorf("catalog: duplicate alias %q", e.Alias)
		}
		d, err := dialectOf(e.Path)
		if err != nil {
			return nil, fmt.Errorf("catalog: alias %q: %w", e.Alias, err)
		}
		c.byAlias[e.Alias] = Resource{
			Alias:       e.Alias,
			ObjectName:  e.ObjectName,
			Path:        e.Path,
			Dialect:     d,
			NoDetail:    e.NoDetail,
			SettleDelay: e.SettleDelay,
		}
		c.aliases = append(c.aliases, e.Alias)
	}
	sort.Strings(c.aliases)
	return c, nil
}

// Default returns the built-in ISE catalog. It panics if the table is
// malformed, which the package tests guard against.
func Default() *Catalog {
	c, err := New(defaultEntries)
	if err != nil {
		panic(err)
	}
	return c
}

func dialectOf(path string) (Dialect, error) {
	switch {
	case path == "/ers" || strings.HasPrefix(path, "/ers/"):
		return ERS, nil
	case path == "/api" || strings.HasPrefix(path, "/api/"):
		return OpenAPI, nil
	default:
		return 0, fmt.Errorf("path %q is neither /ers nor /api", path)
	}
}

// Lookup returns the unresolved resource for alias.
func (c *Catalog) Lookup(alias string) (Resource, bool) {
	r, ok := c.byAlias[alias]
	return r, ok
}

// Resolve returns the resource for alias with $var placeholders substituted
// from vars.
func (c *Catalog) Resolve(alias string, vars map[string]string) (Resource, error) {
	r, ok := c.byAlias[alias]
	if !ok {
		return Resource{}, &UnknownResourceError{Alias: alias, Suggestions: c.Suggest(alias)}
	}
	var missing string
	r.Path = placeholderRE.ReplaceAllStringFunc(r.Path, func(m string) string {
		name := m[1:]
		v, ok := vars[name]
		if !ok || v == "" {
			if missing == "" {
				missing = name
			}
			return m
		}
		return url.PathEscape(v)
	})
	if missing != "" {
		return Resource{}, &MissingVariableError{Alias: alias, Variable: missing}
	}
	return r, nil
}

// Aliases returns every alias in sorted order.
func (c *Catalog) Aliases() []string {
	out := make([]string, len(c.aliases))
	copy(out, c.aliases)
	return out
}

// Len returns the number of resources in the catalog.
func (c *Catalog) Len() int {
	return len(c.aliases)
}

// Suggest returns aliases sharing the first three characters of alias.
func (c *Catalog) Suggest(alias string) []string {
	prefix := strings.ToLower(alias)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	if prefix == "" {
		return nil
	}
	var out []string
	for _, a := range c.aliases {
		if strings.HasPrefix(a, prefix) {
			out = append(out, a)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

func placeholders(path string) []string {
	matches := placeholderRE.FindAllStringSubmatch(path, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}
