// Package isetest provides an in-memory ISE node for tests. It speaks
// enough of the ERS and OpenAPI surfaces for the fetch and delete tools:
// paged ERS lists, ERS detail and delete by id, and plain OpenAPI GETs.
package isetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// Server is a fake ISE node behind httptest. Credentials are checked with
// HTTP Basic auth on every request.
type Server struct {
	*httptest.Server

	User     string
	Password string

	mu       sync.Mutex
	ers      map[string]*ersCollection
	openAPI  map[string]any
	fail     map[string]int
	requests []string
}

type ersCollection struct {
	objectName string
	records    []map[string]any
}

// New starts a TLS server accepting user/password. Callers must Close it.
func New(user, password string) *Server {
	s := &Server{
		User:     user,
		Password: password,
		ers:      make(map[string]*ersCollection),
		openAPI:  make(map[string]any),
		fail:     make(map[string]int),
	}
	s.Server = httptest.NewTLSServer(http.HandlerFunc(s.handle))
	return s
}

// AddERS serves records at path. Each record must carry a string "id".
// List pages return id, name, description and link; detail GETs return
// the full record wrapped in objectName.
func (s *Server) AddERS(path, objectName string, records []map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ers[path] = &ersCollection{objectName: objectName, records: records}
}

// AddOpenAPI serves body verbatim as JSON at path.
func (s *Server) AddOpenAPI(path string, body any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openAPI[path] = body
}

// Fail makes every request whose path equals path answer with status.
func (s *Server) Fail(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[path] = status
}

// Requests returns "METHOD /path?query" for every request received.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// Reset forgets recorded requests.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
}

// Count returns how many records remain at an ERS path.
func (s *Server) Count(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.ers[path]; ok {
		return len(c.records)
	}
	return 0
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := r.Method + " " + r.URL.Path
	if r.URL.RawQuery != "" {
		line += "?" + r.URL.RawQuery
	}
	s.requests = append(s.requests, line)

	user, pass, ok := r.BasicAuth()
	if !ok || user != s.User || pass != s.Password {
		writeJSON(w, http.StatusUnauthorized, ersError("Unauthorized"))
		return
	}
	if status, ok := s.fail[r.URL.Path]; ok {
		writeJSON(w, status, ersError(http.StatusText(status)))
		return
	}

	if c, ok := s.ers[r.URL.Path]; ok && r.Method == http.MethodGet {
		s.servePage(w, r, c)
		return
	}
	if body, ok := s.openAPI[r.URL.Path]; ok && r.Method == http.MethodGet {
		writeJSON(w, http.StatusOK, body)
		return
	}
	if i := strings.LastIndex(r.URL.Path, "/"); i > 0 {
		if c, ok := s.ers[r.URL.Path[:i]]; ok {
			s.serveItem(w, r, c, r.URL.Path[i+1:])
			return
		}
	}
	writeJSON(w, http.StatusNotFound, ersError("Resource not found"))
}

func (s *Server) servePage(w http.ResponseWriter, r *http.Request, c *ersCollection) {
	q := r.URL.Query()
	size, err := strconv.Atoi(q.Get("size"))
	if err != nil || size <= 0 {
		size = 20
	}
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page <= 0 {
		page = 1
	}

	resources := []map[string]any{}
	for i := (page - 1) * size; i < page*size && i < len(c.records); i++ {
		rec := c.records[i]
		summary := map[string]any{"id": rec["id"], "link": s.link(r.URL.Path, rec)}
		for _, k := range []string{"name", "description"} {
			if v, ok := rec[k]; ok {
				summary[k] = v
			}
		}
		resources = append(resources, summary)
	}
	result := map[string]any{"total": len(c.records), "resources": resources}
	if page*size < len(c.records) {
		result["nextPage"] = map[string]any{
			"rel":  "next",
			"href": s.URL + r.URL.Path + "?size=" + strconv.Itoa(size) + "&page=" + strconv.Itoa(page+1),
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"SearchResult": result})
}

func (s *Server) serveItem(w http.ResponseWriter, r *http.Request, c *ersCollection, id string) {
	idx := slices.IndexFunc(c.records, func(rec map[string]any) bool { return rec["id"] == id })
	if idx < 0 {
		writeJSON(w, http.StatusNotFound, ersError("Resource not found"))
		return
	}
	switch r.Method {
	case http.MethodGet:
		detail := make(map[string]any, len(c.records[idx])+1)
		for k, v := range c.records[idx] {
			detail[k] = v
		}
		detail["link"] = s.link(strings.TrimSuffix(r.URL.Path, "/"+id), c.records[idx])
		writeJSON(w, http.StatusOK, map[string]any{c.objectName: detail})
	case http.MethodDelete:
		c.records = slices.Delete(c.records, idx, idx+1)
		w.WriteHeader(http.StatusNoContent)
	default:
		writeJSON(w, http.StatusMethodNotAllowed, ersError("Method not allowed"))
	}
}

func (s *Server) link(path string, rec map[string]any) map[string]any {
	id, _ := rec["id"].(string)
	return map[string]any{"rel": "self", "href": s.URL + path + "/" + id, "type": "application/json"}
}

func ersError(title string) map[string]any {
	return map[string]any{"ERSResponse": map[string]any{
		"operation": "GET",
		"messages":  []map[string]any{{"title": title, "type": "ERROR"}},
	}}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Records builds n ERS records with ids prefix-000, prefix-001 and so on.
func Records(prefix string, n int) []map[string]any {
	out := make([]map[string]any, n)
	for i := range out {
		id := prefix + "-" + pad3(i)
		out[i] = map[string]any{
			"id":          id,
			"name":        "name-" + pad3(i),
			"description": "record " + strconv.Itoa(i),
		}
	}
	return out
}

func pad3(i int) string {
	s := strconv.Itoa(i)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}
