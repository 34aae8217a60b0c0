package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/dm/ise-go/internal/client"
)

// MockISEClient implements client.ISEClient for testing. Calls are recorded
// in order of arrival.
type MockISEClient struct {
	GetFn    func(ctx context.Context, path string) (*client.Response, error)
	DeleteFn func(ctx context.Context, path string) (*client.Response, error)

	mu      sync.Mutex
	gets    []string
	deletes []string
	closed  bool
}

func (m *MockISEClient) Get(ctx context.Context, path string) (*client.Response, error) {
	m.mu.Lock()
	m.gets = append(m.gets, path)
	m.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.GetFn != nil {
		return m.GetFn(ctx, path)
	}
	return jsonResponse(http.StatusOK, map[string]any{"SearchResult": map[string]any{"total": 0}}), nil
}

func (m *MockISEClient) Delete(ctx context.Context, path string) (*client.Response, error) {
	m.mu.Lock()
	m.deletes = append(m.deletes, path)
	m.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, path)
	}
	return &client.Response{StatusCode: http.StatusNoContent}, nil
}

func (m *MockISEClient) BaseURL() string {
	return "https://mock-ise"
}

func (m *MockISEClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *MockISEClient) Gets() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.gets...)
}

func (m *MockISEClient) Deletes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.deletes...)
}

func jsonResponse(status int, v any) *client.Response {
	body, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return &client.Response{
		StatusCode: status,
		Body:       body,
		Headers:    http.Header{"Content-Type": []string{"application/json"}},
	}
}

func authErr(path string) error {
	return &client.AuthError{APIError: client.APIError{StatusCode: http.StatusUnauthorized, Method: http.MethodGet, URL: path}}
}

func notFoundErr(path string) error {
	return &client.NotFoundError{APIError: client.APIError{StatusCode: http.StatusNotFound, Method: http.MethodGet, URL: path}}
}

func serverErr(path string) error {
	return &client.ServerError{APIError: client.APIError{StatusCode: http.StatusInternalServerError, Method: http.MethodGet, URL: path, Message: "boom"}}
}

// ersServer simulates an ERS collection of n summaries at path. Detail GETs
// return {objectName: {...}} with a description field.
type ersServer struct {
	path       string
	objectName string
	n          int
}

func (s ersServer) summary(i int) map[string]any {
	id := fmt.Sprintf("id-%03d", i)
	return map[string]any{
		"id":   id,
		"name": fmt.Sprintf("item-%03d", i),
		"link": map[string]any{"rel": "self", "href": "https://mock-ise" + s.path + "/" + id},
	}
}

func (s ersServer) get(_ context.Context, path string) (*client.Response, error) {
	u, err := url.Parse(path)
	if err != nil {
		return nil, err
	}
	if u.Path == s.path {
		q := u.Query()
		size, _ := strconv.Atoi(q.Get("size"))
		page, _ := strconv.Atoi(q.Get("page"))
		if size <= 0 || page <= 0 {
			return nil, errors.New("bad paging query " + u.RawQuery)
		}
		var resources []map[string]any
		for i := (page - 1) * size; i < page*size && i < s.n; i++ {
			resources = append(resources, s.summary(i))
		}
		return jsonResponse(http.StatusOK, map[string]any{
			"SearchResult": map[string]any{"total": s.n, "resources": resources},
		}), nil
	}
	if id, ok := strings.CutPrefix(u.Path, s.path+"/"); ok {
		return jsonResponse(http.StatusOK, map[string]any{
			s.objectName: map[string]any{
				"id":          id,
				"name":        "detail-" + id,
				"description": "full record",
				"link":        map[string]any{"href": "x"},
			},
		}), nil
	}
	return nil, notFoundErr(path)
}

var errMockFailure = errors.New("mock failure")
