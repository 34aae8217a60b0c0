package client

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// Response is a completed ISE HTTP exchange.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
	// Cached is true when the body came from the response cache.
	Cached bool
}

// JSON decodes the body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// IsJSON reports whether the body is empty or well-formed JSON.
func (r *Response) IsJSON() bool {
	b := bytes.TrimSpace(r.Body)
	return len(b) == 0 || json.Valid(b)
}

// ersErrorBody is the ERS error envelope.
type ersErrorBody struct {
	ERSResponse struct {
		Messages []struct {
			Title string `json:"title"`
			Type  string `json:"type"`
			Code  string `json:"code"`
		} `json:"messages"`
	} `json:"ERSResponse"`
}

// openAPIErrorBody covers the OpenAPI error shapes seen in practice.
type openAPIErrorBody struct {
	Message string `json:"message"`
	Error   any    `json:"error"`
	Response struct {
		Message string `json:"message"`
	} `json:"response"`
}
