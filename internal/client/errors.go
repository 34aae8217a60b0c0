package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// APIError is an unexpected HTTP status from ISE.
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// AuthError indicates HTTP 401: wrong credentials or the API surface is
// not enabled for this user.
type AuthError struct {
	APIError
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed (HTTP %d): check ISE_REST_USERNAME/ISE_REST_PASSWORD; "+
		"the ERS APIs may need enabling under Administration > System > Settings > API Settings", e.StatusCode)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *AuthError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// NotFoundError indicates HTTP 404.
type NotFoundError struct {
	APIError
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found (HTTP %d): %s", e.StatusCode, e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *NotFoundError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// ServerError is any other 4xx/5xx status.
type ServerError struct {
	APIError
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (HTTP %d): %s", e.StatusCode, e.Message)
}

// As implements error unwrapping for errors.As to match *APIError.
func (e *ServerError) As(target any) bool {
	if t, ok := target.(**APIError); ok {
		*t = &e.APIError
		return true
	}
	return false
}

// ContentTypeError means ISE answered with something other than JSON,
// usually the HTML login page of a disabled API.
type ContentTypeError struct {
	URL         string
	ContentType string
	Snippet     string
}

func (e *ContentTypeError) Error() string {
	return fmt.Sprintf("expected JSON from %s, got %q (%s): is the ERS/OpenAPI service enabled?", e.URL, e.ContentType, e.Snippet)
}

// UnreachableError is a TCP or TLS failure reaching the node.
type UnreachableError struct {
	Host string
	Err  error
}

func (e *UnreachableError) Error() string {
	var certErr *tls.CertificateVerificationError
	if errors.As(e.Err, &certErr) {
		return fmt.Sprintf("unreachable %s: %v (set ISE_CERT_VERIFY=false or use --insecure for self-signed certificates)", e.Host, e.Err)
	}
	return fmt.Sprintf("unreachable %s: %v", e.Host, e.Err)
}

func (e *UnreachableError) Unwrap() error { return e.Err }

// TransportError wraps any other failure while performing a request.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusCode extracts the HTTP status from err, or 0 if none.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsAuth reports whether err is an AuthError.
func IsAuth(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// checkStatus converts a non-2xx response into the matching error type.
func checkStatus(method string, u *url.URL, r *Response) error {
	if r.StatusCode >= 200 && r.StatusCode < 300 {
		return nil
	}
	base := APIError{
		StatusCode: r.StatusCode,
		Method:     method,
		URL:        u.String(),
		Message:    errorMessage(r.Body),
	}
	switch {
	case r.StatusCode == http.StatusUnauthorized:
		return &AuthError{APIError: base}
	case r.StatusCode == http.StatusNotFound:
		return &NotFoundError{APIError: base}
	default:
		return &ServerError{APIError: base}
	}
}

// errorMessage pulls a human message out of an ERS or OpenAPI error body,
// falling back to the raw (truncated) body.
func errorMessage(body []byte) string {
	var ers ersErrorBody
	if json.Unmarshal(body, &ers) == nil && len(ers.ERSResponse.Messages) > 0 {
		titles := make([]string, 0, len(ers.ERSResponse.Messages))
		for _, m := range ers.ERSResponse.Messages {
			if m.Title != "" {
				titles = append(titles, m.Title)
			}
		}
		if len(titles) > 0 {
			return strings.Join(titles, "; ")
		}
	}
	var oa openAPIErrorBody
	if json.Unmarshal(body, &oa) == nil {
		switch {
		case oa.Message != "":
			return oa.Message
		case oa.Response.Message != "":
			return oa.Response.Message
		}
		if s, ok := oa.Error.(string); ok && s != "" {
			return s
		}
	}
	msg := strings.TrimSpace(truncate(body, 200))
	if msg == "" {
		return "(empty body)"
	}
	return msg
}

// classifyTransport maps a failed round trip to UnreachableError when the
// node could not be reached at all, otherwise TransportError.
func classifyTransport(method string, u *url.URL, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &TransportError{Method: method, URL: u.String(), Err: err}
	}
	if isDialError(err) || isTLSError(err) {
		return &UnreachableError{Host: u.Host, Err: err}
	}
	return &TransportError{Method: method, URL: u.String(), Err: err}
}

func isDialError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func isTLSError(err error) bool {
	var (
		certErr     *tls.CertificateVerificationError
		recordErr   tls.RecordHeaderError
		unknownAuth x509.UnknownAuthorityError
		hostErr     x509.HostnameError
	)
	return errors.As(err, &certErr) || errors.As(err, &recordErr) ||
		errors.As(err, &unknownAuth) || errors.As(err, &hostErr)
}
