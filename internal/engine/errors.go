package engine

import (
	"fmt"

	"github.com/dm/ise-go/internal/client"
)

// ItemError is a failure on one page, detail or delete inside a batch. It
// never fails the batch on its own.
type ItemError struct {
	Alias  string
	Target string
	Err    error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Alias, e.Target, e.Err)
}

func (e *ItemError) Unwrap() error { return e.Err }

// ParseError means a body was JSON but not in the expected envelope.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// fatal reports whether an item failure must stop the whole batch.
func fatal(err error) bool {
	return client.IsAuth(err)
}
