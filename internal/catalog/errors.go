package catalog

import (
	"fmt"
	"strings"
)

// UnknownResourceError is returned when an alias is not in the catalog.
type UnknownResourceError struct {
	Alias       string
	Suggestions []string
}

func (e *UnknownResourceError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("Unknown resource: %s", e.Alias)
	}
	return fmt.Sprintf("Unknown resource: %s (did you mean: %s?)", e.Alias, strings.Join(e.Suggestions, ", "))
}

// MissingVariableError is returned when a path template still holds a
// placeholder after substitution.
type MissingVariableError struct {
	Alias    string
	Variable string
}

func (e *MissingVariableError) Error() string {
	return fmt.Sprintf("resource %s requires variable %q (use --vars %s=...)", e.Alias, e.Variable, e.Variable)
}
