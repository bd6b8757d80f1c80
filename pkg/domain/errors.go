package domain

import (
	"fmt"
	"strings"
)

// NotFoundError is returned when a specification name matches no
// directory on the search path.
type NotFoundError struct {
	Name     string
	Searched []string // roots tried, in search order
}

func (e *NotFoundError) Error() string {
	if len(e.Searched) == 0 {
		return fmt.Sprintf("specification %q not found", e.Name)
	}
	return fmt.Sprintf("specification %q not found (searched: %s)", e.Name, strings.Join(e.Searched, ", "))
}

// CycleError is returned when the include graph contains a cycle.
// Cycle holds the offending path; the first and last entries are the
// same specification.
type CycleError struct {
	Cycle []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cyclic include: %s", strings.Join(e.Cycle, " -> "))
}

// UnresolvedPlaceholderError is returned when a plain placeholder has
// no configured value.
type UnresolvedPlaceholderError struct {
	Spec string
	Key  string
}

func (e *UnresolvedPlaceholderError) Error() string {
	return fmt.Sprintf("specification %q: no value for placeholder ${%s}", e.Spec, e.Key)
}

// CredentialUnavailableError is returned when a secret placeholder is
// present but no credential value can be obtained.
type CredentialUnavailableError struct {
	Key    string
	Reason string
}

func (e *CredentialUnavailableError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("no credential available for ${%s}", e.Key)
	}
	return fmt.Sprintf("no credential available for ${%s}: %s", e.Key, e.Reason)
}

// WriteError is returned when the artifact cannot be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write artifact %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// WipeError is returned when the artifact cannot be removed. Callers
// must surface it loudly: a leftover artifact may carry credentials.
type WipeError struct {
	Path string
	Err  error
}

func (e *WipeError) Error() string {
	return fmt.Sprintf("failed to wipe artifact %s: %v", e.Path, e.Err)
}

func (e *WipeError) Unwrap() error { return e.Err }
