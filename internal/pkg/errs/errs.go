// Package errs wraps cockroachdb/errors so the rest of the codebase never
// imports it directly. Domain packages stay on the standard library; every
// layer above uses these helpers to keep stacks and sentinel marks.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// New creates a stack-carrying error, typically a package-level sentinel.
func New(msg string) error {
	return cr.New(msg)
}

// Wrap annotates err with msg while preserving the original stack. A nil err
// stays nil so call sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches sentinel to err so errors.Is(err, sentinel) holds without
// losing the underlying cause.
func Mark(err error, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}

// StackLines renders err verbosely and caps the output for log records.
func StackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
