package annotation

import (
	"errors"
	"fmt"
	"strings"
)

// Annotation errors.
//
// Design decision: Conditions that carry no dynamic data are package-level
// sentinel errors so callers can use errors.Is(). Conditions that need to
// report what went wrong (the offending tag, the missing columns) are typed
// errors checked with errors.As().
var (
	// ErrEmptyInput is returned when Annotate is called with an empty
	// probe ID list. An empty join has no meaningful result table.
	ErrEmptyInput = errors.New("empty probe ID list: nothing to annotate")

	// ErrNoAnnotation is returned when a join is attempted before any
	// annotation table has been loaded and no table path was supplied
	// inline.
	ErrNoAnnotation = errors.New("no annotation table loaded: call LoadTable or supply an annotation file")
)

// UnsupportedArrayTypeError is returned by ParseArrayType (and therefore by
// New) when the array-type tag is not one of the three supported values.
// It is raised at construction time, before any download or file I/O.
type UnsupportedArrayTypeError struct {
	// Tag is the rejected user-supplied tag, in its original casing.
	Tag string
}

// Error implements the error interface.
func (e *UnsupportedArrayTypeError) Error() string {
	supported := make([]string, 0, 3)
	for _, at := range SupportedArrayTypes() {
		supported = append(supported, at.String())
	}
	return fmt.Sprintf("unsupported array type %q: must be one of %s",
		e.Tag, strings.Join(supported, ", "))
}

// SchemaError is returned by LoadTable when the annotation table header is
// missing one or more required columns. Missing lists exactly the absent
// column names, in required-column order.
type SchemaError struct {
	// Path is the annotation file that failed validation.
	Path string

	// Missing holds the required column names absent from the header.
	Missing []string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("annotation file %s is missing required columns: %s",
		e.Path, strings.Join(e.Missing, ", "))
}
