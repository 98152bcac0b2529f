package engine

import (
	"fmt"
	"strings"
)

// UnknownCategoryError is returned by Run when a requested category ID is
// not in the catalog. No category has been evaluated when it is returned.
type UnknownCategoryError struct {
	Name  string
	Known []string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q (known: %s)", e.Name, strings.Join(e.Known, ", "))
}
