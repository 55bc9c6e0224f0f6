package interfaces

import (
	"fmt"
	"sort"
	"strings"
)

// DeletionBlockedError reports rows that still reference a resource the
// caller tried to delete.
type DeletionBlockedError struct {
	Resource   string
	References map[string]int64
}

func (e *DeletionBlockedError) Error() string {
	if len(e.References) == 0 {
		return "deletion blocked"
	}
	keys := make([]string, 0, len(e.References))
	for k := range e.References {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%d %s", e.References[k], k))
	}
	return fmt.Sprintf("deletion blocked: %s referenced by %s", e.Resource, strings.Join(parts, ", "))
}
