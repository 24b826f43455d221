// File: methods_parse.go
// Role: Bulk edge ingestion from "A -- B" entries.
// Grammar:
//   ^\s*(\S+)\s?--\s?(\S+)\s*$
//   At most one space on each side of "--"; labels contain no whitespace.
// AI-HINT (file):
//   - Malformed or empty entries are skipped and simply not counted; they are never errors.
//   - Only a nil slice is an error (ErrNilEdgeList).

package core

import (
	"regexp"
)

// edgeEntryPattern is the grammar of one bulk edge entry.
var edgeEntryPattern = regexp.MustCompile(`^\s*(\S+)\s?--\s?(\S+)\s*$`)

// ParseEdgeEntry splits one "A -- B" entry into its two labels.
// It reports false if the entry does not match the grammar.
//
// Note that the labels themselves may contain "-" characters; "a--b--c" is
// matched greedily as ("a--b", "c").
func ParseEdgeEntry(entry string) (string, string, bool) {
	m := edgeEntryPattern.FindStringSubmatch(entry)
	if m == nil {
		return "", "", false
	}

	return m[1], m[2], true
}

// AddEdges inserts one edge per well-formed entry and returns how many were added.
//
// Behavior highlights:
//   - Empty strings (the absent entries of the list) are skipped.
//   - Entries not matching the grammar are skipped.
//   - Matching entries go through AddEdgeLabels.
//
// Errors:
//   - ErrNilEdgeList if entries is nil.
//
// Complexity: O(Σ len(entry)).
func (g *Graph) AddEdges(entries []string) (int, error) {
	if entries == nil {
		return 0, ErrNilEdgeList
	}

	added := 0
	for _, entry := range entries {
		if entry == "" {
			continue
		}
		a, b, ok := ParseEdgeEntry(entry)
		if !ok {
			continue
		}
		if err := g.AddEdgeLabels(a, b); err != nil {
			// \S+ never yields a blank label, so this is unreachable in practice.
			continue
		}
		added++
	}

	return added, nil
}
