package domain

import (
	"maps"
	"slices"
)

// Groups maps a category label to the documents carrying it, in input order.
type Groups map[string][]Document

// Labels returns the labels in lexical order.
func (g Groups) Labels() []string {
	return slices.Sorted(maps.Keys(g))
}

// Count returns the number of memberships across all labels.
func (g Groups) Count() int {
	n := 0
	for _, docs := range g {
		n += len(docs)
	}
	return n
}
