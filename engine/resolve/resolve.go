// Package resolve maps names typed by the player to canonical entity names
// within one scoped collection (a place's items, the inventory, the exits).
package resolve

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// AmbiguityError indicates several canonical names fold to the query.
type AmbiguityError struct {
	Name       string
	Candidates []string
}

func (e *AmbiguityError) Error() string {
	names := strings.Join(e.Candidates, ", ")
	return fmt.Sprintf("qual %s? (%s)", e.Name, names)
}

// NotFoundError indicates no canonical name matched the query.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%q não encontrado", e.Name)
}

// Index is a case-insensitive lookup from folded name to canonical names.
type Index map[string][]string

// NewIndex folds every candidate. Candidates keep their given order.
func NewIndex(candidates []string) Index {
	folder := cases.Fold()
	idx := make(Index, len(candidates))
	for _, name := range candidates {
		key := folder.String(name)
		idx[key] = append(idx[key], name)
	}
	return idx
}

// Lookup resolves a query against the index.
func (idx Index) Lookup(query string) (string, error) {
	key := cases.Fold().String(strings.TrimSpace(query))
	matches := idx[key]
	switch len(matches) {
	case 0:
		return "", &NotFoundError{Name: query}
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguityError{Name: query, Candidates: matches}
	}
}

// Name resolves query against candidates in one step.
func Name(query string, candidates []string) (string, error) {
	return NewIndex(candidates).Lookup(query)
}
