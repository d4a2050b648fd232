package tui

import (
	"strings"

	"github.com/nathoo/aventura/types"
)

// commandsFrom flattens action groups into typeable commands. Entries of
// the form "cmd (ou x): description" yield "cmd".
func commandsFrom(groups []types.ActionGroup) []string {
	var out []string
	for _, g := range groups {
		for _, a := range g.Actions {
			if i := strings.Index(a, ":"); i >= 0 {
				a = a[:i]
			}
			if i := strings.Index(a, " ("); i >= 0 {
				a = a[:i]
			}
			out = append(out, a)
		}
	}
	return out
}

// complete extends input to the longest prefix shared by every candidate
// that starts with it, ignoring case. With no match input is returned as is.
func complete(input string, candidates []string) string {
	lower := strings.ToLower(input)
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), lower) {
			matches = append(matches, c)
		}
	}
	if len(matches) == 0 {
		return input
	}

	common := []rune(matches[0])
	for _, m := range matches[1:] {
		r := []rune(m)
		n := 0
		for n < len(common) && n < len(r) && strings.EqualFold(string(common[n]), string(r[n])) {
			n++
		}
		common = common[:n]
	}
	if len(common) <= len([]rune(input)) {
		return input
	}
	return string(common)
}
