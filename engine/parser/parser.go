// Package parser converts command strings into Intent structs.
// Intentionally dumb: no NLP, just a fixed verb prefix and the remainder.
package parser

import (
	"strings"

	"github.com/nathoo/aventura/types"
)

// Canonical verbs.
const (
	VerbQuit      = "sair"
	VerbHelp      = "ajuda"
	VerbLook      = "olhar"
	VerbInventory = "inventario"
	VerbStatus    = "status"
	VerbTake      = "pegar"
	VerbDrop      = "largar"
	VerbUse       = "usar"
	VerbTalk      = "falar com"
	VerbGo        = "ir para"
	VerbExamine   = "examinar"
)

// Commands that take no argument. The whole line must match.
var bareCommands = map[string]string{
	"sair":       VerbQuit,
	"ajuda":      VerbHelp,
	"olhar":      VerbLook,
	"inventario": VerbInventory,
	"inventário": VerbInventory,
	"i":          VerbInventory,
	"status":     VerbStatus,
}

// Commands followed by a name. Longer prefixes come first so
// "olhar para x" is not read as something else.
var argCommands = []struct {
	prefix string
	verb   string
}{
	{"falar com", VerbTalk},
	{"ir para", VerbGo},
	{"olhar para", VerbExamine},
	{"examinar", VerbExamine},
	{"pegar", VerbTake},
	{"largar", VerbDrop},
	{"usar", VerbUse},
}

// Parse converts a raw command string into an Intent. Unrecognized input
// comes back with the whole normalized line as Verb, which no handler
// accepts.
func Parse(input string) types.Intent {
	line := normalize(input)
	if line == "" {
		return types.Intent{}
	}

	if verb, ok := bareCommands[line]; ok {
		return types.Intent{Verb: verb}
	}

	for _, c := range argCommands {
		if line == c.prefix {
			return types.Intent{Verb: c.verb}
		}
		if rest, ok := strings.CutPrefix(line, c.prefix+" "); ok {
			return types.Intent{Verb: c.verb, Object: rest}
		}
	}

	return types.Intent{Verb: line}
}

// TakesObject reports whether verb expects a name after it.
func TakesObject(verb string) bool {
	for _, c := range argCommands {
		if c.verb == verb {
			return true
		}
	}
	return false
}

// normalize lower-cases the line and collapses runs of whitespace.
func normalize(input string) string {
	return strings.Join(strings.Fields(strings.ToLower(input)), " ")
}
