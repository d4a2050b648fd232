package entity

import (
	"fmt"
	"strings"

	"github.com/nathoo/aventura/types"
)

// DefaultDialog is given to NPCs loaded without any lines.
var DefaultDialog = []string{"Olá, aventureiro!"}

// SpeakFunc implements Speak for one character type.
type SpeakFunc func(c *Character) string

var speakers = map[types.CharacterType]SpeakFunc{}

// RegisterSpeaker installs the speak behaviour for a character type.
func RegisterSpeaker(kind types.CharacterType, fn SpeakFunc) {
	speakers[kind] = fn
}

func init() {
	RegisterSpeaker(types.CharacterPlayer, func(c *Character) string {
		return "Olá!"
	})
	RegisterSpeaker(types.CharacterNPC, func(c *Character) string {
		if len(c.Dialog) == 0 {
			return "Este personagem não tem nada a dizer."
		}
		if c.dialogIndex >= len(c.Dialog) {
			c.dialogIndex = 0
		}
		line := c.Dialog[c.dialogIndex]
		c.dialogIndex = (c.dialogIndex + 1) % len(c.Dialog)
		return line
	})
}

// Character is a person in the world. NPCs carry a dialog cycle; the
// player's extra state lives in the player package.
type Character struct {
	GameObject
	Location string
	Kind     types.CharacterType
	Dialog   []string

	dialogIndex int
}

// NewCharacter builds a character. An empty name or description is rejected.
func NewCharacter(name, description, location string, kind types.CharacterType) (*Character, error) {
	if name == "" {
		return nil, fmt.Errorf("new %s character: %w", kind, ErrEmptyName)
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("new %s character %q: %w", kind, name, ErrEmptyDescription)
	}
	return &Character{
		GameObject: GameObject{Name: name, Description: description},
		Location:   location,
		Kind:       kind,
	}, nil
}

// NewNPC builds a non-player character with its dialog lines. A missing or
// empty dialog gets DefaultDialog.
func NewNPC(def types.CharacterDef) (*Character, error) {
	c, err := NewCharacter(def.Name, def.Description, def.Location, types.CharacterNPC)
	if err != nil {
		return nil, err
	}
	c.Dialog = def.Dialog
	if len(c.Dialog) == 0 {
		c.Dialog = append([]string(nil), DefaultDialog...)
	}
	return c, nil
}

// Speak returns the character's next line.
func (c *Character) Speak() string {
	fn, ok := speakers[c.Kind]
	if !ok {
		return "..."
	}
	return fn(c)
}

// DialogIndex is the position of the next line Speak will return.
func (c *Character) DialogIndex() int {
	return c.dialogIndex
}
