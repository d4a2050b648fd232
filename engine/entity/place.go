package entity

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// Place is a location node. Items and characters keep insertion order so
// every listing is deterministic.
type Place struct {
	GameObject
	TakesTo []string

	items      *orderedmap.OrderedMap[string, *Item]
	characters *orderedmap.OrderedMap[string, *Character]
}

// NewPlace creates an empty place.
func NewPlace(name, description string, takesTo []string) *Place {
	return &Place{
		GameObject: GameObject{Name: name, Description: description},
		TakesTo:    append([]string(nil), takesTo...),
		items:      orderedmap.NewOrderedMap[string, *Item](),
		characters: orderedmap.NewOrderedMap[string, *Character](),
	}
}

// AddItem puts an item in the place, keyed by its own name.
func (p *Place) AddItem(it *Item) {
	it.Location = p.Name
	p.items.Set(it.Name, it)
}

// RemoveItem takes an item out of the place. Returns nil if absent.
func (p *Place) RemoveItem(name string) *Item {
	it, ok := p.items.Get(name)
	if !ok {
		return nil
	}
	p.items.Delete(name)
	return it
}

// Item returns the item with the exact given name.
func (p *Place) Item(name string) (*Item, bool) {
	return p.items.Get(name)
}

// ItemNames lists item names in the order they arrived.
func (p *Place) ItemNames() []string {
	return p.items.Keys()
}

// AddCharacter puts a character in the place, keyed by its own name.
func (p *Place) AddCharacter(c *Character) {
	c.Location = p.Name
	p.characters.Set(c.Name, c)
}

// Character returns the character with the exact given name.
func (p *Place) Character(name string) (*Character, bool) {
	return p.characters.Get(name)
}

// CharacterNames lists character names in the order they arrived.
func (p *Place) CharacterNames() []string {
	return p.characters.Keys()
}

// FullDescription renders the place with its contents and exits.
func (p *Place) FullDescription() []string {
	lines := []string{"== " + p.Name + " ==", p.Description}
	if names := p.ItemNames(); len(names) > 0 {
		lines = append(lines, fmt.Sprintf("Você vê aqui: %s.", strings.Join(names, ", ")))
	}
	if names := p.CharacterNames(); len(names) > 0 {
		lines = append(lines, fmt.Sprintf("Personagens aqui: %s.", strings.Join(names, ", ")))
	}
	if len(p.TakesTo) > 0 {
		lines = append(lines, fmt.Sprintf("Você pode ir para: %s.", strings.Join(p.TakesTo, ", ")))
	}
	return lines
}
