// Package player holds the state of the single player of a session:
// inventory, equipment slots and health.
package player

import (
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/nathoo/aventura/engine/entity"
	"github.com/nathoo/aventura/types"
)

const (
	DefaultDescription = "Um aventureiro corajoso"
	DefaultMaxHealth   = 100
)

// Player is the character driven by the user.
type Player struct {
	entity.Character
	Health    int
	MaxHealth int

	inventory *orderedmap.OrderedMap[string, *entity.Item]
	weapon    *entity.Item
	armor     *entity.Item
}

// New creates a player at full health with an empty inventory.
func New(name, location string) (*Player, error) {
	c, err := entity.NewCharacter(name, DefaultDescription, location, types.CharacterPlayer)
	if err != nil {
		return nil, err
	}
	return &Player{
		Character: *c,
		Health:    DefaultMaxHealth,
		MaxHealth: DefaultMaxHealth,
		inventory: orderedmap.NewOrderedMap[string, *entity.Item](),
	}, nil
}

// PickUp moves an item into the inventory. The caller removes it from its
// place only when ok is true.
func (p *Player) PickUp(it *entity.Item) (string, bool) {
	if !it.Pickable {
		return fmt.Sprintf("Não é possível pegar %s.", it.Name), false
	}
	if it.InInventory {
		return fmt.Sprintf("Você já está carregando %s.", it.Name), false
	}
	text, ok := it.Pick()
	if ok {
		p.inventory.Set(it.Name, it)
	}
	return text, ok
}

// Drop removes an item from the inventory, clearing any slot that holds it.
// The dropped item is returned so the caller can place it.
func (p *Player) Drop(name string) (*entity.Item, string, bool) {
	it, ok := p.inventory.Get(name)
	if !ok {
		return nil, notCarrying(name), false
	}
	text, ok := it.Drop()
	if !ok {
		return nil, text, false
	}
	p.inventory.Delete(name)
	if p.weapon == it {
		p.weapon = nil
	}
	if p.armor == it {
		p.armor = nil
	}
	return it, text, true
}

// Use applies a carried item and its side effects on the player.
func (p *Player) Use(name string) (string, bool) {
	it, ok := p.inventory.Get(name)
	if !ok {
		return notCarrying(name), false
	}
	res := it.Use()
	switch res.Equip {
	case entity.SlotWeapon:
		p.weapon = it
	case entity.SlotArmor:
		p.armor = it
	}
	if res.Heal > 0 {
		p.Health = min(p.MaxHealth, p.Health+res.Heal)
	}
	return res.Text, true
}

// Has reports whether the player carries an item with exactly this name.
func (p *Player) Has(name string) bool {
	_, ok := p.inventory.Get(name)
	return ok
}

// Item returns a carried item by exact name.
func (p *Player) Item(name string) (*entity.Item, bool) {
	return p.inventory.Get(name)
}

// ItemNames lists carried items in pick-up order.
func (p *Player) ItemNames() []string {
	return p.inventory.Keys()
}

// Weapon returns the equipped weapon, or nil.
func (p *Player) Weapon() *entity.Item { return p.weapon }

// Armor returns the equipped armor, or nil.
func (p *Player) Armor() *entity.Item { return p.armor }

// Inventory renders the inventory listing.
func (p *Player) Inventory() string {
	if p.inventory.Len() == 0 {
		return "Seu inventário está vazio."
	}
	var b strings.Builder
	b.WriteString("Seu inventário:")
	for _, name := range p.inventory.Keys() {
		it, _ := p.inventory.Get(name)
		fmt.Fprintf(&b, "\n- %s: %s", name, it.Description)
	}
	return b.String()
}

// Status renders health and equipment.
func (p *Player) Status() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Status de %s:\n", p.Name)
	fmt.Fprintf(&b, "Vida: %d/%d", p.Health, p.MaxHealth)
	if p.weapon != nil {
		fmt.Fprintf(&b, "\nArma equipada: %s (+%d ataque)", p.weapon.Name, p.weapon.OffenseBonus)
	}
	if p.armor != nil {
		fmt.Fprintf(&b, "\nArmadura equipada: %s (+%d defesa)", p.armor.Name, p.armor.DefenseBonus)
	}
	return b.String()
}

func notCarrying(name string) string {
	return fmt.Sprintf("Você não está carregando %s.", name)
}
