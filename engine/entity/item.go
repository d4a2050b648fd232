package entity

import (
	"fmt"

	"github.com/nathoo/aventura/types"
)

// InInventory is the Location value of an item the player is carrying.
const InInventory = "inventário do jogador"

// Slot names the equipment slot an item occupies after use.
type Slot int

const (
	SlotNone Slot = iota
	SlotWeapon
	SlotArmor
)

// UseResult is the outcome of Item.Use. Side effects on the player
// (equipping, healing) are described here and applied by the caller.
type UseResult struct {
	Text  string
	Equip Slot
	Heal  int
}

// UseFunc implements Use for one item type.
type UseFunc func(it *Item) UseResult

var useHandlers = map[types.ItemType]UseFunc{}

// RegisterUse installs the use behaviour for an item type. Registering an
// existing type replaces it.
func RegisterUse(t types.ItemType, fn UseFunc) {
	useHandlers[t] = fn
}

// KnownItemType reports whether t has registered behaviour.
func KnownItemType(t types.ItemType) bool {
	_, ok := useHandlers[t]
	return ok
}

func init() {
	RegisterUse(types.ItemGeneric, func(it *Item) UseResult {
		return UseResult{Text: "Este item não pode ser usado."}
	})
	RegisterUse(types.ItemWeapon, func(it *Item) UseResult {
		return UseResult{
			Text:  fmt.Sprintf("Você brande %s. Bônus de ataque: +%d", it.Name, it.OffenseBonus),
			Equip: SlotWeapon,
		}
	})
	RegisterUse(types.ItemArmor, func(it *Item) UseResult {
		return UseResult{
			Text:  fmt.Sprintf("Você equipa %s. Bônus de defesa: +%d", it.Name, it.DefenseBonus),
			Equip: SlotArmor,
		}
	})
	RegisterUse(types.ItemKey, func(it *Item) UseResult {
		if it.Used {
			return UseResult{Text: fmt.Sprintf("%s já foi usada.", it.Name)}
		}
		it.Used = true
		return UseResult{Text: fmt.Sprintf("Você usa %s para abrir algo.", it.Name)}
	})
	RegisterUse(types.ItemPotion, func(it *Item) UseResult {
		if it.Used {
			return UseResult{Text: fmt.Sprintf("%s já foi usada.", it.Name)}
		}
		it.Used = true
		return UseResult{
			Text: fmt.Sprintf("Você bebe %s e recupera %d pontos de vida.", it.Name, it.HealAmount),
			Heal: it.HealAmount,
		}
	})
	RegisterUse(types.ItemQuestItem, func(it *Item) UseResult {
		return UseResult{Text: "Este item parece importante para sua missão."}
	})
}

// Item is anything that can lie in a place or be carried.
type Item struct {
	GameObject
	Location     string
	Pickable     bool
	Used         bool
	InInventory  bool
	Type         types.ItemType
	OffenseBonus int
	DefenseBonus int
	HealAmount   int
}

// NewItem builds an item from its record. Unknown or missing types
// degrade to generic.
func NewItem(def types.ItemDef) *Item {
	t := def.Type
	if !KnownItemType(t) {
		t = types.ItemGeneric
	}
	return &Item{
		GameObject:   GameObject{Name: def.Name, Description: def.Description},
		Location:     def.Location,
		Pickable:     def.Pickable,
		Type:         t,
		OffenseBonus: def.OffenseBonus,
		DefenseBonus: def.DefenseBonus,
		HealAmount:   def.HealAmount,
	}
}

// Examine returns what the player sees when looking closely.
func (it *Item) Examine() string {
	if it.Description == "" {
		return fmt.Sprintf("Você não vê nada de especial em %s.", it.Name)
	}
	return it.Description
}

// Pick marks the item as carried. It fails without mutating anything when
// the item is not pickable or already carried.
func (it *Item) Pick() (string, bool) {
	if !it.Pickable || it.InInventory {
		return "Você não pode pegar este item.", false
	}
	it.InInventory = true
	it.Location = InInventory
	return fmt.Sprintf("Você pegou %s.", it.Name), true
}

// Drop clears the carried flag. It fails when the item is not carried.
func (it *Item) Drop() (string, bool) {
	if !it.InInventory {
		return "Você não está carregando este item.", false
	}
	it.InInventory = false
	return fmt.Sprintf("Você largou %s.", it.Name), true
}

// Use runs the behaviour registered for the item's type.
func (it *Item) Use() UseResult {
	fn, ok := useHandlers[it.Type]
	if !ok {
		fn = useHandlers[types.ItemGeneric]
	}
	return fn(it)
}
