// Package types defines the shared data structures for the Aventura engine.
// This package contains only type definitions — no logic, no methods.
package types

// ItemType discriminates item behaviour.
type ItemType string

const (
	ItemGeneric   ItemType = "generic"
	ItemWeapon    ItemType = "weapon"
	ItemArmor     ItemType = "armor"
	ItemKey       ItemType = "key"
	ItemPotion    ItemType = "potion"
	ItemQuestItem ItemType = "quest_item"
)

// CharacterType discriminates character behaviour.
type CharacterType string

const (
	CharacterPlayer CharacterType = "player"
	CharacterNPC    CharacterType = "npc"
)

// WorldData is the decoded world file, before any entity is built.
type WorldData struct {
	Title      string         `json:"title,omitempty" yaml:"title,omitempty"`
	Intro      string         `json:"intro,omitempty" yaml:"intro,omitempty"`
	Start      string         `json:"start,omitempty" yaml:"start,omitempty"`
	Locations  []LocationDef  `json:"locations" yaml:"locations"`
	Items      []ItemDef      `json:"items" yaml:"items"`
	Characters []CharacterDef `json:"characters,omitempty" yaml:"characters,omitempty"`
}

// LocationDef is a single location record.
type LocationDef struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	TakesTo     []string `json:"takes_to,omitempty" yaml:"takes_to,omitempty"`
}

// ItemDef is a single item record. Bonus fields only matter for their type.
type ItemDef struct {
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Location     string   `json:"location" yaml:"location"`
	Pickable     bool     `json:"pickable,omitempty" yaml:"pickable,omitempty"`
	Type         ItemType `json:"type,omitempty" yaml:"type,omitempty"`
	OffenseBonus int      `json:"offense_bonus,omitempty" yaml:"offense_bonus,omitempty"`
	DefenseBonus int      `json:"defense_bonus,omitempty" yaml:"defense_bonus,omitempty"`
	HealAmount   int      `json:"heal_amount,omitempty" yaml:"heal_amount,omitempty"`
}

// CharacterDef is a single non-player character record.
type CharacterDef struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Location    string   `json:"location" yaml:"location"`
	Dialog      []string `json:"dialog,omitempty" yaml:"dialog,omitempty"`
}

// Intent is the parsed representation of a player command.
type Intent struct {
	Verb   string
	Object string // optional
}

// Event is emitted after a command mutates state.
type Event struct {
	Type string
	Data map[string]any
}

// Result is the output of a single game step.
type Result struct {
	Output   []string
	Events   []Event
	Continue bool
}

// ActionGroup is a titled list of commands the player can type right now.
type ActionGroup struct {
	Title   string
	Actions []string
}
