// Package entity implements the world's passive data holders: items,
// characters and places. Behaviour that varies by kind (using an item,
// speaking) goes through small dispatch tables instead of subtypes.
package entity

import "errors"

var (
	// ErrEmptyName is returned when an entity is constructed without a name.
	ErrEmptyName = errors.New("entity name must not be empty")
	// ErrEmptyDescription is returned when a character has no description.
	ErrEmptyDescription = errors.New("character description must not be empty")
)

// GameObject is the identity shared by every entity.
type GameObject struct {
	Name        string
	Description string
}

// Describe returns the object's description.
func (o GameObject) Describe() string {
	return o.Description
}
