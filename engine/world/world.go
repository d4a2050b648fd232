// Package world builds the world store from decoded world data: places,
// items and NPCs reachable by flat name lookup, cross-referenced into the
// places that contain them.
package world

import (
	"fmt"
	"log/slog"

	"github.com/nathoo/aventura/engine/entity"
	"github.com/nathoo/aventura/types"
)

// World holds every entity of a session. The maps are built once; only the
// collections inside places change afterwards.
type World struct {
	Title string
	Intro string
	Start string

	Places map[string]*entity.Place
	Items  map[string]*entity.Item
	NPCs   map[string]*entity.Character

	// Load order, for deterministic listings.
	PlaceOrder []string
	ItemOrder  []string
	NPCOrder   []string
}

// Build constructs the world. Entities whose location is unknown are kept
// in the flat maps but left out of every place; each such case is logged
// and returned as a warning.
func Build(data *types.WorldData, log *slog.Logger) (*World, []string, error) {
	if log == nil {
		log = slog.Default()
	}

	w := &World{
		Title:  data.Title,
		Intro:  data.Intro,
		Start:  data.Start,
		Places: make(map[string]*entity.Place, len(data.Locations)),
		Items:  make(map[string]*entity.Item, len(data.Items)),
		NPCs:   make(map[string]*entity.Character, len(data.Characters)),
	}
	var warnings []string
	warn := func(msg string, args ...any) {
		text := fmt.Sprintf(msg, args...)
		warnings = append(warnings, text)
		log.Warn(text)
	}

	for _, loc := range data.Locations {
		if _, dup := w.Places[loc.Name]; !dup {
			w.PlaceOrder = append(w.PlaceOrder, loc.Name)
		}
		w.Places[loc.Name] = entity.NewPlace(loc.Name, loc.Description, loc.TakesTo)
	}
	if w.Start == "" && len(w.PlaceOrder) > 0 {
		w.Start = w.PlaceOrder[0]
	}

	for _, def := range data.Items {
		it := entity.NewItem(def)
		if def.Type != "" && def.Type != it.Type {
			log.Debug("unknown item type, using generic", "item", def.Name, "type", def.Type)
		}
		if _, dup := w.Items[it.Name]; !dup {
			w.ItemOrder = append(w.ItemOrder, it.Name)
		}
		w.Items[it.Name] = it
		if place, ok := w.Places[def.Location]; ok {
			place.AddItem(it)
		} else {
			warn("location %q not found for item %q", def.Location, def.Name)
		}
	}

	for _, def := range data.Characters {
		npc, err := entity.NewNPC(def)
		if err != nil {
			return nil, warnings, fmt.Errorf("building character: %w", err)
		}
		if _, dup := w.NPCs[npc.Name]; !dup {
			w.NPCOrder = append(w.NPCOrder, npc.Name)
		}
		w.NPCs[npc.Name] = npc
		if place, ok := w.Places[def.Location]; ok {
			place.AddCharacter(npc)
		} else {
			warn("location %q not found for character %q", def.Location, def.Name)
		}
	}

	for _, name := range w.PlaceOrder {
		for _, dest := range w.Places[name].TakesTo {
			if _, ok := w.Places[dest]; !ok {
				log.Debug("place leads to an unknown place", "place", name, "takes_to", dest)
			}
		}
	}

	log.Info("world built",
		"places", len(w.Places), "items", len(w.Items), "npcs", len(w.NPCs), "warnings", len(warnings))
	return w, warnings, nil
}

// Place returns the place with the exact given name.
func (w *World) Place(name string) (*entity.Place, bool) {
	p, ok := w.Places[name]
	return p, ok
}

// Orphans lists items and NPCs that are not in any place and not carried.
func (w *World) Orphans() []string {
	var names []string
	for _, name := range w.ItemOrder {
		it := w.Items[name]
		if it.InInventory {
			continue
		}
		if p, ok := w.Places[it.Location]; !ok {
			names = append(names, it.Name)
		} else if _, in := p.Item(it.Name); !in {
			names = append(names, it.Name)
		}
	}
	for _, name := range w.NPCOrder {
		c := w.NPCs[name]
		if p, ok := w.Places[c.Location]; !ok {
			names = append(names, c.Name)
		} else if _, in := p.Character(c.Name); !in {
			names = append(names, c.Name)
		}
	}
	return names
}
