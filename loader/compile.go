package loader

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/nathoo/aventura/types"
)

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getInt returns an integer field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// getStrings returns the array part of a table field as strings. A missing
// field yields nil; an empty table yields an empty, non-nil slice.
func getStrings(tbl *lua.LTable, key string) ([]string, error) {
	t := getTable(tbl, key)
	if t == nil {
		return nil, nil
	}
	out := make([]string, 0, t.Len())
	for i := 1; i <= t.Len(); i++ {
		s, ok := t.RawGetInt(i).(lua.LString)
		if !ok {
			return nil, fmt.Errorf("%s[%d] must be a string", key, i)
		}
		out = append(out, string(s))
	}
	return out, nil
}

// compile converts collected Lua tables into world data.
func compile(coll *collector) (*types.WorldData, error) {
	data := &types.WorldData{}

	if coll.world != nil {
		data.Title = getString(coll.world, "title")
		data.Intro = getString(coll.world, "intro")
		data.Start = getString(coll.world, "start")
	}

	for _, raw := range coll.locations {
		takesTo, err := getStrings(raw.table, "takes_to")
		if err != nil {
			return nil, fmt.Errorf("location %q: %w", raw.name, err)
		}
		data.Locations = append(data.Locations, types.LocationDef{
			Name:        raw.name,
			Description: getString(raw.table, "description"),
			TakesTo:     takesTo,
		})
	}

	for _, raw := range coll.items {
		data.Items = append(data.Items, types.ItemDef{
			Name:         raw.name,
			Description:  getString(raw.table, "description"),
			Location:     getString(raw.table, "location"),
			Pickable:     getBool(raw.table, "pickable", false),
			Type:         types.ItemType(getString(raw.table, "type")),
			OffenseBonus: getInt(raw.table, "offense_bonus"),
			DefenseBonus: getInt(raw.table, "defense_bonus"),
			HealAmount:   getInt(raw.table, "heal_amount"),
		})
	}

	for _, raw := range coll.characters {
		dialog, err := getStrings(raw.table, "dialog")
		if err != nil {
			return nil, fmt.Errorf("character %q: %w", raw.name, err)
		}
		data.Characters = append(data.Characters, types.CharacterDef{
			Name:        raw.name,
			Description: getString(raw.table, "description"),
			Location:    getString(raw.table, "location"),
			Dialog:      dialog,
		})
	}

	return data, nil
}
