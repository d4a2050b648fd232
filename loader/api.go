package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// collector accumulates Lua definitions during file execution, in
// declaration order.
type collector struct {
	world      *lua.LTable
	locations  []rawEntry
	items      []rawEntry
	characters []rawEntry
}

// rawEntry holds a named definition table before compilation.
type rawEntry struct {
	name  string
	table *lua.LTable
}

// registerAPI registers the world constructors as globals:
//
//	World { title = "...", intro = "...", start = "..." }
//	Location "Floresta" { description = "...", takes_to = { "Vila" } }
//	Item "Tocha" { description = "...", location = "Floresta", pickable = true }
//	Character "Velho Sábio" { description = "...", location = "Vila", dialog = { "..." } }
func registerAPI(L *lua.LState, coll *collector) {
	L.SetGlobal("World", L.NewFunction(func(L *lua.LState) int {
		coll.world = L.CheckTable(1)
		return 0
	}))

	L.SetGlobal("Location", curried(L, &coll.locations))
	L.SetGlobal("Item", curried(L, &coll.items))
	L.SetGlobal("Character", curried(L, &coll.characters))
}

// curried returns a constructor of the form Kind "name" { ... }: the first
// call takes the name and returns a function that takes the table.
func curried(L *lua.LState, dst *[]rawEntry) *lua.LFunction {
	return L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			*dst = append(*dst, rawEntry{name: name, table: tbl})
			return 0
		}))
		return 1
	})
}
