// Package loader reads world files into types.WorldData. JSON, YAML and Lua
// sources are supported; for Lua the VM is discarded after loading.
package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"gopkg.in/yaml.v3"

	"github.com/nathoo/aventura/types"
)

// ErrUnsupportedFormat is returned for files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported world file format")

// Load reads the world file at path, decodes it by extension, and validates
// it. Warnings (ignored keys, dangling references) are returned alongside the
// data; any validation error is a *ValidationError.
func Load(path string) (*types.WorldData, []string, error) {
	var (
		data     *types.WorldData
		warnings []string
		err      error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, warnings, err = decodeFile(path, decodeJSON)
	case ".yaml", ".yml":
		data, warnings, err = decodeFile(path, decodeYAML)
	case ".lua":
		data, err = loadLua(path)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, nil, err
	}

	more, err := Validate(data)
	warnings = append(warnings, more...)
	if err != nil {
		return nil, warnings, err
	}
	return data, warnings, nil
}

type decodeFunc func(raw []byte, data *types.WorldData) ([]string, error)

func decodeFile(path string, decode decodeFunc) (*types.WorldData, []string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading world file %s: %w", path, err)
	}
	data := &types.WorldData{}
	warnings, err := decode(raw, data)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return data, warnings, nil
}

// decodeJSON decodes leniently, then runs a strict pass only to report the
// first unknown key as a warning.
func decodeJSON(raw []byte, data *types.WorldData) ([]string, error) {
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&types.WorldData{}); err != nil && strings.Contains(err.Error(), "unknown field") {
		return []string{"ignored " + strings.TrimPrefix(err.Error(), "json: ")}, nil
	}
	return nil, nil
}

// decodeYAML decodes leniently, then reports every unknown key found by a
// strict pass as a warning.
func decodeYAML(raw []byte, data *types.WorldData) ([]string, error) {
	if err := yaml.Unmarshal(raw, data); err != nil {
		return nil, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var te *yaml.TypeError
	if err := dec.Decode(&types.WorldData{}); errors.As(err, &te) {
		warnings := make([]string, 0, len(te.Errors))
		for _, msg := range te.Errors {
			warnings = append(warnings, "ignored unknown field: "+msg)
		}
		return warnings, nil
	}
	return nil, nil
}

// loadLua executes a Lua world file in a sandboxed VM.
func loadLua(path string) (*types.WorldData, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("executing %s: %w", filepath.Base(path), err)
	}

	data, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling world data: %w", err)
	}
	return data, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	// Base library (print, type, tostring, tonumber, pairs, ipairs, etc.)
	lua.OpenBase(L)
	// Table library (table.insert, table.concat, etc.)
	lua.OpenTable(L)
	// String library (string.format, string.upper, etc.)
	lua.OpenString(L)
	// Math library, for computed bonuses.
	lua.OpenMath(L)
}

// sandbox removes globals that reach outside the world file.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring", "require",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}
