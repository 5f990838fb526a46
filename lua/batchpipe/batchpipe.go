package batchpipe

import (
	"io/fs"
	"path/filepath"

	"github.com/barelyhuman/batchpipe/pkg/junk"
	"github.com/barelyhuman/batchpipe/pkg/sniff"
	lua "github.com/yuin/gopher-lua"
)

var api = map[string]lua.LGFunction{
	"files":  GetFilesIndex,
	"detect": Detect,
	"junk":   IsJunk,
}

// Preload adds batchpipe to the given Lua state's package.preload table.
// After it has been preloaded, it can be loaded using require:
//
//	local batchpipe = require("batchpipe")
func Preload(L *lua.LState) {
	L.PreloadModule("batchpipe", Loader)
}

// Loader is the module loader function.
func Loader(L *lua.LState) int {
	t := L.NewTable()
	L.SetFuncs(t, api)
	L.Push(t)
	return 1
}

// GetFilesIndex lua batchpipe.files(dir) returns (table, err)
func GetFilesIndex(L *lua.LState) int {
	str := L.CheckString(1)

	value, err := LGetFilesIndex(L, str)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	L.Push(value)
	return 1
}

func LGetFilesIndex(L *lua.LState, pathToIndex string) (*lua.LTable, error) {
	indexedPaths, err := getFilesIndex(pathToIndex)
	if err != nil {
		return nil, err
	}
	arr := L.CreateTable(len(indexedPaths), 0)
	for _, item := range indexedPaths {
		arr.Append(lua.LString(item))
	}

	return arr, nil
}

// getFilesIndex lists files under pathToIndex as slash separated paths
// relative to it, leaving out junk.
func getFilesIndex(pathToIndex string) (paths []string, err error) {
	err = filepath.WalkDir(pathToIndex, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || junk.Is(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(pathToIndex, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	return
}

// Detect lua batchpipe.detect(content) returns the sniffed extension or nil
func Detect(L *lua.LState) int {
	content := L.CheckString(1)
	ext, ok := sniff.Detect([]byte(content))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(ext))
	return 1
}

// IsJunk lua batchpipe.junk(name) returns a boolean
func IsJunk(L *lua.LState) int {
	L.Push(lua.LBool(junk.Is(L.CheckString(1))))
	return 1
}
