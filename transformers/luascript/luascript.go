package luascript

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"sync"

	luaBatch "github.com/barelyhuman/batchpipe/lua/batchpipe"
	ghttp "github.com/cjoudrey/gluahttp"
	stringsLib "github.com/vadv/gopher-lua-libs/strings"
	yamlLib "github.com/vadv/gopher-lua-libs/yaml"
	lua "github.com/yuin/gopher-lua"
	luajson "layeh.com/gopher-json"
)

const transformFunc = "Transform"

// ScriptError is returned when a script's Transform reports an error by
// returning nil, "message".
type ScriptError struct {
	Script  string
	Message string
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("%v: %v", e.Script, e.Message)
}

// LuaTransformer runs a script's global Transform(content) function.
// A Lua state is single threaded so calls are serialised.
type LuaTransformer struct {
	lock     sync.Mutex
	filename string
	luaState *lua.LState
}

// Load executes filename once and keeps its state around. basePath is
// exposed to the script as the global `workingdir`.
func Load(filename string, basePath string) (*LuaTransformer, error) {
	lState := lua.NewState()
	luaBatch.Preload(lState)
	luajson.Preload(lState)
	yamlLib.Preload(lState)
	stringsLib.Preload(lState)
	lState.PreloadModule("http", ghttp.NewHttpModule(&http.Client{}).Loader)
	if basePath == "." {
		lState.SetGlobal("workingdir", lua.LString(""))
	} else {
		lState.SetGlobal("workingdir", lua.LString(basePath))
	}

	if err := lState.DoFile(filename); err != nil {
		lState.Close()
		return nil, fmt.Errorf("failed to execute plugin: %v, with error: %w", filename, err)
	}
	if fn := lState.GetGlobal(transformFunc); fn.Type() != lua.LTFunction {
		lState.Close()
		return nil, fmt.Errorf("plugin %v does not define a %v function", filename, transformFunc)
	}

	return &LuaTransformer{
		filename: filename,
		luaState: lState,
	}, nil
}

// LoadDir loads every .lua file under dir in lexical order. A missing dir
// loads nothing.
func LoadDir(dir string, basePath string) ([]*LuaTransformer, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	var scripts []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".lua" {
			return nil
		}
		scripts = append(scripts, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read the plugins dir: %v, with error: %w", dir, err)
	}
	sort.Strings(scripts)

	loaded := make([]*LuaTransformer, 0, len(scripts))
	for _, script := range scripts {
		lt, err := Load(script, basePath)
		if err != nil {
			for _, l := range loaded {
				l.Close()
			}
			return nil, err
		}
		loaded = append(loaded, lt)
	}
	return loaded, nil
}

func (lt *LuaTransformer) Name() string {
	return lt.filename
}

func (lt *LuaTransformer) Transform(input []byte) ([]byte, error) {
	lt.lock.Lock()
	defer lt.lock.Unlock()

	if err := lt.luaState.CallByParam(lua.P{
		Fn:      lt.luaState.GetGlobal(transformFunc),
		NRet:    2,
		Protect: true,
	}, lua.LString(string(input))); err != nil {
		return nil, fmt.Errorf("failed to execute %v's %v, with error: %w", lt.filename, transformFunc, err)
	}

	ret := lt.luaState.Get(-2)
	errVal := lt.luaState.Get(-1)
	lt.luaState.Pop(2)

	if errVal != lua.LNil {
		return nil, &ScriptError{Script: lt.filename, Message: errVal.String()}
	}
	content, ok := ret.(lua.LString)
	if !ok {
		return nil, fmt.Errorf("invalid return value in plugin %v, expected a string, got %v", lt.filename, ret.Type())
	}
	return []byte(content), nil
}

func (lt *LuaTransformer) Close() {
	lt.luaState.Close()
}
