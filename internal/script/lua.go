package script

import (
	"context"
	"errors"
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"
)

type luaEngine struct {
	L       *lua.LState
	timeout time.Duration
}

func newLuaEngine(bindings []Binding, timeout time.Duration) (*luaEngine, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name))
		if err != nil {
			L.Close()
			return nil, fmt.Errorf("script: open lua %s library: %w", lib.name, err)
		}
	}

	// No file access from the console.
	for _, name := range []string{"dofile", "loadfile", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}

	for _, b := range bindings {
		fn := L.NewFunction(luaFunction(b))
		L.SetGlobal(b.Sig.Name, fn)
		if b.Sig.Name == printAlias {
			L.SetGlobal("print", fn)
		}
	}

	return &luaEngine{L: L, timeout: timeout}, nil
}

func luaFunction(b Binding) lua.LGFunction {
	return func(L *lua.LState) int {
		n := L.GetTop()
		args := make([]Value, n)
		for i := 0; i < n; i++ {
			args[i] = fromLua(L.Get(i + 1))
		}
		ret := b.Call(args)
		if ret.Kind == KindNil {
			return 0
		}
		L.Push(toLua(ret))
		return 1
	}
}

func fromLua(lv lua.LValue) Value {
	switch v := lv.(type) {
	case *lua.LNilType:
		return NilValue()
	case lua.LBool:
		return BoolValue(bool(v))
	case lua.LNumber:
		return NumberValue(float64(v))
	case lua.LString:
		return StringValue(string(v))
	default:
		return Unsupported(lv.Type().String())
	}
}

func toLua(v Value) lua.LValue {
	switch v.Kind {
	case KindInt:
		return lua.LNumber(v.Int)
	case KindFloat:
		return lua.LNumber(v.Float)
	case KindString:
		return lua.LString(v.Str)
	case KindBool:
		return lua.LBool(v.Bool)
	default:
		return lua.LNil
	}
}

func (e *luaEngine) Kind() Kind { return KindLua }

func (e *luaEngine) Exec(src string) error {
	if e.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
		defer cancel()
		e.L.SetContext(ctx)
		defer e.L.RemoveContext()
	}

	fn, err := e.L.LoadString(src)
	if err != nil {
		return luaError(err)
	}
	e.L.Push(fn)
	if err := e.L.PCall(0, 0, nil); err != nil {
		return luaError(err)
	}
	return nil
}

// luaError drops the traceback so the console gets a single line.
func luaError(err error) error {
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) && apiErr.Object != nil {
		return errors.New(apiErr.Object.String())
	}
	return err
}

func (e *luaEngine) Close() {
	e.L.Close()
}
