package script

import (
	"errors"
	"fmt"
	"time"

	"github.com/dop251/goja"
)

const interruptReason = "script execution timeout"

type jsEngine struct {
	rt      *goja.Runtime
	timeout time.Duration
}

func newJSEngine(bindings []Binding, timeout time.Duration) (*jsEngine, error) {
	rt := goja.New()

	for _, b := range bindings {
		if err := rt.Set(b.Sig.Name, jsFunction(rt, b)); err != nil {
			return nil, fmt.Errorf("script: register %s: %w", b.Sig.Name, err)
		}
	}

	console := rt.NewObject()
	if fn := rt.Get(printAlias); fn != nil {
		if err := console.Set("log", fn); err != nil {
			return nil, fmt.Errorf("script: register console.log: %w", err)
		}
	}

	// Block globals that reach outside the runtime.
	for _, name := range []string{"require", "fetch", "XMLHttpRequest", "eval", "Function"} {
		rt.Set(name, goja.Undefined())
	}
	rt.Set("console", console)

	return &jsEngine{rt: rt, timeout: timeout}, nil
}

func jsFunction(rt *goja.Runtime, b Binding) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		args := make([]Value, len(call.Arguments))
		for i, arg := range call.Arguments {
			args[i] = fromJS(arg)
		}
		return toJS(rt, b.Call(args))
	}
}

func fromJS(v goja.Value) Value {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return NilValue()
	}
	switch x := v.Export().(type) {
	case bool:
		return BoolValue(x)
	case int64:
		return IntValue(x)
	case float64:
		return NumberValue(x)
	case string:
		return StringValue(x)
	default:
		if t := v.ExportType(); t != nil {
			return Unsupported(t.String())
		}
		return Unsupported("unknown")
	}
}

func toJS(rt *goja.Runtime, v Value) goja.Value {
	switch v.Kind {
	case KindInt:
		return rt.ToValue(v.Int)
	case KindFloat:
		return rt.ToValue(v.Float)
	case KindString:
		return rt.ToValue(v.Str)
	case KindBool:
		return rt.ToValue(v.Bool)
	default:
		return goja.Undefined()
	}
}

func (e *jsEngine) Kind() Kind { return KindJS }

func (e *jsEngine) Exec(src string) error {
	if e.timeout > 0 {
		timer := time.AfterFunc(e.timeout, func() {
			e.rt.Interrupt(interruptReason)
		})
		defer func() {
			timer.Stop()
			e.rt.ClearInterrupt()
		}()
	}

	_, err := e.rt.RunString(src)
	if err == nil {
		return nil
	}

	var interrupted *goja.InterruptedError
	if errors.As(err, &interrupted) {
		return fmt.Errorf("script interrupted: %v", interrupted.Value())
	}
	return err
}

func (e *jsEngine) Close() {
	e.rt.Interrupt("engine closed")
	e.rt = nil
}
