// Package script exposes the host API to the embedded script engines.
//
// The host functions are written once against Value and registered into
// either engine by a small adapter. Arity and argument kinds are checked on
// the host side before a function runs; a failed check or a host error is
// printed to the console and the call returns nil without aborting the
// script.
package script

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gander/internal/shared"
)

// Host is what host functions act on.
type Host interface {
	Shared() *shared.Data
	ResetStack() error
	ClearStack()
	KnownFlags() []string
}

// HostFunc is the canonical host function contract.
type HostFunc func(args []Value) (Value, error)

// Param describes one parameter of a host function.
type Param struct {
	Name string
	Kind ValueKind
}

// Signature describes a host function. With Variadic set the last param
// repeats and MinArgs is the least accepted argument count.
type Signature struct {
	Name     string
	Params   []Param
	Variadic bool
	MinArgs  int
	Returns  ValueKind
	Doc      string
}

// String renders the signature for help output.
func (s Signature) String() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = p.Name + ": " + p.Kind.String()
	}
	if s.Variadic && len(parts) > 0 {
		parts[len(parts)-1] += ", ..."
	}
	out := s.Name + "(" + strings.Join(parts, ", ") + ")"
	if s.Returns != KindNil {
		out += " -> " + s.Returns.String()
	}
	return out
}

// Validate checks arity and argument kinds against sig.
func Validate(sig Signature, args []Value) error {
	if sig.Variadic {
		if len(args) < sig.MinArgs {
			return fmt.Errorf("expected at least %s, got %d", plural(sig.MinArgs), len(args))
		}
	} else if len(args) != len(sig.Params) {
		return fmt.Errorf("expected %s, got %d", plural(len(sig.Params)), len(args))
	}

	for i, arg := range args {
		p := sig.Params[min(i, len(sig.Params)-1)]
		if p.Kind == KindAny || p.Kind == arg.Kind {
			continue
		}
		got := arg.Kind.String()
		if arg.Kind == KindUnsupported && arg.TypeName != "" {
			got = arg.TypeName
		}
		return fmt.Errorf("argument %d (%s): expected %s, got %s", i+1, p.Name, p.Kind, got)
	}
	return nil
}

func plural(n int) string {
	if n == 1 {
		return "1 argument"
	}
	return fmt.Sprintf("%d arguments", n)
}

// Binding is a host function ready to be registered into an engine.
type Binding struct {
	Sig Signature
	Fn  HostFunc
	out *shared.Data
}

// Call validates args, runs the function and reports failures to the
// console. A failed call returns nil.
func (b Binding) Call(args []Value) Value {
	if err := Validate(b.Sig, args); err != nil {
		b.report(err)
		return NilValue()
	}
	v, err := b.Fn(args)
	if err != nil {
		b.report(err)
		return NilValue()
	}
	return v
}

func (b Binding) report(err error) {
	if b.out != nil {
		b.out.Print(b.Sig.Name + ": " + err.Error())
	}
}

// Console messages printed by the host functions.
const (
	MsgResetStack   = "Reset Stack."
	MsgClearedStack = "Cleared Stack."
)

// API binds the full host function table to host.
func API(host Host) []Binding {
	sd := host.Shared()

	bind := func(sig Signature, fn HostFunc) Binding {
		return Binding{Sig: sig, Fn: fn, out: sd}
	}

	var bindings []Binding
	bindings = []Binding{
		bind(Signature{
			Name: "reset_stack",
			Doc:  "replace all screens with a fresh default screen",
		}, func([]Value) (Value, error) {
			if err := host.ResetStack(); err != nil {
				return NilValue(), err
			}
			sd.Print(MsgResetStack)
			return NilValue(), nil
		}),
		bind(Signature{
			Name: "clear_stack",
			Doc:  "remove all content screens",
		}, func([]Value) (Value, error) {
			host.ClearStack()
			sd.Print(MsgClearedStack)
			return NilValue(), nil
		}),
		bind(Signature{
			Name:     "gen_print",
			Params:   []Param{{"value", KindAny}},
			Variadic: true,
			Doc:      "print values separated by spaces",
		}, func(args []Value) (Value, error) {
			parts := make([]string, len(args))
			for i, a := range args {
				parts[i] = a.Format()
			}
			sd.Print(strings.Join(parts, " "))
			return NilValue(), nil
		}),
		bind(Signature{
			Name:    "get_flag",
			Params:  []Param{{"name", KindString}},
			Returns: KindBool,
			Doc:     "read a flag, false when absent",
		}, func(args []Value) (Value, error) {
			return BoolValue(sd.Enabled(args[0].Str)), nil
		}),
		bind(Signature{
			Name:     "print_flags",
			Params:   []Param{{"name", KindString}},
			Variadic: true,
			MinArgs:  1,
			Doc:      "print the value of each named flag",
		}, func(args []Value) (Value, error) {
			for _, a := range args {
				if v, ok := sd.Get(a.Str); ok {
					sd.Print(fmt.Sprintf("Flag %q is %t", a.Str, v))
				} else {
					sd.Print(fmt.Sprintf("Flag %q does not exist", a.Str))
				}
			}
			return NilValue(), nil
		}),
		bind(Signature{
			Name:    "set_flag",
			Params:  []Param{{"name", KindString}, {"value", KindBool}},
			Returns: KindBool,
			Doc:     "set an existing flag, returns the previous value",
		}, func(args []Value) (Value, error) {
			prev, ok := sd.SetIfExists(args[0].Str, args[1].Bool)
			if !ok {
				return NilValue(), fmt.Errorf("flag %q does not exist", args[0].Str)
			}
			return BoolValue(prev), nil
		}),
		bind(Signature{
			Name:    "toggle_flag",
			Params:  []Param{{"name", KindString}},
			Returns: KindBool,
			Doc:     "invert an existing flag, returns the new value",
		}, func(args []Value) (Value, error) {
			v, ok := sd.ToggleIfExists(args[0].Str)
			if !ok {
				return NilValue(), fmt.Errorf("flag %q does not exist", args[0].Str)
			}
			return BoolValue(v), nil
		}),
		bind(Signature{
			Name: "print_known_flags",
			Doc:  "print the flags declared by live screens",
		}, func([]Value) (Value, error) {
			names := host.KnownFlags()
			if len(names) == 0 {
				sd.Print("Known flags: none")
			} else {
				sd.Print("Known flags: " + strings.Join(names, ", "))
			}
			return NilValue(), nil
		}),
		bind(Signature{
			Name: "help",
			Doc:  "list the host functions",
		}, func([]Value) (Value, error) {
			for _, b := range bindings {
				sd.Print(b.Sig.String() + "  " + b.Sig.Doc)
			}
			return NilValue(), nil
		}),
	}
	return bindings
}
