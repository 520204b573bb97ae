package script

import (
	"fmt"
	"time"
)

// Kind selects a script engine.
type Kind int

const (
	KindLua Kind = iota
	KindJS
)

func (k Kind) String() string {
	switch k {
	case KindLua:
		return "lua"
	case KindJS:
		return "javascript"
	default:
		return "unknown"
	}
}

// Other returns the engine kind a swap switches to.
func (k Kind) Other() Kind {
	if k == KindLua {
		return KindJS
	}
	return KindLua
}

// ParseKind maps a config name to a Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "lua", "":
		return KindLua, nil
	case "js", "javascript":
		return KindJS, nil
	default:
		return KindLua, fmt.Errorf("script: unknown engine %q", name)
	}
}

// printAlias is the host function the engines' own print goes to, since
// stdout belongs to the terminal UI.
const printAlias = "gen_print"

// Engine is one live interpreter with the host API registered.
type Engine interface {
	Kind() Kind

	// Exec runs src to completion and returns the engine's error, if any.
	Exec(src string) error

	// Close releases the interpreter. The engine is unusable afterwards.
	Close()
}

// New builds a fresh interpreter of the given kind with every binding
// registered as a global function. A positive timeout bounds each Exec.
func New(kind Kind, bindings []Binding, timeout time.Duration) (Engine, error) {
	switch kind {
	case KindLua:
		return newLuaEngine(bindings, timeout)
	case KindJS:
		return newJSEngine(bindings, timeout)
	default:
		return nil, fmt.Errorf("script: unknown engine kind %d", kind)
	}
}
