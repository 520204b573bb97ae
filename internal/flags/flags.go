// Package flags names the shared flags screens and the console agree on.
package flags

const (
	ConsoleVisible      = "console-visible"
	FPSDisplayEnabled   = "fps-display-enabled"
	AutoMovementEnabled = "auto-movement-enabled"
	MusicEnabled        = "music-enabled"
	EngineSwapRequest   = "engine-swap-request"

	// ScriptEngineJS is true while the JavaScript engine is active.
	ScriptEngineJS = "script-engine-js"
)

// Info describes a well-known flag.
type Info struct {
	Name        string
	Description string
	Owner       string // Screen id that declares the flag
}

var known = []Info{
	{ConsoleVisible, "show/hide the script console overlay", "debug"},
	{FPSDisplayEnabled, "show/hide the frame-rate readout", "debug"},
	{AutoMovementEnabled, "autonomous vs. keyboard-driven motion in the battle screen", "battle"},
	{MusicEnabled, "background music playback", "battle"},
	{EngineSwapRequest, "one-shot request to swap the script engine", "debug"},
	{ScriptEngineJS, "JavaScript engine is active (Lua otherwise)", "debug"},
}

// All returns the well-known flags in declaration order.
func All() []Info {
	out := make([]Info, len(known))
	copy(out, known)
	return out
}

// Lookup returns the description of a well-known flag.
func Lookup(name string) (Info, bool) {
	for _, info := range known {
		if info.Name == name {
			return info, true
		}
	}
	return Info{}, false
}
