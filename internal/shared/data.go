// Package shared holds the per-session state every screen can reach through
// its stack: a table of named boolean flags and the queue of text messages
// waiting to be shown in the console.
//
// Data has no locking. It is only touched from the frame loop.
package shared

import "sort"

// Data is the mutable state shared by all screens of one stack.
type Data struct {
	flags   map[string]bool
	outputs []string
}

// New creates empty shared data.
func New() *Data {
	return &Data{
		flags: make(map[string]bool),
	}
}

// Set stores a flag, creating it when absent.
// Returns the previous value and whether the flag existed.
func (d *Data) Set(name string, value bool) (prev bool, ok bool) {
	prev, ok = d.flags[name]
	d.flags[name] = value
	return prev, ok
}

// Unset removes a flag. Returns the removed value and whether it existed.
func (d *Data) Unset(name string) (prev bool, ok bool) {
	prev, ok = d.flags[name]
	delete(d.flags, name)
	return prev, ok
}

// Get returns a flag's value and whether it exists.
func (d *Data) Get(name string) (value bool, ok bool) {
	value, ok = d.flags[name]
	return value, ok
}

// Enabled reports whether a flag exists and is true.
func (d *Data) Enabled(name string) bool {
	return d.flags[name]
}

// Toggle inverts a flag and returns the new value. An absent flag is created
// as true. Host code only; scripts go through ToggleIfExists.
func (d *Data) Toggle(name string) bool {
	v := !d.flags[name]
	d.flags[name] = v
	return v
}

// Ensure declares a flag with a default value if it does not exist yet.
// Returns true when the flag was created.
func (d *Data) Ensure(name string, value bool) bool {
	if _, ok := d.flags[name]; ok {
		return false
	}
	d.flags[name] = value
	return true
}

// SetIfExists sets a flag only if it already exists.
// ok is false for unknown flags, which are left absent.
func (d *Data) SetIfExists(name string, value bool) (prev bool, ok bool) {
	prev, ok = d.flags[name]
	if !ok {
		return false, false
	}
	d.flags[name] = value
	return prev, true
}

// ToggleIfExists inverts a flag only if it already exists and returns the new value.
func (d *Data) ToggleIfExists(name string) (value bool, ok bool) {
	value, ok = d.flags[name]
	if !ok {
		return false, false
	}
	value = !value
	d.flags[name] = value
	return value, true
}

// Names returns the existing flag names in sorted order.
func (d *Data) Names() []string {
	names := make([]string, 0, len(d.flags))
	for name := range d.flags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Print queues a message for the console.
func (d *Data) Print(msg string) {
	d.outputs = append(d.outputs, msg)
}

// Pending returns the number of queued messages.
func (d *Data) Pending() int {
	return len(d.outputs)
}

// Drain moves every queued message out, oldest first, and clears the queue.
func (d *Data) Drain() []string {
	out := d.outputs
	d.outputs = nil
	return out
}
