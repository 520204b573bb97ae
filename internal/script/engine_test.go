package script

import (
	"reflect"
	"testing"
	"time"
)

func newTestEngine(t *testing.T, kind Kind, h *fakeHost, timeout time.Duration) Engine {
	t.Helper()
	e, err := New(kind, API(h), timeout)
	if err != nil {
		t.Fatalf("New(%v) error: %v", kind, err)
	}
	t.Cleanup(e.Close)
	return e
}

func TestEnginesShareHostAPI(t *testing.T) {
	tests := []struct {
		kind     Kind
		src      string
		expected []string
	}{
		{KindLua, `gen_print(1, "a", true)`, []string{"1 a true"}},
		{KindJS, `gen_print(1, "a", true)`, []string{"1 a true"}},
		{KindLua, `gen_print(1.5, nil, {})`, []string{"1.5 nil unsupported_type"}},
		{KindJS, `gen_print(1.5, null, {})`, []string{"1.5 nil unsupported_type"}},
		{KindLua, `print("via print")`, []string{"via print"}},
		{KindJS, `console.log("via console")`, []string{"via console"}},
		{KindLua, `gen_print(get_flag("on"), get_flag("missing"))`, []string{"true false"}},
		{KindJS, `gen_print(get_flag("on"), get_flag("missing"))`, []string{"true false"}},
		{KindLua, `gen_print(set_flag("on", false), get_flag("on"))`, []string{"true false"}},
		{KindJS, `gen_print(toggle_flag("on"))`, []string{"false"}},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String()+" "+tc.src, func(t *testing.T) {
			h := newFakeHost()
			h.sd.Set("on", true)
			e := newTestEngine(t, tc.kind, h, 0)

			if err := e.Exec(tc.src); err != nil {
				t.Fatalf("Exec() error: %v", err)
			}
			if got := h.sd.Drain(); !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("outputs = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestHostErrorDoesNotAbortScript(t *testing.T) {
	for _, kind := range []Kind{KindLua, KindJS} {
		t.Run(kind.String(), func(t *testing.T) {
			h := newFakeHost()
			e := newTestEngine(t, kind, h, 0)

			if err := e.Exec(`set_flag("nope", true); gen_print("after")`); err != nil {
				t.Fatalf("Exec() error: %v", err)
			}
			expected := []string{`set_flag: flag "nope" does not exist`, "after"}
			if got := h.sd.Drain(); !reflect.DeepEqual(got, expected) {
				t.Errorf("outputs = %q, expected %q", got, expected)
			}
			if _, ok := h.sd.Get("nope"); ok {
				t.Error("script created a flag")
			}
		})
	}
}

func TestScriptErrorsAreReturned(t *testing.T) {
	tests := []struct {
		kind Kind
		src  string
	}{
		{KindLua, `this is not lua`},
		{KindLua, `error("boom")`},
		{KindJS, `this is not js`},
		{KindJS, `throw new Error("boom")`},
		{KindJS, `require("fs")`},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String()+" "+tc.src, func(t *testing.T) {
			e := newTestEngine(t, tc.kind, newFakeHost(), 0)
			if err := e.Exec(tc.src); err == nil {
				t.Fatal("Exec() should fail")
			}
			if err := e.Exec(`gen_print("still alive")`); err != nil {
				t.Errorf("engine unusable after error: %v", err)
			}
		})
	}
}

func TestLuaHasNoFileAccess(t *testing.T) {
	h := newFakeHost()
	e := newTestEngine(t, KindLua, h, 0)

	if err := e.Exec(`gen_print(dofile, loadfile, require)`); err != nil {
		t.Fatalf("Exec() error: %v", err)
	}
	if got := h.sd.Drain(); !reflect.DeepEqual(got, []string{"nil nil nil"}) {
		t.Errorf("outputs = %q, expected [nil nil nil]", got)
	}
}

func TestTimeoutInterruptsRunawayScript(t *testing.T) {
	tests := []struct {
		kind Kind
		src  string
	}{
		{KindLua, `while true do end`},
		{KindJS, `while (true) {}`},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			h := newFakeHost()
			e := newTestEngine(t, tc.kind, h, 50*time.Millisecond)

			start := time.Now()
			if err := e.Exec(tc.src); err == nil {
				t.Fatal("Exec() of an endless loop should fail")
			}
			if elapsed := time.Since(start); elapsed > 5*time.Second {
				t.Errorf("timeout took %v", elapsed)
			}

			if err := e.Exec(`gen_print("next")`); err != nil {
				t.Fatalf("engine unusable after timeout: %v", err)
			}
			if got := h.sd.Drain(); !reflect.DeepEqual(got, []string{"next"}) {
				t.Errorf("outputs = %q, expected [next]", got)
			}
		})
	}
}

func TestSwapLosesScriptState(t *testing.T) {
	h := newFakeHost()

	a, err := New(KindLua, API(h), 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Exec(`x = 5; gen_print(x)`); err != nil {
		t.Fatal(err)
	}
	a.Close()

	b, err := New(KindLua.Other(), API(h), 0)
	if err != nil {
		t.Fatal(err)
	}
	if b.Kind() != KindJS {
		t.Fatalf("Kind() = %v, expected %v", b.Kind(), KindJS)
	}
	if err := b.Exec(`gen_print(1, "a", true)`); err != nil {
		t.Fatal(err)
	}
	b.Close()

	c, err := New(KindJS.Other(), API(h), 0)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if err := c.Exec(`gen_print(x)`); err != nil {
		t.Fatal(err)
	}

	expected := []string{"5", "1 a true", "nil"}
	if got := h.sd.Drain(); !reflect.DeepEqual(got, expected) {
		t.Errorf("outputs = %q, expected %q", got, expected)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in       string
		expected Kind
		ok       bool
	}{
		{"lua", KindLua, true},
		{"", KindLua, true},
		{"js", KindJS, true},
		{"javascript", KindJS, true},
		{"python", KindLua, false},
	}
	for _, tc := range tests {
		got, err := ParseKind(tc.in)
		if (err == nil) != tc.ok || got != tc.expected {
			t.Errorf("ParseKind(%q) = (%v, %v), expected %v", tc.in, got, err, tc.expected)
		}
	}
}
