package stack

type actionKind int

const (
	actionNone actionKind = iota
	actionPush
	actionConstruct
	actionPop
	actionClear
	actionSetOverlay
	actionUnsetOverlay
)

func (k actionKind) String() string {
	switch k {
	case actionNone:
		return "none"
	case actionPush:
		return "push"
	case actionConstruct:
		return "construct"
	case actionPop:
		return "pop"
	case actionClear:
		return "clear"
	case actionSetOverlay:
		return "set-overlay"
	case actionUnsetOverlay:
		return "unset-overlay"
	default:
		return "unknown"
	}
}

// pendingAction is a queued structural change. Only newAction builds one.
type pendingAction struct {
	kind    actionKind
	screen  Screen
	factory Factory
}

// newAction validates the payload against the kind. Push carries a screen,
// construct and set-overlay carry a factory, everything else carries nothing.
// An inconsistent combination becomes a no-op and ok is false.
func newAction(kind actionKind, screen Screen, factory Factory) (a pendingAction, ok bool) {
	hasScreen := screen != nil
	hasFactory := factory != nil

	switch kind {
	case actionPush:
		ok = hasScreen && !hasFactory
	case actionConstruct, actionSetOverlay:
		ok = hasFactory && !hasScreen
	case actionNone, actionPop, actionClear, actionUnsetOverlay:
		ok = !hasScreen && !hasFactory
	}

	if !ok {
		return pendingAction{kind: actionNone}, false
	}
	return pendingAction{kind: kind, screen: screen, factory: factory}, true
}
