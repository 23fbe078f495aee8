package service

// ConfirmGate tracks the single pending confirmation for destructive actions.
// A new request overwrites a pending one; only one is tracked at a time.
type ConfirmGate struct {
	pending *pendingAction
}

type pendingAction struct {
	title   string
	message string
	apply   func()
}

func NewConfirmGate() *ConfirmGate {
	return &ConfirmGate{}
}

func (g *ConfirmGate) Request(title, message string, apply func()) {
	g.pending = &pendingAction{title: title, message: message, apply: apply}
}

// Pending returns the title and message of the outstanding request, if any.
func (g *ConfirmGate) Pending() (string, string, bool) {
	if g.pending == nil {
		return "", "", false
	}
	return g.pending.title, g.pending.message, true
}

// Confirm applies and clears the pending action.
func (g *ConfirmGate) Confirm() error {
	if g.pending == nil {
		return ErrNoPendingConfirm
	}
	apply := g.pending.apply
	g.pending = nil
	apply()
	return nil
}

// Cancel discards the pending action without applying it.
func (g *ConfirmGate) Cancel() {
	g.pending = nil
}
