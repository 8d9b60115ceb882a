package knob

// InputEvent reports that a drag step changed the knob's sanitized
// value. It fires for every step whose clamped value differs from the
// value before the step, so observers can track the knob live.
type InputEvent struct {
	Old float64
	New float64
}

// ChangeEvent reports that a completed drag left the knob at a
// different value than it started with. At most one ChangeEvent fires
// per drag, at pointer release.
type ChangeEvent struct {
	Initial float64
	Final   float64
}

// Notifier receives value notifications from a drag in progress.
// Delivery is synchronous within pointer event handling; the host's
// actual observer mechanism is an adapter concern.
type Notifier interface {
	Input(InputEvent)
	Change(ChangeEvent)
}

// NotifierFuncs adapts plain callbacks to the Notifier interface.
// Nil callbacks are skipped.
type NotifierFuncs struct {
	OnInput  func(InputEvent)
	OnChange func(ChangeEvent)
}

func (n NotifierFuncs) Input(e InputEvent) {
	if n.OnInput != nil {
		n.OnInput(e)
	}
}

func (n NotifierFuncs) Change(e ChangeEvent) {
	if n.OnChange != nil {
		n.OnChange(e)
	}
}
