package event

// RawMouseButton is fired for a mouse button signal before key bindings are
// updated. Listeners may cancel it to suppress the client's default button
// handling.
type RawMouseButton struct {
	button int
	action int
	mods   int
}

// NewRawMouseButton constructs a raw mouse button notification. Values are
// stored as supplied; the capture backend owns their validity.
func NewRawMouseButton(button, action, mods int) RawMouseButton {
	return RawMouseButton{button: button, action: action, mods: mods}
}

// SentinelRawMouseButton returns the placeholder form (-1 in every field).
func SentinelRawMouseButton() RawMouseButton {
	return NewRawMouseButton(Sentinel, Sentinel, Sentinel)
}

// Button returns the mouse button code that triggered this event.
func (e RawMouseButton) Button() int { return e.button }

// Action returns ActionPress or ActionRelease.
func (e RawMouseButton) Action() int { return e.action }

// Mods returns the bit-field of modifier keys held when the button fired.
func (e RawMouseButton) Mods() int { return e.mods }

func (e RawMouseButton) Cancelable() bool { return true }

func (RawMouseButton) sealed() {}

// MouseButton is fired after a mouse button signal has passed raw handling.
// It is informational only and cannot be canceled.
type MouseButton struct {
	button int
	action int
	mods   int
}

// NewMouseButton constructs a mouse button notification.
func NewMouseButton(button, action, mods int) MouseButton {
	return MouseButton{button: button, action: action, mods: mods}
}

// SentinelMouseButton returns the placeholder form (-1 in every field).
func SentinelMouseButton() MouseButton {
	return NewMouseButton(Sentinel, Sentinel, Sentinel)
}

// Button returns the mouse button code that triggered this event.
func (e MouseButton) Button() int { return e.button }

// Action returns ActionPress or ActionRelease.
func (e MouseButton) Action() int { return e.action }

// Mods returns the bit-field of modifier keys held when the button fired.
func (e MouseButton) Mods() int { return e.mods }

func (e MouseButton) Cancelable() bool { return false }

func (MouseButton) sealed() {}

// MouseScroll is fired when the scroll wheel moves. Listeners may cancel it
// to suppress the client's default scroll handling.
type MouseScroll struct {
	delta      float64
	cursorX    float64
	cursorY    float64
	leftDown   bool
	middleDown bool
	rightDown  bool
}

// NewMouseScroll constructs a scroll notification. cursorX/cursorY are the
// cursor position at the moment the wheel moved; the Down flags report the
// live button states.
func NewMouseScroll(delta float64, leftDown, middleDown, rightDown bool, cursorX, cursorY float64) MouseScroll {
	return MouseScroll{
		delta:      delta,
		cursorX:    cursorX,
		cursorY:    cursorY,
		leftDown:   leftDown,
		middleDown: middleDown,
		rightDown:  rightDown,
	}
}

// SentinelMouseScroll returns the placeholder form (-1 / false fields).
func SentinelMouseScroll() MouseScroll {
	return NewMouseScroll(Sentinel, false, false, false, Sentinel, Sentinel)
}

// Delta returns the scroll amount, positive away from the user.
func (e MouseScroll) Delta() float64 { return e.delta }

// CursorX returns the cursor X position when the wheel moved.
func (e MouseScroll) CursorX() float64 { return e.cursorX }

// CursorY returns the cursor Y position when the wheel moved.
func (e MouseScroll) CursorY() float64 { return e.cursorY }

// LeftDown reports whether the left button was held.
func (e MouseScroll) LeftDown() bool { return e.leftDown }

// MiddleDown reports whether the middle button was held.
func (e MouseScroll) MiddleDown() bool { return e.middleDown }

// RightDown reports whether the right button was held.
func (e MouseScroll) RightDown() bool { return e.rightDown }

func (e MouseScroll) Cancelable() bool { return true }

func (MouseScroll) sealed() {}
