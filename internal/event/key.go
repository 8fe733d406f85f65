package event

// Key is fired when a keyboard signal is detected. It is informational only
// and cannot be canceled.
type Key struct {
	keyCode  int
	scanCode int
	action   int
	mods     int
}

// NewKey constructs a keyboard notification.
func NewKey(keyCode, scanCode, action, mods int) Key {
	return Key{keyCode: keyCode, scanCode: scanCode, action: action, mods: mods}
}

// SentinelKey returns the placeholder form (-1 in every field).
func SentinelKey() Key {
	return NewKey(Sentinel, Sentinel, Sentinel, Sentinel)
}

// KeyCode returns the logical key code that triggered this event.
func (e Key) KeyCode() int { return e.keyCode }

// ScanCode returns the platform scan code of the physical key. Scan codes
// are platform-specific but stable across sessions, so they are safe to
// persist in custom key bindings; they do not transfer between platforms.
func (e Key) ScanCode() int { return e.scanCode }

// Action returns ActionPress, ActionRelease or ActionRepeat.
func (e Key) Action() int { return e.action }

// Mods returns the bit-field of modifier keys held when the key fired.
func (e Key) Mods() int { return e.mods }

func (e Key) Cancelable() bool { return false }

func (Key) sealed() {}
