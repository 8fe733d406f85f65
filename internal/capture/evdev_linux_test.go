//go:build linux

package capture

import (
	"testing"

	"github.com/minsuh/inputcast/internal/event"
)

func record(code uint16, value int32, typ uint16) *inputEvent {
	return &inputEvent{Type: typ, Code: code, Value: value}
}

func TestEvdevKeyPress(t *testing.T) {
	s := &EvdevSource{}
	var got []event.Event
	sink := func(e event.Event) bool {
		got = append(got, e)
		return false
	}

	s.handle(record(30, 1, evKey), sink) // A down

	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	k, ok := got[0].(event.Key)
	if !ok {
		t.Fatalf("got %T, want event.Key", got[0])
	}
	if k.ScanCode() != 30 || k.KeyCode() != 65 || k.Action() != event.ActionPress {
		t.Fatalf("key event = %+v", k)
	}
}

func TestEvdevKeyAutoRepeat(t *testing.T) {
	s := &EvdevSource{}
	var got []event.Event
	sink := func(e event.Event) bool {
		got = append(got, e)
		return false
	}

	s.handle(record(30, 2, evKey), sink)

	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	if got[0].(event.Key).Action() != event.ActionRepeat {
		t.Fatalf("repeat record produced action %d", got[0].(event.Key).Action())
	}
}

func TestEvdevModifierTracking(t *testing.T) {
	s := &EvdevSource{}
	var last event.Key
	sink := func(e event.Event) bool {
		if k, ok := e.(event.Key); ok {
			last = k
		}
		return false
	}

	s.handle(record(scanShiftLeft, 1, evKey), sink) // shift down
	s.handle(record(30, 1, evKey), sink)            // A down while shift held
	if last.Mods() != event.ModShift {
		t.Fatalf("mods = %d, want %d", last.Mods(), event.ModShift)
	}

	s.handle(record(scanShiftLeft, 0, evKey), sink) // shift up
	s.handle(record(30, 0, evKey), sink)
	if last.Mods() != 0 {
		t.Fatalf("mods = %d after release, want 0", last.Mods())
	}
}

func TestEvdevButtonEmitsRawThenInformational(t *testing.T) {
	s := &EvdevSource{}
	var got []event.Event
	sink := func(e event.Event) bool {
		got = append(got, e)
		return false
	}

	s.handle(record(btnLeft, 1, evKey), sink)

	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	raw, ok := got[0].(event.RawMouseButton)
	if !ok {
		t.Fatalf("first event %T, want RawMouseButton", got[0])
	}
	if raw.Button() != event.ButtonLeft || raw.Action() != event.ActionPress {
		t.Fatalf("raw event = %+v", raw)
	}
	if _, ok := got[1].(event.MouseButton); !ok {
		t.Fatalf("second event %T, want MouseButton", got[1])
	}
}

func TestEvdevCanceledRawSuppressesInformational(t *testing.T) {
	s := &EvdevSource{}
	var got []event.Event
	sink := func(e event.Event) bool {
		got = append(got, e)
		_, isRaw := e.(event.RawMouseButton)
		return isRaw // cancel every raw event
	}

	s.handle(record(btnLeft, 1, evKey), sink)

	if len(got) != 1 {
		t.Fatalf("got %d events, want raw only", len(got))
	}
}

func TestEvdevScrollCarriesButtonState(t *testing.T) {
	s := &EvdevSource{}
	var got []event.Event
	sink := func(e event.Event) bool {
		got = append(got, e)
		return false
	}

	s.handle(record(btnLeft, 1, evKey), sink)
	got = got[:0]
	s.handle(record(relWheel, 1, evRel), sink)

	if len(got) != 1 {
		t.Fatalf("got %d events, want 1", len(got))
	}
	scroll, ok := got[0].(event.MouseScroll)
	if !ok {
		t.Fatalf("got %T, want MouseScroll", got[0])
	}
	if scroll.Delta() != 1 || !scroll.LeftDown() || scroll.RightDown() {
		t.Fatalf("scroll event = %+v", scroll)
	}
}

func TestEvdevCursorAccumulation(t *testing.T) {
	s := &EvdevSource{}
	var got []event.Event
	sink := func(e event.Event) bool {
		got = append(got, e)
		return false
	}

	s.handle(record(relX, 10, evRel), sink)
	s.handle(record(relY, -4, evRel), sink)
	s.handle(record(relWheel, -1, evRel), sink)

	scroll := got[0].(event.MouseScroll)
	if scroll.CursorX() != 10 || scroll.CursorY() != -4 {
		t.Fatalf("cursor = (%v, %v), want (10, -4)", scroll.CursorX(), scroll.CursorY())
	}
}
