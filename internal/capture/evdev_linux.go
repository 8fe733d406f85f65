//go:build linux

package capture

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/minsuh/inputcast/internal/event"
)

// Event codes from input-event-codes.h.
const (
	evKey = 0x01
	evRel = 0x02

	relX     = 0x00
	relY     = 0x01
	relWheel = 0x08

	btnLeft   = 0x110
	btnRight  = 0x111
	btnMiddle = 0x112

	scanShiftLeft    = 42
	scanShiftRight   = 54
	scanControlLeft  = 29
	scanControlRight = 97
	scanAltLeft      = 56
	scanAltRight     = 100
	scanMetaLeft     = 125
	scanMetaRight    = 126
)

// inputEvent mirrors struct input_event.
type inputEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

const inputEventSize = int(unsafe.Sizeof(inputEvent{}))

// EvdevSource reads raw events from a /dev/input/eventN device. Unlike the
// window-backed source it sees input regardless of focus, so it needs read
// access to the device node.
type EvdevSource struct {
	f *os.File

	mods    int
	cursorX float64
	cursorY float64
	left    bool
	middle  bool
	right   bool
}

// NewEvdevSource opens the device at path for reading.
func NewEvdevSource(path string) (*EvdevSource, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("open input device: %w", err)
	}
	return &EvdevSource{f: f}, nil
}

// Run reads device records until the device goes away.
func (s *EvdevSource) Run(sink Sink) error {
	buf := make([]byte, inputEventSize*64)
	for {
		n, err := s.f.Read(buf)
		if err != nil {
			return fmt.Errorf("read input device: %w", err)
		}
		for off := 0; off+inputEventSize <= n; off += inputEventSize {
			rec := (*inputEvent)(unsafe.Pointer(&buf[off]))
			s.handle(rec, sink)
		}
	}
}

// Close releases the device node.
func (s *EvdevSource) Close() error {
	return s.f.Close()
}

func (s *EvdevSource) handle(rec *inputEvent, sink Sink) {
	switch rec.Type {
	case evRel:
		switch rec.Code {
		case relX:
			s.cursorX += float64(rec.Value)
		case relY:
			s.cursorY += float64(rec.Value)
		case relWheel:
			sink(event.NewMouseScroll(float64(rec.Value), s.left, s.middle, s.right, s.cursorX, s.cursorY))
		}

	case evKey:
		switch rec.Code {
		case btnLeft, btnRight, btnMiddle:
			s.handleButton(rec, sink)
		default:
			s.handleKey(rec, sink)
		}
	}
}

func (s *EvdevSource) handleButton(rec *inputEvent, sink Sink) {
	var code int
	switch rec.Code {
	case btnLeft:
		code = event.ButtonLeft
		s.left = rec.Value != 0
	case btnRight:
		code = event.ButtonRight
		s.right = rec.Value != 0
	case btnMiddle:
		code = event.ButtonMiddle
		s.middle = rec.Value != 0
	}

	action := event.ActionRelease
	if rec.Value != 0 {
		action = event.ActionPress
	}

	if sink(event.NewRawMouseButton(code, action, s.mods)) {
		// Raw handling canceled: suppress the informational event.
		return
	}
	sink(event.NewMouseButton(code, action, s.mods))
}

func (s *EvdevSource) handleKey(rec *inputEvent, sink Sink) {
	scan := int(rec.Code)

	var action int
	switch rec.Value {
	case 0:
		action = event.ActionRelease
	case 2:
		action = event.ActionRepeat
	default:
		action = event.ActionPress
	}

	s.trackMods(scan, action)
	sink(event.NewKey(evdevScanToKeyCode(scan), scan, action, s.mods))
}

func (s *EvdevSource) trackMods(scan, action int) {
	var bit int
	switch scan {
	case scanShiftLeft, scanShiftRight:
		bit = event.ModShift
	case scanControlLeft, scanControlRight:
		bit = event.ModControl
	case scanAltLeft, scanAltRight:
		bit = event.ModAlt
	case scanMetaLeft, scanMetaRight:
		bit = event.ModSuper
	default:
		return
	}

	switch action {
	case event.ActionPress:
		s.mods |= bit
	case event.ActionRelease:
		s.mods &^= bit
	}
}

// evdevScanToKeyCode maps evdev key numbers to the logical key codes carried
// by notifications (same GLFW layout the window source uses).
func evdevScanToKeyCode(scan int) int {
	m := map[int]int{
		1: 256, // esc
		2: 49, 3: 50, 4: 51, 5: 52, 6: 53, 7: 54, 8: 55, 9: 56, 10: 57, 11: 48,
		14: 259, 15: 258, // backspace, tab
		16: 81, 17: 87, 18: 69, 19: 82, 20: 84, 21: 89, 22: 85, 23: 73, 24: 79, 25: 80,
		28: 257, // enter
		30: 65, 31: 83, 32: 68, 33: 70, 34: 71, 35: 72, 36: 74, 37: 75, 38: 76,
		44: 90, 45: 88, 46: 67, 47: 86, 48: 66, 49: 78, 50: 77,
		57: 32, // space
		59: 290, 60: 291, 61: 292, 62: 293, 63: 294, 64: 295,
		65: 296, 66: 297, 67: 298, 68: 299, 87: 300, 88: 301,
		scanShiftLeft: 340, scanControlLeft: 341, scanAltLeft: 342, scanMetaLeft: 343,
		scanShiftRight: 344, scanControlRight: 345, scanAltRight: 346, scanMetaRight: 347,
		103: 265, 105: 263, 106: 262, 108: 264, // arrows
	}
	if code, ok := m[scan]; ok {
		return code
	}
	return -1 // unmapped
}
