package capture

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/minsuh/inputcast/internal/event"
)

// Key repeat timing in ticks (60/s): first repeat after repeatDelay, then
// one every repeatInterval.
const (
	repeatDelay    = 24
	repeatInterval = 6
)

// EbitenSource is an Ebitengine window acting as the input backend. Every
// Update tick it polls mouse and keyboard state and emits notifications for
// the signals since the previous tick.
type EbitenSource struct {
	sink  Sink
	title string

	screenW int
	screenH int

	logLines []string
}

// NewEbitenSource creates a window-backed input source.
func NewEbitenSource(title string, width, height int) *EbitenSource {
	return &EbitenSource{
		title:   title,
		screenW: width,
		screenH: height,
	}
}

// Run starts the Ebitengine game loop. Must be called from the main
// goroutine (macOS requirement).
func (s *EbitenSource) Run(sink Sink) error {
	s.sink = sink
	ebiten.SetWindowSize(s.screenW, s.screenH)
	ebiten.SetWindowTitle(s.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(s)
}

// --- ebiten.Game interface ---

func (s *EbitenSource) Update() error {
	s.pollMouse()
	s.pollKeyboard()
	return nil
}

func (s *EbitenSource) Draw(screen *ebiten.Image) {
	var text string
	for _, line := range s.logLines {
		text += line + "\n"
	}
	ebitenutil.DebugPrint(screen, text)
}

func (s *EbitenSource) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// --- polling ---

func (s *EbitenSource) pollMouse() {
	mods := currentMods()

	buttons := []struct {
		eb   ebiten.MouseButton
		code int
	}{
		{ebiten.MouseButtonLeft, event.ButtonLeft},
		{ebiten.MouseButtonRight, event.ButtonRight},
		{ebiten.MouseButtonMiddle, event.ButtonMiddle},
	}
	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			s.emitButton(b.code, event.ActionPress, mods)
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			s.emitButton(b.code, event.ActionRelease, mods)
		}
	}

	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		mx, my := ebiten.CursorPosition()
		scroll := event.NewMouseScroll(
			wheelY,
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
			float64(mx), float64(my),
		)
		if s.sink(scroll) {
			s.logf("scroll %+.1f (canceled)", wheelY)
		} else {
			s.logf("scroll %+.1f", wheelY)
		}
	}
}

// emitButton fires the raw notification first; the informational one follows
// only when no listener canceled the raw signal.
func (s *EbitenSource) emitButton(code, action, mods int) {
	if s.sink(event.NewRawMouseButton(code, action, mods)) {
		s.logf("button %d action %d (canceled)", code, action)
		return
	}
	s.sink(event.NewMouseButton(code, action, mods))
	s.logf("button %d action %d", code, action)
}

func (s *EbitenSource) pollKeyboard() {
	mods := currentMods()

	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		switch {
		case inpututil.IsKeyJustPressed(k):
			s.emitKey(k, event.ActionPress, mods)
		case inpututil.IsKeyJustReleased(k):
			s.emitKey(k, event.ActionRelease, mods)
		default:
			if d := inpututil.KeyPressDuration(k); d > repeatDelay && (d-repeatDelay)%repeatInterval == 0 {
				s.emitKey(k, event.ActionRepeat, mods)
			}
		}
	}
}

func (s *EbitenSource) emitKey(k ebiten.Key, action, mods int) {
	s.sink(event.NewKey(ebitenKeyToKeyCode(k), ebitenKeyToScanCode(k), action, mods))
	if action != event.ActionRepeat {
		s.logf("key %s action %d", k.String(), action)
	}
}

func (s *EbitenSource) logf(format string, args ...any) {
	s.logLines = append(s.logLines, fmt.Sprintf(format, args...))
	if len(s.logLines) > 30 {
		s.logLines = s.logLines[len(s.logLines)-30:]
	}
}

// currentMods builds the modifier bit-field from the live keyboard state.
func currentMods() int {
	var m int
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= event.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= event.ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= event.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= event.ModSuper
	}
	return m
}

// ebitenKeyToKeyCode maps Ebitengine keys to the logical key codes carried
// by notifications (GLFW layout: printable keys at their ASCII value,
// function keys above 255).
func ebitenKeyToKeyCode(k ebiten.Key) int {
	m := map[ebiten.Key]int{
		ebiten.KeyA: 65, ebiten.KeyB: 66, ebiten.KeyC: 67, ebiten.KeyD: 68,
		ebiten.KeyE: 69, ebiten.KeyF: 70, ebiten.KeyG: 71, ebiten.KeyH: 72,
		ebiten.KeyI: 73, ebiten.KeyJ: 74, ebiten.KeyK: 75, ebiten.KeyL: 76,
		ebiten.KeyM: 77, ebiten.KeyN: 78, ebiten.KeyO: 79, ebiten.KeyP: 80,
		ebiten.KeyQ: 81, ebiten.KeyR: 82, ebiten.KeyS: 83, ebiten.KeyT: 84,
		ebiten.KeyU: 85, ebiten.KeyV: 86, ebiten.KeyW: 87, ebiten.KeyX: 88,
		ebiten.KeyY: 89, ebiten.KeyZ: 90,
		ebiten.Key0: 48, ebiten.Key1: 49, ebiten.Key2: 50, ebiten.Key3: 51,
		ebiten.Key4: 52, ebiten.Key5: 53, ebiten.Key6: 54, ebiten.Key7: 55,
		ebiten.Key8: 56, ebiten.Key9: 57,
		ebiten.KeySpace: 32, ebiten.KeyEscape: 256, ebiten.KeyEnter: 257,
		ebiten.KeyTab: 258, ebiten.KeyBackspace: 259,
		ebiten.KeyArrowRight: 262, ebiten.KeyArrowLeft: 263,
		ebiten.KeyArrowDown: 264, ebiten.KeyArrowUp: 265,
		ebiten.KeyF1: 290, ebiten.KeyF2: 291, ebiten.KeyF3: 292,
		ebiten.KeyF4: 293, ebiten.KeyF5: 294, ebiten.KeyF6: 295,
		ebiten.KeyF7: 296, ebiten.KeyF8: 297, ebiten.KeyF9: 298,
		ebiten.KeyF10: 299, ebiten.KeyF11: 300, ebiten.KeyF12: 301,
		ebiten.KeyShiftLeft: 340, ebiten.KeyControlLeft: 341,
		ebiten.KeyAltLeft: 342, ebiten.KeyMetaLeft: 343,
		ebiten.KeyShiftRight: 344, ebiten.KeyControlRight: 345,
		ebiten.KeyAltRight: 346, ebiten.KeyMetaRight: 347,
	}
	if code, ok := m[k]; ok {
		return code
	}
	return -1 // unmapped
}

// ebitenKeyToScanCode maps Ebitengine keys to platform scan codes (evdev
// key numbers). Scan codes identify the physical key and are what the
// binding table persists.
func ebitenKeyToScanCode(k ebiten.Key) int {
	m := map[ebiten.Key]int{
		ebiten.KeyEscape: 1,
		ebiten.Key1:      2, ebiten.Key2: 3, ebiten.Key3: 4, ebiten.Key4: 5,
		ebiten.Key5: 6, ebiten.Key6: 7, ebiten.Key7: 8, ebiten.Key8: 9,
		ebiten.Key9: 10, ebiten.Key0: 11,
		ebiten.KeyBackspace: 14, ebiten.KeyTab: 15,
		ebiten.KeyQ: 16, ebiten.KeyW: 17, ebiten.KeyE: 18, ebiten.KeyR: 19,
		ebiten.KeyT: 20, ebiten.KeyY: 21, ebiten.KeyU: 22, ebiten.KeyI: 23,
		ebiten.KeyO: 24, ebiten.KeyP: 25,
		ebiten.KeyEnter: 28, ebiten.KeyControlLeft: 29,
		ebiten.KeyA: 30, ebiten.KeyS: 31, ebiten.KeyD: 32, ebiten.KeyF: 33,
		ebiten.KeyG: 34, ebiten.KeyH: 35, ebiten.KeyJ: 36, ebiten.KeyK: 37,
		ebiten.KeyL: 38,
		ebiten.KeyShiftLeft: 42,
		ebiten.KeyZ:         44, ebiten.KeyX: 45, ebiten.KeyC: 46, ebiten.KeyV: 47,
		ebiten.KeyB: 48, ebiten.KeyN: 49, ebiten.KeyM: 50,
		ebiten.KeyShiftRight: 54, ebiten.KeyAltLeft: 56, ebiten.KeySpace: 57,
		ebiten.KeyF1: 59, ebiten.KeyF2: 60, ebiten.KeyF3: 61, ebiten.KeyF4: 62,
		ebiten.KeyF5: 63, ebiten.KeyF6: 64, ebiten.KeyF7: 65, ebiten.KeyF8: 66,
		ebiten.KeyF9: 67, ebiten.KeyF10: 68, ebiten.KeyF11: 87, ebiten.KeyF12: 88,
		ebiten.KeyControlRight: 97, ebiten.KeyAltRight: 100,
		ebiten.KeyArrowUp: 103, ebiten.KeyArrowLeft: 105,
		ebiten.KeyArrowRight: 106, ebiten.KeyArrowDown: 108,
		ebiten.KeyMetaLeft: 125, ebiten.KeyMetaRight: 126,
	}
	if code, ok := m[k]; ok {
		return code
	}
	return -1 // unmapped
}
