// Package feed renders the live notification stream on the monitor side.
package feed

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/minsuh/inputcast/internal/event"
)

const maxLines = 40

// Window is an Ebitengine window showing the most recent feed lines.
type Window struct {
	mu    sync.Mutex
	lines []string

	title   string
	screenW int
	screenH int
}

// NewWindow creates a feed window.
func NewWindow(title string, width, height int) *Window {
	return &Window{
		title:   title,
		screenW: width,
		screenH: height,
	}
}

// Append adds a line to the feed (called from the network goroutine).
func (w *Window) Append(line string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lines = append(w.lines, line)
	if len(w.lines) > maxLines {
		w.lines = w.lines[len(w.lines)-maxLines:]
	}
}

// Run starts the Ebitengine game loop. Must be called from the main
// goroutine (macOS requirement).
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.screenW, w.screenH)
	ebiten.SetWindowTitle(w.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(w)
}

// --- ebiten.Game interface ---

func (w *Window) Update() error { return nil }

func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	var text string
	for _, line := range w.lines {
		text += line + "\n"
	}
	w.mu.Unlock()

	ebitenutil.DebugPrint(screen, text)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Describe formats a notification as a feed line.
func Describe(e event.Event) string {
	switch ev := e.(type) {
	case event.RawMouseButton:
		return fmt.Sprintf("raw button %d %s mods=%s", ev.Button(), actionName(ev.Action()), modsName(ev.Mods()))
	case event.MouseButton:
		return fmt.Sprintf("button %d %s mods=%s", ev.Button(), actionName(ev.Action()), modsName(ev.Mods()))
	case event.MouseScroll:
		return fmt.Sprintf("scroll %+.1f at (%.0f, %.0f)", ev.Delta(), ev.CursorX(), ev.CursorY())
	case event.Key:
		return fmt.Sprintf("key %d scan %d %s mods=%s", ev.KeyCode(), ev.ScanCode(), actionName(ev.Action()), modsName(ev.Mods()))
	default:
		return fmt.Sprintf("unknown event %T", e)
	}
}

func actionName(action int) string {
	switch action {
	case event.ActionRelease:
		return "release"
	case event.ActionPress:
		return "press"
	case event.ActionRepeat:
		return "repeat"
	default:
		return fmt.Sprintf("action(%d)", action)
	}
}

func modsName(mods int) string {
	if mods <= 0 {
		return "none"
	}
	var s string
	add := func(name string) {
		if s != "" {
			s += "+"
		}
		s += name
	}
	if mods&event.ModShift != 0 {
		add("shift")
	}
	if mods&event.ModControl != 0 {
		add("ctrl")
	}
	if mods&event.ModAlt != 0 {
		add("alt")
	}
	if mods&event.ModSuper != 0 {
		add("super")
	}
	if s == "" {
		return "none"
	}
	return s
}
