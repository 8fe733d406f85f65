// Package wire serializes input notifications for the events data channel.
package wire

import (
	"encoding/json"
	"fmt"

	"github.com/minsuh/inputcast/internal/event"
)

// Type identifies the notification variant on the wire.
type Type string

const (
	TypeRawMouseButton Type = "raw_mouse_button"
	TypeMouseButton    Type = "mouse_button"
	TypeMouseScroll    Type = "mouse_scroll"
	TypeKey            Type = "key"
)

// Envelope is the wire format for input notifications sent over the data
// channel. Only the fields of the variant named by Type are meaningful.
type Envelope struct {
	Type     Type    `json:"type"`
	Button   int     `json:"button,omitempty"`
	Action   int     `json:"action,omitempty"`
	Mods     int     `json:"mods,omitempty"`
	KeyCode  int     `json:"keyCode,omitempty"`
	ScanCode int     `json:"scanCode,omitempty"`
	Delta    float64 `json:"delta,omitempty"`
	CursorX  float64 `json:"x,omitempty"`
	CursorY  float64 `json:"y,omitempty"`
	Left     bool    `json:"left,omitempty"`
	Middle   bool    `json:"middle,omitempty"`
	Right    bool    `json:"right,omitempty"`
}

// Encode serializes e for the data channel.
func Encode(e event.Event) ([]byte, error) {
	var env Envelope
	switch ev := e.(type) {
	case event.RawMouseButton:
		env = Envelope{Type: TypeRawMouseButton, Button: ev.Button(), Action: ev.Action(), Mods: ev.Mods()}
	case event.MouseButton:
		env = Envelope{Type: TypeMouseButton, Button: ev.Button(), Action: ev.Action(), Mods: ev.Mods()}
	case event.MouseScroll:
		env = Envelope{
			Type:    TypeMouseScroll,
			Delta:   ev.Delta(),
			CursorX: ev.CursorX(),
			CursorY: ev.CursorY(),
			Left:    ev.LeftDown(),
			Middle:  ev.MiddleDown(),
			Right:   ev.RightDown(),
		}
	case event.Key:
		env = Envelope{Type: TypeKey, KeyCode: ev.KeyCode(), ScanCode: ev.ScanCode(), Action: ev.Action(), Mods: ev.Mods()}
	default:
		return nil, fmt.Errorf("encode: unknown event %T", e)
	}
	return json.Marshal(env)
}

// Decode parses data from the data channel back into a notification.
func Decode(data []byte) (event.Event, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}

	switch env.Type {
	case TypeRawMouseButton:
		return event.NewRawMouseButton(env.Button, env.Action, env.Mods), nil
	case TypeMouseButton:
		return event.NewMouseButton(env.Button, env.Action, env.Mods), nil
	case TypeMouseScroll:
		return event.NewMouseScroll(env.Delta, env.Left, env.Middle, env.Right, env.CursorX, env.CursorY), nil
	case TypeKey:
		return event.NewKey(env.KeyCode, env.ScanCode, env.Action, env.Mods), nil
	default:
		return nil, fmt.Errorf("decode event: unknown type %q", env.Type)
	}
}
