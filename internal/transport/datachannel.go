package transport

import (
	"fmt"

	"github.com/pion/webrtc/v4"
)

// DataChannelTransport carries the event stream and resolved actions over
// WebRTC DataChannels.
type DataChannelTransport struct {
	eventsDC  *webrtc.DataChannel
	actionsDC *webrtc.DataChannel

	onEvent  func(data []byte)
	onAction func(name string)
}

// NewDataChannelTransport wraps two DataChannels (events + actions).
func NewDataChannelTransport(eventsDC, actionsDC *webrtc.DataChannel) *DataChannelTransport {
	t := &DataChannelTransport{
		eventsDC:  eventsDC,
		actionsDC: actionsDC,
	}

	if eventsDC != nil {
		eventsDC.OnMessage(func(msg webrtc.DataChannelMessage) {
			if t.onEvent != nil {
				t.onEvent(msg.Data)
			}
		})
	}

	if actionsDC != nil {
		actionsDC.OnMessage(func(msg webrtc.DataChannelMessage) {
			if t.onAction != nil {
				t.onAction(string(msg.Data))
			}
		})
	}

	return t
}

func (t *DataChannelTransport) SendEvent(data []byte) error {
	if t.eventsDC == nil {
		return fmt.Errorf("events data channel not set")
	}
	return t.eventsDC.Send(data)
}

func (t *DataChannelTransport) SendAction(name string) error {
	if t.actionsDC == nil {
		return fmt.Errorf("actions data channel not set")
	}
	return t.actionsDC.SendText(name)
}

func (t *DataChannelTransport) OnEvent(cb func(data []byte)) {
	t.onEvent = cb
}

func (t *DataChannelTransport) OnAction(cb func(name string)) {
	t.onAction = cb
}

// SetEventsChannel sets or replaces the events DataChannel (used when
// receiving negotiated channels).
func (t *DataChannelTransport) SetEventsChannel(dc *webrtc.DataChannel) {
	t.eventsDC = dc
	dc.OnMessage(func(msg webrtc.DataChannelMessage) {
		if t.onEvent != nil {
			t.onEvent(msg.Data)
		}
	})
}

// SetActionsChannel sets or replaces the actions DataChannel.
func (t *DataChannelTransport) SetActionsChannel(dc *webrtc.DataChannel) {
	t.actionsDC = dc
	dc.OnMessage(func(msg webrtc.DataChannelMessage) {
		if t.onAction != nil {
			t.onAction(string(msg.Data))
		}
	})
}
