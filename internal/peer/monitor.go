package peer

import (
	"encoding/json"
	"log"

	"github.com/pion/webrtc/v4"

	"github.com/minsuh/inputcast/internal/signaling"
	"github.com/minsuh/inputcast/internal/transport"
)

// Monitor manages the monitoring side of the WebRTC connection.
type Monitor struct {
	pc            *webrtc.PeerConnection
	sig           *signaling.Client
	transport     *transport.DataChannelTransport
	broadcasterID string
}

// NewMonitor creates a Monitor peer manager.
func NewMonitor(sig *signaling.Client, broadcasterID string) (*Monitor, error) {
	pc, err := newPeerConnection()
	if err != nil {
		return nil, err
	}

	m := &Monitor{
		pc:            pc,
		sig:           sig,
		transport:     transport.NewDataChannelTransport(nil, nil),
		broadcasterID: broadcasterID,
	}

	// Accept data channels from the broadcaster.
	pc.OnDataChannel(func(dc *webrtc.DataChannel) {
		log.Printf("data channel received: %s", dc.Label())
		switch dc.Label() {
		case "events":
			dc.OnOpen(func() {
				log.Println("events data channel open")
			})
			m.transport.SetEventsChannel(dc)
		case "actions":
			dc.OnOpen(func() {
				log.Println("actions data channel open")
			})
			m.transport.SetActionsChannel(dc)
		}
	})

	// ICE candidate handling.
	pc.OnICECandidate(func(c *webrtc.ICECandidate) {
		if c == nil {
			return
		}
		data, err := json.Marshal(c.ToJSON())
		if err != nil {
			log.Printf("marshal ICE candidate: %v", err)
			return
		}
		_ = sig.SendICECandidate(broadcasterID, data)
	})

	return m, nil
}

// Transport returns the DataChannelTransport.
func (m *Monitor) Transport() *transport.DataChannelTransport {
	return m.transport
}

// Connect initiates the WebRTC connection by creating and sending an offer.
func (m *Monitor) Connect() error {
	offer, err := m.pc.CreateOffer(nil)
	if err != nil {
		return err
	}

	if err := m.pc.SetLocalDescription(offer); err != nil {
		return err
	}

	offerJSON, err := json.Marshal(offer)
	if err != nil {
		return err
	}

	return m.sig.SendOffer(m.broadcasterID, offerJSON)
}

// HandleAnswer processes an incoming SDP answer.
func (m *Monitor) HandleAnswer(payload json.RawMessage) error {
	var answer webrtc.SessionDescription
	if err := json.Unmarshal(payload, &answer); err != nil {
		return err
	}
	return m.pc.SetRemoteDescription(answer)
}

// HandleICECandidate adds a remote ICE candidate.
func (m *Monitor) HandleICECandidate(payload json.RawMessage) error {
	var candidate webrtc.ICECandidateInit
	if err := json.Unmarshal(payload, &candidate); err != nil {
		return err
	}
	return m.pc.AddICECandidate(candidate)
}

// Close shuts down the peer connection.
func (m *Monitor) Close() {
	if m.pc != nil {
		m.pc.Close()
	}
}
