package peer

import (
	"encoding/json"
	"log"

	"github.com/pion/webrtc/v4"

	"github.com/minsuh/inputcast/internal/signaling"
	"github.com/minsuh/inputcast/internal/transport"
)

// Broadcaster manages the broadcasting side of the WebRTC connection.
type Broadcaster struct {
	pc        *webrtc.PeerConnection
	sig       *signaling.Client
	transport *transport.DataChannelTransport
	peerID    string // the monitor we're connected to
}

// NewBroadcaster creates a Broadcaster peer manager.
func NewBroadcaster(sig *signaling.Client) (*Broadcaster, error) {
	pc, err := newPeerConnection()
	if err != nil {
		return nil, err
	}

	b := &Broadcaster{
		pc:  pc,
		sig: sig,
	}

	// Create the channels so they exist before we set local description.
	// The event stream must arrive in dispatch order, so both channels are
	// ordered and reliable.
	ordered := true
	eventsDC, err := pc.CreateDataChannel("events", &webrtc.DataChannelInit{
		Ordered: &ordered,
	})
	if err != nil {
		pc.Close()
		return nil, err
	}

	actionsDC, err := pc.CreateDataChannel("actions", &webrtc.DataChannelInit{
		Ordered: &ordered,
	})
	if err != nil {
		pc.Close()
		return nil, err
	}

	b.transport = transport.NewDataChannelTransport(eventsDC, actionsDC)

	// ICE candidate handling.
	pc.OnICECandidate(func(c *webrtc.ICECandidate) {
		if c == nil || b.peerID == "" {
			return
		}
		data, err := json.Marshal(c.ToJSON())
		if err != nil {
			log.Printf("marshal ICE candidate: %v", err)
			return
		}
		_ = sig.SendICECandidate(b.peerID, data)
	})

	return b, nil
}

// Transport returns the DataChannelTransport for streaming events and
// actions.
func (b *Broadcaster) Transport() *transport.DataChannelTransport {
	return b.transport
}

// HandleOffer processes an incoming offer from a monitor.
func (b *Broadcaster) HandleOffer(from string, payload json.RawMessage) error {
	b.peerID = from

	var offer webrtc.SessionDescription
	if err := json.Unmarshal(payload, &offer); err != nil {
		return err
	}

	if err := b.pc.SetRemoteDescription(offer); err != nil {
		return err
	}

	answer, err := b.pc.CreateAnswer(nil)
	if err != nil {
		return err
	}

	if err := b.pc.SetLocalDescription(answer); err != nil {
		return err
	}

	answerJSON, err := json.Marshal(answer)
	if err != nil {
		return err
	}

	return b.sig.SendAnswer(from, answerJSON)
}

// HandleICECandidate adds a remote ICE candidate.
func (b *Broadcaster) HandleICECandidate(payload json.RawMessage) error {
	var candidate webrtc.ICECandidateInit
	if err := json.Unmarshal(payload, &candidate); err != nil {
		return err
	}
	return b.pc.AddICECandidate(candidate)
}

// Close shuts down the peer connection.
func (b *Broadcaster) Close() {
	if b.pc != nil {
		b.pc.Close()
	}
}
