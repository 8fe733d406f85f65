// Package peer manages the WebRTC connection between a broadcaster and the
// monitor watching its event stream.
package peer

import (
	"log"

	"github.com/pion/webrtc/v4"
)

// ICEServers used for connection establishment. STUN only: the notification
// stream is a few hundred bytes a second, so no TURN relay is configured by
// default.
var ICEServers = []webrtc.ICEServer{
	{URLs: []string{"stun:stun.l.google.com:19302", "stun:stun1.l.google.com:19302"}},
}

// newPeerConnection creates the PeerConnection shared by both roles.
func newPeerConnection() (*webrtc.PeerConnection, error) {
	pc, err := webrtc.NewPeerConnection(webrtc.Configuration{ICEServers: ICEServers})
	if err != nil {
		return nil, err
	}
	pc.OnConnectionStateChange(func(state webrtc.PeerConnectionState) {
		log.Printf("event stream link: %s", state)
	})
	return pc, nil
}
