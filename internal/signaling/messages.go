package signaling

import "encoding/json"

// Message types for signaling protocol.
const (
	TypeRegister                = "register"
	TypeRegistered              = "registered"
	TypeListBroadcasters        = "list-broadcasters"
	TypeBroadcasters            = "broadcasters"
	TypeBroadcastersUpdated     = "broadcasters-updated"
	TypeOffer                   = "offer"
	TypeAnswer                  = "answer"
	TypeICECandidate            = "ice-candidate"
	TypePing                    = "ping"
	TypePong                    = "pong"
	TypeError                   = "error"
	TypeBroadcasterDisconnected = "broadcaster-disconnected"
)

// ClientType distinguishes broadcaster from monitor.
const (
	ClientTypeBroadcaster = "broadcaster"
	ClientTypeMonitor     = "monitor"
)

// Message is the envelope for all signaling messages.
type Message struct {
	Type          string            `json:"type"`
	ID            string            `json:"id,omitempty"`
	ClientType    string            `json:"clientType,omitempty"`
	From          string            `json:"from,omitempty"`
	Target        string            `json:"target,omitempty"`
	Payload       json.RawMessage   `json:"payload,omitempty"`
	List          []BroadcasterInfo `json:"list,omitempty"`
	BroadcasterID string            `json:"broadcasterId,omitempty"`
	Msg           string            `json:"message,omitempty"`
	Timestamp     int64             `json:"timestamp,omitempty"`
}

// BroadcasterInfo describes a broadcaster in the broadcaster list.
type BroadcasterInfo struct {
	ID     string `json:"id"`
	Online bool   `json:"online"`
}
