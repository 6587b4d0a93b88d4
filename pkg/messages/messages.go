package messages

import (
	"fmt"

	"github.com/cbodonnell/swipemath/pkg/config"
)

const (
	// MessageBufferSize represents the maximum size of a message
	MessageBufferSize = 4096
)

// MessageType identifies the payload carried by a Message.
type MessageType byte

const (
	MessageTypeClientPing MessageType = iota + 1
	MessageTypeServerPong
	MessageTypeClientLogin
	MessageTypeServerLoginSuccess
	MessageTypeServerLoginFailure
	MessageTypeClientStart
	MessageTypeClientRestart
	MessageTypeClientTrackingSample
	MessageTypeClientChoice
	MessageTypeClientCollaboratorFailure
	MessageTypeServerGameUpdate
	MessageTypeServerEffect
	MessageTypeServerAudioCue
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeClientPing:
		return "ClientPing"
	case MessageTypeServerPong:
		return "ServerPong"
	case MessageTypeClientLogin:
		return "ClientLogin"
	case MessageTypeServerLoginSuccess:
		return "ServerLoginSuccess"
	case MessageTypeServerLoginFailure:
		return "ServerLoginFailure"
	case MessageTypeClientStart:
		return "ClientStart"
	case MessageTypeClientRestart:
		return "ClientRestart"
	case MessageTypeClientTrackingSample:
		return "ClientTrackingSample"
	case MessageTypeClientChoice:
		return "ClientChoice"
	case MessageTypeClientCollaboratorFailure:
		return "ClientCollaboratorFailure"
	case MessageTypeServerGameUpdate:
		return "ServerGameUpdate"
	case MessageTypeServerEffect:
		return "ServerEffect"
	case MessageTypeServerAudioCue:
		return "ServerAudioCue"
	default:
		return fmt.Sprintf("MessageType(%d)", byte(t))
	}
}

// Message represents a generic message for serialization/deserialization
type Message struct {
	ClientID uint32
	Type     MessageType
	Payload  []byte
}

// ClientLogin authenticates a connection. Token is a Firebase ID token, or
// empty for an anonymous session when anonymous play is allowed.
type ClientLogin struct {
	Token string `json:"token"`
}

type ServerLoginSuccess struct {
	ClientID  uint32            `json:"clientID"`
	SessionID string            `json:"sessionID"`
	UserID    string            `json:"userID"`
	Config    config.GameConfig `json:"config"`
}

type ServerLoginFailure struct {
	Reason string `json:"reason"`
}

// ClientTrackingSample is one render frame of tracking data. X is the
// projected anchor position in normalized device coordinates.
type ClientTrackingSample struct {
	Visible bool    `json:"visible"`
	X       float64 `json:"x"`
}

// ClientChoice is a side picked through direct input ("left" or "right").
type ClientChoice struct {
	Side string `json:"side"`
}

type ClientCollaboratorFailure struct {
	Collaborator string `json:"collaborator"`
	Reason       string `json:"reason"`
}

type ServerEffect struct {
	Type   string `json:"type"`
	Side   string `json:"side,omitempty"`
	Level  int    `json:"level,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type ServerAudioCue struct {
	Cue string `json:"cue"`
}
