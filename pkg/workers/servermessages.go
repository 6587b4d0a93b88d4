package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cbodonnell/swipemath/pkg/game/types"
	"github.com/cbodonnell/swipemath/pkg/log"
	"github.com/cbodonnell/swipemath/pkg/messages"
)

const (
	// ServerMessageChannelSize is the number of messages buffered per client
	ServerMessageChannelSize = 64
)

// MessageWriter delivers an encoded message to one client.
type MessageWriter interface {
	WriteMessage(ctx context.Context, msg *messages.Message) error
}

// ServerMessageWorker writes the messages of one client. The session loop
// never waits on the network; it only hands messages to this worker.
type ServerMessageWorker struct {
	clientID          uint32
	writer            MessageWriter
	serverMessageChan <-chan ServerMessage
}

type ServerMessage struct {
	Type    messages.MessageType
	Message interface{}
}

type NewServerMessageWorkerOptions struct {
	ClientID          uint32
	Writer            MessageWriter
	ServerMessageChan <-chan ServerMessage
}

func NewServerMessageWorker(opts NewServerMessageWorkerOptions) *ServerMessageWorker {
	return &ServerMessageWorker{
		clientID:          opts.ClientID,
		writer:            opts.Writer,
		serverMessageChan: opts.ServerMessageChan,
	}
}

func (w *ServerMessageWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-w.serverMessageChan:
			if err := w.handleServerMessage(ctx, msg); err != nil {
				log.Error("Failed to handle %s message for client %d: %v", msg.Type, w.clientID, err)
			}
		}
	}
}

func (w *ServerMessageWorker) handleServerMessage(ctx context.Context, msg ServerMessage) error {
	payload, err := EncodeServerMessage(msg)
	if err != nil {
		return err
	}

	return w.writer.WriteMessage(ctx, &messages.Message{
		ClientID: w.clientID,
		Type:     msg.Type,
		Payload:  payload,
	})
}

// EncodeServerMessage encodes the payload of msg. Game updates are sent as
// FlatBuffers, everything else as JSON.
func EncodeServerMessage(msg ServerMessage) ([]byte, error) {
	switch msg.Type {
	case messages.MessageTypeServerGameUpdate:
		snapshot, ok := msg.Message.(types.Snapshot)
		if !ok {
			return nil, fmt.Errorf("failed to cast server game update message: %T", msg.Message)
		}
		payload, err := messages.SerializeSnapshot(snapshot)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize snapshot: %v", err)
		}
		return payload, nil
	case messages.MessageTypeServerPong:
		return nil, nil
	default:
		if msg.Message == nil {
			return nil, nil
		}
		payload, err := json.Marshal(msg.Message)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s message: %v", msg.Type, err)
		}
		return payload, nil
	}
}
