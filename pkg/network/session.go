package network

import (
	"context"
	"errors"

	"github.com/cbodonnell/swipemath/pkg/game"
	"github.com/cbodonnell/swipemath/pkg/game/types"
	"github.com/cbodonnell/swipemath/pkg/messages"
	"github.com/cbodonnell/swipemath/pkg/workers"
)

// ErrClientBacklog is returned when a client's outgoing buffer is full and a
// message was dropped.
var ErrClientBacklog = errors.New("client message backlog full")

var (
	_ game.Presenter   = &Session{}
	_ game.AudioPlayer = &Session{}
)

// Session ties a client to the game it plays. It presents the game by
// handing messages to the client's writer, never waiting on the network.
type Session struct {
	Client  *Client
	Manager *game.GameManager

	serverMessageChan chan workers.ServerMessage
	worker            *workers.ServerMessageWorker
}

func newSession(client *Client) *Session {
	serverMessageChan := make(chan workers.ServerMessage, workers.ServerMessageChannelSize)
	return &Session{
		Client:            client,
		serverMessageChan: serverMessageChan,
		worker: workers.NewServerMessageWorker(workers.NewServerMessageWorkerOptions{
			ClientID:          client.ID,
			Writer:            client,
			ServerMessageChan: serverMessageChan,
		}),
	}
}

func (s *Session) Present(ctx context.Context, snapshot types.Snapshot) error {
	return s.send(ctx, workers.ServerMessage{
		Type:    messages.MessageTypeServerGameUpdate,
		Message: snapshot,
	})
}

func (s *Session) Effect(ctx context.Context, effect types.Effect) error {
	serverEffect := messages.ServerEffect{
		Type:   string(effect.Type),
		Level:  effect.Level,
		Reason: effect.Reason,
	}
	if effect.Side != types.SideNone {
		serverEffect.Side = effect.Side.String()
	}
	return s.send(ctx, workers.ServerMessage{
		Type:    messages.MessageTypeServerEffect,
		Message: serverEffect,
	})
}

func (s *Session) Play(ctx context.Context, cue types.Cue) error {
	return s.send(ctx, workers.ServerMessage{
		Type:    messages.MessageTypeServerAudioCue,
		Message: messages.ServerAudioCue{Cue: string(cue)},
	})
}

func (s *Session) send(ctx context.Context, msg workers.ServerMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case s.serverMessageChan <- msg:
		return nil
	default:
		return ErrClientBacklog
	}
}
