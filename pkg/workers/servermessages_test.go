package workers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/cbodonnell/swipemath/pkg/game/types"
	"github.com/cbodonnell/swipemath/pkg/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	written chan *messages.Message
}

func (w *recordingWriter) WriteMessage(_ context.Context, msg *messages.Message) error {
	w.written <- msg
	return nil
}

func TestServerMessageWorker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverMessageChan := make(chan ServerMessage, 1)
	writer := &recordingWriter{written: make(chan *messages.Message, 1)}
	worker := NewServerMessageWorker(NewServerMessageWorkerOptions{
		ClientID:          5,
		Writer:            writer,
		ServerMessageChan: serverMessageChan,
	})
	go worker.Start(ctx)

	serverMessageChan <- ServerMessage{
		Type:    messages.MessageTypeServerEffect,
		Message: &messages.ServerEffect{Type: string(types.EffectCorrect), Side: types.SideLeft.String()},
	}

	select {
	case msg := <-writer.written:
		assert.Equal(t, uint32(5), msg.ClientID)
		assert.Equal(t, messages.MessageTypeServerEffect, msg.Type)
		effect := &messages.ServerEffect{}
		require.NoError(t, json.Unmarshal(msg.Payload, effect))
		assert.Equal(t, "correct", effect.Type)
		assert.Equal(t, "left", effect.Side)
	case <-time.After(time.Second):
		t.Fatal("message was not written")
	}
}

func TestEncodeServerMessage_GameUpdate(t *testing.T) {
	snapshot := types.Snapshot{
		Generation:     1,
		Phase:          types.PhaseRoundActive,
		CurrentNumber:  10,
		CurrentLevel:   1,
		TicksRemaining: 200,
		TimeFraction:   1,
		Left:           &types.Operation{Kind: types.OperationAdd, Operand: 10, Result: 20},
		Right:          &types.Operation{Kind: types.OperationMultiply, Operand: 2, Result: 20},
	}

	payload, err := EncodeServerMessage(ServerMessage{Type: messages.MessageTypeServerGameUpdate, Message: snapshot})
	require.NoError(t, err)

	got, err := messages.DeserializeSnapshot(payload)
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)

	_, err = EncodeServerMessage(ServerMessage{Type: messages.MessageTypeServerGameUpdate, Message: "nope"})
	assert.Error(t, err)
}
