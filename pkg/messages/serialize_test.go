package messages

import (
	"testing"

	"github.com/cbodonnell/swipemath/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  *Message
	}{
		{
			name: "tracking sample",
			msg: &Message{
				ClientID: 7,
				Type:     MessageTypeClientTrackingSample,
				Payload:  []byte(`{"visible":true,"x":-0.75}`),
			},
		},
		{
			name: "empty payload",
			msg: &Message{
				ClientID: 1,
				Type:     MessageTypeClientStart,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := SerializeMessage(tt.msg)
			require.NoError(t, err)

			got, err := DeserializeMessage(b)
			require.NoError(t, err)
			assert.Equal(t, tt.msg.ClientID, got.ClientID)
			assert.Equal(t, tt.msg.Type, got.Type)
			assert.Equal(t, string(tt.msg.Payload), string(got.Payload))
		})
	}
}

func TestDeserializeMessage_Garbage(t *testing.T) {
	_, err := DeserializeMessage([]byte("not zstd"))
	assert.Error(t, err)

	_, err = DeserializeMessageFlatbuffer([]byte{1})
	assert.Error(t, err)
}

func TestSerializeDeserializeSnapshot(t *testing.T) {
	tests := []struct {
		name     string
		snapshot types.Snapshot
	}{
		{
			name: "active round",
			snapshot: types.Snapshot{
				Generation:     3,
				Phase:          types.PhaseRoundActive,
				CurrentNumber:  12,
				CurrentScore:   700,
				CurrentLevel:   2,
				TicksRemaining: 150,
				TimeFraction:   0.75,
				RoundKind:      types.RoundKindSubtractVsDivide,
				RoundSeq:       9,
				Left:           &types.Operation{Kind: types.OperationDivide, Operand: 3, Result: 4},
				Right:          &types.Operation{Kind: types.OperationSubtract, Operand: 8, Result: 4},
				AnchorVisible:  true,
			},
		},
		{
			name: "not started",
			snapshot: types.Snapshot{
				Phase:          types.PhaseNotStarted,
				CurrentNumber:  10,
				CurrentLevel:   1,
				TicksRemaining: 200,
				TimeFraction:   1,
			},
		},
		{
			name: "numbers past the 32 bit range",
			snapshot: types.Snapshot{
				Generation:    2,
				Phase:         types.PhaseRoundActive,
				CurrentNumber: 3_000_000_000,
				CurrentLevel:  12,
				Left:          &types.Operation{Kind: types.OperationMultiply, Operand: 3, Result: 9_000_000_000},
				Right:         &types.Operation{Kind: types.OperationAdd, Operand: 5_000_000_000, Result: 8_000_000_000},
			},
		},
		{
			name: "resolving with a zero operand result",
			snapshot: types.Snapshot{
				Generation:    1,
				Phase:         types.PhaseResolving,
				CurrentNumber: 0,
				CurrentLevel:  1,
				Left:          &types.Operation{Kind: types.OperationAdd, Operand: 1, Result: 1},
				Right:         &types.Operation{Kind: types.OperationMultiply, Operand: 2, Result: 0},
				PendingChoice: true,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := SerializeSnapshot(tt.snapshot)
			require.NoError(t, err)

			got, err := DeserializeSnapshot(b)
			require.NoError(t, err)
			assert.Equal(t, tt.snapshot, got)
		})
	}
}
