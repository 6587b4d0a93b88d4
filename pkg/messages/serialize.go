package messages

//go:generate flatc --go -o ../../flatbuffers ../../flatbuffers/message.fbs ../../flatbuffers/snapshot.fbs

import (
	"bytes"
	"fmt"
	"io"

	messagefb "github.com/cbodonnell/swipemath/flatbuffers/message"
	snapshotfb "github.com/cbodonnell/swipemath/flatbuffers/snapshot"
	"github.com/cbodonnell/swipemath/pkg/game/types"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
)

// SerializeMessage encodes m as a FlatBuffers envelope compressed with zstd.
func SerializeMessage(m *Message) ([]byte, error) {
	b, err := SerializeMessageFlatbuffer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize message: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress message: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

func DeserializeMessage(data []byte) (*Message, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()
	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed message: %v", err)
	}

	message, err := DeserializeMessageFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize message: %v", err)
	}

	return message, nil
}

func SerializeMessageFlatbuffer(m *Message) ([]byte, error) {
	builder := flatbuffers.NewBuilder(0)

	payload := builder.CreateByteVector(m.Payload)

	messagefb.MessageStart(builder)
	messagefb.MessageAddClientId(builder, m.ClientID)
	messagefb.MessageAddType(builder, byte(m.Type))
	messagefb.MessageAddPayload(builder, payload)
	messageOffset := messagefb.MessageEnd(builder)
	builder.Finish(messageOffset)
	b := builder.FinishedBytes()

	return b, nil
}

func DeserializeMessageFlatbuffer(b []byte) (m *Message, err error) {
	// a truncated buffer makes the generated accessors index out of range
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed message: %v", r)
		}
	}()
	if len(b) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("message too short: %d bytes", len(b))
	}

	messageFlatbuffer := messagefb.GetRootAsMessage(b, 0)
	m = &Message{
		ClientID: messageFlatbuffer.ClientId(),
		Type:     MessageType(messageFlatbuffer.Type()),
		Payload:  messageFlatbuffer.PayloadBytes(),
	}

	return m, nil
}

// SerializeSnapshot encodes the presentation view of a game as FlatBuffers.
func SerializeSnapshot(s types.Snapshot) ([]byte, error) {
	builder := flatbuffers.NewBuilder(128)
	snapshot := SerializeSnapshotFlatbuffer(builder, s)
	builder.Finish(snapshot)
	return builder.FinishedBytes(), nil
}

func DeserializeSnapshot(b []byte) (s types.Snapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed snapshot: %v", r)
		}
	}()
	if len(b) < flatbuffers.SizeUOffsetT {
		return types.Snapshot{}, fmt.Errorf("snapshot too short: %d bytes", len(b))
	}
	return DeserializeSnapshotFlatbuffer(snapshotfb.GetRootAsSnapshot(b, 0)), nil
}

func SerializeSnapshotFlatbuffer(builder *flatbuffers.Builder, s types.Snapshot) flatbuffers.UOffsetT {
	// nested tables are built before the table that references them
	var left, right flatbuffers.UOffsetT
	if s.Left != nil {
		left = serializeOperationFlatbuffer(builder, *s.Left)
	}
	if s.Right != nil {
		right = serializeOperationFlatbuffer(builder, *s.Right)
	}

	snapshotfb.SnapshotStart(builder)
	snapshotfb.SnapshotAddGeneration(builder, s.Generation)
	snapshotfb.SnapshotAddPhase(builder, byte(s.Phase))
	snapshotfb.SnapshotAddCurrentNumber(builder, int64(s.CurrentNumber))
	snapshotfb.SnapshotAddCurrentScore(builder, int32(s.CurrentScore))
	snapshotfb.SnapshotAddCurrentLevel(builder, int32(s.CurrentLevel))
	snapshotfb.SnapshotAddTicksRemaining(builder, int32(s.TicksRemaining))
	snapshotfb.SnapshotAddTimeFraction(builder, s.TimeFraction)
	snapshotfb.SnapshotAddRoundKind(builder, byte(s.RoundKind))
	snapshotfb.SnapshotAddRoundSeq(builder, s.RoundSeq)
	if s.Left != nil {
		snapshotfb.SnapshotAddLeft(builder, left)
	}
	if s.Right != nil {
		snapshotfb.SnapshotAddRight(builder, right)
	}
	snapshotfb.SnapshotAddPendingChoice(builder, s.PendingChoice)
	snapshotfb.SnapshotAddAnchorVisible(builder, s.AnchorVisible)
	return snapshotfb.SnapshotEnd(builder)
}

func DeserializeSnapshotFlatbuffer(fb *snapshotfb.Snapshot) types.Snapshot {
	s := types.Snapshot{
		Generation:     fb.Generation(),
		Phase:          types.Phase(fb.Phase()),
		CurrentNumber:  int(fb.CurrentNumber()),
		CurrentScore:   int(fb.CurrentScore()),
		CurrentLevel:   int(fb.CurrentLevel()),
		TicksRemaining: int(fb.TicksRemaining()),
		TimeFraction:   fb.TimeFraction(),
		RoundKind:      types.RoundKind(fb.RoundKind()),
		RoundSeq:       fb.RoundSeq(),
		PendingChoice:  fb.PendingChoice(),
		AnchorVisible:  fb.AnchorVisible(),
	}
	if left := fb.Left(nil); left != nil {
		op := deserializeOperationFlatbuffer(left)
		s.Left = &op
	}
	if right := fb.Right(nil); right != nil {
		op := deserializeOperationFlatbuffer(right)
		s.Right = &op
	}
	return s
}

func serializeOperationFlatbuffer(builder *flatbuffers.Builder, op types.Operation) flatbuffers.UOffsetT {
	snapshotfb.OperationStart(builder)
	snapshotfb.OperationAddKind(builder, byte(op.Kind))
	snapshotfb.OperationAddOperand(builder, int64(op.Operand))
	snapshotfb.OperationAddResult(builder, int64(op.Result))
	return snapshotfb.OperationEnd(builder)
}

func deserializeOperationFlatbuffer(fb *snapshotfb.Operation) types.Operation {
	return types.Operation{
		Kind:    types.OperationKind(fb.Kind()),
		Operand: int(fb.Operand()),
		Result:  int(fb.Result()),
	}
}
