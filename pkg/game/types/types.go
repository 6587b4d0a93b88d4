package types

import "fmt"

// Side is a player selection.
type Side uint8

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideNone:
		return "none"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return fmt.Sprintf("side(%d)", uint8(s))
	}
}

// ParseSide parses "left" or "right".
func ParseSide(s string) (Side, error) {
	switch s {
	case "left":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	default:
		return SideNone, fmt.Errorf("unknown side: %q", s)
	}
}

// Opposite returns the other side. SideNone has no opposite.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// RoundKind selects which pair of operations a round offers.
type RoundKind uint8

const (
	// RoundKindAddVsMultiply offers addition against multiplication (time-adding round)
	RoundKindAddVsMultiply RoundKind = iota
	// RoundKindSubtractVsDivide offers subtraction against division (time-subtracting round)
	RoundKindSubtractVsDivide
)

func (k RoundKind) String() string {
	switch k {
	case RoundKindAddVsMultiply:
		return "add-vs-multiply"
	case RoundKindSubtractVsDivide:
		return "subtract-vs-divide"
	default:
		return fmt.Sprintf("round-kind(%d)", uint8(k))
	}
}

// Next returns the kind that follows k.
func (k RoundKind) Next() RoundKind {
	if k == RoundKindAddVsMultiply {
		return RoundKindSubtractVsDivide
	}
	return RoundKindAddVsMultiply
}

// Phase is the lifecycle state of a game.
type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhaseAwaitingDetection
	PhaseRoundActive
	PhaseResolving
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseAwaitingDetection:
		return "awaiting-detection"
	case PhaseRoundActive:
		return "round-active"
	case PhaseResolving:
		return "resolving"
	case PhaseGameOver:
		return "game-over"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Active reports whether the countdown runs in this phase.
func (p Phase) Active() bool {
	return p == PhaseAwaitingDetection || p == PhaseRoundActive || p == PhaseResolving
}

// OperationKind is the arithmetic applied by an Operation.
type OperationKind uint8

const (
	OperationAdd OperationKind = iota
	OperationSubtract
	OperationMultiply
	OperationDivide
)

func (k OperationKind) String() string {
	switch k {
	case OperationAdd:
		return "add"
	case OperationSubtract:
		return "subtract"
	case OperationMultiply:
		return "multiply"
	case OperationDivide:
		return "divide"
	default:
		return fmt.Sprintf("operation(%d)", uint8(k))
	}
}

// Symbol is the sign shown on the card.
func (k OperationKind) Symbol() string {
	switch k {
	case OperationAdd:
		return "+"
	case OperationSubtract:
		return "−"
	case OperationMultiply:
		return "×"
	case OperationDivide:
		return "÷"
	default:
		return "?"
	}
}

// Operation is one of the two cards of a round.
// Result is the operation applied to the number the round was generated for.
type Operation struct {
	Kind    OperationKind `json:"kind"`
	Operand int           `json:"operand"`
	Result  int           `json:"result"`
}

func (o Operation) String() string {
	return fmt.Sprintf("%s %d", o.Kind.Symbol(), o.Operand)
}

// Round is the live pair of operations.
type Round struct {
	// Kind is the kind that was actually generated
	Kind RoundKind
	// Number is the value both operations apply to
	Number int
	Left   Operation
	Right  Operation
	// Fallback is set when a subtract vs divide round could not be built
	// and an add vs multiply round was generated instead
	Fallback bool
	// Capped is set when an add vs multiply round would have passed the
	// configured maximum and a shrinking round was generated instead
	Capped bool
	// Seq identifies the round within a game
	Seq uint64
}

// Operation returns the operation on the given side.
func (r *Round) Operation(side Side) (Operation, bool) {
	switch side {
	case SideLeft:
		return r.Left, true
	case SideRight:
		return r.Right, true
	default:
		return Operation{}, false
	}
}
