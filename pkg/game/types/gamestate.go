package types

import (
	"math"

	"github.com/cbodonnell/swipemath/pkg/config"
)

type GameState struct {
	// CurrentNumber is the running value operations are applied to
	CurrentNumber int
	CurrentScore  int
	CurrentLevel  int
	// NextLevelThreshold is the score at which the next level is reached
	NextLevelThreshold int
	// TicksRemaining is the countdown, bounded by the configured maximum
	TicksRemaining int
	// DifficultyFactor (alpha) controls how far apart the two results may drift
	DifficultyFactor float64
	// RoundKind is the kind the next generated round should have
	RoundKind RoundKind
	// Round is the live pair of operations, nil before the first round
	Round *Round
	// PendingChoice blocks input while feedback for a choice is shown
	PendingChoice bool
	Phase         Phase
	// AnchorVisible mirrors the tracking collaborator's visibility flag
	AnchorVisible bool
	// Generation changes on every start and restart so stale scheduled events can be told apart
	Generation uint64
	// RoundSeq counts generated rounds within a generation
	RoundSeq uint64

	RoundsPlayed   int
	CorrectChoices int
}

// NewGameState returns a state reset to the configured defaults.
// generation identifies the game the state belongs to.
func NewGameState(cfg config.GameConfig, generation uint64) GameState {
	return GameState{
		CurrentNumber:      cfg.InitialNumber,
		CurrentScore:       0,
		CurrentLevel:       1,
		NextLevelThreshold: cfg.LevelUpScoreBase,
		TicksRemaining:     cfg.InitialTicks,
		DifficultyFactor:   cfg.InitialDifficulty,
		RoundKind:          RoundKindAddVsMultiply,
		Phase:              PhaseNotStarted,
		Generation:         generation,
	}
}

// AcceptingChoices reports whether a choice submitted now would be resolved.
func (g *GameState) AcceptingChoices() bool {
	return g.Phase == PhaseRoundActive && !g.PendingChoice && g.Round != nil
}

// Snapshot is the plain data handed to the presentation collaborator.
type Snapshot struct {
	Generation     uint64     `json:"generation"`
	Phase          Phase      `json:"phase"`
	CurrentNumber  int        `json:"currentNumber"`
	CurrentScore   int        `json:"currentScore"`
	CurrentLevel   int        `json:"currentLevel"`
	TicksRemaining int        `json:"ticksRemaining"`
	TimeFraction   float64    `json:"timeFraction"`
	RoundKind      RoundKind  `json:"roundKind"`
	RoundSeq       uint64     `json:"roundSeq"`
	Left           *Operation `json:"left,omitempty"`
	Right          *Operation `json:"right,omitempty"`
	PendingChoice  bool       `json:"pendingChoice"`
	AnchorVisible  bool       `json:"anchorVisible"`
}

// Snapshot builds the presentation view of the state.
// The time fraction is relative to the initial countdown and capped at 1.
func (g *GameState) Snapshot(initialTicks int) Snapshot {
	s := Snapshot{
		Generation:     g.Generation,
		Phase:          g.Phase,
		CurrentNumber:  g.CurrentNumber,
		CurrentScore:   g.CurrentScore,
		CurrentLevel:   g.CurrentLevel,
		TicksRemaining: g.TicksRemaining,
		RoundKind:      g.RoundKind,
		PendingChoice:  g.PendingChoice,
		AnchorVisible:  g.AnchorVisible,
	}
	if initialTicks > 0 {
		s.TimeFraction = math.Min(1, math.Max(0, float64(g.TicksRemaining)/float64(initialTicks)))
	}
	if g.Round != nil {
		left, right := g.Round.Left, g.Round.Right
		s.Left = &left
		s.Right = &right
		s.RoundKind = g.Round.Kind
		s.RoundSeq = g.Round.Seq
	}
	return s
}
