package types

import "time"

// Signal is a side effect produced by a transition. Transitions never perform
// side effects themselves; the game manager dispatches signals.
type Signal interface {
	isSignal()
}

type EffectType string

const (
	EffectCorrect             EffectType = "correct"
	EffectIncorrect           EffectType = "incorrect"
	EffectLevelUp             EffectType = "level-up"
	EffectGameOver            EffectType = "game-over"
	EffectShowMarker          EffectType = "show-marker"
	EffectCollaboratorFailure EffectType = "collaborator-failure"
)

// Effect is a discrete presentation event.
type Effect struct {
	Type EffectType `json:"type"`
	// Side is the chosen side for correct and incorrect
	Side Side `json:"side,omitempty"`
	// Level is the reached level for level-up
	Level int `json:"level,omitempty"`
	// Reason describes a collaborator failure
	Reason string `json:"reason,omitempty"`
}

type Cue string

const (
	CueCorrect         Cue = "correct"
	CueIncorrect       Cue = "incorrect"
	CueLevelUp         Cue = "level-up"
	CueLose            Cue = "lose"
	CueBackgroundStart Cue = "background-loop-start"
	CueBackgroundStop  Cue = "background-loop-stop"
)

// GameResult summarizes a finished game.
type GameResult struct {
	Generation     uint64
	Score          int
	Level          int
	FinalNumber    int
	RoundsPlayed   int
	CorrectChoices int
}

// EffectSignal asks the presentation collaborator to show an effect.
type EffectSignal struct {
	Effect Effect
}

// CueSignal asks the audio collaborator to play a cue.
type CueSignal struct {
	Cue Cue
}

// ScheduleSignal asks for Event to be fed back after Delay.
type ScheduleSignal struct {
	Delay time.Duration
	Event Event
}

// TickerSignal starts or stops the countdown ticker.
type TickerSignal struct {
	Running bool
}

// CancelScheduledSignal drops every pending scheduled event.
type CancelScheduledSignal struct{}

// ResultSignal reports a finished game.
type ResultSignal struct {
	Result GameResult
}

func (EffectSignal) isSignal()          {}
func (CueSignal) isSignal()             {}
func (ScheduleSignal) isSignal()        {}
func (TickerSignal) isSignal()          {}
func (CancelScheduledSignal) isSignal() {}
func (ResultSignal) isSignal()          {}
