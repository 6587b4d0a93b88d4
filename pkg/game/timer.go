package game

import (
	"github.com/cbodonnell/swipemath/pkg/game/types"
)

// start resets the state for a new game, generates the first round and
// starts the countdown. The anchor visibility is carried over since the
// tracking collaborator outlives a game.
func (e *Engine) start(state types.GameState) (types.GameState, []types.Signal) {
	next := types.NewGameState(e.config, state.Generation+1)
	next.AnchorVisible = state.AnchorVisible
	e.nextRound(&next)
	next.Phase = playPhase(next.AnchorVisible)

	signals := []types.Signal{
		types.TickerSignal{Running: true},
		types.CueSignal{Cue: types.CueBackgroundStart},
	}
	if !next.AnchorVisible {
		signals = append(signals, types.ScheduleSignal{
			Delay: e.config.MarkerHintDelay,
			Event: types.MarkerHintEvent{Generation: next.Generation},
		})
	}
	return next, signals
}

// restart abandons the current game from any phase. Everything scheduled for
// the old generation is dropped.
func (e *Engine) restart(state types.GameState) (types.GameState, []types.Signal) {
	signals := []types.Signal{types.CancelScheduledSignal{}}
	if state.Phase.Active() {
		signals = append(signals, types.TickerSignal{Running: false}, types.CueSignal{Cue: types.CueBackgroundStop})
	}
	next, startSignals := e.start(state)
	return next, append(signals, startSignals...)
}

func (e *Engine) tick(state types.GameState) (types.GameState, []types.Signal) {
	if !state.Phase.Active() {
		return state, nil
	}
	if state.TicksRemaining > 0 {
		state.TicksRemaining--
	}
	if state.TicksRemaining > 0 {
		return state, nil
	}
	return e.gameOver(state)
}

func (e *Engine) gameOver(state types.GameState) (types.GameState, []types.Signal) {
	state.Phase = types.PhaseGameOver
	state.PendingChoice = false
	state.TicksRemaining = 0

	return state, []types.Signal{
		types.TickerSignal{Running: false},
		types.CancelScheduledSignal{},
		types.EffectSignal{Effect: types.Effect{Type: types.EffectGameOver}},
		types.CueSignal{Cue: types.CueLose},
		types.CueSignal{Cue: types.CueBackgroundStop},
		types.ResultSignal{Result: types.GameResult{
			Generation:     state.Generation,
			Score:          state.CurrentScore,
			Level:          state.CurrentLevel,
			FinalNumber:    state.CurrentNumber,
			RoundsPlayed:   state.RoundsPlayed,
			CorrectChoices: state.CorrectChoices,
		}},
	}
}
