package game

import (
	"math"

	"github.com/cbodonnell/swipemath/pkg/game/types"
)

// submitChoice resolves a side pick for the live round. Picks made outside an
// active round or while feedback is pending are ignored.
func (e *Engine) submitChoice(state types.GameState, side types.Side) (types.GameState, []types.Signal) {
	if !state.AcceptingChoices() {
		return state, nil
	}
	chosen, ok := state.Round.Operation(side)
	if !ok {
		return state, nil
	}
	other, _ := state.Round.Operation(side.Opposite())

	state.PendingChoice = true
	state.Phase = types.PhaseResolving
	state.RoundsPlayed++

	// the higher result wins in both round kinds, ties count for the player
	best := chosen.Result >= other.Result
	state.CurrentNumber = chosen.Result

	var signals []types.Signal
	if best {
		state.TicksRemaining = min(state.TicksRemaining+e.config.CorrectChoiceTickBonus, e.config.MaxTicks)
		state.CurrentScore += e.config.PointsPerCorrectChoice * state.CurrentLevel
		state.CorrectChoices++
		signals = append(signals,
			types.EffectSignal{Effect: types.Effect{Type: types.EffectCorrect, Side: side}},
			types.CueSignal{Cue: types.CueCorrect},
		)
	} else {
		signals = append(signals,
			types.EffectSignal{Effect: types.Effect{Type: types.EffectIncorrect, Side: side}},
			types.CueSignal{Cue: types.CueIncorrect},
		)
	}

	for state.CurrentScore >= state.NextLevelThreshold {
		e.levelUp(&state)
		signals = append(signals,
			types.EffectSignal{Effect: types.Effect{Type: types.EffectLevelUp, Level: state.CurrentLevel}},
			types.CueSignal{Cue: types.CueLevelUp},
		)
	}

	signals = append(signals, types.ScheduleSignal{
		Delay: e.config.FeedbackDelay,
		Event: types.FeedbackElapsedEvent{Generation: state.Generation, RoundSeq: state.RoundSeq},
	})
	return state, signals
}

func (e *Engine) levelUp(state *types.GameState) {
	state.CurrentLevel++
	state.DifficultyFactor = math.Min(state.DifficultyFactor+e.config.DifficultyIncrement, e.config.MaxDifficulty)
	state.TicksRemaining = e.config.InitialTicks
	step := int(math.Floor(float64(e.config.LevelUpScoreBase) * math.Pow(e.config.LevelUpMultiplier, float64(state.CurrentLevel-2))))
	state.NextLevelThreshold += max(step, 1)
}

// feedbackElapsed moves on to the next round once the feedback for the
// resolved choice has been shown.
func (e *Engine) feedbackElapsed(state types.GameState, ev types.FeedbackElapsedEvent) (types.GameState, []types.Signal) {
	if ev.Generation != state.Generation || ev.RoundSeq != state.RoundSeq || state.Phase != types.PhaseResolving {
		return state, nil
	}
	state.PendingChoice = false
	e.nextRound(&state)
	state.Phase = playPhase(state.AnchorVisible)
	return state, nil
}
