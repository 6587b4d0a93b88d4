package game

import (
	"github.com/cbodonnell/swipemath/pkg/config"
	"github.com/cbodonnell/swipemath/pkg/game/types"
)

// Engine is the game state machine. Apply never mutates its input and never
// performs side effects; everything observable outside the state is returned
// as signals.
type Engine struct {
	config config.GameConfig
	rng    RandomSource
}

func NewEngine(cfg config.GameConfig, rng RandomSource) *Engine {
	if rng == nil {
		rng = DefaultRandomSource()
	}
	return &Engine{
		config: cfg,
		rng:    rng,
	}
}

// Config returns the tunables the engine was built with.
func (e *Engine) Config() config.GameConfig {
	return e.config
}

// Apply returns the state that follows event and the signals it produced.
func (e *Engine) Apply(state types.GameState, event types.Event) (types.GameState, []types.Signal) {
	switch ev := event.(type) {
	case types.StartEvent:
		if state.Phase != types.PhaseNotStarted {
			return state, nil
		}
		return e.start(state)
	case types.RestartEvent:
		return e.restart(state)
	case types.TickEvent:
		return e.tick(state)
	case types.AnchorChangedEvent:
		return e.anchorChanged(state, ev.Visible)
	case types.SideDetectedEvent:
		return e.submitChoice(state, ev.Side)
	case types.ChoiceSubmittedEvent:
		return e.submitChoice(state, ev.Side)
	case types.FeedbackElapsedEvent:
		return e.feedbackElapsed(state, ev)
	case types.MarkerHintEvent:
		return e.markerHint(state, ev)
	case types.CollaboratorFailedEvent:
		return e.collaboratorFailed(state, ev)
	default:
		// tracking samples and confirmations are handled by the side detector
		return state, nil
	}
}

// nextRound replaces the live round. The running number is left untouched.
func (e *Engine) nextRound(state *types.GameState) {
	round, next := GenerateRound(e.rng, e.config, state.CurrentNumber, state.RoundKind, state.DifficultyFactor)
	state.RoundSeq++
	round.Seq = state.RoundSeq
	state.Round = &round
	state.RoundKind = next
}

// playPhase is the phase a live round is shown in.
func playPhase(anchorVisible bool) types.Phase {
	if anchorVisible {
		return types.PhaseRoundActive
	}
	return types.PhaseAwaitingDetection
}

func (e *Engine) anchorChanged(state types.GameState, visible bool) (types.GameState, []types.Signal) {
	if state.AnchorVisible == visible {
		return state, nil
	}
	state.AnchorVisible = visible

	var signals []types.Signal
	switch state.Phase {
	case types.PhaseAwaitingDetection:
		if visible {
			state.Phase = types.PhaseRoundActive
		}
	case types.PhaseRoundActive:
		if !visible {
			state.Phase = types.PhaseAwaitingDetection
		}
	}
	if !visible && state.Phase.Active() {
		signals = append(signals, types.ScheduleSignal{
			Delay: e.config.MarkerHintDelay,
			Event: types.MarkerHintEvent{Generation: state.Generation},
		})
	}
	return state, signals
}

func (e *Engine) markerHint(state types.GameState, ev types.MarkerHintEvent) (types.GameState, []types.Signal) {
	if ev.Generation != state.Generation || !state.Phase.Active() || state.AnchorVisible {
		return state, nil
	}
	return state, []types.Signal{
		types.EffectSignal{Effect: types.Effect{Type: types.EffectShowMarker}},
	}
}

func (e *Engine) collaboratorFailed(state types.GameState, ev types.CollaboratorFailedEvent) (types.GameState, []types.Signal) {
	reason := ev.Reason
	if ev.Collaborator != "" {
		reason = ev.Collaborator + ": " + ev.Reason
	}
	return state, []types.Signal{
		types.EffectSignal{Effect: types.Effect{Type: types.EffectCollaboratorFailure, Reason: reason}},
	}
}
