package game

import (
	"math/rand/v2"
	"testing"

	"github.com/cbodonnell/swipemath/pkg/config"
	"github.com/cbodonnell/swipemath/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startedState returns a game that was started with the anchor in view.
func startedState(t *testing.T, e *Engine) types.GameState {
	t.Helper()
	state := types.NewGameState(e.Config(), 0)
	state, _ = e.Apply(state, types.AnchorChangedEvent{Visible: true})
	state, _ = e.Apply(state, types.StartEvent{})
	require.Equal(t, types.PhaseRoundActive, state.Phase)
	require.NotNil(t, state.Round)
	return state
}

func withRound(state types.GameState, left, right types.Operation) types.GameState {
	state.Round = &types.Round{
		Kind:   types.RoundKindAddVsMultiply,
		Number: state.CurrentNumber,
		Left:   left,
		Right:  right,
		Seq:    state.RoundSeq,
	}
	return state
}

func effectTypes(signals []types.Signal) []types.EffectType {
	var out []types.EffectType
	for _, s := range signals {
		if e, ok := s.(types.EffectSignal); ok {
			out = append(out, e.Effect.Type)
		}
	}
	return out
}

func cues(signals []types.Signal) []types.Cue {
	var out []types.Cue
	for _, s := range signals {
		if c, ok := s.(types.CueSignal); ok {
			out = append(out, c.Cue)
		}
	}
	return out
}

func scheduled(signals []types.Signal) []types.ScheduleSignal {
	var out []types.ScheduleSignal
	for _, s := range signals {
		if sc, ok := s.(types.ScheduleSignal); ok {
			out = append(out, sc)
		}
	}
	return out
}

func TestEngine_Start(t *testing.T) {
	cfg := config.DefaultGameConfig()
	e := NewEngine(cfg, NewSeededRandomSource(1))

	state, signals := e.Apply(types.NewGameState(cfg, 0), types.StartEvent{})

	assert.Equal(t, types.PhaseAwaitingDetection, state.Phase)
	assert.Equal(t, uint64(1), state.Generation)
	assert.Equal(t, uint64(1), state.RoundSeq)
	require.NotNil(t, state.Round)
	assert.Equal(t, types.RoundKindAddVsMultiply, state.Round.Kind)
	assert.Equal(t, types.RoundKindSubtractVsDivide, state.RoundKind)
	assert.Equal(t, cfg.InitialNumber, state.CurrentNumber)
	assert.Equal(t, cfg.InitialTicks, state.TicksRemaining)
	assert.Equal(t, 1, state.CurrentLevel)
	assert.False(t, state.PendingChoice)

	assert.Contains(t, signals, types.Signal(types.TickerSignal{Running: true}))
	assert.Equal(t, []types.Cue{types.CueBackgroundStart}, cues(signals))
	hints := scheduled(signals)
	require.Len(t, hints, 1)
	assert.Equal(t, cfg.MarkerHintDelay, hints[0].Delay)
	assert.Equal(t, types.MarkerHintEvent{Generation: 1}, hints[0].Event)

	again, signals := e.Apply(state, types.StartEvent{})
	assert.Equal(t, state, again)
	assert.Empty(t, signals)
}

func TestEngine_ScenarioA_TieCountsAsBest(t *testing.T) {
	cfg := config.DefaultGameConfig()
	// multiplier 2, zero perturbation, add on the left
	e := NewEngine(cfg, NewSequenceSource(0.0, 0.5, 0.0))
	state := startedState(t, e)

	require.Equal(t, types.Operation{Kind: types.OperationAdd, Operand: 10, Result: 20}, state.Round.Left)
	require.Equal(t, types.Operation{Kind: types.OperationMultiply, Operand: 2, Result: 20}, state.Round.Right)

	for _, side := range []types.Side{types.SideLeft, types.SideRight} {
		t.Run(side.String(), func(t *testing.T) {
			next, signals := e.Apply(state, types.ChoiceSubmittedEvent{Side: side})
			assert.Equal(t, 20, next.CurrentNumber)
			assert.Equal(t, cfg.PointsPerCorrectChoice, next.CurrentScore)
			assert.Equal(t, cfg.InitialTicks+cfg.CorrectChoiceTickBonus, next.TicksRemaining)
			assert.Equal(t, []types.EffectType{types.EffectCorrect}, effectTypes(signals))
			assert.Equal(t, []types.Cue{types.CueCorrect}, cues(signals))
		})
	}
}

func TestEngine_ScenarioB_WrongChoiceKeepsTime(t *testing.T) {
	cfg := config.DefaultGameConfig()
	e := NewEngine(cfg, NewSeededRandomSource(2))
	state := startedState(t, e)
	state.TicksRemaining = 25
	state = withRound(state,
		types.Operation{Kind: types.OperationAdd, Operand: 3, Result: 13},
		types.Operation{Kind: types.OperationMultiply, Operand: 2, Result: 20},
	)

	next, signals := e.Apply(state, types.SideDetectedEvent{Side: types.SideLeft})

	assert.Equal(t, 25, next.TicksRemaining)
	assert.Equal(t, 13, next.CurrentNumber)
	assert.Equal(t, 0, next.CurrentScore)
	assert.Equal(t, types.PhaseResolving, next.Phase)
	assert.True(t, next.PendingChoice)
	assert.Equal(t, 1, next.RoundsPlayed)
	assert.Equal(t, 0, next.CorrectChoices)
	assert.Equal(t, []types.EffectType{types.EffectIncorrect}, effectTypes(signals))
	assert.Equal(t, []types.Cue{types.CueIncorrect}, cues(signals))

	feedback := scheduled(signals)
	require.Len(t, feedback, 1)
	assert.Equal(t, cfg.FeedbackDelay, feedback[0].Delay)
	assert.Equal(t, types.FeedbackElapsedEvent{Generation: state.Generation, RoundSeq: state.RoundSeq}, feedback[0].Event)
}

func TestEngine_ScenarioC_LevelUp(t *testing.T) {
	cfg := config.DefaultGameConfig()
	e := NewEngine(cfg, NewSeededRandomSource(3))
	state := startedState(t, e)
	state.CurrentScore = 480
	state.TicksRemaining = 42
	state = withRound(state,
		types.Operation{Kind: types.OperationAdd, Operand: 20, Result: 30},
		types.Operation{Kind: types.OperationMultiply, Operand: 2, Result: 20},
	)

	next, signals := e.Apply(state, types.ChoiceSubmittedEvent{Side: types.SideLeft})

	assert.Equal(t, 580, next.CurrentScore)
	assert.Equal(t, 2, next.CurrentLevel)
	assert.Equal(t, cfg.InitialTicks, next.TicksRemaining)
	assert.InDelta(t, cfg.InitialDifficulty+cfg.DifficultyIncrement, next.DifficultyFactor, 1e-9)
	assert.Equal(t, 1000, next.NextLevelThreshold)
	assert.Equal(t, []types.EffectType{types.EffectCorrect, types.EffectLevelUp}, effectTypes(signals))
	assert.Equal(t, []types.Cue{types.CueCorrect, types.CueLevelUp}, cues(signals))
}

func TestEngine_LevelUpRepeatsWhileAboveThreshold(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.PointsPerCorrectChoice = 2000
	e := NewEngine(cfg, NewSeededRandomSource(4))
	state := startedState(t, e)
	state = withRound(state,
		types.Operation{Kind: types.OperationAdd, Operand: 20, Result: 30},
		types.Operation{Kind: types.OperationMultiply, Operand: 2, Result: 20},
	)

	next, signals := e.Apply(state, types.ChoiceSubmittedEvent{Side: types.SideLeft})

	// thresholds: 500, 1000, 1750, 2875
	assert.Equal(t, 4, next.CurrentLevel)
	assert.Equal(t, 2875, next.NextLevelThreshold)
	assert.InDelta(t, 1.1, next.DifficultyFactor, 1e-9)
	assert.Equal(t, []types.EffectType{types.EffectCorrect, types.EffectLevelUp, types.EffectLevelUp, types.EffectLevelUp}, effectTypes(signals))
}

func TestEngine_DifficultyIsClamped(t *testing.T) {
	cfg := config.DefaultGameConfig()
	e := NewEngine(cfg, NewSeededRandomSource(5))
	state := startedState(t, e)
	state.CurrentScore = 450
	state.DifficultyFactor = 1.45
	state = withRound(state,
		types.Operation{Kind: types.OperationAdd, Operand: 20, Result: 30},
		types.Operation{Kind: types.OperationMultiply, Operand: 2, Result: 20},
	)

	next, _ := e.Apply(state, types.ChoiceSubmittedEvent{Side: types.SideLeft})
	assert.Equal(t, cfg.MaxDifficulty, next.DifficultyFactor)
}

func TestEngine_TickBonusIsClamped(t *testing.T) {
	cfg := config.DefaultGameConfig()
	e := NewEngine(cfg, NewSeededRandomSource(6))
	state := startedState(t, e)
	state.TicksRemaining = cfg.MaxTicks - 10
	state = withRound(state,
		types.Operation{Kind: types.OperationAdd, Operand: 20, Result: 30},
		types.Operation{Kind: types.OperationMultiply, Operand: 2, Result: 20},
	)

	next, _ := e.Apply(state, types.ChoiceSubmittedEvent{Side: types.SideLeft})
	assert.Equal(t, cfg.MaxTicks, next.TicksRemaining)
}

func TestEngine_ScenarioD_GameOver(t *testing.T) {
	cfg := config.DefaultGameConfig()
	e := NewEngine(cfg, NewSeededRandomSource(7))
	state := startedState(t, e)
	state.TicksRemaining = 1
	state.CurrentScore = 300

	next, signals := e.Apply(state, types.TickEvent{})

	assert.Equal(t, types.PhaseGameOver, next.Phase)
	assert.Equal(t, 0, next.TicksRemaining)
	assert.Contains(t, signals, types.Signal(types.TickerSignal{Running: false}))
	assert.Contains(t, signals, types.Signal(types.CancelScheduledSignal{}))
	assert.Equal(t, []types.EffectType{types.EffectGameOver}, effectTypes(signals))
	assert.Equal(t, []types.Cue{types.CueLose, types.CueBackgroundStop}, cues(signals))
	assert.Contains(t, signals, types.Signal(types.ResultSignal{Result: types.GameResult{
		Generation:  state.Generation,
		Score:       300,
		Level:       1,
		FinalNumber: state.CurrentNumber,
	}}))

	for _, event := range []types.Event{
		types.ChoiceSubmittedEvent{Side: types.SideLeft},
		types.SideDetectedEvent{Side: types.SideRight},
		types.TickEvent{},
		types.StartEvent{},
		types.FeedbackElapsedEvent{Generation: next.Generation, RoundSeq: next.RoundSeq},
	} {
		after, signals := e.Apply(next, event)
		assert.Equal(t, next, after, "%T", event)
		assert.Empty(t, signals, "%T", event)
	}
}

func TestEngine_TickCountsDownWithoutAnchor(t *testing.T) {
	cfg := config.DefaultGameConfig()
	e := NewEngine(cfg, NewSeededRandomSource(8))
	state := startedState(t, e)

	state, _ = e.Apply(state, types.AnchorChangedEvent{Visible: false})
	require.Equal(t, types.PhaseAwaitingDetection, state.Phase)

	next, signals := e.Apply(state, types.TickEvent{})
	assert.Equal(t, state.TicksRemaining-1, next.TicksRemaining)
	assert.Empty(t, signals)

	notStarted := types.NewGameState(cfg, 0)
	after, _ := e.Apply(notStarted, types.TickEvent{})
	assert.Equal(t, notStarted, after)
}

func TestEngine_DoubleSubmitIsNoop(t *testing.T) {
	cfg := config.DefaultGameConfig()
	e := NewEngine(cfg, NewSeededRandomSource(9))
	state := startedState(t, e)

	once, _ := e.Apply(state, types.ChoiceSubmittedEvent{Side: types.SideLeft})
	twice, signals := e.Apply(once, types.ChoiceSubmittedEvent{Side: types.SideRight})

	assert.Equal(t, once, twice)
	assert.Empty(t, signals)
}

func TestEngine_ChoiceIgnoredWithoutActiveRound(t *testing.T) {
	cfg := config.DefaultGameConfig()
	e := NewEngine(cfg, NewSeededRandomSource(10))

	notStarted := types.NewGameState(cfg, 0)
	after, signals := e.Apply(notStarted, types.ChoiceSubmittedEvent{Side: types.SideLeft})
	assert.Equal(t, notStarted, after)
	assert.Empty(t, signals)

	awaiting, _ := e.Apply(notStarted, types.StartEvent{})
	require.Equal(t, types.PhaseAwaitingDetection, awaiting.Phase)
	after, signals = e.Apply(awaiting, types.ChoiceSubmittedEvent{Side: types.SideLeft})
	assert.Equal(t, awaiting, after)
	assert.Empty(t, signals)

	active := startedState(t, e)
	after, signals = e.Apply(active, types.ChoiceSubmittedEvent{Side: types.SideNone})
	assert.Equal(t, active, after)
	assert.Empty(t, signals)
}

func TestEngine_FeedbackElapsed(t *testing.T) {
	cfg := config.DefaultGameConfig()
	e := NewEngine(cfg, NewSeededRandomSource(11))
	state := startedState(t, e)
	resolving, _ := e.Apply(state, types.ChoiceSubmittedEvent{Side: types.SideLeft})
	elapsed := types.FeedbackElapsedEvent{Generation: resolving.Generation, RoundSeq: resolving.RoundSeq}

	t.Run("next round", func(t *testing.T) {
		next, signals := e.Apply(resolving, elapsed)
		assert.Empty(t, signals)
		assert.False(t, next.PendingChoice)
		assert.Equal(t, types.PhaseRoundActive, next.Phase)
		assert.Equal(t, resolving.RoundSeq+1, next.RoundSeq)
		require.NotNil(t, next.Round)
		assert.Equal(t, next.RoundSeq, next.Round.Seq)
		assert.Equal(t, resolving.CurrentNumber, next.Round.Number)
		assert.Equal(t, resolving.CurrentNumber, next.CurrentNumber)
		if !next.Round.Fallback {
			assert.Equal(t, types.RoundKindSubtractVsDivide, next.Round.Kind)
		}
	})

	t.Run("anchor lost while resolving", func(t *testing.T) {
		hidden, _ := e.Apply(resolving, types.AnchorChangedEvent{Visible: false})
		require.Equal(t, types.PhaseResolving, hidden.Phase)

		next, _ := e.Apply(hidden, elapsed)
		assert.Equal(t, types.PhaseAwaitingDetection, next.Phase)
		assert.False(t, next.PendingChoice)
	})

	t.Run("stale round", func(t *testing.T) {
		stale := types.FeedbackElapsedEvent{Generation: resolving.Generation, RoundSeq: resolving.RoundSeq - 1}
		next, _ := e.Apply(resolving, stale)
		assert.Equal(t, resolving, next)
	})

	t.Run("stale generation", func(t *testing.T) {
		restarted, signals := e.Apply(resolving, types.RestartEvent{})
		require.Equal(t, types.Signal(types.CancelScheduledSignal{}), signals[0])
		require.Equal(t, resolving.Generation+1, restarted.Generation)

		next, _ := e.Apply(restarted, elapsed)
		assert.Equal(t, restarted, next)
	})
}

func TestEngine_Restart(t *testing.T) {
	cfg := config.DefaultGameConfig()
	e := NewEngine(cfg, NewSeededRandomSource(12))
	state := startedState(t, e)
	state.CurrentScore = 900
	state.CurrentLevel = 3
	state.TicksRemaining = 0
	state.Phase = types.PhaseGameOver

	next, signals := e.Apply(state, types.RestartEvent{})

	assert.Equal(t, state.Generation+1, next.Generation)
	assert.Equal(t, types.PhaseRoundActive, next.Phase)
	assert.Equal(t, 0, next.CurrentScore)
	assert.Equal(t, 1, next.CurrentLevel)
	assert.Equal(t, cfg.InitialTicks, next.TicksRemaining)
	assert.Equal(t, cfg.InitialNumber, next.CurrentNumber)
	assert.Equal(t, uint64(1), next.RoundSeq)
	assert.True(t, next.AnchorVisible)
	assert.Contains(t, signals, types.Signal(types.TickerSignal{Running: true}))
	assert.Equal(t, []types.Cue{types.CueBackgroundStart}, cues(signals))
}

func TestEngine_MarkerHint(t *testing.T) {
	cfg := config.DefaultGameConfig()
	e := NewEngine(cfg, NewSeededRandomSource(13))
	state := startedState(t, e)

	hidden, signals := e.Apply(state, types.AnchorChangedEvent{Visible: false})
	assert.Equal(t, types.PhaseAwaitingDetection, hidden.Phase)
	hints := scheduled(signals)
	require.Len(t, hints, 1)
	hint := hints[0].Event.(types.MarkerHintEvent)

	_, signals = e.Apply(hidden, hint)
	assert.Equal(t, []types.EffectType{types.EffectShowMarker}, effectTypes(signals))

	shown, _ := e.Apply(hidden, types.AnchorChangedEvent{Visible: true})
	assert.Equal(t, types.PhaseRoundActive, shown.Phase)
	_, signals = e.Apply(shown, hint)
	assert.Empty(t, signals)

	same, signals := e.Apply(shown, types.AnchorChangedEvent{Visible: true})
	assert.Equal(t, shown, same)
	assert.Empty(t, signals)
}

func TestEngine_CollaboratorFailed(t *testing.T) {
	cfg := config.DefaultGameConfig()
	e := NewEngine(cfg, NewSeededRandomSource(14))
	state := types.NewGameState(cfg, 0)

	next, signals := e.Apply(state, types.CollaboratorFailedEvent{Collaborator: "camera", Reason: "permission denied"})

	assert.Equal(t, state, next)
	require.Len(t, signals, 1)
	assert.Equal(t, types.EffectSignal{Effect: types.Effect{
		Type:   types.EffectCollaboratorFailure,
		Reason: "camera: permission denied",
	}}, signals[0])
}

func TestEngine_RandomSessionInvariants(t *testing.T) {
	cfg := config.DefaultGameConfig()
	e := NewEngine(cfg, NewSeededRandomSource(15))
	picker := rand.New(rand.NewPCG(15, 15))

	state := types.NewGameState(cfg, 0)
	state, _ = e.Apply(state, types.StartEvent{})
	var pending []types.Event

	level, alpha, generation := state.CurrentLevel, state.DifficultyFactor, state.Generation
	for i := 0; i < 20000; i++ {
		var event types.Event
		switch n := picker.IntN(100); {
		case n < 60:
			event = types.TickEvent{}
		case n < 75:
			event = types.ChoiceSubmittedEvent{Side: types.Side(1 + picker.IntN(2))}
		case n < 85 && len(pending) > 0:
			event, pending = pending[0], pending[1:]
		case n < 95:
			event = types.AnchorChangedEvent{Visible: picker.IntN(4) > 0}
		case n < 97:
			event = types.MarkerHintEvent{Generation: state.Generation}
		default:
			event = types.RestartEvent{}
		}

		var signals []types.Signal
		state, signals = e.Apply(state, event)
		for _, s := range scheduled(signals) {
			pending = append(pending, s.Event)
		}

		require.GreaterOrEqual(t, state.TicksRemaining, 0)
		require.LessOrEqual(t, state.TicksRemaining, cfg.MaxTicks)
		require.LessOrEqual(t, state.DifficultyFactor, cfg.MaxDifficulty)
		require.GreaterOrEqual(t, state.CurrentNumber, 0)
		require.LessOrEqual(t, state.CurrentNumber, cfg.MaxNumber)
		if state.Phase == types.PhaseRoundActive {
			require.NotNil(t, state.Round)
			require.False(t, state.PendingChoice)
		}
		if state.Generation == generation {
			require.GreaterOrEqual(t, state.CurrentLevel, level)
			require.GreaterOrEqual(t, state.DifficultyFactor, alpha)
		}
		level, alpha, generation = state.CurrentLevel, state.DifficultyFactor, state.Generation
	}
}

func TestEngine_BestPlayStaysWithinMaxNumber(t *testing.T) {
	tests := []struct {
		name      string
		seed      uint64
		maxNumber int
	}{
		{name: "default bound", seed: 1, maxNumber: config.DefaultGameConfig().MaxNumber},
		{name: "default bound other seed", seed: 77, maxNumber: config.DefaultGameConfig().MaxNumber},
		{name: "small bound", seed: 5, maxNumber: 5000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultGameConfig()
			cfg.MaxNumber = tt.maxNumber
			require.NoError(t, cfg.Validate())
			e := NewEngine(cfg, NewSeededRandomSource(tt.seed))
			state := startedState(t, e)

			capped := 0
			for i := 0; i < 1000; i++ {
				require.Equal(t, types.PhaseRoundActive, state.Phase)
				round := state.Round
				require.LessOrEqual(t, round.Left.Result, cfg.MaxNumber)
				require.LessOrEqual(t, round.Right.Result, cfg.MaxNumber)
				if round.Capped {
					capped++
				}

				side := types.SideLeft
				if round.Right.Result > round.Left.Result {
					side = types.SideRight
				}
				state, _ = e.Apply(state, types.ChoiceSubmittedEvent{Side: side})
				require.GreaterOrEqual(t, state.CurrentNumber, 0)
				require.LessOrEqual(t, state.CurrentNumber, cfg.MaxNumber)

				state, _ = e.Apply(state, types.FeedbackElapsedEvent{Generation: state.Generation, RoundSeq: state.RoundSeq})
			}
			assert.Positive(t, capped)
			assert.Equal(t, 1000, state.CorrectChoices)
		})
	}
}
