package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/swipemath/pkg/game/types"
	"github.com/cbodonnell/swipemath/pkg/log"
	"github.com/cbodonnell/swipemath/pkg/queue"
	"github.com/cbodonnell/swipemath/pkg/tracking"
	"github.com/cbodonnell/swipemath/pkg/workers"
)

// Presenter renders the game. Calls must not block for long; a failing call
// is logged and never changes the game.
type Presenter interface {
	Present(ctx context.Context, snapshot types.Snapshot) error
	Effect(ctx context.Context, effect types.Effect) error
}

// AudioPlayer plays fire-and-forget cues.
type AudioPlayer interface {
	Play(ctx context.Context, cue types.Cue) error
}

// GameManager owns one game session. Start runs the session loop; it is the
// only goroutine that reads or writes the session state. Everything else
// talks to the session by enqueueing events.
type GameManager struct {
	sessionID      string
	userID         string
	engine         *Engine
	detector       *tracking.Detector
	eventQueue     queue.Queue
	presenter      Presenter
	audio          AudioPlayer
	saveResultChan chan<- workers.SaveResultRequest
	loopInterval   time.Duration
	logger         *log.Logger

	gameState types.GameState
	ticker    *time.Ticker

	timersLock sync.Mutex
	timers     map[*time.Timer]struct{}
	afterFunc  func(d time.Duration, f func()) *time.Timer
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	SessionID      string
	UserID         string
	Engine         *Engine
	EventQueue     queue.Queue
	Presenter      Presenter
	AudioPlayer    AudioPlayer
	SaveResultChan chan<- workers.SaveResultRequest
	// LoopInterval is how often queued events are drained
	LoopInterval time.Duration
	Logger       *log.Logger
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	cfg := opts.Engine.Config()
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &GameManager{
		sessionID:      opts.SessionID,
		userID:         opts.UserID,
		engine:         opts.Engine,
		detector:       tracking.NewDetector(cfg.SideZoneWidth, cfg.MirroredCamera),
		eventQueue:     opts.EventQueue,
		presenter:      opts.Presenter,
		audio:          opts.AudioPlayer,
		saveResultChan: opts.SaveResultChan,
		loopInterval:   opts.LoopInterval,
		logger:         logger.With("session", opts.SessionID),
		gameState:      types.NewGameState(cfg, 0),
		timers:         make(map[*time.Timer]struct{}),
		afterFunc:      time.AfterFunc,
	}
}

// SessionID identifies the session the manager runs.
func (gm *GameManager) SessionID() string {
	return gm.sessionID
}

// Enqueue hands an event to the session loop.
func (gm *GameManager) Enqueue(event types.Event) error {
	if err := gm.eventQueue.Enqueue(event); err != nil {
		return fmt.Errorf("failed to enqueue %T: %v", event, err)
	}
	return nil
}

// Start runs the session loop until ctx is done.
func (gm *GameManager) Start(ctx context.Context) error {
	loop := time.NewTicker(gm.loopInterval)
	defer loop.Stop()
	defer gm.Stop()

	gm.present(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-loop.C:
			gm.processEvents(ctx)
		case <-gm.tickerC():
			gm.handleEvent(ctx, types.TickEvent{})
		}
	}
}

// Stop stops the countdown and drops every scheduled event.
func (gm *GameManager) Stop() {
	gm.setTicker(false)
	gm.cancelScheduled()
}

// State returns a copy of the session state. It must only be called from the
// session loop or once the loop has exited.
func (gm *GameManager) State() types.GameState {
	return gm.gameState
}

func (gm *GameManager) tickerC() <-chan time.Time {
	if gm.ticker == nil {
		return nil
	}
	return gm.ticker.C
}

// processEvents handles all pending events in the queue in arrival order.
func (gm *GameManager) processEvents(ctx context.Context) {
	pendingEvents, err := gm.eventQueue.ReadAllMessages()
	if err != nil {
		gm.logger.Error("Failed to read session events: %v", err)
		return
	}
	for _, item := range pendingEvents {
		event, ok := item.(types.Event)
		if !ok {
			gm.logger.Error("Unhandled session event type: %T", item)
			continue
		}
		gm.handleEvent(ctx, event)
	}
}

func (gm *GameManager) handleEvent(ctx context.Context, event types.Event) {
	switch ev := event.(type) {
	case types.TrackingSampleEvent:
		gm.handleTrackingSample(ctx, ev)
	case types.SideConfirmedEvent:
		if ev.Generation != gm.gameState.Generation {
			return
		}
		if !gm.detector.Confirm(tracking.Candidate{Side: ev.Side, Token: ev.Token}) {
			return
		}
		gm.apply(ctx, types.SideDetectedEvent{Side: ev.Side})
	case types.StartEvent, types.RestartEvent:
		generation := gm.gameState.Generation
		gm.apply(ctx, event)
		if gm.gameState.Generation != generation {
			gm.detector.Reset()
		}
	default:
		gm.apply(ctx, event)
	}
}

func (gm *GameManager) handleTrackingSample(ctx context.Context, sample types.TrackingSampleEvent) {
	if sample.Visible != gm.gameState.AnchorVisible {
		gm.apply(ctx, types.AnchorChangedEvent{Visible: sample.Visible})
	}
	candidate, ok := gm.detector.Observe(sample.Visible, sample.X, gm.gameState.AcceptingChoices())
	if !ok {
		return
	}
	gm.logger.Debug("Side %s detected, confirming", candidate.Side)
	gm.schedule(gm.engine.Config().ChoiceConfirmationDelay, types.SideConfirmedEvent{
		Generation: gm.gameState.Generation,
		Side:       candidate.Side,
		Token:      candidate.Token,
	})
}

// apply runs the transition for event and dispatches the signals it produced.
func (gm *GameManager) apply(ctx context.Context, event types.Event) {
	prev := gm.gameState
	next, signals := gm.engine.Apply(prev, event)
	gm.gameState = next

	if prev.Phase != next.Phase {
		gm.logger.Debug("Phase %s -> %s on %T", prev.Phase, next.Phase, event)
	}
	for _, signal := range signals {
		gm.dispatch(ctx, signal)
	}
	if prev != next {
		gm.present(ctx)
	}
}

func (gm *GameManager) dispatch(ctx context.Context, signal types.Signal) {
	switch s := signal.(type) {
	case types.EffectSignal:
		if err := gm.presenter.Effect(ctx, s.Effect); err != nil {
			gm.logger.Warn("Failed to present %s effect: %v", s.Effect.Type, err)
		}
	case types.CueSignal:
		if err := gm.audio.Play(ctx, s.Cue); err != nil {
			gm.logger.Warn("Failed to play %s cue: %v", s.Cue, err)
		}
	case types.ScheduleSignal:
		gm.schedule(s.Delay, s.Event)
	case types.TickerSignal:
		gm.setTicker(s.Running)
	case types.CancelScheduledSignal:
		gm.cancelScheduled()
	case types.ResultSignal:
		gm.saveResult(s.Result)
	default:
		gm.logger.Error("Unhandled signal type: %T", signal)
	}
}

func (gm *GameManager) present(ctx context.Context) {
	snapshot := gm.gameState.Snapshot(gm.engine.Config().InitialTicks)
	if err := gm.presenter.Present(ctx, snapshot); err != nil {
		gm.logger.Warn("Failed to present game state: %v", err)
	}
}

func (gm *GameManager) setTicker(running bool) {
	if gm.ticker != nil {
		gm.ticker.Stop()
		gm.ticker = nil
	}
	if running {
		gm.ticker = time.NewTicker(gm.engine.Config().TickInterval)
	}
}

// schedule enqueues event after delay. The event is checked against the
// state when it is handled, so a timer that fires late is harmless.
func (gm *GameManager) schedule(delay time.Duration, event types.Event) {
	gm.timersLock.Lock()
	defer gm.timersLock.Unlock()

	var timer *time.Timer
	timer = gm.afterFunc(delay, func() {
		gm.timersLock.Lock()
		delete(gm.timers, timer)
		gm.timersLock.Unlock()

		if err := gm.eventQueue.Enqueue(event); err != nil {
			gm.logger.Error("Failed to enqueue scheduled %T: %v", event, err)
		}
	})
	gm.timers[timer] = struct{}{}
}

func (gm *GameManager) cancelScheduled() {
	gm.timersLock.Lock()
	defer gm.timersLock.Unlock()

	for timer := range gm.timers {
		timer.Stop()
	}
	clear(gm.timers)
}

func (gm *GameManager) saveResult(result types.GameResult) {
	gm.logger.Info("Game over with score %d at level %d", result.Score, result.Level)
	if gm.saveResultChan == nil {
		return
	}
	request := workers.SaveResultRequest{
		SessionID:  gm.sessionID,
		UserID:     gm.userID,
		Result:     result,
		FinishedAt: time.Now(),
	}
	select {
	case gm.saveResultChan <- request:
	default:
		gm.logger.Warn("Result queue is full, dropping result for session %s", gm.sessionID)
	}
}
