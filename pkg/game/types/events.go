package types

// Event is an input to the game state machine.
type Event interface {
	isEvent()
}

// StartEvent starts a game that has not started yet.
type StartEvent struct{}

// RestartEvent discards the current game and starts a new one.
type RestartEvent struct{}

// TickEvent is one fixed-rate countdown step.
type TickEvent struct{}

// AnchorChangedEvent reports that the tracked anchor appeared or disappeared.
type AnchorChangedEvent struct {
	Visible bool
}

// SideDetectedEvent is a side confirmed by the side detector.
type SideDetectedEvent struct {
	Side Side
}

// ChoiceSubmittedEvent is a side picked through direct input.
type ChoiceSubmittedEvent struct {
	Side Side
}

// FeedbackElapsedEvent resumes play after the feedback for a choice was shown.
type FeedbackElapsedEvent struct {
	Generation uint64
	RoundSeq   uint64
}

// MarkerHintEvent fires some time after the anchor was lost.
type MarkerHintEvent struct {
	Generation uint64
}

// CollaboratorFailedEvent reports that the camera, asset loading or audio
// failed on the client.
type CollaboratorFailedEvent struct {
	Collaborator string
	Reason       string
}

// TrackingSampleEvent is one render frame of tracking data.
// X is the projected anchor position in normalized device coordinates (-1 to 1).
type TrackingSampleEvent struct {
	Visible bool
	X       float64
}

// SideConfirmedEvent fires when a candidate side has been held for the
// confirmation delay. Token identifies the candidate.
type SideConfirmedEvent struct {
	Generation uint64
	Side       Side
	Token      uint64
}

func (StartEvent) isEvent()              {}
func (RestartEvent) isEvent()            {}
func (TickEvent) isEvent()               {}
func (AnchorChangedEvent) isEvent()      {}
func (SideDetectedEvent) isEvent()       {}
func (ChoiceSubmittedEvent) isEvent()    {}
func (FeedbackElapsedEvent) isEvent()    {}
func (MarkerHintEvent) isEvent()         {}
func (CollaboratorFailedEvent) isEvent() {}
func (TrackingSampleEvent) isEvent()     {}
func (SideConfirmedEvent) isEvent()      {}
