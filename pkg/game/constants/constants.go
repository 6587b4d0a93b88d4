package constants

import "time"

const (
	// InitialNumber is the running number at the start of a game
	InitialNumber int = 10
	// MaxNumber is the largest result a round may offer
	MaxNumber int = 1_000_000_000

	// InitialTicks is the countdown at game start and after every level up (200 ticks = 20s)
	InitialTicks int = 200
	// MaxTicks is the most time a player can bank (30s)
	MaxTicks int = 300
	// TickInterval is the duration of one tick
	TickInterval time.Duration = 100 * time.Millisecond
	// CorrectChoiceTickBonus is the time added by a correct choice (+3s)
	CorrectChoiceTickBonus int = 30

	// PointsPerCorrectChoice is multiplied by the current level
	PointsPerCorrectChoice int = 100
	// LevelUpScoreBase is the score needed for level 2
	LevelUpScoreBase int = 500
	// LevelUpMultiplier grows the gap between level thresholds
	LevelUpMultiplier float64 = 1.5

	// InitialDifficulty is alpha at level 1
	InitialDifficulty float64 = 0.8
	// DifficultyIncrement is added to alpha on every level up
	DifficultyIncrement float64 = 0.1
	// MaxDifficulty caps alpha
	MaxDifficulty float64 = 1.5

	// MultiplierMin and MultiplierMax bound Z in add vs multiply rounds
	MultiplierMin int = 2
	MultiplierMax int = 3
	// DivisorMin and DivisorMax bound Z in subtract vs divide rounds
	DivisorMin int = 2
	DivisorMax int = 4

	// FeedbackDelay is how long a resolved choice is shown before the next round
	FeedbackDelay time.Duration = 800 * time.Millisecond
	// ChoiceConfirmationDelay is how long a side must stay stable before it counts
	ChoiceConfirmationDelay time.Duration = 500 * time.Millisecond
	// MarkerHintDelay is how long the anchor can be lost before the player is prompted
	MarkerHintDelay time.Duration = 3 * time.Second

	// SideZoneWidth is the fraction of the screen width on each edge that selects a side.
	// The remaining center band is neutral.
	SideZoneWidth float64 = 0.2
	// MirroredCamera swaps left and right because the camera feed is shown mirrored
	MirroredCamera bool = true
)
