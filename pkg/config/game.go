package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/cbodonnell/swipemath/pkg/game/constants"
	"gopkg.in/yaml.v3"
)

// GameConfig holds the tunables consumed when a game starts.
// It is read once at process start and never changes during a session.
type GameConfig struct {
	InitialNumber int `yaml:"initial_number" json:"initialNumber"`
	MaxNumber     int `yaml:"max_number" json:"maxNumber"`

	InitialTicks           int           `yaml:"initial_ticks" json:"initialTicks"`
	MaxTicks               int           `yaml:"max_ticks" json:"maxTicks"`
	TickInterval           time.Duration `yaml:"tick_interval" json:"tickInterval"`
	CorrectChoiceTickBonus int           `yaml:"correct_choice_tick_bonus" json:"correctChoiceTickBonus"`

	PointsPerCorrectChoice int     `yaml:"points_per_correct_choice" json:"pointsPerCorrectChoice"`
	LevelUpScoreBase       int     `yaml:"level_up_score_base" json:"levelUpScoreBase"`
	LevelUpMultiplier      float64 `yaml:"level_up_multiplier" json:"levelUpMultiplier"`

	InitialDifficulty   float64 `yaml:"initial_difficulty" json:"initialDifficulty"`
	DifficultyIncrement float64 `yaml:"difficulty_increment" json:"difficultyIncrement"`
	MaxDifficulty       float64 `yaml:"max_difficulty" json:"maxDifficulty"`

	MultiplierMin int `yaml:"multiplier_min" json:"multiplierMin"`
	MultiplierMax int `yaml:"multiplier_max" json:"multiplierMax"`
	DivisorMin    int `yaml:"divisor_min" json:"divisorMin"`
	DivisorMax    int `yaml:"divisor_max" json:"divisorMax"`

	FeedbackDelay           time.Duration `yaml:"feedback_delay" json:"feedbackDelay"`
	ChoiceConfirmationDelay time.Duration `yaml:"choice_confirmation_delay" json:"choiceConfirmationDelay"`
	MarkerHintDelay         time.Duration `yaml:"marker_hint_delay" json:"markerHintDelay"`

	SideZoneWidth  float64 `yaml:"side_zone_width" json:"sideZoneWidth"`
	MirroredCamera bool    `yaml:"mirrored_camera" json:"mirroredCamera"`
}

// DefaultGameConfig returns the tunables the game ships with.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		InitialNumber:           constants.InitialNumber,
		MaxNumber:               constants.MaxNumber,
		InitialTicks:            constants.InitialTicks,
		MaxTicks:                constants.MaxTicks,
		TickInterval:            constants.TickInterval,
		CorrectChoiceTickBonus:  constants.CorrectChoiceTickBonus,
		PointsPerCorrectChoice:  constants.PointsPerCorrectChoice,
		LevelUpScoreBase:        constants.LevelUpScoreBase,
		LevelUpMultiplier:       constants.LevelUpMultiplier,
		InitialDifficulty:       constants.InitialDifficulty,
		DifficultyIncrement:     constants.DifficultyIncrement,
		MaxDifficulty:           constants.MaxDifficulty,
		MultiplierMin:           constants.MultiplierMin,
		MultiplierMax:           constants.MultiplierMax,
		DivisorMin:              constants.DivisorMin,
		DivisorMax:              constants.DivisorMax,
		FeedbackDelay:           constants.FeedbackDelay,
		ChoiceConfirmationDelay: constants.ChoiceConfirmationDelay,
		MarkerHintDelay:         constants.MarkerHintDelay,
		SideZoneWidth:           constants.SideZoneWidth,
		MirroredCamera:          constants.MirroredCamera,
	}
}

// LoadGameConfig reads a YAML file over the defaults. Keys missing from the
// file keep their default value. An empty path returns the defaults.
func LoadGameConfig(path string) (GameConfig, error) {
	cfg := DefaultGameConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return GameConfig{}, fmt.Errorf("failed to read game config %s: %v", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return GameConfig{}, fmt.Errorf("failed to parse game config %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, fmt.Errorf("invalid game config %s: %v", path, err)
	}

	return cfg, nil
}

// Validate checks the relationships between tunables.
func (c GameConfig) Validate() error {
	var errs []error
	if c.InitialNumber < 1 {
		errs = append(errs, fmt.Errorf("initial_number must be >= 1"))
	}
	if c.MaxNumber > math.MaxInt32 {
		errs = append(errs, fmt.Errorf("max_number must be <= %d", math.MaxInt32))
	}
	if c.MaxNumber < 4*c.MultiplierMax || c.MaxNumber < c.InitialNumber {
		errs = append(errs, fmt.Errorf("max_number (%d) must be >= initial_number and 4*multiplier_max", c.MaxNumber))
	}
	if c.InitialTicks <= 0 {
		errs = append(errs, fmt.Errorf("initial_ticks must be positive"))
	}
	if c.MaxTicks < c.InitialTicks {
		errs = append(errs, fmt.Errorf("max_ticks (%d) must be >= initial_ticks (%d)", c.MaxTicks, c.InitialTicks))
	}
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick_interval must be positive"))
	}
	if c.CorrectChoiceTickBonus < 0 {
		errs = append(errs, fmt.Errorf("correct_choice_tick_bonus must not be negative"))
	}
	if c.PointsPerCorrectChoice <= 0 {
		errs = append(errs, fmt.Errorf("points_per_correct_choice must be positive"))
	}
	if c.LevelUpScoreBase <= 0 {
		errs = append(errs, fmt.Errorf("level_up_score_base must be positive"))
	}
	if c.LevelUpMultiplier < 1 {
		errs = append(errs, fmt.Errorf("level_up_multiplier must be >= 1"))
	}
	if c.InitialDifficulty < 0 || c.DifficultyIncrement < 0 {
		errs = append(errs, fmt.Errorf("difficulty values must not be negative"))
	}
	if c.MaxDifficulty < c.InitialDifficulty {
		errs = append(errs, fmt.Errorf("max_difficulty (%v) must be >= initial_difficulty (%v)", c.MaxDifficulty, c.InitialDifficulty))
	}
	if c.MaxDifficulty > 2 {
		errs = append(errs, fmt.Errorf("max_difficulty must be <= 2"))
	}
	if c.MultiplierMin < 2 || c.MultiplierMax < c.MultiplierMin || c.MultiplierMax > 1000 {
		errs = append(errs, fmt.Errorf("multiplier range [%d, %d] is invalid", c.MultiplierMin, c.MultiplierMax))
	}
	if c.DivisorMin < 2 || c.DivisorMax < c.DivisorMin || c.DivisorMax > 1000 {
		errs = append(errs, fmt.Errorf("divisor range [%d, %d] is invalid", c.DivisorMin, c.DivisorMax))
	}
	if c.FeedbackDelay < 0 || c.ChoiceConfirmationDelay < 0 || c.MarkerHintDelay < 0 {
		errs = append(errs, fmt.Errorf("delays must not be negative"))
	}
	if c.SideZoneWidth <= 0 || c.SideZoneWidth >= 0.5 {
		errs = append(errs, fmt.Errorf("side_zone_width must be in (0, 0.5)"))
	}
	return errors.Join(errs...)
}
