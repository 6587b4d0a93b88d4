package models

import "time"

// GameResult is a finished game.
type GameResult struct {
	ID             string    `json:"id"`
	SessionID      string    `json:"session_id"`
	UserID         string    `json:"user_id"`
	Score          int       `json:"score"`
	Level          int       `json:"level"`
	FinalNumber    int       `json:"final_number"`
	RoundsPlayed   int       `json:"rounds_played"`
	CorrectChoices int       `json:"correct_choices"`
	FinishedAt     time.Time `json:"finished_at"`
}
