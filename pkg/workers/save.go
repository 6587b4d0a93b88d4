package workers

import (
	"context"
	"time"

	"github.com/cbodonnell/swipemath/pkg/game/types"
	"github.com/cbodonnell/swipemath/pkg/log"
	"github.com/cbodonnell/swipemath/pkg/repositories"
	"github.com/cbodonnell/swipemath/pkg/repositories/models"
	"github.com/google/uuid"
)

const (
	// SaveResultChannelSize is the buffer between game sessions and the save worker
	SaveResultChannelSize = 256
	saveResultTimeout     = 5 * time.Second
)

type SaveResultWorker struct {
	repository     repositories.Repository
	saveResultChan <-chan SaveResultRequest
}

type NewSaveResultWorkerOptions struct {
	Repository     repositories.Repository
	SaveResultChan <-chan SaveResultRequest
}

type SaveResultRequest struct {
	SessionID  string
	UserID     string
	Result     types.GameResult
	FinishedAt time.Time
}

// NewSaveResultWorker creates a new SaveResultWorker.
// The worker persists the results of finished games sent by game sessions.
func NewSaveResultWorker(opts NewSaveResultWorkerOptions) *SaveResultWorker {
	return &SaveResultWorker{
		repository:     opts.Repository,
		saveResultChan: opts.SaveResultChan,
	}
}

func (w *SaveResultWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return
		case saveRequest := <-w.saveResultChan:
			w.saveResult(ctx, saveRequest)
		}
	}
}

// drain saves whatever is still buffered once the worker is asked to stop.
func (w *SaveResultWorker) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), saveResultTimeout)
	defer cancel()
	for {
		select {
		case saveRequest := <-w.saveResultChan:
			w.saveResult(ctx, saveRequest)
		default:
			return
		}
	}
}

func (w *SaveResultWorker) saveResult(ctx context.Context, saveRequest SaveResultRequest) {
	ctx, cancel := context.WithTimeout(ctx, saveResultTimeout)
	defer cancel()

	result := ResultModelFromRequest(saveRequest)
	if err := w.repository.SaveGameResult(ctx, result); err != nil {
		log.Error("Failed to save game result for session %s: %v", saveRequest.SessionID, err)
		return
	}
	log.Debug("Saved game result %s for session %s", result.ID, saveRequest.SessionID)
}

// ResultModelFromRequest builds the stored form of a finished game.
func ResultModelFromRequest(saveRequest SaveResultRequest) *models.GameResult {
	return &models.GameResult{
		ID:             uuid.NewString(),
		SessionID:      saveRequest.SessionID,
		UserID:         saveRequest.UserID,
		Score:          saveRequest.Result.Score,
		Level:          saveRequest.Result.Level,
		FinalNumber:    saveRequest.Result.FinalNumber,
		RoundsPlayed:   saveRequest.Result.RoundsPlayed,
		CorrectChoices: saveRequest.Result.CorrectChoices,
		FinishedAt:     saveRequest.FinishedAt,
	}
}
