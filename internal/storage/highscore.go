package storage

import (
	"fmt"

	"github.com/vovakirdan/flapgate/internal/sim"
)

// GameHighScores binds a Store to one game ID so it can serve as the
// simulation's persistence collaborator.
type GameHighScores struct {
	store  *Store
	gameID string
}

// HighScores returns the high-score collaborator for gameID.
func (s *Store) HighScores(gameID string) *GameHighScores {
	return &GameHighScores{store: s, gameID: gameID}
}

// LoadHighScore implements sim.HighScoreStore.
func (h *GameHighScores) LoadHighScore() (int, error) {
	return h.store.HighScore(h.gameID)
}

// PersistHighScore implements sim.HighScoreStore.
func (h *GameHighScores) PersistHighScore(score int) error {
	if score < 0 {
		return fmt.Errorf("storage: negative high score %d", score)
	}
	return h.store.SetHighScore(h.gameID, score)
}

var _ sim.HighScoreStore = (*GameHighScores)(nil)
