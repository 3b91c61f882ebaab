package storage

import (
	"fmt"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flapgate/internal/sim"
)

// gdata object under which every game's best score is a property.
const highScoresObject = "highscores"

// FileStore keeps one best score per game in the platform's app-data
// directory. It has no history; use Store for the scoreboard.
type FileStore struct {
	m *gdata.Manager
}

type highScoreRecord struct {
	Score     int       `yaml:"score"`
	UpdatedAt time.Time `yaml:"updated_at"`
}

// OpenFileStore opens (or creates) the app-data directory for appName.
func OpenFileStore(appName string) (*FileStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open app data for %s: %w", appName, err)
	}
	return &FileStore{m: m}, nil
}

// HighScore returns the stored best for gameID, or 0 if none was saved.
func (f *FileStore) HighScore(gameID string) (int, error) {
	if !f.m.ObjectPropExists(highScoresObject, gameID) {
		return 0, nil
	}
	data, err := f.m.LoadObjectProp(highScoresObject, gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load high score for %s: %w", gameID, err)
	}
	var rec highScoreRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("storage: corrupt high score for %s: %w", gameID, err)
	}
	return rec.Score, nil
}

// SetHighScore stores score if it beats the current best.
func (f *FileStore) SetHighScore(gameID string, score int) error {
	current, err := f.HighScore(gameID)
	if err == nil && current >= score {
		return nil
	}

	data, err := yaml.Marshal(highScoreRecord{Score: score, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("storage: cannot encode high score: %w", err)
	}
	if err := f.m.SaveObjectProp(highScoresObject, gameID, data); err != nil {
		return fmt.Errorf("storage: cannot save high score for %s: %w", gameID, err)
	}
	return nil
}

// HighScores returns the high-score collaborator for gameID.
func (f *FileStore) HighScores(gameID string) sim.HighScoreStore {
	return fileHighScores{f: f, gameID: gameID}
}

type fileHighScores struct {
	f      *FileStore
	gameID string
}

func (h fileHighScores) LoadHighScore() (int, error) {
	return h.f.HighScore(h.gameID)
}

func (h fileHighScores) PersistHighScore(score int) error {
	return h.f.SetHighScore(h.gameID, score)
}
