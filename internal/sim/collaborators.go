package sim

// RandSource supplies uniform draws in [0, 1) for gap placement.
// *math/rand.Rand satisfies it; tests inject scripted sources.
type RandSource interface {
	Float64() float64
}

// HighScoreStore is the persistence collaborator. The simulation loads the
// best score once at construction and asks the store to persist a new best
// when a game ends. It never touches storage any other way.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	PersistHighScore(score int) error
}

// Listener receives fire-and-forget notifications from the simulation.
// Calls happen synchronously inside Tick.
type Listener interface {
	OnAchievement(label string)
	OnGameOver(finalScore, highScore int)
}

// ListenerFuncs adapts plain functions to a Listener. Nil fields are ignored.
type ListenerFuncs struct {
	Achievement func(label string)
	GameOver    func(finalScore, highScore int)
}

// OnAchievement implements Listener.
func (l ListenerFuncs) OnAchievement(label string) {
	if l.Achievement != nil {
		l.Achievement(label)
	}
}

// OnGameOver implements Listener.
func (l ListenerFuncs) OnGameOver(finalScore, highScore int) {
	if l.GameOver != nil {
		l.GameOver(finalScore, highScore)
	}
}

var _ Listener = ListenerFuncs{}
