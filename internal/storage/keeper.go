package storage

// HighScoreKeeper binds a Store to one game so it can serve as that game's
// high-score collaborator.
type HighScoreKeeper struct {
	store  *Store
	gameID string
}

// NewHighScoreKeeper creates a keeper for gameID.
func NewHighScoreKeeper(store *Store, gameID string) *HighScoreKeeper {
	return &HighScoreKeeper{store: store, gameID: gameID}
}

// ReadHighScore returns the stored high score.
func (k *HighScoreKeeper) ReadHighScore() (int, error) {
	return k.store.HighScore(k.gameID)
}

// WriteHighScore persists a new high score.
func (k *HighScoreKeeper) WriteHighScore(score int) error {
	return k.store.SetHighScore(k.gameID, score)
}
