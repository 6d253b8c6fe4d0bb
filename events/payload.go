package events

// GameOverPayload reports the final session numbers
type GameOverPayload struct {
	Score     int
	Level     int
	HighScore int
}

// GameSelectPayload names the game to switch to
type GameSelectPayload struct {
	Game string
}
