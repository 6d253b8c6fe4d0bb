package config

import (
	"fmt"
	"strings"
)

// Game identifies one of the hosted mini-games
type Game int

const (
	GameSnake Game = iota
	GameTower
	gameCount
)

var gameNames = [gameCount]string{"snake", "tower"}

func (g Game) String() string {
	if g < 0 || g >= gameCount {
		return "unknown"
	}
	return gameNames[g]
}

// Next cycles to the other game
func (g Game) Next() Game {
	return (g + 1) % gameCount
}

// ParseGame resolves a game by name, case-insensitive
func ParseGame(name string) (Game, error) {
	for i, n := range gameNames {
		if strings.EqualFold(n, name) {
			return Game(i), nil
		}
	}
	return GameSnake, fmt.Errorf("unknown game %q", name)
}

// MarshalText renders the game name for flag defaults
func (g Game) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText lets env and flag parsing accept game names
func (g *Game) UnmarshalText(text []byte) error {
	v, err := ParseGame(string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// Difficulty scales snake speed and tower block shrink rate
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
	difficultyCount
)

var difficultyNames = [difficultyCount]string{"easy", "normal", "hard"}

// Per-difficulty tuning, indexed by Difficulty
var (
	snakeSpeeds    = [difficultyCount]int{8, 10, 12}
	widthDecreases = [difficultyCount]float64{4, 5, 6}
)

func (d Difficulty) String() string {
	if d < 0 || d >= difficultyCount {
		return "unknown"
	}
	return difficultyNames[d]
}

// Next cycles Easy → Normal → Hard → Easy
func (d Difficulty) Next() Difficulty {
	return (d + 1) % difficultyCount
}

// ParseDifficulty resolves a difficulty by name, case-insensitive
func ParseDifficulty(name string) (Difficulty, error) {
	for i, n := range difficultyNames {
		if strings.EqualFold(n, name) {
			return Difficulty(i), nil
		}
	}
	return DifficultyNormal, fmt.Errorf("unknown difficulty %q", name)
}

// MarshalText renders the difficulty name for flag defaults
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText lets env and flag parsing accept difficulty names
func (d *Difficulty) UnmarshalText(text []byte) error {
	v, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Difficulty) valid() Difficulty {
	if d < 0 || d >= difficultyCount {
		return DifficultyNormal
	}
	return d
}

// Session is the explicit per-game configuration handed to a simulation on reset
// Theme is an index into the game's own palette table
type Session struct {
	Difficulty Difficulty
	Theme      int
}

// DefaultSession returns Normal difficulty with the first theme
func DefaultSession() Session {
	return Session{Difficulty: DifficultyNormal}
}

// SnakeSpeed returns the starting snake speed in ticks per second
func (s Session) SnakeSpeed() int {
	return snakeSpeeds[s.Difficulty.valid()]
}

// WidthDecrease returns how many pixels tower blocks shrink per level
func (s Session) WidthDecrease() float64 {
	return widthDecreases[s.Difficulty.valid()]
}

// NextTheme cycles the theme index within a table of count entries
func (s Session) NextTheme(count int) Session {
	if count <= 0 {
		s.Theme = 0
		return s
	}
	s.Theme = (s.Theme + 1) % count
	return s
}

// ThemeIndex clamps the theme into a table of count entries
func (s Session) ThemeIndex(count int) int {
	if count <= 0 || s.Theme < 0 {
		return 0
	}
	return s.Theme % count
}
