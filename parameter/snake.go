package parameter

// Snake Board (pixel space, matches the camera overlay resolution)
const (
	SnakeBoardWidth  = 1280
	SnakeBoardHeight = 720

	// SnakeCellSize is the edge length of one grid cell in pixels
	SnakeCellSize = 20
)

// Snake Session Start
const (
	SnakeInitialLength = 3
	SnakeInitialSpeed  = 10 // ticks per second on Normal difficulty
	SnakeInitialLevel  = 1
)

// Snake Scoring
const (
	// SnakeFoodScorePerLevel is multiplied by the current level on every food eaten
	SnakeFoodScorePerLevel = 10

	// SnakeLevelScoreStep advances the level once score >= level*step
	SnakeLevelScoreStep = 50
)

// Snake Effects
const (
	// SnakeTrailChance is the per-tick probability of a trail particle
	SnakeTrailChance = 0.3

	// SnakeTrailSpread is the max abs initial velocity of trail particles
	SnakeTrailSpread = 1.0

	// SnakeFoodBurstCount is the particle count emitted when food is eaten
	SnakeFoodBurstCount = 20

	// SnakeFoodBurstSpread is the max abs initial velocity of food burst particles
	SnakeFoodBurstSpread = 3.0
)

// Food Spawner
const (
	// FoodSpawnChance is the per-tick probability of adding food when some already exists
	FoodSpawnChance = 0.1

	// FoodBorderMargin keeps food off the outer ring of cells
	FoodBorderMargin = 20
)
