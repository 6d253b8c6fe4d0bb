package parameter

// Tower Screen (pixel space)
const (
	TowerScreenWidth  = 1024
	TowerScreenHeight = 768

	// TowerZoneX is the left edge of the placement zone
	TowerZoneX = TowerScreenWidth/2 - 40

	// TowerBaseY is the ground line the first block lands on
	TowerBaseY = TowerScreenHeight / 2

	// TowerCeilingRise is how far above the base the level ceiling sits
	TowerCeilingRise = 200
)

// Block Geometry
const (
	BlockDefaultWidth  = 80
	BlockDefaultHeight = 30
	BlockMinWidth      = 30
)

// Snap Tolerance (inclusive)
const (
	SnapToleranceX = 20.0
	SnapToleranceY = 10.0
)

// Block Motion
const (
	// BlockEaseRate is the per-tick exponential ease factor for rotation and scale
	BlockEaseRate = 0.1

	// BlockGrabTiltMax bounds the random tilt target (degrees) while held
	BlockGrabTiltMax = 10.0

	// BlockGrabScale is the enlargement target while held
	BlockGrabScale = 1.1

	// BlockSettleNudge is the cosmetic downward offset applied to settled blocks on each placement
	BlockSettleNudge = 5.0

	// BlockReleaseMargin widens the bounds a held block is dropped outside of
	// Must exceed one terminal row of tower space (768/22 ≈ 35 on a 24-row screen) less half the block height
	BlockReleaseMargin = 40.0
)

// Scoring & Levels
const (
	// TowerScoreBase is reduced by attempts, floored at 1
	TowerScoreBase = 5

	TowerMaxLevel = 10
)

// Spawn Placement
const (
	TowerSpawnMargin      = 50
	TowerSpawnMinDistance = 200.0

	// TowerSpawnMaxAttempts bounds rejection sampling on degenerate screen sizes
	TowerSpawnMaxAttempts = 500
)

// Tower Effects
const (
	TowerGrabPuffCount     = 15
	TowerDropPuffCount     = 10
	TowerSuccessBurstCount = 50
	TowerPuffSpread        = 1.0
	TowerBurstSpread       = 3.0
)

// Zone Pulse
const (
	ZonePulseMax  = 150
	ZonePulseStep = 3
)
