package parameter

// Gesture Mapping
const (
	// GestureDeadZone is the minimum normalized fingertip-to-wrist offset that registers a direction
	GestureDeadZone = 0.1

	// LandmarkWrist and LandmarkIndexTip are hand skeleton indices used by the tracker
	LandmarkWrist    = 0
	LandmarkIndexTip = 8

	// LandmarkCount is the size of a complete hand skeleton
	LandmarkCount = 21
)
