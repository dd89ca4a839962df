package camrig

import "strings"

// Camera states describe how the player is currently moving and drive
// which parameter set the rig blends towards. The set is closed: every
// locomotion notification resolves to exactly one of these values,
// with [Standing] as the safe default for anything unrecognized.
type CameraState uint8

const (
	Standing CameraState = iota
	Walking
	Sprinting
	Crouching
	Sliding
	Airborne
)

// Number of camera states. Kept in sync with the enum above; parameter
// tables are fixed-size arrays indexed by CameraState.
const NumCameraStates = 6

// Returns a string representation of the camera state.
func (self CameraState) String() string {
	switch self {
	case Standing: return "Standing"
	case Walking: return "Walking"
	case Sprinting: return "Sprinting"
	case Crouching: return "Crouching"
	case Sliding: return "Sliding"
	case Airborne: return "Airborne"
	default:
		panic("invalid CameraState")
	}
}

// Maps a raw locomotion state name plus movement flags to a camera
// state. Matching is case-insensitive. Unrecognized names fall back
// to [Standing], so the function is total: any input produces a valid
// state and there is no error to handle.
//
// The upright "standing" name splits three ways on the flags, since
// the locomotion side doesn't distinguish idling from walking from
// sprinting at the state-name level.
func Classify(stateName string, isMoving, isSprinting bool) CameraState {
	switch strings.ToLower(stateName) {
	case "standing":
		if isMoving && isSprinting {
			return Sprinting
		}
		if isMoving {
			return Walking
		}
		return Standing
	case "crouching":
		return Crouching
	case "sliding":
		return Sliding
	case "jumping", "falling", "airborne", "mantle":
		return Airborne
	default:
		return Standing
	}
}
