package deconv

import "fmt"

// State is the lifecycle position of an EventType.
type State int

const (
	StateUnbuilt State = iota
	StateMatrixBuilt
	StateBetasAttached
	StateTimecoursesComputed
)

func (s State) String() string {
	switch s {
	case StateUnbuilt:
		return "unbuilt"
	case StateMatrixBuilt:
		return "matrix-built"
	case StateBetasAttached:
		return "betas-attached"
	case StateTimecoursesComputed:
		return "timecourses-computed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
