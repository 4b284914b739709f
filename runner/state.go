package runner

import "fmt"

// State is the lifecycle stage of a Runner
type State int

const (
	Idle State = iota
	Running
	Finished
	Cancelled
	// Failed means the renderer returned an error and the run was abandoned.
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Finished:
		return "finished"
	case Cancelled:
		return "cancelled"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Done reports whether s is terminal
func (s State) Done() bool {
	return s == Finished || s == Cancelled || s == Failed
}
