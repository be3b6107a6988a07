package component

import "github.com/jakecoffman/cp"

type CommandKind int

const (
	CommandForce CommandKind = iota + 1
	CommandAngle
)

// Command is a deferred write to a segment body, applied before the next
// physics step.
type Command struct {
	Kind   CommandKind
	Target uint64
	Force  cp.Vector
	Angle  float64
}
