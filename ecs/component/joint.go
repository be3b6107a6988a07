package component

import "github.com/jakecoffman/cp"

// Joint links two segment entities at fixed local anchors.
type Joint struct {
	Constraint *cp.Constraint
	A          uint64
	B          uint64
	AnchorA    cp.Vector
	AnchorB    cp.Vector
	RestLength float64
	Stiffness  float64
	Weapon     bool
}

var JointComponent = NewComponent[Joint]()
