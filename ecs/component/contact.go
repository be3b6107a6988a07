package component

import "github.com/jakecoffman/cp"

// Contact is a contact-begin record between two segment entities, with each
// body's velocity captured when the shapes first touched.
type Contact struct {
	A    uint64
	B    uint64
	VelA cp.Vector
	VelB cp.Vector
}
