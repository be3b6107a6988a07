package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and the collider dimensions
// used for drawing. Radius > 0 means a circle, otherwise a rounded box.
type PhysicsBody struct {
	Body    *cp.Body
	Shape   *cp.Shape
	Width   float64
	Height  float64
	Radius  float64
	Chamfer float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
