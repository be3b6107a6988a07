package component

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

type WallSide int

const (
	WallGround WallSide = iota
	WallRoof
	WallLeft
	WallRight
)

// Wall is a static arena boundary in world space.
type Wall struct {
	Side  WallSide
	BB    cp.BB
	Shape *cp.Shape
	Color color.NRGBA
}

var WallComponent = NewComponent[Wall]()
