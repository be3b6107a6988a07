package component

import "image/color"

// SegmentName identifies one rigid body of a ragdoll.
type SegmentName int

const (
	Head SegmentName = iota
	Torso
	UpperArmL
	UpperArmR
	LowerArmL
	LowerArmR
	HandL
	HandR
	UpperLegL
	UpperLegR
	LowerLegL
	LowerLegR
	FootL
	FootR
	Sword

	// BodySegmentCount is the number of non-weapon segments.
	BodySegmentCount = int(Sword)
	// SegmentCount includes the weapon.
	SegmentCount = BodySegmentCount + 1
)

// The sword is held in the right hand and aimed with the right arm.
const (
	DominantHand     = HandR
	DominantUpperArm = UpperArmR
	DominantLowerArm = LowerArmR
)

var segmentNames = [SegmentCount]string{
	"head", "torso",
	"upperArmL", "upperArmR", "lowerArmL", "lowerArmR", "handL", "handR",
	"upperLegL", "upperLegR", "lowerLegL", "lowerLegR", "footL", "footR",
	"sword",
}

func (n SegmentName) String() string {
	if n < 0 || int(n) >= SegmentCount {
		return "unknown"
	}
	return segmentNames[n]
}

func (n SegmentName) IsWeapon() bool {
	return n == Sword
}

// Segment tags a physics body as part of a combatant's ragdoll.
type Segment struct {
	Name SegmentName
	// Owner is the combatant entity (ecs.Entity is uint64).
	Owner uint64
	Color color.NRGBA
}

var SegmentComponent = NewComponent[Segment]()
