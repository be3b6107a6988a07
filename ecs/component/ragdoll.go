package component

// Ragdoll indexes the segment and joint entities of one combatant's rig.
// Entries are fixed at construction.
type Ragdoll struct {
	Segments [SegmentCount]uint64
	Joints   []uint64
	Group    uint
}

// Segment returns the entity for the named segment.
func (r *Ragdoll) Segment(name SegmentName) uint64 {
	if r == nil || name < 0 || int(name) >= SegmentCount {
		return 0
	}
	return r.Segments[name]
}

// BodySegments returns the segments a player can target, excluding the weapon.
func (r *Ragdoll) BodySegments() []uint64 {
	if r == nil {
		return nil
	}
	return r.Segments[:BodySegmentCount]
}

var RagdollComponent = NewComponent[Ragdoll]()
