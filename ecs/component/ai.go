package component

type AIMode int

const (
	AIModeIdle AIMode = iota
	AIModeAdvance
	AIModeCaution
)

func (m AIMode) String() string {
	switch m {
	case AIModeAdvance:
		return "advance"
	case AIModeCaution:
		return "caution"
	default:
		return "idle"
	}
}

// AIState records the outcome of the last decision for debugging.
type AIState struct {
	Mode      AIMode
	Lunged    bool
	Hopped    bool
	Decisions int
}

var AIStateComponent = NewComponent[AIState]()
