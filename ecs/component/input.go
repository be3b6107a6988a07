package component

// Action is an edge-triggered input event.
type Action int

const (
	ActionJump Action = iota + 1
	ActionDash
)

// Input stores per-frame input state for an entity. Left, Right, DashHeld
// and the pointer are held state; Presses queues key-down edges until the
// player controller consumes them.
type Input struct {
	Left     bool
	Right    bool
	DashHeld bool
	PointerX float64
	PointerY float64
	Presses  []Action
}

// Press queues an action edge.
func (i *Input) Press(a Action) {
	if i == nil {
		return
	}
	i.Presses = append(i.Presses, a)
}

// Consume drains the press queue and reports which actions were pressed.
func (i *Input) Consume() (jump, dash bool) {
	if i == nil {
		return false, false
	}
	for _, a := range i.Presses {
		switch a {
		case ActionJump:
			jump = true
		case ActionDash:
			dash = true
		}
	}
	i.Presses = i.Presses[:0]
	return jump, dash
}

var InputComponent = NewComponent[Input]()
