package component

// Cooldown counts down in physics ticks. The player controller starts it
// after a dash and blocks further dashes until Frames is back to zero.
type Cooldown struct {
	Frames int
}

var CooldownComponent = NewComponent[Cooldown]()
