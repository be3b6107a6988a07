package component

type MatchPhase int

const (
	MatchActive MatchPhase = iota
	MatchRoundEnding
)

func (p MatchPhase) String() string {
	if p == MatchRoundEnding {
		return "round_ending"
	}
	return "active"
}

// Match is the singleton round state. Health lives on the combatants and the
// dash cooldown on the player.
type Match struct {
	Phase        MatchPhase
	Round        int
	ResetPending bool
}

var MatchComponent = NewComponent[Match]()
