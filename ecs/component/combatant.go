package component

type Role int

const (
	RolePlayer Role = iota
	RoleAI
)

func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleAI:
		return "ai"
	default:
		return "unknown"
	}
}

// Combatant holds the identity and spawn point of a duelist.
type Combatant struct {
	Role   Role
	Name   string
	SpawnX float64
	SpawnY float64
}

var CombatantComponent = NewComponent[Combatant]()
