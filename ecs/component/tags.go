package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type AITag struct{}

var AITagComponent = NewComponent[AITag]()
