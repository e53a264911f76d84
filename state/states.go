package state

// State is a named lifecycle state of a purge task.
type State struct {
	Name string
}

func (s State) String() string {
	return s.Name
}

var Created = State{
	Name: "created",
}

var Completed = State{
	Name: "completed",
}

var Failed = State{
	Name: "failed",
}
