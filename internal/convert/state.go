package convert

// State is the phase a Syncer is in.
type State int

const (
	StateIdle State = iota
	StateEnumerating
	StateConverting
	StatePruning
	StateDone
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEnumerating:
		return "enumerating"
	case StateConverting:
		return "converting"
	case StatePruning:
		return "pruning"
	case StateDone:
		return "done"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}
