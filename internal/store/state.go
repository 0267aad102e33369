package store

// State is the lifecycle state of a Store.
type State int32

const (
	StateUninitialized State = iota
	StateOpening
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateOpening:
		return "opening"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}
