package zone

// Outcome is the terminal result of an update attempt.
type Outcome uint8

const (
	// Aborted is for a failure before any zone version was staged.
	Aborted Outcome = iota
	NoChangeNeeded
	Committed
	RolledBack
)

func (o Outcome) String() string {
	switch o {
	case Aborted:
		return "aborted"
	case NoChangeNeeded:
		return "no change needed"
	case Committed:
		return "committed"
	case RolledBack:
		return "rolled back"
	default:
		return "unknown"
	}
}
