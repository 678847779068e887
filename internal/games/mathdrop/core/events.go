package core

import "time"

// EventKind tags an engine event.
type EventKind int

const (
	EventLanded         EventKind = iota // An item became a block
	EventMatched                         // Input solved one item or the whole sky
	EventClusterCleared                  // Flagged blocks were removed after the clear delay
	EventComboCleared                    // Same as ClusterCleared, for combos and sum-all clears
	EventWrongInput                      // Input exceeded the guard without matching
	EventLevelUp
	EventGameOver
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventLanded:
		return "landed"
	case EventMatched:
		return "matched"
	case EventClusterCleared:
		return "cluster_cleared"
	case EventComboCleared:
		return "combo_cleared"
	case EventWrongInput:
		return "wrong_input"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a notification for renderers and the audio collaborator.
// Fields that do not apply to a kind are zero.
type Event struct {
	Kind   EventKind
	At     time.Duration // Engine clock
	Column int
	Row    int
	Color  Color
	Sum    bool // Produced by the sum-all rule
	Size   int  // Items matched or blocks removed
	Points int
	Level  int
}
