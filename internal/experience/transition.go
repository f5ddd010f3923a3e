// Package experience collects step transitions from played episodes into a
// bounded buffer and persists them as JSON lines for offline training
// pipelines.
package experience

// Action is the continuous action that produced a transition.
type Action struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Grab float64 `json:"grab"`
}

// Transition is one environment step: the action taken, its outcome and the
// episode bookkeeping needed to regroup transitions downstream.
type Transition struct {
	EpisodeID string    `json:"episode_id"`
	Variant   string    `json:"variant"`
	Step      int       `json:"step"`
	Action    Action    `json:"action"`
	Reward    float64   `json:"reward"`
	Done      bool      `json:"done"`
	NTargs    int       `json:"n_targs"`
	NItems    int       `json:"n_items"`
	Canvas    []float64 `json:"canvas,omitempty"`
}
