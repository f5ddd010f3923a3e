package events

import (
	"time"
)

// Event type constants
const (
	TypeEpisodeStarted = "episode.started"
	TypeTargetsPlaced  = "targets.placed"
	TypeSignalRaised   = "signal.raised"
	TypeButtonPressed  = "button.pressed"
	TypeEpisodeEnded   = "episode.ended"
)

// EpisodeStartedEvent is published when a controller resets for a new episode
type EpisodeStartedEvent struct {
	BaseEvent
	Variant string
	NTargs  int
	Rows    int
	Cols    int
}

// NewEpisodeStartedEvent creates a new EpisodeStartedEvent
func NewEpisodeStartedEvent(episodeID, variant string, nTargs, rows, cols int) *EpisodeStartedEvent {
	return &EpisodeStartedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeEpisodeStarted,
			Time:      time.Now(),
			Episode:   episodeID,
		},
		Variant: variant,
		NTargs:  nTargs,
		Rows:    rows,
		Cols:    cols,
	}
}

// TargetsPlacedEvent is published after the variant's placement algorithm ran
type TargetsPlacedEvent struct {
	BaseEvent
	Variant string
	NTargs  int
}

// NewTargetsPlacedEvent creates a new TargetsPlacedEvent
func NewTargetsPlacedEvent(episodeID, variant string, nTargs int) *TargetsPlacedEvent {
	return &TargetsPlacedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeTargetsPlaced,
			Time:      time.Now(),
			Episode:   episodeID,
		},
		Variant: variant,
		NTargs:  nTargs,
	}
}

// SignalRaisedEvent is published when the end-of-animation signal appears
type SignalRaisedEvent struct {
	BaseEvent
	Step int
}

// NewSignalRaisedEvent creates a new SignalRaisedEvent
func NewSignalRaisedEvent(episodeID string, step int) *SignalRaisedEvent {
	return &SignalRaisedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeSignalRaised,
			Time:      time.Now(),
			Episode:   episodeID,
		},
		Step: step,
	}
}

// ButtonPressedEvent is published when the player presses the ending button
type ButtonPressedEvent struct {
	BaseEvent
	Step   int
	NItems int
	NTargs int
}

// NewButtonPressedEvent creates a new ButtonPressedEvent
func NewButtonPressedEvent(episodeID string, step, nItems, nTargs int) *ButtonPressedEvent {
	return &ButtonPressedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeButtonPressed,
			Time:      time.Now(),
			Episode:   episodeID,
		},
		Step:   step,
		NItems: nItems,
		NTargs: nTargs,
	}
}

// EpisodeEndedEvent is published when an episode reaches a terminal event
type EpisodeEndedEvent struct {
	BaseEvent
	Reward float64
	Steps  int
	Full   bool
}

// NewEpisodeEndedEvent creates a new EpisodeEndedEvent
func NewEpisodeEndedEvent(episodeID string, reward float64, steps int, full bool) *EpisodeEndedEvent {
	return &EpisodeEndedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeEpisodeEnded,
			Time:      time.Now(),
			Episode:   episodeID,
		},
		Reward: reward,
		Steps:  steps,
		Full:   full,
	}
}
