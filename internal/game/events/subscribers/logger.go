package subscribers

import (
	"github.com/rs/zerolog"

	"github.com/numcog/gridgames/internal/game/events"
)

// LoggerSubscriber logs episode events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}
	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	entry := ls.logger.WithLevel(ls.logLevel).
		Str("event_type", event.Type()).
		Str("episode_id", event.EpisodeID()).
		Time("event_time", event.Timestamp())

	switch e := event.(type) {
	case *events.EpisodeStartedEvent:
		entry = entry.Str("variant", e.Variant).Int("n_targs", e.NTargs).
			Int("rows", e.Rows).Int("cols", e.Cols)
	case *events.TargetsPlacedEvent:
		entry = entry.Str("variant", e.Variant).Int("n_targs", e.NTargs)
	case *events.SignalRaisedEvent:
		entry = entry.Int("step", e.Step)
	case *events.ButtonPressedEvent:
		entry = entry.Int("step", e.Step).Int("n_items", e.NItems).Int("n_targs", e.NTargs)
	case *events.EpisodeEndedEvent:
		entry = entry.Float64("reward", e.Reward).Int("steps", e.Steps).Bool("full", e.Full)
	}

	entry.Msg("episode event")
}
