package experience

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/numcog/gridgames/internal/env"
)

// Collector turns environment step results into buffered transitions.
// Canvas snapshots are large, so they are only captured when requested.
type Collector struct {
	buf           *Buffer
	includeCanvas bool
	logger        zerolog.Logger
}

// NewCollector creates a collector over a fresh buffer.
func NewCollector(capacity int, includeCanvas bool) *Collector {
	logger := log.With().Str("component", "experience_collector").Logger()
	return &Collector{
		buf:           NewBuffer(capacity, logger),
		includeCanvas: includeCanvas,
		logger:        logger,
	}
}

// RecordStep buffers the outcome of one continuous-action step.
func (c *Collector) RecordStep(episodeID, variant string, step int, a Action, res env.StepResult) {
	t := &Transition{
		EpisodeID: episodeID,
		Variant:   variant,
		Step:      step,
		Action:    a,
		Reward:    res.Reward,
		Done:      res.Done,
		NTargs:    res.Info.NTargs,
		NItems:    res.Info.NItems,
	}
	if c.includeCanvas {
		t.Canvas = res.Canvas
	}
	if err := c.buf.Add(t); err != nil {
		c.logger.Warn().Err(err).Str("episode_id", episodeID).Msg("dropping transition")
	}
}

// Len returns the number of buffered transitions.
func (c *Collector) Len() int { return c.buf.Len() }

// Transitions returns the buffered transitions, oldest first.
func (c *Collector) Transitions() []*Transition { return c.buf.Snapshot() }

// WriteJSONL streams the buffered transitions as one JSON object per line.
func (c *Collector) WriteJSONL(w io.Writer) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for _, t := range c.buf.Snapshot() {
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("encoding transition: %w", err)
		}
	}
	return bw.Flush()
}

// SaveJSONL writes the buffered transitions to a file.
func (c *Collector) SaveJSONL(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating experience file: %w", err)
	}
	defer f.Close()
	if err := c.WriteJSONL(f); err != nil {
		return err
	}
	c.logger.Info().Str("path", path).Int("transitions", c.buf.Len()).Msg("experience saved")
	return nil
}
