package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/numcog/gridgames/internal/config"
	"github.com/numcog/gridgames/internal/env"
	"github.com/numcog/gridgames/internal/env/oracle"
	"github.com/numcog/gridgames/internal/experience"
	"github.com/numcog/gridgames/internal/game/controller"
	"github.com/numcog/gridgames/internal/game/events"
	"github.com/numcog/gridgames/internal/game/object"
	"github.com/numcog/gridgames/internal/game/events/subscribers"
	"github.com/numcog/gridgames/internal/presets"
	"github.com/numcog/gridgames/internal/render"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	presetName := flag.String("preset", "", "Named game preset (empty to use config default)")
	presetsFile := flag.String("presets-file", "", "Path to a presets YAML file (empty to use built-ins)")
	episodes := flag.Int("episodes", -1, "Number of episodes to play (-1 to use config default)")
	seed := flag.Int64("seed", -1, "Base RNG seed (-1 to use config default)")
	parallelism := flag.Int("parallelism", -1, "Concurrent episode runners (-1 to use config default)")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for terminal-frame PNGs (empty to use config default)")
	recordFile := flag.String("record", "", "JSONL file for step transitions (empty to use config default)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}

	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *presetName == "" {
		*presetName = cfg.Play.Preset
	}
	if *presetsFile == "" {
		*presetsFile = cfg.Play.PresetsFile
	}
	if *episodes == -1 {
		*episodes = cfg.Play.Episodes
	}
	if *seed == -1 {
		*seed = cfg.Play.Seed
	}
	if *parallelism == -1 {
		*parallelism = cfg.Play.Parallelism
	}
	if *snapshotDir == "" {
		*snapshotDir = cfg.Play.SnapshotDir
	}
	if *recordFile == "" {
		*recordFile = cfg.Play.RecordFile
	}
	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}

	setupLogging(*logLevel, cfg.Log.Format)

	gameCfg, err := resolveGameConfig(cfg, *presetName, *presetsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve game configuration")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	log.Info().
		Stringer("variant", gameCfg.Variant).
		Int("grid_rows", gameCfg.GridRows).
		Int("grid_cols", gameCfg.GridCols).
		Int("episodes", *episodes).
		Int("parallelism", *parallelism).
		Int64("seed", *seed).
		Msg("Starting oracle playthrough")

	if *snapshotDir != "" {
		if err := os.MkdirAll(*snapshotDir, 0o755); err != nil {
			log.Fatal().Err(err).Msg("Failed to create snapshot directory")
		}
	}

	bus := events.NewEventBus()
	eventLogger := subscribers.NewLoggerSubscriber("play", log.Logger, zerolog.DebugLevel)
	bus.Subscribe(eventLogger)

	stats := &rewardStats{}
	var collector *experience.Collector
	if *recordFile != "" {
		collector = experience.NewCollector(0, false)
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*parallelism)
	for i := 0; i < *episodes; i++ {
		episode := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return playEpisode(gameCfg, bus, stats, collector, *seed+int64(episode), episode, *snapshotDir)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("Playthrough failed")
	}

	if collector != nil {
		if err := collector.SaveJSONL(*recordFile); err != nil {
			log.Fatal().Err(err).Msg("Failed to save transitions")
		}
	}

	solved, total, mean := stats.Summary()
	log.Info().
		Int("episodes", total).
		Int("solved", solved).
		Float64("mean_reward", mean).
		Msg("Playthrough complete")
}

// resolveGameConfig picks the controller configuration from the named
// preset when one is given, falling back to the [game] config section.
func resolveGameConfig(cfg *config.Config, presetName, presetsFile string) (controller.Config, error) {
	if presetName == "" {
		return cfg.Game.ControllerConfig()
	}
	ps := presets.Defaults()
	if presetsFile != "" {
		var err error
		ps, err = presets.LoadFile(presetsFile)
		if err != nil {
			return controller.Config{}, fmt.Errorf("loading presets: %w", err)
		}
	}
	p, err := presets.Find(ps, presetName)
	if err != nil {
		return controller.Config{}, err
	}
	return p.ControllerConfig()
}

// playEpisode runs one oracle-scripted episode to completion.
func playEpisode(gameCfg controller.Config, bus events.Publisher, stats *rewardStats, collector *experience.Collector, seed int64, episode int, snapshotDir string) error {
	rng := rand.New(rand.NewSource(seed))
	ctrl, err := controller.New(gameCfg, rng, controller.WithEventBus(bus))
	if err != nil {
		return fmt.Errorf("episode %d: %w", episode, err)
	}
	e := env.Wrap(ctrl, 0)

	o := oracle.New(e)
	var res env.StepResult
	if collector == nil {
		res = o.Run()
	} else {
		// Replay the plan step by step so each transition can be recorded.
		for {
			x, y, grab, ok := o.Next()
			if !ok {
				break
			}
			res = e.StepContinuous(x, y, grab)
			collector.RecordStep(ctrl.EpisodeID(), gameCfg.Variant.String(), e.StepCount(),
				experience.Action{X: x, Y: y, Grab: grab}, res)
			if res.Done {
				break
			}
		}
	}

	stats.Record(res.Reward)
	log.Info().
		Int("episode", episode).
		Int("n_targs", ctrl.NTargs()).
		Int("steps", e.StepCount()).
		Float64("reward", res.Reward).
		Bool("done", res.Done).
		Msg("Episode finished")
	log.Debug().Msgf("episode %d final board:\n%s", episode, boardString(res.Canvas, gameCfg))

	if snapshotDir == "" {
		return nil
	}
	img, err := render.Image(res.Canvas, gameCfg.GridRows*gameCfg.PixelDensity, gameCfg.GridCols*gameCfg.PixelDensity)
	if err != nil {
		return fmt.Errorf("episode %d: rendering snapshot: %w", episode, err)
	}
	path := filepath.Join(snapshotDir, fmt.Sprintf("episode_%04d.png", episode))
	if err := render.SavePNG(path, render.Upscale(img, 8)); err != nil {
		return fmt.Errorf("episode %d: saving snapshot: %w", episode, err)
	}
	return nil
}

// boardString renders a canvas snapshot as one character per grid unit,
// sampling the top-left pixel of each unit block.
func boardString(canvas []float64, cfg controller.Config) string {
	glyphs := map[float64]byte{
		object.ColorDefault: '.',
		object.ColorDivider: '-',
		object.ColorPlayer:  'P',
		object.ColorTarg:    'T',
		object.ColorItem:    'I',
		object.ColorPile:    'O',
		object.ColorButton:  'B',
		object.ColorSignal:  'S',
	}
	d := cfg.PixelDensity
	pixelCols := cfg.GridCols * d
	var sb strings.Builder
	for row := 0; row < cfg.GridRows; row++ {
		for col := 0; col < cfg.GridCols; col++ {
			g, ok := glyphs[canvas[row*d*pixelCols+col*d]]
			if !ok {
				g = '?'
			}
			sb.WriteByte(g)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// rewardStats aggregates terminal rewards across concurrent episodes.
type rewardStats struct {
	mu     sync.Mutex
	total  int
	solved int
	sum    float64
}

func (s *rewardStats) Record(reward float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total++
	s.sum += reward
	if reward > 0 {
		s.solved++
	}
}

func (s *rewardStats) Summary() (solved, total int, mean float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.total == 0 {
		return 0, 0, 0
	}
	return s.solved, s.total, s.sum / float64(s.total)
}

func setupLogging(level, format string) {
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	if format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
