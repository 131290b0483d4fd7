package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/EngoEngine/engo"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opd-ai/go-shooter/pkg/config"
	"github.com/opd-ai/go-shooter/pkg/engine"
	"github.com/opd-ai/go-shooter/pkg/event"
	"github.com/opd-ai/go-shooter/pkg/logging"
	"github.com/opd-ai/go-shooter/pkg/physics"
	"github.com/opd-ai/go-shooter/pkg/render"
	engorender "github.com/opd-ai/go-shooter/pkg/render/engo"
)

// Front ends selectable with --renderer
const (
	rendererEngo     = "engo"
	rendererTerminal = "terminal"
	rendererNull     = "null"
)

var (
	flagRenderer string
	flagFPS      int
	flagFrames   int
	flagHold     string
	flagLogLevel string
)

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel, flagRenderer)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithSessionID(ctx, "")

	eventBus := event.NewEventBus()
	for _, sub := range subscribeEventLog(ctx, eventBus, logger) {
		defer sub.Cancel()
	}
	logger.Info(ctx, "starting",
		"renderer", flagRenderer,
		"title", cfg.Window.Title,
		"config_path", flagConfig,
		"asset_root", cfg.Assets.Root,
	)

	if err := runFrontEnd(ctx, cmd, cfg, eventBus, logger); err != nil {
		logger.Error(ctx, "run failed", err, "renderer", flagRenderer)
		return err
	}
	return nil
}

func runFrontEnd(ctx context.Context, cmd *cobra.Command, cfg *config.GameConfig, eventBus *event.Bus, logger *logging.Logger) error {
	switch flagRenderer {
	case rendererEngo:
		return startEngoRenderer(ctx, cfg, eventBus, logger)
	case rendererTerminal:
		return startTerminalRenderer(ctx, cfg, eventBus, logger, flagFPS)
	case rendererNull:
		held, err := parseHeld(flagHold)
		if err != nil {
			return err
		}
		edges := &edgeCounter{}
		defer edges.subscribe(eventBus).Cancel()

		game := engine.NewGame(cfg, eventBus, logger)
		pos := runHeadless(ctx, game, render.NewNullRenderer(logger), held, flagFrames, flagFPS)
		fmt.Fprintf(cmd.OutOrStdout(), "ship at (%.2f, %.2f), %d edge hits\n", pos.X, pos.Y, edges.hits)
		return nil
	default:
		return fmt.Errorf("unknown renderer %q (want %s, %s or %s)", flagRenderer, rendererEngo, rendererTerminal, rendererNull)
	}
}

// newLogger picks the log destination and level. The terminal front end
// owns stdout, so without a log file its logs are discarded. An empty level
// falls back to SHOOTER_LOG_LEVEL.
func newLogger(path, levelName, renderer string) (*logging.Logger, func(), error) {
	level := logging.LevelFromEnv()
	if levelName != "" {
		parsed, err := logging.ParseLevel(levelName)
		if err != nil {
			return nil, nil, err
		}
		level = parsed
	}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, logging.WrapError(err, "failed to open log file")
		}
		return logging.New(f, level), func() { f.Close() }, nil
	}
	if renderer == rendererTerminal {
		return logging.New(io.Discard, level), func() {}, nil
	}
	return logging.New(os.Stdout, level), func() {}, nil
}

// startEngoRenderer opens the window and blocks until it is closed
func startEngoRenderer(ctx context.Context, cfg *config.GameConfig, eventBus *event.Bus, logger *logging.Logger) error {
	scene := engorender.NewShooterScene(ctx, cfg, eventBus, logger)

	go func() {
		<-ctx.Done()
		engo.Exit()
	}()

	engo.Run(engorender.RunOptions(cfg), scene)
	return nil
}

// startTerminalRenderer runs the scene on the controlling terminal
func startTerminalRenderer(ctx context.Context, cfg *config.GameConfig, eventBus *event.Bus, logger *logging.Logger, fps int) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("the %s renderer needs an interactive terminal", rendererTerminal)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return logging.WrapError(err, "failed to create terminal screen")
	}
	if err := screen.Init(); err != nil {
		return logging.WrapError(err, "failed to initialize terminal screen")
	}
	defer screen.Fini()

	game := engine.NewGame(cfg, eventBus, logger)
	return render.RunTerminal(ctx, game, screen, render.TerminalOptions{FPS: fps})
}

// runHeadless advances the game a fixed number of frames at a fixed step
// and returns the final ship position
func runHeadless(ctx context.Context, game *engine.Game, renderer *render.NullRenderer, held engine.InputState, frames, fps int) physics.Vector2D {
	if fps <= 0 {
		fps = render.DefaultFPS
	}
	step := float64(time.Second/time.Duration(fps)) / float64(time.Millisecond)

	game.Start(ctx, 0, 0)
	defer game.Stop()

	for i := 0; i < frames && ctx.Err() == nil; i++ {
		game.Update(step, held)
		game.Render(renderer)
	}
	return game.Ship.Position
}

// parseHeld parses a comma-separated list of direction names
func parseHeld(list string) (engine.InputState, error) {
	var held engine.InputState
	for _, name := range strings.Split(list, ",") {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "":
		case physics.Left.String():
			held.Left = true
		case physics.Right.String():
			held.Right = true
		case physics.Up.String():
			held.Up = true
		case physics.Down.String():
			held.Down = true
		default:
			return held, fmt.Errorf("unknown key %q in --hold", name)
		}
	}
	return held, nil
}
