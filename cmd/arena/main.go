// cmd/arena/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-tank-arena/internal/app"
	"go-tank-arena/internal/config"
	"go-tank-arena/internal/input"
	"go-tank-arena/internal/logging"
	"go-tank-arena/internal/replay"
	"go-tank-arena/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// fixedStep is the tick length used when no window drives the clock.
const fixedStep = 1.0 / 60

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	seed := flag.Int64("seed", 0, "placement and AI seed (0 picks one from the clock)")
	logLevel := flag.String("log-level", "info", "debug, info, warn or error")
	recordPath := flag.String("record", "", "write a replay of the match to this file")
	verifyPath := flag.String("verify", "", "re-run a replay file and check it for desyncs, then exit")
	headless := flag.Bool("headless", false, "run the match without a window using idle input")
	ticks := flag.Int("ticks", 0, "stop a headless run after this many ticks (0 runs to the end)")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address")
	flag.Parse()

	logger, err := logging.New(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	if *pprofAddr != "" {
		go func() {
			logger.Warn("pprof server stopped", zap.Error(http.ListenAndServe(*pprofAddr, nil)))
		}()
	}

	if *verifyPath != "" {
		if err := verify(*verifyPath, logger); err != nil {
			logger.Fatal("replay verification failed", zap.String("path", *verifyPath), zap.Error(err))
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	g := app.NewMatch(cfg, *seed, logger)
	if *recordPath != "" {
		g.Recorder = replay.NewRecorder(g.Rng.Seed(), cfg)
	}

	if *headless {
		runHeadless(g, *ticks)
	} else {
		runWindow(g, logger)
	}

	if g.Recorder != nil {
		if err := g.Recorder.Log().Save(*recordPath); err != nil {
			logger.Fatal("failed to save replay", zap.String("path", *recordPath), zap.Error(err))
		}
		logger.Info("replay saved", zap.String("path", *recordPath), zap.Uint64("ticks", g.Tick()))
	}
}

func runWindow(g *app.Game, logger *zap.Logger) {
	sm := state.NewStateMachine()
	sm.SetState(state.NewArenaState(sm, g))
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tank Arena")
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run loop failed", zap.Error(err))
	}
}

func runHeadless(g *app.Game, ticks int) {
	for i := 0; !g.Finished() && (ticks == 0 || i < ticks); i++ {
		g.Update(fixedStep, input.Frame{})
	}
	w := g.World
	g.Logger.Info("headless run complete",
		zap.Uint64("ticks", g.Tick()),
		zap.Stringer("phase", w.Phase),
		zap.Int("player_health", w.Player.Health),
		zap.Int("live_enemies", w.LiveEnemies()),
		zap.String("checksum", fmt.Sprintf("%016x", g.Checksum())),
	)
}

func verify(path string, logger *zap.Logger) error {
	l, err := replay.Load(path)
	if err != nil {
		return err
	}
	err = replay.Verify(l, func(seed int64, cfg *config.Config) replay.Stepper {
		return app.NewMatch(cfg, seed, logger.WithOptions(zap.IncreaseLevel(zap.WarnLevel)))
	})
	if err != nil {
		return err
	}
	logger.Info("replay verified", zap.String("path", path), zap.Int("ticks", len(l.Frames)), zap.Int64("seed", l.Seed))
	return nil
}
