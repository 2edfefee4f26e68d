package game

import (
	"fmt"
	"image"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"

	"robotmaze/internal/canvas"
	"robotmaze/internal/config"
	"robotmaze/internal/robot"
)

const audioPlayerBufferLatency = 60 * time.Millisecond

// Game wires the canvas, the robot controller and the ebiten loop together.
type Game struct {
	cfg config.Config
	log *zap.Logger

	canvas *canvas.Canvas
	ctrl   *robot.Controller
	start  robot.Pose

	keys  keyTracker
	brush brushState

	sprite *ebiten.Image

	levelRand   *rand.Rand
	lastSensors robot.Sensors

	audioCtx    *audio.Context
	tone        *proximityTone
	audioPlayer *audio.Player
}

// New constructs a fully initialized Game from cfg.
func New(cfg config.Config, log *zap.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	geo := robot.DefaultGeometry()
	geo.Width = cfg.Robot.Width
	geo.Height = cfg.Robot.Height

	sx, sy := cfg.Start()
	start := robot.Pose{
		Position:    r2.Vec{X: sx, Y: sy},
		Orientation: cfg.Robot.Orientation,
	}
	seed := cfg.Walls.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:       cfg,
		log:       log,
		canvas:    canvas.New(cfg.Window.Width, cfg.Window.Height),
		ctrl:      robot.NewController(geo, start),
		start:     start,
		levelRand: rand.New(rand.NewSource(seed)),
	}
	g.ctrl.SetAutopilot(cfg.Robot.Autopilot)

	img, err := loadSprite(cfg.Robot.Sprite)
	if err != nil {
		log.Warn("sprite unavailable, using placeholder", zap.String("path", cfg.Robot.Sprite), zap.Error(err))
		img = placeholderSprite(int(geo.Width), int(geo.Height))
	}
	g.sprite = ebiten.NewImageFromImage(img)

	if cfg.Walls.Random {
		g.generateWalls()
	}
	if cfg.Audio {
		g.startAudio()
	}
	log.Info("simulation ready",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Bool("autopilot", cfg.Robot.Autopilot),
		zap.Int("ray_length", geo.RayLength))
	return g, nil
}

func (g *Game) startAudio() {
	g.audioCtx = audio.NewContext(toneSampleRate)
	g.tone = newProximityTone(toneSampleRate)
	player, err := g.audioCtx.NewPlayer(g.tone)
	if err != nil {
		g.log.Warn("audio player creation failed", zap.Error(err))
		g.tone = nil
		return
	}
	g.audioPlayer = player
	g.audioPlayer.SetBufferSize(audioPlayerBufferLatency)
	g.audioPlayer.Play()
}

// generateWalls replaces the canvas with fresh wall segments while keeping the
// robot's surroundings clear.
func (g *Game) generateWalls() {
	g.canvas.Clear()
	opts := canvas.DefaultWallOptions()
	opts.Segments = g.cfg.Walls.Segments
	c := g.ctrl.Pose().Center(g.ctrl.Geometry())
	opts.Keep = image.Point{X: int(c.X), Y: int(c.Y)}
	opts.KeepRadius = g.cfg.Walls.KeepOut
	n := canvas.GenerateWalls(g.canvas, g.levelRand, opts)
	g.log.Info("generated walls", zap.Int("segments", opts.Segments), zap.Int("pixels", n))
}

// Update reads input, paints walls and advances the robot by one tick.
func (g *Game) Update() error {
	if quitRequested() {
		return ebiten.Termination
	}
	g.handleHotkeys()
	g.handleBrush()

	in := g.keys.update(justPressedInputs(), justReleasedInputs())
	t := g.ctrl.Tick(in, g.canvas)

	if g.tone != nil {
		g.tone.SetBlocked(t.Sensors.Forward)
	}
	if t.Sensors != g.lastSensors {
		g.log.Debug("sensors changed",
			zap.Bool("forward", t.Sensors.Forward),
			zap.Bool("left", t.Sensors.Left),
			zap.Bool("right", t.Sensors.Right))
		g.lastSensors = t.Sensors
	}
	return nil
}

// Layout reports the logical screen size used by ebiten.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.canvas.Size()
}

// Close stops audio playback.
func (g *Game) Close() error {
	if g.audioPlayer != nil {
		return g.audioPlayer.Close()
	}
	return nil
}
