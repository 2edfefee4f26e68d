package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Default window and simulation values. The arena is large enough for a full
// 200-step ray in every direction from its centre.
const (
	defaultWidth       = 900
	defaultHeight      = 900
	defaultWindowScale = 1
	defaultTitle       = "Robot Maze"
	defaultTPS         = 60
	defaultRobotSize   = 80
	defaultBrushRadius = 6
	defaultWallKeepOut = 120
)

var (
	ErrInvalidSize   = errors.New("window dimensions must be positive")
	ErrInvalidRobot  = errors.New("robot dimensions must be positive and fit the window")
	ErrInvalidStart  = errors.New("start position must keep the robot on the canvas")
	ErrInvalidBrush  = errors.New("brush radius must not be negative")
	ErrInvalidTicker = errors.New("ticks per second must be positive")
)

// Window describes the canvas and the OS window hosting it.
type Window struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	Title  string  `yaml:"title"`
	TPS    int     `yaml:"tps"`
}

// Robot describes the body and starting pose. Sensor geometry is fixed.
type Robot struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// StartX and StartY are the top-left corner; nil centres the robot on
	// the canvas.
	StartX      *float64 `yaml:"start_x,omitempty"`
	StartY      *float64 `yaml:"start_y,omitempty"`
	Orientation float64  `yaml:"orientation"`
	Sprite      string   `yaml:"sprite"`
	Autopilot   bool     `yaml:"autopilot"`
}

// Walls controls painting and generated obstacles.
type Walls struct {
	BrushRadius int   `yaml:"brush_radius"`
	Random      bool  `yaml:"random"`
	Seed        int64 `yaml:"seed"`
	Segments    int   `yaml:"segments"`
	KeepOut     int   `yaml:"keep_out"`
}

// Config is the full runtime configuration.
type Config struct {
	Window   Window `yaml:"window"`
	Robot    Robot  `yaml:"robot"`
	Walls    Walls  `yaml:"walls"`
	Debug    bool   `yaml:"debug"`
	Audio    bool   `yaml:"audio"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Window: Window{
			Width:  defaultWidth,
			Height: defaultHeight,
			Scale:  defaultWindowScale,
			Title:  defaultTitle,
			TPS:    defaultTPS,
		},
		Robot: Robot{
			Width:     defaultRobotSize,
			Height:    defaultRobotSize,
			Autopilot: true,
		},
		Walls: Walls{
			BrushRadius: defaultBrushRadius,
			Segments:    12,
			KeepOut:     defaultWallKeepOut,
		},
		LogLevel: "info",
	}
}

// Load reads a YAML file over the defaults. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("opening config %q: %w", path, err)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decoding config %q: %w", path, err)
	}
	return cfg, nil
}

// Start returns the robot's top-left start corner, centring it on the
// canvas along any axis left unset.
func (c Config) Start() (x, y float64) {
	x = (float64(c.Window.Width) - c.Robot.Width) / 2
	y = (float64(c.Window.Height) - c.Robot.Height) / 2
	if c.Robot.StartX != nil {
		x = *c.Robot.StartX
	}
	if c.Robot.StartY != nil {
		y = *c.Robot.StartY
	}
	return x, y
}

// Validate checks the values the simulation depends on.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.Scale <= 0 {
		return fmt.Errorf("%w: %dx%d scale %.2f", ErrInvalidSize, c.Window.Width, c.Window.Height, c.Window.Scale)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTicker, c.Window.TPS)
	}
	if c.Robot.Width <= 0 || c.Robot.Height <= 0 ||
		c.Robot.Width > float64(c.Window.Width) || c.Robot.Height > float64(c.Window.Height) {
		return fmt.Errorf("%w: %.0fx%.0f", ErrInvalidRobot, c.Robot.Width, c.Robot.Height)
	}
	x, y := c.Start()
	if x < 0 || y < 0 || x > float64(c.Window.Width)-c.Robot.Width || y > float64(c.Window.Height)-c.Robot.Height {
		return fmt.Errorf("%w: (%.1f, %.1f) in %dx%d", ErrInvalidStart, x, y, c.Window.Width, c.Window.Height)
	}
	if c.Walls.BrushRadius < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBrush, c.Walls.BrushRadius)
	}
	return nil
}
