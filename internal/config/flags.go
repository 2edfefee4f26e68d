package config

import "flag"

// Flags holds command-line overrides. Only flags set explicitly on the
// command line replace values loaded from the config file.
type Flags struct {
	fs *flag.FlagSet

	// ConfigPath points at an optional YAML file.
	ConfigPath string
	// CPUProfile writes a CPU profile for the whole run when set.
	CPUProfile string

	width       int
	height      int
	scale       float64
	sprite      string
	autopilot   bool
	randomWalls bool
	seed        int64
	brushRadius int
	debug       bool
	audio       bool
	logLevel    string
}

// BindFlags registers every override on fs.
func BindFlags(fs *flag.FlagSet) *Flags {
	d := Default()
	f := &Flags{fs: fs}
	fs.StringVar(&f.ConfigPath, "config", "", "path to a YAML config file")
	fs.StringVar(&f.CPUProfile, "cpuprofile", "", "write a CPU profile to this file")
	fs.IntVar(&f.width, "width", d.Window.Width, "canvas width in pixels")
	fs.IntVar(&f.height, "height", d.Window.Height, "canvas height in pixels")
	fs.Float64Var(&f.scale, "scale", d.Window.Scale, "window scale factor")
	fs.StringVar(&f.sprite, "sprite", d.Robot.Sprite, "robot sprite image (bmp or png)")
	fs.BoolVar(&f.autopilot, "autopilot", d.Robot.Autopilot, "steer away from walls using the proximity sensors")
	fs.BoolVar(&f.randomWalls, "random-walls", d.Walls.Random, "scatter random wall segments at startup")
	fs.Int64Var(&f.seed, "seed", d.Walls.Seed, "seed for random walls (0 uses the clock)")
	fs.IntVar(&f.brushRadius, "brush", d.Walls.BrushRadius, "wall brush radius in pixels")
	fs.BoolVar(&f.debug, "debug", d.Debug, "show pose, sensor and FPS overlay")
	fs.BoolVar(&f.audio, "audio", d.Audio, "play a proximity tone while the forward sensor is blocked")
	fs.StringVar(&f.logLevel, "log-level", d.LogLevel, "log level (debug, info, warn, error)")
	return f
}

// Apply copies explicitly set flags onto cfg.
func (f *Flags) Apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "width":
			cfg.Window.Width = f.width
		case "height":
			cfg.Window.Height = f.height
		case "scale":
			cfg.Window.Scale = f.scale
		case "sprite":
			cfg.Robot.Sprite = f.sprite
		case "autopilot":
			cfg.Robot.Autopilot = f.autopilot
		case "random-walls":
			cfg.Walls.Random = f.randomWalls
		case "seed":
			cfg.Walls.Seed = f.seed
		case "brush":
			cfg.Walls.BrushRadius = f.brushRadius
		case "debug":
			cfg.Debug = f.debug
		case "audio":
			cfg.Audio = f.audio
		case "log-level":
			cfg.LogLevel = f.logLevel
		}
	})
}
