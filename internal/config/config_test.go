package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "robot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 80.0, cfg.Robot.Width)
	assert.True(t, cfg.Robot.Autopilot)
	x, y := cfg.Start()
	assert.Equal(t, 410.0, x)
	assert.Equal(t, 410.0, y)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
window:
  width: 640
  height: 480
robot:
  start_x: 20
  autopilot: false
walls:
  random: true
  seed: 9
log_level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, "Robot Maze", cfg.Window.Title)
	x, y := cfg.Start()
	assert.Equal(t, 20.0, x)
	assert.Equal(t, 200.0, y, "unset axis is centred on the loaded window")
	assert.False(t, cfg.Robot.Autopilot)
	assert.True(t, cfg.Walls.Random)
	assert.Equal(t, int64(9), cfg.Walls.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(writeFile(t, "robot:\n  wheels: 4\n"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func ptr[T any](v T) *T { return &v }

func TestValidateStartEdges(t *testing.T) {
	cfg := Default()
	cfg.Robot.StartX, cfg.Robot.StartY = ptr(0.0), ptr(820.0)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, ErrInvalidSize},
		{"zero scale", func(c *Config) { c.Window.Scale = 0 }, ErrInvalidSize},
		{"zero tps", func(c *Config) { c.Window.TPS = 0 }, ErrInvalidTicker},
		{"robot too wide", func(c *Config) { c.Robot.Width = 2000 }, ErrInvalidRobot},
		{"robot zero height", func(c *Config) { c.Robot.Height = 0 }, ErrInvalidRobot},
		{"start left of canvas", func(c *Config) { c.Robot.StartX = ptr(-1.0) }, ErrInvalidStart},
		{"start past right edge", func(c *Config) { c.Robot.StartX = ptr(821.0) }, ErrInvalidStart},
		{"start past bottom edge", func(c *Config) { c.Robot.StartY = ptr(900.0) }, ErrInvalidStart},
		{"explicit start outside shrunk window", func(c *Config) {
			c.Robot.StartX, c.Robot.StartY = ptr(410.0), ptr(410.0)
			c.Window.Width, c.Window.Height = 400, 300
		}, ErrInvalidStart},
		{"negative brush", func(c *Config) { c.Walls.BrushRadius = -1 }, ErrInvalidBrush},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestFlagsOnlyApplyWhenSet(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"-autopilot=false", "-brush", "3", "-config", "x.yaml"}))

	cfg := Default()
	cfg.Window.Width = 640
	f.Apply(&cfg)

	assert.Equal(t, "x.yaml", f.ConfigPath)
	assert.False(t, cfg.Robot.Autopilot)
	assert.Equal(t, 3, cfg.Walls.BrushRadius)
	assert.Equal(t, 640, cfg.Window.Width, "unset flag must not clobber file value")
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "configs", "robotmaze.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestSmallWindowFlagsRecentreRobot(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"-width", "400", "-height", "300"}))

	cfg := Default()
	f.Apply(&cfg)
	require.NoError(t, cfg.Validate())
	x, y := cfg.Start()
	assert.Equal(t, 160.0, x)
	assert.Equal(t, 110.0, y)
	assert.LessOrEqual(t, x+cfg.Robot.Width, float64(cfg.Window.Width))
	assert.LessOrEqual(t, y+cfg.Robot.Height, float64(cfg.Window.Height))
}
