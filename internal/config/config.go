// Package config loads runtime settings from an optional YAML file and
// SKYRAID_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/tomz197/skyraid/internal/audio"
)

// EnvPrefix is prepended to every environment variable, e.g. SKYRAID_SSH_PORT.
const EnvPrefix = "SKYRAID"

// PathEnv names the variable holding the config file path when no path is
// passed to Load.
const PathEnv = EnvPrefix + "_CONFIG"

// ErrInvalid is returned, wrapped, when a loaded setting is out of range.
var ErrInvalid = errors.New("invalid configuration")

// Config holds every runtime setting.
type Config struct {
	SSH     SSHConfig     `mapstructure:"ssh"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Log     LogConfig     `mapstructure:"log"`
	Game    GameConfig    `mapstructure:"game"`
	Session SessionConfig `mapstructure:"session"`
}

// SSHConfig configures the SSH server.
type SSHConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	HostKey string `mapstructure:"host_key"`
}

// MetricsConfig configures the Prometheus endpoint. An empty Addr disables it.
type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

// LogConfig configures logging. An empty File means the binary's default
// destination.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// GameConfig configures the game session.
type GameConfig struct {
	Seed int64    `mapstructure:"seed"` // 0 picks a time-based seed per game
	FPS  int      `mapstructure:"fps"`
	Bell []string `mapstructure:"bell"` // Sound effects that ring the terminal bell
}

// SessionConfig configures SSH sessions.
type SessionConfig struct {
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ssh.host", "::")
	v.SetDefault("ssh.port", 2222)
	v.SetDefault("ssh.host_key", ".ssh/skyraid_ed25519")
	v.SetDefault("metrics.addr", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.fps", 60)
	v.SetDefault("game.bell", []string{})
	v.SetDefault("session.idle_timeout", 2*time.Minute)
}

// Load reads the config file at path, or at $SKYRAID_CONFIG when path is
// empty, then applies environment overrides and validates the result. With no
// file at all the defaults are used.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.SSH.Port < 1 || c.SSH.Port > 65535 {
		return fmt.Errorf("%w: ssh.port %d out of range", ErrInvalid, c.SSH.Port)
	}
	if c.Game.FPS < 1 || c.Game.FPS > 240 {
		return fmt.Errorf("%w: game.fps %d out of range", ErrInvalid, c.Game.FPS)
	}
	if c.Session.IdleTimeout < 0 {
		return fmt.Errorf("%w: session.idle_timeout is negative", ErrInvalid)
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := c.Game.BellEffects(); err != nil {
		return fmt.Errorf("%w: game.bell: %w", ErrInvalid, err)
	}
	return nil
}

// Addr returns the host:port the SSH server listens on.
func (s SSHConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// FrameTime is the duration of one frame at the configured rate.
func (g GameConfig) FrameTime() time.Duration {
	return time.Second / time.Duration(g.FPS)
}

// BellEffects parses the configured bell effect names.
func (g GameConfig) BellEffects() ([]audio.Effect, error) {
	effects := make([]audio.Effect, 0, len(g.Bell))
	for _, name := range g.Bell {
		e, err := audio.ParseEffect(name)
		if err != nil {
			return nil, err
		}
		effects = append(effects, e)
	}
	return effects, nil
}

// NewRand returns the random source for one game: seeded from Seed when it is
// set, otherwise from the clock.
func (g GameConfig) NewRand() *rand.Rand {
	seed := uint64(g.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}
