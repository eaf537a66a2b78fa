package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/diegok/pickleball/internal/game"
)

// Default values for configuration
const (
	DefaultDifficulty    = "medium"
	DefaultFPS           = game.TickRate
	MinFPS               = 1
	MaxFPS               = 240
	DefaultKeyHoldTicks  = game.KeyHoldTicks
	MinKeyHoldTicks      = 1
	MaxKeyHoldTicks      = 240
	DefaultLogFile       = "pickleball.log"
	DefaultLogLevel      = "info"
	DefaultLogMaxSize    = 10 // megabytes
	DefaultLogMaxBackups = 3
	DefaultLogMaxAge     = 28 // days

	EnvPrefix = "PICKLEBALL"
)

// LogConfig controls the rotating log file
type LogConfig struct {
	File       string
	Level      logrus.Level
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// Config holds the application configuration
type Config struct {
	Difficulty game.Difficulty
	FPS        int
	KeyHold    int   // Frames a key press stays held
	Seed       int64 // 0 picks a time-based seed
	Mute       bool
	Log        LogConfig
}

// flag name -> viper key
var flagKeys = map[string]string{
	"difficulty":      "difficulty",
	"fps":             "fps",
	"key-hold-ticks":  "key_hold_ticks",
	"seed":            "seed",
	"mute":            "mute",
	"log-file":        "log.file",
	"log-level":       "log.level",
	"log-max-size":    "log.max_size",
	"log-max-backups": "log.max_backups",
	"log-max-age":     "log.max_age",
	"log-compress":    "log.compress",
}

// RegisterFlags adds all configuration flags to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (yaml, json or toml)")
	fs.StringP("difficulty", "d", DefaultDifficulty, "AI difficulty: easy, medium or hard")
	fs.Int("fps", DefaultFPS, fmt.Sprintf("frames per second (%d-%d)", MinFPS, MaxFPS))
	fs.Int("key-hold-ticks", DefaultKeyHoldTicks, "frames a key press stays held, raise it if the paddle stutters while a key is held")
	fs.Int64("seed", 0, "random seed, 0 for time based")
	fs.Bool("mute", false, "disable sound")
	fs.String("log-file", DefaultLogFile, "log file path")
	fs.String("log-level", DefaultLogLevel, "log level: trace, debug, info, warn, error")
	fs.Int("log-max-size", DefaultLogMaxSize, "log file size in MB before rotation")
	fs.Int("log-max-backups", DefaultLogMaxBackups, "rotated log files to keep")
	fs.Int("log-max-age", DefaultLogMaxAge, "days to keep rotated log files")
	fs.Bool("log-compress", false, "gzip rotated log files")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("difficulty", DefaultDifficulty)
	v.SetDefault("fps", DefaultFPS)
	v.SetDefault("key_hold_ticks", DefaultKeyHoldTicks)
	v.SetDefault("seed", 0)
	v.SetDefault("mute", false)
	v.SetDefault("log.file", DefaultLogFile)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.max_size", DefaultLogMaxSize)
	v.SetDefault("log.max_backups", DefaultLogMaxBackups)
	v.SetDefault("log.max_age", DefaultLogMaxAge)
	v.SetDefault("log.compress", false)
}

// Load resolves the configuration from defaults, an optional config file,
// PICKLEBALL_* environment variables and the parsed flags, in increasing
// order of precedence.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if f := fs.Lookup("config"); f != nil && f.Value.String() != "" {
		v.SetConfigFile(f.Value.String())
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	difficulty, err := game.ParseDifficulty(v.GetString("difficulty"))
	if err != nil {
		return nil, fmt.Errorf("invalid difficulty: %w", err)
	}

	fps := v.GetInt("fps")
	if fps < MinFPS || fps > MaxFPS {
		return nil, fmt.Errorf("fps must be between %d and %d, got %d", MinFPS, MaxFPS, fps)
	}

	keyHold := v.GetInt("key_hold_ticks")
	if keyHold < MinKeyHoldTicks || keyHold > MaxKeyHoldTicks {
		return nil, fmt.Errorf("key hold ticks must be between %d and %d, got %d", MinKeyHoldTicks, MaxKeyHoldTicks, keyHold)
	}

	level, err := logrus.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	logFile := v.GetString("log.file")
	if logFile == "" {
		return nil, fmt.Errorf("log file must not be empty")
	}

	maxSize := v.GetInt("log.max_size")
	if maxSize < 1 {
		return nil, fmt.Errorf("log max size must be at least 1, got %d", maxSize)
	}

	cfg := &Config{
		Difficulty: difficulty,
		FPS:        fps,
		KeyHold:    keyHold,
		Seed:       v.GetInt64("seed"),
		Mute:       v.GetBool("mute"),
		Log: LogConfig{
			File:       logFile,
			Level:      level,
			MaxSize:    maxSize,
			MaxBackups: v.GetInt("log.max_backups"),
			MaxAge:     v.GetInt("log.max_age"),
			Compress:   v.GetBool("log.compress"),
		},
	}

	return cfg, nil
}
