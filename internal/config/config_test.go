package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/diegok/pickleball/internal/game"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

// parseArgs runs args through a fresh flag set the way the root command does
func parseArgs(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("pickleball", pflag.ContinueOnError)
	RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return Load(fs)
}

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := parseArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Difficulty != game.Medium {
		t.Errorf("expected medium difficulty, got %v", cfg.Difficulty)
	}
	if cfg.FPS != DefaultFPS {
		t.Errorf("expected fps %d, got %d", DefaultFPS, cfg.FPS)
	}
	if cfg.Seed != 0 {
		t.Errorf("expected seed 0, got %d", cfg.Seed)
	}
	if cfg.KeyHold != game.KeyHoldTicks {
		t.Errorf("expected key hold %d, got %d", game.KeyHoldTicks, cfg.KeyHold)
	}
	if cfg.Mute {
		t.Error("expected sound enabled by default")
	}
	if cfg.Log.File != DefaultLogFile {
		t.Errorf("expected log file %q, got %q", DefaultLogFile, cfg.Log.File)
	}
	if cfg.Log.Level != logrus.InfoLevel {
		t.Errorf("expected info level, got %v", cfg.Log.Level)
	}
	if cfg.Log.MaxSize != DefaultLogMaxSize {
		t.Errorf("expected max size %d, got %d", DefaultLogMaxSize, cfg.Log.MaxSize)
	}
}

func TestParseArgs_CustomOptions(t *testing.T) {
	args := []string{"--difficulty", "hard", "--fps", "30", "--seed", "1234", "--mute", "--log-file", "/tmp/pb.log", "--log-level", "debug", "--log-compress"}
	cfg, err := parseArgs(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Difficulty != game.Hard {
		t.Errorf("expected hard difficulty, got %v", cfg.Difficulty)
	}
	if cfg.FPS != 30 {
		t.Errorf("expected fps 30, got %d", cfg.FPS)
	}
	if cfg.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", cfg.Seed)
	}
	if !cfg.Mute {
		t.Error("expected mute")
	}
	if cfg.Log.File != "/tmp/pb.log" {
		t.Errorf("expected log file /tmp/pb.log, got %q", cfg.Log.File)
	}
	if cfg.Log.Level != logrus.DebugLevel {
		t.Errorf("expected debug level, got %v", cfg.Log.Level)
	}
	if !cfg.Log.Compress {
		t.Error("expected log compression")
	}
}

func TestParseArgs_ShortDifficulty(t *testing.T) {
	cfg, err := parseArgs([]string{"-d", "easy"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Difficulty != game.Easy {
		t.Errorf("expected easy difficulty, got %v", cfg.Difficulty)
	}
}

func TestParseArgs_Environment(t *testing.T) {
	t.Setenv("PICKLEBALL_DIFFICULTY", "easy")
	t.Setenv("PICKLEBALL_LOG_LEVEL", "warn")

	cfg, err := parseArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Difficulty != game.Easy {
		t.Errorf("expected easy difficulty from env, got %v", cfg.Difficulty)
	}
	if cfg.Log.Level != logrus.WarnLevel {
		t.Errorf("expected warn level from env, got %v", cfg.Log.Level)
	}
}

func TestParseArgs_ConfigFile(t *testing.T) {
	path := writeConfigFile(t, "pickleball.yaml", "difficulty: hard\nfps: 45\nlog:\n  level: error\n  max_backups: 9\n")

	cfg, err := parseArgs([]string{"--config", path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Difficulty != game.Hard {
		t.Errorf("expected hard difficulty from file, got %v", cfg.Difficulty)
	}
	if cfg.FPS != 45 {
		t.Errorf("expected fps 45 from file, got %d", cfg.FPS)
	}
	if cfg.Log.Level != logrus.ErrorLevel {
		t.Errorf("expected error level from file, got %v", cfg.Log.Level)
	}
	if cfg.Log.MaxBackups != 9 {
		t.Errorf("expected 9 backups from file, got %d", cfg.Log.MaxBackups)
	}
}

func TestParseArgs_Precedence(t *testing.T) {
	path := writeConfigFile(t, "pickleball.yaml", "difficulty: easy\nfps: 20\nseed: 5\n")
	t.Setenv("PICKLEBALL_FPS", "25")
	t.Setenv("PICKLEBALL_DIFFICULTY", "medium")

	cfg, err := parseArgs([]string{"--config", path, "--difficulty", "hard"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Difficulty != game.Hard {
		t.Errorf("expected flag to beat env and file, got %v", cfg.Difficulty)
	}
	if cfg.FPS != 25 {
		t.Errorf("expected env to beat file, got %d", cfg.FPS)
	}
	if cfg.Seed != 5 {
		t.Errorf("expected file to beat default, got %d", cfg.Seed)
	}
}

func TestParseArgs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown difficulty", []string{"--difficulty", "insane"}},
		{"fps zero", []string{"--fps", "0"}},
		{"fps too high", []string{"--fps", "241"}},
		{"key hold zero", []string{"--key-hold-ticks", "0"}},
		{"key hold too long", []string{"--key-hold-ticks", "241"}},
		{"bad log level", []string{"--log-level", "chatty"}},
		{"empty log file", []string{"--log-file", ""}},
		{"log max size zero", []string{"--log-max-size", "0"}},
		{"missing config file", []string{"--config", "/nonexistent/pickleball.yaml"}},
		{"unknown flag", []string{"--server"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseArgs(tt.args); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestParseArgs_FPSBoundaries(t *testing.T) {
	tests := []struct {
		name string
		fps  string
		want int
	}{
		{"minimum fps", "1", MinFPS},
		{"maximum fps", "240", MaxFPS},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseArgs([]string{"--fps", tt.fps})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.FPS != tt.want {
				t.Errorf("expected fps %d, got %d", tt.want, cfg.FPS)
			}
		})
	}
}

func TestParseArgs_KeyHold(t *testing.T) {
	cfg, err := parseArgs([]string{"--key-hold-ticks", "45"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.KeyHold != 45 {
		t.Errorf("expected key hold 45, got %d", cfg.KeyHold)
	}

	t.Setenv("PICKLEBALL_KEY_HOLD_TICKS", "12")
	cfg, err = parseArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.KeyHold != 12 {
		t.Errorf("expected key hold 12 from env, got %d", cfg.KeyHold)
	}
}
