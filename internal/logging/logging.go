// Package logging sets up the structured logger. The terminal belongs to the
// game screen, so log output always goes to a rotating file.
package logging

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/diegok/pickleball/internal/config"
)

// New returns a JSON logger writing to the rotating file described by cfg.
// The returned closer flushes and closes the file.
func New(cfg config.LogConfig) (*logrus.Logger, io.Closer) {
	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	return NewWithWriter(rotator, cfg.Level), rotator
}

// NewWithWriter returns a JSON logger writing to w
func NewWithWriter(w io.Writer, level logrus.Level) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(w)
	log.SetLevel(level)
	return log
}

// Discard returns a logger that drops everything
func Discard() *logrus.Logger {
	return NewWithWriter(io.Discard, logrus.PanicLevel)
}

// ForMatch tags entries with a fresh match id and the difficulty
func ForMatch(log logrus.FieldLogger, difficulty string) *logrus.Entry {
	return log.WithFields(logrus.Fields{
		"match":      uuid.NewString(),
		"difficulty": difficulty,
	})
}
