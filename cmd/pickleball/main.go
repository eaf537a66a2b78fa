package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/diegok/pickleball/internal/app"
	"github.com/diegok/pickleball/internal/audio"
	"github.com/diegok/pickleball/internal/config"
	"github.com/diegok/pickleball/internal/logging"
	"github.com/diegok/pickleball/internal/ui"
)

var errNotTerminal = errors.New("pickleball needs an interactive terminal")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pickleball",
		Short: "Terminal pickleball against the computer",
		Long: `Play a single match of pickleball against a computer opponent, first to 11.

Move with W/S, the arrow keys or the mouse. P pauses, ESC returns to the
menu and q quits. Settings can also come from a config file or
PICKLEBALL_* environment variables.`,
		Example: `  pickleball
  pickleball -d hard
  pickleball --mute --log-level debug
  PICKLEBALL_DIFFICULTY=easy pickleball`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	log, logCloser := logging.New(cfg.Log)
	defer logCloser.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithFields(logrus.Fields{
		"difficulty": cfg.Difficulty.String(),
		"fps":        cfg.FPS,
		"key_hold":   cfg.KeyHold,
		"seed":       seed,
		"mute":       cfg.Mute,
	}).Info("starting pickleball")

	var notice string
	player, err := audio.NewPlayer(cfg.Mute)
	if err != nil {
		log.WithError(err).Warn("audio unavailable, playing without sound")
		notice = fmt.Sprintf("audio unavailable, playing without sound: %v", err)
	}
	defer player.Close()

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	application, err := app.New(screen, app.Options{
		Difficulty: cfg.Difficulty,
		FPS:        cfg.FPS,
		KeyHold:    cfg.KeyHold,
		Notice:     notice,
		Rand:       rand.New(rand.NewSource(seed)),
		Audio:      player,
		Logger:     log,
	})
	if err != nil {
		screen.Fini()
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		log.WithError(err).Error("game failed")
		return err
	}
	return nil
}
