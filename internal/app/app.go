package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/diegok/pickleball/internal/audio"
	"github.com/diegok/pickleball/internal/game"
	"github.com/diegok/pickleball/internal/logging"
	"github.com/diegok/pickleball/internal/protocol"
	"github.com/diegok/pickleball/internal/ui"
)

// ErrNoRand is returned when no random source is supplied
var ErrNoRand = errors.New("no random source")

// Options configures an App. Zero values pick sensible defaults.
type Options struct {
	Difficulty game.Difficulty
	FPS        int
	KeyHold    int    // Frames a key press stays held, 0 for the default
	Notice     string // Shown before the menu until a key is pressed
	Rand       game.Rand
	Audio      *audio.Player
	Logger     logrus.FieldLogger
}

// App is the main application controller that manages the game lifecycle.
// Everything except event polling runs on the loop goroutine, so no state
// here is shared.
type App struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	match    *game.Match
	input    *game.Input
	audio    *audio.Player
	log      logrus.FieldLogger
	matchLog *logrus.Entry

	fps        int
	keyHold    int
	selected   game.Difficulty
	lastResult string
	notice     string
	ticker     *time.Ticker
}

// New creates an App drawing on screen
func New(screen *ui.Screen, opts Options) (*App, error) {
	if screen == nil {
		return nil, ui.ErrNoScreen
	}
	if opts.Rand == nil {
		return nil, ErrNoRand
	}
	if opts.FPS <= 0 {
		opts.FPS = game.TickRate
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Audio == nil {
		opts.Audio, _ = audio.NewPlayer(true)
	}

	return &App{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		match:    game.NewMatch(opts.Rand),
		input:    &game.Input{HoldTicks: opts.KeyHold},
		audio:    opts.Audio,
		log:      opts.Logger,
		fps:      opts.FPS,
		keyHold:  opts.KeyHold,
		selected: opts.Difficulty,
		notice:   opts.Notice,
	}, nil
}

// Run drives the menu and matches until the user quits or ctx is cancelled.
// The screen is finalised before Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.pollEvents(gctx, events)
		return nil
	})
	g.Go(func() error {
		defer cancel()
		return a.loop(gctx, events)
	})

	return g.Wait()
}

// pollEvents forwards screen events until the screen is finalised
func (a *App) pollEvents(ctx context.Context, out chan<- tcell.Event) {
	defer close(out)
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) loop(ctx context.Context, events <-chan tcell.Event) error {
	// Fini unblocks PollEvent
	defer a.screen.Fini()
	defer a.stopTicker()

	a.log.WithFields(logrus.Fields{
		"fps":   a.fps,
		"sound": a.audio.Enabled(),
	}).Info("game started")
	a.render()

	for {
		select {
		case <-ctx.Done():
			a.log.Info("game cancelled")
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.handleEvent(ev) {
				a.log.Info("game quit")
				return nil
			}

		case <-a.tick():
			a.step()
		}
	}
}

// tick is nil outside of play so the loop sleeps until the next event
func (a *App) tick() <-chan time.Time {
	if a.ticker == nil {
		return nil
	}
	return a.ticker.C
}

func (a *App) syncTicker() {
	playing := a.match.Phase == protocol.PhasePlaying
	switch {
	case playing && a.ticker == nil:
		a.ticker = time.NewTicker(time.Second / time.Duration(a.fps))
	case !playing && a.ticker != nil:
		a.stopTicker()
	}
}

func (a *App) stopTicker() {
	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
	}
}

// step advances the match by one frame
func (a *App) step() {
	ev := a.match.Step(a.input)
	a.input.Tick()
	a.playCues(ev)
	a.logEvents(ev)

	if ev.GameOver {
		a.finishMatch()
	}
	a.syncTicker()
	a.render()
}

func (a *App) playCues(ev game.Events) {
	for _, c := range audio.CuesFor(ev) {
		a.audio.Play(c)
		if a.matchLog != nil {
			a.matchLog.WithField("cue", c.String()).Trace("cue played")
		}
	}
}

func (a *App) logEvents(ev game.Events) {
	if a.matchLog == nil {
		return
	}
	if ev.PaddleHit != protocol.SideNone {
		a.matchLog.WithFields(logrus.Fields{
			"side":  ev.PaddleHit.String(),
			"speed": a.match.Ball.Speed,
			"rally": a.match.Rally,
		}).Debug("paddle hit")
	}
	if ev.Scorer != protocol.SideNone {
		a.matchLog.WithFields(logrus.Fields{
			"scorer":       ev.Scorer.String(),
			"player_score": a.match.PlayerScore(),
			"ai_score":     a.match.AIScore(),
			"max_rally":    a.match.MaxRally,
		}).Info("point scored")
	}
}

func (a *App) finishMatch() {
	over := a.match.GameOverState()
	outcome := "lost"
	if over.Winner == protocol.SideLeft {
		outcome = "won"
	}
	a.lastResult = fmt.Sprintf("Last match: you %s %d-%d (%s, longest rally %d)",
		outcome, over.PlayerScore, over.AIScore, over.Difficulty, over.MaxRally)

	if a.matchLog != nil {
		a.matchLog.WithFields(logrus.Fields{
			"winner":       over.Winner.String(),
			"player_score": over.PlayerScore,
			"ai_score":     over.AIScore,
			"max_rally":    over.MaxRally,
			"ticks":        a.match.Tick,
		}).Info("match over")
	}
}

func (a *App) startMatch(d game.Difficulty) {
	if !a.match.Start(d) {
		return
	}
	a.input = &game.Input{HoldTicks: a.keyHold}
	a.matchLog = logging.ForMatch(a.log, d.String())
	a.matchLog.Info("match started")
}

// handleEvent processes a screen event and reports whether to quit
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		if a.notice != "" {
			// Any other key dismisses the notice
			a.notice = ""
			break
		}
		a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		if a.match.Phase == protocol.PhasePlaying {
			_, y := ev.Position()
			a.input.Point(a.renderer.CourtY(y, game.CourtHeight))
		}
		return false
	}

	a.syncTicker()
	a.render()
	return false
}

func (a *App) handleKey(key tcell.Key, r rune) {
	switch a.match.Phase {
	case protocol.PhaseMenu:
		a.handleMenuKey(key, r)

	case protocol.PhasePlaying:
		switch {
		case ui.IsPauseKey(key, r):
			a.match.Pause()
			a.matchLog.Debug("match paused")
		case ui.IsMenuKey(key):
			a.abandonMatch()
		default:
			if dir := ui.KeyToDirection(key, r); dir != protocol.DirNone {
				a.input.Press(dir)
			}
		}

	case protocol.PhasePaused:
		switch {
		case ui.IsPauseKey(key, r):
			a.match.Resume()
			a.matchLog.Debug("match resumed")
		case ui.IsMenuKey(key):
			a.abandonMatch()
		}

	case protocol.PhaseGameOver:
		switch {
		case ui.IsStartKey(key):
			a.startMatch(a.match.Difficulty)
		case ui.IsMenuKey(key):
			a.match.ReturnToMenu()
		}
	}
}

func (a *App) handleMenuKey(key tcell.Key, r rune) {
	if ui.IsStartKey(key) {
		a.startMatch(a.selected)
		return
	}
	if d, ok := ui.KeyToDifficulty(key, r); ok {
		a.selected = d
		return
	}
	switch ui.KeyToCycle(key, r) {
	case -1:
		a.selected = a.selected.Prev()
	case 1:
		a.selected = a.selected.Next()
	}
}

func (a *App) abandonMatch() {
	a.matchLog.WithFields(logrus.Fields{
		"player_score": a.match.PlayerScore(),
		"ai_score":     a.match.AIScore(),
	}).Info("match abandoned")
	a.match.ReturnToMenu()
}

func (a *App) menuState() protocol.MenuState {
	difficulties := game.Difficulties()
	options := make([]string, len(difficulties))
	for i, d := range difficulties {
		options[i] = d.String()
	}
	return protocol.MenuState{
		Selected:   a.selected.String(),
		Options:    options,
		LastResult: a.lastResult,
	}
}

func (a *App) render() {
	if a.notice != "" {
		a.renderer.RenderError(a.notice)
		return
	}
	switch a.match.Phase {
	case protocol.PhaseMenu:
		a.renderer.RenderMenu(a.menuState())
	case protocol.PhasePlaying:
		a.renderer.RenderGame(a.match.Frame())
	case protocol.PhasePaused:
		a.renderer.RenderPaused(a.match.Frame())
	case protocol.PhaseGameOver:
		a.renderer.RenderGameOver(a.match.GameOverState())
	}
}
