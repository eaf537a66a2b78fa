package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/pickleball/internal/protocol"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █
	TrailChar  = '\u2022' // •
	NetChar    = '\u250A' // ┊
)

var (
	courtColor = colorful.Color{R: 0.05, G: 0.22, B: 0.14}
	ballColor  = colorful.Color{R: 1, G: 0.92, B: 0.25}

	courtBg     = toTcell(courtColor)
	playerStyle = tcell.StyleDefault.Background(courtBg).Foreground(tcell.ColorTeal)
	aiStyle     = tcell.StyleDefault.Background(courtBg).Foreground(tcell.ColorRed)
	statusStyle = tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
)

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// TrailColor returns the colour of trail sample i out of n, oldest first.
// Older samples fade into the court.
func TrailColor(i, n int) tcell.Color {
	if n <= 0 {
		return toTcell(ballColor)
	}
	t := float64(i+1) / float64(n+1)
	return toTcell(courtColor.BlendLab(ballColor, t))
}

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// playArea is the court region between the scoreboard and the status bar
func (r *Renderer) playArea() (w, h int) {
	w, h = r.screen.Size()
	return w, h - 2
}

func (r *Renderer) toScreen(x, y float64, f protocol.Frame) (int, int) {
	w, h := r.playArea()
	sx := int(x / f.CourtWidth * float64(w))
	sy := int(y/f.CourtHeight*float64(h)) + 1
	return sx, sy
}

// CourtY maps a screen row to a court y coordinate, clamped to the court.
// Used to drive the paddle from the mouse.
func (r *Renderer) CourtY(row int, courtHeight float64) float64 {
	_, h := r.playArea()
	if h < 1 {
		return courtHeight / 2
	}
	y := (float64(row-1) + 0.5) / float64(h) * courtHeight
	if y < 0 {
		return 0
	}
	if y > courtHeight {
		return courtHeight
	}
	return y
}

// RenderMenu displays the start menu
func (r *Renderer) RenderMenu(state protocol.MenuState) {
	r.screen.Clear()
	_, screenH := r.screen.Size()

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow)
	r.screen.DrawTextCentered(2, "=== PICKLEBALL ===", titleStyle)
	r.screen.DrawTextCentered(4, "You vs the computer, first to 11", tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.DrawTextCentered(7, "Difficulty", tcell.StyleDefault.Foreground(tcell.ColorTeal))
	parts := make([]string, len(state.Options))
	for i, opt := range state.Options {
		if opt == state.Selected {
			parts[i] = fmt.Sprintf("[%d %s]", i+1, strings.ToUpper(opt))
		} else {
			parts[i] = fmt.Sprintf(" %d %s ", i+1, opt)
		}
	}
	r.screen.DrawTextCentered(9, strings.Join(parts, "  "), tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	if state.LastResult != "" {
		r.screen.DrawTextCentered(12, state.LastResult, tcell.StyleDefault.Foreground(tcell.ColorGreen))
	}

	r.screen.DrawTextCentered(screenH-5, "Press ENTER to start", tcell.StyleDefault.Foreground(tcell.ColorGreen))
	r.screen.DrawTextCentered(screenH-4, "LEFT/RIGHT or 1-3 to pick difficulty", tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.DrawTextCentered(screenH-3, "W/S, arrows or mouse to move | P pause | ESC menu", tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.DrawTextCentered(screenH-2, "Press 'q' to quit", tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// RenderGame displays the game screen
func (r *Renderer) RenderGame(f protocol.Frame) {
	r.drawCourt(f)
	r.screen.Show()
}

// RenderPaused draws the frozen court with a pause box on top
func (r *Renderer) RenderPaused(f protocol.Frame) {
	r.drawCourt(f)
	screenW, screenH := r.screen.Size()

	boxW := 30
	boxH := 7
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2
	r.screen.DrawBox(boxX, boxY, boxW, boxH, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	fill := tcell.StyleDefault.Background(tcell.ColorDarkGray)
	r.screen.FillRect(boxX+1, boxY+1, boxW-2, boxH-2, fill, ' ')

	r.screen.DrawTextCentered(boxY+2, "PAUSED", fill.Foreground(tcell.ColorYellow).Bold(true))
	r.screen.DrawTextCentered(boxY+4, "Press P to resume", fill.Foreground(tcell.ColorGreen))

	r.screen.Show()
}

func (r *Renderer) drawCourt(f protocol.Frame) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	_, playH := r.playArea()

	courtStyle := tcell.StyleDefault.Background(courtBg)
	r.screen.FillRect(0, 1, screenW, playH, courtStyle, ' ')

	netStyle := courtStyle.Foreground(tcell.ColorLightGray)
	for y := 1; y < screenH-1; y++ {
		r.screen.SetCell(screenW/2, y, netStyle, NetChar)
	}

	r.renderScoreboard(f, screenW)

	n := len(f.Ball.Trail)
	for i, p := range f.Ball.Trail {
		x, y := r.toScreen(p.X, p.Y, f)
		if r.inCourt(x, y) {
			r.screen.SetCell(x, y, courtStyle.Foreground(TrailColor(i, n)), TrailChar)
		}
	}

	r.drawPaddle(f.Player, f, playerStyle)
	r.drawPaddle(f.AI, f, aiStyle)

	bx, by := r.toScreen(f.Ball.X, f.Ball.Y, f)
	if r.inCourt(bx, by) {
		r.screen.SetCell(bx, by, courtStyle.Foreground(toTcell(ballColor)), BallChar)
	}

	statusY := screenH - 1
	r.screen.FillRect(0, statusY, screenW, 1, statusStyle, ' ')
	status := fmt.Sprintf(" Rally: %d | Best: %d | Speed: %.1f | %s | First to %d",
		f.Rally, f.MaxRally, f.Ball.Speed, f.Difficulty, f.PointsToWin)
	r.screen.DrawText(0, statusY, status, statusStyle)
}

func (r *Renderer) inCourt(x, y int) bool {
	w, h := r.screen.Size()
	return x >= 0 && x < w && y >= 1 && y < h-1
}

func (r *Renderer) drawPaddle(p protocol.PaddleState, f protocol.Frame, style tcell.Style) {
	x, top := r.toScreen(p.X+p.Width/2, p.Y, f)
	_, bottom := r.toScreen(p.X, p.Y+p.Height, f)
	if bottom <= top {
		bottom = top + 1
	}
	for y := top; y < bottom; y++ {
		if r.inCourt(x, y) {
			r.screen.SetCell(x, y, style, PaddleChar)
		}
	}
}

// renderScoreboard draws the score line at top center
func (r *Renderer) renderScoreboard(f protocol.Frame, screenW int) {
	const (
		playerLabel = "YOU"
		aiLabel     = "CPU"
		separator   = " - "
	)
	playerScore := fmt.Sprintf("%d", f.PlayerScore)
	aiScore := fmt.Sprintf("%d", f.AIScore)
	text := fmt.Sprintf("[ %s %s%s%s %s ]", playerLabel, playerScore, separator, aiScore, aiLabel)
	x := (screenW - len(text)) / 2

	base := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)
	r.screen.DrawText(x, 0, text, base)
	r.screen.DrawText(x+2, 0, playerLabel, base.Foreground(tcell.ColorTeal))
	r.screen.DrawText(x+len(text)-2-len(aiLabel), 0, aiLabel, base.Foreground(tcell.ColorRed))
}

// RenderGameOver displays the game over screen
func (r *Renderer) RenderGameOver(state protocol.GameOverState) {
	r.screen.Clear()
	_, screenH := r.screen.Size()

	r.screen.DrawTextCentered(screenH/2-5, "=== GAME OVER ===", tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow))

	winner := "CPU WINS!"
	winnerStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	if state.Winner == protocol.SideLeft {
		winner = "YOU WIN!"
		winnerStyle = tcell.StyleDefault.Foreground(tcell.ColorTeal).Bold(true)
	}
	r.screen.DrawTextCentered(screenH/2-3, winner, winnerStyle)

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawTextCentered(screenH/2-1, fmt.Sprintf("Final Score: %d - %d", state.PlayerScore, state.AIScore), white)
	r.screen.DrawTextCentered(screenH/2, fmt.Sprintf("Longest rally: %d", state.MaxRally), white)
	r.screen.DrawTextCentered(screenH/2+1, fmt.Sprintf("Difficulty: %s", state.Difficulty), white)

	r.screen.DrawTextCentered(screenH/2+4, "ENTER play again | ESC menu | 'q' quit", tcell.StyleDefault.Foreground(tcell.ColorGreen))

	r.screen.Show()
}

// RenderError displays an error screen
func (r *Renderer) RenderError(err string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	r.screen.DrawTextCentered(screenH/2-2, "ERROR", tcell.StyleDefault.Bold(true).Foreground(tcell.ColorRed))

	r.screen.DrawTextCentered(screenH/2, truncate(err, screenW-4), tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.screen.DrawTextCentered(screenH/2+3, "Press any key to continue", tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// truncate shortens s to at most max runes, ending in "..." when cut
func truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 3 || len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
