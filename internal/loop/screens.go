package loop

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/akindepraise5/gameidea/internal/draw"
	"github.com/akindepraise5/gameidea/internal/game"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	hudStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	streakStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	newHighStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	graphStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	healthHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	healthMidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	healthLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const gameTitle = "T Y P E F A L L"

// writeCentered writes a line horizontally centered on the canvas. width is
// the visible rune count, which differs from len(text) for styled strings.
func writeCentered(cw *draw.ChunkWriter, canvas *draw.Canvas, row int, text string, width int) {
	col := (canvas.TerminalWidth()-width)/2 + 1
	if col < 1 {
		col = 1
	}
	cw.WriteAt(col, row, text)
}

func drawStartScreen(cw *draw.ChunkWriter, canvas *draw.Canvas, mgr *game.Manager) {
	mid := canvas.TerminalHeight() / 2

	writeCentered(cw, canvas, mid-3, titleStyle.Render(gameTitle), len(gameTitle))

	sub := "type the falling words before they reach your ship"
	writeCentered(cw, canvas, mid-1, subtitleStyle.Render(sub), len(sub))

	if best := mgr.HighScore(); best > 0 {
		line := fmt.Sprintf("best score %d", best)
		writeCentered(cw, canvas, mid+1, dimStyle.Render(line), len(line))
	}

	controls := "space to start · esc to pause · ctrl+c to quit"
	writeCentered(cw, canvas, mid+3, dimStyle.Render(controls), len(controls))
}

func drawPauseOverlay(cw *draw.ChunkWriter, canvas *draw.Canvas) {
	mid := canvas.TerminalHeight() / 2
	msg := "P A U S E D"
	writeCentered(cw, canvas, mid, titleStyle.Render(msg), len(msg))
	hint := "esc to resume"
	writeCentered(cw, canvas, mid+2, dimStyle.Render(hint), len(hint))
}

// drawHUD renders the status line: score and wave on the left, streak and
// accuracy in the middle, health bar on the right.
func drawHUD(cw *draw.ChunkWriter, canvas *draw.Canvas, mgr *game.Manager) {
	stats := mgr.Stats()

	left := fmt.Sprintf("SCORE %d  WAVE %d", mgr.Score(), mgr.Wave())
	cw.WriteAt(2, 1, hudStyle.Render(left))

	middle := fmt.Sprintf("STREAK %d  ACC %d%%", stats.CurrentStreak, stats.Accuracy())
	writeCentered(cw, canvas, 1, streakStyle.Render(middle), len(middle))

	bar := healthBar(mgr.Health())
	col := canvas.TerminalWidth() - healthBarCells - 1
	if col < 1 {
		col = 1
	}
	cw.WriteAt(col, 1, bar)
}

const healthBarCells = 10

func healthBar(health int) string {
	filled := health / 10
	if filled < 0 {
		filled = 0
	}
	if filled > healthBarCells {
		filled = healthBarCells
	}

	style := healthHighStyle
	switch {
	case health <= 30:
		style = healthLowStyle
	case health <= 60:
		style = healthMidStyle
	}

	var b strings.Builder
	b.WriteString(style.Render(strings.Repeat(string(draw.BlockFull), filled)))
	b.WriteString(dimStyle.Render(strings.Repeat(string(draw.BlockLight), healthBarCells-filled)))
	return b.String()
}

func drawGameOverScreen(cw *draw.ChunkWriter, canvas *draw.Canvas, mgr *game.Manager) {
	sum := mgr.Summary()
	mid := canvas.TerminalHeight() / 2

	msg := "G A M E  O V E R"
	writeCentered(cw, canvas, mid-6, titleStyle.Render(msg), len(msg))

	score := fmt.Sprintf("score %d", sum.Score)
	writeCentered(cw, canvas, mid-4, hudStyle.Render(score), len(score))

	if sum.NewHigh {
		line := "new best!"
		writeCentered(cw, canvas, mid-3, newHighStyle.Render(line), len(line))
	} else {
		line := fmt.Sprintf("best %d", sum.HighScore)
		writeCentered(cw, canvas, mid-3, dimStyle.Render(line), len(line))
	}

	detail := fmt.Sprintf("accuracy %d%%  ·  max streak %d", sum.Accuracy, sum.MaxStreak)
	writeCentered(cw, canvas, mid-1, subtitleStyle.Render(detail), len(detail))

	drawHistoryGraph(cw, canvas, mid+1, mgr.Stats().ScoreHistory)

	hint := "space to play again · ctrl+c to quit"
	writeCentered(cw, canvas, canvas.TerminalHeight()-2, dimStyle.Render(hint), len(hint))
}

const (
	graphHeight  = 5
	graphMaxCols = 40
)

// drawHistoryGraph renders score-per-wave samples as a small bar chart under
// the game-over summary. Skipped when fewer than two waves were reached.
func drawHistoryGraph(cw *draw.ChunkWriter, canvas *draw.Canvas, topRow int, samples []int) {
	bars := historyBars(samples, graphHeight, graphMaxCols)
	if len(bars) < 2 {
		return
	}

	startCol := (canvas.TerminalWidth()-len(bars))/2 + 1
	if startCol < 1 {
		startCol = 1
	}

	for row := 0; row < graphHeight; row++ {
		// Rows render top-down; a bar of height h fills the bottom h rows.
		threshold := graphHeight - row
		var b strings.Builder
		for _, h := range bars {
			if h >= threshold {
				b.WriteRune(draw.BlockFull)
			} else {
				b.WriteByte(' ')
			}
		}
		cw.WriteAt(startCol, topRow+row, graphStyle.Render(b.String()))
	}

	label := "score by wave"
	writeCentered(cw, canvas, topRow+graphHeight, dimStyle.Render(label), len(label))
}

// historyBars scales samples to bar heights in [1, height]. Only the last
// maxCols samples are kept. A zero sample still gets a one-cell bar so every
// wave is visible.
func historyBars(samples []int, height, maxCols int) []int {
	if len(samples) > maxCols {
		samples = samples[len(samples)-maxCols:]
	}
	if len(samples) == 0 {
		return nil
	}

	max := 0
	for _, s := range samples {
		if s > max {
			max = s
		}
	}

	bars := make([]int, len(samples))
	for i, s := range samples {
		if max == 0 {
			bars[i] = 1
			continue
		}
		h := s * height / max
		if h < 1 {
			h = 1
		}
		bars[i] = h
	}
	return bars
}
