// Package loop provides the frame scheduler: a fixed-rate input → tick →
// render cycle around one game manager. The loop is the sole driver; the
// manager never schedules itself.
package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/akindepraise5/gameidea/internal/draw"
	"github.com/akindepraise5/gameidea/internal/game"
	"github.com/akindepraise5/gameidea/internal/input"
	"github.com/akindepraise5/gameidea/internal/object"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// Maximum terminal region used for rendering; larger terminals get a centered
// play area instead of a stretched one.
const (
	maxRenderCols = 170
	maxRenderRows = 52
)

// Options configures a game session.
type Options struct {
	TermSizeFunc draw.TermSizeFunc
	Cues         game.CuePlayer
	Store        game.ScoreStore
	Difficulty   game.Difficulty
	Rand         *rand.Rand
}

// Run drives one complete game session on the given terminal until the player
// quits or the input stream closes. One logic tick and one render pass per
// frame; pausing keeps the loop alive with no-op ticks.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}

	mgr := game.New(game.Options{
		Rand:  opts.Rand,
		Cues:  opts.Cues,
		Store: opts.Store,
		Words: game.WordsFor(opts.Difficulty),
	})

	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termW, termH, err := opts.TermSizeFunc()
	if err != nil {
		return err
	}
	canvas := draw.NewScaledCanvas(renderSize(termW, termH))
	base := draw.NewChunkWriter(w, 0, 0)    // Shapes layer
	overlay := draw.NewChunkWriter(w, 0, 0) // Text layer, flushed after shapes

	for {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		keys, closed := stream.Poll()
		if closed {
			break
		}
		if quit := applyInput(mgr, keys); quit {
			break
		}

		// ===== UPDATE PHASE =====
		updateScreen(opts.TermSizeFunc, canvas, base, overlay)
		mgr.Tick()

		// ===== DRAW PHASE =====
		if err := drawFrame(mgr, canvas, base, overlay); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// applyInput routes decoded keys to the manager. Returns true on quit.
// Letters are combat input while running; space/enter starts a game from the
// idle and game-over screens; escape toggles pause.
func applyInput(mgr *game.Manager, keys []input.Key) (quit bool) {
	for _, k := range keys {
		switch k.Kind {
		case input.KeyQuit:
			return true
		case input.KeyLetter:
			mgr.HandleInput(k.Letter)
		case input.KeySpace, input.KeyEnter:
			switch mgr.Phase() {
			case game.PhaseIdle, game.PhaseEnded:
				mgr.Start()
			}
		case input.KeyEscape:
			mgr.TogglePause()
		}
	}
	return false
}

// renderSize clamps the terminal to the maximum render region and keeps the
// logical world dimensions.
func renderSize(termW, termH int) (int, int, float64, float64) {
	if termW > maxRenderCols {
		termW = maxRenderCols
	}
	if termH > maxRenderRows {
		termH = maxRenderRows
	}
	return termW, termH, game.WorldWidth, game.WorldHeight
}

// updateScreen tracks terminal resizes, re-centering the render region.
func updateScreen(sizeFunc draw.TermSizeFunc, canvas *draw.Canvas, base, overlay *draw.ChunkWriter) {
	termW, termH, err := sizeFunc()
	if err != nil {
		return // Keep the previous size; the next frame may succeed
	}

	w, h, _, _ := renderSize(termW, termH)
	canvas.Resize(w, h)

	offCol := (termW - w) / 2
	offRow := (termH - h) / 2
	canvas.SetOffset(offCol, offRow)
	overlay.SetOffset(offCol, offRow)
	base.SetOffset(offCol, offRow)
}

// drawFrame renders one frame: shapes first, the text layer on top.
func drawFrame(mgr *game.Manager, canvas *draw.Canvas, base, overlay *draw.ChunkWriter) error {
	draw.ClearScreen(base)
	canvas.Clear()

	shakeX, shakeY := mgr.ShakeOffset()
	ctx := object.DrawContext{
		Canvas: canvas,
		Writer: overlay,
		World:  mgr.World(),
		ShakeX: shakeX,
		ShakeY: shakeY,
	}

	switch mgr.Phase() {
	case game.PhaseIdle:
		drawStartScreen(overlay, canvas, mgr)
	case game.PhaseRunning:
		mgr.Draw(ctx)
		drawHUD(overlay, canvas, mgr)
	case game.PhasePaused:
		mgr.Draw(ctx)
		drawHUD(overlay, canvas, mgr)
		drawPauseOverlay(overlay, canvas)
	case game.PhaseEnded:
		drawGameOverScreen(overlay, canvas, mgr)
	}

	canvas.Render(base)
	if err := base.Flush(); err != nil {
		return err
	}
	return overlay.Flush()
}
