package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/akindepraise5/gameidea/internal/audio"
	"github.com/akindepraise5/gameidea/internal/config"
	"github.com/akindepraise5/gameidea/internal/game"
	"github.com/akindepraise5/gameidea/internal/loop"
	"github.com/akindepraise5/gameidea/internal/score"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	opts := loop.Options{
		Difficulty: game.ParseDifficulty(config.GetEnv("TYPEFALL_DIFFICULTY", "medium")),
	}

	// Sound is best-effort; headless terminals play silently.
	if cues, err := audio.NewPlayer(); err == nil {
		defer cues.Close()
		opts.Cues = cues
	}

	if store, err := score.NewFileStore(); err == nil {
		opts.Store = store
	}

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
