package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/vi-invaders/constants"
	"github.com/lixenwraith/vi-invaders/core"
	"github.com/lixenwraith/vi-invaders/engine"
	"github.com/lixenwraith/vi-invaders/systems"
)

var (
	backendFlag = flag.String("backend", backendTcell, "Rendering backend: tcell, ansi")
	debugFlag   = flag.Bool("debug", false, "Write debug log to "+logDir+"/"+logFileName)
)

func main() {
	closeLog := func() {}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			log.Printf("crashed: %v", r)
			closeLog()
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	closeLog = logCloser(setupLogging(*debugFlag))
	err := run(*backendFlag, closeLog)
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-invaders: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(constants.FinishedText)
}

// run owns one terminal session and drives the fixed-period game loop until quit.
// closeLog is run on crash after the terminal is restored
func run(backend string, closeLog func()) error {
	f, err := openFrontend(backend)
	if err != nil {
		return err
	}
	// Normal exit terminal cleanup
	defer f.close()
	core.SetCrashCleanup(crashCleanup(f, closeLog))
	defer core.SetCrashCleanup(nil)

	game, err := systems.NewGame(engine.DefaultConfig(), engine.NewMonotonicTimeProvider())
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	if err := f.renderer.Render(game.State.Snapshot()); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}

	ticker := time.NewTicker(constants.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case sig := <-sigs:
			log.Printf("received %v, exiting", sig)
			return nil

		case <-ticker.C:
			if !game.Tick(f.input.Poll()) {
				log.Printf("quit with score %d", game.State.Score)
				return nil
			}
			if err := f.renderer.Render(game.State.Snapshot()); err != nil {
				return fmt.Errorf("render frame: %w", err)
			}
		}
	}
}

// crashCleanup restores the terminal, then flushes the debug log
func crashCleanup(f *frontend, closeLog func()) func() {
	return func() {
		f.close()
		closeLog()
	}
}
