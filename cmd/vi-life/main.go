package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"

	"github.com/lixenwraith/vi-life/audio"
	"github.com/lixenwraith/vi-life/config"
	"github.com/lixenwraith/vi-life/core"
	"github.com/lixenwraith/vi-life/engine"
	"github.com/lixenwraith/vi-life/parameter"
	"github.com/lixenwraith/vi-life/render"
	"github.com/lixenwraith/vi-life/spectate"
	"github.com/lixenwraith/vi-life/status"
)

// screenGuard lets crash handlers restore the terminal from any goroutine
var screenGuard struct {
	sync.Mutex
	screen *render.Screen
}

func restoreTerminal() {
	screenGuard.Lock()
	defer screenGuard.Unlock()
	if screenGuard.screen != nil {
		screenGuard.screen.Close()
	}
}

func main() {
	// Panic Recovery: the terminal must be usable again before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			restoreTerminal()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-LIFE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	core.SetCrashHandler(func(r any) {
		restoreTerminal()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mVI-LIFE CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})

	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	cfg, err := flags.loadConfig()
	if err == nil {
		err = flags.apply(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		restoreTerminal()
		fmt.Fprintf(os.Stderr, "vi-life: %v\n", err)
		os.Exit(1)
	}
}

// run drives the simulation until the turn limit, a quit key or ctx ends,
// then prints the final board to out
func run(ctx context.Context, cfg *config.Config, out *os.File) error {
	seed := resolveSeed(cfg.Simulation.Seed)
	log.Printf("vi-life: seed=%d rules=%s", seed, cfg.Simulation.Rules)

	var observers []engine.Observer
	if cfg.Debug {
		observers = append(observers, logEvent)
	}
	if cfg.Audio.Enabled {
		cues := audio.NewCuePlayer()
		if err := cues.Initialize(); err != nil {
			// Non-fatal, the simulation runs silently
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer cues.Cleanup()
			observers = append(observers, cues.Observe)
		}
	}

	var hub *spectate.Hub
	if cfg.Spectate.Addr != "" {
		hub = spectate.NewHub()
		observers = append(observers, hub.Observe)
	}

	reg := status.NewRegistry()
	world, err := buildWorld(cfg, seed, reg, observers...)
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}

	sched := engine.NewClockScheduler(world, cfg.Simulation.Interval.Duration)
	sched.SetLimit(cfg.Simulation.Turns)

	var screen *render.Screen
	var commands <-chan render.Command

	tty := render.IsTerminal(out)
	switch render.ResolveMode(cfg.Render.Mode, tty) {
	case parameter.RenderTcell:
		screen, err = render.NewScreen()
		if err != nil {
			return err
		}
		screenGuard.Lock()
		screenGuard.screen = screen
		screenGuard.Unlock()
		defer restoreTerminal()

		sched.AddSink(screen)
		commands = screen.Commands()
	case parameter.RenderText:
		if tty {
			sched.AddSink(render.NewLive(out))
		} else {
			sched.AddSink(render.NewPlain(out))
		}
	}

	if hub != nil {
		sched.AddSink(hub)
		core.Go(func() {
			if err := hub.Serve(ctx, cfg.Spectate.Addr); err != nil {
				log.Printf("spectate: %v", err)
			}
		})
	}

	sched.Start()
	done := sched.Done()

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-done:
			if screen == nil {
				break loop
			}
			// Keep the last frame up until the viewer quits
			done = nil
			screen.SetPaused(true)
		case cmd := <-commands:
			switch cmd {
			case render.CommandQuit:
				break loop
			case render.CommandPause:
				screen.SetPaused(sched.Toggle())
			case render.CommandStep:
				sched.Step()
			}
		}
	}

	sched.Stop()
	restoreTerminal()

	final := sched.Snapshot()
	log.Printf("vi-life: finished %s", final.Summary())
	return printFinal(out, final)
}

func printFinal(out io.Writer, f engine.Frame) error {
	if _, err := fmt.Fprintf(out, "%s%s\n", f.Text(), f.Summary()); err != nil {
		return fmt.Errorf("print final board: %w", err)
	}
	return nil
}
