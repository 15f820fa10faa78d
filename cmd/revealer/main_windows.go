//go:build windows

// Package main builds the reveal agent as a library loaded into the game
// client. Build with -buildmode=c-shared; the agent attaches when the library
// is loaded and runs until the unload key is released or RevealerDetach is called.
package main

import "C"

import (
	"context"
	"log"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/cory-johannsen/d2reveal/internal/agent"
	"github.com/cory-johannsen/d2reveal/internal/config"
	"github.com/cory-johannsen/d2reveal/internal/game/session"
	"github.com/cory-johannsen/d2reveal/internal/host/native"
	"github.com/cory-johannsen/d2reveal/internal/observability"
	"github.com/cory-johannsen/d2reveal/internal/reveal"
	"github.com/cory-johannsen/d2reveal/internal/server"
)

const defaultConfigPath = "d2reveal.yaml"

var (
	mu     sync.Mutex
	cancel context.CancelFunc
)

func init() {
	ctx, stop := context.WithCancel(context.Background())
	mu.Lock()
	cancel = stop
	mu.Unlock()
	go run(ctx)
}

// RevealerDetach stops the agent. The library itself stays mapped.
//
//export RevealerDetach
func RevealerDetach() {
	mu.Lock()
	defer mu.Unlock()
	if cancel != nil {
		cancel()
		cancel = nil
	}
}

func configPath() string {
	if p := os.Getenv("D2REVEAL_CONFIG"); p != "" {
		return p
	}
	return defaultConfigPath
}

func run(ctx context.Context) {
	cfg, err := config.LoadOptional(configPath())
	if err != nil {
		log.Printf("d2reveal: loading config: %v", err)
		return
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Printf("d2reveal: initializing logger: %v", err)
		return
	}
	defer logger.Sync()

	binding, err := native.NewBinding(cfg)
	if err != nil {
		logger.Error("binding host process", zap.Error(err))
		return
	}

	logger.Info("attaching",
		zap.String("module", cfg.Host.Module),
		zap.Bool("skip_towns", cfg.Reveal.SkipTowns),
	)

	engine := reveal.NewEngine(binding, logger)
	a, err := agent.New(agent.Options{
		Interval:  cfg.Poll.Interval,
		UnloadKey: cfg.Host.UnloadKey,
		Keys:      native.Keys{},
		NewTracker: func() *reveal.Tracker {
			return reveal.NewTracker(binding, engine, session.New(), reveal.TrackerOptions{SkipTowns: cfg.Reveal.SkipTowns}, logger)
		},
		// The Go runtime cannot be torn down, so the module stays loaded
		// with the loop stopped.
		OnUnload: func() {
			logger.Info("agent unloaded, module remains resident", zap.String("module", cfg.Host.Module))
		},
	}, logger)
	if err != nil {
		logger.Error("creating agent", zap.Error(err))
		return
	}

	lc := server.NewLifecycle(logger, server.WithoutSignals())
	lc.Add("agent", a)
	if err := lc.Run(ctx); err != nil {
		logger.Error("agent stopped", zap.Error(err))
		return
	}
	logger.Info("detached", zap.Bool("unload_key", a.Exiting()))
}

func main() {}
