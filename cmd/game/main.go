package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/loop"
	"github.com/tomz197/skyraid/internal/world"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "skyraid: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// The terminal is the game screen, so logs only go to a file.
	logger, closeLog, err := cfg.Log.NewLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	bell, err := cfg.Game.BellEffects()
	if err != nil {
		return err
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	session := loop.NewSession(bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Rules:     world.DefaultRules(),
		FrameTime: cfg.Game.FrameTime(),
		NewRand:   func() world.Rand { return cfg.Game.NewRand() },
		Bell:      bell,
		Logger:    logger,
	})

	logger.Info("session started")
	if err := session.Run(ctx); err != nil {
		logger.Error("session failed", "err", err)
		return fmt.Errorf("game: %w", err)
	}
	logger.Info("session ended", "games", session.State().Games, "best", session.State().BestScore)
	return nil
}
