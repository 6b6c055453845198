package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/window"
	"github.com/tomz197/skyraid/internal/world"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	if err := run(*configPath, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "skyraid-window: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, mute bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	game := window.New(window.Options{
		Rules:   world.DefaultRules(),
		NewRand: func() world.Rand { return cfg.Game.NewRand() },
		TPS:     cfg.Game.FPS,
		Mute:    mute,
		Logger:  logger,
	})

	logger.Info("opening window")
	return window.Run(game)
}
