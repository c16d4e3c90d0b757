// Package main provides the venture server binary. It serves the
// Realms of Venture line protocol on a TCP port.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/venture/internal/config"
	"github.com/cory-johannsen/venture/internal/frontend/handlers"
	"github.com/cory-johannsen/venture/internal/frontend/tcp"
	"github.com/cory-johannsen/venture/internal/game/command"
	"github.com/cory-johannsen/venture/internal/game/world"
	"github.com/cory-johannsen/venture/internal/observability"
	"github.com/cory-johannsen/venture/internal/server"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: venture-server [flags] <port>")
	fmt.Fprintln(os.Stderr, "Please include a port number, eg: venture-server 50000")
	flag.PrintDefaults()
}

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (optional)")
	worldPath := flag.String("world", "", "path to world YAML file (overrides config; empty = built-in world)")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	// The port comes from the positional argument; the config file may
	// supply it instead, but one of the two is required.
	switch {
	case flag.NArg() >= 1:
		port, err := strconv.Atoi(flag.Arg(0))
		if err != nil || port < 1 || port > 65535 {
			fmt.Fprintf(os.Stderr, "invalid port %q\n", flag.Arg(0))
			usage()
			os.Exit(2)
		}
		cfg.Server.Port = port
	case *configPath == "":
		usage()
		os.Exit(2)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting venture server",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("game", cfg.Game.Name),
	)

	worldFile := *worldPath
	if worldFile == "" {
		worldFile = cfg.Game.WorldFile
	}

	var w *world.World
	if worldFile != "" {
		w, err = world.LoadFromFile(worldFile)
		if err != nil {
			logger.Fatal("loading world", zap.String("path", worldFile), zap.Error(err))
		}
	} else {
		w = world.DefaultNamed(cfg.Game.Name)
	}
	logger.Info("world loaded",
		zap.String("name", w.Name()),
		zap.Int("rooms", w.RoomCount()),
		zap.Int("start_room", w.StartRoom().ID),
	)

	registry := command.DefaultRegistry()
	handler := handlers.NewGameHandler(w, registry, logger)
	acceptor := tcp.NewAcceptor(cfg.Server, handler, logger)

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("acceptor", &server.FuncService{
		StartFn: acceptor.ListenAndServe,
		StopFn:  acceptor.Stop,
	})

	logger.Info("server initialized",
		zap.Duration("startup", time.Since(start)),
		zap.Bool("once", cfg.Server.Once),
	)

	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
