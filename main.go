package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mo-shahab/bracket-pong/config"
	"github.com/mo-shahab/bracket-pong/game"
	"github.com/mo-shahab/bracket-pong/room"
	"github.com/mo-shahab/bracket-pong/terminal"
	"github.com/mo-shahab/bracket-pong/window"
	"github.com/mo-shahab/bracket-pong/wsserver"
)

func main() {
	configPath := flag.String("config", "pong.toml", "path to the TOML config file")
	display := flag.String("display", "", "terminal or window, overrides the config")
	spectate := flag.String("spectate", "", "address to stream the game to websocket spectators")
	flag.Parse()

	config.InitEnv()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatal(err)
	}
	if *display != "" {
		cfg.Shell.Display = *display
	}
	if *spectate != "" {
		cfg.Shell.SpectateAddr = *spectate
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// the terminal display owns stdout, logs go to a file
	if cfg.Shell.Display == config.DisplayTerminal && cfg.Shell.LogFile != "" {
		f, err := os.OpenFile(cfg.Shell.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Starting game, scoring=%v seed=%d", cfg.Game.Scoring, seed)

	opts := []game.Option{
		game.WithRules(game.Rules{ScoringEnabled: cfg.Game.Scoring}),
		game.WithLogger(log.Default()),
	}

	if cfg.Shell.SpectateAddr != "" {
		rm := room.NewRoomManager()
		roomId := rm.CreateRoom(0)
		handler := wsserver.NewWebSocketHandler(rm, roomId)

		server := wsserver.NewServer(cfg.Shell.SpectateAddr, handler)
		server.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			rm.CloseRoom(roomId)
			if err := server.Shutdown(shutdownCtx); err != nil {
				log.Printf("Spectator server shutdown: %v", err)
			}
		}()

		opts = append(opts, game.WithBroadcaster(handler.Broadcaster(roomId)))
		log.Printf("Spectators can watch room %s", roomId)
	}

	engine := game.NewEngine(rand.New(rand.NewSource(seed)), opts...)

	switch cfg.Shell.Display {
	case config.DisplayWindow:
		return window.Run(ctx, engine, cfg.Shell.Title)
	default:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		refresh := time.Duration(cfg.Shell.TickMs) * time.Millisecond
		return terminal.Run(ctx, screen, engine, refresh)
	}
}
