package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/saeidalz13/seabattle/api"
	"github.com/saeidalz13/seabattle/db"
	"github.com/saeidalz13/seabattle/db/sqlc"
	"github.com/saeidalz13/seabattle/internal/config"
	"github.com/saeidalz13/seabattle/internal/console"
	"github.com/saeidalz13/seabattle/internal/ipnet"
	mb "github.com/saeidalz13/seabattle/models/battleship"
)

const usage = `usage: seabattle [play|serve]

  play   play against the computer in this terminal (default)
  serve  serve games over websocket on /battleship`

func main() {
	mode := "play"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal("invalid configuration", "err", err)
	}
	log.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch mode {
	case "play":
		err = play(ctx, cfg)
	case "serve":
		err = serve(ctx, cfg)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		log.Error("exiting", "mode", mode, "err", err)
		stop()
		os.Exit(1)
	}
}

// analytics stays nil when no database is configured.
func connectAnalytics(cfg config.Config) (*sqlc.AnalyticsManager, func(), error) {
	if cfg.DatabaseURL == "" {
		return nil, func() {}, nil
	}

	conn, err := db.Connect(cfg.DatabaseURL, db.DefaultMigrationDir)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	dbManager := sqlc.NewDbManager(sqlc.New(conn), ipnet.ServerIpNet())
	log.Info("analytics enabled", "server_ip", dbManager.Analytics.ServerIp().IPNet.IP)
	return dbManager.Analytics, func() { conn.Close() }, nil
}

func play(ctx context.Context, cfg config.Config) error {
	analytics, closeDb, err := connectAnalytics(cfg)
	if err != nil {
		return err
	}
	defer closeDb()

	renderer := console.NewRenderer(os.Stdout)
	game, err := mb.NewComputerGame(
		ctx,
		mb.NewRandom(cfg.Seed),
		cfg.Settings,
		console.NewInputSource(os.Stdin, os.Stdout),
		renderer,
	)
	if err != nil {
		return err
	}
	if err := analytics.RecordGameCreated(ctx); err != nil {
		log.Warn("failed to record created game", "err", err)
	}

	renderer.PrintBoards(game)
	winner, err := game.Run(ctx)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		log.Info("game abandoned", "game", game.Uuid())
		return nil
	}
	if err != nil {
		return err
	}

	if err := analytics.RecordGameFinished(ctx, winner == mb.SideHuman); err != nil {
		log.Warn("failed to record finished game", "err", err)
	}
	return nil
}

func serve(ctx context.Context, cfg config.Config) error {
	analytics, closeDb, err := connectAnalytics(cfg)
	if err != nil {
		return err
	}
	defer closeDb()

	server, err := api.NewServer(
		mb.NewBattleshipGameManager(mb.NewRandom(cfg.Seed), cfg.Settings),
		api.WithPort(cfg.Port),
		api.WithStage(cfg.Stage),
		api.WithAnalytics(analytics),
	)
	if err != nil {
		return err
	}

	return server.ListenAndServe(ctx)
}
