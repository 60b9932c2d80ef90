package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtroode/studyflow-waitlist/internal/api/grpc/client"
	"github.com/dtroode/studyflow-waitlist/internal/api/web"
	"github.com/dtroode/studyflow-waitlist/internal/config"
	"github.com/dtroode/studyflow-waitlist/internal/join"
	"github.com/dtroode/studyflow-waitlist/internal/logger"
	"github.com/dtroode/studyflow-waitlist/internal/waitlist"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.NewClientConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	conn, err := client.Dial(cfg.ServerAddr, cfg.EnableTLS, cfg.CAFileName)
	if err != nil {
		logger.Fatal("failed to connect to document server", "address", cfg.ServerAddr, "error", err)
	}
	defer conn.Close()

	store := client.NewRemoteStore(conn, cfg.AppendTimeout, logger)
	controller := waitlist.NewController(store,
		waitlist.WithCollection(cfg.Waitlist.Collection),
		waitlist.WithSource(cfg.Waitlist.Source),
		waitlist.WithResetDelays(cfg.Waitlist.SuccessResetDelay, cfg.Waitlist.ErrorResetDelay),
		waitlist.WithLogger(logger),
		waitlist.WithObserver(join.BusyRenderer(os.Stdout)),
		waitlist.WithObserver(func(s waitlist.State) {
			logger.Debug("Join client: state changed", "phase", s.Phase.String())
		}),
	)
	defer controller.Close()

	content, err := web.DefaultContent()
	if err != nil {
		logger.Fatal("failed to load content", "error", err)
	}

	session := join.NewSession(controller, join.SurveyPrompter{}, os.Stdout,
		content.Waitlist.Heading, content.Waitlist.Lead)
	if err := session.Run(ctx); err != nil && !errors.Is(err, join.ErrAborted) && !errors.Is(err, context.Canceled) {
		logger.Error("join session failed", "error", err)
		os.Exit(1)
	}
}
