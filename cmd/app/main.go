package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "payflow/docs"
	"payflow/internal/components"
	"payflow/internal/config"

	"golang.org/x/sync/errgroup"
)

// @title Payflow Records Api
// @version 1.0
// @description API server for the payment flow settlement records service
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Println(err.Error())
		return
	}

	logger := components.SetupLogger(*cfg)

	eg, ctx := errgroup.WithContext(context.Background())

	sigQuit := make(chan os.Signal, 1)
	signal.Notify(sigQuit, os.Interrupt, syscall.SIGTERM)

	components, err := components.InitComponents(ctx, cfg, logger)
	if err != nil {
		logger.Error("Bad configuration", slog.String("error", err.Error()))
		return

	}

	eg.Go(func() error {
		if err := components.HttpServer.Run(ctx); err != nil {
			logger.Error("failed to run HttpServer", slog.String("error", err.Error()))
			return err
		}

		return nil
	})

	eg.Go(func() error {
		if err := components.KafkaConsumer.Consume(ctx); err != nil {
			logger.Error("Kafka consumer failed", "error", err.Error())
			return err
		}
		return nil
	})

	<-sigQuit
	logger.Info("The programm is exiting")

	if err := components.Shutdown(); err != nil {
		logger.Error("Error while shutting down the components", slog.String("error", err.Error()))
	}

	if err := eg.Wait(); err != nil {
		logger.Error("component exited with error", slog.String("error", err.Error()))
	}

	logger.Info("The programm is exited")
}
