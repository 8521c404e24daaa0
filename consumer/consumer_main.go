package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/tnqbao/gau-gallery-service/config"
	"github.com/tnqbao/gau-gallery-service/consumer/worker"
	"github.com/tnqbao/gau-gallery-service/infra"
	"github.com/tnqbao/gau-gallery-service/provider"
	"github.com/tnqbao/gau-gallery-service/repository"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Cannot load .env file, using environment variables instead")
	}

	cfg := config.NewConfig()
	infraInstance := infra.InitInfra(cfg)
	defer infraInstance.Logger.Shutdown(context.Background())
	defer infraInstance.Telemetry.Shutdown(context.Background())
	defer infraInstance.RabbitMQ.Close()

	repo := repository.InitRepository(infraInstance)
	prov := provider.InitProvider(cfg, infraInstance, repo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feedConsumer := worker.NewFeedConsumer(infraInstance.RabbitMQ.Channel, infraInstance, prov)
	if err := feedConsumer.Start(ctx); err != nil {
		log.Fatalf("Failed to start feed consumer: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down consumer...")
	cancel()
}
