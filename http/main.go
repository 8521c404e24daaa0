package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/tnqbao/gau-gallery-service/config"
	"github.com/tnqbao/gau-gallery-service/http/controller"
	routes "github.com/tnqbao/gau-gallery-service/http/route"
	infraPkg "github.com/tnqbao/gau-gallery-service/infra"
	"github.com/tnqbao/gau-gallery-service/provider"
	"github.com/tnqbao/gau-gallery-service/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)
	defer infra.Logger.Shutdown(context.Background())
	defer infra.Telemetry.Shutdown(context.Background())
	defer infra.RabbitMQ.Close()

	if err := infra.Minio.EnsureBucket(context.Background()); err != nil {
		log.Fatalf("Failed to ensure media bucket: %v", err)
	}

	repo := repository.InitRepository(infra)
	prov := provider.InitProvider(cfg, infra, repo)

	ctrl := controller.NewController(cfg, infra, repo, prov)
	router := routes.SetupRouter(ctrl)

	log.Println("HTTP Server started on :" + cfg.EnvConfig.Port)
	if err := router.Run(":" + cfg.EnvConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
