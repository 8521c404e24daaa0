package provider

import (
	"github.com/tnqbao/gau-gallery-service/config"
	"github.com/tnqbao/gau-gallery-service/infra"
	"github.com/tnqbao/gau-gallery-service/repository"
)

type Provider struct {
	Resolver   *Resolver
	Aggregator *Aggregator
	FeedCache  *FeedCache
}

var providerInstance *Provider

func InitProvider(cfg *config.Config, infra *infra.Infra, repo *repository.Repository) *Provider {
	if providerInstance != nil {
		return providerInstance
	}

	resolver := NewResolver(infra.Minio, infra.Redis, cfg.EnvConfig)
	aggregator := NewAggregator(repo.ImageRepo, repo.LetterRepo, resolver, infra.Logger)
	feedCache := NewFeedCache(infra.Redis, cfg.EnvConfig)

	providerInstance = &Provider{
		Resolver:   resolver,
		Aggregator: aggregator,
		FeedCache:  feedCache,
	}

	return providerInstance
}
