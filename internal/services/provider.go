package services

import (
	"github.com/0niSec/cephalon-seraph/internal/clients/market"
	"github.com/0niSec/cephalon-seraph/internal/clients/warframestat"
	"github.com/0niSec/cephalon-seraph/internal/repositories/itemcache"
	"github.com/0niSec/cephalon-seraph/internal/services/items"
)

// Provider holds all service instances
type Provider struct {
	ItemService items.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	ItemsClient  warframestat.Client
	MarketClient market.Client
	// ItemCache is optional. Lookups go straight to the API without it.
	ItemCache        itemcache.Repository
	PriceConcurrency int
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	itemService := items.NewService(&items.ServiceConfig{
		Items:            cfg.ItemsClient,
		Market:           cfg.MarketClient,
		Cache:            cfg.ItemCache,
		PriceConcurrency: cfg.PriceConcurrency,
	})

	return &Provider{
		ItemService: itemService,
	}
}
