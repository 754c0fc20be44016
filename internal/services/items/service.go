package items

//go:generate mockgen -destination=mock/mock_service.go -package=mockitems . Service

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/0niSec/cephalon-seraph/internal/clients/market"
	"github.com/0niSec/cephalon-seraph/internal/clients/warframestat"
	"github.com/0niSec/cephalon-seraph/internal/domain/item"
	apperrors "github.com/0niSec/cephalon-seraph/internal/errors"
	"github.com/0niSec/cephalon-seraph/internal/repositories/itemcache"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/sync/errgroup"
)

const (
	// MaxQuotes is the number of sell orders shown per item
	MaxQuotes = 3

	// MaxSuggestions is the Discord limit for autocomplete choices
	MaxSuggestions = 25

	defaultPriceConcurrency = 3
)

// Service looks items up and prices them
type Service interface {
	// Lookup fetches an item and checks it belongs to the requested family
	Lookup(ctx context.Context, name string, family item.Family) (*item.Record, error)

	// Search suggests item names of one family, best match first
	Search(ctx context.Context, query string, family item.Family, limit int) ([]item.Summary, error)

	// DropLocations returns where a component of the record drops
	DropLocations(ctx context.Context, rec *item.Record, componentKey string) ([]item.Drop, error)

	// LowestPrices returns the cheapest in-game sell orders for a market key
	LowestPrices(ctx context.Context, key string) ([]item.PriceQuote, error)

	// PricesFor looks up several market keys in parallel. Failures are kept per key.
	PricesFor(ctx context.Context, keys []string) map[string]item.PriceResult
}

// ServiceConfig holds the service dependencies
type ServiceConfig struct {
	Items  warframestat.Client
	Market market.Client
	// Cache is optional
	Cache            itemcache.Repository
	PriceConcurrency int
}

type service struct {
	items            warframestat.Client
	market           market.Client
	cache            itemcache.Repository
	priceConcurrency int
}

// NewService creates a new item service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Items == nil {
		panic("items client is required")
	}
	if cfg.Market == nil {
		panic("market client is required")
	}

	concurrency := cfg.PriceConcurrency
	if concurrency <= 0 {
		concurrency = defaultPriceConcurrency
	}

	return &service{
		items:            cfg.Items,
		market:           cfg.Market,
		cache:            cfg.Cache,
		priceConcurrency: concurrency,
	}
}

func (s *service) Lookup(ctx context.Context, name string, family item.Family) (*item.Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.InvalidArgument("item name is required")
	}

	rec, err := s.fetch(ctx, name)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to look up %s", name).
			WithMeta("name", name).
			WithMeta("family", family.String())
	}

	if actual := rec.Family(); actual != family {
		return nil, apperrors.WrongFamily(rec.Name, actual.String()).
			WithMeta("name", rec.Name)
	}
	return rec, nil
}

func (s *service) fetch(ctx context.Context, name string) (*item.Record, error) {
	if s.cache != nil {
		rec, err := s.cache.Get(ctx, name)
		if err == nil {
			return rec, nil
		}
		if !apperrors.IsNotFound(err) {
			log.Printf("[Items] Cache read failed for %q: %v", name, err)
		}
	}

	rec, err := s.items.GetItem(ctx, name)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, name, rec); err != nil {
			log.Printf("[Items] Cache write failed for %q: %v", name, err)
		}
	}
	return rec, nil
}

func (s *service) Search(ctx context.Context, query string, family item.Family, limit int) ([]item.Summary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 || limit > MaxSuggestions {
		limit = MaxSuggestions
	}

	results, err := s.items.Search(ctx, query)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to search for %s", query)
	}

	seen := make(map[string]bool)
	var candidates []item.Summary
	for _, r := range results {
		if r.Name == "" || seen[r.Name] || item.FamilyOf(r.Category) != family {
			continue
		}
		seen[r.Name] = true
		candidates = append(candidates, r)
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(ranks)

	out := make([]item.Summary, 0, min(limit, len(ranks)))
	for _, rank := range ranks {
		if len(out) == limit {
			break
		}
		out = append(out, candidates[rank.OriginalIndex])
	}
	return out, nil
}

func (s *service) DropLocations(ctx context.Context, rec *item.Record, componentKey string) ([]item.Drop, error) {
	if rec == nil {
		return nil, apperrors.InvalidArgument("record is required")
	}

	c, ok := rec.Component(componentKey)
	if !ok || !c.Droppable() {
		return nil, apperrors.NotFoundf("no drop locations for %s %s", rec.Name, componentKey).
			WithMeta("component", componentKey)
	}
	return append([]item.Drop(nil), c.Drops...), nil
}

func (s *service) LowestPrices(ctx context.Context, key string) ([]item.PriceQuote, error) {
	orders, err := s.market.GetOrders(ctx, key)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, apperrors.Wrapf(err, "failed to fetch prices for %s", key)
	}

	var sellers []market.Order
	for _, o := range orders {
		if o.OrderType == market.OrderTypeSell && o.User.Status == market.StatusInGame {
			sellers = append(sellers, o)
		}
	}
	sort.SliceStable(sellers, func(i, j int) bool {
		return sellers[i].Platinum < sellers[j].Platinum
	})
	if len(sellers) > MaxQuotes {
		sellers = sellers[:MaxQuotes]
	}

	quotes := make([]item.PriceQuote, len(sellers))
	for i, o := range sellers {
		quotes[i] = item.PriceQuote{
			Platinum: o.Platinum,
			Seller:   o.User.IngameName,
			Status:   o.User.Status,
			ModRank:  o.ModRank,
		}
	}
	return quotes, nil
}

func (s *service) PricesFor(ctx context.Context, keys []string) map[string]item.PriceResult {
	results := make(map[string]item.PriceResult, len(keys))
	unique := make([]string, 0, len(keys))
	for _, key := range keys {
		if _, dup := results[key]; !dup {
			results[key] = item.PriceResult{}
			unique = append(unique, key)
		}
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(s.priceConcurrency)
	for _, key := range unique {
		g.Go(func() error {
			quotes, err := s.LowestPrices(ctx, key)
			if err != nil {
				log.Printf("[Items] Price lookup failed for %s: %v", key, err)
			}

			mu.Lock()
			results[key] = item.PriceResult{Quotes: quotes, Err: err}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}
