package items_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/0niSec/cephalon-seraph/internal/clients/market"
	mockmarket "github.com/0niSec/cephalon-seraph/internal/clients/market/mock"
	mockwarframestat "github.com/0niSec/cephalon-seraph/internal/clients/warframestat/mock"
	"github.com/0niSec/cephalon-seraph/internal/domain/item"
	apperrors "github.com/0niSec/cephalon-seraph/internal/errors"
	mockitemcache "github.com/0niSec/cephalon-seraph/internal/repositories/itemcache/mock"
	"github.com/0niSec/cephalon-seraph/internal/services/items"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	ctx     context.Context
	client  *mockwarframestat.MockClient
	market  *mockmarket.MockClient
	cache   *mockitemcache.MockRepository
	service items.Service
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
	s.client = mockwarframestat.NewMockClient(s.ctrl)
	s.market = mockmarket.NewMockClient(s.ctrl)
	s.cache = mockitemcache.NewMockRepository(s.ctrl)
	s.service = items.NewService(&items.ServiceConfig{
		Items:  s.client,
		Market: s.market,
		Cache:  s.cache,
	})
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestLookup_CacheMissFetchesAndStores() {
	braton := &item.Record{Name: "Braton", Category: "Primary"}
	s.cache.EXPECT().Get(s.ctx, "Braton").Return(nil, apperrors.NotFoundf("miss"))
	s.client.EXPECT().GetItem(s.ctx, "Braton").Return(braton, nil)
	s.cache.EXPECT().Set(s.ctx, "Braton", braton).Return(nil)

	rec, err := s.service.Lookup(s.ctx, "  Braton ", item.FamilyWeapon)

	s.Require().NoError(err)
	s.Equal("Braton", rec.Name)
}

func (s *ServiceTestSuite) TestLookup_CacheHitSkipsClient() {
	serration := &item.Record{Name: "Serration", Category: "Mods"}
	s.cache.EXPECT().Get(s.ctx, "Serration").Return(serration, nil)

	rec, err := s.service.Lookup(s.ctx, "Serration", item.FamilyMod)

	s.Require().NoError(err)
	s.Same(serration, rec)
}

func (s *ServiceTestSuite) TestLookup_CacheFailureFallsThrough() {
	ferrite := &item.Record{Name: "Ferrite", Category: "Resources"}
	s.cache.EXPECT().Get(s.ctx, "Ferrite").Return(nil, fmt.Errorf("connection refused"))
	s.client.EXPECT().GetItem(s.ctx, "Ferrite").Return(ferrite, nil)
	s.cache.EXPECT().Set(s.ctx, "Ferrite", ferrite).Return(fmt.Errorf("connection refused"))

	rec, err := s.service.Lookup(s.ctx, "Ferrite", item.FamilyResource)

	s.Require().NoError(err)
	s.Equal("Ferrite", rec.Name)
}

func (s *ServiceTestSuite) TestLookup_WrongFamily() {
	s.cache.EXPECT().Get(s.ctx, "Ferrite").Return(nil, apperrors.NotFoundf("miss"))
	s.client.EXPECT().GetItem(s.ctx, "Ferrite").Return(&item.Record{Name: "Ferrite", Category: "Resources"}, nil)
	s.cache.EXPECT().Set(s.ctx, "Ferrite", gomock.Any()).Return(nil)

	_, err := s.service.Lookup(s.ctx, "Ferrite", item.FamilyWeapon)

	s.Require().Error(err)
	s.True(apperrors.IsWrongFamily(err))
	s.Equal("resource", apperrors.GetMeta(err)["family"])
	s.Equal("Ferrite", apperrors.GetMeta(err)["name"])
}

func (s *ServiceTestSuite) TestLookup_NotFoundKeepsCode() {
	s.cache.EXPECT().Get(s.ctx, "Nope").Return(nil, apperrors.NotFoundf("miss"))
	s.client.EXPECT().GetItem(s.ctx, "Nope").Return(nil, apperrors.NotFoundf("item Nope not found"))

	_, err := s.service.Lookup(s.ctx, "Nope", item.FamilyArcane)

	s.True(apperrors.IsNotFound(err))
	s.Equal("arcane", apperrors.GetMeta(err)["family"])
}

func (s *ServiceTestSuite) TestLookup_UnavailableKeepsStatus() {
	s.cache.EXPECT().Get(s.ctx, "Braton").Return(nil, apperrors.NotFoundf("miss"))
	s.client.EXPECT().GetItem(s.ctx, "Braton").Return(nil, apperrors.Unavailable("warframestat", 502))

	_, err := s.service.Lookup(s.ctx, "Braton", item.FamilyWeapon)

	s.True(apperrors.IsUnavailable(err))
	s.Equal(502, apperrors.StatusCode(err))
}

func (s *ServiceTestSuite) TestLookup_EmptyName() {
	_, err := s.service.Lookup(s.ctx, "   ", item.FamilyWeapon)

	s.True(apperrors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestSearch_FiltersFamilyAndRanks() {
	s.client.EXPECT().Search(s.ctx, "braton").Return([]item.Summary{
		{Name: "Braton Prime", Category: "Primary"},
		{Name: "Braton Prime Barrel", Category: "Misc"},
		{Name: "Braton", Category: "Primary"},
		{Name: "Braton", Category: "Primary"},
		{Name: "Mk1-Braton", Category: "Primary"},
	}, nil)

	results, err := s.service.Search(s.ctx, "braton", item.FamilyWeapon, 10)

	s.Require().NoError(err)
	s.Require().Len(results, 3)
	s.Equal("Braton", results[0].Name)
	s.Equal("Mk1-Braton", results[1].Name)
	s.Equal("Braton Prime", results[2].Name)
}

func (s *ServiceTestSuite) TestSearch_Limit() {
	s.client.EXPECT().Search(s.ctx, "ser").Return([]item.Summary{
		{Name: "Serration", Category: "Mods"},
		{Name: "Sure Shot", Category: "Mods"},
		{Name: "Seeker", Category: "Mods"},
	}, nil)

	results, err := s.service.Search(s.ctx, "ser", item.FamilyMod, 1)

	s.Require().NoError(err)
	s.Len(results, 1)
}

func (s *ServiceTestSuite) TestSearch_EmptyQuery() {
	results, err := s.service.Search(s.ctx, "", item.FamilyMod, 5)

	s.NoError(err)
	s.Empty(results)
}

func (s *ServiceTestSuite) TestDropLocations() {
	rec := &item.Record{
		Name:     "Braton Prime",
		Category: "Primary",
		Components: []item.Component{
			{Name: "Barrel", Drops: []item.Drop{{Location: "Lith B1 Relic", Chance: 0.11}}},
			{Name: "Orokin Cell"},
		},
	}

	drops, err := s.service.DropLocations(s.ctx, rec, "barrel")
	s.Require().NoError(err)
	s.Len(drops, 1)

	_, err = s.service.DropLocations(s.ctx, rec, "Orokin Cell")
	s.True(apperrors.IsNotFound(err))

	_, err = s.service.DropLocations(s.ctx, rec, "Stock")
	s.True(apperrors.IsNotFound(err))
}

func (s *ServiceTestSuite) TestLowestPrices_FiltersAndSorts() {
	rank := 5
	s.market.EXPECT().GetOrders(s.ctx, "serration").Return([]market.Order{
		{OrderType: "sell", Platinum: 20, User: market.User{IngameName: "a", Status: "ingame"}},
		{OrderType: "buy", Platinum: 1, User: market.User{IngameName: "b", Status: "ingame"}},
		{OrderType: "sell", Platinum: 2, User: market.User{IngameName: "c", Status: "offline"}},
		{OrderType: "sell", Platinum: 8, ModRank: &rank, User: market.User{IngameName: "d", Status: "ingame"}},
		{OrderType: "sell", Platinum: 12, User: market.User{IngameName: "e", Status: "ingame"}},
		{OrderType: "sell", Platinum: 8, User: market.User{IngameName: "f", Status: "ingame"}},
	}, nil)

	quotes, err := s.service.LowestPrices(s.ctx, "serration")

	s.Require().NoError(err)
	s.Require().Len(quotes, items.MaxQuotes)
	s.Equal("d", quotes[0].Seller)
	s.Equal(&rank, quotes[0].ModRank)
	s.Equal("f", quotes[1].Seller)
	s.Equal(12, quotes[2].Platinum)
}

func (s *ServiceTestSuite) TestLowestPrices_UnknownItemHasNoQuotes() {
	s.market.EXPECT().GetOrders(s.ctx, "riven_mod").Return(nil, apperrors.NotFoundf("no such item"))

	quotes, err := s.service.LowestPrices(s.ctx, "riven_mod")

	s.NoError(err)
	s.Empty(quotes)
}

func (s *ServiceTestSuite) TestPricesFor_KeepsFailuresPerKey() {
	s.market.EXPECT().GetOrders(gomock.Any(), "braton_prime_barrel").Return([]market.Order{
		{OrderType: "sell", Platinum: 4, User: market.User{IngameName: "a", Status: "ingame"}},
	}, nil)
	s.market.EXPECT().GetOrders(gomock.Any(), "braton_prime_stock").Return(nil, apperrors.Unavailable("warframe.market", 503))

	results := s.service.PricesFor(s.ctx, []string{"braton_prime_barrel", "braton_prime_stock", "braton_prime_barrel"})

	s.Require().Len(results, 2)
	s.NoError(results["braton_prime_barrel"].Err)
	s.Len(results["braton_prime_barrel"].Quotes, 1)
	s.True(apperrors.IsUnavailable(results["braton_prime_stock"].Err))
}

func TestPricesFor_RespectsConcurrencyLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockwarframestat.NewMockClient(ctrl)
	mkt := mockmarket.NewMockClient(ctrl)

	var inFlight, peak atomic.Int32
	mkt.EXPECT().GetOrders(gomock.Any(), gomock.Any()).Times(6).DoAndReturn(
		func(_ context.Context, _ string) ([]market.Order, error) {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			return nil, nil
		})

	svc := items.NewService(&items.ServiceConfig{Items: client, Market: mkt, PriceConcurrency: 2})
	results := svc.PricesFor(context.Background(), []string{"a", "b", "c", "d", "e", "f"})

	if len(results) != 6 {
		t.Fatalf("expected 6 results, got %d", len(results))
	}
	if peak.Load() > 2 {
		t.Fatalf("expected at most 2 concurrent lookups, saw %d", peak.Load())
	}
}

func TestNewService_PanicsWithoutClients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	items.NewService(&items.ServiceConfig{Items: mockwarframestat.NewMockClient(ctrl)})
}
