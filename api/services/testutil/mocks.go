package testutil

import (
	"context"
	"strconv"

	"riftwatch/fetcher/assets"
	leaguefetcher "riftwatch/fetcher/data/league"
	matchfetcher "riftwatch/fetcher/data/match"
	playerfetcher "riftwatch/fetcher/data/player"
	"riftwatch/pkg/models/champion"

	"github.com/stretchr/testify/mock"
)

// RiotAPIMock is a testify mock of the upstream fetcher surface.
type RiotAPIMock struct {
	mock.Mock
}

func (m *RiotAPIMock) GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*playerfetcher.Account, error) {
	args := m.Called(ctx, gameName, tagLine)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*playerfetcher.Account), args.Error(1)
}

func (m *RiotAPIMock) GetMatchList(ctx context.Context, puuid string, queue int, count int) ([]string, error) {
	args := m.Called(ctx, puuid, queue, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *RiotAPIMock) GetMatchData(ctx context.Context, matchId string) (*matchfetcher.MatchData, error) {
	args := m.Called(ctx, matchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchfetcher.MatchData), args.Error(1)
}

func (m *RiotAPIMock) GetMatchTimelineData(ctx context.Context, matchId string) (*matchfetcher.MatchTimeline, error) {
	args := m.Called(ctx, matchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*matchfetcher.MatchTimeline), args.Error(1)
}

func (m *RiotAPIMock) GetLeagueByPuuid(ctx context.Context, puuid string) ([]leaguefetcher.LeagueEntry, error) {
	args := m.Called(ctx, puuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]leaguefetcher.LeagueEntry), args.Error(1)
}

func (m *RiotAPIMock) GetTopMasteries(ctx context.Context, puuid string, count int) ([]playerfetcher.MasteryEntry, error) {
	args := m.Called(ctx, puuid, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]playerfetcher.MasteryEntry), args.Error(1)
}

var _ assets.CatalogSource = (*StaticCatalogSource)(nil)

// StaticCatalogSource serves a fixed champion list, for wiring a real
// catalog into service tests without the CDN.
type StaticCatalogSource struct {
	Champions map[int]string
}

func (s *StaticCatalogSource) GetLatestVersion(ctx context.Context) (string, error) {
	return "15.1.1", nil
}

func (s *StaticCatalogSource) GetChampionCatalog(ctx context.Context, version string) (map[string]champion.Champion, error) {
	catalog := make(map[string]champion.Champion, len(s.Champions))
	for id, name := range s.Champions {
		key := strconv.Itoa(id)
		catalog[key] = champion.Champion{
			ID:      key,
			NameKey: name,
			Name:    name,
		}
	}
	return catalog, nil
}
