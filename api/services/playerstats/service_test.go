package playerstatsservice

import (
	"context"
	"testing"

	"riftwatch/api/cache"
	"riftwatch/api/filters"
	"riftwatch/api/services/testutil"
	leaguefetcher "riftwatch/fetcher/data/league"
	matchfetcher "riftwatch/fetcher/data/match"
	playerfetcher "riftwatch/fetcher/data/player"
	"riftwatch/pkg/apierror"
	queuevalues "riftwatch/pkg/riotvalues/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPuuid = "puuid-requesting"

func newTestService(riot *testutil.RiotAPIMock) *PlayerStatsService {
	catalog := cache.NewChampionCatalog(&cache.ChampionCatalogDependencies{
		Source: &testutil.StaticCatalogSource{
			Champions: map[int]string{103: "Ahri", 64: "Lee Sin"},
		},
	})
	return NewPlayerStatsService(&PlayerStatsServiceDeps{Riot: riot, Catalog: catalog})
}

func handle() *filters.PlayerHandleBody {
	return &filters.PlayerHandleBody{DisplayName: "Faker", Discriminator: "KR1"}
}

// rankedMatch builds a minimal match where the requesting player played the
// given champion with the given result.
func rankedMatch(matchId string, championId int, win bool, damage int, gold int) *matchfetcher.MatchData {
	return &matchfetcher.MatchData{
		Metadata: matchfetcher.MatchMetadata{MatchId: matchId},
		Info: matchfetcher.MatchInfo{
			QueueId: queuevalues.RankedSolo,
			Participants: []matchfetcher.MatchPlayer{
				{Puuid: "puuid-other", ChampionId: 64, Win: !win},
				{
					Puuid:                       testPuuid,
					ChampionId:                  championId,
					Win:                         win,
					TotalDamageDealtToChampions: damage,
					GoldEarned:                  gold,
				},
			},
		},
	}
}

func TestGetPlayerStatsInvalidHandle(t *testing.T) {
	riot := new(testutil.RiotAPIMock)
	service := newTestService(riot)

	_, err := service.GetPlayerStats(context.Background(), &filters.PlayerHandleBody{DisplayName: "Faker"})

	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.InvalidRequest))
	riot.AssertNotCalled(t, "GetAccountByRiotId", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetPlayerStatsAggregatesWinrates(t *testing.T) {
	riot := new(testutil.RiotAPIMock)
	service := newTestService(riot)

	riot.On("GetAccountByRiotId", mock.Anything, "Faker", "KR1").
		Return(&playerfetcher.Account{Puuid: testPuuid}, nil)
	riot.On("GetTopMasteries", mock.Anything, testPuuid, masteryCount).
		Return([]playerfetcher.MasteryEntry{
			{ChampionId: 103, ChampionLevel: 7, ChampionPoints: 250000},
		}, nil)

	tier, rank := "CHALLENGER", "I"
	riot.On("GetLeagueByPuuid", mock.Anything, testPuuid).
		Return([]leaguefetcher.LeagueEntry{
			{QueueType: "RANKED_SOLO_5x5", Tier: &tier, Rank: &rank, LeaguePoints: 1200, Wins: 300, Losses: 150},
		}, nil)
	riot.On("GetMatchList", mock.Anything, testPuuid, queuevalues.RankedSolo, winrateSampleCount).
		Return([]string{"KR_1", "KR_2", "KR_3"}, nil)

	// Ahri goes 1-1, Lee Sin goes 1-0: the perfect record sorts first.
	riot.On("GetMatchData", mock.Anything, "KR_1").
		Return(rankedMatch("KR_1", 103, true, 20000, 10000), nil)
	riot.On("GetMatchData", mock.Anything, "KR_2").
		Return(rankedMatch("KR_2", 103, false, 10000, 8000), nil)
	riot.On("GetMatchData", mock.Anything, "KR_3").
		Return(rankedMatch("KR_3", 64, true, 18000, 12000), nil)

	stats, err := service.GetPlayerStats(context.Background(), handle())

	require.NoError(t, err)

	require.Len(t, stats.Mastery, 1)
	assert.Equal(t, "Ahri", stats.Mastery[0].ChampionName)
	assert.Equal(t, 7, stats.Mastery[0].Level)
	assert.Equal(t, 250000, stats.Mastery[0].Points)

	require.Len(t, stats.Ranked, 1)
	assert.Equal(t, "Ranked Solo/Duo", stats.Ranked[0].Queue)
	assert.Equal(t, "CHALLENGER", stats.Ranked[0].Tier)
	assert.Equal(t, "I", stats.Ranked[0].Rank)
	assert.Equal(t, 1200, stats.Ranked[0].LeaguePoints)

	require.Len(t, stats.Winrates, 2)

	leeSin := stats.Winrates[0]
	assert.Equal(t, "Lee Sin", leeSin.ChampionName)
	assert.Equal(t, "100.0", leeSin.Winrate)
	assert.Equal(t, 1, leeSin.TotalGames)

	ahri := stats.Winrates[1]
	assert.Equal(t, "Ahri", ahri.ChampionName)
	assert.Equal(t, 1, ahri.Wins)
	assert.Equal(t, 1, ahri.Losses)
	assert.Equal(t, "50.0", ahri.Winrate)
	assert.Equal(t, 2, ahri.TotalGames)
	assert.Equal(t, 15000, ahri.AverageDamage)
	assert.Equal(t, 9000, ahri.AverageGold)
}

func TestGetPlayerStatsToleratesMissingBlocks(t *testing.T) {
	riot := new(testutil.RiotAPIMock)
	service := newTestService(riot)

	riot.On("GetAccountByRiotId", mock.Anything, "Faker", "KR1").
		Return(&playerfetcher.Account{Puuid: testPuuid}, nil)
	riot.On("GetTopMasteries", mock.Anything, testPuuid, masteryCount).
		Return(nil, apierror.New(apierror.NotFound, "no masteries"))
	riot.On("GetLeagueByPuuid", mock.Anything, testPuuid).
		Return([]leaguefetcher.LeagueEntry{}, nil)
	riot.On("GetMatchList", mock.Anything, testPuuid, queuevalues.RankedSolo, winrateSampleCount).
		Return(nil, apierror.New(apierror.UpstreamUnavailable, "bad gateway"))

	stats, err := service.GetPlayerStats(context.Background(), handle())

	require.NoError(t, err)
	assert.Empty(t, stats.Mastery)
	assert.Empty(t, stats.Ranked)
	assert.Empty(t, stats.Winrates)
}

func TestGetPlayerStatsPropagatesRateLimit(t *testing.T) {
	riot := new(testutil.RiotAPIMock)
	service := newTestService(riot)

	riot.On("GetAccountByRiotId", mock.Anything, "Faker", "KR1").
		Return(&playerfetcher.Account{Puuid: testPuuid}, nil)
	riot.On("GetTopMasteries", mock.Anything, testPuuid, masteryCount).
		Return(nil, apierror.New(apierror.RateLimited, "rate limited"))

	_, err := service.GetPlayerStats(context.Background(), handle())

	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.RateLimited))
	riot.AssertNotCalled(t, "GetLeagueByPuuid", mock.Anything, mock.Anything)
}

func TestGetPlayerStatsTruncatesSample(t *testing.T) {
	riot := new(testutil.RiotAPIMock)
	service := newTestService(riot)

	matchIds := make([]string, 0, winrateSampleCount)
	for i := 0; i < winrateSampleCount; i++ {
		matchIds = append(matchIds, "KR_big")
	}

	riot.On("GetAccountByRiotId", mock.Anything, "Faker", "KR1").
		Return(&playerfetcher.Account{Puuid: testPuuid}, nil)
	riot.On("GetTopMasteries", mock.Anything, testPuuid, masteryCount).
		Return([]playerfetcher.MasteryEntry{}, nil)
	riot.On("GetLeagueByPuuid", mock.Anything, testPuuid).
		Return([]leaguefetcher.LeagueEntry{}, nil)
	riot.On("GetMatchList", mock.Anything, testPuuid, queuevalues.RankedSolo, winrateSampleCount).
		Return(matchIds, nil)
	riot.On("GetMatchData", mock.Anything, "KR_big").
		Return(rankedMatch("KR_big", 103, true, 20000, 10000), nil)

	stats, err := service.GetPlayerStats(context.Background(), handle())

	require.NoError(t, err)
	require.Len(t, stats.Winrates, 1)
	assert.Equal(t, winrateDetailCount, stats.Winrates[0].TotalGames)
	riot.AssertNumberOfCalls(t, "GetMatchData", winrateDetailCount)
}

func TestFoldSamplesStableTieOrder(t *testing.T) {
	samples := []*matchSample{
		{championName: "Ahri", win: true},
		{championName: "Lee Sin", win: true},
		{championName: "Ahri", win: false},
		{championName: "Lee Sin", win: false},
	}

	rows := foldSamples(samples)

	// Both sit at 50.0, first-seen order decides.
	require.Len(t, rows, 2)
	assert.Equal(t, "Ahri", rows[0].ChampionName)
	assert.Equal(t, "Lee Sin", rows[1].ChampionName)
}
