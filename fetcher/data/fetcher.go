package data

import (
	"context"

	leaguefetcher "riftwatch/fetcher/data/league"
	matchfetcher "riftwatch/fetcher/data/match"
	playerfetcher "riftwatch/fetcher/data/player"
	"riftwatch/fetcher/requests"
)

// RiotAPI is the upstream surface the services depend on.
type RiotAPI interface {
	GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*playerfetcher.Account, error)
	GetMatchList(ctx context.Context, puuid string, queue int, count int) ([]string, error)
	GetMatchData(ctx context.Context, matchId string) (*matchfetcher.MatchData, error)
	GetMatchTimelineData(ctx context.Context, matchId string) (*matchfetcher.MatchTimeline, error)
	GetLeagueByPuuid(ctx context.Context, puuid string) ([]leaguefetcher.LeagueEntry, error)
	GetTopMasteries(ctx context.Context, puuid string, count int) ([]playerfetcher.MasteryEntry, error)
}

// MainFetcher groups the per endpoint fetchers behind the RiotAPI interface.
type MainFetcher struct {
	Player    *playerfetcher.PlayerFetcher
	SubPlayer *playerfetcher.SubPlayerFetcher
	Match     *matchfetcher.MatchFetcher
	League    *leaguefetcher.LeagueFetcher
}

// CreateMainFetcher instantiates the main fetcher.
// Account and match endpoints live on the routing region, league and mastery
// on the platform region.
func CreateMainFetcher(client *requests.Client, mainRegion string, subRegion string) *MainFetcher {
	return &MainFetcher{
		Player:    playerfetcher.CreatePlayerFetcher(client, mainRegion),
		SubPlayer: playerfetcher.CreateSubPlayerFetcher(client, subRegion),
		Match:     matchfetcher.CreateMatchFetcher(client, mainRegion),
		League:    leaguefetcher.CreateLeagueFetcher(client, subRegion),
	}
}

func (f *MainFetcher) GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*playerfetcher.Account, error) {
	return f.Player.GetAccountByRiotId(ctx, gameName, tagLine)
}

func (f *MainFetcher) GetMatchList(ctx context.Context, puuid string, queue int, count int) ([]string, error) {
	return f.Player.GetMatchList(ctx, puuid, queue, count)
}

func (f *MainFetcher) GetMatchData(ctx context.Context, matchId string) (*matchfetcher.MatchData, error) {
	return f.Match.GetMatchData(ctx, matchId)
}

func (f *MainFetcher) GetMatchTimelineData(ctx context.Context, matchId string) (*matchfetcher.MatchTimeline, error) {
	return f.Match.GetMatchTimelineData(ctx, matchId)
}

func (f *MainFetcher) GetLeagueByPuuid(ctx context.Context, puuid string) ([]leaguefetcher.LeagueEntry, error) {
	return f.League.GetLeagueByPuuid(ctx, puuid)
}

func (f *MainFetcher) GetTopMasteries(ctx context.Context, puuid string, count int) ([]playerfetcher.MasteryEntry, error) {
	return f.SubPlayer.GetTopMasteries(ctx, puuid, count)
}
