package playerstatsservice

import (
	"context"
	"strings"

	"riftwatch/api/cache"
	"riftwatch/api/dto"
	"riftwatch/api/filters"
	"riftwatch/fetcher/data"
	"riftwatch/pkg/apierror"
	"riftwatch/pkg/messages"
	queuevalues "riftwatch/pkg/riotvalues/queue"

	log "github.com/sirupsen/logrus"
)

const (
	// Top masteries by points returned for the profile.
	masteryCount = 10

	// Size of the ranked solo sample listed for the winrate rows.
	winrateSampleCount = 50

	// How many of the sampled matches get their details fetched.
	winrateDetailCount = 10
)

// PlayerStatsService aggregates mastery, ranked standing and champion winrates.
type PlayerStatsService struct {
	riot    data.RiotAPI
	catalog *cache.ChampionCatalog
}

// PlayerStatsServiceDeps is the dependency list for the player stats service.
type PlayerStatsServiceDeps struct {
	Riot    data.RiotAPI
	Catalog *cache.ChampionCatalog
}

// NewPlayerStatsService creates a player stats service.
func NewPlayerStatsService(deps *PlayerStatsServiceDeps) *PlayerStatsService {
	return &PlayerStatsService{
		riot:    deps.Riot,
		catalog: deps.Catalog,
	}
}

// GetPlayerStats resolves the handle and gathers the three stat blocks.
// Only the identity is required: mastery, ranked and the winrate sample are
// each best-effort, since newer accounts legitimately miss any of them.
// Persistent rate limiting is the one sub-failure that aborts the response,
// so the caller can tell the user to wait instead of showing a half profile.
func (ps *PlayerStatsService) GetPlayerStats(ctx context.Context, body *filters.PlayerHandleBody) (*dto.PlayerStats, error) {
	if !body.Valid() {
		return nil, apierror.New(apierror.InvalidRequest, messages.MissingHandleFields)
	}

	account, err := ps.riot.GetAccountByRiotId(ctx, strings.TrimSpace(body.DisplayName), strings.TrimSpace(body.Discriminator))
	if err != nil {
		return nil, err
	}

	stats := &dto.PlayerStats{
		Mastery:  []*dto.MasteryEntry{},
		Ranked:   []*dto.RankedEntry{},
		Winrates: []*dto.ChampionAggregate{},
	}

	masteries, err := ps.riot.GetTopMasteries(ctx, account.Puuid, masteryCount)
	if err != nil {
		if apierror.IsKind(err, apierror.RateLimited) {
			return nil, err
		}
		log.WithError(err).WithField("puuid", account.Puuid).Warn("mastery fetch failed, returning without it")
	} else {
		for _, mastery := range masteries {
			stats.Mastery = append(stats.Mastery, &dto.MasteryEntry{
				ChampionId:           mastery.ChampionId,
				ChampionName:         ps.catalog.Name(ctx, mastery.ChampionId),
				Level:                mastery.ChampionLevel,
				Points:               mastery.ChampionPoints,
				PointsSinceLastLevel: mastery.ChampionPointsSinceLastLevel,
				ChestGranted:         mastery.ChestGranted,
			})
		}
	}

	entries, err := ps.riot.GetLeagueByPuuid(ctx, account.Puuid)
	if err != nil {
		if apierror.IsKind(err, apierror.RateLimited) {
			return nil, err
		}
		log.WithError(err).WithField("puuid", account.Puuid).Warn("ranked fetch failed, returning without it")
	} else {
		for _, entry := range entries {
			ranked := &dto.RankedEntry{
				Queue:        entry.QueueType,
				LeaguePoints: entry.LeaguePoints,
				Wins:         entry.Wins,
				Losses:       entry.Losses,
			}
			if label, ok := queuevalues.QueueTypeDisplayName[entry.QueueType]; ok {
				ranked.Queue = label
			}
			if entry.Tier != nil {
				ranked.Tier = *entry.Tier
			}
			if entry.Rank != nil {
				ranked.Rank = *entry.Rank
			}
			stats.Ranked = append(stats.Ranked, ranked)
		}
	}

	matchIds, err := ps.riot.GetMatchList(ctx, account.Puuid, queuevalues.RankedSolo, winrateSampleCount)
	if err != nil {
		if apierror.IsKind(err, apierror.RateLimited) {
			return nil, err
		}
		log.WithError(err).WithField("puuid", account.Puuid).Warn("ranked sample fetch failed, returning without winrates")
		return stats, nil
	}

	if len(matchIds) > winrateDetailCount {
		matchIds = matchIds[:winrateDetailCount]
	}

	stats.Winrates = ps.aggregateWinrates(ctx, matchIds, account.Puuid)

	return stats, nil
}
