package historyservice

import (
	"context"
	"strings"

	"riftwatch/api/cache"
	"riftwatch/api/dto"
	"riftwatch/api/filters"
	"riftwatch/fetcher/data"
	"riftwatch/pkg/apierror"
	"riftwatch/pkg/messages"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	// How many recent matches are listed and fetched.
	matchHistoryCount = 20

	// Upper bound of in-flight detail fetches for a single request.
	matchFetchLimit = 10
)

// HistoryService aggregates the recent matches of a player into summaries.
type HistoryService struct {
	riot    data.RiotAPI
	catalog *cache.ChampionCatalog
}

// HistoryServiceDeps is the dependency list for the history service.
type HistoryServiceDeps struct {
	Riot    data.RiotAPI
	Catalog *cache.ChampionCatalog
}

// NewHistoryService creates a history service.
func NewHistoryService(deps *HistoryServiceDeps) *HistoryService {
	return &HistoryService{
		riot:    deps.Riot,
		catalog: deps.Catalog,
	}
}

// GetMatchHistory resolves the handle and builds the match summary list.
// The identity and the match id list are required; individual match fetches
// are best-effort and failed ones are dropped from the result.
func (hs *HistoryService) GetMatchHistory(ctx context.Context, body *filters.PlayerHandleBody) (*dto.MatchHistory, error) {
	if !body.Valid() {
		return nil, apierror.New(apierror.InvalidRequest, messages.MissingHandleFields)
	}

	account, err := hs.riot.GetAccountByRiotId(ctx, strings.TrimSpace(body.DisplayName), strings.TrimSpace(body.Discriminator))
	if err != nil {
		return nil, err
	}

	matchIds, err := hs.riot.GetMatchList(ctx, account.Puuid, 0, matchHistoryCount)
	if err != nil {
		return nil, err
	}

	return &dto.MatchHistory{
		Matches: hs.fetchSummaries(ctx, matchIds, account.Puuid),
	}, nil
}

// fetchSummaries fetches all match details concurrently and keeps the
// upstream id order. One match failing doesn't block or cancel the others.
func (hs *HistoryService) fetchSummaries(ctx context.Context, matchIds []string, puuid string) []*dto.MatchSummary {
	results := make([]*dto.MatchSummary, len(matchIds))

	var group errgroup.Group
	group.SetLimit(matchFetchLimit)

	for i, matchId := range matchIds {
		i, matchId := i, matchId
		group.Go(func() error {
			match, err := hs.riot.GetMatchData(ctx, matchId)
			if err != nil {
				log.WithError(err).WithField("matchId", matchId).Warn("dropping match from history")
				return nil
			}

			results[i] = hs.buildSummary(ctx, match, puuid)
			return nil
		})
	}

	// Errors are never returned from the group, only logged above.
	group.Wait()

	summaries := make([]*dto.MatchSummary, 0, len(matchIds))
	for _, summary := range results {
		if summary != nil {
			summaries = append(summaries, summary)
		}
	}

	return summaries
}
