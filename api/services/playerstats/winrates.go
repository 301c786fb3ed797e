package playerstatsservice

import (
	"context"
	"fmt"
	"sort"

	"riftwatch/api/dto"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Upper bound of in-flight detail fetches for the winrate sample.
const winrateFetchLimit = 10

// matchSample is what the aggregation keeps from one fetched match.
type matchSample struct {
	championName string
	win          bool
	damage       int
	gold         int
}

// championAccumulator folds the samples of a single champion.
type championAccumulator struct {
	championName string
	wins         int
	losses       int
	damage       int
	gold         int
}

func (acc *championAccumulator) totalGames() int {
	return acc.wins + acc.losses
}

func (acc *championAccumulator) winPercent() float64 {
	return float64(acc.wins) / float64(acc.totalGames()) * 100
}

// aggregateWinrates fetches the sampled matches concurrently and folds them
// into per champion rows. Failed fetches are dropped from the sample.
func (ps *PlayerStatsService) aggregateWinrates(ctx context.Context, matchIds []string, puuid string) []*dto.ChampionAggregate {
	samples := make([]*matchSample, len(matchIds))

	var group errgroup.Group
	group.SetLimit(winrateFetchLimit)

	for i, matchId := range matchIds {
		i, matchId := i, matchId
		group.Go(func() error {
			match, err := ps.riot.GetMatchData(ctx, matchId)
			if err != nil {
				log.WithError(err).WithField("matchId", matchId).Warn("dropping match from winrate sample")
				return nil
			}

			for j := range match.Info.Participants {
				participant := &match.Info.Participants[j]
				if participant.Puuid != puuid {
					continue
				}

				championName := participant.ChampionName
				if championName == "" {
					championName = ps.catalog.Name(ctx, participant.ChampionId)
				}

				samples[i] = &matchSample{
					championName: championName,
					win:          participant.Win,
					damage:       participant.TotalDamageDealtToChampions,
					gold:         participant.GoldEarned,
				}
				break
			}
			return nil
		})
	}

	group.Wait()

	return foldSamples(samples)
}

// foldSamples groups the samples by champion and derives the aggregate rows,
// sorted descending by win percent. Ties keep the first-seen champion order.
func foldSamples(samples []*matchSample) []*dto.ChampionAggregate {
	grouped := make(map[string]*championAccumulator)
	order := make([]*championAccumulator, 0)

	for _, sample := range samples {
		if sample == nil {
			continue
		}

		acc, exists := grouped[sample.championName]
		if !exists {
			acc = &championAccumulator{championName: sample.championName}
			grouped[sample.championName] = acc
			order = append(order, acc)
		}

		if sample.win {
			acc.wins++
		} else {
			acc.losses++
		}
		acc.damage += sample.damage
		acc.gold += sample.gold
	}

	sort.SliceStable(order, func(i, j int) bool {
		return order[i].winPercent() > order[j].winPercent()
	})

	rows := make([]*dto.ChampionAggregate, 0, len(order))
	for _, acc := range order {
		total := acc.totalGames()
		rows = append(rows, &dto.ChampionAggregate{
			ChampionName:  acc.championName,
			Wins:          acc.wins,
			Losses:        acc.losses,
			Winrate:       fmt.Sprintf("%.1f", acc.winPercent()),
			TotalGames:    total,
			AverageDamage: acc.damage / total,
			AverageGold:   acc.gold / total,
		})
	}

	return rows
}
