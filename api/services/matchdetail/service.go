package matchdetailservice

import (
	"context"
	"math"
	"strings"

	"riftwatch/api/dto"
	"riftwatch/api/filters"
	"riftwatch/fetcher/data"
	matchfetcher "riftwatch/fetcher/data/match"
	"riftwatch/pkg/apierror"
	"riftwatch/pkg/messages"
	queuevalues "riftwatch/pkg/riotvalues/queue"

	log "github.com/sirupsen/logrus"
)

const blueTeamId = 100

// MatchDetailService extracts one player view of a single match.
type MatchDetailService struct {
	riot data.RiotAPI
}

// MatchDetailServiceDeps is the dependency list for the match detail service.
type MatchDetailServiceDeps struct {
	Riot data.RiotAPI
}

// NewMatchDetailService creates a match detail service.
func NewMatchDetailService(deps *MatchDetailServiceDeps) *MatchDetailService {
	return &MatchDetailService{
		riot: deps.Riot,
	}
}

// GetMatchDetails fetches the match (required) and the timeline (optional)
// and derives the stat block for the requested player. A missing or failing
// timeline degrades to a empty event list, not to a error.
func (ms *MatchDetailService) GetMatchDetails(ctx context.Context, body *filters.MatchDetailsBody) (*dto.MatchDetails, error) {
	if !body.Valid() {
		return nil, apierror.New(apierror.InvalidRequest, messages.MissingMatchFields)
	}

	matchId := strings.TrimSpace(body.MatchId)
	playerId := strings.TrimSpace(body.PlayerId)

	match, err := ms.riot.GetMatchData(ctx, matchId)
	if err != nil {
		return nil, err
	}

	participant := findParticipant(match, playerId)
	if participant == nil {
		return nil, apierror.New(apierror.NotFound, messages.PlayerNotInMatch)
	}

	events := []*dto.TimelineEventView{}
	timeline, err := ms.riot.GetMatchTimelineData(ctx, matchId)
	if err != nil {
		log.WithError(err).WithField("matchId", matchId).Warn("timeline unavailable, returning without events")
	} else {
		events = extractPlayerEvents(timeline, participantId(participant, timeline, playerId))
	}

	return &dto.MatchDetails{
		PlayerStats:          buildPlayerStats(match, participant),
		PlayerTimelineEvents: events,
		TeamObjectives:       buildTeamObjectives(match),
		MatchInfo: &dto.MatchInfoView{
			MatchId:         match.Metadata.MatchId,
			Mode:            match.Info.GameMode,
			Queue:           queuevalues.DisplayName(match.Info.QueueId, match.Info.GameMode),
			DurationSeconds: match.Info.GameDuration,
			GameCreation:    match.Info.GameCreation.Time().UnixMilli(),
		},
	}, nil
}

// findParticipant locates a participant by puuid.
func findParticipant(match *matchfetcher.MatchData, puuid string) *matchfetcher.MatchPlayer {
	for i := range match.Info.Participants {
		if match.Info.Participants[i].Puuid == puuid {
			return &match.Info.Participants[i]
		}
	}
	return nil
}

// participantId resolves the numeric in-match id of the player, preferring
// the match payload and falling back to the timeline participant mapping.
func participantId(participant *matchfetcher.MatchPlayer, timeline *matchfetcher.MatchTimeline, puuid string) int {
	if participant.ParticipantId != 0 {
		return participant.ParticipantId
	}

	for _, mapped := range timeline.Info.Participants {
		if mapped.Puuid == puuid {
			return mapped.ParticipantId
		}
	}
	return 0
}

// buildPlayerStats derives the stat block from the participant record.
func buildPlayerStats(match *matchfetcher.MatchData, participant *matchfetcher.MatchPlayer) *dto.PlayerMatchStats {
	totalCs := participant.TotalMinionsKilled + participant.NeutralMinionsKilled

	return &dto.PlayerMatchStats{
		Kills:   participant.Kills,
		Deaths:  participant.Deaths,
		Assists: participant.Assists,
		Kda:     kdaRatio(participant.Kills, participant.Deaths, participant.Assists),
		Damage: dto.DamageBreakdown{
			ToChampions:  participant.TotalDamageDealtToChampions,
			Physical:     participant.PhysicalDamageDealtToChampions,
			Magic:        participant.MagicDamageDealtToChampions,
			True:         participant.TrueDamageDealtToChampions,
			Taken:        participant.TotalDamageTaken,
			ToObjectives: participant.DamageDealtToObjectives,
			ToTurrets:    participant.DamageDealtToTurrets,
		},
		GoldEarned: participant.GoldEarned,
		GoldSpent:  participant.GoldSpent,
		Vision: dto.VisionStats{
			Score:        participant.VisionScore,
			WardsPlaced:  participant.WardsPlaced,
			WardsKilled:  participant.WardsKilled,
			ControlWards: participant.VisionWardsBoughtInGame,
		},
		TotalCs:           totalCs,
		CsPerMinute:       csPerMinute(totalCs, match.Info.GameDuration),
		Items:             filterItems(participant),
		SummonerSpells:    []int{participant.Summoner1Id, participant.Summoner2Id},
		ChampionId:        participant.ChampionId,
		ChampionName:      participant.ChampionName,
		ChampionLevel:     participant.ChampionLevel,
		ChampionTransform: participant.ChampionTransform,
		Positions: dto.PositionLabels{
			TeamPosition: participant.TeamPosition,
			Lane:         participant.Lane,
			Role:         participant.Role,
		},
		Win: participant.Win,
	}
}

// kdaRatio computes (kills+assists)/deaths with a floor of one death.
func kdaRatio(kills int, deaths int, assists int) float64 {
	divisor := deaths
	if divisor < 1 {
		divisor = 1
	}
	return roundTo(float64(kills+assists)/float64(divisor), 2)
}

// csPerMinute computes the creep score rate over the match duration.
func csPerMinute(totalCs int, durationSeconds int) float64 {
	if durationSeconds <= 0 {
		return 0
	}
	return roundTo(float64(totalCs)/(float64(durationSeconds)/60), 1)
}

func roundTo(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}

// filterItems flattens the item slots, dropping the empty ones.
func filterItems(participant *matchfetcher.MatchPlayer) []int {
	slots := []int{
		participant.Item0, participant.Item1, participant.Item2,
		participant.Item3, participant.Item4, participant.Item5,
		participant.Item6,
	}

	items := make([]int, 0, len(slots))
	for _, item := range slots {
		if item != 0 {
			items = append(items, item)
		}
	}
	return items
}

// buildTeamObjectives summarizes each team objective counters.
func buildTeamObjectives(match *matchfetcher.MatchData) []*dto.TeamObjectivesView {
	views := make([]*dto.TeamObjectivesView, 0, len(match.Info.Teams))

	for _, team := range match.Info.Teams {
		side := dto.SideRed
		if team.TeamId == blueTeamId {
			side = dto.SideBlue
		}

		views = append(views, &dto.TeamObjectivesView{
			TeamId:     team.TeamId,
			Side:       side,
			Baron:      team.Objectives.Baron.Kills,
			Dragon:     team.Objectives.Dragon.Kills,
			Inhibitor:  team.Objectives.Inhibitor.Kills,
			RiftHerald: team.Objectives.RiftHerald.Kills,
			Tower:      team.Objectives.Tower.Kills,
			Win:        team.Win,
		})
	}

	return views
}
