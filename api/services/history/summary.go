package historyservice

import (
	"context"
	"fmt"
	"sort"
	"time"

	"riftwatch/api/dto"
	matchfetcher "riftwatch/fetcher/data/match"
	queuevalues "riftwatch/pkg/riotvalues/queue"
	rolevalues "riftwatch/pkg/riotvalues/roles"

	log "github.com/sirupsen/logrus"
)

// Matches shorter than this were voided by the remake vote.
const remakeThresholdSeconds = 180

const (
	blueTeamId = 100
	redTeamId  = 200
)

// buildSummary shapes one match payload into a summary for the given player.
// Returns nil when the player isn't among the participants.
func (hs *HistoryService) buildSummary(ctx context.Context, match *matchfetcher.MatchData, puuid string) *dto.MatchSummary {
	requesting := findParticipant(match, puuid)
	if requesting == nil {
		log.WithField("matchId", match.Metadata.MatchId).Warn("requesting player missing from match participants")
		return nil
	}

	teamA := make([]*dto.ParticipantView, 0, 5)
	teamB := make([]*dto.ParticipantView, 0, 5)

	for i := range match.Info.Participants {
		participant := &match.Info.Participants[i]
		view := hs.newParticipantView(ctx, participant, puuid)

		if participant.TeamId == blueTeamId {
			teamA = append(teamA, view)
		} else {
			teamB = append(teamB, view)
		}
	}

	sortByRole(teamA)
	sortByRole(teamB)

	seconds := match.Info.GameDuration

	return &dto.MatchSummary{
		MatchId:         match.Metadata.MatchId,
		Outcome:         classifyOutcome(&match.Info, requesting),
		ChampionPlayed:  hs.championName(ctx, requesting),
		Mode:            queuevalues.DisplayName(match.Info.QueueId, match.Info.GameMode),
		Duration:        formatDuration(seconds),
		DurationSeconds: seconds,
		Recency:         recencyLabel(match.Info.GameCreation.Time(), time.Now()),
		TeamA:           teamA,
		TeamB:           teamB,
	}
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

// newParticipantView shapes a single participant entry.
func (hs *HistoryService) newParticipantView(ctx context.Context, participant *matchfetcher.MatchPlayer, puuid string) *dto.ParticipantView {
	side := dto.SideRed
	if participant.TeamId == blueTeamId {
		side = dto.SideBlue
	}

	return &dto.ParticipantView{
		DisplayName:        participant.RiotIdGameName,
		ChampionName:       hs.championName(ctx, participant),
		Side:               side,
		Kills:              participant.Kills,
		Deaths:             participant.Deaths,
		Assists:            participant.Assists,
		Role:               string(rolevalues.Derive(participant.TeamPosition, participant.Lane, participant.Role)),
		IsRequestingPlayer: participant.Puuid == puuid,
		PlayerId:           participant.Puuid,
	}
}

// championName prefers the name on the match payload, falling back to the catalog.
func (hs *HistoryService) championName(ctx context.Context, participant *matchfetcher.MatchPlayer) string {
	if participant.ChampionName != "" {
		return participant.ChampionName
	}
	return hs.catalog.Name(ctx, participant.ChampionId)
}

// classifyOutcome maps a match to win, loss or remake.
// Short matches and non competitive modes are remakes regardless of the win flag.
func classifyOutcome(info *matchfetcher.MatchInfo, player *matchfetcher.MatchPlayer) string {
	if info.GameDuration < remakeThresholdSeconds ||
		queuevalues.NonCompetitiveModes[info.GameMode] ||
		queuevalues.NonCompetitiveModes[info.GameType] {
		return dto.OutcomeRemake
	}

	if player.Win {
		return dto.OutcomeWin
	}
	return dto.OutcomeLoss
}

// sortByRole orders a side by the canonical role order, keeping the upstream
// order among participants with the same role.
func sortByRole(team []*dto.ParticipantView) {
	sort.SliceStable(team, func(i, j int) bool {
		return rolevalues.SortOrder[rolevalues.Role(team[i].Role)] < rolevalues.SortOrder[rolevalues.Role(team[j].Role)]
	})
}

// formatDuration renders seconds as m:ss.
func formatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// recencyLabel renders a coarse "time ago" label using the coarsest
// non zero unit among days, hours and minutes.
func recencyLabel(gameCreation time.Time, now time.Time) string {
	elapsed := now.Sub(gameCreation)

	if days := int(elapsed.Hours() / 24); days > 0 {
		return pluralize(days, "day")
	}
	if hours := int(elapsed.Hours()); hours > 0 {
		return pluralize(hours, "hour")
	}
	if minutes := int(elapsed.Minutes()); minutes > 0 {
		return pluralize(minutes, "minute")
	}
	return "just now"
}

func pluralize(count int, unit string) string {
	if count == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", count, unit)
}
