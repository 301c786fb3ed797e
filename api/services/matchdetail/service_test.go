package matchdetailservice

import (
	"context"
	"testing"

	"riftwatch/api/dto"
	"riftwatch/api/filters"
	"riftwatch/api/services/testutil"
	matchfetcher "riftwatch/fetcher/data/match"
	"riftwatch/pkg/apierror"
	"riftwatch/pkg/messages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPuuid = "puuid-requesting"

func newTestService(riot *testutil.RiotAPIMock) *MatchDetailService {
	return NewMatchDetailService(&MatchDetailServiceDeps{Riot: riot})
}

func detailsBody() *filters.MatchDetailsBody {
	return &filters.MatchDetailsBody{MatchId: "NA1_1", PlayerId: testPuuid}
}

func newTestMatch() *matchfetcher.MatchData {
	return &matchfetcher.MatchData{
		Metadata: matchfetcher.MatchMetadata{MatchId: "NA1_1"},
		Info: matchfetcher.MatchInfo{
			GameDuration: 1800,
			GameMode:     "CLASSIC",
			QueueId:      420,
			Participants: []matchfetcher.MatchPlayer{
				{Puuid: "puuid-other", ParticipantId: 1, ChampionId: 64},
				{
					Puuid:                       testPuuid,
					ParticipantId:               2,
					ChampionId:                  103,
					ChampionName:                "Ahri",
					Kills:                       10,
					Deaths:                      0,
					Assists:                     2,
					TotalMinionsKilled:          200,
					NeutralMinionsKilled:        40,
					Item0:                       3020,
					Item1:                       0,
					Item2:                       3089,
					Item3:                       0,
					Item4:                       0,
					Item5:                       0,
					Item6:                       3340,
					Summoner1Id:                 4,
					Summoner2Id:                 12,
					TotalDamageDealtToChampions: 25000,
					Win:                         true,
				},
			},
			Teams: []matchfetcher.TeamInfo{
				{
					TeamId: 100,
					Win:    true,
					Objectives: matchfetcher.Objectives{
						Baron:  matchfetcher.Objective{Kills: 1},
						Dragon: matchfetcher.Objective{Kills: 3},
						Tower:  matchfetcher.Objective{Kills: 9},
					},
				},
				{
					TeamId: 200,
					Win:    false,
					Objectives: matchfetcher.Objectives{
						Dragon: matchfetcher.Objective{Kills: 1},
						Tower:  matchfetcher.Objective{Kills: 2},
					},
				},
			},
		},
	}
}

func newTestTimeline() *matchfetcher.MatchTimeline {
	killer := 2
	victim := 1
	otherKiller := 1
	otherVictim := 3
	itemBuyer := 2
	itemId := 3020

	return &matchfetcher.MatchTimeline{
		Info: matchfetcher.MatchTimelineData{
			Participants: []matchfetcher.MatchTimelineParticipants{
				{ParticipantId: 1, Puuid: "puuid-other"},
				{ParticipantId: 2, Puuid: testPuuid},
			},
			Frames: []matchfetcher.MatchTimelineFrame{
				{
					Timestamp: 60000,
					Events: []matchfetcher.EventFrame{
						{Type: "ITEM_PURCHASED", Timestamp: 30000, ParticipantId: &itemBuyer, ItemId: &itemId},
					},
				},
				{
					Timestamp: 120000,
					Events: []matchfetcher.EventFrame{
						{Type: "CHAMPION_KILL", Timestamp: 95000, KillerId: &killer, VictimId: &victim},
						{Type: "CHAMPION_KILL", Timestamp: 110000, KillerId: &otherKiller, VictimId: &otherVictim},
						{Type: "CHAMPION_KILL", Timestamp: 115000, KillerId: &otherKiller, VictimId: &otherVictim, AssistingParticipantIds: []int{2}},
					},
				},
			},
		},
	}
}

func TestGetMatchDetailsInvalidBody(t *testing.T) {
	riot := new(testutil.RiotAPIMock)
	service := newTestService(riot)

	_, err := service.GetMatchDetails(context.Background(), &filters.MatchDetailsBody{MatchId: "NA1_1"})

	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.InvalidRequest))
	riot.AssertNotCalled(t, "GetMatchData", mock.Anything, mock.Anything)
}

func TestGetMatchDetailsDerivesPlayerStats(t *testing.T) {
	riot := new(testutil.RiotAPIMock)
	service := newTestService(riot)

	riot.On("GetMatchData", mock.Anything, "NA1_1").Return(newTestMatch(), nil)
	riot.On("GetMatchTimelineData", mock.Anything, "NA1_1").Return(newTestTimeline(), nil)

	details, err := service.GetMatchDetails(context.Background(), detailsBody())

	require.NoError(t, err)

	stats := details.PlayerStats
	assert.Equal(t, 10, stats.Kills)
	assert.Equal(t, 0, stats.Deaths)
	assert.Equal(t, 2, stats.Assists)

	// Zero deaths divide by one instead.
	assert.Equal(t, 12.0, stats.Kda)

	assert.Equal(t, 240, stats.TotalCs)
	assert.Equal(t, 8.0, stats.CsPerMinute)

	// Empty item slots are dropped, the rest keep slot order.
	assert.Equal(t, []int{3020, 3089, 3340}, stats.Items)
	assert.Equal(t, []int{4, 12}, stats.SummonerSpells)
	assert.Equal(t, "Ahri", stats.ChampionName)
	assert.True(t, stats.Win)

	info := details.MatchInfo
	assert.Equal(t, "NA1_1", info.MatchId)
	assert.Equal(t, "Ranked Solo/Duo", info.Queue)
	assert.Equal(t, 1800, info.DurationSeconds)
}

func TestGetMatchDetailsFiltersTimelineEvents(t *testing.T) {
	riot := new(testutil.RiotAPIMock)
	service := newTestService(riot)

	riot.On("GetMatchData", mock.Anything, "NA1_1").Return(newTestMatch(), nil)
	riot.On("GetMatchTimelineData", mock.Anything, "NA1_1").Return(newTestTimeline(), nil)

	details, err := service.GetMatchDetails(context.Background(), detailsBody())

	require.NoError(t, err)

	// The purchase, the kill and the assist involve the player. The kill
	// between the two others does not.
	require.Len(t, details.PlayerTimelineEvents, 3)

	purchase := details.PlayerTimelineEvents[0]
	assert.Equal(t, "ITEM_PURCHASED", purchase.Type)
	assert.Equal(t, int64(60000), purchase.FrameTimestamp)
	assert.Equal(t, int64(30000), purchase.Timestamp)

	kill := details.PlayerTimelineEvents[1]
	assert.Equal(t, "CHAMPION_KILL", kill.Type)
	require.NotNil(t, kill.KillerId)
	assert.Equal(t, 2, *kill.KillerId)
	assert.Equal(t, int64(120000), kill.FrameTimestamp)

	assist := details.PlayerTimelineEvents[2]
	assert.Equal(t, []int{2}, assist.AssistingParticipantIds)
}

func TestGetMatchDetailsTimelineFailureDegrades(t *testing.T) {
	riot := new(testutil.RiotAPIMock)
	service := newTestService(riot)

	riot.On("GetMatchData", mock.Anything, "NA1_1").Return(newTestMatch(), nil)
	riot.On("GetMatchTimelineData", mock.Anything, "NA1_1").
		Return(nil, apierror.New(apierror.UpstreamUnavailable, "bad gateway"))

	details, err := service.GetMatchDetails(context.Background(), detailsBody())

	require.NoError(t, err)
	assert.Empty(t, details.PlayerTimelineEvents)
	assert.Equal(t, 10, details.PlayerStats.Kills)
}

func TestGetMatchDetailsPlayerNotInMatch(t *testing.T) {
	riot := new(testutil.RiotAPIMock)
	service := newTestService(riot)

	riot.On("GetMatchData", mock.Anything, "NA1_1").Return(newTestMatch(), nil)

	_, err := service.GetMatchDetails(context.Background(), &filters.MatchDetailsBody{MatchId: "NA1_1", PlayerId: "puuid-stranger"})

	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.NotFound))
	assert.Contains(t, err.Error(), messages.PlayerNotInMatch)
	riot.AssertNotCalled(t, "GetMatchTimelineData", mock.Anything, mock.Anything)
}

func TestGetMatchDetailsMatchNotFound(t *testing.T) {
	riot := new(testutil.RiotAPIMock)
	service := newTestService(riot)

	riot.On("GetMatchData", mock.Anything, "NA1_1").
		Return(nil, apierror.New(apierror.NotFound, messages.MatchNotFound))

	_, err := service.GetMatchDetails(context.Background(), detailsBody())

	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.NotFound))
}

func TestBuildTeamObjectives(t *testing.T) {
	views := buildTeamObjectives(newTestMatch())

	require.Len(t, views, 2)
	assert.Equal(t, dto.SideBlue, views[0].Side)
	assert.Equal(t, 1, views[0].Baron)
	assert.Equal(t, 3, views[0].Dragon)
	assert.Equal(t, 9, views[0].Tower)
	assert.True(t, views[0].Win)

	assert.Equal(t, dto.SideRed, views[1].Side)
	assert.Equal(t, 2, views[1].Tower)
	assert.False(t, views[1].Win)
}
