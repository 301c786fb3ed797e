package matchdetailservice

import (
	matchfetcher "riftwatch/fetcher/data/match"

	"riftwatch/api/dto"
)

// extractPlayerEvents flattens the timeline frames into the events that
// reference the player, keeping frame order and tagging each event with the
// timestamp of it's frame.
func extractPlayerEvents(timeline *matchfetcher.MatchTimeline, participantId int) []*dto.TimelineEventView {
	if participantId == 0 {
		return []*dto.TimelineEventView{}
	}

	events := []*dto.TimelineEventView{}
	for _, frame := range timeline.Info.Frames {
		for i := range frame.Events {
			event := &frame.Events[i]
			if !referencesParticipant(event, participantId) {
				continue
			}
			events = append(events, newEventView(event, frame.Timestamp))
		}
	}
	return events
}

// referencesParticipant reports whether the event involves the participant
// in any of the actor roles it can carry.
func referencesParticipant(event *matchfetcher.EventFrame, participantId int) bool {
	for _, id := range []*int{event.ParticipantId, event.KillerId, event.VictimId, event.CreatorId} {
		if id != nil && *id == participantId {
			return true
		}
	}
	for _, id := range event.AssistingParticipantIds {
		if id == participantId {
			return true
		}
	}
	return false
}

func newEventView(event *matchfetcher.EventFrame, frameTimestamp int64) *dto.TimelineEventView {
	return &dto.TimelineEventView{
		FrameTimestamp:          frameTimestamp,
		Timestamp:               event.Timestamp,
		Type:                    event.Type,
		ParticipantId:           event.ParticipantId,
		KillerId:                event.KillerId,
		VictimId:                event.VictimId,
		CreatorId:               event.CreatorId,
		AssistingParticipantIds: event.AssistingParticipantIds,
		ItemId:                  event.ItemId,
		SkillSlot:               event.SkillSlot,
		Level:                   event.Level,
		LevelUpType:             event.LevelUpType,
		WardType:                event.WardType,
		MonsterType:             event.MonsterType,
		BuildingType:            event.BuildingType,
		TowerType:               event.TowerType,
		LaneType:                event.LaneType,
		TeamId:                  event.TeamId,
		Position:                event.Position,
	}
}
