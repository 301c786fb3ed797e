package matchfetcher

// MatchTimeline is the return type from the timeline endpoint.
type MatchTimeline struct {
	Info MatchTimelineData `json:"info"`
}

// MatchTimelineData holds the timeline frames and the participant mapping.
type MatchTimelineData struct {
	EndOfGameResult string                      `json:"endOfGameResult"`
	FrameInterval   int64                       `json:"frameInterval"`
	Frames          []MatchTimelineFrame        `json:"frames"`
	Participants    []MatchTimelineParticipants `json:"participants"`
}

// MatchTimelineFrame is generated every FrameInterval interval.
type MatchTimelineFrame struct {
	Events    []EventFrame `json:"events"`
	Timestamp int64        `json:"timestamp"`
}

// EventFrame is a single in-match event.
// Pointer fields are only present for the event types that carry them.
type EventFrame struct {
	AssistingParticipantIds []int          `json:"assistingParticipantIds,omitempty"`
	BuildingType            *string        `json:"buildingType,omitempty"`
	CreatorId               *int           `json:"creatorId,omitempty"`
	ItemId                  *int           `json:"itemId,omitempty"`
	KillerId                *int           `json:"killerId,omitempty"`
	LaneType                *string        `json:"laneType,omitempty"`
	Level                   *int           `json:"level,omitempty"`
	LevelUpType             *string        `json:"levelUpType,omitempty"`
	MonsterType             *string        `json:"monsterType,omitempty"`
	ParticipantId           *int           `json:"participantId,omitempty"`
	Position                map[string]int `json:"position,omitempty"`
	SkillSlot               *int           `json:"skillSlot,omitempty"`
	TeamId                  *int           `json:"teamId,omitempty"`
	Timestamp               int64          `json:"timestamp"`
	TowerType               *string        `json:"towerType,omitempty"`
	Type                    string         `json:"type"`
	VictimId                *int           `json:"victimId,omitempty"`
	WardType                *string        `json:"wardType,omitempty"`
}

// MatchTimelineParticipants maps each puuid to it's id inside the timeline.
type MatchTimelineParticipants struct {
	ParticipantId int    `json:"participantId"`
	Puuid         string `json:"puuid"`
}
