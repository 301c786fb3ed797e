package dto

// MatchDetails is the response for the match-details endpoint.
type MatchDetails struct {
	PlayerStats          *PlayerMatchStats     `json:"playerStats"`
	PlayerTimelineEvents []*TimelineEventView  `json:"playerTimelineEvents"`
	TeamObjectives       []*TeamObjectivesView `json:"teamObjectives"`
	MatchInfo            *MatchInfoView        `json:"matchInfo"`
}

// PlayerMatchStats is the derived stat block for the requested player.
type PlayerMatchStats struct {
	Kills             int             `json:"kills"`
	Deaths            int             `json:"deaths"`
	Assists           int             `json:"assists"`
	Kda               float64         `json:"kda"`
	Damage            DamageBreakdown `json:"damage"`
	GoldEarned        int             `json:"goldEarned"`
	GoldSpent         int             `json:"goldSpent"`
	Vision            VisionStats     `json:"vision"`
	TotalCs           int             `json:"totalCs"`
	CsPerMinute       float64         `json:"csPerMinute"`
	Items             []int           `json:"items"`
	SummonerSpells    []int           `json:"summonerSpells"`
	ChampionId        int             `json:"championId"`
	ChampionName      string          `json:"championName"`
	ChampionLevel     int             `json:"championLevel"`
	ChampionTransform int             `json:"championTransform"`
	Positions         PositionLabels  `json:"positions"`
	Win               bool            `json:"win"`
}

// DamageBreakdown splits the damage numbers of a participant.
type DamageBreakdown struct {
	ToChampions  int `json:"toChampions"`
	Physical     int `json:"physical"`
	Magic        int `json:"magic"`
	True         int `json:"true"`
	Taken        int `json:"taken"`
	ToObjectives int `json:"toObjectives"`
	ToTurrets    int `json:"toTurrets"`
}

// VisionStats groups the vision related counters.
type VisionStats struct {
	Score        int `json:"score"`
	WardsPlaced  int `json:"wardsPlaced"`
	WardsKilled  int `json:"wardsKilled"`
	ControlWards int `json:"controlWards"`
}

// PositionLabels carries the raw position fields from the match payload.
type PositionLabels struct {
	TeamPosition string `json:"teamPosition"`
	Lane         string `json:"lane"`
	Role         string `json:"role"`
}

// TimelineEventView is a single timeline event involving the player,
// tagged with the timestamp of the frame it came from.
type TimelineEventView struct {
	FrameTimestamp          int64          `json:"frameTimestamp"`
	Timestamp               int64          `json:"timestamp"`
	Type                    string         `json:"type"`
	ParticipantId           *int           `json:"participantId,omitempty"`
	KillerId                *int           `json:"killerId,omitempty"`
	VictimId                *int           `json:"victimId,omitempty"`
	CreatorId               *int           `json:"creatorId,omitempty"`
	AssistingParticipantIds []int          `json:"assistingParticipantIds,omitempty"`
	ItemId                  *int           `json:"itemId,omitempty"`
	SkillSlot               *int           `json:"skillSlot,omitempty"`
	Level                   *int           `json:"level,omitempty"`
	LevelUpType             *string        `json:"levelUpType,omitempty"`
	WardType                *string        `json:"wardType,omitempty"`
	MonsterType             *string        `json:"monsterType,omitempty"`
	BuildingType            *string        `json:"buildingType,omitempty"`
	TowerType               *string        `json:"towerType,omitempty"`
	LaneType                *string        `json:"laneType,omitempty"`
	TeamId                  *int           `json:"teamId,omitempty"`
	Position                map[string]int `json:"position,omitempty"`
}

// TeamObjectivesView summarizes one team objective counters.
type TeamObjectivesView struct {
	TeamId     int    `json:"teamId"`
	Side       string `json:"side"`
	Baron      int    `json:"baron"`
	Dragon     int    `json:"dragon"`
	Inhibitor  int    `json:"inhibitor"`
	RiftHerald int    `json:"riftHerald"`
	Tower      int    `json:"tower"`
	Win        bool   `json:"win"`
}

// MatchInfoView is the match level metadata returned with the details.
type MatchInfoView struct {
	MatchId         string `json:"matchId"`
	Mode            string `json:"mode"`
	Queue           string `json:"queue"`
	DurationSeconds int    `json:"durationSeconds"`
	GameCreation    int64  `json:"gameCreation"`
}
