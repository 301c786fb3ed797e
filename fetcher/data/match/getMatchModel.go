package matchfetcher

// MatchData is the return type from the match_v5 endpoint.
type MatchData struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

// MatchMetadata holds the match id and the participant puuids.
type MatchMetadata struct {
	MatchId      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

// MatchInfo contains the basic match metadata.
type MatchInfo struct {
	EndOfGameResult string        `json:"endOfGameResult"`
	GameCreation    RiotTime      `json:"gameCreation"`
	GameDuration    int           `json:"gameDuration"`
	GameMode        string        `json:"gameMode"`
	GameType        string        `json:"gameType"`
	GameVersion     string        `json:"gameVersion"`
	Participants    []MatchPlayer `json:"participants"`
	PlatformId      string        `json:"platformId"`
	QueueId         int           `json:"queueId"`
	Teams           []TeamInfo    `json:"teams"`
}

// MatchPlayer contains the stats and information about a given player in a Match.
type MatchPlayer struct {
	Assists                        int    `json:"assists"`
	ChampionId                     int    `json:"championId"`
	ChampionLevel                  int    `json:"champLevel"`
	ChampionName                   string `json:"championName"`
	ChampionTransform              int    `json:"championTransform"`
	Deaths                         int    `json:"deaths"`
	DamageDealtToObjectives        int    `json:"damageDealtToObjectives"`
	DamageDealtToTurrets           int    `json:"damageDealtToTurrets"`
	GoldEarned                     int    `json:"goldEarned"`
	GoldSpent                      int    `json:"goldSpent"`
	IndividualPosition             string `json:"individualPosition"`
	Item0                          int    `json:"item0"`
	Item1                          int    `json:"item1"`
	Item2                          int    `json:"item2"`
	Item3                          int    `json:"item3"`
	Item4                          int    `json:"item4"`
	Item5                          int    `json:"item5"`
	Item6                          int    `json:"item6"`
	Kills                          int    `json:"kills"`
	Lane                           string `json:"lane"`
	MagicDamageDealtToChampions    int    `json:"magicDamageDealtToChampions"`
	NeutralMinionsKilled           int    `json:"neutralMinionsKilled"`
	ParticipantId                  int    `json:"participantId"`
	PhysicalDamageDealtToChampions int    `json:"physicalDamageDealtToChampions"`
	Puuid                          string `json:"puuid"`
	RiotIdGameName                 string `json:"riotIdGameName"`
	RiotIdTagline                  string `json:"riotIdTagline"`
	Role                           string `json:"role"`
	Summoner1Id                    int    `json:"summoner1Id"`
	Summoner2Id                    int    `json:"summoner2Id"`
	TeamId                         int    `json:"teamId"`
	TeamPosition                   string `json:"teamPosition"`
	TotalDamageDealtToChampions    int    `json:"totalDamageDealtToChampions"`
	TotalDamageTaken               int    `json:"totalDamageTaken"`
	TotalMinionsKilled             int    `json:"totalMinionsKilled"`
	TrueDamageDealtToChampions     int    `json:"trueDamageDealtToChampions"`
	VisionScore                    int    `json:"visionScore"`
	VisionWardsBoughtInGame        int    `json:"visionWardsBoughtInGame"`
	WardsKilled                    int    `json:"wardsKilled"`
	WardsPlaced                    int    `json:"wardsPlaced"`
	Win                            bool   `json:"win"`
}

// TeamInfo contains the team id, the objectives and if the team won.
type TeamInfo struct {
	TeamId     int        `json:"teamId"`
	Win        bool       `json:"win"`
	Objectives Objectives `json:"objectives"`
}

// Objectives holds the per team objective counters.
type Objectives struct {
	Baron      Objective `json:"baron"`
	Dragon     Objective `json:"dragon"`
	Inhibitor  Objective `json:"inhibitor"`
	RiftHerald Objective `json:"riftHerald"`
	Tower      Objective `json:"tower"`
}

// Objective is a single objective counter.
type Objective struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`
}
