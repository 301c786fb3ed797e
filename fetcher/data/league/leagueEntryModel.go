package leaguefetcher

// LeagueEntry is the type returned by the league entries endpoint.
// Tier and rank are absent for unranked queues.
type LeagueEntry struct {
	Puuid        string  `json:"puuid"`
	QueueType    string  `json:"queueType"`
	Tier         *string `json:"tier,omitempty"`
	Rank         *string `json:"rank,omitempty"`
	LeaguePoints int     `json:"leaguePoints"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	FreshBlood   bool    `json:"freshBlood"`
	HotStreak    bool    `json:"hotStreak"`
}
