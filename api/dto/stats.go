package dto

// PlayerStats is the response for the player-stats endpoint.
type PlayerStats struct {
	Mastery  []*MasteryEntry      `json:"mastery"`
	Ranked   []*RankedEntry       `json:"ranked"`
	Winrates []*ChampionAggregate `json:"winrates"`
}

// MasteryEntry is a single champion mastery row.
type MasteryEntry struct {
	ChampionId           int    `json:"championId"`
	ChampionName         string `json:"championName,omitempty"`
	Level                int    `json:"level"`
	Points               int    `json:"points"`
	PointsSinceLastLevel int    `json:"pointsSinceLastLevel"`
	ChestGranted         bool   `json:"chestGranted"`
}

// RankedEntry is a player standing on a single ranked queue.
type RankedEntry struct {
	Queue        string `json:"queue"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"lp"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
}

// ChampionAggregate is the derived win/loss row for a single champion over
// the recent ranked sample. The winrate is formatted with one decimal.
type ChampionAggregate struct {
	ChampionName  string `json:"championName"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Winrate       string `json:"winrate"`
	TotalGames    int    `json:"totalGames"`
	AverageDamage int    `json:"averageDamage"`
	AverageGold   int    `json:"averageGold"`
}
