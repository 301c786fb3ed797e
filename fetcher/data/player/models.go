package playerfetcher

// Account is the return of a account search by riot id.
type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// MasteryEntry is a single champion mastery from the mastery endpoint.
type MasteryEntry struct {
	ChampionId                   int  `json:"championId"`
	ChampionLevel                int  `json:"championLevel"`
	ChampionPoints               int  `json:"championPoints"`
	ChampionPointsSinceLastLevel int  `json:"championPointsSinceLastLevel"`
	ChestGranted                 bool `json:"chestGranted"`
}
