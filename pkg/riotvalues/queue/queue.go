package queuevalues

// QueueDisplayName maps the queue ids we care about to human labels.
var QueueDisplayName = map[int]string{
	400:  "Normal Draft",
	420:  "Ranked Solo/Duo",
	430:  "Normal Blind",
	440:  "Ranked Flex",
	450:  "ARAM",
	490:  "Quickplay",
	700:  "Clash",
	720:  "ARAM Clash",
	900:  "URF",
	1020: "One for All",
	1300: "Nexus Blitz",
	1400: "Ultimate Spellbook",
	1700: "Arena",
	1900: "URF",
}

// RankedSolo is the queue id used for the winrate sample.
const RankedSolo = 420

// QueueTypeDisplayName maps the ranked queue type strings from the league endpoint.
var QueueTypeDisplayName = map[string]string{
	"RANKED_SOLO_5x5": "Ranked Solo/Duo",
	"RANKED_FLEX_SR":  "Ranked Flex",
}

// NonCompetitiveModes are game modes/types that void a match regardless of outcome.
var NonCompetitiveModes = map[string]bool{
	"PRACTICETOOL":    true,
	"TUTORIAL":        true,
	"TUTORIAL_MODULE": true,
	"CUSTOM_GAME":     true,
}

// DisplayName returns the queue label, falling back to the raw game mode.
func DisplayName(queueId int, gameMode string) string {
	if label, ok := QueueDisplayName[queueId]; ok {
		return label
	}
	return gameMode
}
