package messages

const (
	AccountNotFound     = "account not found for the given riot id"
	BadStatusCodeMsg    = "API returned status code %d on URL %s"
	FailedToParseMsg    = "failed to parse API response"
	MatchNotFound       = "match not found"
	MissingHandleFields = "displayName and discriminator are required"
	MissingMatchFields  = "matchId and playerId are required"
	PlayerNotInMatch    = "player not found in the match participants"
	RateLimitedMsg      = "the upstream API is rate limited, please wait and retry"
	RequestFailedMsg    = "API request failed on URL %s"
)
