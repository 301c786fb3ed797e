package rolevalues

// Role is a canonical position on the map.
type Role string

const (
	Top     Role = "top"
	Jungle  Role = "jungle"
	Mid     Role = "mid"
	Bottom  Role = "bottom"
	Support Role = "support"
	Unknown Role = "unknown"
)

// SortOrder gives the fixed ordering used inside a team. Unknown sorts last.
var SortOrder = map[Role]int{
	Top:     0,
	Jungle:  1,
	Mid:     2,
	Bottom:  3,
	Support: 4,
	Unknown: 5,
}

// fromTeamPosition maps the primary riot teamPosition field.
var fromTeamPosition = map[string]Role{
	"TOP":     Top,
	"JUNGLE":  Jungle,
	"MIDDLE":  Mid,
	"BOTTOM":  Bottom,
	"UTILITY": Support,
}

// Derive resolves a participant role from the teamPosition field,
// falling back to the legacy lane/role pair, then to unknown.
func Derive(teamPosition string, lane string, role string) Role {
	if derived, ok := fromTeamPosition[teamPosition]; ok {
		return derived
	}

	switch lane {
	case "TOP":
		return Top
	case "JUNGLE":
		return Jungle
	case "MIDDLE", "MID":
		return Mid
	case "BOTTOM", "BOT":
		// The legacy role field splits the bottom lane pair.
		switch role {
		case "DUO_CARRY", "CARRY":
			return Bottom
		case "DUO_SUPPORT", "SUPPORT":
			return Support
		}
		return Bottom
	}

	switch role {
	case "DUO_CARRY", "CARRY":
		return Bottom
	case "DUO_SUPPORT", "SUPPORT":
		return Support
	}

	return Unknown
}
