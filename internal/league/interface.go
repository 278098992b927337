package league

// LeagueStore defines the interface for the league and player directory.
type LeagueStore interface {
	UpsertLeague(l League) error
	GetLeague(leagueID int64) (*League, error)
	GetLeagueByThreadKey(threadKey string) (*League, error)
	GetLeagues() ([]League, error)
	AddPlayer(p Player) error
	AddIdentifier(playerID string, leagueID int64, identifier string) error
	GetPlayers(leagueID int64) ([]Player, error)
	GetPlayer(playerID string) (*Player, error)
	// ResolvePlayer maps a raw sender identifier to the player that owns it
	// in the given league. It returns nil when no mapping exists in that
	// league; it never falls back to a match from another league.
	ResolvePlayer(senderID string, leagueID int64) (*Player, error)
	Clear()
}
