package service

// LanguageStats describes one language pool's waiting population.
type LanguageStats struct {
	Singles     int
	HalfTeams   int
	FormedTeams int
	TeamPlayers int
	Judges      int
}

// Stats is a point-in-time snapshot of the waiting state across pools.
type Stats struct {
	Rooms     int
	Languages map[string]LanguageStats
	// TotalPlayersWaiting counts waiting players across all languages.
	// Judges are reported per language but excluded from this total.
	TotalPlayersWaiting int
}

// WaitingStats reports queue occupancy per language plus the count of rooms
// formed during this process lifetime.
func (s *Service) WaitingStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{
		Rooms:     len(s.rooms),
		Languages: make(map[string]LanguageStats, len(s.pools)),
	}
	for language, pool := range s.pools {
		ls := LanguageStats{
			Singles:     len(pool.Singles),
			FormedTeams: len(pool.Teams),
			TeamPlayers: len(pool.Teams) * 2,
			Judges:      len(pool.Judges),
		}
		if pool.Pending.Occupied() {
			ls.HalfTeams = 1
		}
		stats.Languages[language] = ls
		stats.TotalPlayersWaiting += ls.Singles + ls.HalfTeams + ls.TeamPlayers
	}
	return stats
}
