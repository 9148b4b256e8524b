package domain

// FormTeams pairs off waiting singles two at a time in arrival order and
// appends the new teams to the pool. It returns the teams formed by this
// pass so the caller can transition statuses and notify members. Running it
// again on an unchanged pool forms nothing.
func FormTeams(pool *QueuePool) []Team {
	var formed []Team
	for len(pool.Singles) >= MaxPlayersPerTeam {
		first := pool.Singles[0]
		second := pool.Singles[1]
		pool.Singles = pool.Singles[MaxPlayersPerTeam:]

		// Occupancy exclusivity guarantees the two earliest singles are
		// distinct participants.
		team := Team{First: first, Second: second}
		pool.AppendTeam(team)
		formed = append(formed, team)
	}
	return formed
}

// Reservation holds the teams and judges removed from a pool ahead of a room
// formation attempt. Removal happens before any suspending call so a
// concurrent pass can never double-allocate the same participants.
type Reservation struct {
	Language string
	Teams    []Team
	Judges   []ParticipantRef
}

// Reserve removes exactly teamsPerRoom teams and judgesPerRoom judges from
// the front of the pool. It reports false, leaving the pool untouched, when
// either threshold is not met.
func Reserve(pool *QueuePool, teamsPerRoom, judgesPerRoom int) (Reservation, bool) {
	if len(pool.Teams) < teamsPerRoom || len(pool.Judges) < judgesPerRoom {
		return Reservation{}, false
	}

	reservation := Reservation{
		Language: pool.Language,
		Teams:    make([]Team, teamsPerRoom),
		Judges:   make([]ParticipantRef, judgesPerRoom),
	}
	copy(reservation.Teams, pool.Teams[:teamsPerRoom])
	copy(reservation.Judges, pool.Judges[:judgesPerRoom])
	pool.Teams = append([]Team{}, pool.Teams[teamsPerRoom:]...)
	pool.Judges = append([]ParticipantRef{}, pool.Judges[judgesPerRoom:]...)
	return reservation, true
}

// Release rolls a failed reservation back, restoring the reserved teams and
// judges to the front of their pools in their original relative order.
func (r Reservation) Release(pool *QueuePool) {
	pool.Teams = append(append([]Team{}, r.Teams...), pool.Teams...)
	pool.Judges = append(append([]ParticipantRef{}, r.Judges...), pool.Judges...)
}

// Participants returns every reserved participant, judge first.
func (r Reservation) Participants() []ParticipantRef {
	out := make([]ParticipantRef, 0, len(r.Judges)+len(r.Teams)*MaxPlayersPerTeam)
	out = append(out, r.Judges...)
	for _, team := range r.Teams {
		out = append(out, team.First, team.Second)
	}
	return out
}
