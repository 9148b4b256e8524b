package domain

// PendingPartner is the half-team slot: either empty or holding the one
// participant who committed to team play and waits for a partner. The two
// states are explicit so callers must handle both.
type PendingPartner struct {
	ref ParticipantRef
	ok  bool
}

// Hold stores the participant in the slot.
func (p *PendingPartner) Hold(ref ParticipantRef) {
	p.ref = ref
	p.ok = true
}

// Clear empties the slot.
func (p *PendingPartner) Clear() {
	p.ref = ParticipantRef{}
	p.ok = false
}

// Peek returns the held participant, if any.
func (p *PendingPartner) Peek() (ParticipantRef, bool) {
	return p.ref, p.ok
}

// Occupied reports whether the slot holds a participant.
func (p *PendingPartner) Occupied() bool {
	return p.ok
}

// QueuePool holds one language's waiting participants. Ordering within each
// sequence is FIFO by arrival and is semantically meaningful: earliest
// arrivals are matched first. Pools for different languages never interact.
type QueuePool struct {
	Language string
	Singles  []ParticipantRef
	Pending  PendingPartner
	Teams    []Team
	Judges   []ParticipantRef
}

// NewQueuePool creates an empty pool for a language.
func NewQueuePool(language string) *QueuePool {
	return &QueuePool{Language: language}
}

// AppendSingle adds a single player at the back of the queue.
func (p *QueuePool) AppendSingle(ref ParticipantRef) {
	p.Singles = append(p.Singles, ref)
}

// AppendTeam adds a formed team at the back of the queue.
func (p *QueuePool) AppendTeam(team Team) {
	p.Teams = append(p.Teams, team)
}

// AppendJudge adds a judge at the back of the queue.
func (p *QueuePool) AppendJudge(ref ParticipantRef) {
	p.Judges = append(p.Judges, ref)
}

// RemoveSingle removes the single player with the identifier, preserving the
// order of the rest.
func (p *QueuePool) RemoveSingle(id string) bool {
	for i, ref := range p.Singles {
		if ref.ID == id {
			p.Singles = append(p.Singles[:i], p.Singles[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveJudge removes the judge with the identifier, preserving order.
func (p *QueuePool) RemoveJudge(id string) bool {
	for i, ref := range p.Judges {
		if ref.ID == id {
			p.Judges = append(p.Judges[:i], p.Judges[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveTeamWith removes the whole team containing the identifier and
// returns it, preserving the order of the remaining teams.
func (p *QueuePool) RemoveTeamWith(id string) (Team, bool) {
	for i, team := range p.Teams {
		if team.Contains(id) {
			p.Teams = append(p.Teams[:i], p.Teams[i+1:]...)
			return team, true
		}
	}
	return Team{}, false
}

// Contains reports whether the identifier appears anywhere in the pool.
func (p *QueuePool) Contains(id string) bool {
	for _, ref := range p.Singles {
		if ref.ID == id {
			return true
		}
	}
	if held, ok := p.Pending.Peek(); ok && held.ID == id {
		return true
	}
	for _, team := range p.Teams {
		if team.Contains(id) {
			return true
		}
	}
	for _, ref := range p.Judges {
		if ref.ID == id {
			return true
		}
	}
	return false
}

// WaitingPlayers counts players currently waiting in this pool: singles, the
// pending half-team, and members of formed teams. Judges are not players.
func (p *QueuePool) WaitingPlayers() int {
	count := len(p.Singles) + len(p.Teams)*MaxPlayersPerTeam
	if p.Pending.Occupied() {
		count++
	}
	return count
}
