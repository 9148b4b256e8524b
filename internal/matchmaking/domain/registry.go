package domain

// InvolvementRecord tracks one participant's current matchmaking state.
// Records are owned exclusively by the Registry; all mutation flows through
// the orchestrating service.
type InvolvementRecord struct {
	Language string
	Role     Role
	Status   Status
	// RoomID is set only while Status is StatusInGame.
	RoomID string
	// UILocale is the locale used for notifications to this participant.
	UILocale string
}

// Registry is the single source of truth for participant involvement.
// It is not safe for concurrent use; the owning service serializes access.
type Registry struct {
	records map[string]InvolvementRecord
}

// NewRegistry creates an empty involvement registry.
func NewRegistry() *Registry {
	return &Registry{records: map[string]InvolvementRecord{}}
}

// IsOccupied reports whether the participant holds any queue or game slot.
func (r *Registry) IsOccupied(id string) bool {
	record, ok := r.records[id]
	return ok && record.Status != StatusNone
}

// IsQueued reports whether the participant is in one of the waiting states.
func (r *Registry) IsQueued(id string) bool {
	record, ok := r.records[id]
	return ok && record.Status.Waiting()
}

// Get returns the record for a participant.
func (r *Registry) Get(id string) (InvolvementRecord, bool) {
	record, ok := r.records[id]
	return record, ok
}

// Upsert stores the record for a participant.
func (r *Registry) Upsert(id string, record InvolvementRecord) {
	r.records[id] = record
}

// SetStatus updates the status of an existing record. Missing records are
// ignored; a participant with no record holds no slot to transition.
func (r *Registry) SetStatus(id string, status Status) {
	record, ok := r.records[id]
	if !ok {
		return
	}
	record.Status = status
	if status != StatusInGame {
		record.RoomID = ""
	}
	r.records[id] = record
}

// SetInGame transitions an existing record into an active room.
func (r *Registry) SetInGame(id string, roomID string) {
	record, ok := r.records[id]
	if !ok {
		return
	}
	record.Status = StatusInGame
	record.RoomID = roomID
	r.records[id] = record
}

// Remove pops and returns the record, used to snapshot state before a
// departure cascade.
func (r *Registry) Remove(id string) (InvolvementRecord, bool) {
	record, ok := r.records[id]
	if ok {
		delete(r.records, id)
	}
	return record, ok
}

// Len returns the number of tracked participants.
func (r *Registry) Len() int {
	return len(r.records)
}
