package domain

import "testing"

func TestRegistryOccupancy(t *testing.T) {
	registry := NewRegistry()

	if registry.IsOccupied("a") {
		t.Fatal("expected unknown participant to be unoccupied")
	}

	registry.Upsert("a", InvolvementRecord{Language: "en", Role: RolePlayer, Status: StatusWaitingSingle})
	if !registry.IsOccupied("a") {
		t.Fatal("expected queued participant to be occupied")
	}
	if !registry.IsQueued("a") {
		t.Fatal("expected queued participant to be queued")
	}

	registry.SetInGame("a", "room_en_12345678")
	if !registry.IsOccupied("a") {
		t.Fatal("expected in-game participant to be occupied")
	}
	if registry.IsQueued("a") {
		t.Fatal("expected in-game participant not to be queued")
	}
	record, ok := registry.Get("a")
	if !ok || record.RoomID != "room_en_12345678" {
		t.Fatalf("expected room id on record, got %v (ok=%v)", record, ok)
	}
}

func TestRegistrySetStatusClearsRoomID(t *testing.T) {
	registry := NewRegistry()
	registry.Upsert("a", InvolvementRecord{Language: "en", Role: RolePlayer, Status: StatusInGame, RoomID: "room_en_1"})

	registry.SetStatus("a", StatusWaitingSingle)

	record, _ := registry.Get("a")
	if record.RoomID != "" {
		t.Fatalf("expected room id cleared, got %q", record.RoomID)
	}
	if record.Status != StatusWaitingSingle {
		t.Fatalf("expected waiting single, got %v", record.Status)
	}
}

func TestRegistrySetStatusIgnoresMissing(t *testing.T) {
	registry := NewRegistry()
	registry.SetStatus("ghost", StatusWaitingSingle)
	if registry.Len() != 0 {
		t.Fatal("expected no record created for missing participant")
	}
}

func TestRegistryRemovePopsRecord(t *testing.T) {
	registry := NewRegistry()
	registry.Upsert("a", InvolvementRecord{Language: "en", Role: RoleJudge, Status: StatusWaitingJudge})

	record, ok := registry.Remove("a")
	if !ok || record.Role != RoleJudge {
		t.Fatalf("expected popped judge record, got %v (ok=%v)", record, ok)
	}
	if _, ok := registry.Remove("a"); ok {
		t.Fatal("expected second remove to report missing")
	}
	if registry.IsOccupied("a") {
		t.Fatal("expected removed participant to be unoccupied")
	}
}
