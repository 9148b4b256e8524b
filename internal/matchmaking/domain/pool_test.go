package domain

import "testing"

func TestPendingPartnerStates(t *testing.T) {
	var pending PendingPartner

	if pending.Occupied() {
		t.Fatal("expected empty slot")
	}
	if _, ok := pending.Peek(); ok {
		t.Fatal("expected nothing to peek")
	}

	pending.Hold(ref("a"))
	if !pending.Occupied() {
		t.Fatal("expected occupied slot")
	}
	held, ok := pending.Peek()
	if !ok || held.ID != "a" {
		t.Fatalf("expected held participant a, got %v (ok=%v)", held, ok)
	}

	pending.Clear()
	if pending.Occupied() {
		t.Fatal("expected cleared slot")
	}
}

func TestRemoveSinglePreservesOrder(t *testing.T) {
	pool := NewQueuePool("en")
	pool.AppendSingle(ref("a"))
	pool.AppendSingle(ref("b"))
	pool.AppendSingle(ref("c"))

	if !pool.RemoveSingle("b") {
		t.Fatal("expected removal of b")
	}
	if pool.RemoveSingle("b") {
		t.Fatal("expected second removal to report false")
	}
	if len(pool.Singles) != 2 || pool.Singles[0].ID != "a" || pool.Singles[1].ID != "c" {
		t.Fatalf("unexpected singles after removal: %v", pool.Singles)
	}
}

func TestRemoveTeamWithEitherMember(t *testing.T) {
	pool := NewQueuePool("en")
	teamAB := Team{First: ref("a"), Second: ref("b")}
	teamCD := Team{First: ref("c"), Second: ref("d")}
	pool.AppendTeam(teamAB)
	pool.AppendTeam(teamCD)

	removed, ok := pool.RemoveTeamWith("d")
	if !ok || removed != teamCD {
		t.Fatalf("expected team (c,d) removed, got %v (ok=%v)", removed, ok)
	}
	if len(pool.Teams) != 1 || pool.Teams[0] != teamAB {
		t.Fatalf("unexpected teams after removal: %v", pool.Teams)
	}
	if _, ok := pool.RemoveTeamWith("d"); ok {
		t.Fatal("expected no team left containing d")
	}
}

func TestContainsCoversAllStructures(t *testing.T) {
	pool := NewQueuePool("en")
	pool.AppendSingle(ref("s"))
	pool.Pending.Hold(ref("p"))
	pool.AppendTeam(Team{First: ref("t1"), Second: ref("t2")})
	pool.AppendJudge(ref("j"))

	for _, id := range []string{"s", "p", "t1", "t2", "j"} {
		if !pool.Contains(id) {
			t.Fatalf("expected pool to contain %s", id)
		}
	}
	if pool.Contains("missing") {
		t.Fatal("expected pool not to contain unknown id")
	}
}

func TestWaitingPlayersExcludesJudges(t *testing.T) {
	pool := NewQueuePool("en")
	pool.AppendSingle(ref("s"))
	pool.Pending.Hold(ref("p"))
	pool.AppendTeam(Team{First: ref("t1"), Second: ref("t2")})
	pool.AppendJudge(ref("j"))

	if got := pool.WaitingPlayers(); got != 4 {
		t.Fatalf("expected 4 waiting players, got %d", got)
	}
}
