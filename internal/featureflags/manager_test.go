package featureflags

import "testing"

func TestEnabled_BooleanValues(t *testing.T) {
	m := NewManager("a=on,b=off,c=true,d=false,e=1,f=0")

	if !m.Enabled("a", 1) || !m.Enabled("c", 1) || !m.Enabled("e", 1) {
		t.Fatal("expected enabled boolean values to evaluate true")
	}
	if m.Enabled("b", 1) || m.Enabled("d", 1) || m.Enabled("f", 1) {
		t.Fatal("expected disabled boolean values to evaluate false")
	}
	if m.Enabled("missing", 1) {
		t.Fatal("unknown flags must be off")
	}
}

func TestEnabled_PercentageRollout(t *testing.T) {
	m := NewManager("always=100%,never=0%,canary=25%,junk=abc%")

	if !m.Enabled("always", 1) {
		t.Fatal("100% rollout should always be enabled")
	}
	if m.Enabled("never", 1) || m.Enabled("junk", 1) {
		t.Fatal("0% and malformed rollouts should be disabled")
	}

	first := m.Enabled("canary", 42)
	for i := 0; i < 5; i++ {
		if got := m.Enabled("canary", 42); got != first {
			t.Fatal("rollout evaluation must be deterministic per user")
		}
	}
	if m.Enabled("canary", 0) {
		t.Fatal("percentage rollout requires a non-zero userID")
	}
}

func TestNilManager(t *testing.T) {
	var m *Manager
	if m.Enabled(LegacyConflictStatus, 1) {
		t.Fatal("nil manager must report every flag off")
	}
	if len(m.Snapshot(1)) != 0 {
		t.Fatal("nil manager snapshot must be empty")
	}
}

func TestNamesAndSnapshot(t *testing.T) {
	m := NewManager(" bad ,Legacy_Conflict_Status=ON, y = 20% ,z=off ")

	names := m.Names()
	if len(names) != 3 || names[0] != LegacyConflictStatus || names[1] != "y" || names[2] != "z" {
		t.Fatalf("unexpected names: %#v", names)
	}

	snap := m.Snapshot(123)
	if !snap[LegacyConflictStatus] || snap["z"] {
		t.Fatalf("unexpected snapshot: %#v", snap)
	}
}
