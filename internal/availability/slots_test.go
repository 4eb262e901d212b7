package availability

import "testing"

func TestSlots_Grid(t *testing.T) {
	slots := Slots()

	if len(slots) != 16 {
		t.Fatalf("expected 16 slots, got %d", len(slots))
	}
	if slots[0] != "09:00" {
		t.Fatalf("expected first slot 09:00, got %s", slots[0])
	}
	if slots[len(slots)-1] != "16:30" {
		t.Fatalf("expected last slot 16:30, got %s", slots[len(slots)-1])
	}
}

func TestSlots_Increasing(t *testing.T) {
	slots := Slots()
	for i := 1; i < len(slots); i++ {
		if slots[i] <= slots[i-1] {
			t.Fatalf("slots out of order at %d: %s then %s", i, slots[i-1], slots[i])
		}
	}
}

func TestSlots_Stable(t *testing.T) {
	a := Slots()
	b := Slots()
	if len(a) != len(b) {
		t.Fatalf("slot grid changed between calls: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("slot %d changed between calls: %s vs %s", i, a[i], b[i])
		}
	}
}
