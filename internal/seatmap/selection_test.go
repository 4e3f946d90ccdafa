package seatmap

import (
	"reflect"
	"testing"

	"coachbooking/internal/domain"
)

func TestToggleSelectAndDeselect(t *testing.T) {
	sel := NewSelection(domain.CoachTypeSeat, nil, 150_000)

	if !sel.Toggle("A3") {
		t.Fatalf("selecting a free seat should succeed")
	}
	if sel.StateOf("A3") != SeatSelected {
		t.Fatalf("A3 state = %s, want SELECTED", sel.StateOf("A3"))
	}
	if sel.Total() != 150_000 {
		t.Fatalf("total = %d, want 150000", sel.Total())
	}

	if !sel.Toggle("a3") {
		t.Fatalf("deselecting should succeed regardless of case")
	}
	if sel.StateOf("A3") != SeatFree {
		t.Fatalf("A3 should be free after deselect")
	}
	if sel.Count() != 0 || sel.Total() != 0 {
		t.Fatalf("count/total should be zero after deselect")
	}
}

func TestToggleOccupiedSeatIsNoOp(t *testing.T) {
	sel := NewSelection(domain.CoachTypeSeat, []string{"B5"}, 100_000)

	if sel.Toggle("B5") {
		t.Fatalf("occupied seat must not toggle")
	}
	if sel.StateOf("B5") != SeatOccupied {
		t.Fatalf("B5 state = %s, want OCCUPIED", sel.StateOf("B5"))
	}
	if sel.Count() != 0 {
		t.Fatalf("count = %d, want 0", sel.Count())
	}
}

func TestToggleRefusesSixthSeat(t *testing.T) {
	sel := NewSelection(domain.CoachTypeSeat, nil, 100_000)
	for _, s := range []string{"A1", "A2", "A3", "A4", "A5"} {
		if !sel.Toggle(s) {
			t.Fatalf("selecting %s should succeed", s)
		}
	}

	if sel.Toggle("A6") {
		t.Fatalf("sixth seat must be refused")
	}
	if sel.Count() != MaxSeatSelect {
		t.Fatalf("count = %d, want %d", sel.Count(), MaxSeatSelect)
	}

	// Deselecting at the cap still works, and frees a slot.
	if !sel.Toggle("A1") {
		t.Fatalf("deselect at cap should succeed")
	}
	if !sel.Toggle("A6") {
		t.Fatalf("selecting after freeing a slot should succeed")
	}
	if want := []string{"A2", "A3", "A4", "A5", "A6"}; !reflect.DeepEqual(sel.Selected(), want) {
		t.Fatalf("selected = %v, want %v", sel.Selected(), want)
	}
}

func TestToggleExcludedSeatIgnored(t *testing.T) {
	sel := NewSelection(domain.CoachTypeBed, nil, 100_000)

	if sel.Toggle("A18") {
		t.Fatalf("A18 does not exist on BED coaches")
	}
	if sel.Count() != 0 {
		t.Fatalf("count = %d, want 0", sel.Count())
	}
}

func TestTotalTracksCount(t *testing.T) {
	sel := NewSelection(domain.CoachTypeLimousine, nil, 250_000)
	sel.Toggle("A1")
	sel.Toggle("B1")
	sel.Toggle("B2")

	if sel.Total() != 750_000 {
		t.Fatalf("total = %d, want 750000", sel.Total())
	}
}
