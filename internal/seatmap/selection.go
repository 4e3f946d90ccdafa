package seatmap

import (
	"strings"

	"coachbooking/internal/domain"
)

// MaxSeatSelect caps how many seats one booking may hold; the backend
// creates one ticket per selected seat.
const MaxSeatSelect = 5

// SeatState is the tri-state a seat renders as. Occupied wins over selected.
type SeatState string

const (
	SeatFree     SeatState = "FREE"
	SeatSelected SeatState = "SELECTED"
	SeatOccupied SeatState = "OCCUPIED"
)

// Selection owns one session copy of a coach layout together with the
// occupancy reported by the backend for the chosen trip. It is discarded
// whenever the wizard resets or a different trip is chosen.
type Selection struct {
	layout       Layout
	occupied     map[string]bool
	selected     []string
	pricePerSeat int64
}

// NewSelection builds the engine for a coach type, seeding the occupied set
// from the trip's occupancy records. pricePerSeat is the trip's effective
// price.
func NewSelection(coachType domain.CoachType, occupiedSeats []string, pricePerSeat int64) *Selection {
	occ := make(map[string]bool, len(occupiedSeats))
	for _, s := range occupiedSeats {
		s = strings.ToUpper(strings.TrimSpace(s))
		if s != "" {
			occ[s] = true
		}
	}
	return &Selection{
		layout:       BuildLayout(coachType),
		occupied:     occ,
		selected:     []string{},
		pricePerSeat: pricePerSeat,
	}
}

// Toggle flips the selection state of a seat and reports whether anything
// changed. In order: occupied seats are immutable; picking a new seat at the
// cap is refused; a seat missing from the layout (excluded by coach type) is
// ignored.
func (s *Selection) Toggle(seatName string) bool {
	name := strings.ToUpper(strings.TrimSpace(seatName))
	if s.occupied[name] {
		return false
	}
	deck := DeckOf(name)
	seat, ok := s.layout[deck][name]
	if !ok {
		return false
	}
	idx := s.indexOf(name)
	if idx < 0 && len(s.selected) == MaxSeatSelect {
		return false
	}
	if idx < 0 {
		s.selected = append(s.selected, name)
		seat.Chosen = true
	} else {
		s.selected = append(s.selected[:idx], s.selected[idx+1:]...)
		seat.Chosen = false
	}
	return true
}

// Selected returns the chosen seat names in selection order.
func (s *Selection) Selected() []string {
	out := make([]string, len(s.selected))
	copy(out, s.selected)
	return out
}

func (s *Selection) Count() int {
	return len(s.selected)
}

// Total is the running payment amount: seat count times effective price.
func (s *Selection) Total() int64 {
	return int64(len(s.selected)) * s.pricePerSeat
}

// StateOf derives the render state of a seat purely from occupied-set and
// selection-list membership.
func (s *Selection) StateOf(seatName string) SeatState {
	name := strings.ToUpper(strings.TrimSpace(seatName))
	if s.occupied[name] {
		return SeatOccupied
	}
	if s.indexOf(name) >= 0 {
		return SeatSelected
	}
	return SeatFree
}

// Layout exposes the session copy for rendering.
func (s *Selection) Layout() Layout {
	return s.layout
}

func (s *Selection) indexOf(name string) int {
	for i, v := range s.selected {
		if v == name {
			return i
		}
	}
	return -1
}
