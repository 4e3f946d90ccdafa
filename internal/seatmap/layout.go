package seatmap

import (
	"fmt"
	"strings"

	"coachbooking/internal/domain"
)

// Deck identifiers of the double-decker coach layout.
const (
	DeckDown = "DOWN_STAIR"
	DeckUp   = "UP_STAIR"
)

const seatsPerDeck = 18

// Seat is one selectable slot of the layout. Wide marks the double-width
// front slot of BED and LIMOUSINE coaches.
type Seat struct {
	Name   string `json:"name"`
	Chosen bool   `json:"chosen"`
	Wide   bool   `json:"wide,omitempty"`
}

// Layout maps deck id to seat name to seat descriptor. The session copy held
// by a selection engine is mutated as the user picks seats; the base layout
// is never touched.
type Layout map[string]map[string]*Seat

// BuildLayout returns the canonical layout for a coach type. BED and
// LIMOUSINE coaches lose A18/B18 and get a double-wide A1/B1. An unknown
// coach type falls back to the unmodified base layout.
func BuildLayout(coachType domain.CoachType) Layout {
	layout := baseLayout()
	if coachType == domain.CoachTypeBed || coachType == domain.CoachTypeLimousine {
		delete(layout[DeckDown], "A18")
		delete(layout[DeckUp], "B18")
		layout[DeckDown]["A1"].Wide = true
		layout[DeckUp]["B1"].Wide = true
	}
	return layout
}

// DeckOf derives the deck a seat belongs to from its name prefix:
// A-seats sit downstairs, B-seats upstairs.
func DeckOf(seatName string) string {
	if strings.HasPrefix(strings.ToUpper(seatName), "A") {
		return DeckDown
	}
	return DeckUp
}

func baseLayout() Layout {
	layout := Layout{
		DeckDown: make(map[string]*Seat, seatsPerDeck),
		DeckUp:   make(map[string]*Seat, seatsPerDeck),
	}
	for i := 1; i <= seatsPerDeck; i++ {
		a := fmt.Sprintf("A%d", i)
		b := fmt.Sprintf("B%d", i)
		layout[DeckDown][a] = &Seat{Name: a}
		layout[DeckUp][b] = &Seat{Name: b}
	}
	if err := Validate(layout); err != nil {
		// static configuration, malformed means a programming error
		panic(err)
	}
	return layout
}

// Validate rejects malformed layouts: a seat name used twice across decks,
// a descriptor whose name disagrees with its map key, or a seat filed under
// the wrong deck.
func Validate(l Layout) error {
	seen := map[string]string{}
	for deck, seats := range l {
		if deck != DeckDown && deck != DeckUp {
			return domain.ValidationError{Field: "deck", Msg: fmt.Sprintf("unknown deck %q", deck)}
		}
		for name, seat := range seats {
			if seat == nil || seat.Name != name {
				return domain.ValidationError{Field: "seat", Msg: fmt.Sprintf("seat %q has inconsistent descriptor", name)}
			}
			if other, dup := seen[name]; dup {
				return domain.ValidationError{Field: "seat", Msg: fmt.Sprintf("seat %q appears on decks %s and %s", name, other, deck)}
			}
			if DeckOf(name) != deck {
				return domain.ValidationError{Field: "seat", Msg: fmt.Sprintf("seat %q filed under deck %s", name, deck)}
			}
			seen[name] = deck
		}
	}
	return nil
}
