package models

import "coachbooking/internal/domain"

// Province is a pick-up/drop-off region used as trip source and destination.
type Province struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Coach is the vehicle serving a trip.
type Coach struct {
	ID        int64            `json:"id"`
	Name      string           `json:"name"`
	CoachType domain.CoachType `json:"coachType"`
	Capacity  int              `json:"capacity"`
}

// Discount reduces the trip price by a flat amount. Amount stays a pointer
// because upstream may send a discount object with no amount set.
type Discount struct {
	ID     int64  `json:"id,omitempty"`
	Amount *int64 `json:"amount"`
}

// Trip is one scheduled departure between two provinces.
// DepartureDateTime keeps the wire format "yyyy-MM-dd HH:mm" verbatim;
// filtering and sorting parse it with utils.ParseDateTime.
type Trip struct {
	ID                int64     `json:"id"`
	Source            Province  `json:"source"`
	Destination       Province  `json:"destination"`
	DepartureDateTime string    `json:"departureDateTime"`
	Duration          *float64  `json:"duration,omitempty"`
	Coach             Coach     `json:"coach"`
	Price             int64     `json:"price"`
	Discount          *Discount `json:"discount,omitempty"`
}

// EffectivePrice is the single source of truth for what a seat costs:
// price minus the discount amount when one is present.
func (t Trip) EffectivePrice() int64 {
	if t.Discount != nil && t.Discount.Amount != nil {
		return t.Price - *t.Discount.Amount
	}
	return t.Price
}
