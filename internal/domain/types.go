package domain

// CoachType identifies the physical layout style of a coach.
type CoachType string

const (
	CoachTypeSeat      CoachType = "SEAT"
	CoachTypeBed       CoachType = "BED"
	CoachTypeLimousine CoachType = "LIMOUSINE"
)

// BookingType distinguishes one-way and round-trip bookings.
type BookingType string

const (
	BookingTypeOneWay    BookingType = "ONEWAY"
	BookingTypeRoundTrip BookingType = "ROUNDTRIP"
)

// PaymentMethod is how the customer pays for the booking.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "CASH"
	PaymentMethodCard PaymentMethod = "CARD"
)

// PaymentStatus tracks the payment lifecycle of a booking.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
	PaymentStatusPaid   PaymentStatus = "PAID"
	PaymentStatusCancel PaymentStatus = "CANCEL"
)

// StatusFromMethod derives the payment status forced by a method change:
// CASH bookings start unpaid, CARD bookings are settled up front.
func StatusFromMethod(m PaymentMethod) PaymentStatus {
	if m == PaymentMethodCard {
		return PaymentStatusPaid
	}
	return PaymentStatusUnpaid
}

// Pagination carries paging params for the upstream paging endpoints
// (server pages from a 0-based index).
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}
