package models

import (
	"time"

	"coachbooking/internal/domain"
	"coachbooking/internal/utils"
)

// BookingDraft is the wizard's working object. It is owned by exactly one
// wizard instance for the duration of a booking flow. Source, Destination,
// From, To, the card fields and IsEditMode only steer validation and
// navigation; they are stripped before the draft is sent upstream.
type BookingDraft struct {
	ID              int64                `json:"id"`
	User            *User                `json:"user"`
	Trip            *Trip                `json:"trip"`
	Source          *Province            `json:"source"`
	Destination     *Province            `json:"destination"`
	From            string               `json:"from"`
	To              string               `json:"to"`
	BookingDateTime string               `json:"bookingDateTime"`
	SeatNumber      []string             `json:"seatNumber"`
	BookingType     domain.BookingType   `json:"bookingType"`
	PickUpAddress   string               `json:"pickUpAddress"`
	FirstName       string               `json:"firstName"`
	LastName        string               `json:"lastName"`
	Phone           string               `json:"phone"`
	Email           string               `json:"email"`
	TotalPayment    int64                `json:"totalPayment"`
	PaymentDateTime string               `json:"paymentDateTime"`
	PaymentMethod   domain.PaymentMethod `json:"paymentMethod"`
	PaymentStatus   domain.PaymentStatus `json:"paymentStatus"`
	NameOnCard      string               `json:"nameOnCard"`
	CardNumber      string               `json:"cardNumber"`
	ExpiredDate     string               `json:"expiredDate"`
	CVV             string               `json:"cvv"`
	IsEditMode      bool                 `json:"isEditMode"`
}

// NewBookingDraft returns the wizard's initial draft. ID stays -1 until the
// backend persists the booking.
func NewBookingDraft(now time.Time) BookingDraft {
	return BookingDraft{
		ID:              -1,
		From:            utils.FormatDate(now),
		To:              utils.FormatDate(now),
		BookingDateTime: utils.FormatDateTime(now),
		SeatNumber:      []string{},
		BookingType:     domain.BookingTypeOneWay,
		PaymentDateTime: utils.FormatPaymentDateTime(now),
		PaymentMethod:   domain.PaymentMethodCash,
		PaymentStatus:   domain.PaymentStatusUnpaid,
		ExpiredDate:     utils.FormatCardExpiry(now),
	}
}

// BookingSubmission is the draft minus the stripped transient fields,
// exactly what POST /bookings expects.
type BookingSubmission struct {
	ID              int64                `json:"id"`
	User            *User                `json:"user"`
	Trip            *Trip                `json:"trip"`
	From            string               `json:"from"`
	To              string               `json:"to"`
	BookingDateTime string               `json:"bookingDateTime"`
	SeatNumber      []string             `json:"seatNumber"`
	BookingType     domain.BookingType   `json:"bookingType"`
	PickUpAddress   string               `json:"pickUpAddress"`
	FirstName       string               `json:"firstName"`
	LastName        string               `json:"lastName"`
	Phone           string               `json:"phone"`
	Email           string               `json:"email"`
	TotalPayment    int64                `json:"totalPayment"`
	PaymentDateTime string               `json:"paymentDateTime"`
	PaymentMethod   domain.PaymentMethod `json:"paymentMethod"`
	PaymentStatus   domain.PaymentStatus `json:"paymentStatus"`
}

// Submission strips source, destination, the card fields and isEditMode
// from the draft before it is dispatched to the backend.
func (d BookingDraft) Submission() BookingSubmission {
	return BookingSubmission{
		ID:              d.ID,
		User:            d.User,
		Trip:            d.Trip,
		From:            d.From,
		To:              d.To,
		BookingDateTime: d.BookingDateTime,
		SeatNumber:      d.SeatNumber,
		BookingType:     d.BookingType,
		PickUpAddress:   d.PickUpAddress,
		FirstName:       d.FirstName,
		LastName:        d.LastName,
		Phone:           d.Phone,
		Email:           d.Email,
		TotalPayment:    d.TotalPayment,
		PaymentDateTime: d.PaymentDateTime,
		PaymentMethod:   d.PaymentMethod,
		PaymentStatus:   d.PaymentStatus,
	}
}

// PaymentHistory is one status transition of a persisted booking.
// OldStatus is nil for the creation entry.
type PaymentHistory struct {
	OldStatus            *domain.PaymentStatus `json:"oldStatus"`
	NewStatus            domain.PaymentStatus  `json:"newStatus"`
	StatusChangeDateTime string                `json:"statusChangeDateTime"`
}

// BookingRecord is the read-side view of a persisted booking. The backend
// creates one record per seat, so SeatNumber is a single seat name here.
type BookingRecord struct {
	ID               int64                `json:"id"`
	User             *User                `json:"user"`
	Trip             Trip                 `json:"trip"`
	SeatNumber       string               `json:"seatNumber"`
	BookingDateTime  string               `json:"bookingDateTime"`
	BookingType      domain.BookingType   `json:"bookingType"`
	PickUpAddress    string               `json:"pickUpAddress"`
	FirstName        string               `json:"firstName"`
	LastName         string               `json:"lastName"`
	Phone            string               `json:"phone"`
	Email            string               `json:"email"`
	TotalPayment     int64                `json:"totalPayment"`
	PaymentDateTime  string               `json:"paymentDateTime"`
	PaymentMethod    domain.PaymentMethod `json:"paymentMethod"`
	PaymentStatus    domain.PaymentStatus `json:"paymentStatus"`
	PaymentHistories []PaymentHistory     `json:"paymentHistories,omitempty"`
}

// OccupiedSeats flattens occupancy records into the seat names they hold.
func OccupiedSeats(records []BookingRecord) []string {
	seats := make([]string, 0, len(records))
	for _, r := range records {
		seats = append(seats, r.SeatNumber)
	}
	return seats
}
