package services

import (
	"context"
	"sort"
	"time"

	"coachbooking/internal/domain"
	"coachbooking/internal/domain/models"
	"coachbooking/internal/utils"
)

// BookingReader is the booking history read side.
type BookingReader interface {
	GetAllByPhone(ctx context.Context, phone string) ([]models.BookingRecord, error)
	GetAllByUsername(ctx context.Context, username string) ([]models.BookingRecord, error)
	GetByID(ctx context.Context, bookingID int64) (models.BookingRecord, error)
}

// HistoryService serves the booking history views: tickets by phone show
// upcoming trips only, tickets for a logged-in user show everything. Both
// come back newest departure first.
type HistoryService struct {
	Bookings BookingReader
	Now      func() time.Time
}

// SearchByPhone lists a caller's upcoming tickets, departure descending.
func (s HistoryService) SearchByPhone(ctx context.Context, phone string) ([]models.BookingRecord, error) {
	if !phoneRegex.MatchString(phone) {
		return nil, domain.ValidationError{Field: "phone", Msg: msgPhoneInvalid}
	}
	records, err := s.Bookings.GetAllByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	return sortByDepartureDesc(upcomingOnly(records, s.now())), nil
}

// ListByUsername lists every ticket of an account, departure descending.
func (s HistoryService) ListByUsername(ctx context.Context, username string) ([]models.BookingRecord, error) {
	records, err := s.Bookings.GetAllByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return sortByDepartureDesc(records), nil
}

// Detail loads one booking with its payment history.
func (s HistoryService) Detail(ctx context.Context, bookingID int64) (models.BookingRecord, error) {
	return s.Bookings.GetByID(ctx, bookingID)
}

func (s HistoryService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func upcomingOnly(records []models.BookingRecord, now time.Time) []models.BookingRecord {
	out := make([]models.BookingRecord, 0, len(records))
	for _, r := range records {
		at, err := utils.ParseDateTime(r.Trip.DepartureDateTime)
		if err != nil {
			continue
		}
		if at.After(now) {
			out = append(out, r)
		}
	}
	return out
}

func sortByDepartureDesc(records []models.BookingRecord) []models.BookingRecord {
	out := make([]models.BookingRecord, len(records))
	copy(out, records)
	// the wire format sorts lexicographically in time order
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Trip.DepartureDateTime > out[j].Trip.DepartureDateTime
	})
	return out
}

// PaymentStatusDisplay is the customer-facing label of a payment status.
func PaymentStatusDisplay(status domain.PaymentStatus) string {
	switch status {
	case domain.PaymentStatusUnpaid:
		return "Chưa thanh toán"
	case domain.PaymentStatusPaid:
		return "Đã thanh toán"
	case domain.PaymentStatusCancel:
		return "Đã hủy vé"
	default:
		return string(status)
	}
}

// PaymentHistoryDisplay labels one status transition; a nil old status is
// the creation entry.
func PaymentHistoryDisplay(old *domain.PaymentStatus) string {
	if old == nil {
		return "Tạo mới"
	}
	return PaymentStatusDisplay(*old)
}
