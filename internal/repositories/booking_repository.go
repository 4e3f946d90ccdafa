package repositories

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"coachbooking/internal/domain"
	"coachbooking/internal/domain/models"
)

// BookingRepository reads and creates bookings on the reservation API.
type BookingRepository struct {
	Client *Client
}

func (r BookingRepository) GetAll(ctx context.Context) ([]models.BookingRecord, error) {
	var records []models.BookingRecord
	err := r.Client.Do(ctx, http.MethodGet, "/bookings/all", nil, nil, &records)
	return records, err
}

func (r BookingRepository) GetAllByPhone(ctx context.Context, phone string) ([]models.BookingRecord, error) {
	var records []models.BookingRecord
	err := r.Client.Do(ctx, http.MethodGet, "/bookings/all/"+url.PathEscape(phone), nil, nil, &records)
	return records, err
}

func (r BookingRepository) GetAllByUsername(ctx context.Context, username string) ([]models.BookingRecord, error) {
	var records []models.BookingRecord
	err := r.Client.Do(ctx, http.MethodGet, "/bookings/all/user/"+url.PathEscape(username), nil, nil, &records)
	return records, err
}

func (r BookingRepository) GetPage(ctx context.Context, p domain.Pagination) ([]models.BookingRecord, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	var records []models.BookingRecord
	err := r.Client.Do(ctx, http.MethodGet, "/bookings/paging", q, nil, &records)
	return records, err
}

// EmptySeats returns the occupancy records for a trip. The seat names they
// carry are the trip's ordered (unavailable) seats.
func (r BookingRepository) EmptySeats(ctx context.Context, tripID int64) ([]models.BookingRecord, error) {
	q := url.Values{}
	q.Set("tripId", strconv.FormatInt(tripID, 10))
	var records []models.BookingRecord
	err := r.Client.Do(ctx, http.MethodGet, "/bookings/emptySeats", q, nil, &records)
	return records, err
}

func (r BookingRepository) GetByID(ctx context.Context, bookingID int64) (models.BookingRecord, error) {
	var record models.BookingRecord
	err := r.Client.Do(ctx, http.MethodGet, fmt.Sprintf("/bookings/%d", bookingID), nil, nil, &record)
	return record, err
}

// Create submits the assembled booking draft. The backend fans it out into
// one ticket per selected seat.
func (r BookingRepository) Create(ctx context.Context, sub models.BookingSubmission) error {
	return r.Client.Do(ctx, http.MethodPost, "/bookings", nil, sub, nil)
}

func (r BookingRepository) Update(ctx context.Context, record models.BookingRecord) (models.BookingRecord, error) {
	var out models.BookingRecord
	err := r.Client.Do(ctx, http.MethodPut, "/bookings", nil, record, &out)
	return out, err
}

func (r BookingRepository) Delete(ctx context.Context, bookingID int64) error {
	return r.Client.Do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", bookingID), nil, nil, nil)
}
