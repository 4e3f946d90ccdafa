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

// TripRepository reads and manages trips on the reservation API.
type TripRepository struct {
	Client *Client
}

func (r TripRepository) GetAll(ctx context.Context) ([]models.Trip, error) {
	var trips []models.Trip
	err := r.Client.Do(ctx, http.MethodGet, "/trips/all", nil, nil, &trips)
	return trips, err
}

// FindBySourceAndDest queries trips between two provinces inside a date
// window. Dates travel as "yyyy-MM-dd" path segments.
func (r TripRepository) FindBySourceAndDest(ctx context.Context, sourceID, destID int64, from, to string) ([]models.Trip, error) {
	path := fmt.Sprintf("/trips/%d/%d/%s/%s", sourceID, destID, url.PathEscape(from), url.PathEscape(to))
	var trips []models.Trip
	err := r.Client.Do(ctx, http.MethodGet, path, nil, nil, &trips)
	return trips, err
}

func (r TripRepository) GetPage(ctx context.Context, p domain.Pagination) ([]models.Trip, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(p.Page))
	q.Set("limit", strconv.Itoa(p.Limit))
	var trips []models.Trip
	err := r.Client.Do(ctx, http.MethodGet, "/trips/paging", q, nil, &trips)
	return trips, err
}

func (r TripRepository) GetByID(ctx context.Context, tripID int64) (models.Trip, error) {
	var trip models.Trip
	err := r.Client.Do(ctx, http.MethodGet, fmt.Sprintf("/trips/%d", tripID), nil, nil, &trip)
	return trip, err
}

func (r TripRepository) Create(ctx context.Context, trip models.Trip) (models.Trip, error) {
	var out models.Trip
	err := r.Client.Do(ctx, http.MethodPost, "/trips", nil, trip, &out)
	return out, err
}

func (r TripRepository) Update(ctx context.Context, trip models.Trip) (models.Trip, error) {
	var out models.Trip
	err := r.Client.Do(ctx, http.MethodPut, "/trips", nil, trip, &out)
	return out, err
}

func (r TripRepository) Delete(ctx context.Context, tripID int64) error {
	return r.Client.Do(ctx, http.MethodDelete, fmt.Sprintf("/trips/%d", tripID), nil, nil, nil)
}
