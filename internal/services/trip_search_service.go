package services

import (
	"context"
	"sync"

	"coachbooking/internal/domain"
	"coachbooking/internal/domain/models"
	"coachbooking/internal/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Price filter bounds. The slider moves in 10k steps and the two thumbs
// never get closer than MinPriceDistance.
const (
	MinPrice         = int64(0)
	MaxPrice         = int64(1_000_000)
	PriceStep        = int64(10_000)
	MinPriceDistance = int64(10_000)
)

// TimeBox is a named departure-time-of-day bucket.
type TimeBox struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// TimeBoxes are the four canonical buckets offered by the filter.
var TimeBoxes = []TimeBox{
	{StartTime: "00:00", EndTime: "06:00"},
	{StartTime: "06:01", EndTime: "12:00"},
	{StartTime: "12:01", EndTime: "18:00"},
	{StartTime: "18:01", EndTime: "23:59"},
}

// TripFilter composes the time-box and price filters by intersection.
// Applying it never mutates the original search result.
type TripFilter struct {
	TimeBox    *TimeBox
	PriceRange [2]int64
}

func NewTripFilter() TripFilter {
	return TripFilter{PriceRange: [2]int64{MinPrice, MaxPrice}}
}

// ToggleTimeBox activates a bucket, or clears the filter when the bucket is
// already active.
func (f *TripFilter) ToggleTimeBox(box TimeBox) {
	if f.TimeBox != nil && f.TimeBox.StartTime == box.StartTime {
		f.TimeBox = nil
		return
	}
	b := box
	f.TimeBox = &b
}

// MovePriceThumb updates one end of the price range, clamping so the two
// thumbs keep MinPriceDistance between them.
func (f *TripFilter) MovePriceThumb(thumb int, value int64) {
	if thumb == 0 {
		f.PriceRange[0] = min(value, f.PriceRange[1]-MinPriceDistance)
		return
	}
	f.PriceRange[1] = max(value, f.PriceRange[0]+MinPriceDistance)
}

// Apply filters trips by departure time-of-day first, then by effective
// price, both inclusive.
func (f TripFilter) Apply(trips []models.Trip) []models.Trip {
	filtered := trips
	if f.TimeBox != nil {
		start, errS := utils.ParseTimeOfDay(f.TimeBox.StartTime)
		end, errE := utils.ParseTimeOfDay(f.TimeBox.EndTime)
		if errS == nil && errE == nil {
			kept := make([]models.Trip, 0, len(filtered))
			for _, trip := range filtered {
				at, err := utils.ParseTimeOfDay(utils.TimeOfDay(trip.DepartureDateTime))
				if err != nil {
					continue
				}
				if !at.Before(start) && !at.After(end) {
					kept = append(kept, trip)
				}
			}
			filtered = kept
		}
	}

	out := make([]models.Trip, 0, len(filtered))
	for _, trip := range filtered {
		price := trip.EffectivePrice()
		if f.PriceRange[0] <= price && price <= f.PriceRange[1] {
			out = append(out, trip)
		}
	}
	return out
}

// searchKey identifies one set of search parameters; results are applied
// last-write-wins by this identity, not by arrival order.
type searchKey struct {
	SourceID int64
	DestID   int64
	From     string
	To       string
}

// TripFinder is the trip read side of the reservation API.
type TripFinder interface {
	FindBySourceAndDest(ctx context.Context, sourceID, destID int64, from, to string) ([]models.Trip, error)
}

// OccupancyReader resolves which seats a trip already has booked.
type OccupancyReader interface {
	EmptySeats(ctx context.Context, tripID int64) ([]models.BookingRecord, error)
}

// TripSearchService runs trip searches and keeps the currently displayed
// result set. Occupancy for every trip on a result page is fetched in
// parallel and joined before the result replaces the displayed list, so
// remaining-seat counts never show half a page. A search that resolves
// after newer parameters became active is discarded.
type TripSearchService struct {
	Trips    TripFinder
	Bookings OccupancyReader
	Log      *zap.Logger

	mu        sync.Mutex
	key       searchKey
	trips     []models.Trip
	occupancy map[int64][]string
}

// Search queries trips between two provinces inside a date window. Both
// provinces must be resolved before the query goes out.
func (s *TripSearchService) Search(ctx context.Context, source, dest *models.Province, from, to string) ([]models.Trip, map[int64][]string, error) {
	if source == nil {
		return nil, nil, domain.ValidationError{Field: "source", Msg: "Vui lòng chọn điểm đi"}
	}
	if dest == nil {
		return nil, nil, domain.ValidationError{Field: "destination", Msg: "Vui lòng chọn điểm đến"}
	}

	key := searchKey{SourceID: source.ID, DestID: dest.ID, From: from, To: to}
	s.mu.Lock()
	s.key = key
	s.mu.Unlock()

	trips, err := s.Trips.FindBySourceAndDest(ctx, source.ID, dest.ID, from, to)
	if err != nil {
		return nil, nil, err
	}

	occupancy, err := s.fetchOccupancy(ctx, trips)
	if err != nil {
		return nil, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.key != key {
		// superseded by a newer search; keep the newer state
		if s.Log != nil {
			s.Log.Debug("discarding stale search result",
				zap.Int64("sourceId", key.SourceID), zap.Int64("destId", key.DestID))
		}
		return trips, occupancy, nil
	}
	s.trips = trips
	s.occupancy = occupancy
	return trips, occupancy, nil
}

// Current returns the displayed result set.
func (s *TripSearchService) Current() ([]models.Trip, map[int64][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trips, s.occupancy
}

func (s *TripSearchService) fetchOccupancy(ctx context.Context, trips []models.Trip) (map[int64][]string, error) {
	occupancy := make(map[int64][]string, len(trips))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, trip := range trips {
		trip := trip
		g.Go(func() error {
			records, err := s.Bookings.EmptySeats(gctx, trip.ID)
			if err != nil {
				return err
			}
			mu.Lock()
			occupancy[trip.ID] = models.OccupiedSeats(records)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return occupancy, nil
}

// RemainingSeats is capacity minus ordered-seat count, display only. A
// negative value is a data inconsistency; it is logged, not hidden.
func (s *TripSearchService) RemainingSeats(trip models.Trip, occupancy map[int64][]string) int {
	remaining := trip.Coach.Capacity - len(occupancy[trip.ID])
	if remaining < 0 && s.Log != nil {
		s.Log.Warn("trip reports more ordered seats than capacity",
			zap.Int64("tripId", trip.ID),
			zap.Int("capacity", trip.Coach.Capacity),
			zap.Int("ordered", len(occupancy[trip.ID])),
		)
	}
	return remaining
}
