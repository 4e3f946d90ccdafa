package services

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"coachbooking/internal/domain"
	"coachbooking/internal/domain/models"
)

type tripFinderFunc func(ctx context.Context, sourceID, destID int64, from, to string) ([]models.Trip, error)

func (f tripFinderFunc) FindBySourceAndDest(ctx context.Context, sourceID, destID int64, from, to string) ([]models.Trip, error) {
	return f(ctx, sourceID, destID, from, to)
}

type occupancyFunc func(ctx context.Context, tripID int64) ([]models.BookingRecord, error)

func (f occupancyFunc) EmptySeats(ctx context.Context, tripID int64) ([]models.BookingRecord, error) {
	return f(ctx, tripID)
}

func testTrip(id int64, departure string, price int64, discount *int64) models.Trip {
	t := models.Trip{
		ID:                id,
		DepartureDateTime: departure,
		Coach:             models.Coach{ID: id, Name: "Xe 1", CoachType: domain.CoachTypeBed, Capacity: 34},
		Price:             price,
	}
	if discount != nil {
		t.Discount = &models.Discount{Amount: discount}
	}
	return t
}

func TestTripFilterApplyComposesTimeAndPrice(t *testing.T) {
	discount := int64(50_000)
	trips := []models.Trip{
		testTrip(1, "2026-10-01 05:00", 100_000, nil),
		testTrip(2, "2026-10-01 09:00", 350_000, &discount), // effective 300000
		testTrip(3, "2026-10-01 15:00", 900_000, nil),
	}

	filter := NewTripFilter()
	filter.ToggleTimeBox(TimeBoxes[1]) // 06:01 - 12:00
	filter.PriceRange = [2]int64{0, 500_000}

	got := filter.Apply(trips)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("filtered = %v, want only trip 2", got)
	}

	// Filtering never mutates the search result.
	if len(trips) != 3 {
		t.Fatalf("source slice was mutated")
	}
}

func TestTripFilterTimeBoxBoundariesInclusive(t *testing.T) {
	trips := []models.Trip{
		testTrip(1, "2026-10-01 06:01", 100_000, nil),
		testTrip(2, "2026-10-01 12:00", 100_000, nil),
		testTrip(3, "2026-10-01 12:01", 100_000, nil),
	}
	filter := NewTripFilter()
	filter.ToggleTimeBox(TimeBoxes[1])

	got := filter.Apply(trips)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("filtered = %v, want trips 1 and 2", got)
	}
}

func TestToggleTimeBoxSecondToggleClears(t *testing.T) {
	filter := NewTripFilter()
	filter.ToggleTimeBox(TimeBoxes[0])
	if filter.TimeBox == nil {
		t.Fatalf("first toggle should activate the box")
	}
	filter.ToggleTimeBox(TimeBoxes[0])
	if filter.TimeBox != nil {
		t.Fatalf("second toggle should clear the box")
	}
}

func TestMovePriceThumbKeepsMinimumDistance(t *testing.T) {
	filter := NewTripFilter()

	filter.MovePriceThumb(1, 300_000)
	filter.MovePriceThumb(0, 295_000)
	if filter.PriceRange[0] != 290_000 {
		t.Fatalf("min = %d, want clamped to 290000", filter.PriceRange[0])
	}

	filter.MovePriceThumb(0, 100_000)
	filter.MovePriceThumb(1, 105_000)
	if filter.PriceRange[1] != 110_000 {
		t.Fatalf("max = %d, want clamped to 110000", filter.PriceRange[1])
	}
}

func TestSearchRequiresBothProvinces(t *testing.T) {
	svc := &TripSearchService{Log: zap.NewNop()}

	_, _, err := svc.Search(context.Background(), nil, &models.Province{ID: 2}, "2026-10-01", "2026-10-02")
	if !domain.IsValidation(err) {
		t.Fatalf("missing source: got %v, want validation error", err)
	}

	_, _, err = svc.Search(context.Background(), &models.Province{ID: 1}, nil, "2026-10-01", "2026-10-02")
	if !domain.IsValidation(err) {
		t.Fatalf("missing destination: got %v, want validation error", err)
	}
}

func TestSearchJoinsOccupancyPerTrip(t *testing.T) {
	svc := &TripSearchService{
		Trips: tripFinderFunc(func(ctx context.Context, sourceID, destID int64, from, to string) ([]models.Trip, error) {
			return []models.Trip{testTrip(1, "2026-10-01 08:00", 200_000, nil), testTrip(2, "2026-10-01 10:00", 200_000, nil)}, nil
		}),
		Bookings: occupancyFunc(func(ctx context.Context, tripID int64) ([]models.BookingRecord, error) {
			if tripID == 1 {
				return []models.BookingRecord{{SeatNumber: "A1"}, {SeatNumber: "A2"}}, nil
			}
			return nil, nil
		}),
		Log: zap.NewNop(),
	}

	trips, occupancy, err := svc.Search(context.Background(), &models.Province{ID: 1}, &models.Province{ID: 2}, "2026-10-01", "2026-10-02")
	if err != nil {
		t.Fatalf("search error: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("trips = %d, want 2", len(trips))
	}
	if got := occupancy[1]; len(got) != 2 {
		t.Fatalf("trip 1 occupancy = %v, want 2 seats", got)
	}
	if got := occupancy[2]; len(got) != 0 {
		t.Fatalf("trip 2 occupancy = %v, want empty", got)
	}
}

func TestSearchStaleResultDoesNotOverwriteNewer(t *testing.T) {
	var svc *TripSearchService
	svc = &TripSearchService{
		Trips: tripFinderFunc(func(ctx context.Context, sourceID, destID int64, from, to string) ([]models.Trip, error) {
			if sourceID == 1 {
				// A newer search finishes while this one is still in flight.
				if _, _, err := svc.Search(ctx, &models.Province{ID: 2}, &models.Province{ID: 9}, from, to); err != nil {
					t.Fatalf("inner search error: %v", err)
				}
				return []models.Trip{testTrip(1, "2026-10-01 08:00", 200_000, nil)}, nil
			}
			return []models.Trip{testTrip(2, "2026-10-01 10:00", 200_000, nil)}, nil
		}),
		Bookings: occupancyFunc(func(ctx context.Context, tripID int64) ([]models.BookingRecord, error) {
			return nil, nil
		}),
		Log: zap.NewNop(),
	}

	if _, _, err := svc.Search(context.Background(), &models.Province{ID: 1}, &models.Province{ID: 9}, "2026-10-01", "2026-10-02"); err != nil {
		t.Fatalf("outer search error: %v", err)
	}

	trips, _ := svc.Current()
	if len(trips) != 1 || trips[0].ID != 2 {
		t.Fatalf("displayed trips = %v, want the newer search's trip 2", trips)
	}
}

func TestRemainingSeatsNotClamped(t *testing.T) {
	svc := &TripSearchService{Log: zap.NewNop()}
	trip := testTrip(1, "2026-10-01 08:00", 200_000, nil)

	if got := svc.RemainingSeats(trip, map[int64][]string{1: {"A1", "A2", "A3"}}); got != 31 {
		t.Fatalf("remaining = %d, want 31", got)
	}

	over := make([]string, 40)
	for i := range over {
		over[i] = "A1"
	}
	if got := svc.RemainingSeats(trip, map[int64][]string{1: over}); got != -6 {
		t.Fatalf("remaining = %d, want -6 (inconsistency surfaces, not hidden)", got)
	}
}
