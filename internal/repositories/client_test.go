package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"coachbooking/internal/config"
	"coachbooking/internal/domain"
	"coachbooking/internal/domain/models"
	"coachbooking/internal/session"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	env := config.Env{UpstreamURL: srv.URL, HTTPTimeout: 5 * time.Second}
	return NewClient(env, store, zap.NewNop()), store
}

func TestClientSendsBearerWhenLoggedIn(t *testing.T) {
	var gotAuth string
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))

	var out []models.Province
	if err := client.Do(context.Background(), http.MethodGet, "/provinces/all", nil, nil, &out); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("anonymous request carried Authorization %q", gotAuth)
	}

	if err := store.Set("an.nguyen", "token-123"); err != nil {
		t.Fatalf("set session: %v", err)
	}
	if err := client.Do(context.Background(), http.MethodGet, "/provinces/all", nil, nil, &out); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotAuth != "Bearer token-123" {
		t.Fatalf("Authorization = %q, want bearer token", gotAuth)
	}
}

func TestClientMapsStatusesToDomainErrors(t *testing.T) {
	cases := []struct {
		status int
		check  func(error) bool
		name   string
	}{
		{http.StatusBadRequest, domain.IsValidation, "validation"},
		{http.StatusUnauthorized, domain.IsUnauthorized, "unauthorized"},
		{http.StatusForbidden, domain.IsUnauthorized, "forbidden"},
		{http.StatusNotFound, domain.IsNotFound, "not found"},
		{http.StatusConflict, domain.IsConflict, "conflict"},
		{http.StatusBadGateway, domain.IsUpstream, "upstream"},
	}
	for _, tc := range cases {
		client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			json.NewEncoder(w).Encode(map[string]string{"message": "nope"})
		}))
		err := client.Do(context.Background(), http.MethodGet, "/x", nil, nil, nil)
		if err == nil || !tc.check(err) {
			t.Fatalf("%s: err = %v, wrong mapping for status %d", tc.name, err, tc.status)
		}
	}
}

func TestLoginWrongPasswordMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	repo := AuthRepository{Client: client}

	_, err := repo.Login(context.Background(), models.LoginRequest{Username: "an", Password: "bad"})
	var unauthorized domain.UnauthorizedError
	if !errors.As(err, &unauthorized) {
		t.Fatalf("err = %v, want unauthorized", err)
	}
	if unauthorized.Msg != "Mật khẩu sai" {
		t.Fatalf("message = %q, want wrong-password copy", unauthorized.Msg)
	}
}

func TestBookingCreateStripsTransientFields(t *testing.T) {
	var payload map[string]any
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/bookings" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	repo := BookingRepository{Client: client}

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	draft := models.NewBookingDraft(now)
	draft.Trip = &models.Trip{ID: 7}
	draft.Source = &models.Province{ID: 1, Name: "Hà Nội"}
	draft.Destination = &models.Province{ID: 2, Name: "Đà Nẵng"}
	draft.SeatNumber = []string{"A1", "A2"}
	draft.NameOnCard = "NGUYEN VAN AN"
	draft.CardNumber = "4111 1111 1111 1111"
	draft.CVV = "123"
	draft.IsEditMode = true

	if err := repo.Create(context.Background(), draft.Submission()); err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, key := range []string{"source", "destination", "nameOnCard", "cardNumber", "expiredDate", "cvv", "isEditMode"} {
		if _, ok := payload[key]; ok {
			t.Fatalf("submission leaked transient field %q", key)
		}
	}
	for _, key := range []string{"from", "to", "seatNumber", "trip", "bookingDateTime", "paymentMethod", "paymentStatus"} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("submission missing field %q", key)
		}
	}
}

func TestEmptySeatsQuery(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bookings/emptySeats" || r.URL.Query().Get("tripId") != "7" {
			t.Fatalf("unexpected request %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode([]models.BookingRecord{{SeatNumber: "A1"}, {SeatNumber: "B3"}})
	}))
	repo := BookingRepository{Client: client}

	records, err := repo.EmptySeats(context.Background(), 7)
	if err != nil {
		t.Fatalf("empty seats: %v", err)
	}
	if seats := models.OccupiedSeats(records); len(seats) != 2 || seats[0] != "A1" {
		t.Fatalf("seats = %v", seats)
	}
}

func TestTripSearchPath(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/trips/1/2/2026-10-01/2026-10-02" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]models.Trip{{ID: 7}})
	}))
	repo := TripRepository{Client: client}

	trips, err := repo.FindBySourceAndDest(context.Background(), 1, 2, "2026-10-01", "2026-10-02")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(trips) != 1 || trips[0].ID != 7 {
		t.Fatalf("trips = %v", trips)
	}
}
