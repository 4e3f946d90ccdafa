package handlers

import (
	"go.uber.org/zap"

	"coachbooking/internal/config"
	"coachbooking/internal/repositories"
	"coachbooking/internal/services"
	"coachbooking/internal/session"
)

// Handler owns the gateway endpoints and the services behind them.
// One instance serves the whole router.
type Handler struct {
	Log     *zap.Logger
	Session *session.Store

	Provinces repositories.ProvinceRepository
	Trips     repositories.TripRepository
	Bookings  repositories.BookingRepository
	Users     repositories.UserRepository
	AuthRepo  repositories.AuthRepository

	Auth    services.AuthService
	Search  *services.TripSearchService
	History services.HistoryService
	Docs    services.DocsService
	Wizards *WizardManager
}

// NewHandler wires the upstream client, repositories and services.
func NewHandler(env config.Env, store *session.Store, log *zap.Logger) *Handler {
	client := repositories.NewClient(env, store, log)

	tripRepo := repositories.TripRepository{Client: client}
	bookingRepo := repositories.BookingRepository{Client: client}
	userRepo := repositories.UserRepository{Client: client}
	authRepo := repositories.AuthRepository{Client: client}
	provinceRepo := repositories.ProvinceRepository{Client: client}

	h := &Handler{
		Log:       log,
		Session:   store,
		Provinces: provinceRepo,
		Trips:     tripRepo,
		Bookings:  bookingRepo,
		Users:     userRepo,
		AuthRepo:  authRepo,
		Auth:      services.AuthService{Auth: authRepo, Session: store, Log: log},
		Search:    &services.TripSearchService{Trips: tripRepo, Bookings: bookingRepo, Log: log},
		History:   services.HistoryService{Bookings: bookingRepo},
		Docs:      services.DocsService{Bookings: bookingRepo, Log: log},
	}
	h.Wizards = NewWizardManager(func() *services.BookingWizard {
		return services.NewBookingWizard(bookingRepo, bookingRepo, log)
	})
	return h
}
