package services

import (
	"context"
	"sync"
	"time"

	"coachbooking/internal/domain"
	"coachbooking/internal/domain/models"
	"coachbooking/internal/seatmap"
	"coachbooking/internal/utils"

	"go.uber.org/zap"
)

// Step is the wizard position. Done is terminal and display-only.
type Step int

const (
	StepTrip Step = iota
	StepSeat
	StepPayment
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepTrip:
		return "TRIP"
	case StepSeat:
		return "SEAT"
	case StepPayment:
		return "PAYMENT"
	case StepDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// BookingWriter submits assembled bookings to the reservation API.
type BookingWriter interface {
	Create(ctx context.Context, sub models.BookingSubmission) error
}

// BookingWizard drives one booking flow through trip selection, seat
// selection and payment. It exclusively owns its draft and the seat
// selection session copy; no two wizard instances share either.
type BookingWizard struct {
	mu        sync.Mutex
	step      Step
	draft     models.BookingDraft
	selection *seatmap.Selection
	bookings  BookingWriter
	occupancy OccupancyReader
	log       *zap.Logger
	now       func() time.Time
}

func NewBookingWizard(bookings BookingWriter, occupancy OccupancyReader, log *zap.Logger) *BookingWizard {
	w := &BookingWizard{
		bookings:  bookings,
		occupancy: occupancy,
		log:       log,
		now:       time.Now,
	}
	w.draft = models.NewBookingDraft(w.now())
	return w
}

func (w *BookingWizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Draft returns a copy of the working draft.
func (w *BookingWizard) Draft() models.BookingDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// Selection exposes the seat engine for rendering, nil before the seat step
// has been entered.
func (w *BookingWizard) Selection() *seatmap.Selection {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selection
}

// SelectTrip records the chosen trip and search context. Choosing a trip
// always clears the previous seat selection so the draft never keeps seat
// names that belong to another trip.
func (w *BookingWizard) SelectTrip(trip models.Trip, source, dest models.Province, from, to string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	t := trip
	w.draft.Trip = &t
	w.draft.Source = &source
	w.draft.Destination = &dest
	w.draft.From = from
	w.draft.To = to
	w.draft.SeatNumber = []string{}
	w.draft.TotalPayment = 0
	w.selection = nil
}

// PrefillFromUser seeds the customer fields from the logged-in account, the
// way the payment form does for authenticated users.
func (w *BookingWizard) PrefillFromUser(u models.User) {
	w.mu.Lock()
	defer w.mu.Unlock()
	user := u
	w.draft.User = &user
	w.draft.FirstName = u.FirstName
	w.draft.LastName = u.LastName
	w.draft.Email = u.Email
	w.draft.Phone = u.Phone
	w.draft.PickUpAddress = u.Address
}

// ToggleSeat flips one seat in the session layout and recomputes the
// draft's seat list and total payment.
func (w *BookingWizard) ToggleSeat(seatName string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step != StepSeat || w.selection == nil {
		return domain.ValidationError{Field: "seatNumber", Msg: "chưa đến bước chọn chỗ"}
	}
	w.selection.Toggle(seatName)
	w.draft.SeatNumber = w.selection.Selected()
	w.draft.TotalPayment = w.selection.Total()
	return nil
}

// SetPaymentMethod switches the payment method and forces the derived
// status right away: CASH stays unpaid until boarding, CARD is paid.
func (w *BookingWizard) SetPaymentMethod(m domain.PaymentMethod) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.PaymentMethod = m
	w.draft.PaymentStatus = domain.StatusFromMethod(m)
}

// PaymentDetails carries the payment-step form fields.
type PaymentDetails struct {
	PickUpAddress string               `json:"pickUpAddress"`
	FirstName     string               `json:"firstName"`
	LastName      string               `json:"lastName"`
	Phone         string               `json:"phone"`
	Email         string               `json:"email"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	NameOnCard    string               `json:"nameOnCard"`
	CardNumber    string               `json:"cardNumber"`
	ExpiredDate   string               `json:"expiredDate"`
	CVV           string               `json:"cvv"`
}

// FillPayment applies the payment form to the draft. Changing the method
// here carries the same status side effect as SetPaymentMethod.
func (w *BookingWizard) FillPayment(p PaymentDetails) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.PickUpAddress = p.PickUpAddress
	w.draft.FirstName = p.FirstName
	w.draft.LastName = p.LastName
	w.draft.Phone = p.Phone
	w.draft.Email = p.Email
	w.draft.NameOnCard = p.NameOnCard
	w.draft.CardNumber = p.CardNumber
	w.draft.ExpiredDate = p.ExpiredDate
	w.draft.CVV = p.CVV
	if p.PaymentMethod != "" {
		w.draft.PaymentMethod = p.PaymentMethod
		w.draft.PaymentStatus = domain.StatusFromMethod(p.PaymentMethod)
	}
}

// Next validates the active step against the draft and advances on success.
// From the payment step it submits the booking: the transient fields are
// stripped, the rest goes to the booking-creation endpoint, and the draft
// resets once the backend accepts it. A failed submission keeps the wizard
// at the payment step with the draft intact so the user can retry.
func (w *BookingWizard) Next(ctx context.Context) (Step, FieldErrors, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.step {
	case StepTrip:
		if errs := validateTripStep(w.draft); errs.Any() {
			return w.step, errs, nil
		}
		if err := w.enterSeatStep(ctx); err != nil {
			return w.step, nil, err
		}
		w.step = StepSeat
		return w.step, nil, nil

	case StepSeat:
		if errs := validateSeatStep(w.draft); errs.Any() {
			return w.step, errs, nil
		}
		w.step = StepPayment
		return w.step, nil, nil

	case StepPayment:
		if errs := validatePaymentStep(w.draft, w.now()); errs.Any() {
			return w.step, errs, nil
		}
		sub := w.draft.Submission()
		if err := w.bookings.Create(ctx, sub); err != nil {
			w.log.Warn("booking submission failed", zap.Error(err))
			return w.step, nil, err
		}
		w.log.Info("booking submitted",
			zap.Int64("tripId", sub.Trip.ID),
			zap.Strings("seats", sub.SeatNumber),
			zap.Int64("totalPayment", sub.TotalPayment),
		)
		w.draft = models.NewBookingDraft(w.now())
		w.selection = nil
		w.step = StepDone
		return w.step, nil, nil

	default:
		return w.step, nil, nil
	}
}

// Back retreats one step without validation. There is nothing before the
// trip step and nothing after the thank-you screen.
func (w *BookingWizard) Back() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > StepTrip && w.step < StepDone {
		w.step--
	}
	return w.step
}

// Reset throws the flow away and starts a fresh draft.
func (w *BookingWizard) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft = models.NewBookingDraft(w.now())
	w.selection = nil
	w.step = StepTrip
}

// enterSeatStep pulls the trip's occupancy and builds the seat engine.
// Seats already on the draft (coming back from a later step) are replayed
// into the fresh session copy; any that became occupied meanwhile drop out.
func (w *BookingWizard) enterSeatStep(ctx context.Context) error {
	trip := w.draft.Trip
	records, err := w.occupancy.EmptySeats(ctx, trip.ID)
	if err != nil {
		return err
	}
	sel := seatmap.NewSelection(trip.Coach.CoachType, models.OccupiedSeats(records), trip.EffectivePrice())
	for _, seat := range utils.NormalizeSeats(w.draft.SeatNumber) {
		sel.Toggle(seat)
	}
	w.selection = sel
	w.draft.SeatNumber = sel.Selected()
	w.draft.TotalPayment = sel.Total()
	return nil
}
