package handlers

import (
	"net/http"
	"sort"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"coachbooking/internal/domain"
	"coachbooking/internal/domain/models"
	"coachbooking/internal/seatmap"
	"coachbooking/internal/services"
)

// WizardManager keys live booking flows by an opaque id so several
// clients can book at once without stepping on each other's draft.
type WizardManager struct {
	mu      sync.Mutex
	wizards map[string]*services.BookingWizard
	create  func() *services.BookingWizard
}

func NewWizardManager(create func() *services.BookingWizard) *WizardManager {
	return &WizardManager{
		wizards: make(map[string]*services.BookingWizard),
		create:  create,
	}
}

func (m *WizardManager) Create() (string, *services.BookingWizard) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.NewString()
	w := m.create()
	m.wizards[id] = w
	return id, w
}

func (m *WizardManager) Get(id string) (*services.BookingWizard, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.wizards[id]
	return w, ok
}

func (m *WizardManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.wizards, id)
}

// seatView is one seat as the seat map renders it.
type seatView struct {
	Name  string            `json:"name"`
	Wide  bool              `json:"wide"`
	State seatmap.SeatState `json:"state"`
}

// wizardState is the full snapshot a client needs to render the flow.
type wizardState struct {
	ID    string                `json:"id"`
	Step  string                `json:"step"`
	Draft models.BookingDraft   `json:"draft"`
	Seats map[string][]seatView `json:"seats,omitempty"`
	Total int64                 `json:"total"`
}

func snapshot(id string, w *services.BookingWizard) wizardState {
	state := wizardState{
		ID:    id,
		Step:  w.Step().String(),
		Draft: w.Draft(),
		Total: w.Draft().TotalPayment,
	}
	if sel := w.Selection(); sel != nil {
		state.Seats = seatViews(sel)
	}
	return state
}

func seatViews(sel *seatmap.Selection) map[string][]seatView {
	out := make(map[string][]seatView, 2)
	for deck, seats := range sel.Layout() {
		views := make([]seatView, 0, len(seats))
		for name, seat := range seats {
			views = append(views, seatView{Name: name, Wide: seat.Wide, State: sel.StateOf(name)})
		}
		sort.Slice(views, func(i, j int) bool {
			return seatNumber(views[i].Name) < seatNumber(views[j].Name)
		})
		out[deck] = views
	}
	return out
}

func seatNumber(name string) int {
	if len(name) < 2 {
		return 0
	}
	n, _ := strconv.Atoi(name[1:])
	return n
}

// POST /api/wizard
func (h *Handler) CreateWizard(c *gin.Context) {
	id, w := h.Wizards.Create()

	// Seed the customer fields for a logged-in user; a failed lookup is
	// not fatal, the payment form simply starts empty.
	if sess := h.Session.Current(); sess.LoggedIn() {
		user, err := h.Users.GetByUsername(c.Request.Context(), sess.Username)
		if err != nil {
			h.Log.Warn("profile prefill failed", zap.String("username", sess.Username), zap.Error(err))
		} else {
			w.PrefillFromUser(user)
		}
	}

	c.JSON(http.StatusCreated, snapshot(id, w))
}

// GET /api/wizard/:id
func (h *Handler) GetWizard(c *gin.Context) {
	id := c.Param("id")
	w, ok := h.Wizards.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "phiên đặt vé không tồn tại"})
		return
	}
	c.JSON(http.StatusOK, snapshot(id, w))
}

// DELETE /api/wizard/:id
func (h *Handler) DeleteWizard(c *gin.Context) {
	h.Wizards.Remove(c.Param("id"))
	c.Status(http.StatusNoContent)
}

type selectTripRequest struct {
	Trip        models.Trip     `json:"trip"`
	Source      models.Province `json:"source"`
	Destination models.Province `json:"destination"`
	From        string          `json:"from"`
	To          string          `json:"to"`
}

// POST /api/wizard/:id/trip
func (h *Handler) SelectWizardTrip(c *gin.Context) {
	id := c.Param("id")
	w, ok := h.Wizards.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "phiên đặt vé không tồn tại"})
		return
	}
	var req selectTripRequest
	if !bindJSON(c, &req) {
		return
	}
	w.SelectTrip(req.Trip, req.Source, req.Destination, req.From, req.To)
	c.JSON(http.StatusOK, snapshot(id, w))
}

type toggleSeatRequest struct {
	SeatName string `json:"seatName"`
}

// POST /api/wizard/:id/seats/toggle
func (h *Handler) ToggleWizardSeat(c *gin.Context) {
	id := c.Param("id")
	w, ok := h.Wizards.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "phiên đặt vé không tồn tại"})
		return
	}
	var req toggleSeatRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := w.ToggleSeat(req.SeatName); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot(id, w))
}

type paymentMethodRequest struct {
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
}

// PUT /api/wizard/:id/payment-method
//
// Switching the method immediately forces the derived status, so the
// summary panel updates before the form is submitted.
func (h *Handler) SetWizardPaymentMethod(c *gin.Context) {
	id := c.Param("id")
	w, ok := h.Wizards.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "phiên đặt vé không tồn tại"})
		return
	}
	var req paymentMethodRequest
	if !bindJSON(c, &req) {
		return
	}
	w.SetPaymentMethod(req.PaymentMethod)
	c.JSON(http.StatusOK, snapshot(id, w))
}

// PUT /api/wizard/:id/payment
func (h *Handler) FillWizardPayment(c *gin.Context) {
	id := c.Param("id")
	w, ok := h.Wizards.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "phiên đặt vé không tồn tại"})
		return
	}
	var req services.PaymentDetails
	if !bindJSON(c, &req) {
		return
	}
	w.FillPayment(req)
	c.JSON(http.StatusOK, snapshot(id, w))
}

// POST /api/wizard/:id/next
//
// Advances the flow. Validation failures come back as fieldErrors with the
// step unchanged; from the payment step a successful call submits the
// booking and lands on the done step.
func (h *Handler) AdvanceWizard(c *gin.Context) {
	id := c.Param("id")
	w, ok := h.Wizards.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "phiên đặt vé không tồn tại"})
		return
	}
	step, fieldErrs, err := w.Next(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if fieldErrs.Any() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"step":        step.String(),
			"fieldErrors": fieldErrs,
		})
		return
	}
	c.JSON(http.StatusOK, snapshot(id, w))
}

// POST /api/wizard/:id/back
func (h *Handler) RetreatWizard(c *gin.Context) {
	id := c.Param("id")
	w, ok := h.Wizards.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "phiên đặt vé không tồn tại"})
		return
	}
	w.Back()
	c.JSON(http.StatusOK, snapshot(id, w))
}
