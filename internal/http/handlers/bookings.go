package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coachbooking/internal/domain/models"
	"coachbooking/internal/services"
)

// bookingView decorates a record with the display labels the history
// screens show.
type bookingView struct {
	models.BookingRecord
	StatusDisplay string `json:"statusDisplay"`
}

func bookingViews(records []models.BookingRecord) []bookingView {
	views := make([]bookingView, 0, len(records))
	for _, r := range records {
		views = append(views, bookingView{
			BookingRecord: r,
			StatusDisplay: services.PaymentStatusDisplay(r.PaymentStatus),
		})
	}
	return views
}

// GET /api/bookings/history?phone=...
//
// Anonymous lookup: only upcoming departures, newest first.
func (h *Handler) SearchBookingsByPhone(c *gin.Context) {
	records, err := h.History.SearchByPhone(c.Request.Context(), c.Query("phone"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingViews(records))
}

// GET /api/bookings/mine
//
// Full booking history of the logged-in account.
func (h *Handler) ListMyBookings(c *gin.Context) {
	sess := h.Session.Current()
	if !sess.LoggedIn() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "bạn chưa đăng nhập"})
		return
	}
	records, err := h.History.ListByUsername(c.Request.Context(), sess.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingViews(records))
}

// GET /api/bookings/:id
func (h *Handler) GetBookingDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mã đặt vé không hợp lệ"})
		return
	}
	record, err := h.History.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookingView{
		BookingRecord: record,
		StatusDisplay: services.PaymentStatusDisplay(record.PaymentStatus),
	})
}

// GET /api/bookings/:id/e-ticket
func (h *Handler) GetBookingETicketPDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mã đặt vé không hợp lệ"})
		return
	}
	pdf, filename, err := h.Docs.GenerateETicket(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
