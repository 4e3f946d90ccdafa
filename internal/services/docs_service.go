package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"coachbooking/internal/domain/models"
	"coachbooking/internal/utils"

	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"
)

// DocsService renders a printable e-ticket for a confirmed booking. The
// backend stores one record per seat, so one booking id yields one ticket.
type DocsService struct {
	Bookings BookingReader
	Log      *zap.Logger
}

func (s DocsService) GenerateETicket(ctx context.Context, bookingID int64) ([]byte, string, error) {
	record, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	if s.Log != nil {
		s.Log.Info("generating e-ticket", zap.Int64("bookingId", bookingID))
	}
	return buildETicketPDF(record)
}

func buildETicketPDF(r models.BookingRecord) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger   : %s", safe(strings.TrimSpace(r.FirstName+" "+r.LastName), "-")),
		fmt.Sprintf("Phone       : %s", safe(r.Phone, "-")),
		fmt.Sprintf("Seat        : %s", safe(r.SeatNumber, "-")),
		fmt.Sprintf("Coach       : %s (%s)", safe(r.Trip.Coach.Name, "-"), r.Trip.Coach.CoachType),
		fmt.Sprintf("Route       : %s -> %s", safe(r.Trip.Source.Name, "-"), safe(r.Trip.Destination.Name, "-")),
		fmt.Sprintf("Departure   : %s", safe(r.Trip.DepartureDateTime, "-")),
		fmt.Sprintf("Pick up     : %s", safe(r.PickUpAddress, "-")),
		fmt.Sprintf("Payment     : %s (%s)", r.PaymentMethod, r.PaymentStatus),
		fmt.Sprintf("Total       : %s", utils.FormatVND(r.TotalPayment)),
		fmt.Sprintf("Booking code: #%d", r.ID),
		fmt.Sprintf("Ticket code : TCK-%d-%s", r.ID, safeFilenamePart(r.SeatNumber)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket is valid for one passenger (one seat). Please present it at departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%d_%s.pdf", r.ID, safeFilenamePart(r.SeatNumber))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "X"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	return replacer.Replace(s)
}
