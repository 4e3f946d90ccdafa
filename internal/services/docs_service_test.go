package services

import (
	"bytes"
	"context"
	"testing"

	"go.uber.org/zap"

	"coachbooking/internal/domain"
	"coachbooking/internal/domain/models"
)

func TestDocsServiceGenerateETicket(t *testing.T) {
	record := models.BookingRecord{
		ID:         42,
		SeatNumber: "A1",
		FirstName:  "An",
		LastName:   "Nguyễn",
		Phone:      "0912345678",
		Trip: models.Trip{
			ID:                7,
			Source:            models.Province{ID: 1, Name: "Hà Nội"},
			Destination:       models.Province{ID: 2, Name: "Đà Nẵng"},
			DepartureDateTime: "2026-10-01 08:00",
			Coach:             models.Coach{Name: "Xe 7", CoachType: domain.CoachTypeBed},
		},
		TotalPayment:  300_000,
		PaymentMethod: domain.PaymentMethodCash,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}
	svc := DocsService{
		Bookings: fakeBookingReader{byID: record},
		Log:      zap.NewNop(),
	}

	pdf, filename, err := svc.GenerateETicket(context.Background(), 42)
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateETicket returned empty data")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if filename != "ETICKET_42_A1.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}
