package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"yogabooking/internal/domain"
	"yogabooking/internal/domain/models"
	"yogabooking/internal/repositories"
	"yogabooking/internal/utils"
)

// DocsService renders the booking confirmation PDF from the ledger's
// denormalized record.
type DocsService struct {
	Ledger    repositories.BookingLedger
	RequestID string

	// Loader overrides the ledger scan, used by tests.
	Loader func(classID, email string) (models.BookingRecord, error)
}

func (s DocsService) GenerateConfirmation(ctx context.Context, classID, email string) ([]byte, string, error) {
	rec, err := s.loadBooking(ctx, classID, email)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_confirmation",
		fmt.Sprintf("class_id=%s", classID))
	return buildConfirmationPDF(rec)
}

func (s DocsService) loadBooking(ctx context.Context, classID, email string) (models.BookingRecord, error) {
	if s.Loader != nil {
		return s.Loader(classID, email)
	}
	entries, err := s.Ledger.ListBookings(ctx)
	if err != nil {
		return models.BookingRecord{}, err
	}
	for _, e := range entries {
		if e.Record.ClassID == classID && e.Record.Email == email && e.Record.Status == models.StatusBooked {
			return e.Record, nil
		}
	}
	return models.BookingRecord{}, domain.NotFoundError{Resource: "booking"}
}

func buildConfirmationPDF(rec models.BookingRecord) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Email      : %s", safe(rec.Email, "-")),
		fmt.Sprintf("Class      : %s", safe(rec.ClassType, "-")),
		fmt.Sprintf("Teacher    : %s", safe(rec.TeacherName, "-")),
		fmt.Sprintf("Date       : %s", safe(rec.Date, "-")),
		fmt.Sprintf("Price      : %s", utils.FormatMoney(rec.Price)),
		fmt.Sprintf("Status     : %s", safe(rec.Status, "-")),
		fmt.Sprintf("Issued     : %s", time.Now().Format("2006-01-02 15:04")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please arrive 10 minutes before the class starts and show this confirmation at the studio.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("CONFIRMATION_%s_%s.pdf",
		utils.SafeFilenamePart(rec.ClassID), utils.SafeFilenamePart(rec.Email))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
