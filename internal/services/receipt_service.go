package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/hasnain-sayyid/CargoVan-Connect/internal/domain/models"
	"github.com/hasnain-sayyid/CargoVan-Connect/internal/utils"
)

// ReceiptService renders a PDF receipt per booking with the fare breakdown.
// Loader is injectable for tests; when nil the booking service is used.
type ReceiptService struct {
	Booking   BookingService
	RequestID string
	Loader    func(int64) (models.Booking, error)
}

func (s ReceiptService) GenerateReceipt(bookingID int64) ([]byte, string, error) {
	booking, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "receipt", "generate", fmt.Sprintf("booking_id=%d", bookingID))
	return buildReceiptPDF(booking)
}

func (s ReceiptService) loadBooking(bookingID int64) (models.Booking, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	return s.Booking.Get(bookingID)
}

func buildReceiptPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking    : #%d", b.ID),
		fmt.Sprintf("Date       : %s", time.Now().Format("2006-01-02 15:04")),
		fmt.Sprintf("Status     : %s", b.Status),
		fmt.Sprintf("Pickup     : %s", receiptField(b.PickupLocation)),
		fmt.Sprintf("Dropoff    : %s", receiptField(b.DropoffLocation)),
		fmt.Sprintf("Scheduled  : %s %s", receiptField(b.ScheduledTime), receiptField(b.TimeSlot)),
		fmt.Sprintf("Van size   : %s", receiptField(b.VanSize)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Fare breakdown:")
	pdf.Ln(8)

	dist := utils.ParseDistance(b.Distance)
	breakdown := []string{
		fmt.Sprintf("Base fare                 %s", utils.FormatMoney(utils.FareBase)),
		fmt.Sprintf("Distance  %6.2f mi       %s", dist, utils.FormatMoney(utils.FarePerMile*dist)),
		fmt.Sprintf("Duration  %4d min        %s", b.DurationMinutes, utils.FormatMoney(utils.FarePerMinute*float64(b.DurationMinutes))),
		fmt.Sprintf("Tolls                     %s", utils.FormatMoney(b.Toll)),
	}
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range breakdown {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}

	total := utils.ComputeFare(b.Distance, b.DurationMinutes, b.Toll)
	if b.Fare != nil {
		total = *b.Fare
	}
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatMoney(total))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This receipt covers one booking. Fares are computed at booking time from distance, duration and tolls.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%d_%s.pdf", b.ID, receiptFilenamePart(b.DropoffLocation))
	return buf.Bytes(), filename, nil
}

func receiptField(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "-"
	}
	return v
}

func receiptFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}
