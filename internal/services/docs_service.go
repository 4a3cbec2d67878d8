package services

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/phpdave11/gofpdf"

	"legalease/internal/repositories"
	"legalease/internal/utils"
)

// DocsService renders PDF receipts for transactions and confirmations for
// appointments.
type DocsService struct {
	TransactionRepo repositories.TransactionRepository
	AppointmentRepo repositories.AppointmentRepository
	LawyerRepo      repositories.LawyerRepository
	CustomerRepo    repositories.CustomerRepository
	RequestID       string
	Loader          func(int64) (receiptDocData, error)
}

type receiptDocData struct {
	TransactionID   int64
	Reference       string
	Status          string
	PaymentMethod   string
	Amount          float64
	PaidAt          string
	CustomerName    string
	LawyerName      string
	Specialization  string
	AppointmentDate string
	AppointmentTime string
	SlotDuration    int
}

func (s DocsService) GenerateReceipt(transactionID int64) ([]byte, string, error) {
	data, err := s.loadReceiptData(transactionID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", fmt.Sprintf("transaction_id=%d", transactionID))
	return buildReceiptPDF(data)
}

func (s DocsService) loadReceiptData(transactionID int64) (receiptDocData, error) {
	if s.Loader != nil {
		return s.Loader(transactionID)
	}

	var out receiptDocData
	txn, err := s.TransactionRepo.GetByID(transactionID)
	if err != nil {
		return out, err
	}

	out.TransactionID = txn.ID
	out.Reference = txn.Reference
	out.Status = txn.Status
	out.PaymentMethod = txn.PaymentMethod
	out.Amount = txn.Amount
	out.PaidAt = txn.PaidAt

	if appt, err := s.AppointmentRepo.GetByID(txn.AppointmentID); err == nil {
		out.AppointmentDate = appt.AppointmentDate
		out.AppointmentTime = appt.AppointmentTime
		out.SlotDuration = appt.SlotDuration
	}
	if lawyer, err := s.LawyerRepo.GetByID(txn.LawyerID); err == nil {
		out.LawyerName = lawyer.Name
		out.Specialization = lawyer.Specialization
	}
	if customer, err := s.CustomerRepo.GetByID(txn.CustomerID); err == nil {
		out.CustomerName = customer.Fullname
	}

	return out, nil
}

func buildReceiptPDF(d receiptDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payment Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Receipt No     : RCP-%d", d.TransactionID),
		fmt.Sprintf("Reference      : %s", safe(d.Reference, "-")),
		fmt.Sprintf("Status         : %s", safe(d.Status, "-")),
		fmt.Sprintf("Paid At        : %s", safe(d.PaidAt, "-")),
		fmt.Sprintf("Payment Method : %s", safe(d.PaymentMethod, "-")),
		fmt.Sprintf("Customer       : %s", safe(d.CustomerName, "-")),
		fmt.Sprintf("Lawyer         : %s", safe(d.LawyerName, "-")),
		fmt.Sprintf("Specialization : %s", safe(d.Specialization, "-")),
		fmt.Sprintf("Appointment    : %s %s (%d min)", safe(d.AppointmentDate, "-"), safe(d.AppointmentTime, "-"), d.SlotDuration),
		fmt.Sprintf("Amount         : %s", utils.FormatMoney(d.Amount)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This receipt confirms payment for the legal consultation listed above.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RECEIPT_%d_%s.pdf", d.TransactionID, safeFilenamePart(d.Reference))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

var filenameJunk = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

func safeFilenamePart(s string) string {
	s = filenameJunk.ReplaceAllString(strings.TrimSpace(s), "_")
	if s == "" {
		return "doc"
	}
	return s
}
