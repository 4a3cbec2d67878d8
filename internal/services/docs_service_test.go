package services

import "testing"

func TestDocsServiceGenerateReceipt(t *testing.T) {
	loader := func(id int64) (receiptDocData, error) {
		return receiptDocData{
			TransactionID:   id,
			Reference:       "ab12cd34",
			Status:          "Success",
			PaymentMethod:   "bank_transfer",
			Amount:          150,
			PaidAt:          "2025-10-24 10:00:00",
			CustomerName:    "Tester",
			LawyerName:      "Jane Doe",
			Specialization:  "Family Law",
			AppointmentDate: "2025-10-24",
			AppointmentTime: "09:00",
			SlotDuration:    90,
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateReceipt(1)
	if err != nil {
		t.Fatalf("GenerateReceipt returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateReceipt returned empty data")
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := safeFilenamePart("a b/c:d"); got != "a_b_c_d" {
		t.Fatalf("got %q", got)
	}
	if got := safeFilenamePart("  "); got != "doc" {
		t.Fatalf("empty input should fall back, got %q", got)
	}
}
