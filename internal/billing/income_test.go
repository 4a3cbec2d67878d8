package billing

import (
	"testing"

	"legalease/internal/domain/models"
)

func TestComputeIncomeSingleAppointment(t *testing.T) {
	appts := []models.Appointment{
		{LawyerID: 7, SlotDuration: 90, Status: models.AppointmentCompleted},
	}

	got := ComputeIncome(7, 100, 20, appts, ScopeAll)

	if got.Hours != 1.5 {
		t.Fatalf("hours: got %v want 1.5", got.Hours)
	}
	if got.Revenue != 150 {
		t.Fatalf("revenue: got %v want 150", got.Revenue)
	}
	if got.Commission != 30 {
		t.Fatalf("commission: got %v want 30", got.Commission)
	}
	if got.LawyerIncome != 120 {
		t.Fatalf("lawyer income: got %v want 120", got.LawyerIncome)
	}
}

func TestComputeIncomeSplitIsExact(t *testing.T) {
	appts := []models.Appointment{
		{LawyerID: 3, SlotDuration: 45, Status: models.AppointmentPending},
		{LawyerID: 3, SlotDuration: 60, Status: models.AppointmentCompleted},
		{LawyerID: 3, SlotDuration: 30, Status: models.AppointmentApproved},
	}

	got := ComputeIncome(3, 80, 12.5, appts, ScopeAll)

	if got.Appointments != 3 {
		t.Fatalf("appointments: got %d want 3", got.Appointments)
	}
	if got.Commission+got.LawyerIncome != got.Revenue {
		t.Fatalf("commission %v + income %v != revenue %v", got.Commission, got.LawyerIncome, got.Revenue)
	}
}

func TestComputeIncomeIgnoresOtherLawyers(t *testing.T) {
	appts := []models.Appointment{
		{LawyerID: 1, SlotDuration: 60, Status: models.AppointmentCompleted},
		{LawyerID: 2, SlotDuration: 60, Status: models.AppointmentCompleted},
	}

	got := ComputeIncome(1, 100, 10, appts, ScopeAll)
	if got.Hours != 1 {
		t.Fatalf("only lawyer 1's appointments should count, got %v hours", got.Hours)
	}
}

func TestComputeIncomeCompletedScope(t *testing.T) {
	appts := []models.Appointment{
		{LawyerID: 4, SlotDuration: 60, Status: models.AppointmentCompleted},
		{LawyerID: 4, SlotDuration: 60, Status: models.AppointmentPending},
		{LawyerID: 4, SlotDuration: 60, Status: models.AppointmentRejected},
	}

	all := ComputeIncome(4, 100, 20, appts, ScopeAll)
	completed := ComputeIncome(4, 100, 20, appts, ScopeCompleted)

	if all.Hours != 3 {
		t.Fatalf("scope all should count everything, got %v hours", all.Hours)
	}
	if completed.Hours != 1 || completed.Appointments != 1 {
		t.Fatalf("scope completed should count completed only, got %+v", completed)
	}
}

func TestQuoteDiscountThreshold(t *testing.T) {
	// below threshold: full price
	if got := Quote(100, 60, 10, 2); got != 100 {
		t.Fatalf("1h at rate 100 should cost 100, got %v", got)
	}
	// at threshold: discount applies
	if got := Quote(100, 120, 10, 2); got != 180 {
		t.Fatalf("2h at rate 100 with 10%% discount should cost 180, got %v", got)
	}
	// zero threshold disables the discount
	if got := Quote(100, 120, 10, 0); got != 200 {
		t.Fatalf("discount must be off when threshold is zero, got %v", got)
	}
}
