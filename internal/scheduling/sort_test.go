package scheduling

import (
	"testing"

	"legalease/internal/domain/models"
)

func TestSortByStatusPriority(t *testing.T) {
	appts := []models.Appointment{
		{ID: 1, Status: models.AppointmentRejected, AppointmentDate: "2025-10-01", AppointmentTime: "09:00"},
		{ID: 2, Status: models.AppointmentCompleted, AppointmentDate: "2025-10-02", AppointmentTime: "09:00"},
		{ID: 3, Status: models.AppointmentPending, AppointmentDate: "2025-09-01", AppointmentTime: "09:00"},
		{ID: 4, Status: models.AppointmentApproved, AppointmentDate: "2025-10-03", AppointmentTime: "09:00"},
		{ID: 5, Status: models.AppointmentCancelled, AppointmentDate: "2025-10-04", AppointmentTime: "09:00"},
	}

	SortByStatus(appts)

	want := []int64{3, 4, 2, 1, 5}
	for i, id := range want {
		if appts[i].ID != id {
			t.Fatalf("position %d: got id %d want %d (order %+v)", i, appts[i].ID, id, appts)
		}
	}
}

func TestSortByStatusRecencyTieBreak(t *testing.T) {
	appts := []models.Appointment{
		{ID: 1, Status: models.AppointmentPending, AppointmentDate: "2025-10-01", AppointmentTime: "09:00"},
		{ID: 2, Status: models.AppointmentPending, AppointmentDate: "2025-10-02", AppointmentTime: "08:00"},
		{ID: 3, Status: models.AppointmentPending, AppointmentDate: "2025-10-02", AppointmentTime: "10:00"},
	}

	SortByStatus(appts)

	if appts[0].ID != 3 || appts[1].ID != 2 || appts[2].ID != 1 {
		t.Fatalf("equal priority must sort most recent first, got %+v", appts)
	}
}

func TestSortByStatusUnknownLast(t *testing.T) {
	appts := []models.Appointment{
		{ID: 1, Status: "weird", AppointmentDate: "2025-10-05", AppointmentTime: "09:00"},
		{ID: 2, Status: models.AppointmentRejected, AppointmentDate: "2025-10-01", AppointmentTime: "09:00"},
	}

	SortByStatus(appts)

	if appts[len(appts)-1].ID != 1 {
		t.Fatalf("unknown status must sort last, got %+v", appts)
	}
}
