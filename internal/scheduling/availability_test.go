package scheduling

import (
	"testing"
	"time"

	"legalease/internal/domain/models"
)

func fixedNow(t *testing.T, value string) time.Time {
	t.Helper()
	now, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
	if err != nil {
		t.Fatalf("bad test clock %q: %v", value, err)
	}
	return now
}

func defaultTemplate() []models.ScheduleSlot {
	return []models.ScheduleSlot{
		{LawyerID: 5, SlotTime: "10:00", Available: true},
		{LawyerID: 5, SlotTime: "09:00", Available: true},
		{LawyerID: 5, SlotTime: "14:00", Available: false},
	}
}

func TestComputeAvailabilityBookedSlot(t *testing.T) {
	now := fixedNow(t, "2025-10-20 08:00")
	appts := []models.Appointment{
		{LawyerID: 5, AppointmentDate: "2025-10-24", AppointmentTime: "09:00", Status: models.AppointmentPending},
	}

	views := ComputeAvailability("2025-10-24", defaultTemplate(), appts, now)
	if len(views) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(views))
	}
	if views[0].Time != "09:00" || views[1].Time != "10:00" || views[2].Time != "14:00" {
		t.Fatalf("slots not sorted by time: %+v", views)
	}

	first := views[0]
	if !first.Booked {
		t.Fatalf("09:00 should be booked")
	}
	if first.Available {
		t.Fatalf("09:00 should not be available when booked")
	}
	if views[1].Booked || !views[1].Available {
		t.Fatalf("10:00 should be free and available: %+v", views[1])
	}
	if views[2].Available {
		t.Fatalf("14:00 is template-unavailable and must stay unavailable")
	}
}

func TestComputeAvailabilityCancelledDoesNotBlock(t *testing.T) {
	now := fixedNow(t, "2025-10-20 08:00")
	appts := []models.Appointment{
		{LawyerID: 5, AppointmentDate: "2025-10-24", AppointmentTime: "09:00", Status: models.AppointmentCancelled},
	}

	views := ComputeAvailability("2025-10-24", defaultTemplate(), appts, now)
	if views[0].Booked {
		t.Fatalf("cancelled appointment must not mark slot booked")
	}
	if !views[0].Available {
		t.Fatalf("09:00 should be available again after cancellation")
	}
}

func TestComputeAvailabilityExpiry(t *testing.T) {
	now := fixedNow(t, "2025-10-24 09:30")

	// past date: everything expired
	for _, v := range ComputeAvailability("2025-10-23", defaultTemplate(), nil, now) {
		if !v.Expired || v.Available {
			t.Fatalf("slots on a past date must be expired and unavailable: %+v", v)
		}
	}

	// same day: slots before the clock expire, later ones do not
	views := ComputeAvailability("2025-10-24", defaultTemplate(), nil, now)
	if !views[0].Expired || views[0].Available {
		t.Fatalf("09:00 should be expired at 09:30: %+v", views[0])
	}
	if views[1].Expired || !views[1].Available {
		t.Fatalf("10:00 should still be open at 09:30: %+v", views[1])
	}

	// future date: nothing expired
	for _, v := range ComputeAvailability("2025-10-25", defaultTemplate(), nil, now) {
		if v.Expired {
			t.Fatalf("future slots must not expire: %+v", v)
		}
	}
}

func TestComputeAvailabilityOtherDateIgnored(t *testing.T) {
	now := fixedNow(t, "2025-10-20 08:00")
	appts := []models.Appointment{
		{LawyerID: 5, AppointmentDate: "2025-10-25", AppointmentTime: "09:00", Status: models.AppointmentApproved},
	}

	views := ComputeAvailability("2025-10-24", defaultTemplate(), appts, now)
	if views[0].Booked {
		t.Fatalf("appointment on another date must not block the slot")
	}
}

func TestComputeWeekDates(t *testing.T) {
	now := fixedNow(t, "2025-10-20 08:00")
	start, _ := time.ParseInLocation("2006-01-02", "2025-10-20", time.Local)

	week := ComputeWeek(start, defaultTemplate(), nil, now)
	if len(week) != 7 {
		t.Fatalf("expected 7 days, got %d", len(week))
	}
	if week[0].Date != "2025-10-20" || week[6].Date != "2025-10-26" {
		t.Fatalf("unexpected week range: %s .. %s", week[0].Date, week[6].Date)
	}
}

func TestIsSlotOpen(t *testing.T) {
	now := fixedNow(t, "2025-10-20 08:00")
	appts := []models.Appointment{
		{LawyerID: 5, AppointmentDate: "2025-10-24", AppointmentTime: "09:00", Status: models.AppointmentPending},
	}

	if IsSlotOpen("2025-10-24", "09:00", defaultTemplate(), appts, now) {
		t.Fatalf("booked slot must not be open")
	}
	if !IsSlotOpen("2025-10-24", "10:00", defaultTemplate(), appts, now) {
		t.Fatalf("free slot should be open")
	}
	if IsSlotOpen("2025-10-24", "11:00", defaultTemplate(), appts, now) {
		t.Fatalf("time missing from template must not be open")
	}
}
