package scheduling

import (
	"sort"
	"strings"
	"time"

	"legalease/internal/domain/models"
	"legalease/internal/utils"
)

// SlotView is the availability of one template slot on a concrete date.
type SlotView struct {
	Time      string `json:"time"`      // HH:MM
	Available bool   `json:"available"`
	Booked    bool   `json:"booked"`
	Expired   bool   `json:"expired"`
}

// DayAvailability groups slot views for one date, used by the weekly overview.
type DayAvailability struct {
	Date  string     `json:"date"` // YYYY-MM-DD
	Slots []SlotView `json:"slots"`
}

// ComputeAvailability merges a lawyer's slot template with the appointments on
// a date. A slot is booked when any non-cancelled appointment matches the
// exact date+time; it is expired when the date is in the past, or is today
// and the slot time is behind the clock. Available = template-available AND
// not booked AND not expired. Result is sorted ascending by time of day.
func ComputeAvailability(date string, template []models.ScheduleSlot, appts []models.Appointment, now time.Time) []SlotView {
	date = strings.TrimSpace(date)
	today := utils.FormatDate(now)
	nowHHMM := utils.FormatTimeOfDay(now)

	pastDate := date < today
	sameDay := date == today

	booked := map[string]bool{}
	for _, a := range appts {
		if strings.TrimSpace(a.AppointmentDate) != date {
			continue
		}
		if a.Status == models.AppointmentCancelled {
			continue
		}
		booked[utils.NormalizeTimeOfDay(a.AppointmentTime)] = true
	}

	out := make([]SlotView, 0, len(template))
	for _, s := range template {
		t := utils.NormalizeTimeOfDay(s.SlotTime)
		v := SlotView{
			Time:    t,
			Booked:  booked[t],
			Expired: pastDate || (sameDay && t < nowHHMM),
		}
		v.Available = s.Available && !v.Booked && !v.Expired
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out
}

// ComputeWeek runs ComputeAvailability for seven consecutive dates starting at
// start (inclusive).
func ComputeWeek(start time.Time, template []models.ScheduleSlot, appts []models.Appointment, now time.Time) []DayAvailability {
	week := make([]DayAvailability, 0, 7)
	for i := 0; i < 7; i++ {
		date := utils.FormatDate(start.AddDate(0, 0, i))
		week = append(week, DayAvailability{
			Date:  date,
			Slots: ComputeAvailability(date, template, appts, now),
		})
	}
	return week
}

// IsSlotOpen reports whether a single date+time is bookable against the given
// template and appointments. Used by the booking service as a pre-check; the
// repository still enforces the same condition atomically on insert.
func IsSlotOpen(date, slotTime string, template []models.ScheduleSlot, appts []models.Appointment, now time.Time) bool {
	slotTime = utils.NormalizeTimeOfDay(slotTime)
	for _, v := range ComputeAvailability(date, template, appts, now) {
		if v.Time == slotTime {
			return v.Available
		}
	}
	return false
}
