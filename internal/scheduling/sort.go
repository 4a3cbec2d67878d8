package scheduling

import (
	"sort"

	"legalease/internal/domain/models"
)

// statusPriority orders appointment lists for dashboards: actionable states
// first, then recency.
func statusPriority(status string) int {
	switch status {
	case models.AppointmentPending:
		return 1
	case models.AppointmentApproved:
		return 2
	case models.AppointmentCompleted:
		return 3
	case models.AppointmentRejected:
		return 4
	default:
		return 5
	}
}

// SortByStatus sorts appointments ascending by status priority; within equal
// priority, most recent (date, time) first. Sorting is stable.
func SortByStatus(appts []models.Appointment) {
	sort.SliceStable(appts, func(i, j int) bool {
		pi, pj := statusPriority(appts[i].Status), statusPriority(appts[j].Status)
		if pi != pj {
			return pi < pj
		}
		ki := appts[i].AppointmentDate + " " + appts[i].AppointmentTime
		kj := appts[j].AppointmentDate + " " + appts[j].AppointmentTime
		return ki > kj
	})
}
