package billing

import "legalease/internal/domain/models"

// IncomeScope selects which appointments count toward a lawyer's income.
type IncomeScope string

const (
	// ScopeAll counts every attributed appointment regardless of status
	// (projected revenue). This is the default.
	ScopeAll IncomeScope = "all"
	// ScopeCompleted counts completed appointments only (realized income).
	ScopeCompleted IncomeScope = "completed"
)

// IncomeSummary is the per-lawyer breakdown shown on dashboards and the admin
// income report. Commission + LawyerIncome == Revenue exactly.
type IncomeSummary struct {
	LawyerID          int64   `json:"lawyer_id"`
	Appointments      int     `json:"appointments"`
	Hours             float64 `json:"hours"`
	Revenue           float64 `json:"revenue"`
	CommissionPercent float64 `json:"commission_percent"`
	Commission        float64 `json:"commission"`
	LawyerIncome      float64 `json:"lawyer_income"`
}

// ComputeIncome aggregates billed hours and splits revenue between platform
// commission and lawyer income.
func ComputeIncome(lawyerID int64, hourlyRate, commissionPercent float64, appts []models.Appointment, scope IncomeScope) IncomeSummary {
	out := IncomeSummary{
		LawyerID:          lawyerID,
		CommissionPercent: commissionPercent,
	}

	for _, a := range appts {
		if a.LawyerID != lawyerID {
			continue
		}
		if scope == ScopeCompleted && a.Status != models.AppointmentCompleted {
			continue
		}
		out.Appointments++
		out.Hours += float64(a.SlotDuration) / 60.0
	}

	out.Revenue = out.Hours * hourlyRate
	out.Commission = out.Revenue * commissionPercent / 100.0
	out.LawyerIncome = out.Revenue - out.Commission
	return out
}

// Quote prices a booking of durationMin minutes at the lawyer's hourly rate,
// applying the long-session discount once the booked hours reach the lawyer's
// threshold. A zero threshold disables the discount.
func Quote(hourlyRate, durationMin float64, discountPercent, discountMinHours float64) float64 {
	hours := durationMin / 60.0
	price := hours * hourlyRate
	if discountMinHours > 0 && hours >= discountMinHours && discountPercent > 0 {
		price -= price * discountPercent / 100.0
	}
	return price
}
