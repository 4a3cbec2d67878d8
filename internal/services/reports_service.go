package services

import (
	"legalease/internal/billing"
	"legalease/internal/domain"
	"legalease/internal/domain/models"
	"legalease/internal/repositories"
)

type IncomeReportFilter struct {
	LawyerID  int64
	StartDate string
	EndDate   string
	Scope     billing.IncomeScope
}

// ReportsService builds the admin income and transaction reports.
type ReportsService struct {
	LawyerRepo      repositories.LawyerRepository
	AppointmentRepo repositories.AppointmentRepository
	TransactionRepo repositories.TransactionRepository
}

// GetIncomeReport aggregates hours/revenue/commission per lawyer. With a
// LawyerID it returns a single summary; otherwise one per lawyer.
func (s ReportsService) GetIncomeReport(f IncomeReportFilter) ([]billing.IncomeSummary, error) {
	scope := f.Scope
	if scope == "" {
		scope = billing.ScopeAll
	}

	lawyers, err := s.lawyers(f.LawyerID)
	if err != nil {
		return nil, err
	}

	out := []billing.IncomeSummary{}
	for _, l := range lawyers {
		appts, err := s.AppointmentRepo.List(repositories.AppointmentFilter{LawyerID: l.ID})
		if err != nil {
			return nil, err
		}
		appts = filterByDateRange(appts, f.StartDate, f.EndDate)
		out = append(out, billing.ComputeIncome(l.ID, l.HourlyRate, l.CommissionPercent, appts, scope))
	}
	return out, nil
}

func (s ReportsService) lawyers(lawyerID int64) ([]lawyerRateRow, error) {
	if lawyerID > 0 {
		l, err := s.LawyerRepo.GetByID(lawyerID)
		if err != nil {
			return nil, err
		}
		return []lawyerRateRow{{ID: l.ID, HourlyRate: l.HourlyRate, CommissionPercent: l.CommissionPercent}}, nil
	}

	all, err := s.LawyerRepo.List(repositories.LawyerFilter{})
	if err != nil {
		return nil, err
	}
	rows := make([]lawyerRateRow, 0, len(all))
	for _, l := range all {
		rows = append(rows, lawyerRateRow{ID: l.ID, HourlyRate: l.HourlyRate, CommissionPercent: l.CommissionPercent})
	}
	return rows, nil
}

type lawyerRateRow struct {
	ID                int64
	HourlyRate        float64
	CommissionPercent float64
}

// GetTransactionReport returns totals grouped by payment status.
func (s ReportsService) GetTransactionReport(startDate, endDate string) ([]repositories.StatusTotal, error) {
	return s.TransactionRepo.TotalsByStatus(startDate, endDate)
}

func filterByDateRange(appts []models.Appointment, start, end string) []models.Appointment {
	if start == "" && end == "" {
		return appts
	}
	out := appts[:0]
	for _, a := range appts {
		if start != "" && a.AppointmentDate < start {
			continue
		}
		if end != "" && a.AppointmentDate > end {
			continue
		}
		out = append(out, a)
	}
	return out
}

// ParseScope maps the query value to an IncomeScope, rejecting junk.
func ParseScope(raw string) (billing.IncomeScope, error) {
	switch raw {
	case "", string(billing.ScopeAll):
		return billing.ScopeAll, nil
	case string(billing.ScopeCompleted):
		return billing.ScopeCompleted, nil
	default:
		return "", domain.ValidationError{Field: "scope", Msg: "expected all or completed"}
	}
}
