package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"legalease/internal/domain"
	"legalease/internal/http/middleware"
	"legalease/internal/repositories"
	"legalease/internal/services"
)

// GET /api/reports/income?lawyer_id=&start_date=&end_date=&scope=
// scope=all (default) counts every attributed appointment (projected revenue);
// scope=completed counts realized income only.
func GetIncomeReport(c *gin.Context) {
	scope, err := services.ParseScope(strings.TrimSpace(c.Query("scope")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	lawyerID := QueryInt64(c, "lawyer_id")
	// lawyers only see their own income
	if middleware.GetUserRole(c) == domain.RoleLawyer {
		lawyer, err := (repositories.LawyerRepository{}).GetByUserID(middleware.GetUserID(c))
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		lawyerID = lawyer.ID
	}

	svc := services.ReportsService{
		LawyerRepo:      repositories.LawyerRepository{},
		AppointmentRepo: repositories.AppointmentRepository{},
		TransactionRepo: repositories.TransactionRepository{},
	}

	report, err := svc.GetIncomeReport(services.IncomeReportFilter{
		LawyerID:  lawyerID,
		StartDate: strings.TrimSpace(c.Query("start_date")),
		EndDate:   strings.TrimSpace(c.Query("end_date")),
		Scope:     scope,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /api/reports/transactions?start_date=&end_date=
func GetTransactionReport(c *gin.Context) {
	svc := services.ReportsService{
		TransactionRepo: repositories.TransactionRepository{},
	}

	report, err := svc.GetTransactionReport(
		strings.TrimSpace(c.Query("start_date")),
		strings.TrimSpace(c.Query("end_date")),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
