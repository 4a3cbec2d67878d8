package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"legalease/internal/domain"
	"legalease/internal/domain/models"
	"legalease/internal/http/middleware"
	"legalease/internal/repositories"
	"legalease/internal/scheduling"
	"legalease/internal/services"
)

func actorContext(c *gin.Context) domain.RequestContext {
	return domain.RequestContext{
		UserID: domain.ID(middleware.GetUserID(c)),
		Role:   middleware.GetUserRole(c),
	}
}

// GET /api/appointments?lawyer_id=&customer_id=&status=&date=
// Results are ordered for dashboards: actionable statuses first, then recency.
func GetAppointments(c *gin.Context) {
	filter := repositories.AppointmentFilter{
		LawyerID:   QueryInt64(c, "lawyer_id"),
		CustomerID: QueryInt64(c, "customer_id"),
		Status:     strings.TrimSpace(c.Query("status")),
		Date:       strings.TrimSpace(c.Query("date")),
	}

	// non-admins only see their own appointments
	switch middleware.GetUserRole(c) {
	case domain.RoleLawyer:
		lawyer, err := (repositories.LawyerRepository{}).GetByUserID(middleware.GetUserID(c))
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		filter.LawyerID = lawyer.ID
	case domain.RoleCustomer:
		customer, err := (repositories.CustomerRepository{}).GetByUserID(middleware.GetUserID(c))
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		filter.CustomerID = customer.ID
	}

	appts, err := (repositories.AppointmentRepository{}).List(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	scheduling.SortByStatus(appts)
	c.JSON(http.StatusOK, appts)
}

// GET /api/appointments/:id
func GetAppointmentByID(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	appt, err := (repositories.AppointmentRepository{}).GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	switch middleware.GetUserRole(c) {
	case domain.RoleLawyer:
		lawyer, err := (repositories.LawyerRepository{}).GetByUserID(middleware.GetUserID(c))
		if err != nil || lawyer.ID != appt.LawyerID {
			RespondError(c, http.StatusForbidden, "appointment belongs to another lawyer", nil)
			return
		}
	case domain.RoleCustomer:
		customer, err := (repositories.CustomerRepository{}).GetByUserID(middleware.GetUserID(c))
		if err != nil || customer.ID != appt.CustomerID {
			RespondError(c, http.StatusForbidden, "appointment belongs to another customer", nil)
			return
		}
	}

	c.JSON(http.StatusOK, appt)
}

type createAppointmentRequest struct {
	services.BookingRequest
	CustomerID int64 `json:"customer_id"` // honored for admins only
}

// POST /api/appointments (customer books a slot)
func CreateAppointment(c *gin.Context) {
	var req createAppointmentRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	actor := actorContext(c)
	customerID := req.CustomerID
	if actor.Role == domain.RoleCustomer {
		customer, err := (repositories.CustomerRepository{}).GetByUserID(int64(actor.UserID))
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		customerID = customer.ID
	}

	svc := services.BookingService{
		LawyerRepo:      repositories.LawyerRepository{},
		ScheduleRepo:    repositories.ScheduleRepository{},
		AppointmentRepo: repositories.AppointmentRepository{},
		RequestID:       middleware.GetRequestID(c),
	}

	appt, err := svc.Book(customerID, req.BookingRequest)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appt)
}

type patchAppointmentRequest struct {
	Notes *string `json:"notes"`
}

// PATCH /api/appointments/:id
// Only free-text fields; status moves through the transition endpoints.
func PatchAppointment(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var req patchAppointmentRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Notes == nil {
		RespondError(c, http.StatusBadRequest, "nothing to update", nil)
		return
	}

	svc := services.AppointmentService{
		AppointmentRepo: repositories.AppointmentRepository{},
		LawyerRepo:      repositories.LawyerRepository{},
		CustomerRepo:    repositories.CustomerRepository{},
		RequestID:       middleware.GetRequestID(c),
	}
	appt, err := svc.UpdateNotes(id, *req.Notes)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// PUT /api/appointments/:id/approve | reject | complete | cancel
func ApproveAppointment(c *gin.Context)  { transitionAppointment(c, models.AppointmentApproved) }
func RejectAppointment(c *gin.Context)   { transitionAppointment(c, models.AppointmentRejected) }
func CompleteAppointment(c *gin.Context) { transitionAppointment(c, models.AppointmentCompleted) }
func CancelAppointment(c *gin.Context)   { transitionAppointment(c, models.AppointmentCancelled) }

func transitionAppointment(c *gin.Context, target string) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	svc := services.AppointmentService{
		AppointmentRepo: repositories.AppointmentRepository{},
		LawyerRepo:      repositories.LawyerRepository{},
		CustomerRepo:    repositories.CustomerRepository{},
		RequestID:       middleware.GetRequestID(c),
	}

	appt, err := svc.Transition(id, target, actorContext(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// DELETE /api/appointments/:id (admin)
func DeleteAppointment(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	if err := (repositories.AppointmentRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment deleted"})
}
