package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"legalease/internal/domain"
	"legalease/internal/domain/models"
	"legalease/internal/http/middleware"
	"legalease/internal/repositories"
	"legalease/internal/services"
)

func scheduleService() services.ScheduleService {
	return services.ScheduleService{
		ScheduleRepo:    repositories.ScheduleRepository{},
		AppointmentRepo: repositories.AppointmentRepository{},
		LawyerRepo:      repositories.LawyerRepository{},
	}
}

// GET /api/lawyers/:id/availability?date=YYYY-MM-DD
func GetLawyerAvailability(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		RespondError(c, http.StatusBadRequest, "date query param is required", nil)
		return
	}

	views, err := scheduleService().DayAvailability(id, date)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lawyer_id": id, "date": date, "slots": views})
}

// GET /api/lawyers/:id/weekly-overview?start=YYYY-MM-DD
func GetLawyerWeeklyOverview(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	week, err := scheduleService().WeeklyOverview(id, strings.TrimSpace(c.Query("start")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lawyer_id": id, "days": week})
}

// GET /api/lawyers/:id/schedule
func GetLawyerSchedule(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	slots, err := (repositories.ScheduleRepository{}).ListByLawyer(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

type replaceScheduleRequest struct {
	Slots []models.ScheduleSlot `json:"slots"`
}

// PUT /api/lawyers/:id/schedule (the lawyer, or admin)
func ReplaceLawyerSchedule(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	// lawyers may only edit their own template
	if middleware.GetUserRole(c) == domain.RoleLawyer {
		lawyer, err := (repositories.LawyerRepository{}).GetByUserID(middleware.GetUserID(c))
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		if lawyer.ID != id {
			RespondError(c, http.StatusForbidden, "schedule belongs to another lawyer", nil)
			return
		}
	}

	var req replaceScheduleRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	slots, err := scheduleService().ReplaceTemplate(id, req.Slots)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}
