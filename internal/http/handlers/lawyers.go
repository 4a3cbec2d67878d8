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

// GET /api/lawyers
// Public listing only shows approved lawyers; admins may pass ?status= to see
// the review queue.
func GetLawyers(c *gin.Context) {
	filter := repositories.LawyerFilter{
		Specialization: strings.TrimSpace(c.Query("specialization")),
		City:           strings.TrimSpace(c.Query("city")),
		Query:          strings.TrimSpace(c.Query("q")),
	}

	if middleware.GetUserRole(c) == domain.RoleAdmin {
		filter.Status = strings.TrimSpace(c.Query("status"))
	} else {
		filter.Status = models.LawyerApproved
	}

	lawyers, err := (repositories.LawyerRepository{}).List(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, lawyers)
}

// GET /api/lawyers/:id
func GetLawyerByID(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	lawyer, err := (repositories.LawyerRepository{}).GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, lawyer)
}

// POST /api/lawyers (admin)
func CreateLawyer(c *gin.Context) {
	var input models.Lawyer
	if !BindJSONOrError(c, &input) {
		return
	}
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" {
		RespondError(c, http.StatusBadRequest, "name and email are required", nil)
		return
	}

	repo := repositories.LawyerRepository{}
	id, err := repo.Create(input)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create lawyer", err)
		return
	}
	lawyer, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lawyer)
}

// PUT /api/lawyers/:id (admin, or the lawyer themselves via profile routes)
func UpdateLawyer(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	// lawyers may only edit their own profile
	if middleware.GetUserRole(c) == domain.RoleLawyer {
		lawyer, err := (repositories.LawyerRepository{}).GetByUserID(middleware.GetUserID(c))
		if err != nil || lawyer.ID != id {
			RespondError(c, http.StatusForbidden, "profile belongs to another lawyer", nil)
			return
		}
	}

	var input models.Lawyer
	if !BindJSONOrError(c, &input) {
		return
	}

	repo := repositories.LawyerRepository{}
	if err := repo.Update(id, input); err != nil {
		RespondDomainError(c, err)
		return
	}
	lawyer, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, lawyer)
}

// DELETE /api/lawyers/:id (admin)
func DeleteLawyer(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	if err := (repositories.LawyerRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "lawyer deleted"})
}

// PUT /api/lawyers/:id/approve (admin)
func ApproveLawyer(c *gin.Context) {
	decideLawyer(c, true)
}

// PUT /api/lawyers/:id/reject (admin)
func RejectLawyer(c *gin.Context) {
	decideLawyer(c, false)
}

func decideLawyer(c *gin.Context, approve bool) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	svc := services.LawyerService{
		LawyerRepo: repositories.LawyerRepository{},
		RequestID:  middleware.GetRequestID(c),
	}

	var (
		lawyer models.Lawyer
		err    error
	)
	if approve {
		lawyer, err = svc.Approve(id, middleware.GetUserID(c))
	} else {
		lawyer, err = svc.Reject(id, middleware.GetUserID(c))
	}
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, lawyer)
}
