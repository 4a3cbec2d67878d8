package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"legalease/internal/domain/models"
	"legalease/internal/http/middleware"
	"legalease/internal/repositories"
	"legalease/internal/services"
)

// GET /api/reviews?lawyer_id=
func GetReviews(c *gin.Context) {
	lawyerID := QueryInt64(c, "lawyer_id")
	if lawyerID <= 0 {
		RespondError(c, http.StatusBadRequest, "lawyer_id query param is required", nil)
		return
	}

	reviews, err := (repositories.ReviewRepository{}).ListByLawyer(lawyerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// POST /api/reviews (customer)
func CreateReview(c *gin.Context) {
	var input models.Review
	if !BindJSONOrError(c, &input) {
		return
	}

	customer, err := (repositories.CustomerRepository{}).GetByUserID(middleware.GetUserID(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	svc := services.ReviewService{
		ReviewRepo:      repositories.ReviewRepository{},
		LawyerRepo:      repositories.LawyerRepository{},
		AppointmentRepo: repositories.AppointmentRepository{},
		RequestID:       middleware.GetRequestID(c),
	}

	review, err := svc.Create(customer.ID, input)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}
