package services

import (
	"fmt"
	"strings"

	"legalease/internal/domain"
	"legalease/internal/domain/models"
	"legalease/internal/repositories"
	"legalease/internal/utils"
)

// ReviewService records customer reviews and keeps the lawyer's stored rating
// in sync with the review average.
type ReviewService struct {
	ReviewRepo      repositories.ReviewRepository
	LawyerRepo      repositories.LawyerRepository
	AppointmentRepo repositories.AppointmentRepository
	RequestID       string
}

func (s ReviewService) Create(customerID int64, rev models.Review) (models.Review, error) {
	if rev.Rating < 1 || rev.Rating > 5 {
		return rev, domain.ValidationError{Field: "rating", Msg: "must be between 1 and 5"}
	}
	if rev.LawyerID <= 0 {
		return rev, domain.ValidationError{Field: "lawyer_id", Msg: "required"}
	}
	rev.CustomerID = customerID
	rev.Comment = strings.TrimSpace(rev.Comment)

	if rev.AppointmentID > 0 {
		appt, err := s.AppointmentRepo.GetByID(rev.AppointmentID)
		if err != nil {
			return rev, err
		}
		if appt.CustomerID != customerID {
			return rev, domain.ForbiddenError{Msg: "appointment belongs to another customer"}
		}
		if appt.LawyerID != rev.LawyerID {
			return rev, domain.ValidationError{Field: "appointment_id", Msg: "appointment is with a different lawyer"}
		}
		if appt.Status != models.AppointmentCompleted {
			return rev, domain.ConflictError{Resource: "appointment", Msg: "only completed appointments can be reviewed"}
		}
		if appt.IsReviewed {
			return rev, domain.ConflictError{Resource: "appointment", Msg: "already reviewed"}
		}
	}

	if _, err := s.LawyerRepo.GetByID(rev.LawyerID); err != nil {
		return rev, err
	}

	id, err := s.ReviewRepo.Create(rev)
	if err != nil {
		return rev, err
	}
	rev.ID = id

	if rev.AppointmentID > 0 {
		if err := s.AppointmentRepo.MarkReviewed(rev.AppointmentID); err != nil {
			return rev, err
		}
	}

	avg, count, err := s.ReviewRepo.Average(rev.LawyerID)
	if err != nil {
		return rev, err
	}
	if err := s.LawyerRepo.SetRating(rev.LawyerID, avg, count); err != nil {
		return rev, err
	}

	utils.LogEvent(s.RequestID, "review", "create",
		fmt.Sprintf("review_id=%d lawyer_id=%d rating=%d", id, rev.LawyerID, rev.Rating))
	return rev, nil
}
