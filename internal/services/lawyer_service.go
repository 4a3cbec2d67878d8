package services

import (
	"fmt"

	"legalease/internal/domain"
	"legalease/internal/domain/models"
	"legalease/internal/repositories"
	"legalease/internal/utils"
)

// LawyerService owns the admin approval state machine. The transition is
// one-way: once a lawyer leaves Pending there is no path back.
type LawyerService struct {
	LawyerRepo repositories.LawyerRepository
	RequestID  string
}

func (s LawyerService) Approve(lawyerID, adminID int64) (models.Lawyer, error) {
	return s.decide(lawyerID, adminID, models.LawyerApproved, true)
}

func (s LawyerService) Reject(lawyerID, adminID int64) (models.Lawyer, error) {
	return s.decide(lawyerID, adminID, models.LawyerRejected, false)
}

func (s LawyerService) decide(lawyerID, adminID int64, status string, verify bool) (models.Lawyer, error) {
	ok, err := s.LawyerRepo.SetApproval(lawyerID, status, verify, adminID)
	if err != nil {
		return models.Lawyer{}, err
	}
	if !ok {
		// Guard failed: either missing or already decided. Load to tell which.
		lawyer, err := s.LawyerRepo.GetByID(lawyerID)
		if err != nil {
			return models.Lawyer{}, err
		}
		return models.Lawyer{}, domain.ConflictError{
			Resource: "lawyer",
			Msg:      fmt.Sprintf("already %s, decision is final", lawyer.Status),
		}
	}

	utils.LogEvent(s.RequestID, "lawyer", "approval",
		fmt.Sprintf("lawyer_id=%d status=%s admin_id=%d", lawyerID, status, adminID))
	return s.LawyerRepo.GetByID(lawyerID)
}
