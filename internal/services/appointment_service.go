package services

import (
	"fmt"

	"legalease/internal/domain"
	"legalease/internal/domain/models"
	"legalease/internal/repositories"
	"legalease/internal/utils"
)

// AppointmentService enforces the appointment lifecycle on the server side:
// pending -> approved -> completed, pending -> rejected, and cancellation from
// pending or approved. Role ownership is checked here, not in the UI.
type AppointmentService struct {
	AppointmentRepo repositories.AppointmentRepository
	LawyerRepo      repositories.LawyerRepository
	CustomerRepo    repositories.CustomerRepository
	RequestID       string
}

// transitionGuards maps a target status to the statuses it may start from.
var transitionGuards = map[string][]string{
	models.AppointmentApproved:  {models.AppointmentPending},
	models.AppointmentRejected:  {models.AppointmentPending},
	models.AppointmentCompleted: {models.AppointmentApproved},
	models.AppointmentCancelled: {models.AppointmentPending, models.AppointmentApproved},
}

// lawyerTransitions are the targets a lawyer may set on their own appointments.
var lawyerTransitions = map[string]bool{
	models.AppointmentApproved:  true,
	models.AppointmentRejected:  true,
	models.AppointmentCompleted: true,
}

// Transition moves an appointment to the target status on behalf of actor.
// Admins may drive any defined transition; lawyers only approve/reject/
// complete their own appointments; customers only cancel their own.
func (s AppointmentService) Transition(id int64, target string, actor domain.RequestContext) (models.Appointment, error) {
	guard, ok := transitionGuards[target]
	if !ok {
		return models.Appointment{}, domain.ValidationError{Field: "status", Msg: "unknown transition target"}
	}

	appt, err := s.AppointmentRepo.GetByID(id)
	if err != nil {
		return models.Appointment{}, err
	}

	if err := s.authorize(appt, target, actor); err != nil {
		return models.Appointment{}, err
	}

	moved, err := s.AppointmentRepo.SetStatus(id, target, guard...)
	if err != nil {
		return models.Appointment{}, err
	}
	if !moved {
		return models.Appointment{}, domain.ConflictError{
			Resource: "appointment",
			Msg:      fmt.Sprintf("cannot move from %s to %s", appt.Status, target),
		}
	}

	utils.LogEvent(s.RequestID, "appointment", "transition",
		fmt.Sprintf("appointment_id=%d from=%s to=%s role=%s", id, appt.Status, target, actor.Role))
	return s.AppointmentRepo.GetByID(id)
}

func (s AppointmentService) authorize(appt models.Appointment, target string, actor domain.RequestContext) error {
	switch actor.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleLawyer:
		if !lawyerTransitions[target] {
			return domain.ForbiddenError{Msg: "lawyers cannot set that status"}
		}
		lawyer, err := s.LawyerRepo.GetByUserID(int64(actor.UserID))
		if err != nil {
			return err
		}
		if lawyer.ID != appt.LawyerID {
			return domain.ForbiddenError{Msg: "appointment belongs to another lawyer"}
		}
		return nil
	case domain.RoleCustomer:
		if target != models.AppointmentCancelled {
			return domain.ForbiddenError{Msg: "customers may only cancel"}
		}
		customer, err := s.CustomerRepo.GetByUserID(int64(actor.UserID))
		if err != nil {
			return err
		}
		if customer.ID != appt.CustomerID {
			return domain.ForbiddenError{Msg: "appointment belongs to another customer"}
		}
		return nil
	default:
		return domain.ForbiddenError{Msg: "unknown role"}
	}
}

// UpdateNotes patches the free-text notes only; status never changes here.
func (s AppointmentService) UpdateNotes(id int64, notes string) (models.Appointment, error) {
	if _, err := s.AppointmentRepo.GetByID(id); err != nil {
		return models.Appointment{}, err
	}
	if err := s.AppointmentRepo.SetNotes(id, notes); err != nil {
		return models.Appointment{}, err
	}
	return s.AppointmentRepo.GetByID(id)
}
