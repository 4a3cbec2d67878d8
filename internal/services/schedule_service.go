package services

import (
	"time"

	"legalease/internal/domain"
	"legalease/internal/domain/models"
	"legalease/internal/repositories"
	"legalease/internal/scheduling"
	"legalease/internal/utils"
)

// ScheduleService exposes the derived availability views; nothing derived is
// ever persisted, the slot template plus live appointments is the source of
// truth.
type ScheduleService struct {
	ScheduleRepo    repositories.ScheduleRepository
	AppointmentRepo repositories.AppointmentRepository
	LawyerRepo      repositories.LawyerRepository
	Clock           utils.Clock
}

func (s ScheduleService) clock() utils.Clock {
	if s.Clock != nil {
		return s.Clock
	}
	return utils.SystemClock{}
}

// DayAvailability computes per-slot availability for one lawyer and date.
func (s ScheduleService) DayAvailability(lawyerID int64, date string) ([]scheduling.SlotView, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD", Err: err}
	}
	if _, err := s.LawyerRepo.GetByID(lawyerID); err != nil {
		return nil, err
	}

	template, err := s.ScheduleRepo.ListByLawyer(lawyerID)
	if err != nil {
		return nil, err
	}
	appts, err := s.AppointmentRepo.List(repositories.AppointmentFilter{LawyerID: lawyerID, Date: date})
	if err != nil {
		return nil, err
	}

	return scheduling.ComputeAvailability(date, template, appts, s.clock().Now()), nil
}

// WeeklyOverview computes availability for seven days starting at start
// (default: today).
func (s ScheduleService) WeeklyOverview(lawyerID int64, start string) ([]scheduling.DayAvailability, error) {
	now := s.clock().Now()

	var startDay time.Time
	if start == "" {
		startDay = now
	} else {
		parsed, err := utils.ParseDate(start)
		if err != nil {
			return nil, domain.ValidationError{Field: "start", Msg: "expected YYYY-MM-DD", Err: err}
		}
		startDay = parsed
	}

	if _, err := s.LawyerRepo.GetByID(lawyerID); err != nil {
		return nil, err
	}
	template, err := s.ScheduleRepo.ListByLawyer(lawyerID)
	if err != nil {
		return nil, err
	}
	appts, err := s.AppointmentRepo.List(repositories.AppointmentFilter{LawyerID: lawyerID})
	if err != nil {
		return nil, err
	}

	return scheduling.ComputeWeek(startDay, template, appts, now), nil
}

// ReplaceTemplate swaps the lawyer's canonical slot list after validating the
// time strings.
func (s ScheduleService) ReplaceTemplate(lawyerID int64, slots []models.ScheduleSlot) ([]models.ScheduleSlot, error) {
	for _, slot := range slots {
		if _, err := utils.ParseTimeOfDay(slot.SlotTime); err != nil {
			return nil, domain.ValidationError{Field: "slot_time", Msg: "expected HH:MM", Err: err}
		}
	}
	if err := s.ScheduleRepo.Replace(lawyerID, slots); err != nil {
		return nil, err
	}
	return s.ScheduleRepo.ListByLawyer(lawyerID)
}
