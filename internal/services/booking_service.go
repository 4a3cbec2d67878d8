package services

import (
	"fmt"
	"strings"

	"legalease/internal/billing"
	"legalease/internal/domain"
	"legalease/internal/domain/models"
	"legalease/internal/repositories"
	"legalease/internal/scheduling"
	"legalease/internal/utils"
)

// BookingService places appointments. The pre-check against the computed
// availability gives clients a precise error; the repository's conditional
// insert is what actually prevents a double booking under concurrency.
type BookingService struct {
	LawyerRepo      repositories.LawyerRepository
	ScheduleRepo    repositories.ScheduleRepository
	AppointmentRepo repositories.AppointmentRepository
	Clock           utils.Clock
	RequestID       string
}

func (s BookingService) clock() utils.Clock {
	if s.Clock != nil {
		return s.Clock
	}
	return utils.SystemClock{}
}

type BookingRequest struct {
	LawyerID        int64  `json:"lawyer_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	SlotDuration    int    `json:"slot_duration"`
	Notes           string `json:"notes"`
}

func (s BookingService) validate(req BookingRequest) error {
	if req.LawyerID <= 0 {
		return domain.ValidationError{Field: "lawyer_id", Msg: "required"}
	}
	if _, err := utils.ParseDate(req.AppointmentDate); err != nil {
		return domain.ValidationError{Field: "appointment_date", Msg: "expected YYYY-MM-DD", Err: err}
	}
	if _, err := utils.ParseTimeOfDay(req.AppointmentTime); err != nil {
		return domain.ValidationError{Field: "appointment_time", Msg: "expected HH:MM", Err: err}
	}
	if req.SlotDuration <= 0 {
		return domain.ValidationError{Field: "slot_duration", Msg: "must be positive minutes"}
	}
	return nil
}

// Book creates a pending appointment for the customer, pricing it from the
// lawyer's hourly rate and discount threshold.
func (s BookingService) Book(customerID int64, req BookingRequest) (models.Appointment, error) {
	var appt models.Appointment

	if customerID <= 0 {
		return appt, domain.ValidationError{Field: "customer_id", Msg: "required"}
	}
	if err := s.validate(req); err != nil {
		return appt, err
	}

	lawyer, err := s.LawyerRepo.GetByID(req.LawyerID)
	if err != nil {
		return appt, err
	}
	if lawyer.Status != models.LawyerApproved {
		return appt, domain.ConflictError{Resource: "lawyer", Msg: "not approved for bookings"}
	}

	template, err := s.ScheduleRepo.ListByLawyer(lawyer.ID)
	if err != nil {
		return appt, err
	}

	date := strings.TrimSpace(req.AppointmentDate)
	slotTime := utils.NormalizeTimeOfDay(req.AppointmentTime)
	now := s.clock().Now()

	existing, err := s.AppointmentRepo.List(repositories.AppointmentFilter{LawyerID: lawyer.ID, Date: date})
	if err != nil {
		return appt, err
	}

	views := scheduling.ComputeAvailability(date, template, existing, now)
	var slot *scheduling.SlotView
	for i := range views {
		if views[i].Time == slotTime {
			slot = &views[i]
			break
		}
	}
	switch {
	case slot == nil:
		return appt, domain.ValidationError{Field: "appointment_time", Msg: "not in the lawyer's schedule"}
	case slot.Expired:
		return appt, domain.ValidationError{Field: "appointment_time", Msg: "slot is in the past"}
	case slot.Booked:
		return appt, domain.ConflictError{Resource: "slot", Msg: "already booked for that date and time"}
	case !slot.Available:
		return appt, domain.ConflictError{Resource: "slot", Msg: "not open for booking"}
	}

	price := billing.Quote(lawyer.HourlyRate, float64(req.SlotDuration), lawyer.DiscountPercent, lawyer.DiscountMinHours)

	appt = models.Appointment{
		LawyerID:        lawyer.ID,
		CustomerID:      customerID,
		AppointmentDate: date,
		AppointmentTime: slotTime,
		SlotDuration:    req.SlotDuration,
		TotalPrice:      utils.RoundMoney(price),
		Status:          models.AppointmentPending,
		Notes:           strings.TrimSpace(req.Notes),
	}

	id, err := s.AppointmentRepo.BookSlot(appt)
	if err != nil {
		return appt, err
	}
	appt.ID = id

	utils.LogEvent(s.RequestID, "booking", "book",
		fmt.Sprintf("appointment_id=%d lawyer_id=%d date=%s time=%s", id, lawyer.ID, date, slotTime))
	return appt, nil
}
