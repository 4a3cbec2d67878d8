package services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"legalease/internal/domain"
	"legalease/internal/domain/models"
	"legalease/internal/repositories"
	"legalease/internal/utils"
)

var appointmentCols = []string{
	"id", "lawyer_id", "customer_id", "appointment_date", "appointment_time",
	"slot_duration", "total_price", "status", "notes", "is_reviewed",
	"created_at", "updated_at",
}

func scheduleRows(times ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "lawyer_id", "slot_time", "available"})
	for i, tm := range times {
		rows.AddRow(i+1, 7, tm, true)
	}
	return rows
}

func newBookingService(db *sql.DB) BookingService {
	return BookingService{
		LawyerRepo:      repositories.LawyerRepository{DB: db},
		ScheduleRepo:    repositories.ScheduleRepository{DB: db},
		AppointmentRepo: repositories.AppointmentRepository{DB: db},
		Clock:           utils.FixedClock{T: time.Date(2025, 10, 20, 8, 0, 0, 0, time.Local)},
	}
}

func TestBookHappyPath(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("SELECT(.|\n)+FROM lawyers WHERE id").
		WillReturnRows(lawyerRow(7, models.LawyerApproved, true))
	mock.ExpectQuery("SELECT(.|\n)+FROM schedule_slots").
		WillReturnRows(scheduleRows("09:00", "10:00"))
	mock.ExpectQuery("SELECT(.|\n)+FROM appointments").
		WillReturnRows(sqlmock.NewRows(appointmentCols))
	mock.ExpectExec("INSERT INTO appointments").
		WillReturnResult(sqlmock.NewResult(11, 1))

	svc := newBookingService(db)
	appt, err := svc.Book(3, BookingRequest{
		LawyerID:        7,
		AppointmentDate: "2025-10-24",
		AppointmentTime: "09:00",
		SlotDuration:    90,
	})
	if err != nil {
		t.Fatalf("booking returned error: %v", err)
	}
	if appt.ID != 11 {
		t.Fatalf("expected id 11, got %d", appt.ID)
	}
	if appt.Status != models.AppointmentPending {
		t.Fatalf("new bookings start pending, got %q", appt.Status)
	}
	// 1.5h at rate 100, no discount
	if appt.TotalPrice != 150 {
		t.Fatalf("total price: got %v want 150", appt.TotalPrice)
	}
}

func TestBookRejectsTakenSlot(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("SELECT(.|\n)+FROM lawyers WHERE id").
		WillReturnRows(lawyerRow(7, models.LawyerApproved, true))
	mock.ExpectQuery("SELECT(.|\n)+FROM schedule_slots").
		WillReturnRows(scheduleRows("09:00", "10:00"))
	mock.ExpectQuery("SELECT(.|\n)+FROM appointments").
		WillReturnRows(sqlmock.NewRows(appointmentCols).AddRow(
			1, 7, 4, "2025-10-24", "09:00", 60, 100, models.AppointmentPending, "", false,
			"2025-10-01 00:00:00", "2025-10-01 00:00:00",
		))

	svc := newBookingService(db)
	_, err = svc.Book(3, BookingRequest{
		LawyerID:        7,
		AppointmentDate: "2025-10-24",
		AppointmentTime: "09:00",
		SlotDuration:    60,
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict for taken slot, got %v", err)
	}
}

func TestBookRejectsPastSlot(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("SELECT(.|\n)+FROM lawyers WHERE id").
		WillReturnRows(lawyerRow(7, models.LawyerApproved, true))
	mock.ExpectQuery("SELECT(.|\n)+FROM schedule_slots").
		WillReturnRows(scheduleRows("09:00"))
	mock.ExpectQuery("SELECT(.|\n)+FROM appointments").
		WillReturnRows(sqlmock.NewRows(appointmentCols))

	svc := newBookingService(db)
	_, err = svc.Book(3, BookingRequest{
		LawyerID:        7,
		AppointmentDate: "2025-10-19", // clock is 2025-10-20
		AppointmentTime: "09:00",
		SlotDuration:    60,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for past slot, got %v", err)
	}
}

func TestBookRejectsUnapprovedLawyer(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT(.|\n)+FROM lawyers WHERE id").
		WillReturnRows(lawyerRow(7, models.LawyerPending, false))

	svc := newBookingService(db)
	_, err = svc.Book(3, BookingRequest{
		LawyerID:        7,
		AppointmentDate: "2025-10-24",
		AppointmentTime: "09:00",
		SlotDuration:    60,
	})
	if !domain.IsConflict(err) {
		t.Fatalf("booking an unapproved lawyer must conflict, got %v", err)
	}
}

func TestBookValidatesInput(t *testing.T) {
	svc := BookingService{Clock: utils.FixedClock{T: time.Now()}}

	if _, err := svc.Book(0, BookingRequest{LawyerID: 1, AppointmentDate: "2025-10-24", AppointmentTime: "09:00", SlotDuration: 60}); !domain.IsValidation(err) {
		t.Fatalf("missing customer must fail validation, got %v", err)
	}
	if _, err := svc.Book(1, BookingRequest{LawyerID: 1, AppointmentDate: "24-10-2025", AppointmentTime: "09:00", SlotDuration: 60}); !domain.IsValidation(err) {
		t.Fatalf("bad date must fail validation, got %v", err)
	}
	if _, err := svc.Book(1, BookingRequest{LawyerID: 1, AppointmentDate: "2025-10-24", AppointmentTime: "9am", SlotDuration: 60}); !domain.IsValidation(err) {
		t.Fatalf("bad time must fail validation, got %v", err)
	}
	if _, err := svc.Book(1, BookingRequest{LawyerID: 1, AppointmentDate: "2025-10-24", AppointmentTime: "09:00"}); !domain.IsValidation(err) {
		t.Fatalf("missing duration must fail validation, got %v", err)
	}
}
