package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"legalease/internal/domain"
	"legalease/internal/domain/models"
)

func TestBookSlotInsertsWhenFree(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO appointments").
		WillReturnResult(sqlmock.NewResult(42, 1))

	repo := AppointmentRepository{DB: db}
	id, err := repo.BookSlot(models.Appointment{
		LawyerID:        5,
		CustomerID:      9,
		AppointmentDate: "2025-10-24",
		AppointmentTime: "09:00",
		SlotDuration:    60,
		TotalPrice:      100,
	})
	if err != nil {
		t.Fatalf("expected booking to succeed, got %v", err)
	}
	if id != 42 {
		t.Fatalf("expected inserted id 42, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookSlotConflictWhenTaken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// guard matched an existing live appointment: zero rows inserted
	mock.ExpectExec("INSERT INTO appointments").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := AppointmentRepository{DB: db}
	_, err = repo.BookSlot(models.Appointment{
		LawyerID:        5,
		AppointmentDate: "2025-10-24",
		AppointmentTime: "09:00",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestSetStatusGuard(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE appointments SET status").
		WithArgs(models.AppointmentApproved, models.AppointmentPending, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := AppointmentRepository{DB: db}
	moved, err := repo.SetStatus(7, models.AppointmentApproved, models.AppointmentPending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !moved {
		t.Fatalf("expected transition to apply")
	}

	mock.ExpectExec("UPDATE appointments SET status").
		WillReturnResult(sqlmock.NewResult(0, 0))
	moved, err = repo.SetStatus(7, models.AppointmentApproved, models.AppointmentPending)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved {
		t.Fatalf("guard mismatch must report no transition")
	}
}

func TestSetStatusRequiresGuard(t *testing.T) {
	repo := AppointmentRepository{}
	if _, err := repo.SetStatus(1, models.AppointmentApproved); !domain.IsValidation(err) {
		t.Fatalf("expected validation error without a guard, got %v", err)
	}
}
