package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"legalease/internal/domain"
	"legalease/internal/domain/models"
	"legalease/internal/repositories"
)

func TestReviewRequiresMatchingLawyer(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// appointment 5 is with lawyer 7, the review targets lawyer 1
	mock.ExpectQuery("SELECT(.|\n)+FROM appointments WHERE id").
		WillReturnRows(appointmentRow(5, models.AppointmentCompleted))

	svc := ReviewService{
		ReviewRepo:      repositories.ReviewRepository{DB: db},
		LawyerRepo:      repositories.LawyerRepository{DB: db},
		AppointmentRepo: repositories.AppointmentRepository{DB: db},
	}

	_, err = svc.Create(3, models.Review{LawyerID: 1, AppointmentID: 5, Rating: 5})
	if !domain.IsValidation(err) {
		t.Fatalf("review against a different lawyer's appointment must fail validation, got %v", err)
	}
}

func TestReviewRequiresOwnAppointment(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// appointment 5 belongs to customer 3, not the caller
	mock.ExpectQuery("SELECT(.|\n)+FROM appointments WHERE id").
		WillReturnRows(appointmentRow(5, models.AppointmentCompleted))

	svc := ReviewService{
		ReviewRepo:      repositories.ReviewRepository{DB: db},
		LawyerRepo:      repositories.LawyerRepository{DB: db},
		AppointmentRepo: repositories.AppointmentRepository{DB: db},
	}

	_, err = svc.Create(99, models.Review{LawyerID: 7, AppointmentID: 5, Rating: 5})
	if !domain.IsForbidden(err) {
		t.Fatalf("reviewing another customer's appointment must be forbidden, got %v", err)
	}
}

func TestReviewCreateUpdatesRating(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("SELECT(.|\n)+FROM appointments WHERE id").
		WillReturnRows(appointmentRow(5, models.AppointmentCompleted))
	mock.ExpectQuery("SELECT(.|\n)+FROM lawyers WHERE id").
		WillReturnRows(lawyerRow(7, models.LawyerApproved, true))
	mock.ExpectQuery("SELECT column_name(.|\n)+information_schema").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("appointment_id"))
	mock.ExpectExec("INSERT INTO reviews").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectExec("UPDATE appointments SET is_reviewed").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT AVG").
		WillReturnRows(sqlmock.NewRows([]string{"avg", "count"}).AddRow(4.5, 3))
	mock.ExpectExec("UPDATE lawyers SET rating").
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := ReviewService{
		ReviewRepo:      repositories.ReviewRepository{DB: db},
		LawyerRepo:      repositories.LawyerRepository{DB: db},
		AppointmentRepo: repositories.AppointmentRepository{DB: db},
	}

	rev, err := svc.Create(3, models.Review{LawyerID: 7, AppointmentID: 5, Rating: 5, Comment: "great advice"})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if rev.ID != 9 {
		t.Fatalf("expected review id 9, got %d", rev.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
