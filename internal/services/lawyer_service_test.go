package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"legalease/internal/domain"
	"legalease/internal/domain/models"
	"legalease/internal/repositories"
)

var lawyerCols = []string{
	"id", "user_id", "name", "email", "phone",
	"city", "specialization", "bio",
	"hourly_rate", "commission_percent", "discount_percent", "discount_min_hours",
	"rating", "review_count", "experience_years",
	"photo", "status", "verify_status", "approve_at", "approve_by",
	"created_at", "updated_at",
}

func lawyerRow(id int64, status string, verify bool) *sqlmock.Rows {
	return sqlmock.NewRows(lawyerCols).AddRow(
		id, 0, "Jane Doe", "jane@example.com", "0800",
		"Hanoi", "Family Law", "",
		100.0, 20.0, 0.0, 0.0,
		4.5, 12, 8,
		"", status, verify, "", 0,
		"2025-01-01 00:00:00", "2025-01-01 00:00:00",
	)
}

func TestLawyerApproveSetsVerifyStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE lawyers").
		WithArgs(models.LawyerApproved, true, int64(1), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT(.|\n)+FROM lawyers WHERE id").
		WillReturnRows(lawyerRow(7, models.LawyerApproved, true))

	svc := LawyerService{LawyerRepo: repositories.LawyerRepository{DB: db}}
	lawyer, err := svc.Approve(7, 1)
	if err != nil {
		t.Fatalf("approve returned error: %v", err)
	}
	if lawyer.Status != models.LawyerApproved {
		t.Fatalf("status: got %q want Approved", lawyer.Status)
	}
	if !lawyer.VerifyStatus {
		t.Fatalf("verify_status should be true after approval")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLawyerApprovalIsOneWay(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// guard "status = 'Pending'" matches nothing
	mock.ExpectExec("UPDATE lawyers").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT(.|\n)+FROM lawyers WHERE id").
		WillReturnRows(lawyerRow(7, models.LawyerRejected, false))

	svc := LawyerService{LawyerRepo: repositories.LawyerRepository{DB: db}}
	if _, err := svc.Approve(7, 1); !domain.IsConflict(err) {
		t.Fatalf("re-deciding a rejected lawyer must conflict, got %v", err)
	}
}

func TestLawyerApproveMissingLawyer(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE lawyers").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT(.|\n)+FROM lawyers WHERE id").
		WillReturnRows(sqlmock.NewRows(lawyerCols))

	svc := LawyerService{LawyerRepo: repositories.LawyerRepository{DB: db}}
	if _, err := svc.Approve(99, 1); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
