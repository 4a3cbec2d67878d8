package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"legalease/internal/config"
	"legalease/internal/domain"
	"legalease/internal/http/middleware"
)

var lawyerListCols = []string{
	"id", "user_id", "name", "email", "phone",
	"city", "specialization", "bio",
	"hourly_rate", "commission_percent", "discount_percent", "discount_min_hours",
	"rating", "review_count", "experience_years",
	"photo", "status", "verify_status", "approve_at", "approve_by",
	"created_at", "updated_at",
}

func lawyerListRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}

	prev := config.DB
	config.DB = db

	r := gin.New()
	r.GET("/lawyers", middleware.OptionalAuth(), GetLawyers)

	return r, mock, func() {
		config.DB = prev
		db.Close()
	}
}

func TestGetLawyersAdminSeesPendingQueue(t *testing.T) {
	r, mock, done := lawyerListRouter(t)
	defer done()

	mock.ExpectQuery("SELECT(.|\n)+FROM lawyers").
		WithArgs("Pending").
		WillReturnRows(sqlmock.NewRows(lawyerListCols))

	token, err := middleware.SignToken(1, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/lawyers?status=Pending", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d body %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("admin status filter was not applied: %v", err)
	}
}

func TestGetLawyersPublicOnlySeesApproved(t *testing.T) {
	r, mock, done := lawyerListRouter(t)
	defer done()

	// anonymous callers are pinned to Approved even when they ask for more
	mock.ExpectQuery("SELECT(.|\n)+FROM lawyers").
		WithArgs("Approved").
		WillReturnRows(sqlmock.NewRows(lawyerListCols))

	req := httptest.NewRequest(http.MethodGet, "/lawyers?status=Pending", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d body %s", w.Code, w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("public listing must be forced to Approved: %v", err)
	}
}
