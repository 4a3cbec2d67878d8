package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"legalease/internal/domain"
	"legalease/internal/domain/models"
	"legalease/internal/http/middleware"
	"legalease/internal/repositories"
	"legalease/internal/services"
	"legalease/internal/utils"
)

// GET /api/transactions?lawyer_id=&customer_id=&status=
func GetTransactions(c *gin.Context) {
	filter := repositories.TransactionFilter{
		LawyerID:   QueryInt64(c, "lawyer_id"),
		CustomerID: QueryInt64(c, "customer_id"),
		Status:     strings.TrimSpace(c.Query("status")),
		StartDate:  strings.TrimSpace(c.Query("start_date")),
		EndDate:    strings.TrimSpace(c.Query("end_date")),
	}

	// non-admins only see their own transactions
	switch middleware.GetUserRole(c) {
	case domain.RoleLawyer:
		lawyer, err := (repositories.LawyerRepository{}).GetByUserID(middleware.GetUserID(c))
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		filter.LawyerID = lawyer.ID
	case domain.RoleCustomer:
		customer, err := (repositories.CustomerRepository{}).GetByUserID(middleware.GetUserID(c))
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		filter.CustomerID = customer.ID
	}

	txns, err := (repositories.TransactionRepository{}).List(filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, txns)
}

// transactionVisible reports whether the authenticated caller may read txn.
func transactionVisible(c *gin.Context, txn models.Transaction) bool {
	switch middleware.GetUserRole(c) {
	case domain.RoleLawyer:
		lawyer, err := (repositories.LawyerRepository{}).GetByUserID(middleware.GetUserID(c))
		return err == nil && lawyer.ID == txn.LawyerID
	case domain.RoleCustomer:
		customer, err := (repositories.CustomerRepository{}).GetByUserID(middleware.GetUserID(c))
		return err == nil && customer.ID == txn.CustomerID
	default:
		return true
	}
}

// GET /api/transactions/:id
func GetTransactionByID(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	txn, err := (repositories.TransactionRepository{}).GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !transactionVisible(c, txn) {
		RespondError(c, http.StatusForbidden, "transaction belongs to another account", nil)
		return
	}
	c.JSON(http.StatusOK, txn)
}

// POST /api/transactions
// Records a payment for an appointment; amount defaults to the appointment's
// total price when omitted.
func CreateTransaction(c *gin.Context) {
	var input models.Transaction
	if !BindJSONOrError(c, &input) {
		return
	}
	if input.AppointmentID <= 0 {
		RespondError(c, http.StatusBadRequest, "appointment_id is required", nil)
		return
	}

	appt, err := (repositories.AppointmentRepository{}).GetByID(input.AppointmentID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	// customers only pay for their own appointments
	if middleware.GetUserRole(c) == domain.RoleCustomer {
		customer, err := (repositories.CustomerRepository{}).GetByUserID(middleware.GetUserID(c))
		if err != nil || customer.ID != appt.CustomerID {
			RespondError(c, http.StatusForbidden, "appointment belongs to another customer", nil)
			return
		}
	}

	input.LawyerID = appt.LawyerID
	input.CustomerID = appt.CustomerID
	if input.Amount <= 0 {
		input.Amount = appt.TotalPrice
	}

	repo := repositories.TransactionRepository{}
	id, ref, err := repo.Create(input)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create transaction", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "transaction", "create", "reference="+ref)

	txn, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, txn)
}

type transactionStatusRequest struct {
	Status string `json:"status"`
}

var validTransactionStatus = map[string]bool{
	models.TransactionPending:   true,
	models.TransactionSuccess:   true,
	models.TransactionFailed:    true,
	models.TransactionCancelled: true,
}

// PUT /api/transactions/:id/status (admin)
func SetTransactionStatus(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var req transactionStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if !validTransactionStatus[req.Status] {
		RespondError(c, http.StatusBadRequest, "unknown transaction status", nil)
		return
	}

	repo := repositories.TransactionRepository{}
	if _, err := repo.GetByID(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := repo.SetStatus(id, req.Status); err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to update transaction", err)
		return
	}

	txn, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, txn)
}

// DELETE /api/transactions/:id (admin)
func DeleteTransaction(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	if err := (repositories.TransactionRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}

// GET /api/transactions/:id/receipt
func GetTransactionReceiptPDF(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	txn, err := (repositories.TransactionRepository{}).GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !transactionVisible(c, txn) {
		RespondError(c, http.StatusForbidden, "transaction belongs to another account", nil)
		return
	}

	svc := services.DocsService{
		TransactionRepo: repositories.TransactionRepository{},
		AppointmentRepo: repositories.AppointmentRepository{},
		LawyerRepo:      repositories.LawyerRepository{},
		CustomerRepo:    repositories.CustomerRepository{},
		RequestID:       middleware.GetRequestID(c),
	}

	pdf, filename, err := svc.GenerateReceipt(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
