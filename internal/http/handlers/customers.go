package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"legalease/internal/domain"
	"legalease/internal/domain/models"
	"legalease/internal/http/middleware"
	"legalease/internal/repositories"
)

// GET /api/customers (admin)
func GetCustomers(c *gin.Context) {
	customers, err := (repositories.CustomerRepository{}).List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GET /api/customers/:id
func GetCustomerByID(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	// customers may only read their own profile
	if middleware.GetUserRole(c) == domain.RoleCustomer {
		own, err := (repositories.CustomerRepository{}).GetByUserID(middleware.GetUserID(c))
		if err != nil || own.ID != id {
			RespondError(c, http.StatusForbidden, "profile belongs to another customer", nil)
			return
		}
	}

	customer, err := (repositories.CustomerRepository{}).GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// POST /api/customers (admin)
func CreateCustomer(c *gin.Context) {
	var input models.Customer
	if !BindJSONOrError(c, &input) {
		return
	}
	if strings.TrimSpace(input.Fullname) == "" || strings.TrimSpace(input.Email) == "" {
		RespondError(c, http.StatusBadRequest, "fullname and email are required", nil)
		return
	}

	repo := repositories.CustomerRepository{}
	id, err := repo.Create(input)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create customer", err)
		return
	}
	customer, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// PUT /api/customers/:id
func UpdateCustomer(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}

	// customers may only edit their own profile
	if middleware.GetUserRole(c) == domain.RoleCustomer {
		customer, err := (repositories.CustomerRepository{}).GetByUserID(middleware.GetUserID(c))
		if err != nil || customer.ID != id {
			RespondError(c, http.StatusForbidden, "profile belongs to another customer", nil)
			return
		}
	}

	var input models.Customer
	if !BindJSONOrError(c, &input) {
		return
	}
	if strings.TrimSpace(input.Status) == "" {
		input.Status = models.CustomerActive
	}

	repo := repositories.CustomerRepository{}
	if err := repo.Update(id, input); err != nil {
		RespondDomainError(c, err)
		return
	}
	customer, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DELETE /api/customers/:id (admin)
func DeleteCustomer(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	if err := (repositories.CustomerRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "customer deleted"})
}
