package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"legalease/internal/domain"
	"legalease/internal/domain/models"
	"legalease/internal/http/middleware"
	"legalease/internal/repositories"
	"legalease/internal/utils"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	userRepo := repositories.UserRepository{}
	user, hash, err := userRepo.GetByEmail(strings.TrimSpace(req.Email))
	if err != nil {
		if domain.IsNotFound(err) {
			RespondError(c, http.StatusUnauthorized, "wrong email or password", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "wrong email or password", nil)
		return
	}

	token, err := middleware.SignToken(user.ID, user.Role)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to issue token", err)
		return
	}

	resp := gin.H{
		"token": token,
		"user":  user.ToPublic(),
	}

	// Attach the role profile so the client does not need a second round trip.
	switch user.Role {
	case domain.RoleLawyer:
		if lawyer, err := (repositories.LawyerRepository{}).GetByUserID(user.ID); err == nil {
			resp["lawyer"] = lawyer
		}
	case domain.RoleCustomer:
		if customer, err := (repositories.CustomerRepository{}).GetByUserID(user.ID); err == nil {
			resp["customer"] = customer
		}
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "user_id set")
	c.JSON(http.StatusOK, resp)
}

type registerCustomerRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

// POST /api/auth/register
func RegisterCustomer(c *gin.Context) {
	var req registerCustomerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Fullname) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		RespondError(c, http.StatusBadRequest, "fullname, email and password are required", nil)
		return
	}

	userRepo := repositories.UserRepository{}
	exists, err := userRepo.EmailExists(req.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if exists {
		RespondError(c, http.StatusBadRequest, "email already registered", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	userID, err := userRepo.Create(req.Fullname, req.Email, req.Phone, string(hash), domain.RoleCustomer)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save user", err)
		return
	}

	customerRepo := repositories.CustomerRepository{}
	customerID, err := customerRepo.Create(models.Customer{
		UserID:   userID,
		Fullname: req.Fullname,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save customer profile", err)
		return
	}

	customer, err := customerRepo.GetByID(customerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "register_customer", "ok")
	c.JSON(http.StatusCreated, gin.H{"message": "registration successful", "customer": customer})
}

type registerLawyerRequest struct {
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	City             string  `json:"city"`
	Specialization   string  `json:"specialization"`
	Bio              string  `json:"bio"`
	HourlyRate       float64 `json:"hourly_rate"`
	Commission       float64 `json:"commission"`
	DiscountPercent  float64 `json:"discount_percent"`
	DiscountMinHours float64 `json:"discount_min_hours"`
	ExperienceYears  int     `json:"experience_years"`
	Password         string  `json:"password"`
}

// POST /api/auth/register-lawyer
// New lawyers always enter the marketplace as Pending; an admin decides.
func RegisterLawyer(c *gin.Context) {
	var req registerLawyerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		RespondError(c, http.StatusBadRequest, "name, email and password are required", nil)
		return
	}
	if req.HourlyRate <= 0 {
		RespondError(c, http.StatusBadRequest, "hourly_rate must be positive", nil)
		return
	}

	userRepo := repositories.UserRepository{}
	exists, err := userRepo.EmailExists(req.Email)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if exists {
		RespondError(c, http.StatusBadRequest, "email already registered", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	userID, err := userRepo.Create(req.Name, req.Email, req.Phone, string(hash), domain.RoleLawyer)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save user", err)
		return
	}

	lawyerRepo := repositories.LawyerRepository{}
	lawyerID, err := lawyerRepo.Create(models.Lawyer{
		UserID:            userID,
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		City:              req.City,
		Specialization:    req.Specialization,
		Bio:               req.Bio,
		HourlyRate:        req.HourlyRate,
		CommissionPercent: req.Commission,
		DiscountPercent:   req.DiscountPercent,
		DiscountMinHours:  req.DiscountMinHours,
		ExperienceYears:   req.ExperienceYears,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to save lawyer profile", err)
		return
	}

	lawyer, err := lawyerRepo.GetByID(lawyerID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "register_lawyer", "ok")
	c.JSON(http.StatusCreated, gin.H{"message": "registration submitted for review", "lawyer": lawyer})
}
