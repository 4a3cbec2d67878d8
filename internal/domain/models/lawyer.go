package models

// Lawyer approval status, one-way from Pending.
const (
	LawyerPending  = "Pending"
	LawyerApproved = "Approved"
	LawyerRejected = "Rejected"
)

type Lawyer struct {
	ID                int64   `json:"id"`
	UserID            int64   `json:"user_id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	City              string  `json:"city"`
	Specialization    string  `json:"specialization"`
	Bio               string  `json:"bio"`
	HourlyRate        float64 `json:"hourly_rate"`
	CommissionPercent float64 `json:"commission"`
	DiscountPercent   float64 `json:"discount_percent"`
	DiscountMinHours  float64 `json:"discount_min_hours"`
	Rating            float64 `json:"rating"`
	ReviewCount       int     `json:"review_count"`
	ExperienceYears   int     `json:"experience_years"`
	Photo             string  `json:"photo"`
	Status            string  `json:"status"`
	VerifyStatus      bool    `json:"verify_status"`
	ApproveAt         string  `json:"approve_at,omitempty"`
	ApproveBy         int64   `json:"approve_by,omitempty"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}
