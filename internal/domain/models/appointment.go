package models

// Appointment lifecycle: pending -> approved -> completed, pending -> rejected,
// cancelled reachable from pending/approved.
const (
	AppointmentPending   = "pending"
	AppointmentApproved  = "approved"
	AppointmentRejected  = "rejected"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	ID              int64   `json:"id"`
	LawyerID        int64   `json:"lawyer_id"`
	CustomerID      int64   `json:"customer_id"`
	AppointmentDate string  `json:"appointment_date"` // YYYY-MM-DD
	AppointmentTime string  `json:"appointment_time"` // HH:MM
	SlotDuration    int     `json:"slot_duration"`    // minutes
	TotalPrice      float64 `json:"total_price"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes"`
	IsReviewed      bool    `json:"is_reviewed"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}
