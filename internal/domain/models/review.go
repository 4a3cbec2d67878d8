package models

type Review struct {
	ID            int64  `json:"id"`
	LawyerID      int64  `json:"lawyer_id"`
	CustomerID    int64  `json:"customer_id"`
	AppointmentID int64  `json:"appointment_id"`
	Rating        int    `json:"rating"` // 1..5
	Comment       string `json:"comment"`
	CreatedAt     string `json:"created_at"`
}
