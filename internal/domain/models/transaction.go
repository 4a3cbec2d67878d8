package models

const (
	TransactionPending   = "Pending"
	TransactionSuccess   = "Success"
	TransactionFailed    = "Failed"
	TransactionCancelled = "Cancelled"
)

type Transaction struct {
	ID            int64   `json:"id"`
	Reference     string  `json:"reference"`
	AppointmentID int64   `json:"appointment_id"`
	CustomerID    int64   `json:"customer_id"`
	LawyerID      int64   `json:"lawyer_id"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"payment_method"`
	PaidAt        string  `json:"paid_at,omitempty"`
	CreatedAt     string  `json:"created_at"`
}
