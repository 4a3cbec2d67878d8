package models

const (
	CustomerActive   = "Active"
	CustomerInactive = "Inactive"
)

type Customer struct {
	ID           int64  `json:"id"`
	UserID       int64  `json:"user_id"`
	Fullname     string `json:"fullname"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Status       string `json:"status"`
	RegisterDate string `json:"register_date"`
}
