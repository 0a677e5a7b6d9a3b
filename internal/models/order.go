package models

import "time"

// Order lifecycle statuses. An order starts pending; completed and rejected
// are terminal.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusRejected  = "rejected"
)

// Accepted payment methods.
const (
	MethodQRIS  = "qris"
	MethodDana  = "dana"
	MethodOVO   = "ovo"
	MethodGoPay = "gopay"
)

// ValidMethod reports whether m is one of the accepted payment methods.
func ValidMethod(m string) bool {
	switch m {
	case MethodQRIS, MethodDana, MethodOVO, MethodGoPay:
		return true
	}
	return false
}

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether a status admits no further transitions.
func Terminal(s string) bool {
	return s == StatusCompleted || s == StatusRejected
}

// Order is one entry of the ledger. ID is the payment reference and doubles as
// the primary key. Items keeps the display names of the purchased lines in
// cart order. Total is in the smallest currency unit (rupiah).
type Order struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Items         []string  `json:"items"`
	Total         int64     `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	ProofImage    string    `json:"proof_image,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// OrderFilter narrows a ledger listing. Empty fields are ignored.
type OrderFilter struct {
	Owner  string
	Status string
}

// StatusEvent is the message published when an admin changes an order status.
type StatusEvent struct {
	OrderID string `json:"order_id"`
	Email   string `json:"email"`
	Status  string `json:"status"`
	Total   int64  `json:"total"`
}
