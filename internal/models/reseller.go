package models

import "time"

// Reseller is a partner account tracked independently of User. The email is a
// soft reference to a registered user; login still verifies the registered
// credential, membership here only sets the reseller flag.
type Reseller struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	JoinDate   time.Time `json:"join_date"`
	Sales      int       `json:"sales"`
	Commission int64     `json:"commission"`
}

// ResellerStats is the dashboard view for one reseller. The monthly fields are
// the rolling estimates shown on the reseller page.
type ResellerStats struct {
	Reseller
	MonthlySales      int   `json:"monthly_sales"`
	MonthlyCommission int64 `json:"monthly_commission"`
}
