package entity

import "time"

// Customer is a billing customer. Mobile is the unique business key
// (exactly 10 digits). Customers are never deleted in-app.
type Customer struct {
	ID        string
	Name      string
	Mobile    string
	CreatedAt time.Time
}
