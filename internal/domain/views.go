package domain

import "time"

// Read models produced by join queries.

type CartItemDetail struct {
	CartItem
	Product Product
}

type CommissionDetail struct {
	Commission
	OrderItem   OrderItem
	ProductName string
}

// CommissionSum is one row of a GROUP BY type, status aggregation.
type CommissionSum struct {
	Type   string
	Status string
	Amount float64
}

type NetworkMember struct {
	Affiliate
	FullName      string
	DNI           string
	UserIsActive  bool
	UserCreatedAt time.Time
}

type OrderWithUser struct {
	Order
	FullName string
	DNI      string
	Email    string
}
