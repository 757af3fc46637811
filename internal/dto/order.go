package dto

import "time"

type CheckoutRequestDTO struct {
	ShippingAddress  *AddressRequestDTO `json:"shippingAddress,omitempty"`
	UseStoredAddress bool               `json:"useStoredAddress,omitempty"`
	AddressID        int                `json:"addressId,omitempty"`
	PaymentMethod    string             `json:"paymentMethod"`
}

type OrderItemDTO struct {
	ID         int     `json:"id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
	ProductID  int     `json:"productId"`
	Product    string  `json:"product,omitempty"`
}

type OrderDTO struct {
	ID           int            `json:"id"`
	Status       string         `json:"status"`
	TotalAmount  float64        `json:"totalAmount"`
	ShippingCost float64        `json:"shippingCost"`
	TrackingCode string         `json:"trackingCode,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	DeliveredAt  *time.Time     `json:"deliveredAt,omitempty"`
	Items        []OrderItemDTO `json:"items"`
	Address      *AddressDTO    `json:"shippingAddress,omitempty"`
}

type OrderListDTO struct {
	Orders     []OrderDTO    `json:"orders"`
	Pagination PaginationDTO `json:"pagination"`
}

type OrderFiltersDTO struct {
	Status   string
	Region   string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	Limit    int
}

type UpdateOrderStatusRequestDTO struct {
	Status       string `json:"status"`
	TrackingCode string `json:"trackingCode,omitempty"`
}
