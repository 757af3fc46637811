package dto

import "time"

type ConfirmPaymentRequestDTO struct {
	OrderID   int     `json:"orderId"`
	Method    string  `json:"method"`
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference,omitempty"`
}

type PaymentDTO struct {
	ID        int       `json:"id"`
	OrderID   int       `json:"orderId"`
	Method    string    `json:"method"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Reference string    `json:"reference,omitempty"`
	PaidAt    time.Time `json:"paidAt"`
}

type ConfirmPaymentResponseDTO struct {
	Payment PaymentDTO `json:"payment"`
	Order   OrderDTO   `json:"order"`
}

type PaymentMethodDTO struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Instructions string            `json:"instructions,omitempty"`
	BankInfo     map[string]string `json:"bankInfo,omitempty"`
}
