package dto

import "time"

type AddCartItemRequestDTO struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type UpdateCartItemRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartItemDTO struct {
	ID         int        `json:"id"`
	Quantity   int        `json:"quantity"`
	UnitPrice  float64    `json:"unitPrice"`
	TotalPrice float64    `json:"totalPrice"`
	Product    ProductDTO `json:"product"`
}

type CartDTO struct {
	ID         int           `json:"id"`
	Items      []CartItemDTO `json:"items"`
	TotalItems int           `json:"totalItems"`
	TotalPrice float64       `json:"totalPrice"`
	IsEmpty    bool          `json:"isEmpty"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}
