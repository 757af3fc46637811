package dto

import "time"

type CommissionDTO struct {
	ID         int        `json:"id"`
	Type       string     `json:"type"`
	Amount     float64    `json:"amount"`
	Percentage float64    `json:"percentage"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	OrderItem  *OrderItemDTO `json:"orderItem,omitempty"`
}

// CommissionTotalsDTO aggregates amounts by type and status.
type CommissionTotalsDTO struct {
	Total    float64 `json:"total"`
	Direct   float64 `json:"direct"`
	Referral float64 `json:"referral"`
	Pending  float64 `json:"pending"`
	Approved float64 `json:"approved"`
	Paid     float64 `json:"paid"`
}

type CommissionSummaryDTO struct {
	CurrentMonth CommissionTotalsDTO `json:"currentMonth"`
	AllTime      CommissionTotalsDTO `json:"allTime"`
}

type CommissionListDTO struct {
	Summary     CommissionSummaryDTO `json:"summary"`
	Commissions []CommissionDTO      `json:"commissions"`
	Pagination  PaginationDTO        `json:"pagination"`
}

type CommissionFiltersDTO struct {
	Month  string // "2026-08"
	Type   string
	Status string
	Region string
	Page   int
	Limit  int
}

type MarkPaidRequestDTO struct {
	CommissionIDs []int `json:"commissionIds"`
}

type MarkPaidResponseDTO struct {
	UpdatedCount int `json:"updatedCount"`
}
