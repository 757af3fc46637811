package dto

import "time"

type DashboardKPIsDTO struct {
	TotalSales         float64 `json:"totalSales"`
	MonthlyOrders      int     `json:"monthlyOrders"`
	MonthlyRevenue     float64 `json:"monthlyRevenue"`
	ActiveAffiliates   int     `json:"activeAffiliates"`
	PendingCommissions int     `json:"pendingCommissions"`
	TotalUsers         int     `json:"totalUsers"`
}

type DashboardDTO struct {
	KPIs             DashboardKPIsDTO `json:"kpis"`
	RecentOrders     []OrderDTO       `json:"recentOrders"`
	LowStockProducts []ProductDTO     `json:"lowStockProducts"`
	AdminInfo        AdminInfoDTO     `json:"adminInfo"`
}

type AdminInfoDTO struct {
	Role     string   `json:"role"`
	Regions  []string `json:"regions"`
	IsGlobal bool     `json:"isGlobal"`
}

type UserFiltersDTO struct {
	Search string
	Role   string
	Active *bool
	Page   int
	Limit  int
}

type UserListDTO struct {
	Users      []UserDTO     `json:"users"`
	Pagination PaginationDTO `json:"pagination"`
}

type SetUserActiveRequestDTO struct {
	IsActive bool `json:"isActive"`
}

// Affiliate network panel.

type NetworkSummaryDTO struct {
	TotalAffiliates             int     `json:"totalAffiliates"`
	ActiveAffiliates            int     `json:"activeAffiliates"`
	TotalCommissionsGenerated   float64 `json:"totalCommissionsGenerated"`
	MonthlyCommissionsGenerated float64 `json:"monthlyCommissionsGenerated"`
}

type NetworkMemberDTO struct {
	ID         int       `json:"id"`
	FullName   string    `json:"fullName"`
	DNI        string    `json:"dni"`
	Phone      string    `json:"phone"`
	City       string    `json:"city"`
	Status     string    `json:"status"`
	IsActive   bool      `json:"isActive"`
	ReferredAt time.Time `json:"referredAt"`
}

type NetworkDTO struct {
	Summary    NetworkSummaryDTO  `json:"summary"`
	Affiliates []NetworkMemberDTO `json:"affiliates"`
	Pagination PaginationDTO      `json:"pagination"`
}

type NetworkFiltersDTO struct {
	Search string
	Status string
	Page   int
	Limit  int
}

type RegisterReferralRequestDTO struct {
	DNI       string `json:"dni"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Region    string `json:"region"`
	City      string `json:"city"`
	Address   string `json:"address"`
	Reference string `json:"reference,omitempty"`
}

type RegisterReferralResponseDTO struct {
	User         UserDTO `json:"user"`
	TempPassword string  `json:"tempPassword"`
}
