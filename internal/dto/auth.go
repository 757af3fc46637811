package dto

import "time"

type LoginRequestDTO struct {
	DNI      string `json:"dni"`
	Password string `json:"password"`
}

type RegisterRequestDTO struct {
	DNI       string `json:"dni"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	SponsorID *int   `json:"sponsorId,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Region    string `json:"region,omitempty"`
	City      string `json:"city,omitempty"`
	Address   string `json:"address,omitempty"`
	Reference string `json:"reference,omitempty"`
}

type AffiliateProfileDTO struct {
	SponsorID *int   `json:"sponsorId,omitempty"`
	Phone     string `json:"phone"`
	Region    string `json:"region"`
	City      string `json:"city"`
	Address   string `json:"address"`
	Reference string `json:"reference,omitempty"`
	Status    string `json:"status"`
	Points    int    `json:"points"`
}

type UserDTO struct {
	ID        int                  `json:"id"`
	DNI       string               `json:"dni"`
	FullName  string               `json:"fullName"`
	Email     string               `json:"email"`
	Role      string               `json:"role"`
	IsActive  bool                 `json:"isActive"`
	CreatedAt time.Time            `json:"createdAt"`
	LastLogin *time.Time           `json:"lastLogin,omitempty"`
	Affiliate *AffiliateProfileDTO `json:"affiliate,omitempty"`
}

type AuthResponseDTO struct {
	User      UserDTO `json:"user"`
	Token     string  `json:"token"`
	ExpiresIn string  `json:"expiresIn"`
}
