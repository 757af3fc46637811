package dto

import "time"

type CategoryDTO struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	IsActive bool   `json:"isActive"`
}

type CategoryRequestDTO struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ProductRequestDTO struct {
	CategoryID     int     `json:"categoryId"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	SKU            string  `json:"sku"`
	PublicPrice    float64 `json:"publicPrice"`
	AffiliatePrice float64 `json:"affiliatePrice"`
	Stock          int     `json:"stock"`
	ImageURL       string  `json:"imageUrl,omitempty"`
}

// ProductDTO exposes the price for the caller's role alongside both list prices.
type ProductDTO struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	Description    string       `json:"description,omitempty"`
	SKU            string       `json:"sku"`
	Price          float64      `json:"price"`
	PublicPrice    float64      `json:"publicPrice"`
	AffiliatePrice float64      `json:"affiliatePrice"`
	Stock          int          `json:"stock"`
	ImageURL       string       `json:"imageUrl,omitempty"`
	IsAvailable    bool         `json:"isAvailable"`
	Category       *CategoryDTO `json:"category,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
}

type ProductListDTO struct {
	Products   []ProductDTO  `json:"products"`
	Pagination PaginationDTO `json:"pagination"`
}

type ProductFiltersDTO struct {
	Search     string
	CategoryID int
	MinPrice   *float64
	MaxPrice   *float64
	SortBy     string
	SortOrder  string
	Page       int
	Limit      int
}
