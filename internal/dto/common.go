package dto

// PaginationDTO mirrors the pagination block every listing endpoint returns.
type PaginationDTO struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}

func NewPagination(page, limit, total int) PaginationDTO {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return PaginationDTO{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: limit,
		HasNextPage:  page < totalPages,
		HasPrevPage:  page > 1,
	}
}
