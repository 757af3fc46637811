package dto

import "time"

type NotificationDTO struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type NotificationListDTO struct {
	UnreadCount   int               `json:"unreadCount"`
	Notifications []NotificationDTO `json:"notifications"`
	Pagination    PaginationDTO     `json:"pagination"`
}

type NotificationFiltersDTO struct {
	Unread *bool
	Type   string
	Page   int
	Limit  int
}
