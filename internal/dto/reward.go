package dto

import "time"

type RewardDTO struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	PointsRequired int    `json:"pointsRequired"`
	Stock          int    `json:"stock"`
	ImageURL       string `json:"imageUrl,omitempty"`
	IsActive       bool   `json:"isActive"`
}

type RewardRequestDTO struct {
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	PointsRequired int    `json:"pointsRequired"`
	Stock          int    `json:"stock"`
	ImageURL       string `json:"imageUrl,omitempty"`
}

type PointsSummaryDTO struct {
	CurrentPoints    int         `json:"currentPoints"`
	TotalEarned      int         `json:"totalEarned"`
	TotalSpent       int         `json:"totalSpent"`
	AvailableRewards []RewardDTO `json:"availableRewards"`
}

type ClaimRequestDTO struct {
	RewardID int `json:"rewardId"`
}

type ClaimDTO struct {
	ID          int        `json:"id"`
	RewardID    int        `json:"rewardId"`
	RewardName  string     `json:"rewardName,omitempty"`
	PointsUsed  int        `json:"pointsUsed"`
	Status      string     `json:"status"`
	ClaimedAt   time.Time  `json:"claimedAt"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}
