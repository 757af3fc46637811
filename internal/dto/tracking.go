package dto

import "time"

type MonthlyStatusDTO struct {
	CurrentMonth  time.Time `json:"currentMonth"`
	Quantity      int       `json:"quantity"`
	Required      int       `json:"required"`
	Achieved      bool      `json:"achieved"`
	DaysRemaining int       `json:"daysRemaining"`
	Status        string    `json:"status"`
}

type MonthlyRecordDTO struct {
	Month    time.Time `json:"month"`
	Quantity int       `json:"quantity"`
	Achieved bool      `json:"achieved"`
}
