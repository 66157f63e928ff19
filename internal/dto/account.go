package dto

type AccountResponse struct {
	ID              string  `json:"id"`
	User            string  `json:"user"`
	Name            string  `json:"name"`
	MonthYear       string  `json:"monthYear"`
	StartingBalance float64 `json:"startingBalance"`
	CurrentBalance  float64 `json:"currentBalance"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

type UpdateAccountRequest struct {
	StartingBalance float64 `json:"startingBalance"`
	CurrentBalance  float64 `json:"currentBalance"`
}

type UpdateBalanceRequest struct {
	CurrentBalance float64 `json:"currentBalance"`
}
