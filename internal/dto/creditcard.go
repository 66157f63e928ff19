package dto

// CardSummary is the monthly spend/repay position of one named card.
type CardSummary struct {
	Card        string  `json:"card"`
	TotalSpent  float64 `json:"totalSpent"`
	TotalRepaid float64 `json:"totalRepaid"`
	Balance     float64 `json:"balance"`
}

type CreditCardSummaryResponse struct {
	Cards []CardSummary `json:"cards"`
}
