package dto

// CreateTransactionRequest carries the fields for a new or updated transaction.
// Date accepts RFC3339 or "2006-01-02"; anything else falls back to the
// submission time.
type CreateTransactionRequest struct {
	User        string  `json:"user"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Mode        string  `json:"mode"`
	Payee       string  `json:"payee"`
	ExpenseType string  `json:"expenseType"`
	NeedsWants  string  `json:"needsWants"`
	Remarks     string  `json:"remarks"`
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	User        string  `json:"user"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Mode        string  `json:"mode"`
	Payee       string  `json:"payee"`
	ExpenseType string  `json:"expenseType"`
	NeedsWants  string  `json:"needsWants"`
	Remarks     string  `json:"remarks"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// GoalProgress is the actual amount in a budgeting bucket versus its
// income-derived target. Percent-to-target is left to the client.
type GoalProgress struct {
	Amount float64 `json:"amount"`
	Target float64 `json:"target"`
}

type GoalProgressSet struct {
	Needs    GoalProgress `json:"needs"`
	Wants    GoalProgress `json:"wants"`
	Savings  GoalProgress `json:"savings"`
	Invested GoalProgress `json:"invested"`
}

// SummaryResponse is the monthly roll-up. CreditCardPayments mirrors
// TotalCCPayments under the key the dashboard has always read.
type SummaryResponse struct {
	Income     []TransactionResponse `json:"income"`
	Expenses   []TransactionResponse `json:"expenses"`
	Savings    []TransactionResponse `json:"savings"`
	CCPayments []TransactionResponse `json:"ccPayments"`

	TotalIncome        float64 `json:"totalIncome"`
	TotalExpenses      float64 `json:"totalExpenses"`
	TotalSavings       float64 `json:"totalSavings"`
	TotalCCPayments    float64 `json:"totalCCPayments"`
	CreditCardPayments float64 `json:"creditCardPayments"`
	NetFlow            float64 `json:"netFlow"`

	ExpensesByType       map[string]float64 `json:"expensesByType"`
	ExpensesByNeedsWants map[string]float64 `json:"expensesByNeedsWants"`
	GoalProgress         GoalProgressSet    `json:"goalProgress"`
}

// DateRange bounds reflect the returned page only, not the full match set.
type DateRange struct {
	Earliest string `json:"earliest"`
	Latest   string `json:"latest"`
}

type SearchResponse struct {
	Transactions      []TransactionResponse `json:"transactions"`
	Count             int                   `json:"count"`
	TotalExpenses     float64               `json:"totalExpenses"`
	TotalIncome       float64               `json:"totalIncome"`
	NetAmount         float64               `json:"netAmount"`
	CategoryBreakdown map[string]float64    `json:"categoryBreakdown"`
	TypeBreakdown     map[string]float64    `json:"typeBreakdown"`
	DateRange         *DateRange            `json:"dateRange"`
}
