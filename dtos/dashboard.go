package dtos

type DashboardSummary struct {
	SalesCount         int64   `json:"sales_count"`
	SalesTotal         float64 `json:"sales_total"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	TodaySales         float64 `json:"today_sales"`
	LowStock           int64   `json:"low_stock"`
	ActiveEmployees    int64   `json:"active_employees"`
	MonthExpenses      float64 `json:"month_expenses"`
}
