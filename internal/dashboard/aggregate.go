package dashboard

import (
	"sort"
	"time"

	"github.com/lagranja/vetstore/internal/shared"
)

// SaleRecord is the raw shape the aggregator consumes for sales.
type SaleRecord struct {
	Date          time.Time
	Total         float64
	PaymentMethod string
}

// ExpenseRecord is the raw shape the aggregator consumes for expenses.
type ExpenseRecord struct {
	Date     time.Time
	Amount   float64
	Category string
}

// SalesStats are the sale aggregates for a range.
type SalesStats struct {
	TotalSales      float64            `json:"total_sales"`
	SalesCount      int                `json:"sales_count"`
	AvgTicket       float64            `json:"avg_ticket"`
	ByPaymentMethod map[string]float64 `json:"by_payment_method"`
}

// ExpensesStats are the expense aggregates for a range.
type ExpensesStats struct {
	TotalExpenses float64            `json:"total_expenses"`
	ExpensesCount int                `json:"expenses_count"`
	ByCategory    map[string]float64 `json:"by_category"`
}

// DayPoint is one bucket of a per-day series.
type DayPoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// DailyPoint is one bucket of the merged sales/expenses chart series.
type DailyPoint struct {
	Date     string  `json:"date"`
	Sales    float64 `json:"sales"`
	Expenses float64 `json:"expenses"`
}

// AggregateSales reduces raw sale records into totals and breakdowns.
// AvgTicket is 0 when there are no sales.
func AggregateSales(records []SaleRecord) SalesStats {
	stats := SalesStats{ByPaymentMethod: make(map[string]float64)}
	for _, rec := range records {
		stats.TotalSales += rec.Total
		stats.SalesCount++
		stats.ByPaymentMethod[rec.PaymentMethod] += rec.Total
	}
	if stats.SalesCount > 0 {
		stats.AvgTicket = stats.TotalSales / float64(stats.SalesCount)
	}
	return stats
}

// AggregateExpenses reduces raw expense records into totals and a category
// breakdown.
func AggregateExpenses(records []ExpenseRecord) ExpensesStats {
	stats := ExpensesStats{ByCategory: make(map[string]float64)}
	for _, rec := range records {
		stats.TotalExpenses += rec.Amount
		stats.ExpensesCount++
		stats.ByCategory[rec.Category] += rec.Amount
	}
	return stats
}

// SalesByDay buckets sale totals by UTC calendar date, ascending.
func SalesByDay(records []SaleRecord) []DayPoint {
	byDay := make(map[string]float64)
	for _, rec := range records {
		byDay[shared.DayKey(rec.Date)] += rec.Total
	}
	return sortedPoints(byDay)
}

// ExpensesByDay buckets expense amounts by UTC calendar date, ascending.
func ExpensesByDay(records []ExpenseRecord) []DayPoint {
	byDay := make(map[string]float64)
	for _, rec := range records {
		byDay[shared.DayKey(rec.Date)] += rec.Amount
	}
	return sortedPoints(byDay)
}

// MergeDaily combines the two per-day series for charting: the union of
// dates present in either, missing sides defaulting to 0, sorted ascending.
func MergeDaily(sales, expenses []DayPoint) []DailyPoint {
	merged := make(map[string]*DailyPoint)
	for _, p := range sales {
		merged[p.Date] = &DailyPoint{Date: p.Date, Sales: p.Amount}
	}
	for _, p := range expenses {
		if existing, ok := merged[p.Date]; ok {
			existing.Expenses = p.Amount
			continue
		}
		merged[p.Date] = &DailyPoint{Date: p.Date, Expenses: p.Amount}
	}

	out := make([]DailyPoint, 0, len(merged))
	for _, p := range merged {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func sortedPoints(byDay map[string]float64) []DayPoint {
	out := make([]DayPoint, 0, len(byDay))
	for date, amount := range byDay {
		out = append(out, DayPoint{Date: date, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
