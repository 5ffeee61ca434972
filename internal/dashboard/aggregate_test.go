package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int, hour int) time.Time {
	return time.Date(2025, time.March, d, hour, 0, 0, 0, time.UTC)
}

func TestAggregateSales(t *testing.T) {
	records := []SaleRecord{
		{Date: day(1, 10), Total: 50000, PaymentMethod: "CASH"},
		{Date: day(1, 15), Total: 30000, PaymentMethod: "CARD"},
		{Date: day(2, 9), Total: 20000, PaymentMethod: "CASH"},
	}

	stats := AggregateSales(records)
	assert.Equal(t, float64(100000), stats.TotalSales)
	assert.Equal(t, 3, stats.SalesCount)
	assert.InDelta(t, 100000.0/3, stats.AvgTicket, 0.0001)
	assert.Equal(t, float64(70000), stats.ByPaymentMethod["CASH"])
	assert.Equal(t, float64(30000), stats.ByPaymentMethod["CARD"])

	var sum float64
	for _, v := range stats.ByPaymentMethod {
		sum += v
	}
	assert.Equal(t, stats.TotalSales, sum)
}

func TestAggregateSalesEmpty(t *testing.T) {
	stats := AggregateSales(nil)
	assert.Zero(t, stats.TotalSales)
	assert.Zero(t, stats.SalesCount)
	assert.Zero(t, stats.AvgTicket)
	assert.NotNil(t, stats.ByPaymentMethod)
}

func TestAggregateExpenses(t *testing.T) {
	records := []ExpenseRecord{
		{Date: day(1, 8), Amount: 40000, Category: "Arriendo"},
		{Date: day(3, 8), Amount: 10000, Category: "Transporte"},
		{Date: day(4, 8), Amount: 5000, Category: "Transporte"},
	}

	stats := AggregateExpenses(records)
	assert.Equal(t, float64(55000), stats.TotalExpenses)
	assert.Equal(t, 3, stats.ExpensesCount)
	assert.Equal(t, float64(15000), stats.ByCategory["Transporte"])
}

func TestSalesByDay(t *testing.T) {
	records := []SaleRecord{
		{Date: day(2, 9), Total: 20000},
		{Date: day(1, 10), Total: 50000},
		{Date: day(1, 22), Total: 30000},
	}

	points := SalesByDay(records)
	require.Len(t, points, 2)
	assert.Equal(t, DayPoint{Date: "2025-03-01", Amount: 80000}, points[0])
	assert.Equal(t, DayPoint{Date: "2025-03-02", Amount: 20000}, points[1])

	var sum float64
	for _, p := range points {
		sum += p.Amount
	}
	assert.Equal(t, AggregateSales(records).TotalSales, sum)
}

func TestSalesByDayUsesUTCDate(t *testing.T) {
	bogota := time.FixedZone("America/Bogota", -5*3600)
	// 20:00 local on March 1 is already March 2 in UTC.
	records := []SaleRecord{{Date: time.Date(2025, time.March, 1, 20, 0, 0, 0, bogota), Total: 100}}

	points := SalesByDay(records)
	require.Len(t, points, 1)
	assert.Equal(t, "2025-03-02", points[0].Date)
}

func TestMergeDaily(t *testing.T) {
	sales := []DayPoint{
		{Date: "2025-03-01", Amount: 80000},
		{Date: "2025-03-03", Amount: 20000},
	}
	expenses := []DayPoint{
		{Date: "2025-03-01", Amount: 40000},
		{Date: "2025-03-02", Amount: 10000},
	}

	merged := MergeDaily(sales, expenses)
	require.Len(t, merged, 3)
	assert.Equal(t, DailyPoint{Date: "2025-03-01", Sales: 80000, Expenses: 40000}, merged[0])
	assert.Equal(t, DailyPoint{Date: "2025-03-02", Sales: 0, Expenses: 10000}, merged[1])
	assert.Equal(t, DailyPoint{Date: "2025-03-03", Sales: 20000, Expenses: 0}, merged[2])
}

func TestMergeDailyEmpty(t *testing.T) {
	assert.Empty(t, MergeDaily(nil, nil))
}
