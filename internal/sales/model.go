package sales

import "time"

// PaymentMethod is how a sale or expense was paid.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentCard     PaymentMethod = "CARD"
	PaymentOther    PaymentMethod = "OTHER"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentTransfer, PaymentCard, PaymentOther:
		return true
	}
	return false
}

// Sale is a completed point-of-sale transaction. Total is always derivable
// from Subtotal and DiscountPercent.
type Sale struct {
	ID              string        `json:"id"`
	Date            time.Time     `json:"date"`
	Subtotal        float64       `json:"subtotal"`
	DiscountPercent float64       `json:"discount_percent"`
	Total           float64       `json:"total"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	CustomerName    string        `json:"customer_name,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	CreatedByID     string        `json:"created_by_id"`
	CreatedAt       time.Time     `json:"created_at"`
	Items           []SaleItem    `json:"items"`
}

// SaleItem is one line of a sale. Name and unit price are frozen at sale
// time, decoupled from later catalog edits. ProductID is nil for free-form
// lines.
type SaleItem struct {
	ID                string  `json:"id"`
	SaleID            string  `json:"sale_id"`
	ProductID         *string `json:"product_id"`
	NameSnapshot      string  `json:"name_snapshot"`
	UnitPriceSnapshot float64 `json:"unit_price_snapshot"`
	Quantity          int     `json:"quantity"`
	Subtotal          float64 `json:"subtotal"`
}
