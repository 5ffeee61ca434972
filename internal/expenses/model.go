package expenses

import "time"

// SuggestedCategories is the set offered in the back-office form. The field
// itself stays free text.
var SuggestedCategories = []string{
	"Inventario",
	"Insumos médicos",
	"Servicios públicos",
	"Nómina",
	"Arriendo",
	"Transporte",
	"Otros",
}

// Expense is a cost recorded against the business.
type Expense struct {
	ID            string    `json:"id"`
	Date          time.Time `json:"date"`
	Amount        float64   `json:"amount"`
	Category      string    `json:"category"`
	PaymentMethod *string   `json:"payment_method,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedByID   string    `json:"created_by_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
