package models

const (
	PaymentEMoney = "e-money"
	PaymentCash   = "cash"

	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ShippingAddress struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}

// Order est créé une seule fois à la soumission du checkout, puis immuable.
// Timestamp est en millisecondes epoch.
type Order struct {
	OrderID       string          `json:"orderId"`
	Customer      Customer        `json:"customer"`
	Shipping      ShippingAddress `json:"shipping"`
	Items         []CartItem      `json:"items"`
	Totals        CartTotals      `json:"totals"`
	PaymentMethod string          `json:"paymentMethod"` // e-money | cash
	Timestamp     int64           `json:"timestamp"`
	Status        string          `json:"status"` // pending | completed
}
