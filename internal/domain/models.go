package domain

import "time"

const (
	OrderPending   = "pending"
	OrderCompleted = "completed"

	TxIncome  = "income"
	TxExpense = "expense"

	InvoiceNone      = "none"
	InvoicePending   = "pending"
	InvoiceCompleted = "completed"

	ReservationBooked    = "booked"
	ReservationCheckedIn = "checked_in"
	ReservationCancelled = "cancelled"
)

type Ingredient struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	Quantity  float64 `json:"quantity"`
	Threshold float64 `json:"threshold"`
	Cost      float64 `json:"cost"`
}

type Dish struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// RecipeItem is one line of a dish's bill of materials: how much of one
// ingredient a single unit of the dish consumes.
type RecipeItem struct {
	IngredientID int     `json:"ingredient_id"`
	Amount       float64 `json:"amount"`
}

type CartItem struct {
	Dish
	Count int `json:"count"`
}

// OrderItem snapshots the dish at commit time; later price edits do not
// change already-placed orders.
type OrderItem struct {
	Dish
	Count int `json:"count"`
}

type Order struct {
	ID            string      `json:"id"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	IsReservation bool        `json:"is_reservation"`
	TableNo       string      `json:"table_no"`
	GuestCount    int         `json:"guest_count"`
}

type Transaction struct {
	ID            string    `json:"id"`
	Type          string    `json:"type"`
	Category      string    `json:"category"`
	Amount        float64   `json:"amount"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
	InvoiceStatus string    `json:"invoice_status"`
	InvoiceNo     string    `json:"invoice_no,omitempty"`
}

type Reservation struct {
	ID           string     `json:"id"`
	CustomerName string     `json:"customer_name"`
	Date         string     `json:"date"`
	Time         string     `json:"time"`
	Guests       int        `json:"guests"`
	Items        []CartItem `json:"items"`
	Status       string     `json:"status"`
	RealTableNo  string     `json:"real_table_no,omitempty"`
}

type TableInfo struct {
	TableNo    string `json:"table_no"`
	GuestCount int    `json:"guest_count"`
}

// ProcurementItem is one suggested purchase line. Demand is the forward
// requirement implied by booked reservations.
type ProcurementItem struct {
	Ingredient
	Demand          float64 `json:"demand"`
	SuggestedAmount float64 `json:"suggested_amount"`
	EstimatedCost   float64 `json:"estimated_cost"`
}

type ProcurementList struct {
	Items              []ProcurementItem `json:"items"`
	TotalEstimatedCost float64           `json:"total_estimated_cost"`
}

const (
	EventOrderPlaced    = "order_placed"
	EventOrderCompleted = "order_completed"
)

// OrderEvent is the message published to Kafka on order lifecycle changes,
// consumed by the kitchen display aggregator.
type OrderEvent struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"order_id"`
	TableNo   string    `json:"table_no"`
	Total     float64   `json:"total"`
	ItemCount int       `json:"item_count"`
	Timestamp time.Time `json:"timestamp"`
}
