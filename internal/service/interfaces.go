package service

import (
	"context"

	"github.com/zxjshishen/CJ-DC/internal/domain"
	"github.com/zxjshishen/CJ-DC/internal/storage"
)

// Backend is the remote persistence collaborator. Only catalog reads and
// order writes have a remote contract; everything else lives in session state.
type Backend interface {
	GetDishes() ([]domain.Dish, error)
	GetIngredients() ([]domain.Ingredient, error)
	CreateOrder(order *domain.Order) error
	InitSchema() error
}

// Notifier surfaces transient user-facing messages.
type Notifier interface {
	Notify(message string)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

// BoardStore is the kitchen display mirror updated by the event consumer.
type BoardStore interface {
	RecordPlaced(event domain.OrderEvent) error
	RecordCompleted(event domain.OrderEvent) error
}

type StockServiceInterface interface {
	Availability(dishID int) bool
	Precheck(items []domain.OrderItem) error
	Consume(items []domain.OrderItem) error
	RequestRestock(ingredientID int, amount float64) error
}

type OrderServiceInterface interface {
	PlaceOrder(items []domain.CartItem, table domain.TableInfo) (*domain.Order, error)
	CompleteOrder(id string) (*domain.Order, error)
	Orders() []domain.Order
	OrderQRCode(id string) ([]byte, error)
}

type FinanceServiceInterface interface {
	Record(txType, category string, amount float64, description string, needInvoice bool) *domain.Transaction
	ReconcileInvoice(transactionID, invoiceNo string) error
	Transactions() []domain.Transaction
}

type ProcurementServiceInterface interface {
	Plan() domain.ProcurementList
	RequestExecution(list []domain.ProcurementItem) error
}

type ReservationServiceInterface interface {
	Create(res domain.Reservation) (*domain.Reservation, error)
	RequestCheckIn(id string) error
	RequestCancel(id string) error
	Reservations() []domain.Reservation
}

type CatalogServiceInterface interface {
	Dishes() []domain.Dish
	Ingredients() []domain.Ingredient
	Recipe(dishID int) []domain.RecipeItem
	SaveIngredient(ing domain.Ingredient) (*domain.Ingredient, error)
	SaveDish(dish domain.Dish, recipe []domain.RecipeItem) (*domain.Dish, error)
	RequestDeleteDish(id int) error
	UpdateDishImage(id int, imageURL string) error
	ImportIngredients(text string) (int, error)
	ImportDishes(text string) (int, error)
}

var _ Backend = (*storage.PostgresRepository)(nil)
var _ OrderPublisher = (*storage.KafkaPublisher)(nil)
var _ BoardStore = (*storage.Board)(nil)
