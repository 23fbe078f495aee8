package service

import (
	"context"
	"log"
	"time"

	"github.com/zxjshishen/CJ-DC/internal/domain"
	"github.com/zxjshishen/CJ-DC/internal/storage"

	"github.com/google/uuid"
)

type OrderService struct {
	state     *storage.Session
	stock     StockServiceInterface
	finance   FinanceServiceInterface
	backend   Backend
	publisher OrderPublisher
	notifier  Notifier
	qr        QRGenerator
}

func NewOrderService(state *storage.Session, stock StockServiceInterface, finance FinanceServiceInterface,
	backend Backend, publisher OrderPublisher, notifier Notifier, qr QRGenerator) *OrderService {
	return &OrderService{
		state:     state,
		stock:     stock,
		finance:   finance,
		backend:   backend,
		publisher: publisher,
		notifier:  notifier,
		qr:        qr,
	}
}

// PlaceOrder commits the cart as a pending order. With no explicit items or
// table, the active POS working state (e.g. loaded by a reservation check-in)
// is used. Stock is validated before any mutation; a remote sync failure
// never rolls back the local commit.
func (s *OrderService) PlaceOrder(items []domain.CartItem, table domain.TableInfo) (*domain.Order, error) {
	if len(items) == 0 {
		items = s.state.Cart
	}
	if table.TableNo == "" {
		table.TableNo = s.state.TableNo
	}
	if table.GuestCount == 0 {
		table.GuestCount = s.state.GuestCount
	}

	if table.TableNo == "" {
		return nil, ErrMissingTableNo
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	orderItems := make([]domain.OrderItem, 0, len(items))
	total := 0.0
	for _, item := range items {
		orderItems = append(orderItems, domain.OrderItem{Dish: item.Dish, Count: item.Count})
		total += item.Price * float64(item.Count)
	}

	if err := s.stock.Precheck(orderItems); err != nil {
		return nil, err
	}

	order := domain.Order{
		ID:            uuid.NewString(),
		Items:         orderItems,
		Total:         round2(total),
		Status:        domain.OrderPending,
		CreatedAt:     time.Now(),
		IsReservation: s.state.FromReservation,
		TableNo:       table.TableNo,
		GuestCount:    table.GuestCount,
	}

	if s.backend != nil {
		if err := s.backend.CreateOrder(&order); err != nil {
			log.Printf("order sync failed, keeping local copy: %v", err)
			s.notifier.Notify("network error, order saved locally only")
		}
	}

	if err := s.stock.Consume(orderItems); err != nil {
		return nil, err
	}

	s.state.Orders = append(s.state.Orders, order)
	s.finance.Record(domain.TxIncome, CategoryDiningRevenue, order.Total, "table "+order.TableNo, s.state.NeedInvoice)
	s.state.ClearWorkingState()
	if err := s.state.Flush(); err != nil {
		log.Printf("snapshot flush failed: %v", err)
	}

	if s.publisher != nil {
		_ = s.publisher.PublishOrderEvent(context.Background(), domain.OrderEvent{
			Type:      domain.EventOrderPlaced,
			OrderID:   order.ID,
			TableNo:   order.TableNo,
			Total:     order.Total,
			ItemCount: len(order.Items),
			Timestamp: order.CreatedAt,
		})
	}

	s.notifier.Notify("order placed for table " + order.TableNo)
	return &order, nil
}

// CompleteOrder moves a pending order to completed. The transition is a
// full-record replace, so repeating it on a completed order is harmless.
func (s *OrderService) CompleteOrder(id string) (*domain.Order, error) {
	order := s.state.FindOrder(id)
	if order == nil {
		return nil, ErrOrderNotFound
	}
	order.Status = domain.OrderCompleted
	if err := s.state.Flush(); err != nil {
		log.Printf("snapshot flush failed: %v", err)
	}

	if s.publisher != nil {
		_ = s.publisher.PublishOrderEvent(context.Background(), domain.OrderEvent{
			Type:      domain.EventOrderCompleted,
			OrderID:   order.ID,
			TableNo:   order.TableNo,
			Timestamp: time.Now(),
		})
	}

	s.notifier.Notify("order completed")
	return order, nil
}

func (s *OrderService) Orders() []domain.Order {
	return s.state.Orders
}

func (s *OrderService) OrderQRCode(id string) ([]byte, error) {
	if s.state.FindOrder(id) == nil {
		return nil, ErrOrderNotFound
	}
	return s.qr.Generate(id)
}

var _ OrderServiceInterface = (*OrderService)(nil)
