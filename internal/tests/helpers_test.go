package tests

import (
	"github.com/zxjshishen/CJ-DC/internal/mocks"
	"github.com/zxjshishen/CJ-DC/internal/service"
	"github.com/zxjshishen/CJ-DC/internal/storage"

	"github.com/stretchr/testify/mock"
)

// fixture wires the services against a seeded in-memory session, the way
// main.go does in offline mode but without a snapshot store.
type fixture struct {
	state        *storage.Session
	gate         *service.ConfirmGate
	notifier     *mocks.Notifier
	finance      *service.FinanceService
	stock        *service.StockService
	catalog      *service.CatalogService
	procurement  *service.ProcurementService
	reservations *service.ReservationService
}

func newFixture() *fixture {
	state := storage.NewSession()
	state.Dishes = storage.SeedDishes()
	state.Ingredients = storage.SeedIngredients()
	state.Recipes = storage.SeedRecipes()

	notifier := new(mocks.Notifier)
	notifier.On("Notify", mock.Anything).Maybe()

	gate := service.NewConfirmGate()
	finance := service.NewFinanceService(state, notifier)
	stock := service.NewStockService(state, finance, gate, notifier)

	return &fixture{
		state:        state,
		gate:         gate,
		notifier:     notifier,
		finance:      finance,
		stock:        stock,
		catalog:      service.NewCatalogService(state, gate, notifier),
		procurement:  service.NewProcurementService(state, stock, finance, gate, notifier),
		reservations: service.NewReservationService(state, gate, notifier),
	}
}

func (f *fixture) orderService(backend service.Backend, publisher service.OrderPublisher) *service.OrderService {
	return f.orderServiceQR(backend, publisher, service.DefaultQRGenerator{BaseURL: "http://localhost"})
}

func (f *fixture) orderServiceQR(backend service.Backend, publisher service.OrderPublisher, qr service.QRGenerator) *service.OrderService {
	return service.NewOrderService(f.state, f.stock, f.finance, backend, publisher, f.notifier, qr)
}

func (f *fixture) confirm() {
	_ = f.gate.Confirm()
}
