package service

import (
	"fmt"

	"github.com/zxjshishen/CJ-DC/internal/domain"
	"github.com/zxjshishen/CJ-DC/internal/storage"
)

// safetyStockFactor is the fixed multiplier applied to the reorder threshold
// when computing the target level. Not user-configurable.
const safetyStockFactor = 2.0

type ProcurementService struct {
	state    *storage.Session
	stock    *StockService
	finance  FinanceServiceInterface
	gate     *ConfirmGate
	notifier Notifier
}

func NewProcurementService(state *storage.Session, stock *StockService, finance FinanceServiceInterface,
	gate *ConfirmGate, notifier Notifier) *ProcurementService {
	return &ProcurementService{state: state, stock: stock, finance: finance, gate: gate, notifier: notifier}
}

// Plan derives the suggested purchase list from current stock, thresholds and
// the forward demand implied by booked reservations. Pure read, no mutation.
func (s *ProcurementService) Plan() domain.ProcurementList {
	demand := map[int]float64{}
	for _, res := range s.state.Reservations {
		if res.Status != domain.ReservationBooked {
			continue
		}
		for _, item := range res.Items {
			for _, line := range s.state.Recipes[item.Dish.ID] {
				demand[line.IngredientID] += line.Amount * float64(item.Count)
			}
		}
	}

	var list domain.ProcurementList
	for _, ing := range s.state.Ingredients {
		needed := ing.Threshold*safetyStockFactor + demand[ing.ID] - ing.Quantity
		if needed <= 0 {
			continue
		}
		item := domain.ProcurementItem{
			Ingredient:      ing,
			Demand:          demand[ing.ID],
			SuggestedAmount: round2(needed),
			EstimatedCost:   round2(needed * ing.Cost),
		}
		list.Items = append(list.Items, item)
		list.TotalEstimatedCost += item.EstimatedCost
	}
	list.TotalEstimatedCost = round2(list.TotalEstimatedCost)
	return list
}

// RequestExecution stages the confirmation-gated purchase. On confirm the
// stock ledger applies the batch restock and a single pending-invoice expense
// is recorded.
func (s *ProcurementService) RequestExecution(list []domain.ProcurementItem) error {
	if len(list) == 0 {
		return ErrNothingToProcure
	}
	total := 0.0
	for _, item := range list {
		total += item.EstimatedCost
	}
	s.gate.Request("Procurement", fmt.Sprintf("Estimated total ¥%.1f, confirm?", total), func() {
		cost, description := s.stock.ApplyBatchRestock(list)
		s.finance.Record(domain.TxExpense, CategoryProcurement, cost, description, true)
		s.notifier.Notify("procurement order executed")
	})
	return nil
}

var _ ProcurementServiceInterface = (*ProcurementService)(nil)
